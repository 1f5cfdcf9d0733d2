package router

import (
	"net/http"

	"retail-cli/internal/handler"
	"retail-cli/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	customerHandler *handler.CustomerHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
	reportHandler *handler.ReportHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product routes
	mux.HandleFunc("GET /api/products", productHandler.List)
	mux.HandleFunc("POST /api/products", productHandler.Create)
	mux.HandleFunc("GET /api/products/{id}", productHandler.Get)
	mux.HandleFunc("PUT /api/products/{id}", productHandler.Update)
	mux.HandleFunc("DELETE /api/products/{id}", productHandler.Delete)

	// Customer routes
	mux.HandleFunc("GET /api/customers", customerHandler.List)
	mux.HandleFunc("POST /api/customers", customerHandler.Create)
	mux.HandleFunc("GET /api/customers/{id}", customerHandler.Get)
	mux.HandleFunc("PUT /api/customers/{id}", customerHandler.Update)
	mux.HandleFunc("DELETE /api/customers/{id}", customerHandler.Delete)

	// Order routes
	mux.HandleFunc("POST /api/orders", orderHandler.Create)
	mux.HandleFunc("GET /api/orders/{id}", orderHandler.Get)
	mux.HandleFunc("POST /api/orders/{id}/cancel", orderHandler.Cancel)

	// Payment routes
	mux.HandleFunc("POST /api/orders/{id}/payment", paymentHandler.Process)
	mux.HandleFunc("POST /api/orders/{id}/refund", paymentHandler.Refund)

	// Report routes
	mux.HandleFunc("GET /api/reports/top_products", reportHandler.TopProducts)
	mux.HandleFunc("GET /api/reports/revenue", reportHandler.Revenue)
	mux.HandleFunc("GET /api/reports/orders", reportHandler.Orders)
	mux.HandleFunc("GET /api/reports/frequent_customers", reportHandler.FrequentCustomers)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
