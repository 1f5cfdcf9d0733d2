package handler

import (
	"net/http"

	"retail-cli/internal/service"

	"github.com/rs/zerolog"
)

// ReportHandler handles report HTTP requests.
type ReportHandler struct {
	service service.ReportService
	logger  zerolog.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(service service.ReportService, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger.With().Str("handler", "report").Logger(),
	}
}

// TopProducts handles GET /api/reports/top_products requests.
func (h *ReportHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.TopSellingProducts(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sales)
}

// Revenue handles GET /api/reports/revenue requests.
func (h *ReportHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.service.RevenueLastMonth(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]float64{"revenue": revenue})
}

// Orders handles GET /api/reports/orders requests.
func (h *ReportHandler) Orders(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.OrdersPerCustomer(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, counts)
}

// FrequentCustomers handles GET /api/reports/frequent_customers requests.
func (h *ReportHandler) FrequentCustomers(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.FrequentCustomers(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, counts)
}
