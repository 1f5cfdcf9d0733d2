package service

import (
	"context"

	"retail-cli/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for product management.
type ProductService interface {
	// Add creates a new product after checking SKU uniqueness.
	Add(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// Get retrieves a single product by ID.
	Get(ctx context.Context, id int64) (*model.Product, error)

	// List retrieves products, optionally filtered by category.
	List(ctx context.Context, limit int, category *string) ([]model.Product, error)

	// Update applies a partial update to a product.
	Update(ctx context.Context, id int64, update model.ProductUpdate) (*model.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id int64) error

	// Import loads a gzipped CSV product feed and creates the products
	// in it, skipping rows whose SKU already exists.
	Import(ctx context.Context, path string) (created, skipped int, err error)
}

// CustomerService defines operations for customer management.
type CustomerService interface {
	// Add creates a new customer after checking email uniqueness.
	Add(ctx context.Context, input model.CustomerInput) (*model.Customer, error)

	// Get retrieves a single customer by ID.
	Get(ctx context.Context, id int64) (*model.Customer, error)

	// List retrieves customers.
	List(ctx context.Context, limit int) ([]model.Customer, error)

	// Search retrieves customers by email and/or city.
	Search(ctx context.Context, email, city *string) ([]model.Customer, error)

	// Update changes a customer's phone and/or city.
	Update(ctx context.Context, id int64, update model.CustomerUpdate) (*model.Customer, error)

	// Delete removes a customer with no orders.
	Delete(ctx context.Context, id int64) (*model.Customer, error)
}

// OrderService defines operations for the order lifecycle.
type OrderService interface {
	// Create places a new order for a customer.
	Create(ctx context.Context, req *model.OrderRequest) (*model.OrderDetails, error)

	// Get retrieves the joined order record: order, customer, items.
	Get(ctx context.Context, id uuid.UUID) (*model.OrderDetails, error)

	// Cancel cancels a PLACED order and restores its stock.
	Cancel(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// Complete marks a PLACED order COMPLETED. Invoked by payment
	// processing; not normally called without a payment.
	Complete(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// ListByCustomer retrieves all orders owned by a customer.
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
}

// PaymentService defines operations for payment processing.
type PaymentService interface {
	// Process pays a PLACED order and completes it.
	Process(ctx context.Context, orderID uuid.UUID, method string) (*model.Payment, error)

	// Refund marks an order's payment REFUNDED.
	Refund(ctx context.Context, orderID uuid.UUID) (*model.Payment, error)
}

// ReportService defines the sales reports.
type ReportService interface {
	// TopSellingProducts returns the five best-selling products by
	// total quantity across all order items.
	TopSellingProducts(ctx context.Context) ([]model.ProductSales, error)

	// RevenueLastMonth returns the sum of order totals over the last 30 days.
	RevenueLastMonth(ctx context.Context) (float64, error)

	// OrdersPerCustomer returns the order count for every customer with orders.
	OrdersPerCustomer(ctx context.Context) ([]model.CustomerOrderCount, error)

	// FrequentCustomers returns customers with strictly more than two orders.
	FrequentCustomers(ctx context.Context) ([]model.CustomerOrderCount, error)
}
