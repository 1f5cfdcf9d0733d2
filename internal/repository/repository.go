package repository

import (
	"context"
	"errors"
	"time"

	"retail-cli/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrStatusConflict is returned when a guarded status update matches no
// row, meaning the status changed between read and write.
var ErrStatusConflict = errors.New("status changed concurrently")

// executor is the subset of pgx operations shared by pools and
// transactions, so repository writes can run in either.
type executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a new product. The category column is omitted from
	// the write entirely when the input carries none.
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// GetBySKU retrieves a single product by its SKU. Returns nil when absent.
	GetBySKU(ctx context.Context, sku string) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error)

	// List retrieves products ordered by ID, optionally filtered by category.
	List(ctx context.Context, limit int, category *string) ([]model.Product, error)

	// Update applies a partial update and returns the refreshed row.
	Update(ctx context.Context, id int64, update model.ProductUpdate) (*model.Product, error)

	// Delete removes a product row.
	Delete(ctx context.Context, id int64) error

	// AdjustStock applies a guarded stock delta within the provided
	// transaction. The write fails rather than letting stock go negative.
	AdjustStock(ctx context.Context, tx pgx.Tx, id int64, delta int) error
}

// CustomerRepository defines the interface for customer data access operations.
type CustomerRepository interface {
	// Create inserts a new customer.
	Create(ctx context.Context, input model.CustomerInput) (*model.Customer, error)

	// GetByID retrieves a single customer by ID. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Customer, error)

	// GetByEmail retrieves a single customer by exact email match.
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)

	// List retrieves customers ordered by ID.
	List(ctx context.Context, limit int) ([]model.Customer, error)

	// Search retrieves customers matching the provided email and/or city.
	Search(ctx context.Context, email, city *string) ([]model.Customer, error)

	// Update applies a partial update and returns the refreshed row.
	Update(ctx context.Context, id int64, update model.CustomerUpdate) (*model.Customer, error)

	// Delete removes a customer row.
	Delete(ctx context.Context, id int64) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a new order within the provided transaction.
	Create(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateItems inserts multiple order items within the provided transaction.
	CreateItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// ListByCustomer retrieves all orders owned by a customer.
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)

	// CountByCustomer returns the number of orders owned by a customer.
	CountByCustomer(ctx context.Context, customerID int64) (int, error)

	// UpdateStatus transitions an order from one status to another. The
	// write is guarded on the current status; ErrStatusConflict is
	// returned when the row no longer matches.
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to model.OrderStatus) error

	// ListAll retrieves every order. Reports aggregate client-side.
	ListAll(ctx context.Context) ([]model.Order, error)

	// ListSince retrieves orders created at or after the given time.
	ListSince(ctx context.Context, since time.Time) ([]model.Order, error)

	// ListAllItems retrieves every order item. Reports aggregate client-side.
	ListAllItems(ctx context.Context) ([]model.OrderItem, error)
}

// PaymentRepository defines the interface for payment data access operations.
type PaymentRepository interface {
	// Create inserts a new payment. When tx is nil the write runs on the pool.
	Create(ctx context.Context, tx pgx.Tx, payment *model.Payment) error

	// GetByOrderID retrieves the payment for an order. Returns nil when absent.
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*model.Payment, error)

	// UpdateStatus sets the payment status and, when method is non-nil,
	// the payment method. When tx is nil the write runs on the pool.
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.PaymentStatus, method *string) error
}
