package repository

import (
	"context"
	"fmt"
	"time"

	"retail-cli/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Create inserts a new order within the provided transaction.
func (r *orderRepository) Create(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.Exec(ctx, query, order.ID, order.CustomerID, order.TotalAmount, string(order.Status), order.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Msg("order created successfully")

	return nil
}

// CreateItems inserts multiple order items within the provided transaction.
func (r *orderRepository) CreateItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.ID, item.OrderID, item.ProductID, item.Quantity, item.Price)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", items[i].OrderID.String()).
				Int64("product_id", items[i].ProductID).
				Msg("failed to create order item")
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("order items created successfully")

	return nil
}

// GetByID retrieves an order by its ID along with its items.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error) {
	orderQuery := `
		SELECT id, customer_id, total_amount, status, created_at
		FROM orders
		WHERE id = $1
	`

	order, err := r.scanOrder(r.pool.QueryRow(ctx, orderQuery, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, nil, fmt.Errorf("failed to query order: %w", err)
	}

	itemsQuery := `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Msg("failed to query order items")
		return nil, nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	items, err := scanOrderItems(rows)
	if err != nil {
		return nil, nil, err
	}

	return order, items, nil
}

// ListByCustomer retrieves all orders owned by a customer.
func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	query := `
		SELECT id, customer_id, total_amount, status, created_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		r.logger.Error().Err(err).Int64("customer_id", customerID).Msg("failed to query customer orders")
		return nil, fmt.Errorf("failed to query customer orders: %w", err)
	}
	defer rows.Close()

	return r.scanOrders(rows)
}

// CountByCustomer returns the number of orders owned by a customer.
func (r *orderRepository) CountByCustomer(ctx context.Context, customerID int64) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE customer_id = $1`, customerID).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Int64("customer_id", customerID).Msg("failed to count customer orders")
		return 0, fmt.Errorf("failed to count customer orders: %w", err)
	}

	return count, nil
}

// UpdateStatus transitions an order from one status to another. The
// UPDATE is guarded on the current status so a concurrent transition
// surfaces as ErrStatusConflict instead of silently overwriting.
func (r *orderRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to model.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $3
		WHERE id = $1 AND status = $2
	`

	var exec executor = r.pool
	if tx != nil {
		exec = tx
	}

	tag, err := exec.Exec(ctx, query, id, string(from), string(to))
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Str("to", string(to)).
			Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Warn().
			Str("order_id", id.String()).
			Str("from", string(from)).
			Str("to", string(to)).
			Msg("order status transition rejected")
		return ErrStatusConflict
	}

	return nil
}

// ListAll retrieves every order.
func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `
		SELECT id, customer_id, total_amount, status, created_at
		FROM orders
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	return r.scanOrders(rows)
}

// ListSince retrieves orders created at or after the given time.
func (r *orderRepository) ListSince(ctx context.Context, since time.Time) ([]model.Order, error) {
	query := `
		SELECT id, customer_id, total_amount, status, created_at
		FROM orders
		WHERE created_at >= $1
	`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		r.logger.Error().Err(err).Time("since", since).Msg("failed to query orders since")
		return nil, fmt.Errorf("failed to query orders since: %w", err)
	}
	defer rows.Close()

	return r.scanOrders(rows)
}

// ListAllItems retrieves every order item.
func (r *orderRepository) ListAllItems(ctx context.Context) ([]model.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	return scanOrderItems(rows)
}

// scanOrder scans a single order row, rejecting status values outside
// the defined set.
func (r *orderRepository) scanOrder(row pgx.Row) (*model.Order, error) {
	var order model.Order
	var status string
	err := row.Scan(&order.ID, &order.CustomerID, &order.TotalAmount, &status, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	order.Status, err = model.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// scanOrders collects order rows, surfacing any iteration error.
func (r *orderRepository) scanOrders(rows pgx.Rows) ([]model.Order, error) {
	var orders []model.Order
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// scanOrderItems collects order item rows, surfacing any iteration error.
func scanOrderItems(rows pgx.Rows) ([]model.OrderItem, error) {
	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}
