package repository

import (
	"context"
	"fmt"

	"retail-cli/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// paymentRepository implements the PaymentRepository interface using PostgreSQL.
type paymentRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPaymentRepository creates a new PostgreSQL-backed payment repository.
func NewPaymentRepository(pool *pgxpool.Pool, logger zerolog.Logger) PaymentRepository {
	return &paymentRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "payment").Logger(),
	}
}

// Create inserts a new payment. The order_id column carries a unique
// constraint, so a second payment row for the same order fails here.
func (r *paymentRepository) Create(ctx context.Context, tx pgx.Tx, payment *model.Payment) error {
	query := `
		INSERT INTO payments (id, order_id, amount, method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var exec executor = r.pool
	if tx != nil {
		exec = tx
	}

	_, err := exec.Exec(ctx, query,
		payment.ID, payment.OrderID, payment.Amount, payment.Method, string(payment.Status), payment.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", payment.OrderID.String()).
			Msg("failed to create payment")
		return fmt.Errorf("failed to create payment: %w", err)
	}

	r.logger.Debug().
		Str("payment_id", payment.ID.String()).
		Str("order_id", payment.OrderID.String()).
		Msg("payment created successfully")

	return nil
}

// GetByOrderID retrieves the payment for an order.
func (r *paymentRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*model.Payment, error) {
	query := `
		SELECT id, order_id, amount, method, status, created_at
		FROM payments
		WHERE order_id = $1
	`

	var p model.Payment
	var status string
	err := r.pool.QueryRow(ctx, query, orderID).
		Scan(&p.ID, &p.OrderID, &p.Amount, &p.Method, &status, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", orderID.String()).Msg("payment not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to query payment")
		return nil, fmt.Errorf("failed to query payment: %w", err)
	}

	p.Status, err = model.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// UpdateStatus sets the payment status and, when method is non-nil, the
// payment method.
func (r *paymentRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status model.PaymentStatus, method *string) error {
	query := `
		UPDATE payments
		SET status = $2,
		    method = COALESCE($3, method)
		WHERE id = $1
	`

	var exec executor = r.pool
	if tx != nil {
		exec = tx
	}

	tag, err := exec.Exec(ctx, query, id, string(status), method)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("payment_id", id.String()).
			Str("status", string(status)).
			Msg("failed to update payment status")
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrPaymentNotFound
	}

	r.logger.Debug().
		Str("payment_id", id.String()).
		Str("status", string(status)).
		Msg("payment status updated")

	return nil
}
