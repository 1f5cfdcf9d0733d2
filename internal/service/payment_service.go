package service

import (
	"context"
	"fmt"
	"time"

	"retail-cli/internal/model"
	"retail-cli/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// paymentService implements PaymentService.
type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	logger      zerolog.Logger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	logger zerolog.Logger,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		logger:      logger.With().Str("service", "payment").Logger(),
	}
}

// Process pays a PLACED order. A payment row is created lazily with
// status PENDING and amount equal to the order total, then marked PAID
// with the supplied method while the order advances to COMPLETED, all
// in one transaction. Calling this again after success fails because
// the order is no longer PLACED.
func (s *paymentService) Process(ctx context.Context, orderID uuid.UUID, method string) (*model.Payment, error) {
	if method == "" {
		return nil, fmt.Errorf("payment method is required")
	}

	order, _, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	if order.Status != model.OrderStatusPlaced {
		s.logger.Warn().
			Str("order_id", orderID.String()).
			Str("status", string(order.Status)).
			Msg("payment rejected")
		return nil, model.ErrOrderNotPayable
	}

	payment, err := s.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to process payment: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if payment == nil {
		payment = &model.Payment{
			ID:        uuid.New(),
			OrderID:   orderID,
			Amount:    order.TotalAmount,
			Status:    model.PaymentStatusPending,
			CreatedAt: time.Now(),
		}
		if err = s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return nil, err
		}
	}

	if err = s.paymentRepo.UpdateStatus(ctx, tx, payment.ID, model.PaymentStatusPaid, &method); err != nil {
		return nil, err
	}

	if err = s.orderRepo.UpdateStatus(ctx, tx, orderID, model.OrderStatusPlaced, model.OrderStatusCompleted); err != nil {
		if err == repository.ErrStatusConflict {
			err = model.ErrOrderNotPayable
		}
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to process payment: %w", err)
	}

	s.logger.Info().
		Str("order_id", orderID.String()).
		Str("payment_id", payment.ID.String()).
		Str("method", method).
		Float64("amount", payment.Amount).
		Msg("payment processed")

	return s.paymentRepo.GetByOrderID(ctx, orderID)
}

// Refund marks an order's payment REFUNDED. The transition is applied
// regardless of the current payment status, PAID or not; callers that
// need a paid-only refund must check first.
func (s *paymentService) Refund(ctx context.Context, orderID uuid.UUID) (*model.Payment, error) {
	payment, err := s.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	if payment == nil {
		return nil, model.ErrPaymentNotFound
	}

	if err := s.paymentRepo.UpdateStatus(ctx, nil, payment.ID, model.PaymentStatusRefunded, nil); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", orderID.String()).
		Str("payment_id", payment.ID.String()).
		Msg("payment refunded")

	return s.paymentRepo.GetByOrderID(ctx, orderID)
}
