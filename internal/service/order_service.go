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

// orderService implements OrderService.
type orderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "order").Logger(),
	}
}

// Create places a new order. Every item is validated against a snapshot
// read (customer exists, product exists, stock suffices) and its price
// captured at creation time; stock decrements, the order row and the
// item rows are then written in one transaction, so a failure at any
// step leaves no partial state behind. The stock writes themselves are
// guarded, so a concurrent order that drains stock first rolls this one
// back instead of pushing stock negative.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest) (*model.OrderDetails, error) {
	if err := validateOrderRequest(req); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		s.logger.Warn().Int64("customer_id", req.CustomerID).Msg("order rejected, customer not found")
		return nil, model.ErrCustomerNotFound
	}

	// Validate every item and snapshot prices before writing anything.
	totalAmount := 0.0
	items := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to get product: %w", err)
		}
		if product == nil {
			s.logger.Warn().Int64("product_id", item.ProductID).Msg("order rejected, product not found")
			return nil, model.ErrProductNotFound
		}
		if product.Stock < item.Quantity {
			s.logger.Warn().
				Int64("product_id", item.ProductID).
				Int("stock", product.Stock).
				Int("requested", item.Quantity).
				Msg("order rejected, insufficient stock")
			return nil, model.ErrInsufficientStock
		}

		items[i] = model.OrderItem{
			ID:        uuid.New(),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		}
		totalAmount += product.Price * float64(item.Quantity)
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	for _, item := range items {
		if err = s.productRepo.AdjustStock(ctx, tx, item.ProductID, -item.Quantity); err != nil {
			return nil, err
		}
	}

	order := &model.Order{
		ID:          uuid.New(),
		CustomerID:  req.CustomerID,
		TotalAmount: totalAmount,
		Status:      model.OrderStatusPlaced,
		CreatedAt:   time.Now(),
	}

	if err = s.orderRepo.Create(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for i := range items {
		items[i].OrderID = order.ID
	}

	if err = s.orderRepo.CreateItems(ctx, tx, items); err != nil {
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int64("customer_id", req.CustomerID).
		Float64("total_amount", totalAmount).
		Int("item_count", len(items)).
		Msg("order created successfully")

	return &model.OrderDetails{
		Order:    *order,
		Customer: customer,
		Items:    items,
	}, nil
}

// Get retrieves the joined order record: order, customer, items.
func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*model.OrderDetails, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	customer, err := s.customerRepo.GetByID(ctx, order.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order customer: %w", err)
	}

	return &model.OrderDetails{
		Order:    *order,
		Customer: customer,
		Items:    items,
	}, nil
}

// Cancel cancels a PLACED order: every item's quantity is restored onto
// its product's stock and the status set to CANCELLED, in one
// transaction. CANCELLED and COMPLETED orders cannot be cancelled.
func (s *orderService) Cancel(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	if order.Status != model.OrderStatusPlaced {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("status", string(order.Status)).
			Msg("cancel rejected")
		return nil, model.ErrOrderNotCancellable
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	for _, item := range items {
		if err = s.productRepo.AdjustStock(ctx, tx, item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
	}

	if err = s.orderRepo.UpdateStatus(ctx, tx, id, model.OrderStatusPlaced, model.OrderStatusCancelled); err != nil {
		if err == repository.ErrStatusConflict {
			err = model.ErrOrderNotCancellable
		}
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	s.logger.Info().Str("order_id", id.String()).Msg("order cancelled")

	order.Status = model.OrderStatusCancelled
	return order, nil
}

// Complete marks a PLACED order COMPLETED. Payment processing drives
// this transition; it is not normally invoked without a payment.
func (s *orderService) Complete(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, _, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	if order.Status != model.OrderStatusPlaced {
		return nil, model.ErrOrderNotCompletable
	}

	err = s.orderRepo.UpdateStatus(ctx, nil, id, model.OrderStatusPlaced, model.OrderStatusCompleted)
	if err != nil {
		if err == repository.ErrStatusConflict {
			return nil, model.ErrOrderNotCompletable
		}
		return nil, err
	}

	s.logger.Info().Str("order_id", id.String()).Msg("order completed")

	order.Status = model.OrderStatusCompleted
	return order, nil
}

// ListByCustomer retrieves all orders owned by a customer.
func (s *orderService) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer orders: %w", err)
	}

	return orders, nil
}

// validateOrderRequest validates the order creation request.
func validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return fmt.Errorf("order request is nil")
	}

	if len(req.Items) == 0 {
		return fmt.Errorf("order must contain at least one item")
	}

	for i, item := range req.Items {
		if item.ProductID <= 0 {
			return fmt.Errorf("item %d: product ID is required", i)
		}
		if item.Quantity <= 0 {
			return model.ErrInvalidQuantity
		}
	}

	return nil
}
