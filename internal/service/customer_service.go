package service

import (
	"context"
	"fmt"

	"retail-cli/internal/model"
	"retail-cli/internal/repository"

	"github.com/rs/zerolog"
)

// customerService implements CustomerService.
type customerService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	logger       zerolog.Logger
}

// NewCustomerService creates a new customer service. The order
// repository backs the has-orders check guarding deletion.
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	logger zerolog.Logger,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		logger:       logger.With().Str("service", "customer").Logger(),
	}
}

// Add creates a new customer. The email must not already be registered;
// the check is case-sensitive equality only.
func (s *customerService) Add(ctx context.Context, input model.CustomerInput) (*model.Customer, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" {
		return nil, fmt.Errorf("customer name, email and phone are required")
	}

	existing, err := s.customerRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		s.logger.Warn().Str("email", input.Email).Msg("duplicate email rejected")
		return nil, model.ErrDuplicateEmail
	}

	customer, err := s.customerRepo.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to add customer: %w", err)
	}

	s.logger.Info().Int64("customer_id", customer.ID).Msg("customer added")

	return customer, nil
}

// Get retrieves a single customer by ID.
func (s *customerService) Get(ctx context.Context, id int64) (*model.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	return customer, nil
}

// List retrieves customers.
func (s *customerService) List(ctx context.Context, limit int) ([]model.Customer, error) {
	if limit <= 0 {
		limit = 100
	}

	customers, err := s.customerRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

// Search retrieves customers by email and/or city.
func (s *customerService) Search(ctx context.Context, email, city *string) ([]model.Customer, error) {
	customers, err := s.customerRepo.Search(ctx, email, city)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}

	return customers, nil
}

// Update changes a customer's phone and/or city. At least one field
// must be supplied; updates merge into the existing row.
func (s *customerService) Update(ctx context.Context, id int64, update model.CustomerUpdate) (*model.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	if update.IsEmpty() {
		return nil, model.ErrNothingToUpdate
	}

	updated, err := s.customerRepo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	if updated == nil {
		return nil, model.ErrCustomerNotFound
	}

	s.logger.Info().Int64("customer_id", id).Msg("customer updated")

	return updated, nil
}

// Delete removes a customer. Deletion is forbidden while the customer
// has any order; nothing cascades.
func (s *customerService) Delete(ctx context.Context, id int64) (*model.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	count, err := s.orderRepo.CountByCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count customer orders: %w", err)
	}
	if count > 0 {
		s.logger.Warn().
			Int64("customer_id", id).
			Int("order_count", count).
			Msg("delete rejected, customer has orders")
		return nil, model.ErrCustomerHasOrders
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("customer_id", id).Msg("customer deleted")

	return customer, nil
}
