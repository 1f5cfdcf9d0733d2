package service

import (
	"context"
	"fmt"

	"retail-cli/internal/catalog"
	"retail-cli/internal/model"
	"retail-cli/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	feeds       catalog.Loader
	logger      zerolog.Logger
}

// NewProductService creates a new product service. The feed loader may
// be nil when catalogue import is not needed.
func NewProductService(productRepo repository.ProductRepository, feeds catalog.Loader, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		feeds:       feeds,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Add creates a new product after checking SKU uniqueness.
func (s *productService) Add(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	if input.Name == "" || input.SKU == "" {
		return nil, fmt.Errorf("product name and SKU are required")
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("product price cannot be negative")
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("product stock cannot be negative")
	}

	existing, err := s.productRepo.GetBySKU(ctx, input.SKU)
	if err != nil {
		return nil, fmt.Errorf("failed to check SKU: %w", err)
	}
	if existing != nil {
		s.logger.Warn().Str("sku", input.SKU).Msg("duplicate SKU rejected")
		return nil, model.ErrDuplicateSKU
	}

	product, err := s.productRepo.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Str("sku", product.SKU).
		Msg("product added")

	return product, nil
}

// Get retrieves a single product by ID.
func (s *productService) Get(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// List retrieves products, optionally filtered by category.
func (s *productService) List(ctx context.Context, limit int, category *string) ([]model.Product, error) {
	if limit <= 0 {
		limit = 100
	}

	products, err := s.productRepo.List(ctx, limit, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int("limit", limit).
		Msg("retrieved products")

	return products, nil
}

// Update applies a partial update to a product.
func (s *productService) Update(ctx context.Context, id int64, update model.ProductUpdate) (*model.Product, error) {
	if update.IsEmpty() {
		return nil, model.ErrNothingToUpdate
	}
	if update.Price != nil && *update.Price < 0 {
		return nil, fmt.Errorf("product price cannot be negative")
	}

	product, err := s.productRepo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return nil
}

// Import loads a gzipped CSV product feed and creates the products in
// it. Rows whose SKU already exists are skipped, not overwritten.
func (s *productService) Import(ctx context.Context, path string) (int, int, error) {
	if s.feeds == nil {
		return 0, 0, fmt.Errorf("catalogue feed loader not configured")
	}

	inputs, err := s.feeds.Load(ctx, path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load product feed: %w", err)
	}

	created, skipped := 0, 0
	for _, input := range inputs {
		existing, err := s.productRepo.GetBySKU(ctx, input.SKU)
		if err != nil {
			return created, skipped, fmt.Errorf("failed to check SKU %s: %w", input.SKU, err)
		}
		if existing != nil {
			s.logger.Debug().Str("sku", input.SKU).Msg("feed row skipped, SKU exists")
			skipped++
			continue
		}

		if _, err := s.productRepo.Create(ctx, input); err != nil {
			return created, skipped, fmt.Errorf("failed to import SKU %s: %w", input.SKU, err)
		}
		created++
	}

	s.logger.Info().
		Str("feed", path).
		Int("created", created).
		Int("skipped", skipped).
		Msg("product feed imported")

	return created, skipped, nil
}
