package repository

import (
	"context"
	"fmt"

	"retail-cli/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a new product. The category column is omitted from the
// write entirely when the input carries none.
func (r *productRepository) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	var p model.Product
	var err error

	if input.Category != nil {
		query := `
			INSERT INTO products (name, sku, price, stock, category)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, name, sku, price, stock, category, created_at
		`
		err = r.pool.QueryRow(ctx, query, input.Name, input.SKU, input.Price, input.Stock, input.Category).
			Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.Category, &p.CreatedAt)
	} else {
		query := `
			INSERT INTO products (name, sku, price, stock)
			VALUES ($1, $2, $3, $4)
			RETURNING id, name, sku, price, stock, category, created_at
		`
		err = r.pool.QueryRow(ctx, query, input.Name, input.SKU, input.Price, input.Stock).
			Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.Category, &p.CreatedAt)
	}

	if err != nil {
		r.logger.Error().Err(err).Str("sku", input.SKU).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().Int64("product_id", p.ID).Str("sku", p.SKU).Msg("product created")

	return &p, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT id, name, sku, price, stock, category, created_at
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.Category, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// GetBySKU retrieves a single product by its SKU.
func (r *productRepository) GetBySKU(ctx context.Context, sku string) (*model.Product, error) {
	query := `
		SELECT id, name, sku, price, stock, category, created_at
		FROM products
		WHERE sku = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, sku).
		Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.Category, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("sku", sku).Msg("failed to query product by SKU")
		return nil, fmt.Errorf("failed to query product by SKU: %w", err)
	}

	return &p, nil
}

// GetByIDs retrieves multiple products by their IDs.
func (r *productRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	query := `
		SELECT id, name, sku, price, stock, category, created_at
		FROM products
		WHERE id = ANY($1)
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query products by IDs")
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// List retrieves products ordered by ID, optionally filtered by category.
func (r *productRepository) List(ctx context.Context, limit int, category *string) ([]model.Product, error) {
	var rows pgx.Rows
	var err error

	if category != nil {
		query := `
			SELECT id, name, sku, price, stock, category, created_at
			FROM products
			WHERE category = $1
			ORDER BY id
			LIMIT $2
		`
		rows, err = r.pool.Query(ctx, query, *category, limit)
	} else {
		query := `
			SELECT id, name, sku, price, stock, category, created_at
			FROM products
			ORDER BY id
			LIMIT $1
		`
		rows, err = r.pool.Query(ctx, query, limit)
	}

	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Update applies a partial update and returns the refreshed row.
func (r *productRepository) Update(ctx context.Context, id int64, update model.ProductUpdate) (*model.Product, error) {
	query := `
		UPDATE products
		SET name     = COALESCE($2, name),
		    price    = COALESCE($3, price),
		    category = COALESCE($4, category)
		WHERE id = $1
		RETURNING id, name, sku, price, stock, category, created_at
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id, update.Name, update.Price, update.Category).
		Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.Category, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	r.logger.Debug().Int64("product_id", id).Msg("product updated")

	return &p, nil
}

// Delete removes a product row.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	r.logger.Debug().Int64("product_id", id).Msg("product deleted")

	return nil
}

// AdjustStock applies a guarded stock delta within the provided
// transaction. The WHERE clause keeps stock from going negative even
// under concurrent order creation; zero rows affected on a decrement
// means the remaining stock was insufficient.
func (r *productRepository) AdjustStock(ctx context.Context, tx pgx.Tx, id int64, delta int) error {
	query := `
		UPDATE products
		SET stock = stock + $2
		WHERE id = $1 AND stock + $2 >= 0
	`

	var exec executor = r.pool
	if tx != nil {
		exec = tx
	}

	tag, err := exec.Exec(ctx, query, id, delta)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Int("delta", delta).Msg("failed to adjust stock")
		return fmt.Errorf("failed to adjust stock: %w", err)
	}

	if tag.RowsAffected() == 0 {
		if delta < 0 {
			r.logger.Warn().Int64("product_id", id).Int("delta", delta).Msg("stock adjustment rejected")
			return model.ErrInsufficientStock
		}
		return model.ErrProductNotFound
	}

	return nil
}

// scanProducts collects product rows, surfacing any iteration error.
func scanProducts(rows pgx.Rows) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.Category, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
