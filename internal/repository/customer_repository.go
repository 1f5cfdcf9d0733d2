package repository

import (
	"context"
	"fmt"

	"retail-cli/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// customerRepository implements the CustomerRepository interface using PostgreSQL.
type customerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCustomerRepository creates a new PostgreSQL-backed customer repository.
func NewCustomerRepository(pool *pgxpool.Pool, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

// Create inserts a new customer.
func (r *customerRepository) Create(ctx context.Context, input model.CustomerInput) (*model.Customer, error) {
	query := `
		INSERT INTO customers (name, email, phone, city)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, phone, city, created_at
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, input.Name, input.Email, input.Phone, input.City).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("email", input.Email).Msg("failed to insert customer")
		return nil, fmt.Errorf("failed to insert customer: %w", err)
	}

	r.logger.Debug().Int64("customer_id", c.ID).Msg("customer created")

	return &c, nil
}

// GetByID retrieves a single customer by ID.
func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	query := `
		SELECT id, name, email, phone, city, created_at
		FROM customers
		WHERE id = $1
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("customer_id", id).Msg("customer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to query customer")
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return &c, nil
}

// GetByEmail retrieves a single customer by exact email match. The match
// is case-sensitive equality, nothing more.
func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	query := `
		SELECT id, name, email, phone, city, created_at
		FROM customers
		WHERE email = $1
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, email).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query customer by email")
		return nil, fmt.Errorf("failed to query customer by email: %w", err)
	}

	return &c, nil
}

// List retrieves customers ordered by ID.
func (r *customerRepository) List(ctx context.Context, limit int) ([]model.Customer, error) {
	query := `
		SELECT id, name, email, phone, city, created_at
		FROM customers
		ORDER BY id
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query customers")
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// Search retrieves customers matching the provided email and/or city.
func (r *customerRepository) Search(ctx context.Context, email, city *string) ([]model.Customer, error) {
	query := `
		SELECT id, name, email, phone, city, created_at
		FROM customers
		WHERE ($1::text IS NULL OR email = $1)
		  AND ($2::text IS NULL OR city = $2)
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, email, city)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to search customers")
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// Update applies a partial update and returns the refreshed row.
func (r *customerRepository) Update(ctx context.Context, id int64, update model.CustomerUpdate) (*model.Customer, error) {
	query := `
		UPDATE customers
		SET phone = COALESCE($2, phone),
		    city  = COALESCE($3, city)
		WHERE id = $1
		RETURNING id, name, email, phone, city, created_at
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, id, update.Phone, update.City).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to update customer")
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	r.logger.Debug().Int64("customer_id", id).Msg("customer updated")

	return &c, nil
}

// Delete removes a customer row.
func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to delete customer")
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrCustomerNotFound
	}

	r.logger.Debug().Int64("customer_id", id).Msg("customer deleted")

	return nil
}

// scanCustomers collects customer rows, surfacing any iteration error.
func scanCustomers(rows pgx.Rows) ([]model.Customer, error) {
	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}
