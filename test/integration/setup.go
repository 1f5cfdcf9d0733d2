package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool against the container's mapped port
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing. It mirrors
// scripts/schema.sql.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			sku TEXT NOT NULL UNIQUE,
			price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
			stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
			category TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS customers (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone TEXT NOT NULL,
			city TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			customer_id BIGINT NOT NULL REFERENCES customers (id),
			total_amount DOUBLE PRECISION NOT NULL CHECK (total_amount >= 0),
			status TEXT NOT NULL CHECK (status IN ('PLACED', 'CANCELLED', 'COMPLETED')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders (id),
			product_id BIGINT NOT NULL REFERENCES products (id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			price DOUBLE PRECISION NOT NULL CHECK (price >= 0)
		);

		CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL UNIQUE REFERENCES orders (id),
			amount DOUBLE PRECISION NOT NULL CHECK (amount >= 0),
			method TEXT,
			status TEXT NOT NULL CHECK (status IN ('PENDING', 'PAID', 'REFUNDED')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders (customer_id);
		CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedProducts inserts test product data and returns the generated IDs
// keyed by SKU.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) map[string]int64 {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		name     string
		sku      string
		price    float64
		stock    int
		category string
	}{
		{"Test Product 1", "SKU-001", 10.00, 10, "Category A"},
		{"Test Product 2", "SKU-002", 20.00, 5, "Category B"},
		{"Test Product 3", "SKU-003", 30.00, 0, "Category A"},
	}

	ids := make(map[string]int64, len(products))
	for _, p := range products {
		var id int64
		err := pool.QueryRow(ctx,
			"INSERT INTO products (name, sku, price, stock, category) VALUES ($1, $2, $3, $4, $5) RETURNING id",
			p.name, p.sku, p.price, p.stock, p.category,
		).Scan(&id)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.sku, err)
		}
		ids[p.sku] = id
	}

	return ids
}

// SeedCustomer inserts one test customer and returns its ID.
func SeedCustomer(t *testing.T, pool *pgxpool.Pool, email string) int64 {
	t.Helper()

	ctx := context.Background()

	var id int64
	err := pool.QueryRow(ctx,
		"INSERT INTO customers (name, email, phone, city) VALUES ($1, $2, $3, $4) RETURNING id",
		"Test Customer", email, "555-0100", "Sydney",
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed customer %s: %v", email, err)
	}

	return id
}

// SeedOrder inserts one order row with the given status and returns its ID.
func SeedOrder(t *testing.T, pool *pgxpool.Pool, customerID int64, total float64, status string) uuid.UUID {
	t.Helper()

	ctx := context.Background()

	id := uuid.New()
	_, err := pool.Exec(ctx,
		"INSERT INTO orders (id, customer_id, total_amount, status) VALUES ($1, $2, $3, $4)",
		id, customerID, total, status,
	)
	if err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}

	return id
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"payments", "order_items", "orders", "customers", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
