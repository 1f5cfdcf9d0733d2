package integration

import (
	"context"
	"testing"
	"time"

	"retail-cli/internal/model"
	"retail-cli/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewProductRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Create and GetBySKU", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		category := "Hardware"
		created, err := repo.Create(ctx, model.ProductInput{
			Name: "Widget", SKU: "WID-1", Price: 9.99, Stock: 10, Category: &category,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotZero(t, created.ID)

		found, err := repo.GetBySKU(ctx, "WID-1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
		require.NotNil(t, found.Category)
		assert.Equal(t, "Hardware", *found.Category)
	})

	t.Run("Create without category leaves it null", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created, err := repo.Create(ctx, model.ProductInput{
			Name: "Gadget", SKU: "GAD-1", Price: 4.50, Stock: 5,
		})
		require.NoError(t, err)
		assert.Nil(t, created.Category)
	})

	t.Run("GetByID returns nil for non-existent product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		product, err := repo.GetByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("List filters by category", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		category := "Category A"
		products, err := repo.List(ctx, 10, &category)
		require.NoError(t, err)
		assert.Len(t, products, 2)

		products, err = repo.List(ctx, 10, nil)
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("Update applies partial changes", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedProducts(t, testDB.Pool)

		newPrice := 12.34
		updated, err := repo.Update(ctx, ids["SKU-001"], model.ProductUpdate{Price: &newPrice})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, 12.34, updated.Price)
		assert.Equal(t, "Test Product 1", updated.Name)
	})

	t.Run("Delete removes product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedProducts(t, testDB.Pool)

		err := repo.Delete(ctx, ids["SKU-001"])
		require.NoError(t, err)

		product, err := repo.GetByID(ctx, ids["SKU-001"])
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("Delete non-existent product fails", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		err := repo.Delete(ctx, 99999)
		require.Error(t, err)
		assert.Equal(t, model.ErrProductNotFound, err)
	})

	t.Run("AdjustStock refuses to go negative", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedProducts(t, testDB.Pool)

		// SKU-002 has stock 5; a decrement of 6 must be rejected and
		// leave the row untouched.
		err := repo.AdjustStock(ctx, nil, ids["SKU-002"], -6)
		require.Error(t, err)
		assert.Equal(t, model.ErrInsufficientStock, err)

		product, err := repo.GetByID(ctx, ids["SKU-002"])
		require.NoError(t, err)
		assert.Equal(t, 5, product.Stock)

		err = repo.AdjustStock(ctx, nil, ids["SKU-002"], -5)
		require.NoError(t, err)

		product, err = repo.GetByID(ctx, ids["SKU-002"])
		require.NoError(t, err)
		assert.Equal(t, 0, product.Stock)
	})
}

func TestCustomerRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewCustomerRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Create and GetByEmail", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		city := "Melbourne"
		created, err := repo.Create(ctx, model.CustomerInput{
			Name: "Alice", Email: "alice@example.com", Phone: "555-0100", City: &city,
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		found, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("GetByEmail returns nil when absent", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		customer, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, customer)
	})

	t.Run("Search by email and city", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCustomer(t, testDB.Pool, "alice@example.com")
		SeedCustomer(t, testDB.Pool, "bob@example.com")

		email := "alice@example.com"
		customers, err := repo.Search(ctx, &email, nil)
		require.NoError(t, err)
		assert.Len(t, customers, 1)

		city := "Sydney"
		customers, err = repo.Search(ctx, nil, &city)
		require.NoError(t, err)
		assert.Len(t, customers, 2)

		otherCity := "Perth"
		customers, err = repo.Search(ctx, nil, &otherCity)
		require.NoError(t, err)
		assert.Empty(t, customers)
	})

	t.Run("Update changes phone and city only", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		id := SeedCustomer(t, testDB.Pool, "alice@example.com")

		phone := "555-0199"
		updated, err := repo.Update(ctx, id, model.CustomerUpdate{Phone: &phone})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "555-0199", updated.Phone)
		assert.Equal(t, "alice@example.com", updated.Email)
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Create order with items in transaction", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		productIDs := SeedProducts(t, testDB.Pool)
		customerID := SeedCustomer(t, testDB.Pool, "alice@example.com")

		order := &model.Order{
			ID:          uuid.New(),
			CustomerID:  customerID,
			TotalAmount: 40.00,
			Status:      model.OrderStatusPlaced,
			CreatedAt:   time.Now(),
		}
		items := []model.OrderItem{
			{ID: uuid.New(), OrderID: order.ID, ProductID: productIDs["SKU-001"], Quantity: 2, Price: 10.00},
			{ID: uuid.New(), OrderID: order.ID, ProductID: productIDs["SKU-002"], Quantity: 1, Price: 20.00},
		}

		tx, err := orderRepo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, orderRepo.Create(ctx, tx, order))
		require.NoError(t, orderRepo.CreateItems(ctx, tx, items))
		require.NoError(t, tx.Commit(ctx))

		found, foundItems, err := orderRepo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, model.OrderStatusPlaced, found.Status)
		assert.Equal(t, 40.00, found.TotalAmount)
		assert.Len(t, foundItems, 2)
	})

	t.Run("Rollback leaves no partial state", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		customerID := SeedCustomer(t, testDB.Pool, "alice@example.com")

		order := &model.Order{
			ID:          uuid.New(),
			CustomerID:  customerID,
			TotalAmount: 10.00,
			Status:      model.OrderStatusPlaced,
			CreatedAt:   time.Now(),
		}

		tx, err := orderRepo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, orderRepo.Create(ctx, tx, order))
		require.NoError(t, tx.Rollback(ctx))

		found, _, err := orderRepo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("UpdateStatus is guarded on current status", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		customerID := SeedCustomer(t, testDB.Pool, "alice@example.com")
		orderID := SeedOrder(t, testDB.Pool, customerID, 10.00, "PLACED")

		err := orderRepo.UpdateStatus(ctx, nil, orderID, model.OrderStatusPlaced, model.OrderStatusCompleted)
		require.NoError(t, err)

		// A second transition from PLACED must fail: the row is COMPLETED now.
		err = orderRepo.UpdateStatus(ctx, nil, orderID, model.OrderStatusPlaced, model.OrderStatusCancelled)
		require.Error(t, err)
		assert.Equal(t, repository.ErrStatusConflict, err)
	})

	t.Run("CountByCustomer", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		customerID := SeedCustomer(t, testDB.Pool, "alice@example.com")
		SeedOrder(t, testDB.Pool, customerID, 10.00, "PLACED")
		SeedOrder(t, testDB.Pool, customerID, 20.00, "COMPLETED")

		count, err := orderRepo.CountByCustomer(ctx, customerID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		count, err = orderRepo.CountByCustomer(ctx, customerID+1)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("ListSince filters by creation time", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		customerID := SeedCustomer(t, testDB.Pool, "alice@example.com")
		SeedOrder(t, testDB.Pool, customerID, 10.00, "PLACED")

		orders, err := orderRepo.ListSince(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Len(t, orders, 1)

		orders, err = orderRepo.ListSince(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestPaymentRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	paymentRepo := repository.NewPaymentRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Create, pay and refund", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		customerID := SeedCustomer(t, testDB.Pool, "alice@example.com")
		orderID := SeedOrder(t, testDB.Pool, customerID, 24.48, "PLACED")

		payment := &model.Payment{
			ID:        uuid.New(),
			OrderID:   orderID,
			Amount:    24.48,
			Status:    model.PaymentStatusPending,
			CreatedAt: time.Now(),
		}
		require.NoError(t, paymentRepo.Create(ctx, nil, payment))

		method := "card"
		require.NoError(t, paymentRepo.UpdateStatus(ctx, nil, payment.ID, model.PaymentStatusPaid, &method))

		found, err := paymentRepo.GetByOrderID(ctx, orderID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, model.PaymentStatusPaid, found.Status)
		require.NotNil(t, found.Method)
		assert.Equal(t, "card", *found.Method)

		// Refund keeps the method recorded at payment time.
		require.NoError(t, paymentRepo.UpdateStatus(ctx, nil, payment.ID, model.PaymentStatusRefunded, nil))

		found, err = paymentRepo.GetByOrderID(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusRefunded, found.Status)
		require.NotNil(t, found.Method)
		assert.Equal(t, "card", *found.Method)
	})

	t.Run("Second payment for same order violates uniqueness", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		customerID := SeedCustomer(t, testDB.Pool, "alice@example.com")
		orderID := SeedOrder(t, testDB.Pool, customerID, 10.00, "PLACED")

		first := &model.Payment{
			ID: uuid.New(), OrderID: orderID, Amount: 10.00,
			Status: model.PaymentStatusPending, CreatedAt: time.Now(),
		}
		require.NoError(t, paymentRepo.Create(ctx, nil, first))

		second := &model.Payment{
			ID: uuid.New(), OrderID: orderID, Amount: 10.00,
			Status: model.PaymentStatusPending, CreatedAt: time.Now(),
		}
		err := paymentRepo.Create(ctx, nil, second)
		require.Error(t, err)
	})

	t.Run("GetByOrderID returns nil when absent", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		payment, err := paymentRepo.GetByOrderID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, payment)
	})
}
