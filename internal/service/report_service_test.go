package service

import (
	"context"
	"testing"
	"time"

	"retail-cli/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_TopSellingProducts(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	items := []model.OrderItem{
		{ID: uuid.New(), ProductID: 10, Quantity: 2, Price: 9.99},
		{ID: uuid.New(), ProductID: 11, Quantity: 1, Price: 4.50},
		{ID: uuid.New(), ProductID: 10, Quantity: 3, Price: 9.99},
	}

	mockOrderRepo := new(MockOrderRepository)
	service := NewReportService(mockOrderRepo, logger)

	mockOrderRepo.On("ListAllItems", ctx).Return(items, nil)

	sales, err := service.TopSellingProducts(ctx)

	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, model.ProductSales{ProductID: 10, TotalQuantity: 5}, sales[0])
	assert.Equal(t, model.ProductSales{ProductID: 11, TotalQuantity: 1}, sales[1])
}

func TestReportService_TopSellingProducts_CapsAtFive(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	items := make([]model.OrderItem, 0, 7)
	for i := 1; i <= 7; i++ {
		items = append(items, model.OrderItem{
			ID:        uuid.New(),
			ProductID: int64(i),
			Quantity:  i,
			Price:     1.00,
		})
	}

	mockOrderRepo := new(MockOrderRepository)
	service := NewReportService(mockOrderRepo, logger)

	mockOrderRepo.On("ListAllItems", ctx).Return(items, nil)

	sales, err := service.TopSellingProducts(ctx)

	require.NoError(t, err)
	require.Len(t, sales, 5)
	assert.Equal(t, int64(7), sales[0].ProductID)
	assert.Equal(t, 7, sales[0].TotalQuantity)
	assert.Equal(t, int64(3), sales[4].ProductID)
}

func TestReportService_TopSellingProducts_Empty(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	service := NewReportService(mockOrderRepo, logger)

	mockOrderRepo.On("ListAllItems", ctx).Return([]model.OrderItem{}, nil)

	sales, err := service.TopSellingProducts(ctx)

	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestReportService_RevenueLastMonth(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orders := []model.Order{
		{ID: uuid.New(), CustomerID: 1, TotalAmount: 24.48, Status: model.OrderStatusPlaced},
		{ID: uuid.New(), CustomerID: 2, TotalAmount: 10.00, Status: model.OrderStatusCompleted},
		{ID: uuid.New(), CustomerID: 1, TotalAmount: 5.52, Status: model.OrderStatusCancelled},
	}

	mockOrderRepo := new(MockOrderRepository)
	service := NewReportService(mockOrderRepo, logger)

	mockOrderRepo.On("ListSince", ctx, mock.AnythingOfType("time.Time")).Return(orders, nil)

	revenue, err := service.RevenueLastMonth(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 40.00, revenue, 0.0001)

	// The window must reach back 30 days.
	since := mockOrderRepo.Calls[0].Arguments.Get(1).(time.Time)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), since, time.Minute)
}

func TestReportService_OrdersPerCustomer(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	orders := []model.Order{
		{ID: uuid.New(), CustomerID: 2, TotalAmount: 1},
		{ID: uuid.New(), CustomerID: 1, TotalAmount: 1},
		{ID: uuid.New(), CustomerID: 2, TotalAmount: 1},
		{ID: uuid.New(), CustomerID: 2, TotalAmount: 1},
	}

	mockOrderRepo := new(MockOrderRepository)
	service := NewReportService(mockOrderRepo, logger)

	mockOrderRepo.On("ListAll", ctx).Return(orders, nil)

	counts, err := service.OrdersPerCustomer(ctx)

	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, model.CustomerOrderCount{CustomerID: 1, TotalOrders: 1}, counts[0])
	assert.Equal(t, model.CustomerOrderCount{CustomerID: 2, TotalOrders: 3}, counts[1])
}

func TestReportService_FrequentCustomers(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	// Customer 1 has exactly two orders and must not count as frequent;
	// the threshold is strictly more than two.
	orders := []model.Order{
		{ID: uuid.New(), CustomerID: 1},
		{ID: uuid.New(), CustomerID: 1},
		{ID: uuid.New(), CustomerID: 2},
		{ID: uuid.New(), CustomerID: 2},
		{ID: uuid.New(), CustomerID: 2},
	}

	mockOrderRepo := new(MockOrderRepository)
	service := NewReportService(mockOrderRepo, logger)

	mockOrderRepo.On("ListAll", ctx).Return(orders, nil)

	frequent, err := service.FrequentCustomers(ctx)

	require.NoError(t, err)
	require.Len(t, frequent, 1)
	assert.Equal(t, int64(2), frequent[0].CustomerID)
	assert.Equal(t, 3, frequent[0].TotalOrders)
}
