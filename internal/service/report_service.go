package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"retail-cli/internal/model"
	"retail-cli/internal/repository"

	"github.com/rs/zerolog"
)

// topProductsLimit caps the top-selling products report.
const topProductsLimit = 5

// frequentOrderThreshold is the order count a customer must exceed to
// count as frequent.
const frequentOrderThreshold = 2

// reportService implements ReportService. All reports read full tables
// and aggregate client-side; acceptable only at small scale.
type reportService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewReportService creates a new report service.
func NewReportService(orderRepo repository.OrderRepository, logger zerolog.Logger) ReportService {
	return &reportService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "report").Logger(),
	}
}

// TopSellingProducts sums quantity per product across all order items
// and returns the top five by quantity descending.
func (s *reportService) TopSellingProducts(ctx context.Context) ([]model.ProductSales, error) {
	items, err := s.orderRepo.ListAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}

	totals := make(map[int64]int)
	for _, item := range items {
		totals[item.ProductID] += item.Quantity
	}

	sales := make([]model.ProductSales, 0, len(totals))
	for productID, quantity := range totals {
		sales = append(sales, model.ProductSales{
			ProductID:     productID,
			TotalQuantity: quantity,
		})
	}

	// Quantity descending; product ID breaks ties to keep output stable.
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].TotalQuantity != sales[j].TotalQuantity {
			return sales[i].TotalQuantity > sales[j].TotalQuantity
		}
		return sales[i].ProductID < sales[j].ProductID
	})

	if len(sales) > topProductsLimit {
		sales = sales[:topProductsLimit]
	}

	s.logger.Debug().Int("count", len(sales)).Msg("top selling products computed")

	return sales, nil
}

// RevenueLastMonth sums order totals over the last 30 days.
func (s *reportService) RevenueLastMonth(ctx context.Context) (float64, error) {
	since := time.Now().AddDate(0, 0, -30)

	orders, err := s.orderRepo.ListSince(ctx, since)
	if err != nil {
		return 0, fmt.Errorf("failed to load orders: %w", err)
	}

	revenue := 0.0
	for _, order := range orders {
		revenue += order.TotalAmount
	}

	s.logger.Debug().
		Time("since", since).
		Int("orders", len(orders)).
		Float64("revenue", revenue).
		Msg("revenue computed")

	return revenue, nil
}

// OrdersPerCustomer counts orders per customer across the whole table.
func (s *reportService) OrdersPerCustomer(ctx context.Context) ([]model.CustomerOrderCount, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	counts := make(map[int64]int)
	for _, order := range orders {
		counts[order.CustomerID]++
	}

	result := make([]model.CustomerOrderCount, 0, len(counts))
	for customerID, count := range counts {
		result = append(result, model.CustomerOrderCount{
			CustomerID:  customerID,
			TotalOrders: count,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CustomerID < result[j].CustomerID
	})

	return result, nil
}

// FrequentCustomers returns customers with strictly more than two orders.
func (s *reportService) FrequentCustomers(ctx context.Context) ([]model.CustomerOrderCount, error) {
	counts, err := s.OrdersPerCustomer(ctx)
	if err != nil {
		return nil, err
	}

	frequent := make([]model.CustomerOrderCount, 0)
	for _, c := range counts {
		if c.TotalOrders > frequentOrderThreshold {
			frequent = append(frequent, c)
		}
	}

	return frequent, nil
}
