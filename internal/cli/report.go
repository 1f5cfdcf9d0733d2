package cli

import (
	"context"
	"fmt"
)

func (a *App) runReport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("report: missing action (top_products | revenue | orders | frequent_customers)")
	}

	switch args[0] {
	case "top_products":
		sales, err := a.reports.TopSellingProducts(ctx)
		if err != nil {
			return err
		}
		return a.printResult("Top selling products:", sales)

	case "revenue":
		revenue, err := a.reports.RevenueLastMonth(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Revenue (last 30 days): %.2f\n", revenue)
		return nil

	case "orders":
		counts, err := a.reports.OrdersPerCustomer(ctx)
		if err != nil {
			return err
		}
		return a.printResult("Orders per customer:", counts)

	case "frequent_customers":
		counts, err := a.reports.FrequentCustomers(ctx)
		if err != nil {
			return err
		}
		return a.printResult("Frequent customers:", counts)

	default:
		return fmt.Errorf("report: unknown action %q", args[0])
	}
}
