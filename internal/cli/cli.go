// Package cli implements the retail command-line surface: subcommand
// groups for products, customers, orders, payments and reports, plus
// the HTTP serve mode.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"retail-cli/internal/config"
	"retail-cli/internal/service"

	"github.com/rs/zerolog"
)

const usage = `Usage: retail <command> <action> [flags]

Commands:
  product   add | list | update | delete | import
  customer  add | list | search | update | delete
  order     create | show | cancel | list
  payment   process | refund
  report    top_products | revenue | orders | frequent_customers
  serve     run the HTTP API server

Run 'retail <command> <action> -h' for flags.`

// App wires the services into the command-line surface.
type App struct {
	products  service.ProductService
	customers service.CustomerService
	orders    service.OrderService
	payments  service.PaymentService
	reports   service.ReportService
	cfg       *config.Config
	logger    zerolog.Logger
	stdout    io.Writer
}

// New creates a new CLI application.
func New(
	products service.ProductService,
	customers service.CustomerService,
	orders service.OrderService,
	payments service.PaymentService,
	reports service.ReportService,
	cfg *config.Config,
	logger zerolog.Logger,
	stdout io.Writer,
) *App {
	return &App{
		products:  products,
		customers: customers,
		orders:    orders,
		payments:  payments,
		reports:   reports,
		cfg:       cfg,
		logger:    logger.With().Str("component", "cli").Logger(),
		stdout:    stdout,
	}
}

// Run dispatches a command line. The first argument selects the
// command group, the second the action within it.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.stdout, usage)
		return nil
	}

	switch args[0] {
	case "product":
		return a.runProduct(ctx, args[1:])
	case "customer":
		return a.runCustomer(ctx, args[1:])
	case "order":
		return a.runOrder(ctx, args[1:])
	case "payment":
		return a.runPayment(ctx, args[1:])
	case "report":
		return a.runReport(ctx, args[1:])
	case "serve":
		return a.runServe(ctx)
	case "help", "-h", "--help":
		fmt.Fprintln(a.stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// printResult writes an optional label line followed by the value as
// indented JSON to stdout.
func (a *App) printResult(label string, v interface{}) error {
	if label != "" {
		fmt.Fprintln(a.stdout, label)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	fmt.Fprintln(a.stdout, string(data))
	return nil
}
