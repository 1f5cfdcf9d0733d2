package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/uuid"
)

func (a *App) runPayment(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("payment: missing action (process | refund)")
	}

	switch args[0] {
	case "process":
		return a.paymentProcess(ctx, args[1:])
	case "refund":
		return a.paymentRefund(ctx, args[1:])
	default:
		return fmt.Errorf("payment: unknown action %q", args[0])
	}
}

func (a *App) paymentProcess(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payment process", flag.ContinueOnError)
	orderID := fs.String("order", "", "order ID (required)")
	method := fs.String("method", "", "payment method, e.g. card or cash (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := uuid.Parse(*orderID)
	if err != nil {
		return fmt.Errorf("invalid order ID %q", *orderID)
	}

	payment, err := a.payments.Process(ctx, id, *method)
	if err != nil {
		return err
	}

	return a.printResult("Payment processed:", payment)
}

func (a *App) paymentRefund(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payment refund", flag.ContinueOnError)
	orderID := fs.String("order", "", "order ID (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := uuid.Parse(*orderID)
	if err != nil {
		return fmt.Errorf("invalid order ID %q", *orderID)
	}

	payment, err := a.payments.Refund(ctx, id)
	if err != nil {
		return err
	}

	return a.printResult("Payment refunded:", payment)
}
