package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"retail-cli/internal/model"

	"github.com/google/uuid"
)

// itemFlags collects repeated --item values of the form "productID:quantity".
type itemFlags []model.OrderItemRequest

func (f *itemFlags) String() string {
	parts := make([]string, len(*f))
	for i, item := range *f {
		parts[i] = fmt.Sprintf("%d:%d", item.ProductID, item.Quantity)
	}
	return strings.Join(parts, ",")
}

func (f *itemFlags) Set(value string) error {
	productRaw, quantityRaw, ok := strings.Cut(value, ":")
	if !ok {
		return fmt.Errorf("invalid item %q, expected productID:quantity", value)
	}

	productID, err := strconv.ParseInt(productRaw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product ID in item %q", value)
	}

	quantity, err := strconv.Atoi(quantityRaw)
	if err != nil {
		return fmt.Errorf("invalid quantity in item %q", value)
	}

	*f = append(*f, model.OrderItemRequest{ProductID: productID, Quantity: quantity})
	return nil
}

func (a *App) runOrder(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("order: missing action (create | show | cancel | list)")
	}

	switch args[0] {
	case "create":
		return a.orderCreate(ctx, args[1:])
	case "show":
		return a.orderShow(ctx, args[1:])
	case "cancel":
		return a.orderCancel(ctx, args[1:])
	case "list":
		return a.orderList(ctx, args[1:])
	default:
		return fmt.Errorf("order: unknown action %q", args[0])
	}
}

func (a *App) orderCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order create", flag.ContinueOnError)
	customerID := fs.Int64("customer", 0, "customer ID (required)")
	var items itemFlags
	fs.Var(&items, "item", "order line as productID:quantity (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := &model.OrderRequest{
		CustomerID: *customerID,
		Items:      items,
	}

	details, err := a.orders.Create(ctx, req)
	if err != nil {
		return err
	}

	return a.printResult("Order created:", details)
}

func (a *App) orderShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order show", flag.ContinueOnError)
	orderID := fs.String("order", "", "order ID (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := uuid.Parse(*orderID)
	if err != nil {
		return fmt.Errorf("invalid order ID %q", *orderID)
	}

	details, err := a.orders.Get(ctx, id)
	if err != nil {
		return err
	}

	return a.printResult("", details)
}

func (a *App) orderCancel(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order cancel", flag.ContinueOnError)
	orderID := fs.String("order", "", "order ID (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := uuid.Parse(*orderID)
	if err != nil {
		return fmt.Errorf("invalid order ID %q", *orderID)
	}

	order, err := a.orders.Cancel(ctx, id)
	if err != nil {
		return err
	}

	return a.printResult("Order cancelled:", order)
}

func (a *App) orderList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order list", flag.ContinueOnError)
	customerID := fs.Int64("customer", 0, "customer ID (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	orders, err := a.orders.ListByCustomer(ctx, *customerID)
	if err != nil {
		return err
	}

	return a.printResult("", orders)
}
