package cli

import (
	"context"
	"flag"
	"fmt"

	"retail-cli/internal/model"
)

func (a *App) runCustomer(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("customer: missing action (add | list | search | update | delete)")
	}

	switch args[0] {
	case "add":
		return a.customerAdd(ctx, args[1:])
	case "list":
		return a.customerList(ctx, args[1:])
	case "search":
		return a.customerSearch(ctx, args[1:])
	case "update":
		return a.customerUpdate(ctx, args[1:])
	case "delete":
		return a.customerDelete(ctx, args[1:])
	default:
		return fmt.Errorf("customer: unknown action %q", args[0])
	}
}

func (a *App) customerAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("customer add", flag.ContinueOnError)
	name := fs.String("name", "", "customer name (required)")
	email := fs.String("email", "", "unique email (required)")
	phone := fs.String("phone", "", "phone number")
	city := fs.String("city", "", "city")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := model.CustomerInput{
		Name:  *name,
		Email: *email,
		Phone: *phone,
	}
	if *city != "" {
		input.City = city
	}

	customer, err := a.customers.Add(ctx, input)
	if err != nil {
		return err
	}

	return a.printResult("Created customer:", customer)
}

func (a *App) customerList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("customer list", flag.ContinueOnError)
	limit := fs.Int("limit", 100, "maximum rows to return")
	if err := fs.Parse(args); err != nil {
		return err
	}

	customers, err := a.customers.List(ctx, *limit)
	if err != nil {
		return err
	}

	return a.printResult("", customers)
}

func (a *App) customerSearch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("customer search", flag.ContinueOnError)
	email := fs.String("email", "", "filter by exact email")
	city := fs.String("city", "", "filter by city")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var emailFilter, cityFilter *string
	if *email != "" {
		emailFilter = email
	}
	if *city != "" {
		cityFilter = city
	}

	customers, err := a.customers.Search(ctx, emailFilter, cityFilter)
	if err != nil {
		return err
	}

	return a.printResult("", customers)
}

func (a *App) customerUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("customer update", flag.ContinueOnError)
	id := fs.Int64("id", 0, "customer ID (required)")
	phone := fs.String("phone", "", "new phone number")
	city := fs.String("city", "", "new city")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var update model.CustomerUpdate
	if *phone != "" {
		update.Phone = phone
	}
	if *city != "" {
		update.City = city
	}

	customer, err := a.customers.Update(ctx, *id, update)
	if err != nil {
		return err
	}

	return a.printResult("Updated customer:", customer)
}

func (a *App) customerDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("customer delete", flag.ContinueOnError)
	id := fs.Int64("id", 0, "customer ID (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	customer, err := a.customers.Delete(ctx, *id)
	if err != nil {
		return err
	}

	return a.printResult("Deleted customer:", customer)
}
