package cli

import (
	"context"
	"flag"
	"fmt"

	"retail-cli/internal/model"
)

// runProduct dispatches the product subcommands.
func (a *App) runProduct(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("product: missing action (add | list | update | delete | import)")
	}

	switch args[0] {
	case "add":
		return a.productAdd(ctx, args[1:])
	case "list":
		return a.productList(ctx, args[1:])
	case "update":
		return a.productUpdate(ctx, args[1:])
	case "delete":
		return a.productDelete(ctx, args[1:])
	case "import":
		return a.productImport(ctx, args[1:])
	default:
		return fmt.Errorf("product: unknown action %q", args[0])
	}
}

func (a *App) productAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("product add", flag.ContinueOnError)
	name := fs.String("name", "", "product name (required)")
	sku := fs.String("sku", "", "unique SKU (required)")
	price := fs.Float64("price", 0, "unit price (required)")
	stock := fs.Int("stock", 0, "initial stock count")
	category := fs.String("category", "", "optional category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := model.ProductInput{
		Name:  *name,
		SKU:   *sku,
		Price: *price,
		Stock: *stock,
	}
	if *category != "" {
		input.Category = category
	}

	product, err := a.products.Add(ctx, input)
	if err != nil {
		return err
	}

	return a.printResult("Created product:", product)
}

func (a *App) productList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("product list", flag.ContinueOnError)
	limit := fs.Int("limit", 100, "maximum rows to return")
	category := fs.String("category", "", "filter by category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cat *string
	if *category != "" {
		cat = category
	}

	products, err := a.products.List(ctx, *limit, cat)
	if err != nil {
		return err
	}

	return a.printResult("", products)
}

func (a *App) productUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("product update", flag.ContinueOnError)
	id := fs.Int64("id", 0, "product ID (required)")
	name := fs.String("name", "", "new name")
	price := fs.Float64("price", -1, "new price")
	category := fs.String("category", "", "new category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var update model.ProductUpdate
	if *name != "" {
		update.Name = name
	}
	if *price >= 0 {
		update.Price = price
	}
	if *category != "" {
		update.Category = category
	}

	product, err := a.products.Update(ctx, *id, update)
	if err != nil {
		return err
	}

	return a.printResult("Updated product:", product)
}

func (a *App) productDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("product delete", flag.ContinueOnError)
	id := fs.Int64("id", 0, "product ID (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.products.Delete(ctx, *id); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Deleted product %d\n", *id)
	return nil
}

func (a *App) productImport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("product import", flag.ContinueOnError)
	file := fs.String("file", "", "gzipped CSV feed: sku,name,price,stock[,category] (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("product import: --file is required")
	}

	created, skipped, err := a.products.Import(ctx, *file)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Imported %d products (%d skipped)\n", created, skipped)
	return nil
}
