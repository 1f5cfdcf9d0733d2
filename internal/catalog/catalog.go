// Package catalog loads product catalogue feeds: gzipped CSV files with
// one product per line (sku,name,price,stock[,category]), fetched from
// the local filesystem or from S3.
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"retail-cli/internal/model"
)

// Loader defines the interface for loading product feeds.
type Loader interface {
	// Load reads a gzipped CSV product feed and returns the parsed rows.
	Load(ctx context.Context, path string) ([]model.ProductInput, error)
}

// parseRecord converts one CSV record into a product input. The
// category column is optional; a missing or empty value stays absent
// rather than becoming an empty-string category.
func parseRecord(record []string) (model.ProductInput, error) {
	if len(record) < 4 {
		return model.ProductInput{}, fmt.Errorf("expected at least 4 columns (sku,name,price,stock), got %d", len(record))
	}

	sku := strings.TrimSpace(record[0])
	name := strings.TrimSpace(record[1])
	if sku == "" || name == "" {
		return model.ProductInput{}, fmt.Errorf("sku and name are required")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return model.ProductInput{}, fmt.Errorf("invalid price %q: %w", record[2], err)
	}
	if price < 0 {
		return model.ProductInput{}, fmt.Errorf("price cannot be negative")
	}

	stock, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return model.ProductInput{}, fmt.Errorf("invalid stock %q: %w", record[3], err)
	}
	if stock < 0 {
		return model.ProductInput{}, fmt.Errorf("stock cannot be negative")
	}

	input := model.ProductInput{
		SKU:   sku,
		Name:  name,
		Price: price,
		Stock: stock,
	}

	if len(record) >= 5 {
		if category := strings.TrimSpace(record[4]); category != "" {
			input.Category = &category
		}
	}

	return input, nil
}

// isHeader reports whether a CSV record is the optional header row.
func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "sku")
}
