package model

import "time"

// Product represents a product in the retail catalogue.
type Product struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	SKU       string    `json:"sku" db:"sku"`
	Price     float64   `json:"price" db:"price"`
	Stock     int       `json:"stock" db:"stock"`
	Category  *string   `json:"category,omitempty" db:"category"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ProductInput carries the fields needed to create a product.
// Category is optional and omitted from the insert entirely when absent.
type ProductInput struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category *string `json:"category,omitempty"`
}

// ProductUpdate carries a partial product update. Nil fields are left
// untouched. Stock is adjusted through the order lifecycle, not here.
type ProductUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Category *string  `json:"category,omitempty"`
}

// IsEmpty reports whether the update contains no fields.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Price == nil && u.Category == nil
}
