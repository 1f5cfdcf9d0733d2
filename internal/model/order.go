package model

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a customer order. TotalAmount is computed at creation
// time and never recomputed afterwards.
type Order struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	CustomerID  int64       `json:"customerId" db:"customer_id"`
	TotalAmount float64     `json:"totalAmount" db:"total_amount"`
	Status      OrderStatus `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}

// OrderItem represents a line item in an order. Price is the product
// price snapshotted at order-creation time; later product price changes
// must not alter the value of historical orders.
type OrderItem struct {
	ID        uuid.UUID `json:"-" db:"id"`
	OrderID   uuid.UUID `json:"-" db:"order_id"`
	ProductID int64     `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     float64   `json:"price" db:"price"`
}

// OrderItemRequest represents a single item in an order creation request.
type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderRequest represents the request payload for creating an order.
type OrderRequest struct {
	CustomerID int64              `json:"customerId"`
	Items      []OrderItemRequest `json:"items"`
}

// OrderDetails is the fully joined view of an order: the order row, the
// owning customer and the line items.
type OrderDetails struct {
	Order    Order       `json:"order"`
	Customer *Customer   `json:"customer,omitempty"`
	Items    []OrderItem `json:"items"`
}
