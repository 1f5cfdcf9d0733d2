package model

import (
	"time"

	"github.com/google/uuid"
)

// Payment represents the payment for an order. At most one payment row
// exists per order; Amount always equals the order total.
type Payment struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	OrderID   uuid.UUID     `json:"orderId" db:"order_id"`
	Amount    float64       `json:"amount" db:"amount"`
	Method    *string       `json:"method,omitempty" db:"method"`
	Status    PaymentStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}
