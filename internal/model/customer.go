package model

import "time"

// Customer represents a registered customer.
type Customer struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	City      *string   `json:"city,omitempty" db:"city"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CustomerInput carries the fields needed to create a customer.
type CustomerInput struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone string  `json:"phone"`
	City  *string `json:"city,omitempty"`
}

// CustomerUpdate carries a partial customer update. Only phone and city
// may be changed after creation; nil fields are left untouched.
type CustomerUpdate struct {
	Phone *string `json:"phone,omitempty"`
	City  *string `json:"city,omitempty"`
}

// IsEmpty reports whether the update contains no fields.
func (u CustomerUpdate) IsEmpty() bool {
	return u.Phone == nil && u.City == nil
}
