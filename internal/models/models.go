package models

import (
	"time"
)

type MenuItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"` // URL or /static path; placeholder when empty
	IsVeg       *bool   `json:"isVeg,omitempty"`
}

type Order struct {
	ID           int       `json:"id"`
	OrderRef     string    `json:"order_ref"` // public identifier used in API paths
	CustomerName string    `json:"customer_name"`
	IsPaid       bool      `json:"is_paid"`
	Status       string    `json:"status"` // "pending", "preparing", "served", "cancelled"
	CreatedAt    time.Time `json:"created_at"`
}

// OrderUpdate is the PUT /api/orders/{orderId} payload. Pointer fields
// distinguish "absent" from zero values: only non-nil fields reach storage.
type OrderUpdate struct {
	CustomerName *string `json:"customerName"`
	IsPaid       *bool   `json:"isPaid"`
	Status       *string `json:"status"`
}

// IsEmpty reports whether no recognized field is present. An empty update is
// still issued to the store as a no-op write.
func (u OrderUpdate) IsEmpty() bool {
	return u.CustomerName == nil && u.IsPaid == nil && u.Status == nil
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash
}
