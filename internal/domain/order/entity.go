// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/gamestore-backend/internal/domain/cart"
)

// Status represents the order status
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
)

// FormData represents the checkout form submitted with an order. Email and
// ExtraInfo are optional; the wilaya is the shipping-destination region code.
type FormData struct {
	FullName    string `json:"full_name" binding:"required,min=2"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Wilaya      string `json:"wilaya" binding:"required"`
	ExtraInfo   string `json:"extra_info"`
}

// Order represents a confirmed submission. Orders are immutable once
// created; the status progression beyond pending is declared but never
// driven here.
type Order struct {
	ID string `json:"id"`
	FormData
	Items       []cart.Item `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	OrderDate   time.Time   `json:"order_date"`
	Status      Status      `json:"status"`
}
