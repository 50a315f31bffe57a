package entity

import (
	"gorm.io/gorm"
)

// Order lifecycle states. Delivered and Cancelled are terminal.
const (
	StatusPending   = "Pending"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// OrderStatus rows are append-only; the order's current state is the latest
// row (denormalized onto Order.CurrentStatus).
type OrderStatus struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	Status string `json:"status"`
}
