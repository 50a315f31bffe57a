package entity

import (
	"gorm.io/gorm"
)

// OrderItem snapshots the cart item by reference. Prices are never copied;
// they are always derived live from the referenced dish and customizations.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	CartItemID uint     `json:"cartItemId"`
	CartItem   CartItem `json:"-"`

	Quantity int `json:"quantity"`
}
