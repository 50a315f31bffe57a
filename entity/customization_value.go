package entity

import (
	"gorm.io/gorm"
)

// CustomizationValue is a chosen quantity of a CustomizationOption attached
// to one cart item.
type CustomizationValue struct {
	gorm.Model
	CartItemID uint     `json:"cartItemId"`
	CartItem   CartItem `json:"-"`

	CustomizationOptionID uint                `json:"customizationOptionId"`
	CustomizationOption   CustomizationOption `json:"-"`

	Quantity int `json:"quantity"`
}
