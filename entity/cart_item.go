package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"`

	ChefID uint `json:"chefId"`
	Chef   Chef `json:"-"`

	Quantity     int    `json:"quantity"`
	SpecialNotes string `json:"specialNotes"`

	Customizations []CustomizationValue `json:"customizations" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
