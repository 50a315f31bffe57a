package entity

import (
	"gorm.io/gorm"
)

type FoodCategory struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`

	Dishes []Dish `json:"-"`
}
