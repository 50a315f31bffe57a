package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DishIngredient is the per-dish quantity of an ingredient, used to build
// shopping lists for order items.
type DishIngredient struct {
	gorm.Model
	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"`

	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity" gorm:"type:decimal(10,2)"`
	Unit     string          `json:"unit"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
}
