package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"basePrice" gorm:"type:decimal(10,2)"`
	Quantity    int             `json:"quantity"`

	FoodCategoryID uint         `json:"foodCategoryId"`
	FoodCategory   FoodCategory `json:"-"`

	ChefID uint `json:"chefId"`
	Chef   Chef `json:"-"`

	Archived bool `json:"archived"`
	Active   bool `json:"active" gorm:"default:true"`

	Ingredients []DishIngredient `json:"ingredients" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
