package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Option types offered against dishes.
const (
	OptionTypeMeat  = "Meat"
	OptionTypeSpice = "Spice"
	OptionTypeDough = "Dough Type"
	OptionTypeOther = "Other"
)

type CustomizationOption struct {
	gorm.Model
	OptionID    string          `json:"optionId" gorm:"uniqueIndex"`
	Name        string          `json:"name"`
	OptionType  string          `json:"optionType"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`

	Archived bool `json:"archived"`
	Active   bool `json:"active" gorm:"default:true"`
}
