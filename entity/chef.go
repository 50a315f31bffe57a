package entity

import (
	"gorm.io/gorm"
)

type Chef struct {
	gorm.Model
	UserID      uint   `json:"userId" gorm:"uniqueIndex"`
	User        User   `json:"-"`
	KitchenName string `json:"kitchenName"`

	Dishes []Dish `json:"-"`
}
