package entity

import (
	"gorm.io/gorm"
)

type Client struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	Orders []Order `json:"-"`
}
