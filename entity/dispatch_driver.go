package entity

import (
	"gorm.io/gorm"
)

type DispatchDriver struct {
	gorm.Model
	UserID    uint `json:"userId" gorm:"uniqueIndex"`
	User      User `json:"-"`
	Available bool `json:"available"`

	Orders []Order `gorm:"foreignKey:DispatchDriverID" json:"-"`
}
