package entity

import (
	"gorm.io/gorm"
)

// Roles understood by the auth middleware.
const (
	RoleClient   = "client"
	RoleChef     = "chef"
	RoleDispatch = "dispatch"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Email       string `json:"email" gorm:"uniqueIndex"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}
