package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderID string `json:"orderId" gorm:"uniqueIndex"`

	ClientID uint   `json:"clientId"`
	Client   Client `json:"-"`

	DispatchDriverID *uint           `json:"dispatchDriverId"`
	DispatchDriver   *DispatchDriver `json:"-"`

	// Recomputed from items via the pricing engine, never hand-edited.
	TotalPrice decimal.Decimal `json:"totalPrice" gorm:"type:decimal(10,2)"`
	Paid       bool            `json:"paid"`

	DeliveryFee decimal.Decimal `json:"deliveryFee" gorm:"type:decimal(10,2)"`
	Tax         decimal.Decimal `json:"tax" gorm:"type:decimal(10,2)"`

	LocationName   string `json:"locationName"`
	DigitalAddress string `json:"digitalAddress"`

	// Denormalized copy of the latest OrderStatus row.
	CurrentStatus string `json:"currentStatus"`

	Items    []OrderItem    `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Statuses []OrderStatus  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Payments []OrderPayment `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
