package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderPayment is additive bookkeeping of money received against an order.
// Rows are soft-deleted via Active=false, never hard-deleted.
type OrderPayment struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	PaymentMethod string          `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	Active        bool            `json:"active" gorm:"default:true"`
}
