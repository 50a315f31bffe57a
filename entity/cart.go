package entity

import (
	"gorm.io/gorm"
)

// Cart is a client's pre-purchase collection of items. Once Purchased flips
// true the cart is terminal; the next add-to-cart creates a fresh one.
// Version is bumped compare-and-swap style on every mutation so concurrent
// writers fail fast instead of losing customizations.
type Cart struct {
	gorm.Model
	ClientID  uint   `json:"clientId" gorm:"index"`
	Client    Client `json:"-"`
	Purchased bool   `json:"purchased"`
	Version   uint   `json:"version"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
