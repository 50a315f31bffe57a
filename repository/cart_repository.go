package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/woedy/weekend-chef-backend/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetOpenCart returns the client's unpurchased cart, or gorm.ErrRecordNotFound.
func (r *CartRepository) GetOpenCart(clientID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("client_id = ? AND purchased = ?", clientID, false).
		Order("id DESC").First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreateOpenCart returns the client's open cart, creating one lazily on
// the first add-to-cart call after the previous cart was purchased. The
// unique open-cart index backstops concurrent first adds; the loser of that
// race picks up the winner's cart.
func (r *CartRepository) GetOrCreateOpenCart(clientID uint) (*entity.Cart, error) {
	c, err := r.GetOpenCart(clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = &entity.Cart{ClientID: clientID}
		if createErr := r.DB.Create(c).Error; createErr != nil {
			if c, err = r.GetOpenCart(clientID); err == nil {
				return c, nil
			}
			return nil, createErr
		}
		return c, nil
	}
	return c, err
}

// GetOpenCartWithItems preloads everything the pricing engine needs.
func (r *CartRepository) GetOpenCartWithItems(clientID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("client_id = ? AND purchased = ?", clientID, false).
		Order("id DESC").
		Preload("Items").
		Preload("Items.Dish").
		Preload("Items.Customizations").
		Preload("Items.Customizations.CustomizationOption").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetItemForClient loads a cart item only if it sits in the client's open
// cart, which doubles as the ownership check.
func (r *CartRepository) GetItemForClient(clientID, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE client_id = ? AND purchased = ?)",
			itemID, clientID, false).
		Preload("Dish").
		Preload("Customizations").
		Preload("Customizations.CustomizationOption").
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) CreateItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Create(item).Error
}

// DeleteItem removes the item if it belongs to the client's open cart and
// reports how many rows went away, so the caller can pick its double-delete
// policy.
func (r *CartRepository) DeleteItem(tx *gorm.DB, clientID, itemID uint) (int64, error) {
	res := tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE client_id = ? AND purchased = ?)",
			itemID, clientID, false).
		Delete(&entity.CartItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		if err := tx.Where("cart_item_id = ?", itemID).
			Delete(&entity.CustomizationValue{}).Error; err != nil {
			return 0, err
		}
	}
	return res.RowsAffected, res.Error
}

// ReplaceCustomizations clears and rebuilds the item's customization set.
func (r *CartRepository) ReplaceCustomizations(tx *gorm.DB, itemID uint, values []entity.CustomizationValue) error {
	if err := tx.Where("cart_item_id = ?", itemID).
		Delete(&entity.CustomizationValue{}).Error; err != nil {
		return err
	}
	for i := range values {
		values[i].CartItemID = itemID
		if err := tx.Create(&values[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// BumpVersion is the optimistic-lock write: it only succeeds when the cart
// still carries the version the caller read. Zero rows means a concurrent
// writer got there first.
func (r *CartRepository) BumpVersion(tx *gorm.DB, cartID, expected uint) (int64, error) {
	res := tx.Model(&entity.Cart{}).
		Where("id = ? AND version = ? AND purchased = ?", cartID, expected, false).
		Update("version", gorm.Expr("version + 1"))
	return res.RowsAffected, res.Error
}

// DeleteCart cascades the cart's items and their customizations.
func (r *CartRepository) DeleteCart(tx *gorm.DB, cartID uint) error {
	if err := tx.Exec(`
		DELETE FROM customization_values
		 WHERE cart_item_id IN (SELECT id FROM cart_items WHERE cart_id = ?)
	`, cartID).Error; err != nil {
		return err
	}
	if err := tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Cart{}, cartID).Error
}

func (r *CartRepository) GetCart(cartID uint) (*entity.Cart, error) {
	var c entity.Cart
	if err := r.DB.First(&c, cartID).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// MarkPurchased flips the cart terminal inside the order-placement
// transaction, guarded on the version read at the start of checkout.
func (r *CartRepository) MarkPurchased(tx *gorm.DB, cartID, expectedVersion uint) (int64, error) {
	res := tx.Model(&entity.Cart{}).
		Where("id = ? AND version = ? AND purchased = ?", cartID, expectedVersion, false).
		Updates(map[string]any{"purchased": true, "version": gorm.Expr("version + 1")})
	return res.RowsAffected, res.Error
}
