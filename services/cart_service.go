package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/woedy/weekend-chef-backend/entity"
	"github.com/woedy/weekend-chef-backend/pkg/apperr"
	"github.com/woedy/weekend-chef-backend/repository"
)

// CartService mediates all mutation of a client's pre-purchase cart. Every
// write runs inside a transaction that CAS-bumps the cart version, so two
// concurrent writers cannot silently clobber each other's customizations.
type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
	UserRepo    *repository.UserRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, catr *repository.CatalogRepository, ur *repository.UserRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: catr, UserRepo: ur}
}

// ----- DTOs -----

type CustomizationIn struct {
	OptionID uint `json:"optionId" binding:"required"`
	Quantity int  `json:"quantity"`
}

type AddItemIn struct {
	DishID         uint              `json:"dishId" binding:"required"`
	ChefID         uint              `json:"chefId" binding:"required"`
	Quantity       int               `json:"quantity"`
	SpecialNotes   string            `json:"specialNotes"`
	Customizations []CustomizationIn `json:"customizations"`
}

type EditItemIn struct {
	Quantity       *int               `json:"quantity"`
	SpecialNotes   *string            `json:"specialNotes"`
	Customizations *[]CustomizationIn `json:"customizations"`
}

type CustomizationOut struct {
	OptionID uint            `json:"optionId"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type CartItemOut struct {
	ID             uint               `json:"id"`
	DishID         uint               `json:"dishId"`
	Dish           string             `json:"dish"`
	Quantity       int                `json:"quantity"`
	SpecialNotes   string             `json:"specialNotes"`
	Customizations []CustomizationOut `json:"customizations"`
	TotalPrice     decimal.Decimal    `json:"totalPrice"`
}

type CartOut struct {
	CartID    uint            `json:"cartId"`
	Items     []CartItemOut   `json:"items"`
	CartTotal decimal.Decimal `json:"cartTotal"`
}

// ----- Reads -----

// Get returns the client's open cart with per-item and running totals. A
// client with no open cart gets an empty cart back rather than an error.
func (s *CartService) Get(clientID uint) (*CartOut, error) {
	cart, err := s.CartRepo.GetOpenCartWithItems(clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &CartOut{Items: []CartItemOut{}, CartTotal: decimal.Zero}, nil
	}
	if err != nil {
		return nil, err
	}
	return cartOut(cart)
}

// ----- Mutations -----

// AddItem creates or reuses the client's open cart and appends one line.
func (s *CartService) AddItem(clientID uint, in *AddItemIn) (*CartItemOut, decimal.Decimal, error) {
	fields := map[string][]string{}
	if in.Quantity <= 0 {
		fields["quantity"] = append(fields["quantity"], "Quantity must be greater than 0.")
	}
	for _, cu := range in.Customizations {
		if cu.Quantity <= 0 {
			fields["customizations"] = append(fields["customizations"], "Customization quantity must be greater than 0.")
			break
		}
	}
	if len(fields) > 0 {
		return nil, decimal.Zero, apperr.FieldErrors(fields)
	}

	dish, err := s.CatalogRepo.GetDish(in.DishID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, decimal.Zero, apperr.Field("dishId", "Dish does not exist.").WithKind(apperr.NotFound)
	}
	if err != nil {
		return nil, decimal.Zero, err
	}
	// Archived or deleted dishes stay priceable for existing cart lines but
	// cannot be added anew.
	if dish.Archived || !dish.Active {
		return nil, decimal.Zero, apperr.Field("dishId", "Dish does not exist.").WithKind(apperr.NotFound)
	}
	if _, err := s.UserRepo.GetChef(in.ChefID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, decimal.Zero, apperr.Field("chefId", "Chef does not exist.").WithKind(apperr.NotFound)
		}
		return nil, decimal.Zero, err
	}

	values, err := s.resolveCustomizations(in.Customizations)
	if err != nil {
		return nil, decimal.Zero, err
	}

	cart, err := s.CartRepo.GetOrCreateOpenCart(clientID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	item := &entity.CartItem{
		CartID:         cart.ID,
		DishID:         dish.ID,
		ChefID:         in.ChefID,
		Quantity:       in.Quantity,
		SpecialNotes:   in.SpecialNotes,
		Customizations: values,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.BumpVersion(tx, cart.ID, cart.Version)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.New(apperr.Conflict, "cart was modified concurrently")
		}
		return s.CartRepo.CreateItem(tx, item)
	})
	if err != nil {
		return nil, decimal.Zero, err
	}

	return s.itemAndRunningTotal(clientID, item.ID)
}

// EditItem partially updates a cart line. A supplied customization list
// replaces the existing set wholesale (clear then rebuild, not merge).
func (s *CartService) EditItem(clientID, itemID uint, in *EditItemIn) (*CartItemOut, decimal.Decimal, error) {
	item, err := s.CartRepo.GetItemForClient(clientID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, decimal.Zero, apperr.New(apperr.NotFound, "cart item not found")
	}
	if err != nil {
		return nil, decimal.Zero, err
	}

	if in.Quantity != nil && *in.Quantity <= 0 {
		return nil, decimal.Zero, apperr.Field("quantity", "Quantity must be greater than 0.")
	}
	var values []entity.CustomizationValue
	if in.Customizations != nil {
		for _, cu := range *in.Customizations {
			if cu.Quantity <= 0 {
				return nil, decimal.Zero, apperr.Field("customizations", "Customization quantity must be greater than 0.")
			}
		}
		values, err = s.resolveCustomizations(*in.Customizations)
		if err != nil {
			return nil, decimal.Zero, err
		}
	}

	cart, err := s.CartRepo.GetCart(item.CartID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.BumpVersion(tx, cart.ID, cart.Version)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.New(apperr.Conflict, "cart was modified concurrently")
		}

		if in.Quantity != nil {
			item.Quantity = *in.Quantity
		}
		if in.SpecialNotes != nil {
			item.SpecialNotes = *in.SpecialNotes
		}
		// Save the scalar fields without touching the association rows;
		// ReplaceCustomizations owns those.
		if err := tx.Model(&entity.CartItem{}).Where("id = ?", item.ID).
			Updates(map[string]any{
				"quantity":      item.Quantity,
				"special_notes": item.SpecialNotes,
			}).Error; err != nil {
			return err
		}
		if in.Customizations != nil {
			return s.CartRepo.ReplaceCustomizations(tx, item.ID, values)
		}
		return nil
	})
	if err != nil {
		return nil, decimal.Zero, err
	}

	return s.itemAndRunningTotal(clientID, item.ID)
}

// RemoveItem deletes a cart line. Removing an already-removed item is a
// no-op success, so retries are harmless.
func (s *CartService) RemoveItem(clientID, itemID uint) (decimal.Decimal, error) {
	cart, err := s.CartRepo.GetOpenCart(clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.BumpVersion(tx, cart.ID, cart.Version)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.New(apperr.Conflict, "cart was modified concurrently")
		}
		_, err = s.CartRepo.DeleteItem(tx, clientID, itemID)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}

	return s.runningTotal(clientID)
}

// DeleteCart drops the client's open cart and all its items. Purchased
// carts are immutable.
func (s *CartService) DeleteCart(clientID, cartID uint) error {
	cart, err := s.CartRepo.GetCart(cartID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "cart not found")
	}
	if err != nil {
		return err
	}
	if cart.ClientID != clientID {
		return apperr.New(apperr.Forbidden, "you do not have permission to delete this cart")
	}
	if cart.Purchased {
		return apperr.New(apperr.Conflict, "cart has been purchased")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.DeleteCart(tx, cart.ID)
	})
}

// ----- helpers -----

func (s *CartService) resolveCustomizations(ins []CustomizationIn) ([]entity.CustomizationValue, error) {
	if len(ins) == 0 {
		return nil, nil
	}
	ids := make([]uint, 0, len(ins))
	for _, cu := range ins {
		ids = append(ids, cu.OptionID)
	}
	opts, err := s.CatalogRepo.GetOptionsByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]entity.CustomizationOption, len(opts))
	for _, o := range opts {
		byID[o.ID] = o
	}

	values := make([]entity.CustomizationValue, 0, len(ins))
	for _, cu := range ins {
		if _, ok := byID[cu.OptionID]; !ok {
			return nil, apperr.Field("customizations", "One or more customizations not found.").WithKind(apperr.NotFound)
		}
		values = append(values, entity.CustomizationValue{
			CustomizationOptionID: cu.OptionID,
			Quantity:              cu.Quantity,
		})
	}
	return values, nil
}

func (s *CartService) runningTotal(clientID uint) (decimal.Decimal, error) {
	cart, err := s.CartRepo.GetOpenCartWithItems(clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return CartTotal(cart.Items)
}

func (s *CartService) itemAndRunningTotal(clientID, itemID uint) (*CartItemOut, decimal.Decimal, error) {
	item, err := s.CartRepo.GetItemForClient(clientID, itemID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	out, err := cartItemOut(item)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total, err := s.runningTotal(clientID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return out, total, nil
}

func cartItemOut(it *entity.CartItem) (*CartItemOut, error) {
	total, err := CartItemTotal(it)
	if err != nil {
		return nil, err
	}
	out := &CartItemOut{
		ID:             it.ID,
		DishID:         it.DishID,
		Dish:           it.Dish.Name,
		Quantity:       it.Quantity,
		SpecialNotes:   it.SpecialNotes,
		Customizations: make([]CustomizationOut, 0, len(it.Customizations)),
		TotalPrice:     total,
	}
	for _, cv := range it.Customizations {
		out.Customizations = append(out.Customizations, CustomizationOut{
			OptionID: cv.CustomizationOptionID,
			Name:     cv.CustomizationOption.Name,
			Price:    cv.CustomizationOption.Price,
			Quantity: cv.Quantity,
		})
	}
	return out, nil
}

func cartOut(cart *entity.Cart) (*CartOut, error) {
	out := &CartOut{CartID: cart.ID, Items: make([]CartItemOut, 0, len(cart.Items))}
	total := decimal.Zero
	for i := range cart.Items {
		io, err := cartItemOut(&cart.Items[i])
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, *io)
		total = total.Add(io.TotalPrice)
	}
	out.CartTotal = total.Round(2)
	return out, nil
}
