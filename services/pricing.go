package services

import (
	"github.com/shopspring/decimal"

	"github.com/woedy/weekend-chef-backend/entity"
	"github.com/woedy/weekend-chef-backend/pkg/apperr"
)

// Pricing is pure arithmetic over already-loaded rows:
//
//	total = (dish.base_price + Σ option.price × customization.qty) × item.qty
//
// rounded to 2 decimal places. Nothing here touches the database; callers
// must preload Dish and Customizations.CustomizationOption.

// CartItemTotal prices one cart line. Quantity <= 0 or a missing dish row is
// an invariant violation, not user input, so it surfaces as InvalidState.
func CartItemTotal(it *entity.CartItem) (decimal.Decimal, error) {
	if it.Quantity <= 0 {
		return decimal.Zero, apperr.Newf(apperr.InvalidState, "cart item %d has quantity %d", it.ID, it.Quantity)
	}
	if it.Dish.ID == 0 {
		return decimal.Zero, apperr.Newf(apperr.InvalidState, "cart item %d has no dish loaded", it.ID)
	}

	unit := it.Dish.BasePrice
	for _, cv := range it.Customizations {
		if cv.Quantity <= 0 {
			return decimal.Zero, apperr.Newf(apperr.InvalidState, "customization %d has quantity %d", cv.ID, cv.Quantity)
		}
		unit = unit.Add(cv.CustomizationOption.Price.Mul(decimal.NewFromInt(int64(cv.Quantity))))
	}

	return unit.Mul(decimal.NewFromInt(int64(it.Quantity))).Round(2), nil
}

// OrderItemTotal prices an order line through its snapshotted cart item but
// with the order line's own quantity.
func OrderItemTotal(oi *entity.OrderItem) (decimal.Decimal, error) {
	if oi.Quantity <= 0 {
		return decimal.Zero, apperr.Newf(apperr.InvalidState, "order item %d has quantity %d", oi.ID, oi.Quantity)
	}
	ci := oi.CartItem
	ci.Quantity = oi.Quantity
	return CartItemTotal(&ci)
}

// OrderTotal sums the live item totals. It is recomputed wholesale on every
// item or payment change and then persisted onto the order row.
func OrderTotal(items []entity.OrderItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for i := range items {
		t, err := OrderItemTotal(&items[i])
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(t)
	}
	return total.Round(2), nil
}

// CartTotal is the running pre-purchase total returned to the client on
// every cart mutation. It is display-only and never persisted.
func CartTotal(items []entity.CartItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for i := range items {
		t, err := CartItemTotal(&items[i])
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(t)
	}
	return total.Round(2), nil
}
