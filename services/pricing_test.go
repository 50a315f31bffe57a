package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/woedy/weekend-chef-backend/entity"
	"github.com/woedy/weekend-chef-backend/pkg/apperr"
)

func cartItem(price string, qty int, customizations ...entity.CustomizationValue) *entity.CartItem {
	it := &entity.CartItem{Quantity: qty, Customizations: customizations}
	it.Dish.ID = 1
	it.Dish.BasePrice = decimal.RequireFromString(price)
	return it
}

func customization(price string, qty int) entity.CustomizationValue {
	cv := entity.CustomizationValue{Quantity: qty}
	cv.CustomizationOption.Price = decimal.RequireFromString(price)
	return cv
}

func TestCartItemTotal(t *testing.T) {
	// base 10.00, qty 2, one customization 1.50 x1: (10.00 + 1.50) * 2
	got, err := CartItemTotal(cartItem("10.00", 2, customization("1.50", 1)))
	if err != nil {
		t.Fatalf("CartItemTotal: %v", err)
	}
	wantDecimal(t, got, "23.00")
}

func TestCartItemTotalNoCustomizations(t *testing.T) {
	got, err := CartItemTotal(cartItem("7.25", 3))
	if err != nil {
		t.Fatalf("CartItemTotal: %v", err)
	}
	wantDecimal(t, got, "21.75")
}

func TestCartItemTotalCustomizationQuantityMultiplies(t *testing.T) {
	// (4.00 + 0.50*3) * 2 = 11.00
	got, err := CartItemTotal(cartItem("4.00", 2, customization("0.50", 3)))
	if err != nil {
		t.Fatalf("CartItemTotal: %v", err)
	}
	wantDecimal(t, got, "11.00")
}

func TestCartItemTotalRejectsBadQuantity(t *testing.T) {
	if _, err := CartItemTotal(cartItem("10.00", 0)); !apperr.IsKind(err, apperr.InvalidState) {
		t.Fatalf("quantity 0: got %v, want InvalidState", err)
	}
	if _, err := CartItemTotal(cartItem("10.00", 2, customization("1.00", 0))); !apperr.IsKind(err, apperr.InvalidState) {
		t.Fatalf("customization quantity 0: got %v, want InvalidState", err)
	}
}

func TestCartItemTotalRejectsMissingDish(t *testing.T) {
	it := &entity.CartItem{Quantity: 1}
	if _, err := CartItemTotal(it); !apperr.IsKind(err, apperr.InvalidState) {
		t.Fatalf("missing dish: got %v, want InvalidState", err)
	}
}

func TestOrderItemTotalUsesOrderQuantity(t *testing.T) {
	oi := &entity.OrderItem{Quantity: 3}
	oi.CartItem = *cartItem("10.00", 2, customization("1.50", 1))
	got, err := OrderItemTotal(oi)
	if err != nil {
		t.Fatalf("OrderItemTotal: %v", err)
	}
	// order quantity 3 wins over the snapshot's 2
	wantDecimal(t, got, "34.50")
}

func TestOrderTotalSumsItems(t *testing.T) {
	a := entity.OrderItem{Quantity: 2}
	a.CartItem = *cartItem("10.00", 2, customization("1.50", 1))
	b := entity.OrderItem{Quantity: 1}
	b.CartItem = *cartItem("5.00", 1)
	got, err := OrderTotal([]entity.OrderItem{a, b})
	if err != nil {
		t.Fatalf("OrderTotal: %v", err)
	}
	wantDecimal(t, got, "28.00")
}

func TestCartTotalSumsItems(t *testing.T) {
	items := []entity.CartItem{
		*cartItem("10.00", 2, customization("1.50", 1)),
		*cartItem("5.00", 1),
	}
	got, err := CartTotal(items)
	if err != nil {
		t.Fatalf("CartTotal: %v", err)
	}
	wantDecimal(t, got, "28.00")
}
