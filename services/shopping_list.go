package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/woedy/weekend-chef-backend/entity"
	"github.com/woedy/weekend-chef-backend/pkg/apperr"
)

type ShoppingListLine struct {
	Ingredient   string          `json:"ingredient"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
}

type ShoppingListOut struct {
	OrderItemID uint               `json:"orderItemId"`
	Dish        string             `json:"dish"`
	Lines       []ShoppingListLine `json:"lines"`
	TotalPrice  decimal.Decimal    `json:"totalPrice"`
}

// ShoppingList aggregates the ingredient quantities a chef needs to cook
// one order item, scaled by the ordered quantity, with per-line and grand
// total prices.
func (s *OrderService) ShoppingList(orderID, itemID uint, role string) (*ShoppingListOut, error) {
	if role != entity.RoleAdmin && role != entity.RoleChef {
		return nil, apperr.New(apperr.Forbidden, "only kitchen staff may view shopping lists")
	}

	oi, err := s.Repo.GetOrderItemPriced(orderID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "order item not found in this order")
	}
	if err != nil {
		return nil, err
	}

	qty := decimal.NewFromInt(int64(oi.Quantity))
	out := &ShoppingListOut{
		OrderItemID: oi.ID,
		Dish:        oi.CartItem.Dish.Name,
		Lines:       make([]ShoppingListLine, 0, len(oi.CartItem.Dish.Ingredients)),
		TotalPrice:  decimal.Zero,
	}

	// Same-named ingredients collapse into one line.
	index := map[string]int{}
	for _, ing := range oi.CartItem.Dish.Ingredients {
		need := ing.Quantity.Mul(qty)
		price := ing.Price.Mul(need).Round(2)
		if i, ok := index[ing.Name]; ok {
			out.Lines[i].Quantity = out.Lines[i].Quantity.Add(need)
			out.Lines[i].TotalPrice = out.Lines[i].TotalPrice.Add(price)
		} else {
			index[ing.Name] = len(out.Lines)
			out.Lines = append(out.Lines, ShoppingListLine{
				Ingredient:   ing.Name,
				Quantity:     need,
				Unit:         ing.Unit,
				PricePerUnit: ing.Price,
				TotalPrice:   price,
			})
		}
		out.TotalPrice = out.TotalPrice.Add(price)
	}
	out.TotalPrice = out.TotalPrice.Round(2)
	return out, nil
}
