package services

import (
	"testing"

	"gorm.io/gorm"

	"github.com/woedy/weekend-chef-backend/entity"
	"github.com/woedy/weekend-chef-backend/pkg/apperr"
)

// fills a client's cart with two lines, 10.00 x2 with a 1.50 customization
// (23.00) plus 5.00 x1, then places the order.
func placeExampleOrder(t *testing.T, db *gorm.DB, client *entity.Client) *PlaceOrderOut {
	t.Helper()
	carts := newCartService(db)
	orders := newOrderService(db)
	chef := makeChef(t, db)
	dish := makeDish(t, db, chef.ID, "10.00")
	opt := makeOption(t, db, "1.50")
	side := makeDish(t, db, chef.ID, "5.00")

	if _, _, err := carts.AddItem(client.ID, &AddItemIn{
		DishID:         dish.ID,
		ChefID:         chef.ID,
		Quantity:       2,
		Customizations: []CustomizationIn{{OptionID: opt.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, _, err := carts.AddItem(client.ID, &AddItemIn{DishID: side.ID, ChefID: chef.ID, Quantity: 1}); err != nil {
		t.Fatalf("AddItem side: %v", err)
	}

	out, err := orders.PlaceOrder(client.ID, &PlaceOrderIn{LocationName: "Osu"})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	return out
}

func TestPlaceOrder(t *testing.T) {
	db := newTestDB(t)
	client := makeClient(t, db)

	out := placeExampleOrder(t, db, client)
	wantDecimal(t, out.TotalPrice, "28.00")
	if out.Status != entity.StatusPending {
		t.Fatalf("status %q, want %q", out.Status, entity.StatusPending)
	}
	if out.OrderID == "" {
		t.Fatal("public order id is empty")
	}

	var o entity.Order
	if err := db.First(&o, out.ID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	wantDecimal(t, o.TotalPrice, "28.00")
	if o.CurrentStatus != entity.StatusPending {
		t.Fatalf("current status %q, want Pending", o.CurrentStatus)
	}

	var statusRows int64
	db.Model(&entity.OrderStatus{}).Where("order_id = ?", o.ID).Count(&statusRows)
	if statusRows != 1 {
		t.Fatalf("got %d status rows, want exactly 1 Pending", statusRows)
	}

	var cart entity.Cart
	if err := db.Where("client_id = ?", client.ID).First(&cart).Error; err != nil {
		t.Fatalf("load cart: %v", err)
	}
	if !cart.Purchased {
		t.Fatal("cart not flipped to purchased")
	}

	// next AddItem opens a fresh cart
	carts := newCartService(db)
	chef := makeChef(t, db)
	dish := makeDish(t, db, chef.ID, "3.00")
	if _, _, err := carts.AddItem(client.ID, &AddItemIn{DishID: dish.ID, ChefID: chef.ID, Quantity: 1}); err != nil {
		t.Fatalf("AddItem after purchase: %v", err)
	}
	var open int64
	db.Model(&entity.Cart{}).Where("client_id = ? AND purchased = ?", client.ID, false).Count(&open)
	if open != 1 {
		t.Fatalf("got %d open carts after purchase, want 1", open)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	orders := newOrderService(db)
	client := makeClient(t, db)

	_, err := orders.PlaceOrder(client.ID, &PlaceOrderIn{})
	if !apperr.IsKind(err, apperr.Validation) {
		t.Fatalf("got %v, want Validation", err)
	}

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count != 0 {
		t.Fatalf("empty-cart placement left %d order rows", count)
	}
}

func TestPlaceOrderRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db)
	orders := newOrderService(db)
	client := makeClient(t, db)
	chef := makeChef(t, db)
	dish := makeDish(t, db, chef.ID, "10.00")

	item, _, err := carts.AddItem(client.ID, &AddItemIn{DishID: dish.ID, ChefID: chef.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	// corrupt the line so pricing fails mid-transaction
	if err := db.Model(&entity.CartItem{}).Where("id = ?", item.ID).Update("quantity", 0).Error; err != nil {
		t.Fatalf("corrupt item: %v", err)
	}

	if _, err := orders.PlaceOrder(client.ID, &PlaceOrderIn{}); !apperr.IsKind(err, apperr.InvalidState) {
		t.Fatalf("got %v, want InvalidState", err)
	}

	var orderRows, itemRows int64
	db.Model(&entity.Order{}).Count(&orderRows)
	db.Model(&entity.OrderItem{}).Count(&itemRows)
	if orderRows != 0 || itemRows != 0 {
		t.Fatalf("rollback left %d orders, %d order items", orderRows, itemRows)
	}
	var cart entity.Cart
	if err := db.Where("client_id = ?", client.ID).First(&cart).Error; err != nil {
		t.Fatalf("load cart: %v", err)
	}
	if cart.Purchased {
		t.Fatal("cart marked purchased despite rollback")
	}
}

func TestDetailAuthorization(t *testing.T) {
	db := newTestDB(t)
	orders := newOrderService(db)
	client := makeClient(t, db)
	out := placeExampleOrder(t, db, client)

	detail, err := orders.Detail(out.ID, client.UserID, entity.RoleClient)
	if err != nil {
		t.Fatalf("owner Detail: %v", err)
	}
	if len(detail.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(detail.Items))
	}
	wantDecimal(t, detail.TotalPrice, "28.00")
	if len(detail.StatusLog) != 1 || detail.StatusLog[0].Status != entity.StatusPending {
		t.Fatalf("status log %+v, want single Pending entry", detail.StatusLog)
	}

	stranger := makeClient(t, db)
	if _, err := orders.Detail(out.ID, stranger.UserID, entity.RoleClient); !apperr.IsKind(err, apperr.Forbidden) {
		t.Fatalf("stranger Detail: got %v, want Forbidden", err)
	}

	driver := makeDriver(t, db)
	if _, err := orders.Detail(out.ID, driver.UserID, entity.RoleDispatch); !apperr.IsKind(err, apperr.Forbidden) {
		t.Fatalf("unassigned dispatch Detail: got %v, want Forbidden", err)
	}
	if err := orders.AssignDriver(out.ID, driver.ID, entity.RoleAdmin); err != nil {
		t.Fatalf("AssignDriver: %v", err)
	}
	if _, err := orders.Detail(out.ID, driver.UserID, entity.RoleDispatch); err != nil {
		t.Fatalf("assigned dispatch Detail: %v", err)
	}
}

func TestDetailByPublicID(t *testing.T) {
	db := newTestDB(t)
	orders := newOrderService(db)
	client := makeClient(t, db)
	out := placeExampleOrder(t, db, client)

	detail, err := orders.DetailByPublicID(out.OrderID, client.UserID, entity.RoleClient)
	if err != nil {
		t.Fatalf("DetailByPublicID: %v", err)
	}
	if detail.ID != out.ID {
		t.Fatalf("resolved order %d, want %d", detail.ID, out.ID)
	}
	wantDecimal(t, detail.TotalPrice, "28.00")

	if _, err := orders.DetailByPublicID("no-such-token", client.UserID, entity.RoleClient); !apperr.IsKind(err, apperr.NotFound) {
		t.Fatalf("unknown token: got %v, want NotFound", err)
	}

	stranger := makeClient(t, db)
	if _, err := orders.DetailByPublicID(out.OrderID, stranger.UserID, entity.RoleClient); !apperr.IsKind(err, apperr.Forbidden) {
		t.Fatalf("stranger by token: got %v, want Forbidden", err)
	}
}

func TestListForClient(t *testing.T) {
	db := newTestDB(t)
	orders := newOrderService(db)
	client := makeClient(t, db)
	placeExampleOrder(t, db, client)

	rows, err := orders.ListForClient(client.ID, 10)
	if err != nil {
		t.Fatalf("ListForClient: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d orders, want 1", len(rows))
	}
	wantDecimal(t, rows[0].TotalPrice, "28.00")

	other := makeClient(t, db)
	rows, err = orders.ListForClient(other.ID, 10)
	if err != nil {
		t.Fatalf("ListForClient other: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("foreign client sees %d orders", len(rows))
	}
}
