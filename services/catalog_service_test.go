package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/woedy/weekend-chef-backend/entity"
	"github.com/woedy/weekend-chef-backend/pkg/apperr"
	"github.com/woedy/weekend-chef-backend/repository"
)

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(
		repository.NewCatalogRepository(db),
		repository.NewUserRepository(db),
	)
}

func TestCreateDishWithIngredients(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	chef := makeChef(t, db)

	cat, err := svc.CreateCategory(&CategoryIn{Name: "Local"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	dish, err := svc.CreateDish(chef.UserID, &DishIn{
		Name:           "Jollof Rice",
		BasePrice:      decimal.RequireFromString("12.345"),
		Quantity:       5,
		FoodCategoryID: cat.ID,
		Ingredients: []IngredientIn{
			{Name: "Rice", Quantity: decimal.RequireFromString("0.5"), Unit: "kg", Price: decimal.RequireFromString("2.00")},
		},
	})
	if err != nil {
		t.Fatalf("CreateDish: %v", err)
	}
	wantDecimal(t, dish.BasePrice, "12.35")
	if dish.ChefID != chef.ID {
		t.Fatalf("chef id %d, want %d", dish.ChefID, chef.ID)
	}

	detail, err := svc.DishDetail(dish.ID)
	if err != nil {
		t.Fatalf("DishDetail: %v", err)
	}
	if len(detail.Ingredients) != 1 || detail.Ingredients[0].Name != "Rice" {
		t.Fatalf("ingredients %+v, want one Rice row", detail.Ingredients)
	}
}

func TestCreateDishRejectsNegativePrice(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	chef := makeChef(t, db)

	_, err := svc.CreateDish(chef.UserID, &DishIn{
		Name:           "Bad",
		BasePrice:      decimal.RequireFromString("-1"),
		FoodCategoryID: 1,
	})
	if !apperr.IsKind(err, apperr.Validation) {
		t.Fatalf("got %v, want Validation", err)
	}
}

func TestCreateDishRequiresChefProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	client := makeClient(t, db)

	_, err := svc.CreateDish(client.UserID, &DishIn{Name: "Nope", FoodCategoryID: 1})
	if !apperr.IsKind(err, apperr.Forbidden) {
		t.Fatalf("got %v, want Forbidden", err)
	}
}

func TestListDishesFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	chef := makeChef(t, db)
	a := makeDish(t, db, chef.ID, "10.00")
	makeDish(t, db, chef.ID, "5.00")

	all, err := svc.ListDishes("", nil, false, 1, 10)
	if err != nil {
		t.Fatalf("ListDishes: %v", err)
	}
	if all.Total != 2 {
		t.Fatalf("total %d, want 2", all.Total)
	}

	byCat, err := svc.ListDishes("", &a.FoodCategoryID, false, 1, 10)
	if err != nil {
		t.Fatalf("ListDishes by category: %v", err)
	}
	if byCat.Total != 1 || byCat.Items[0].ID != a.ID {
		t.Fatalf("category filter returned %+v", byCat.Items)
	}

	byName, err := svc.ListDishes(a.Name, nil, false, 1, 10)
	if err != nil {
		t.Fatalf("ListDishes by name: %v", err)
	}
	if byName.Total != 1 || byName.Items[0].ID != a.ID {
		t.Fatalf("search filter returned %+v", byName.Items)
	}
}

func TestDishLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	chef := makeChef(t, db)
	dish := makeDish(t, db, chef.ID, "10.00")

	if err := svc.SetDishArchived(dish.ID, true); err != nil {
		t.Fatalf("archive: %v", err)
	}
	live, err := svc.ListDishes("", nil, false, 1, 10)
	if err != nil {
		t.Fatalf("ListDishes: %v", err)
	}
	if live.Total != 0 {
		t.Fatalf("archived dish still listed: %+v", live.Items)
	}
	archived, err := svc.ListDishes("", nil, true, 1, 10)
	if err != nil {
		t.Fatalf("ListDishes archived: %v", err)
	}
	if archived.Total != 1 || archived.Items[0].ID != dish.ID {
		t.Fatalf("archived listing returned %+v", archived.Items)
	}

	if err := svc.SetDishArchived(dish.ID, false); err != nil {
		t.Fatalf("unarchive: %v", err)
	}
	live, err = svc.ListDishes("", nil, false, 1, 10)
	if err != nil {
		t.Fatalf("ListDishes after unarchive: %v", err)
	}
	if live.Total != 1 {
		t.Fatalf("unarchived dish missing from listing")
	}

	if err := svc.DeleteDish(dish.ID); err != nil {
		t.Fatalf("DeleteDish: %v", err)
	}
	// soft delete keeps the row so existing carts can still price it
	var row entity.Dish
	if err := db.First(&row, dish.ID).Error; err != nil {
		t.Fatalf("dish row gone: %v", err)
	}
	if row.Active {
		t.Fatal("dish still active after delete")
	}
	live, err = svc.ListDishes("", nil, false, 1, 10)
	if err != nil {
		t.Fatalf("ListDishes after delete: %v", err)
	}
	if live.Total != 0 {
		t.Fatalf("deleted dish still listed: %+v", live.Items)
	}

	if err := svc.SetDishArchived(999, true); !apperr.IsKind(err, apperr.NotFound) {
		t.Fatalf("archive missing dish: got %v, want NotFound", err)
	}
}

func TestOptionLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)

	opt, err := svc.CreateOption(&OptionIn{
		Name:       "Extra Chicken",
		OptionType: entity.OptionTypeMeat,
		Price:      decimal.RequireFromString("3.00"),
	})
	if err != nil {
		t.Fatalf("CreateOption: %v", err)
	}
	if opt.OptionID == "" {
		t.Fatal("public option id is empty")
	}

	if _, err := svc.CreateOption(&OptionIn{Name: "Bad", OptionType: "Topping"}); !apperr.IsKind(err, apperr.Validation) {
		t.Fatalf("unknown type: got %v, want Validation", err)
	}

	price := decimal.RequireFromString("3.50")
	updated, err := svc.UpdateOption(opt.OptionID, &OptionUpdateIn{Price: &price})
	if err != nil {
		t.Fatalf("UpdateOption: %v", err)
	}
	wantDecimal(t, updated.Price, "3.50")

	if err := svc.SetOptionArchived(opt.OptionID, true); err != nil {
		t.Fatalf("archive: %v", err)
	}
	// archived options disappear from the selectable set
	rows, err := svc.Repo.GetOptionsByIDs([]uint{opt.ID})
	if err != nil {
		t.Fatalf("GetOptionsByIDs: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("archived option still selectable: %+v", rows)
	}
	if err := svc.SetOptionArchived(opt.OptionID, false); err != nil {
		t.Fatalf("unarchive: %v", err)
	}

	if err := svc.DeleteOption(opt.OptionID); err != nil {
		t.Fatalf("DeleteOption: %v", err)
	}
	// soft delete keeps the row so existing carts can still price it
	var row entity.CustomizationOption
	if err := db.First(&row, opt.ID).Error; err != nil {
		t.Fatalf("option row gone: %v", err)
	}
	if row.Active {
		t.Fatal("option still active after delete")
	}
	rows, err = svc.Repo.GetOptionsByIDs([]uint{opt.ID})
	if err != nil {
		t.Fatalf("GetOptionsByIDs after delete: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("deleted option still selectable: %+v", rows)
	}
}
