package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/woedy/weekend-chef-backend/configs"
	"github.com/woedy/weekend-chef-backend/entity"
	"github.com/woedy/weekend-chef-backend/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique shared-cache memory DB per test so connections from the pool
	// all see the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := configs.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewCatalogRepository(db),
		repository.NewUserRepository(db),
	)
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
		LogNotifier{},
	)
}

func makeUser(t *testing.T, db *gorm.DB, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email: fmt.Sprintf("%s-%d@example.com", role, seq(db)),
		Role:  role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func makeClient(t *testing.T, db *gorm.DB) *entity.Client {
	t.Helper()
	u := makeUser(t, db, entity.RoleClient)
	c := &entity.Client{UserID: u.ID}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}
	return c
}

func makeChef(t *testing.T, db *gorm.DB) *entity.Chef {
	t.Helper()
	u := makeUser(t, db, entity.RoleChef)
	c := &entity.Chef{UserID: u.ID, KitchenName: "Test Kitchen"}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create chef: %v", err)
	}
	return c
}

func makeDriver(t *testing.T, db *gorm.DB) *entity.DispatchDriver {
	t.Helper()
	u := makeUser(t, db, entity.RoleDispatch)
	d := &entity.DispatchDriver{UserID: u.ID, Available: true}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("create driver: %v", err)
	}
	return d
}

func makeDish(t *testing.T, db *gorm.DB, chefID uint, price string) *entity.Dish {
	t.Helper()
	cat := &entity.FoodCategory{Name: fmt.Sprintf("Category %d", seq(db))}
	if err := db.Create(cat).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	d := &entity.Dish{
		Name:           fmt.Sprintf("Dish %d", seq(db)),
		BasePrice:      decimal.RequireFromString(price),
		Quantity:       1,
		FoodCategoryID: cat.ID,
		ChefID:         chefID,
		Active:         true,
	}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("create dish: %v", err)
	}
	return d
}

func makeOption(t *testing.T, db *gorm.DB, price string) *entity.CustomizationOption {
	t.Helper()
	o := &entity.CustomizationOption{
		OptionID:   fmt.Sprintf("opt-%d", seq(db)),
		Name:       "Extra Spice",
		OptionType: entity.OptionTypeSpice,
		Price:      decimal.RequireFromString(price),
		Active:     true,
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("create option: %v", err)
	}
	return o
}

var counters = map[*gorm.DB]int{}

func seq(db *gorm.DB) int {
	counters[db]++
	return counters[db]
}

func wantDecimal(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("got %s, want %s", got.String(), want)
	}
}
