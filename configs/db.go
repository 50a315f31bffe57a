package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/woedy/weekend-chef-backend/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	Migrate(db)
}

// Migrate runs the schema migration; tests point it at their own DB.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&entity.User{},
		&entity.Client{}, &entity.Chef{}, &entity.DispatchDriver{},
		&entity.FoodCategory{}, &entity.Dish{}, &entity.DishIngredient{},
		&entity.CustomizationOption{}, &entity.CustomizationValue{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderStatus{}, &entity.OrderPayment{},
	); err != nil {
		return err
	}

	// At most one open cart per client. Purchased and deleted carts leave
	// the index, so checkout frees the slot for the next cart.
	return conn.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_carts_open_client
		ON carts(client_id) WHERE purchased = 0 AND deleted_at IS NULL
	`).Error
}
