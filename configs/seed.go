package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/woedy/weekend-chef-backend/entity"
	"github.com/woedy/weekend-chef-backend/repository"
)

// SeedAdmin provisions the first admin principal on an empty database.
func SeedAdmin() error {
	users := repository.NewUserRepository(DB())
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	count, err := users.CountByEmail(email)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      entity.RoleAdmin,
	}
	return users.Create(&admin)
}

// SeedLookups plants the starter catalog rows.
func SeedLookups() error {
	db := DB()

	db.FirstOrCreate(&entity.FoodCategory{}, entity.FoodCategory{Name: "Local Dishes"})
	db.FirstOrCreate(&entity.FoodCategory{}, entity.FoodCategory{Name: "Continental"})
	db.FirstOrCreate(&entity.FoodCategory{}, entity.FoodCategory{Name: "Desserts"})

	return nil
}
