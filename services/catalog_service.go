package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/woedy/weekend-chef-backend/entity"
	"github.com/woedy/weekend-chef-backend/pkg/apperr"
	"github.com/woedy/weekend-chef-backend/repository"
)

// CatalogService owns the dish, category and customization-option records.
type CatalogService struct {
	Repo     *repository.CatalogRepository
	UserRepo *repository.UserRepository
}

func NewCatalogService(repo *repository.CatalogRepository, userRepo *repository.UserRepository) *CatalogService {
	return &CatalogService{Repo: repo, UserRepo: userRepo}
}

// ----- Categories -----

type CategoryIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *CatalogService) CreateCategory(in *CategoryIn) (*entity.FoodCategory, error) {
	cat := &entity.FoodCategory{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	}
	if cat.Name == "" {
		return nil, apperr.Field("name", "Name is required.")
	}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) ListCategories() ([]entity.FoodCategory, error) {
	return s.Repo.ListCategories()
}

// ----- Dishes -----

type IngredientIn struct {
	Name     string          `json:"name" binding:"required"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Price    decimal.Decimal `json:"price"`
}

type DishIn struct {
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	BasePrice      decimal.Decimal `json:"basePrice"`
	Quantity       int             `json:"quantity"`
	FoodCategoryID uint            `json:"foodCategoryId" binding:"required"`
	Ingredients    []IngredientIn  `json:"ingredients"`
}

type DishUpdateIn struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	BasePrice   *decimal.Decimal `json:"basePrice"`
	Quantity    *int             `json:"quantity"`
}

func (s *CatalogService) CreateDish(chefUserID uint, in *DishIn) (*entity.Dish, error) {
	if in.BasePrice.IsNegative() {
		return nil, apperr.Field("basePrice", "Base price cannot be negative.")
	}
	chef, err := s.UserRepo.ChefForUser(chefUserID)
	if err != nil {
		return nil, apperr.New(apperr.Forbidden, "no chef profile for this user")
	}

	dish := &entity.Dish{
		Name:           strings.TrimSpace(in.Name),
		Description:    in.Description,
		BasePrice:      in.BasePrice.Round(2),
		Quantity:       in.Quantity,
		FoodCategoryID: in.FoodCategoryID,
		ChefID:         chef.ID,
		Active:         true,
	}
	for _, ing := range in.Ingredients {
		dish.Ingredients = append(dish.Ingredients, entity.DishIngredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Price:    ing.Price.Round(2),
		})
	}
	if err := s.Repo.CreateDish(dish); err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *CatalogService) UpdateDish(dishID uint, in *DishUpdateIn) (*entity.Dish, error) {
	dish, err := s.Repo.GetDish(dishID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "dish not found")
	}
	if err != nil {
		return nil, err
	}

	if in.BasePrice != nil {
		if in.BasePrice.IsNegative() {
			return nil, apperr.Field("basePrice", "Base price cannot be negative.")
		}
		dish.BasePrice = in.BasePrice.Round(2)
	}
	if in.Name != nil {
		dish.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		dish.Description = *in.Description
	}
	if in.Quantity != nil {
		dish.Quantity = *in.Quantity
	}
	if err := s.Repo.SaveDish(dish); err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *CatalogService) DishDetail(dishID uint) (*entity.Dish, error) {
	dish, err := s.Repo.GetDishDetail(dishID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "dish not found")
	}
	return dish, err
}

type DishListOut struct {
	Items []entity.Dish `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (s *CatalogService) ListDishes(search string, categoryID *uint, archived bool, page, limit int) (*DishListOut, error) {
	items, total, err := s.Repo.ListDishes(search, categoryID, archived, page, limit)
	if err != nil {
		return nil, err
	}
	return &DishListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *CatalogService) SetDishArchived(dishID uint, archived bool) error {
	dish, err := s.Repo.GetDish(dishID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "dish not found")
	}
	if err != nil {
		return err
	}
	return s.Repo.SetDishArchived(dish.ID, archived)
}

// DeleteDish soft-deletes; existing cart references keep pricing.
func (s *CatalogService) DeleteDish(dishID uint) error {
	dish, err := s.Repo.GetDish(dishID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "dish not found")
	}
	if err != nil {
		return err
	}
	return s.Repo.SetDishActive(dish.ID, false)
}

// ----- Customization options -----

type OptionIn struct {
	Name        string          `json:"name" binding:"required"`
	OptionType  string          `json:"optionType" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type OptionUpdateIn struct {
	Name        *string          `json:"name"`
	OptionType  *string          `json:"optionType"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

var optionTypes = map[string]bool{
	entity.OptionTypeMeat:  true,
	entity.OptionTypeSpice: true,
	entity.OptionTypeDough: true,
	entity.OptionTypeOther: true,
}

func (s *CatalogService) CreateOption(in *OptionIn) (*entity.CustomizationOption, error) {
	fields := map[string][]string{}
	if !optionTypes[in.OptionType] {
		fields["optionType"] = append(fields["optionType"], "Unknown option type.")
	}
	if in.Price.IsNegative() {
		fields["price"] = append(fields["price"], "Price cannot be negative.")
	}
	if len(fields) > 0 {
		return nil, apperr.FieldErrors(fields)
	}

	opt := &entity.CustomizationOption{
		OptionID:    uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		OptionType:  in.OptionType,
		Description: in.Description,
		Price:       in.Price.Round(2),
		Active:      true,
	}
	if err := s.Repo.CreateOption(opt); err != nil {
		return nil, err
	}
	return opt, nil
}

func (s *CatalogService) UpdateOption(publicID string, in *OptionUpdateIn) (*entity.CustomizationOption, error) {
	opt, err := s.Repo.GetOptionByPublicID(publicID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "customization option not found")
	}
	if err != nil {
		return nil, err
	}

	if in.OptionType != nil && !optionTypes[*in.OptionType] {
		return nil, apperr.Field("optionType", "Unknown option type.")
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, apperr.Field("price", "Price cannot be negative.")
		}
		opt.Price = in.Price.Round(2)
	}
	if in.Name != nil {
		opt.Name = strings.TrimSpace(*in.Name)
	}
	if in.OptionType != nil {
		opt.OptionType = *in.OptionType
	}
	if in.Description != nil {
		opt.Description = *in.Description
	}
	if err := s.Repo.SaveOption(opt); err != nil {
		return nil, err
	}
	return opt, nil
}

func (s *CatalogService) OptionDetail(publicID string) (*entity.CustomizationOption, error) {
	opt, err := s.Repo.GetOptionByPublicID(publicID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "customization option not found")
	}
	return opt, err
}

func (s *CatalogService) ListOptions(archived bool, search string) ([]entity.CustomizationOption, error) {
	return s.Repo.ListOptions(archived, search)
}

func (s *CatalogService) SetOptionArchived(publicID string, archived bool) error {
	opt, err := s.Repo.GetOptionByPublicID(publicID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "customization option not found")
	}
	if err != nil {
		return err
	}
	return s.Repo.SetOptionArchived(opt.ID, archived)
}

// DeleteOption soft-deletes; existing cart references keep pricing.
func (s *CatalogService) DeleteOption(publicID string) error {
	opt, err := s.Repo.GetOptionByPublicID(publicID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "customization option not found")
	}
	if err != nil {
		return err
	}
	return s.Repo.SetOptionActive(opt.ID, false)
}
