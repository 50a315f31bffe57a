package repository

import (
	"gorm.io/gorm"

	"github.com/woedy/weekend-chef-backend/entity"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *CatalogRepository) CreateCategory(cat *entity.FoodCategory) error {
	return r.DB.Create(cat).Error
}

func (r *CatalogRepository) ListCategories() ([]entity.FoodCategory, error) {
	var out []entity.FoodCategory
	err := r.DB.Order("name ASC").Find(&out).Error
	return out, err
}

// ---------------- Dishes ----------------

func (r *CatalogRepository) CreateDish(dish *entity.Dish) error {
	return r.DB.Create(dish).Error
}

func (r *CatalogRepository) SaveDish(dish *entity.Dish) error {
	return r.DB.Save(dish).Error
}

func (r *CatalogRepository) GetDish(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *CatalogRepository) GetDishDetail(id uint) (*entity.Dish, error) {
	var d entity.Dish
	err := r.DB.Preload("Ingredients").Preload("FoodCategory").First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *CatalogRepository) ListDishes(search string, categoryID *uint, archived bool, page, limit int) ([]entity.Dish, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	q := r.DB.Model(&entity.Dish{}).Where("archived = ? AND active = ?", archived, true)
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	if categoryID != nil && *categoryID != 0 {
		q = q.Where("food_category_id = ?", *categoryID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Dish
	err := q.Order("id DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, total, err
}

func (r *CatalogRepository) SetDishArchived(id uint, archived bool) error {
	return r.DB.Model(&entity.Dish{}).Where("id = ?", id).
		Update("archived", archived).Error
}

// SetDishActive soft-deletes (or restores) a dish.
func (r *CatalogRepository) SetDishActive(id uint, active bool) error {
	return r.DB.Model(&entity.Dish{}).Where("id = ?", id).
		Update("active", active).Error
}

// ---------------- Customization options ----------------

func (r *CatalogRepository) CreateOption(opt *entity.CustomizationOption) error {
	return r.DB.Create(opt).Error
}

func (r *CatalogRepository) SaveOption(opt *entity.CustomizationOption) error {
	return r.DB.Save(opt).Error
}

func (r *CatalogRepository) GetOptionByPublicID(publicID string) (*entity.CustomizationOption, error) {
	var o entity.CustomizationOption
	if err := r.DB.Where("option_id = ?", publicID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOptionsByIDs returns active, unarchived options; the caller compares
// lengths to spot dangling references.
func (r *CatalogRepository) GetOptionsByIDs(ids []uint) ([]entity.CustomizationOption, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []entity.CustomizationOption
	err := r.DB.Where("id IN ? AND active = ? AND archived = ?", ids, true, false).
		Find(&out).Error
	return out, err
}

func (r *CatalogRepository) ListOptions(archived bool, search string) ([]entity.CustomizationOption, error) {
	q := r.DB.Where("archived = ? AND active = ?", archived, true)
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	var out []entity.CustomizationOption
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) SetOptionArchived(id uint, archived bool) error {
	return r.DB.Model(&entity.CustomizationOption{}).Where("id = ?", id).
		Update("archived", archived).Error
}

// SetOptionActive soft-deletes (or restores) an option.
func (r *CatalogRepository) SetOptionActive(id uint, active bool) error {
	return r.DB.Model(&entity.CustomizationOption{}).Where("id = ?", id).
		Update("active", active).Error
}
