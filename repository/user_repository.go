package repository

import (
	"gorm.io/gorm"

	"github.com/woedy/weekend-chef-backend/entity"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

// ClientForUser maps the authenticated principal to its client profile.
func (r *UserRepository) ClientForUser(userID uint) (*entity.Client, error) {
	var c entity.Client
	if err := r.DB.Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *UserRepository) ChefForUser(userID uint) (*entity.Chef, error) {
	var c entity.Chef
	if err := r.DB.Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *UserRepository) DriverForUser(userID uint) (*entity.DispatchDriver, error) {
	var d entity.DispatchDriver
	if err := r.DB.Where("user_id = ?", userID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *UserRepository) GetChef(id uint) (*entity.Chef, error) {
	var c entity.Chef
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *UserRepository) GetDriver(id uint) (*entity.DispatchDriver, error) {
	var d entity.DispatchDriver
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}
