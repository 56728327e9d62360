package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/menucraft/restaurant-backend/internal/domain/account"
	"github.com/menucraft/restaurant-backend/internal/httperr"
	"github.com/menucraft/restaurant-backend/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user_not_found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("user_not_found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) List(
	ctx context.Context,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserGormRepository) Update(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.User{}).Error
}

// Compile-time check
var _ account.UserRepository = (*UserGormRepository)(nil)
