package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/menucraft/restaurant-backend/internal/domain/restaurant"
	"github.com/menucraft/restaurant-backend/internal/httperr"
	"github.com/menucraft/restaurant-backend/internal/models"
)

type RestaurantGormRepository struct {
	db *gorm.DB
}

func NewRestaurantGormRepository(db *gorm.DB) *RestaurantGormRepository {
	return &RestaurantGormRepository{db: db}
}

func (r *RestaurantGormRepository) Create(
	ctx context.Context,
	rest *models.Restaurant,
) error {
	return r.db.WithContext(ctx).Create(rest).Error
}

func (r *RestaurantGormRepository) Get(
	ctx context.Context,
) (*models.Restaurant, error) {

	var rest models.Restaurant
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&rest).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("restaurant_not_found")
		}
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantGormRepository) GetBySubdomain(
	ctx context.Context,
	subdomain string,
) (*models.Restaurant, error) {

	var rest models.Restaurant
	if err := r.db.WithContext(ctx).
		Where("website_subdomain = ?", subdomain).
		First(&rest).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("restaurant_not_found")
		}
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantGormRepository) Update(
	ctx context.Context,
	rest *models.Restaurant,
) error {
	return r.db.WithContext(ctx).Save(rest).Error
}

// Compile-time check
var _ restaurant.Repository = (*RestaurantGormRepository)(nil)
