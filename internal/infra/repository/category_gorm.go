package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/menucraft/restaurant-backend/internal/domain/menu"
	"github.com/menucraft/restaurant-backend/internal/httperr"
	"github.com/menucraft/restaurant-backend/internal/models"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) Create(
	ctx context.Context,
	cat *models.Category,
) error {
	return r.db.WithContext(ctx).Create(cat).Error
}

func (r *CategoryGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Category, error) {

	var cat models.Category
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cat).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("category_not_found")
		}
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryGormRepository) GetByName(
	ctx context.Context,
	name string,
) (*models.Category, error) {

	var cat models.Category
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&cat).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("category_not_found")
		}
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryGormRepository) ListAll(
	ctx context.Context,
) ([]models.Category, error) {

	var cats []models.Category
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *CategoryGormRepository) ListActive(
	ctx context.Context,
) ([]models.Category, error) {

	var cats []models.Category
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *CategoryGormRepository) Update(
	ctx context.Context,
	cat *models.Category,
) error {
	return r.db.WithContext(ctx).Save(cat).Error
}

func (r *CategoryGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Category{}).Error
}

// Compile-time check
var _ menu.CategoryRepository = (*CategoryGormRepository)(nil)
