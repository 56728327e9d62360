package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/menucraft/restaurant-backend/internal/domain/menu"
	"github.com/menucraft/restaurant-backend/internal/httperr"
	"github.com/menucraft/restaurant-backend/internal/models"
)

type MenuItemGormRepository struct {
	db *gorm.DB
}

func NewMenuItemGormRepository(db *gorm.DB) *MenuItemGormRepository {
	return &MenuItemGormRepository{db: db}
}

func (r *MenuItemGormRepository) Create(
	ctx context.Context,
	item *models.MenuItem,
) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *MenuItemGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.MenuItem, error) {

	var item models.MenuItem
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("item_not_found")
		}
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemGormRepository) ListAll(
	ctx context.Context,
) ([]models.MenuItem, error) {

	var items []models.MenuItem
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuItemGormRepository) ListAvailableWithCategory(
	ctx context.Context,
) ([]models.MenuItem, error) {

	var items []models.MenuItem
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("available = ?", true).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuItemGormRepository) Update(
	ctx context.Context,
	item *models.MenuItem,
) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *MenuItemGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.MenuItem{}).Error
}

func (r *MenuItemGormRepository) DeleteByCategory(
	ctx context.Context,
	categoryID string,
) error {
	return r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Delete(&models.MenuItem{}).Error
}

// Compile-time check
var _ menu.MenuItemRepository = (*MenuItemGormRepository)(nil)
