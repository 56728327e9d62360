package menu

import (
	"context"

	"github.com/menucraft/restaurant-backend/internal/models"
)

// CategoryRepository is constructed once at startup and handed to whoever
// needs category access; there is no ambient registry.
type CategoryRepository interface {
	Create(ctx context.Context, cat *models.Category) error

	GetByID(ctx context.Context, id string) (*models.Category, error)

	// GetByName matches the trimmed name exactly, case-sensitive.
	GetByName(ctx context.Context, name string) (*models.Category, error)

	// ListAll returns every category ordered by creation ascending.
	ListAll(ctx context.Context) ([]models.Category, error)

	// ListActive returns publicly visible categories.
	ListActive(ctx context.Context) ([]models.Category, error)

	Update(ctx context.Context, cat *models.Category) error

	Delete(ctx context.Context, id string) error
}

type MenuItemRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error

	GetByID(ctx context.Context, id string) (*models.MenuItem, error)

	ListAll(ctx context.Context) ([]models.MenuItem, error)

	// ListAvailableWithCategory returns available items with each item's
	// category resolved when it still exists.
	ListAvailableWithCategory(ctx context.Context) ([]models.MenuItem, error)

	Update(ctx context.Context, item *models.MenuItem) error

	Delete(ctx context.Context, id string) error

	// DeleteByCategory removes every item referencing the category. Issued
	// independently of the category's own removal; there is no rollback.
	DeleteByCategory(ctx context.Context, categoryID string) error
}
