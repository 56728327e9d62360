package menu

import (
	"context"

	"github.com/menucraft/restaurant-backend/internal/audit"
	domain "github.com/menucraft/restaurant-backend/internal/domain/menu"
)

// DeleteCategory removes a category and cascades to every item referencing
// it. The two deletions are independent operations with no rollback: a
// failure after the first leaves orphaned items (accepted limitation).
type DeleteCategory struct {
	categories domain.CategoryRepository
	items      domain.MenuItemRepository
	audit      *audit.Dispatcher
}

func NewDeleteCategory(
	categories domain.CategoryRepository,
	items domain.MenuItemRepository,
	audit *audit.Dispatcher,
) *DeleteCategory {
	return &DeleteCategory{
		categories: categories,
		items:      items,
		audit:      audit,
	}
}

func (uc *DeleteCategory) Execute(ctx context.Context, id string) error {
	cat, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.categories.Delete(ctx, cat.ID); err != nil {
		return err
	}

	if err := uc.items.DeleteByCategory(ctx, cat.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "category_deleted",
		Entity:   "category",
		EntityID: cat.ID,
	})

	return nil
}
