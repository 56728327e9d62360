package menu

import (
	"context"
	"sync"

	domain "github.com/menucraft/restaurant-backend/internal/domain/menu"
	"github.com/menucraft/restaurant-backend/internal/dto"
	"github.com/menucraft/restaurant-backend/internal/models"
)

// PublicMenu builds the customer-facing projection: available items only,
// each resolved against its own category. Active categories are fetched
// alongside the items; the projection reads categories through the item's
// own reference.
type PublicMenu struct {
	categories domain.CategoryRepository
	items      domain.MenuItemRepository
}

func NewPublicMenu(
	categories domain.CategoryRepository,
	items domain.MenuItemRepository,
) *PublicMenu {
	return &PublicMenu{
		categories: categories,
		items:      items,
	}
}

func (uc *PublicMenu) Execute(ctx context.Context) ([]dto.PublicMenuItemDTO, error) {
	var wg sync.WaitGroup
	itemsChan := make(chan []models.MenuItem, 1)
	errChan := make(chan error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := uc.categories.ListActive(ctx); err != nil {
			errChan <- err
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		items, err := uc.items.ListAvailableWithCategory(ctx)
		if err != nil {
			errChan <- err
			return
		}
		itemsChan <- items
	}()

	wg.Wait()
	close(itemsChan)
	close(errChan)

	for err := range errChan {
		return nil, err
	}

	return dto.NewPublicMenuItemDTOs(<-itemsChan), nil
}
