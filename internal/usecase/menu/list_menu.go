package menu

import (
	"context"
	"sync"

	domain "github.com/menucraft/restaurant-backend/internal/domain/menu"
	"github.com/menucraft/restaurant-backend/internal/dto"
	"github.com/menucraft/restaurant-backend/internal/models"
)

// ListMenu assembles the back-office menu view: every category (creation
// order) and every item, fetched concurrently.
type ListMenu struct {
	categories domain.CategoryRepository
	items      domain.MenuItemRepository
}

func NewListMenu(
	categories domain.CategoryRepository,
	items domain.MenuItemRepository,
) *ListMenu {
	return &ListMenu{
		categories: categories,
		items:      items,
	}
}

func (uc *ListMenu) Execute(ctx context.Context) (*dto.AdminMenuDTO, error) {
	var wg sync.WaitGroup
	catsChan := make(chan []models.Category, 1)
	itemsChan := make(chan []models.MenuItem, 1)
	errChan := make(chan error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		cats, err := uc.categories.ListAll(ctx)
		if err != nil {
			errChan <- err
			return
		}
		catsChan <- cats
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		items, err := uc.items.ListAll(ctx)
		if err != nil {
			errChan <- err
			return
		}
		itemsChan <- items
	}()

	wg.Wait()
	close(catsChan)
	close(itemsChan)
	close(errChan)

	for err := range errChan {
		return nil, err
	}

	return &dto.AdminMenuDTO{
		Categories: dto.NewCategoryDTOs(<-catsChan),
		Items:      dto.NewMenuItemDTOs(<-itemsChan),
	}, nil
}
