package dto

import "github.com/menucraft/restaurant-backend/internal/models"

type CategoryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

type MenuItemDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"categoryId"`
	Available  bool    `json:"available"`
}

type AdminMenuDTO struct {
	Categories []CategoryDTO `json:"categories"`
	Items      []MenuItemDTO `json:"items"`
}

func NewCategoryDTO(cat *models.Category) CategoryDTO {
	return CategoryDTO{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		CreatedAt:   cat.CreatedAt.Format("2006-01-02"),
	}
}

func NewMenuItemDTO(item *models.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         item.ID,
		Name:       item.Name,
		Price:      item.Price,
		CategoryID: item.CategoryID,
		Available:  item.Available,
	}
}

func NewCategoryDTOs(cats []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(cats))
	for i := range cats {
		out = append(out, NewCategoryDTO(&cats[i]))
	}
	return out
}

func NewMenuItemDTOs(items []models.MenuItem) []MenuItemDTO {
	out := make([]MenuItemDTO, 0, len(items))
	for i := range items {
		out = append(out, NewMenuItemDTO(&items[i]))
	}
	return out
}
