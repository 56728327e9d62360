package dto

import "github.com/menucraft/restaurant-backend/internal/models"

// UncategorizedLabel is shown when an item's category reference does not
// resolve, which can happen after an interrupted cascade delete.
const UncategorizedLabel = "Uncategorized"

type PublicMenuItemDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// NewPublicMenuItemDTO projects an item for the public menu. The item
// description is sourced from the owning category's description, matching
// the behavior of the system this one replaces. A missing category never
// raises; it degrades to the placeholder label.
func NewPublicMenuItemDTO(item *models.MenuItem) PublicMenuItemDTO {
	out := PublicMenuItemDTO{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Category: UncategorizedLabel,
		Tags:     []string{},
	}

	if item.Category != nil {
		out.Category = item.Category.Name
		out.Description = item.Category.Description
	}

	return out
}

func NewPublicMenuItemDTOs(items []models.MenuItem) []PublicMenuItemDTO {
	out := make([]PublicMenuItemDTO, 0, len(items))
	for i := range items {
		out = append(out, NewPublicMenuItemDTO(&items[i]))
	}
	return out
}
