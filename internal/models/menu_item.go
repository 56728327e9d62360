package models

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem belongs to exactly one category. The reference is validated at
// create/update time; the schema carries no foreign-key constraint, so an
// interrupted cascade delete can leave orphaned items behind.
type MenuItem struct {
	ID         string  `gorm:"primaryKey;size:36" json:"id"`
	Name       string  `gorm:"size:100;not null" json:"name"`
	Price      float64 `json:"price"`
	CategoryID string  `gorm:"size:36;index" json:"category_id"`
	Available  bool    `json:"available"`

	Category *Category `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewMenuItem fills defaults explicitly: a fresh item is available.
func NewMenuItem(name string, price float64, categoryID string) *MenuItem {
	return &MenuItem{
		ID:         uuid.NewString(),
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
		Available:  true,
	}
}
