package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups menu items. Name uniqueness is checked with a lookup
// before insert, not with a database index, so a concurrent duplicate
// create can slip through (documented limitation).
type Category struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCategory fills defaults explicitly: a fresh category is active.
func NewCategory(name, description string) *Category {
	return &Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		IsActive:    true,
	}
}
