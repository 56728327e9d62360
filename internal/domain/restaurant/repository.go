package restaurant

import (
	"context"

	"github.com/menucraft/restaurant-backend/internal/models"
)

// Repository manages the singleton-per-tenant restaurant record.
type Repository interface {
	Create(ctx context.Context, r *models.Restaurant) error

	// Get returns the tenant's record; only one is expected to exist.
	Get(ctx context.Context) (*models.Restaurant, error)

	// GetBySubdomain expects an already-normalized subdomain.
	GetBySubdomain(ctx context.Context, subdomain string) (*models.Restaurant, error)

	Update(ctx context.Context, r *models.Restaurant) error
}
