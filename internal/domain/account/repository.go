package account

import (
	"context"

	"github.com/menucraft/restaurant-backend/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error

	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail expects an already-normalized (lowercased, trimmed) email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns every user, newest created first.
	List(ctx context.Context) ([]models.User, error)

	Update(ctx context.Context, u *models.User) error

	Delete(ctx context.Context, id string) error
}
