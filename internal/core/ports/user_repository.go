package ports

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// UserRepository defines account persistence. Lookups that match nothing
// return domain.ErrUserNotFound; inserts and updates that would duplicate an
// email return domain.ErrAccountExists.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateFields(ctx context.Context, id string, changes domain.UserChanges) (*domain.User, error)
	DeleteByID(ctx context.Context, id string) error
}
