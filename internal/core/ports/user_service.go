package ports

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, changes domain.UserChanges) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
