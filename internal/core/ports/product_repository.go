package ports

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// ListProductsFilter selects one page of the catalog, newest first.
type ListProductsFilter struct {
	Skip  int64
	Limit int64
}

// ProductRepository defines catalog persistence. Lookups that match nothing
// return domain.ErrProductNotFound.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns the requested page and the total number of products.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateFields(ctx context.Context, id string, changes domain.ProductChanges) (*domain.Product, error)
	DeleteByID(ctx context.Context, id string) error
}
