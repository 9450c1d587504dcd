package ports

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// CreateProductInput carries an already shape-validated product.
type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
}

// ListProductsInput holds the page coordinates requested by the client.
// Values below 1 fall back to the defaults.
type ListProductsInput struct {
	Page  int
	Limit int
}

// ListProductsResult is one page of the catalog.
type ListProductsResult struct {
	Items []*domain.Product
	Total int64
	Page  int
	Limit int
	Pages int
}

type ProductService interface {
	ListProducts(ctx context.Context, input ListProductsInput) (*ListProductsResult, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, changes domain.ProductChanges) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
