package repository

import (
	"context"
	"errors"

	"stylemart/internal/domain/entity"
)

// ErrProductNotFound is returned when no product matches the requested key.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository is the read-only catalog collaborator. The product list
// is immutable and supplied entirely by the catalog; the storefront core
// only ever queries it.
type CatalogRepository interface {
	// All returns every product in the catalog.
	All(ctx context.Context) []entity.Product

	// FindByID retrieves a single product by its identifier.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindBySlug retrieves a single product by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)
}
