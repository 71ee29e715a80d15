// Package catalog provides the static, read-only product catalog. Products
// are pre-loaded into memory; queries are pure slice operations with no I/O.
package catalog

import (
	"context"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
)

type staticCatalog struct {
	products []entity.Product
	byID     map[string]int
	bySlug   map[string]int
}

// New builds the catalog from the seeded product list.
func New() repository.CatalogRepository {
	return newWith(products)
}

func newWith(list []entity.Product) repository.CatalogRepository {
	c := &staticCatalog{
		products: list,
		byID:     make(map[string]int, len(list)),
		bySlug:   make(map[string]int, len(list)),
	}
	for i, p := range list {
		c.byID[p.ID] = i
		c.bySlug[p.Slug] = i
	}

	return c
}

// All returns a copy of the product list so callers can filter and sort
// freely without touching catalog state.
func (c *staticCatalog) All(_ context.Context) []entity.Product {
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)

	return out
}

// FindByID retrieves a single product by identifier.
func (c *staticCatalog) FindByID(_ context.Context, id string) (*entity.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	product := c.products[i]

	return &product, nil
}

// FindBySlug retrieves a single product by URL slug.
func (c *staticCatalog) FindBySlug(_ context.Context, slug string) (*entity.Product, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	product := c.products[i]

	return &product, nil
}
