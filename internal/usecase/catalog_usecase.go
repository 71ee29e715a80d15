package usecase

import (
	"context"

	"stylemart/internal/domain/entity"
)

// Sort orders accepted by catalog listing.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// ListProductsInput filters and orders the catalog. An empty Mode falls back
// to the persisted shop mode.
type ListProductsInput struct {
	Mode           string `json:"mode"`
	Category       string `json:"category"`
	DiscountedOnly bool   `json:"discountedOnly"`
	MinPrice       int64  `json:"minPrice"`
	MaxPrice       int64  `json:"maxPrice"`
	SortBy         string `json:"sortBy"`
}

// CatalogUsecase queries the read-only product catalog.
type CatalogUsecase interface {
	List(ctx context.Context, input ListProductsInput) ([]entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	Categories(ctx context.Context, mode string) ([]string, error)
}

// ShopModeUsecase reads and switches the storefront's merchandising persona.
type ShopModeUsecase interface {
	Get(ctx context.Context) (entity.ShopMode, error)
	Set(ctx context.Context, mode entity.ShopMode) error
}
