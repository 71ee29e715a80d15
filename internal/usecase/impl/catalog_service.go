package impl

import (
	"context"
	"sort"
	"strings"

	"stylemart/internal/domain/entity"
	domainerrors "stylemart/internal/domain/errors"
	"stylemart/internal/domain/repository"
	"stylemart/internal/errors"
	"stylemart/internal/usecase"
)

// catalogService implements the CatalogUsecase interface. All queries are
// pure operations over the catalog's immutable product list.
type catalogService struct {
	catalog  repository.CatalogRepository
	modeRepo repository.ShopModeRepository
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(catalog repository.CatalogRepository, modeRepo repository.ShopModeRepository) usecase.CatalogUsecase {
	return &catalogService{catalog: catalog, modeRepo: modeRepo}
}

// List filters and sorts the catalog. An empty mode falls back to the
// persisted shop mode; an unknown mode is rejected.
func (srv *catalogService) List(ctx context.Context, input usecase.ListProductsInput) ([]entity.Product, error) {
	mode := entity.ShopMode(input.Mode)
	if input.Mode == "" {
		persisted, err := srv.modeRepo.Load(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "load shop mode")
		}
		mode = persisted
	}
	if !mode.Valid() {
		return nil, domainerrors.ErrInvalidShopMode
	}

	filtered := make([]entity.Product, 0)
	for _, p := range srv.catalog.All(ctx) {
		if p.Mode != mode {
			continue
		}
		if input.Category != "" && !strings.EqualFold(p.Category, input.Category) {
			continue
		}
		if input.DiscountedOnly && !p.OnSale() {
			continue
		}
		if p.Price < input.MinPrice {
			continue
		}
		if input.MaxPrice > 0 && p.Price > input.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	switch input.SortBy {
	case usecase.SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case usecase.SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case usecase.SortRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	}

	return filtered, nil
}

// GetBySlug retrieves a single product by URL slug.
func (srv *catalogService) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.catalog.FindBySlug(ctx, slug)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find product")
	}

	return product, nil
}

// Categories returns the distinct categories available in a mode, in catalog
// order.
func (srv *catalogService) Categories(ctx context.Context, modeStr string) ([]string, error) {
	mode := entity.ShopMode(modeStr)
	if modeStr == "" {
		persisted, err := srv.modeRepo.Load(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "load shop mode")
		}
		mode = persisted
	}
	if !mode.Valid() {
		return nil, domainerrors.ErrInvalidShopMode
	}

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, p := range srv.catalog.All(ctx) {
		if p.Mode != mode {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}

	return categories, nil
}

// shopModeService implements the ShopModeUsecase interface.
type shopModeService struct {
	modeRepo repository.ShopModeRepository
}

// NewShopModeService is the constructor for shopModeService.
func NewShopModeService(modeRepo repository.ShopModeRepository) usecase.ShopModeUsecase {
	return &shopModeService{modeRepo: modeRepo}
}

// Get returns the persisted merchandising persona.
func (srv *shopModeService) Get(ctx context.Context) (entity.ShopMode, error) {
	mode, err := srv.modeRepo.Load(ctx)

	return mode, errors.Wrap(err, "load shop mode")
}

// Set switches the persona after validating it.
func (srv *shopModeService) Set(ctx context.Context, mode entity.ShopMode) error {
	if !mode.Valid() {
		return domainerrors.ErrInvalidShopMode
	}

	return errors.Wrap(srv.modeRepo.Save(ctx, mode), "save shop mode")
}
