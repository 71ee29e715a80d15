package impl

import (
	"context"
	"log/slog"

	"stylemart/internal/domain/entity"
	domainerrors "stylemart/internal/domain/errors"
	"stylemart/internal/domain/repository"
	"stylemart/internal/errors"
	"stylemart/internal/usecase"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	catalog      repository.CatalogRepository
	logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(wishlistRepo repository.WishlistRepository, catalog repository.CatalogRepository, logger *slog.Logger) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		catalog:      catalog,
		logger:       logger,
	}
}

// Get returns the favorited-product set.
func (srv *wishlistService) Get(ctx context.Context) (*usecase.WishlistView, error) {
	wishlist, err := srv.wishlistRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load wishlist")
	}

	return wishlistViewOf(wishlist), nil
}

// AddItem favorites the product. Idempotent: adding a product already in the
// set leaves it unchanged.
func (srv *wishlistService) AddItem(ctx context.Context, productID string) (*usecase.WishlistView, error) {
	product, err := srv.catalog.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find product")
	}

	wishlist, err := srv.wishlistRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load wishlist")
	}

	wishlist.Add(*product)

	if err := srv.wishlistRepo.Save(ctx, wishlist); err != nil {
		return nil, errors.Wrap(err, "save wishlist")
	}

	return wishlistViewOf(wishlist), nil
}

// RemoveItem unfavorites the product, no-op if absent.
func (srv *wishlistService) RemoveItem(ctx context.Context, productID string) (*usecase.WishlistView, error) {
	wishlist, err := srv.wishlistRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load wishlist")
	}

	wishlist.Remove(productID)

	if err := srv.wishlistRepo.Save(ctx, wishlist); err != nil {
		return nil, errors.Wrap(err, "save wishlist")
	}

	return wishlistViewOf(wishlist), nil
}

// Contains is a pure membership test.
func (srv *wishlistService) Contains(ctx context.Context, productID string) (bool, error) {
	wishlist, err := srv.wishlistRepo.Load(ctx)
	if err != nil {
		return false, errors.Wrap(err, "load wishlist")
	}

	return wishlist.Contains(productID), nil
}

func wishlistViewOf(wishlist *entity.Wishlist) *usecase.WishlistView {
	return &usecase.WishlistView{
		Items:     wishlist.Items,
		ItemCount: wishlist.ItemCount(),
	}
}
