package usecase

import (
	"context"

	"stylemart/internal/domain/entity"
)

// WishlistView is the favorited-product set and its size.
type WishlistView struct {
	Items     []entity.Product `json:"items"`
	ItemCount int              `json:"itemCount"`
}

// WishlistUsecase defines the wishlist store's operations. Adding an already
// favorited product is a no-op; membership is tested by product id only.
type WishlistUsecase interface {
	Get(ctx context.Context) (*WishlistView, error)
	AddItem(ctx context.Context, productID string) (*WishlistView, error)
	RemoveItem(ctx context.Context, productID string) (*WishlistView, error)
	Contains(ctx context.Context, productID string) (bool, error)
}
