package repository

import (
	"context"

	"stylemart/internal/domain/entity"
)

// WishlistRepository persists the favorited-product set. Same tolerant
// hydration contract as CartRepository: missing or corrupt data loads as an
// empty wishlist.
type WishlistRepository interface {
	Load(ctx context.Context) (*entity.Wishlist, error)
	Save(ctx context.Context, wishlist *entity.Wishlist) error
}
