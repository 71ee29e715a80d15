package localstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
	"stylemart/internal/errors"
)

type wishlistRepository struct {
	kv     repository.KVStore
	logger *slog.Logger
}

// NewWishlistRepository creates a wishlist repository over the key-value store.
func NewWishlistRepository(kv repository.KVStore, logger *slog.Logger) repository.WishlistRepository {
	return &wishlistRepository{kv: kv, logger: logger}
}

// Load hydrates the wishlist. Missing or corrupt data yields an empty set.
func (r *wishlistRepository) Load(ctx context.Context) (*entity.Wishlist, error) {
	raw, err := r.kv.Get(ctx, wishlistKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return entity.NewWishlist(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load wishlist")
	}

	var wishlist entity.Wishlist
	if err := json.Unmarshal(raw, &wishlist); err != nil {
		r.logger.Warn("Discarding corrupt wishlist state", slog.Any("error", err))

		return entity.NewWishlist(), nil
	}
	if wishlist.Items == nil {
		wishlist.Items = []entity.Product{}
	}

	return &wishlist, nil
}

// Save persists the full wishlist state.
func (r *wishlistRepository) Save(ctx context.Context, wishlist *entity.Wishlist) error {
	raw, err := json.Marshal(wishlist)
	if err != nil {
		return errors.Wrap(err, "marshal wishlist")
	}

	return errors.Wrap(r.kv.Set(ctx, wishlistKey, raw), "save wishlist")
}
