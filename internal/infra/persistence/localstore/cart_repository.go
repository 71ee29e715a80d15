package localstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
	"stylemart/internal/errors"
)

type cartRepository struct {
	kv     repository.KVStore
	logger *slog.Logger
}

// NewCartRepository creates a cart repository over the key-value store.
func NewCartRepository(kv repository.KVStore, logger *slog.Logger) repository.CartRepository {
	return &cartRepository{kv: kv, logger: logger}
}

// Load hydrates the cart from storage. A missing key or corrupt blob yields
// an empty cart, never an error.
func (r *cartRepository) Load(ctx context.Context) (*entity.Cart, error) {
	raw, err := r.kv.Get(ctx, cartKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return entity.NewCart(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}

	var cart entity.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		r.logger.Warn("Discarding corrupt cart state", slog.Any("error", err))

		return entity.NewCart(), nil
	}
	if cart.Items == nil {
		cart.Items = []entity.CartLine{}
	}

	return &cart, nil
}

// Save persists the full cart state.
func (r *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "marshal cart")
	}

	return errors.Wrap(r.kv.Set(ctx, cartKey, raw), "save cart")
}
