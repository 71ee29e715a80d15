package localstore

import (
	"context"
	"log/slog"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
	"stylemart/internal/errors"
)

type shopModeRepository struct {
	kv     repository.KVStore
	logger *slog.Logger
}

// NewShopModeRepository creates the shop-mode repository over the key-value store.
func NewShopModeRepository(kv repository.KVStore, logger *slog.Logger) repository.ShopModeRepository {
	return &shopModeRepository{kv: kv, logger: logger}
}

// Load returns the persisted mode. The mode is stored as a bare string; an
// absent or unknown value falls back to the default persona.
func (r *shopModeRepository) Load(ctx context.Context) (entity.ShopMode, error) {
	raw, err := r.kv.Get(ctx, shopModeKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return entity.DefaultShopMode, nil
	}
	if err != nil {
		return entity.DefaultShopMode, errors.Wrap(err, "load shop mode")
	}

	mode := entity.ShopMode(raw)
	if !mode.Valid() {
		r.logger.Warn("Discarding unknown shop mode", slog.String("mode", string(raw)))

		return entity.DefaultShopMode, nil
	}

	return mode, nil
}

// Save persists the mode.
func (r *shopModeRepository) Save(ctx context.Context, mode entity.ShopMode) error {
	return errors.Wrap(r.kv.Set(ctx, shopModeKey, []byte(mode)), "save shop mode")
}
