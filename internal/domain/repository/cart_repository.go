package repository

import (
	"context"

	"stylemart/internal/domain/entity"
)

// CartRepository persists the single-session cart state.
//
// Load is tolerant by contract: a missing or corrupt stored blob hydrates as
// an empty cart, never an error. Favors availability over surfacing a
// confusing failure for a non-critical cache.
type CartRepository interface {
	Load(ctx context.Context) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
}
