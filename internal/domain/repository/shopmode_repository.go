package repository

import (
	"context"

	"stylemart/internal/domain/entity"
)

// ShopModeRepository persists the storefront's merchandising persona.
// Load falls back to the default mode when nothing valid is stored.
type ShopModeRepository interface {
	Load(ctx context.Context) (entity.ShopMode, error)
	Save(ctx context.Context, mode entity.ShopMode) error
}
