package repository

import (
	"context"
	"errors"

	"stylemart/internal/domain/entity"
)

// ErrOrderNotFound is returned when no order occupies the last-order slot.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists the single "last order" slot. There is no order
// history: each checkout overwrites any prior unfinished order.
type OrderRepository interface {
	// Last returns the most recently persisted order, or ErrOrderNotFound.
	Last(ctx context.Context) (*entity.Order, error)

	// Save writes the order into the slot, replacing any previous order.
	Save(ctx context.Context, order *entity.Order) error
}
