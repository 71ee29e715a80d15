package localstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
	"stylemart/internal/errors"
)

type orderRepository struct {
	kv     repository.KVStore
	logger *slog.Logger
}

// NewOrderRepository creates the last-order repository over the key-value store.
func NewOrderRepository(kv repository.KVStore, logger *slog.Logger) repository.OrderRepository {
	return &orderRepository{kv: kv, logger: logger}
}

// Last returns the order occupying the last-order slot. A missing or corrupt
// slot is reported as repository.ErrOrderNotFound: an unreadable order record
// is indistinguishable from never having ordered.
func (r *orderRepository) Last(ctx context.Context) (*entity.Order, error) {
	raw, err := r.kv.Get(ctx, lastOrderKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil, repository.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load last order")
	}

	var order entity.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		r.logger.Warn("Discarding corrupt order record", slog.Any("error", err))

		return nil, repository.ErrOrderNotFound
	}

	return &order, nil
}

// Save writes the order into the slot, overwriting any previous order.
func (r *orderRepository) Save(ctx context.Context, order *entity.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return errors.Wrap(err, "marshal order")
	}

	return errors.Wrap(r.kv.Set(ctx, lastOrderKey, raw), "save order")
}
