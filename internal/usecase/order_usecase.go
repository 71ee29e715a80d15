package usecase

import (
	"context"

	"stylemart/internal/domain/entity"
)

// OrderUsecase is the order-status read surface plus the tracking view's
// status advancement. Only the single last order is addressable; a requested
// id that does not match it is "no such order".
type OrderUsecase interface {
	Track(ctx context.Context, orderID string) (*entity.Order, error)
	AdvanceStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)
	TrackingQR(ctx context.Context, orderID string) ([]byte, error)
}
