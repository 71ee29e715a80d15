package impl

import (
	"context"
	"log/slog"

	"stylemart/internal/domain/entity"
	domainerrors "stylemart/internal/domain/errors"
	"stylemart/internal/domain/repository"
	"stylemart/internal/domain/service"
	"stylemart/internal/errors"
	"stylemart/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(orderRepo repository.OrderRepository, qrService service.QRCodeService, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		qrService: qrService,
		logger:    logger,
	}
}

// Track looks up the last order by id. Only the single retained order is
// addressable; any other id is "no such order".
func (srv *orderService) Track(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := srv.orderRepo.Last(ctx)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load last order")
	}

	if order.OrderID != orderID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// AdvanceStatus moves the order's fulfillment stage forward. Status is the
// only mutable field of a persisted order and only ever moves forward.
func (srv *orderService) AdvanceStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown order status")
	}

	order, err := srv.Track(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanAdvanceTo(status) {
		return nil, domainerrors.ErrInvalidStatusTransition
	}

	order.Status = status
	if err := srv.orderRepo.Save(ctx, order); err != nil {
		return nil, errors.Wrap(err, "save order")
	}

	srv.logger.Info("Order status advanced",
		slog.String("orderId", orderID),
		slog.String("status", string(status)),
	)

	return order, nil
}

// TrackingQR renders the order's tracking link as a PNG QR code.
func (srv *orderService) TrackingQR(ctx context.Context, orderID string) ([]byte, error) {
	if _, err := srv.Track(ctx, orderID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateTrackingQR(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "generate tracking QR")
	}

	return png, nil
}
