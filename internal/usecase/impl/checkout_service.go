package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"stylemart/config"
	"stylemart/internal/domain/entity"
	domainerrors "stylemart/internal/domain/errors"
	"stylemart/internal/domain/repository"
	"stylemart/internal/domain/service"
	"stylemart/internal/errors"
	"stylemart/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// pendingCheckout is a gateway checkout awaiting the hosted payment UI's
// callback. It holds the order snapshot built at submission time.
type pendingCheckout struct {
	order          *entity.Order
	gatewayOrderID string
}

// checkoutService implements the CheckoutUsecase interface. Submission runs
// Idle -> Validating -> one of: a validation failure, a synchronous
// pay-on-delivery order, or a pending gateway checkout resolved by exactly
// one of ConfirmPayment / FailPayment / CancelPayment. Every failure path
// returns to Idle with no order record written and the cart untouched.
type checkoutService struct {
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
	modeRepo  repository.ShopModeRepository
	gateway   service.PaymentGateway
	validate  *validator.Validate
	cfg       *config.Config
	logger    *slog.Logger

	mu      sync.Mutex
	pending map[string]*pendingCheckout
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	CartRepo  repository.CartRepository
	OrderRepo repository.OrderRepository
	ModeRepo  repository.ShopModeRepository
	Gateway   service.PaymentGateway
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cartRepo:  params.CartRepo,
		orderRepo: params.OrderRepo,
		modeRepo:  params.ModeRepo,
		gateway:   params.Gateway,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		cfg:       params.Config,
		logger:    params.Logger,
		pending:   make(map[string]*pendingCheckout),
	}
}

// Submit validates the checkout and executes the chosen payment path.
// Validation order: shipping form, then cart emptiness, then per-line
// size/color integrity. The gateway is never contacted when validation fails.
func (srv *checkoutService) Submit(ctx context.Context, input usecase.SubmitCheckoutInput) (*usecase.SubmitCheckoutOutput, error) {
	if err := srv.validate.Struct(input.Address); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "please fill in all shipping fields")
	}

	if input.PaymentMethod != usecase.PaymentMethodCOD && input.PaymentMethod != usecase.PaymentMethodGateway {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown payment method")
	}

	cart, err := srv.cartRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}
	if len(cart.Items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	// Data-integrity check at the checkout boundary. The cart's write path
	// already enforces size and color, but a line persisted before that rule
	// must not reach the gateway.
	for _, line := range cart.Items {
		if line.Size == "" || line.Color == "" {
			return nil, domainerrors.ErrCartLineInvalid
		}
	}

	quote := entity.ComputeQuote(cart.Total())
	receiptID := newReceiptID()
	order := entity.NewOrder(receiptID, cart.Items, quote.Total, input.Address, time.Now().UTC())

	if input.PaymentMethod == usecase.PaymentMethodCOD {
		return srv.submitPayOnDelivery(ctx, cart, order, quote)
	}

	return srv.submitGateway(ctx, order, quote)
}

// submitPayOnDelivery persists the order synchronously and finalizes the cart.
func (srv *checkoutService) submitPayOnDelivery(ctx context.Context, cart *entity.Cart, order *entity.Order, quote entity.PriceQuote) (*usecase.SubmitCheckoutOutput, error) {
	if err := srv.orderRepo.Save(ctx, order); err != nil {
		return nil, errors.Wrap(err, "persist order")
	}

	cart.Clear()
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "clear cart")
	}

	srv.logger.Info("Order placed",
		slog.String("orderId", order.OrderID),
		slog.String("paymentMethod", usecase.PaymentMethodCOD),
		slog.Int64("total", order.Total),
	)

	return &usecase.SubmitCheckoutOutput{Quote: quote, Order: order}, nil
}

// submitGateway requests order creation from the gateway and parks the order
// snapshot until the hosted payment UI calls back. Nothing is persisted yet.
func (srv *checkoutService) submitGateway(ctx context.Context, order *entity.Order, quote entity.PriceQuote) (*usecase.SubmitCheckoutOutput, error) {
	gatewayOrder, err := srv.gateway.CreateOrder(ctx, service.GatewayOrderRequest{
		Amount:   quote.Total * 100, // minor currency units
		Currency: srv.cfg.Gateway.Currency,
		Receipt:  order.OrderID,
	})
	if err != nil {
		srv.logger.Error("Gateway order creation failed", slog.String("receipt", order.OrderID), slog.Any("error", err))

		return nil, err
	}

	mode, err := srv.modeRepo.Load(ctx)
	if err != nil {
		mode = entity.DefaultShopMode
	}

	srv.mu.Lock()
	srv.pending[order.OrderID] = &pendingCheckout{order: order, gatewayOrderID: gatewayOrder.ID}
	srv.mu.Unlock()

	session := &usecase.PaymentSession{
		ReceiptID:      order.OrderID,
		KeyID:          srv.gateway.KeyID(),
		GatewayOrderID: gatewayOrder.ID,
		Amount:         quote.Total * 100,
		Currency:       srv.cfg.Gateway.Currency,
		MerchantName:   srv.cfg.Gateway.MerchantName,
		Description:    "Order Payment",
		Prefill: usecase.PaymentPrefill{
			Name:    order.ShippingAddress.FullName(),
			Email:   order.ShippingAddress.Email,
			Contact: order.ShippingAddress.Phone,
		},
		ThemeColor: mode.ThemeColor(),
	}

	srv.logger.Info("Awaiting payment confirmation",
		slog.String("receipt", order.OrderID),
		slog.String("gatewayOrderId", gatewayOrder.ID),
	)

	return &usecase.SubmitCheckoutOutput{Quote: quote, Payment: session}, nil
}

// ConfirmPayment is the hosted UI's success callback. It stamps the gateway
// identifiers onto the parked order, persists it as the last order, and
// clears the cart.
func (srv *checkoutService) ConfirmPayment(ctx context.Context, input usecase.ConfirmPaymentInput) (*entity.Order, error) {
	srv.mu.Lock()
	p, ok := srv.pending[input.ReceiptID]
	if ok {
		delete(srv.pending, input.ReceiptID)
	}
	srv.mu.Unlock()

	if !ok || p.gatewayOrderID != input.GatewayOrderID {
		return nil, domainerrors.ErrNoPendingCheckout
	}

	order := p.order
	order.PaymentID = input.PaymentID
	order.GatewayOrderID = input.GatewayOrderID

	if err := srv.orderRepo.Save(ctx, order); err != nil {
		return nil, errors.Wrap(err, "persist order")
	}

	cart, err := srv.cartRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}
	cart.Clear()
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "clear cart")
	}

	srv.logger.Info("Payment confirmed",
		slog.String("orderId", order.OrderID),
		slog.String("paymentId", order.PaymentID),
	)

	return order, nil
}

// FailPayment is the hosted UI's failure callback. The pending checkout is
// dropped; no order record is written and the cart stays intact.
func (srv *checkoutService) FailPayment(_ context.Context, receiptID, description string) error {
	srv.dropPending(receiptID)
	srv.logger.Warn("Payment failed",
		slog.String("receipt", receiptID),
		slog.String("description", description),
	)

	return nil
}

// CancelPayment is the hosted UI's dismissal callback. Same outcome as a
// failure: back to idle, nothing persisted.
func (srv *checkoutService) CancelPayment(_ context.Context, receiptID string) error {
	srv.dropPending(receiptID)
	srv.logger.Info("Payment cancelled by user", slog.String("receipt", receiptID))

	return nil
}

func (srv *checkoutService) dropPending(receiptID string) {
	srv.mu.Lock()
	delete(srv.pending, receiptID)
	srv.mu.Unlock()
}

// newReceiptID derives the order id from the current time, matching the
// storefront's receipt format. Not collision-resistant within a millisecond.
func newReceiptID() string {
	return fmt.Sprintf("receipt_%d", time.Now().UnixMilli())
}
