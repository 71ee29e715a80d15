package handler

import (
	"log/slog"
	"net/http"

	"stylemart/internal/delivery/http/response"
	"stylemart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for checkout handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit validates the checkout form and starts exactly one payment path.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	var input usecase.SubmitCheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	output, err := h.uc.Submit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Order != nil {
		return response.Success(c, http.StatusCreated, output, "Order placed successfully")
	}

	return response.Success(c, http.StatusOK, output, "Payment session created")
}

// ConfirmPayment is the gateway's payment-success callback.
func (h *CheckoutHandler) ConfirmPayment(c echo.Context) error {
	var input usecase.ConfirmPaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment confirmation input")
	}

	order, err := h.uc.ConfirmPayment(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Payment confirmed, order placed")
}

// FailPayment is the gateway's payment-failed callback. The pending checkout
// is discarded and the cart is left intact.
func (h *CheckoutHandler) FailPayment(c echo.Context) error {
	var input struct {
		ReceiptID   string `json:"receiptId"`
		Description string `json:"description"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment failure input")
	}

	if err := h.uc.FailPayment(c.Request().Context(), input.ReceiptID, input.Description); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Payment failure recorded"}, "Checkout reset")
}

// CancelPayment handles the shopper dismissing the hosted payment UI.
func (h *CheckoutHandler) CancelPayment(c echo.Context) error {
	var input struct {
		ReceiptID string `json:"receiptId"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment cancellation input")
	}

	if err := h.uc.CancelPayment(c.Request().Context(), input.ReceiptID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Payment cancelled"}, "Checkout reset")
}
