package handler

import (
	"log/slog"
	"net/http"

	"stylemart/internal/delivery/http/response"
	"stylemart/internal/domain/entity"
	"stylemart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order tracking handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// TrackOrder returns the order record addressed by id.
func (h *OrderHandler) TrackOrder(c echo.Context) error {
	order, err := h.uc.Track(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// AdvanceStatus moves the order forward along the fulfilment pipeline.
func (h *OrderHandler) AdvanceStatus(c echo.Context) error {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	order, err := h.uc.AdvanceStatus(c.Request().Context(), c.Param("orderId"), entity.OrderStatus(input.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// TrackingQR renders a QR code linking to the order's tracking page.
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	png, err := h.uc.TrackingQR(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
