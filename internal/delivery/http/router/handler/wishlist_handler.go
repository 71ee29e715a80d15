package handler

import (
	"log/slog"
	"net/http"

	"stylemart/internal/delivery/http/response"
	"stylemart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler holds dependencies for wishlist handlers.
type WishlistHandler struct {
	uc     usecase.WishlistUsecase
	logger *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetWishlist returns the favorited products.
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	view, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Wishlist retrieved successfully")
}

// AddItem favorites a product. Already favorited products are a no-op.
func (h *WishlistHandler) AddItem(c echo.Context) error {
	var input struct {
		ProductID string `json:"productId"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}

	view, err := h.uc.AddItem(c.Request().Context(), input.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item added to wishlist")
}

// RemoveItem unfavorites a product by id.
func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	view, err := h.uc.RemoveItem(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item removed from wishlist")
}

// Contains reports whether a product is favorited.
func (h *WishlistHandler) Contains(c echo.Context) error {
	found, err := h.uc.Contains(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"inWishlist": found}, "Wishlist membership checked")
}
