package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"stylemart/internal/delivery/http/response"
	"stylemart/internal/domain/entity"
	"stylemart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for product browsing handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	modeUC usecase.ShopModeUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, modeUC usecase.ShopModeUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		modeUC: modeUC,
		logger: logger,
	}
}

// ListProducts returns the catalog filtered and sorted by query parameters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	input := usecase.ListProductsInput{
		Mode:     c.QueryParam("mode"),
		Category: c.QueryParam("category"),
		SortBy:   c.QueryParam("sortBy"),
	}
	if v := c.QueryParam("discounted"); v != "" {
		input.DiscountedOnly, _ = strconv.ParseBool(v)
	}
	if v := c.QueryParam("minPrice"); v != "" {
		input.MinPrice, _ = strconv.ParseInt(v, 10, 64)
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		input.MaxPrice, _ = strconv.ParseInt(v, 10, 64)
	}

	products, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetProduct returns a single product looked up by its slug.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// ListCategories returns the distinct categories for a shop mode.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context(), c.QueryParam("mode"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// GetShopMode returns the persisted shop mode and its theme color.
func (h *CatalogHandler) GetShopMode(c echo.Context) error {
	mode, err := h.modeUC.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"mode":       string(mode),
		"themeColor": mode.ThemeColor(),
	}, "Shop mode retrieved successfully")
}

// SetShopMode switches and persists the shop mode.
func (h *CatalogHandler) SetShopMode(c echo.Context) error {
	var input struct {
		Mode string `json:"mode"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop mode input")
	}

	mode := entity.ShopMode(input.Mode)
	if err := h.modeUC.Set(c.Request().Context(), mode); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"mode":       string(mode),
		"themeColor": mode.ThemeColor(),
	}, "Shop mode updated successfully")
}
