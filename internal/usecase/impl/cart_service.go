// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"stylemart/internal/domain/entity"
	domainerrors "stylemart/internal/domain/errors"
	"stylemart/internal/domain/repository"
	"stylemart/internal/errors"
	"stylemart/internal/usecase"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo repository.CartRepository
	catalog  repository.CatalogRepository
	logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(cartRepo repository.CartRepository, catalog repository.CatalogRepository, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		cartRepo: cartRepo,
		catalog:  catalog,
		logger:   logger,
	}
}

// Get returns the cart with its derived total and item count.
func (srv *cartService) Get(ctx context.Context) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}

	return viewOf(cart), nil
}

// AddItem merges the selection into the cart. Lines are keyed by
// (product id, size, color); adding an existing key increments its quantity.
// The write path requires a positive quantity and a chosen size and color, so
// no line can enter the cart that checkout would later reject.
func (srv *cartService) AddItem(ctx context.Context, input usecase.AddCartItemInput) (*usecase.CartView, error) {
	if input.Quantity < 1 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be at least 1")
	}
	if input.Size == "" || input.Color == "" {
		return nil, errors.Wrap(domainerrors.ErrCartLineInvalid, "size and color must be selected")
	}

	product, err := srv.catalog.FindByID(ctx, input.ProductID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find product")
	}

	cart, err := srv.cartRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}

	cart.Add(entity.CartLine{
		Product:  *product,
		Quantity: input.Quantity,
		Size:     input.Size,
		Color:    input.Color,
	})

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	srv.logger.Debug("Added cart item",
		slog.String("productId", input.ProductID),
		slog.String("size", input.Size),
		slog.String("color", input.Color),
		slog.Int("quantity", input.Quantity),
	)

	return viewOf(cart), nil
}

// UpdateQuantity replaces the matching line's quantity in place. A quantity
// of zero or less removes the line.
func (srv *cartService) UpdateQuantity(ctx context.Context, input usecase.UpdateCartQuantityInput) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}

	cart.UpdateQuantity(input.ProductID, input.Size, input.Color, input.Quantity)

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	return viewOf(cart), nil
}

// RemoveItem deletes the matching line. Removing an absent line is a no-op.
func (srv *cartService) RemoveItem(ctx context.Context, input usecase.RemoveCartItemInput) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}

	cart.Remove(input.ProductID, input.Size, input.Color)

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	return viewOf(cart), nil
}

// Clear empties the cart.
func (srv *cartService) Clear(ctx context.Context) error {
	cart, err := srv.cartRepo.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "load cart")
	}

	cart.Clear()

	return errors.Wrap(srv.cartRepo.Save(ctx, cart), "save cart")
}

func viewOf(cart *entity.Cart) *usecase.CartView {
	return &usecase.CartView{
		Items:     cart.Items,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}
