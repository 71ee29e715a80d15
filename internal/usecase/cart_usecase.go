// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"stylemart/internal/domain/entity"
)

// --- Input DTOs ---

// AddCartItemInput defines one product+variant selection to merge into the cart.
type AddCartItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// UpdateCartQuantityInput identifies a cart line and its new quantity.
// A quantity of zero or less removes the line.
type UpdateCartQuantityInput struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// RemoveCartItemInput identifies the cart line to remove.
type RemoveCartItemInput struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// --- Output DTOs ---

// CartView is the cart plus its derived values, recomputed on every read.
type CartView struct {
	Items     []entity.CartLine `json:"items"`
	Total     int64             `json:"total"`
	ItemCount int               `json:"itemCount"`
}

// CartUsecase defines the cart store's operations. Every mutation persists
// the full cart state before returning.
type CartUsecase interface {
	Get(ctx context.Context) (*CartView, error)
	AddItem(ctx context.Context, input AddCartItemInput) (*CartView, error)
	UpdateQuantity(ctx context.Context, input UpdateCartQuantityInput) (*CartView, error)
	RemoveItem(ctx context.Context, input RemoveCartItemInput) (*CartView, error)
	Clear(ctx context.Context) error
}
