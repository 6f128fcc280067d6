package query

import (
	"context"

	"github.com/shopwell/storefront/internal/cart/domain"
)

// GetCartQuery fetches the user's cart.
type GetCartQuery struct {
	UserID uint
}

// GetCartHandler handles cart queries
type GetCartHandler struct {
	carts domain.CartRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(carts domain.CartRepository) *GetCartHandler {
	return &GetCartHandler{carts: carts}
}

// Handle executes the get cart query.
func (h *GetCartHandler) Handle(ctx context.Context, q GetCartQuery) (*domain.Cart, error) {
	return h.carts.Get(ctx, q.UserID)
}
