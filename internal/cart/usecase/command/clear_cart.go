package command

import (
	"context"

	"github.com/shopwell/storefront/internal/cart/domain"
)

// ClearCartCommand empties the user's cart.
type ClearCartCommand struct {
	UserID uint
}

// ClearCartHandler handles cart clearing
type ClearCartHandler struct {
	carts domain.CartRepository
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(carts domain.CartRepository) *ClearCartHandler {
	return &ClearCartHandler{carts: carts}
}

// Handle executes the clear cart command.
func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	return h.carts.Clear(ctx, cmd.UserID)
}
