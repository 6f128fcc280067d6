package command

import (
	"context"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/cart/domain"
)

// RemoveItemCommand drops a product from the user's cart.
type RemoveItemCommand struct {
	UserID    uint
	ProductID uint
}

// RemoveItemHandler handles cart line removal
type RemoveItemHandler struct {
	carts    domain.CartRepository
	products catalogdomain.ProductRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(carts domain.CartRepository, products catalogdomain.ProductRepository) *RemoveItemHandler {
	return &RemoveItemHandler{carts: carts, products: products}
}

// Handle executes the remove item command.
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (*domain.Cart, error) {
	cart, err := h.carts.Get(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if !cart.RemoveItem(cmd.ProductID) {
		return nil, domain.ErrItemNotFound
	}
	refreshPrices(cart, h.products)
	cart.Recompute()

	if err := h.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
