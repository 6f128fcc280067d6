package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/cart/domain"
)

// UpdateItemCommand changes the quantity of an existing cart line.
type UpdateItemCommand struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// UpdateItemHandler handles cart quantity updates
type UpdateItemHandler struct {
	carts    domain.CartRepository
	products catalogdomain.ProductRepository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(carts domain.CartRepository, products catalogdomain.ProductRepository) *UpdateItemHandler {
	return &UpdateItemHandler{carts: carts, products: products}
}

// Handle executes the update item command, re-validating against
// current stock.
func (h *UpdateItemHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (*domain.Cart, error) {
	if cmd.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	cart, err := h.carts.Get(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	item := cart.FindItem(cmd.ProductID)
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	product, err := h.products.FindByID(cmd.ProductID)
	if err != nil {
		return nil, catalogdomain.ErrProductNotFound
	}
	if product.Stock < cmd.Quantity {
		return nil, fmt.Errorf("%w: %d available", domain.ErrInsufficientStock, product.Stock)
	}

	item.Quantity = cmd.Quantity
	refreshPrices(cart, h.products)
	cart.Recompute()

	if err := h.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
