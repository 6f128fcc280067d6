package command

import (
	"context"
	"fmt"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/cart/domain"
)

// AddItemCommand puts a product in the user's cart. If the product is
// already present its quantity is replaced by the submitted value.
type AddItemCommand struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// AddItemHandler handles cart additions
type AddItemHandler struct {
	carts    domain.CartRepository
	products catalogdomain.ProductRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(carts domain.CartRepository, products catalogdomain.ProductRepository) *AddItemHandler {
	return &AddItemHandler{carts: carts, products: products}
}

// Handle executes the add item command, validating against live stock.
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (*domain.Cart, error) {
	if cmd.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	product, err := h.products.FindByID(cmd.ProductID)
	if err != nil {
		return nil, catalogdomain.ErrProductNotFound
	}
	if product.Stock < cmd.Quantity {
		return nil, fmt.Errorf("%w: %d available", domain.ErrInsufficientStock, product.Stock)
	}

	cart, err := h.carts.Get(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	cart.SetItem(domain.CartItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    cmd.Quantity,
	})
	refreshPrices(cart, h.products)
	cart.Recompute()

	if err := h.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// refreshPrices re-resolves every line against the live catalog so the
// derived total always reflects current prices. Lines whose product
// disappeared are dropped.
func refreshPrices(cart *domain.Cart, products catalogdomain.ProductRepository) {
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		product, err := products.FindByID(item.ProductID)
		if err != nil {
			continue
		}
		item.ProductName = product.Name
		item.UnitPrice = product.Price
		kept = append(kept, item)
	}
	cart.Items = kept
}
