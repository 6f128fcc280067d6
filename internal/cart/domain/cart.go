package domain

import (
	"context"
	"errors"
	"time"
)

// CartItem is one product line in a cart. Unit price is refreshed from
// the catalog on every mutation.
type CartItem struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

// Cart is a user's short-lived item list. One cart per user.
type Cart struct {
	UserID    uint       `json:"user_id"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// FindItem returns the cart line for a product, or nil.
func (c *Cart) FindItem(productID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// SetItem replaces the line for a product, or appends a new one.
// Quantities are set, not added.
func (c *Cart) SetItem(item CartItem) {
	if existing := c.FindItem(item.ProductID); existing != nil {
		*existing = item
		return
	}
	c.Items = append(c.Items, item)
}

// RemoveItem drops the line for a product. Returns false when absent.
func (c *Cart) RemoveItem(productID uint) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Recompute refreshes the derived total from the item lines.
func (c *Cart) Recompute() {
	total := 0.0
	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	c.Total = total
	c.UpdatedAt = time.Now()
}

// Domain errors surfaced through the delivery layer.
var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrItemNotFound      = errors.New("item not in cart")
)

// CartRepository defines the contract for cart storage. Carts are
// ephemeral, so the store is keyed by user and may expire entries.
type CartRepository interface {
	Get(ctx context.Context, userID uint) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Clear(ctx context.Context, userID uint) error
}
