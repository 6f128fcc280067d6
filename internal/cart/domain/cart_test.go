package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartSetItem_ReplacesQuantity(t *testing.T) {
	cart := &Cart{UserID: 7}

	cart.SetItem(CartItem{ProductID: 1, UnitPrice: 10, Quantity: 2})
	cart.SetItem(CartItem{ProductID: 1, UnitPrice: 10, Quantity: 5})

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartRemoveItem(t *testing.T) {
	cart := &Cart{Items: []CartItem{{ProductID: 1}, {ProductID: 2}}}

	assert.True(t, cart.RemoveItem(1))
	assert.False(t, cart.RemoveItem(1))
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, uint(2), cart.Items[0].ProductID)
}

func TestCartRecompute(t *testing.T) {
	cart := &Cart{Items: []CartItem{
		{ProductID: 1, UnitPrice: 10.50, Quantity: 2},
		{ProductID: 2, UnitPrice: 5.25, Quantity: 1},
	}}

	cart.Recompute()

	assert.InDelta(t, 26.25, cart.Total, 0.0001)
	assert.False(t, cart.UpdatedAt.IsZero())
}

func TestCartFindItem(t *testing.T) {
	cart := &Cart{Items: []CartItem{{ProductID: 1, Quantity: 2}}}

	item := cart.FindItem(1)
	assert.NotNil(t, item)

	// FindItem returns a mutable reference into the cart.
	item.Quantity = 9
	assert.Equal(t, 9, cart.Items[0].Quantity)

	assert.Nil(t, cart.FindItem(404))
}
