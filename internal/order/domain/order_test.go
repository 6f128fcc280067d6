package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{StatusPending, StatusProcessing},
		{StatusPending, StatusCancelled},
		{StatusProcessing, StatusShipped},
		{StatusProcessing, StatusCancelled},
		{StatusShipped, StatusDelivered},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct{ from, to string }{
		{StatusPending, StatusShipped},
		{StatusPending, StatusDelivered},
		{StatusShipped, StatusCancelled},
		{StatusDelivered, StatusPending},
		{StatusCancelled, StatusProcessing},
		{StatusDelivered, StatusDelivered},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("returned"))
	assert.False(t, ValidStatus(""))
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []string{PaymentPending, PaymentCompleted, PaymentFailed} {
		assert.True(t, ValidPaymentStatus(s))
	}
	assert.False(t, ValidPaymentStatus("refunded"))
}

func TestShippingAddressIsComplete(t *testing.T) {
	full := ShippingAddress{Street: "1 Main St", City: "Springfield", State: "IL", Country: "US", PostalCode: "62704"}
	assert.True(t, full.IsComplete())

	missing := full
	missing.PostalCode = ""
	assert.False(t, missing.IsComplete())
}

func TestOrderItemExtension(t *testing.T) {
	item := OrderItem{UnitPrice: 19.99, Quantity: 3}
	assert.InDelta(t, 59.97, item.Extension(), 0.0001)
}
