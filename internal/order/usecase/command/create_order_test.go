package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/order/domain"
)

func TestCreateOrder_Success(t *testing.T) {
	repo := newMockOrderRepo()
	products := newStubProductRepo(
		catalogdomain.Product{ID: 1, Name: "Keyboard", Price: 49.99, Stock: 10},
		catalogdomain.Product{ID: 2, Name: "Mouse", Price: 19.99, Stock: 10},
	)
	publisher := &capturingPublisher{}
	carts := &capturingCartClearer{}

	handler := NewCreateOrderHandler(repo, products, publisher, carts)
	order, err := handler.Handle(context.Background(), CreateOrderCommand{
		UserID: 7,
		Items: []OrderLine{
			{ProductID: 1, Quantity: 1, UnitPrice: 49.99},
			{ProductID: 2, Quantity: 2, UnitPrice: 19.99},
		},
		TotalAmount:     89.97,
		ShippingAddress: validAddress(),
		PaymentMethod:   "card",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, domain.PaymentPending, order.PaymentStatus)
	assert.InDelta(t, 89.97, order.TotalAmount, 0.001)
	assert.NotEmpty(t, order.OrderNumber)
	assert.Equal(t, "Keyboard", order.Items[0].ProductName)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, order.ID, publisher.events[0].OrderID)
	assert.Equal(t, []uint{7}, carts.cleared)
}

func TestCreateOrder_EmptyOrder(t *testing.T) {
	handler := NewCreateOrderHandler(newMockOrderRepo(), newStubProductRepo(), nil, nil)
	_, err := handler.Handle(context.Background(), CreateOrderCommand{
		UserID:          7,
		ShippingAddress: validAddress(),
	})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestCreateOrder_IncompleteAddress(t *testing.T) {
	products := newStubProductRepo(catalogdomain.Product{ID: 1, Price: 10})
	handler := NewCreateOrderHandler(newMockOrderRepo(), products, nil, nil)

	addr := validAddress()
	addr.City = ""

	_, err := handler.Handle(context.Background(), CreateOrderCommand{
		UserID:          7,
		Items:           []OrderLine{{ProductID: 1, Quantity: 1, UnitPrice: 10}},
		TotalAmount:     10,
		ShippingAddress: addr,
	})
	assert.ErrorIs(t, err, domain.ErrIncompleteAddress)
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	handler := NewCreateOrderHandler(newMockOrderRepo(), newStubProductRepo(), nil, nil)
	_, err := handler.Handle(context.Background(), CreateOrderCommand{
		UserID:          7,
		Items:           []OrderLine{{ProductID: 404, Quantity: 1, UnitPrice: 10}},
		TotalAmount:     10,
		ShippingAddress: validAddress(),
	})
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
}

func TestCreateOrder_PriceMismatch(t *testing.T) {
	products := newStubProductRepo(catalogdomain.Product{ID: 1, Price: 49.99})
	handler := NewCreateOrderHandler(newMockOrderRepo(), products, nil, nil)

	// Client submits a stale price.
	_, err := handler.Handle(context.Background(), CreateOrderCommand{
		UserID:          7,
		Items:           []OrderLine{{ProductID: 1, Quantity: 1, UnitPrice: 39.99}},
		TotalAmount:     39.99,
		ShippingAddress: validAddress(),
	})
	assert.ErrorIs(t, err, domain.ErrPriceMismatch)
}

func TestCreateOrder_TotalMismatch(t *testing.T) {
	products := newStubProductRepo(catalogdomain.Product{ID: 1, Price: 49.99})
	handler := NewCreateOrderHandler(newMockOrderRepo(), products, nil, nil)

	_, err := handler.Handle(context.Background(), CreateOrderCommand{
		UserID:          7,
		Items:           []OrderLine{{ProductID: 1, Quantity: 2, UnitPrice: 49.99}},
		TotalAmount:     89.99,
		ShippingAddress: validAddress(),
	})
	assert.ErrorIs(t, err, domain.ErrTotalMismatch)
}

func TestCreateOrder_TotalWithinEpsilon(t *testing.T) {
	products := newStubProductRepo(catalogdomain.Product{ID: 1, Price: 0.1}, catalogdomain.Product{ID: 2, Price: 0.2})
	handler := NewCreateOrderHandler(newMockOrderRepo(), products, nil, nil)

	// 0.1+0.2 != 0.3 in float64; the epsilon must absorb it.
	_, err := handler.Handle(context.Background(), CreateOrderCommand{
		UserID: 7,
		Items: []OrderLine{
			{ProductID: 1, Quantity: 1, UnitPrice: 0.1},
			{ProductID: 2, Quantity: 1, UnitPrice: 0.2},
		},
		TotalAmount:     0.3,
		ShippingAddress: validAddress(),
	})
	assert.NoError(t, err)
}

func TestCreateOrder_InvalidQuantity(t *testing.T) {
	products := newStubProductRepo(catalogdomain.Product{ID: 1, Price: 10})
	handler := NewCreateOrderHandler(newMockOrderRepo(), products, nil, nil)

	_, err := handler.Handle(context.Background(), CreateOrderCommand{
		UserID:          7,
		Items:           []OrderLine{{ProductID: 1, Quantity: 0, UnitPrice: 10}},
		TotalAmount:     0,
		ShippingAddress: validAddress(),
	})
	assert.Error(t, err)
}

func TestCreateOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	repo := newMockOrderRepo()
	products := newStubProductRepo(catalogdomain.Product{ID: 1, Name: "Keyboard", Price: 10})
	publisher := &capturingPublisher{err: assert.AnError}

	handler := NewCreateOrderHandler(repo, products, publisher, nil)
	order, err := handler.Handle(context.Background(), CreateOrderCommand{
		UserID:          7,
		Items:           []OrderLine{{ProductID: 1, Quantity: 1, UnitPrice: 10}},
		TotalAmount:     10,
		ShippingAddress: validAddress(),
	})
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
}
