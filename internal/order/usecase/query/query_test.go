package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwell/storefront/internal/order/domain"
	"github.com/shopwell/storefront/pkg/auth"
)

type mockOrderRepo struct {
	orders map[uint]*domain.Order
	nextID uint
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[uint]*domain.Order), nextID: 1}
}

func (m *mockOrderRepo) Create(order *domain.Order) error {
	order.ID = m.nextID
	m.nextID++
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) FindByID(id uint) (*domain.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

func (m *mockOrderRepo) FindAll() ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (m *mockOrderRepo) FindByUserID(userID uint) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) Update(order *domain.Order) error {
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) HasDeliveredProduct(userID, productID uint) (bool, error) {
	return false, nil
}

func TestListOrders_UserSeesOnlyOwnOrders(t *testing.T) {
	repo := newMockOrderRepo()
	_ = repo.Create(&domain.Order{UserID: 1})
	_ = repo.Create(&domain.Order{UserID: 2})
	_ = repo.Create(&domain.Order{UserID: 1})

	handler := NewListOrdersHandler(repo)
	orders, err := handler.Handle(ListOrdersQuery{RequesterID: 1, RequesterRole: auth.RoleUser})
	require.NoError(t, err)

	assert.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, uint(1), o.UserID)
	}
}

func TestListOrders_AdminSeesAll(t *testing.T) {
	repo := newMockOrderRepo()
	_ = repo.Create(&domain.Order{UserID: 1})
	_ = repo.Create(&domain.Order{UserID: 2})

	handler := NewListOrdersHandler(repo)
	orders, err := handler.Handle(ListOrdersQuery{RequesterID: 99, RequesterRole: auth.RoleAdmin})
	require.NoError(t, err)

	assert.Len(t, orders, 2)
}

func TestListOrders_EmptyIsNotNil(t *testing.T) {
	handler := NewListOrdersHandler(newMockOrderRepo())
	orders, err := handler.Handle(ListOrdersQuery{RequesterID: 1, RequesterRole: auth.RoleUser})
	require.NoError(t, err)

	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestGetOrder_OwnerAllowed(t *testing.T) {
	repo := newMockOrderRepo()
	order := &domain.Order{UserID: 1}
	_ = repo.Create(order)

	handler := NewGetOrderHandler(repo)
	got, err := handler.Handle(GetOrderQuery{OrderID: order.ID, RequesterID: 1, RequesterRole: auth.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestGetOrder_StrangerDenied(t *testing.T) {
	repo := newMockOrderRepo()
	order := &domain.Order{UserID: 1}
	_ = repo.Create(order)

	handler := NewGetOrderHandler(repo)
	_, err := handler.Handle(GetOrderQuery{OrderID: order.ID, RequesterID: 2, RequesterRole: auth.RoleUser})
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestGetOrder_AdminAllowed(t *testing.T) {
	repo := newMockOrderRepo()
	order := &domain.Order{UserID: 1}
	_ = repo.Create(order)

	handler := NewGetOrderHandler(repo)
	got, err := handler.Handle(GetOrderQuery{OrderID: order.ID, RequesterID: 99, RequesterRole: auth.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestGetOrder_NotFound(t *testing.T) {
	handler := NewGetOrderHandler(newMockOrderRepo())
	_, err := handler.Handle(GetOrderQuery{OrderID: 404, RequesterID: 1, RequesterRole: auth.RoleUser})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
