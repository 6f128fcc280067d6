package command

import (
	"context"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/order/domain"
	"github.com/shopwell/storefront/kafka"
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
	if _, ok := m.orders[order.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) HasDeliveredProduct(userID, productID uint) (bool, error) {
	for _, o := range m.orders {
		if o.UserID != userID || o.Status != domain.StatusDelivered {
			continue
		}
		for _, item := range o.Items {
			if item.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

// stubProductRepo implements only the lookups order placement needs.
type stubProductRepo struct {
	catalogdomain.ProductRepository
	products map[uint]*catalogdomain.Product
}

func newStubProductRepo(products ...catalogdomain.Product) *stubProductRepo {
	s := &stubProductRepo{products: make(map[uint]*catalogdomain.Product)}
	for i := range products {
		p := products[i]
		s.products[p.ID] = &p
	}
	return s
}

func (s *stubProductRepo) FindByID(id uint) (*catalogdomain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, catalogdomain.ErrProductNotFound
	}
	return p, nil
}

type capturingPublisher struct {
	events []kafka.OrderPlacedEvent
	err    error
}

func (p *capturingPublisher) PublishOrderPlaced(_ context.Context, event kafka.OrderPlacedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type capturingCartClearer struct {
	cleared []uint
}

func (c *capturingCartClearer) Clear(_ context.Context, userID uint) error {
	c.cleared = append(c.cleared, userID)
	return nil
}

func validAddress() domain.ShippingAddress {
	return domain.ShippingAddress{
		Street:     "1 Main St",
		City:       "Springfield",
		State:      "IL",
		Country:    "US",
		PostalCode: "62704",
	}
}
