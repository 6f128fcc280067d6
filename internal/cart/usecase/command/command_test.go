package command

import (
	"context"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/cart/domain"
)

type mockCartRepo struct {
	carts map[uint]*domain.Cart
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: make(map[uint]*domain.Cart)}
}

func (m *mockCartRepo) Get(_ context.Context, userID uint) (*domain.Cart, error) {
	if cart, ok := m.carts[userID]; ok {
		return cart, nil
	}
	return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
}

func (m *mockCartRepo) Save(_ context.Context, cart *domain.Cart) error {
	m.carts[cart.UserID] = cart
	return nil
}

func (m *mockCartRepo) Clear(_ context.Context, userID uint) error {
	delete(m.carts, userID)
	return nil
}

// stubProductRepo implements only the lookup the cart flows need.
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
