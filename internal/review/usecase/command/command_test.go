package command

import (
	"context"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	orderdomain "github.com/shopwell/storefront/internal/order/domain"
	"github.com/shopwell/storefront/internal/review/domain"
	"github.com/shopwell/storefront/kafka"
)

type mockReviewRepo struct {
	reviews map[uint]*domain.Review
	nextID  uint
}

func newMockReviewRepo() *mockReviewRepo {
	return &mockReviewRepo{reviews: make(map[uint]*domain.Review), nextID: 1}
}

func (m *mockReviewRepo) Create(review *domain.Review) error {
	review.ID = m.nextID
	m.nextID++
	m.reviews[review.ID] = review
	return nil
}

func (m *mockReviewRepo) FindByID(id uint) (*domain.Review, error) {
	r, ok := m.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	return r, nil
}

func (m *mockReviewRepo) FindByProductID(productID uint) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range m.reviews {
		if r.ProductID == productID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockReviewRepo) FindByProductAndUser(productID, userID uint) (*domain.Review, error) {
	for _, r := range m.reviews {
		if r.ProductID == productID && r.UserID == userID {
			return r, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (m *mockReviewRepo) Update(review *domain.Review) error {
	if _, ok := m.reviews[review.ID]; !ok {
		return domain.ErrReviewNotFound
	}
	m.reviews[review.ID] = review
	return nil
}

func (m *mockReviewRepo) Delete(id uint) error {
	delete(m.reviews, id)
	return nil
}

func (m *mockReviewRepo) RatingsByProduct(productID uint) ([]int, error) {
	var out []int
	for _, r := range m.reviews {
		if r.ProductID == productID {
			out = append(out, r.Rating)
		}
	}
	return out, nil
}

// stubProductRepo records rating stat updates; other catalog methods are
// unused by the review flows.
type stubProductRepo struct {
	catalogdomain.ProductRepository
	products    map[uint]*catalogdomain.Product
	lastAverage float64
	lastCount   int
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

func (s *stubProductRepo) UpdateRatingStats(id uint, average float64, count int) error {
	s.lastAverage = average
	s.lastCount = count
	if p, ok := s.products[id]; ok {
		p.AverageRating = average
		p.NumReviews = count
	}
	return nil
}

// stubOrderRepo answers only the delivered-product check.
type stubOrderRepo struct {
	orderdomain.OrderRepository
	delivered map[[2]uint]bool
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{delivered: make(map[[2]uint]bool)}
}

func (s *stubOrderRepo) markDelivered(userID, productID uint) {
	s.delivered[[2]uint{userID, productID}] = true
}

func (s *stubOrderRepo) HasDeliveredProduct(userID, productID uint) (bool, error) {
	return s.delivered[[2]uint{userID, productID}], nil
}

type capturingPublisher struct {
	events []kafka.ReviewReportedEvent
}

func (p *capturingPublisher) PublishReviewReported(_ context.Context, event kafka.ReviewReportedEvent) error {
	p.events = append(p.events, event)
	return nil
}
