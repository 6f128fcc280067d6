package query

import (
	"context"
	"fmt"

	"github.com/shopwell/storefront/internal/catalog/domain"
)

// tracedRelatedFinder is the traced variant the gorm repository decorator
// offers for the product page strip.
type tracedRelatedFinder interface {
	FindRelatedWithContext(ctx context.Context, productID uint, limit int) ([]domain.Product, error)
	FindByIDWithContext(ctx context.Context, id uint) (*domain.Product, error)
}

// DefaultRelatedLimit caps the related products strip on product pages.
const DefaultRelatedLimit = 8

// RelatedProductsQuery represents the query for products related to one
// source product.
type RelatedProductsQuery struct {
	ProductID uint
	Limit     int
}

// RelatedProductsHandler handles related products queries
type RelatedProductsHandler struct {
	repo domain.ProductRepository
}

// NewRelatedProductsHandler creates a new related products handler
func NewRelatedProductsHandler(repo domain.ProductRepository) *RelatedProductsHandler {
	return &RelatedProductsHandler{repo: repo}
}

// Handle executes the related products query. A missing source product
// yields an empty result, not an error.
func (h *RelatedProductsHandler) Handle(ctx context.Context, q RelatedProductsQuery) ([]domain.Product, error) {
	if q.Limit < 1 {
		q.Limit = DefaultRelatedLimit
	}

	products, err := h.findRelated(ctx, q.ProductID, q.Limit)
	if err != nil {
		if _, findErr := h.findByID(ctx, q.ProductID); findErr != nil {
			return []domain.Product{}, nil
		}
		return nil, fmt.Errorf("failed to find related products: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (h *RelatedProductsHandler) findRelated(ctx context.Context, productID uint, limit int) ([]domain.Product, error) {
	if traced, ok := h.repo.(tracedRelatedFinder); ok {
		return traced.FindRelatedWithContext(ctx, productID, limit)
	}
	return h.repo.FindRelated(productID, limit)
}

func (h *RelatedProductsHandler) findByID(ctx context.Context, id uint) (*domain.Product, error) {
	if traced, ok := h.repo.(tracedRelatedFinder); ok {
		return traced.FindByIDWithContext(ctx, id)
	}
	return h.repo.FindByID(id)
}
