package query

import (
	"context"
	"fmt"

	"github.com/shopwell/storefront/internal/catalog/domain"
)

// tracedSearcher is the traced variant the gorm repository decorator
// offers. Plain repositories fall back to the untraced calls.
type tracedSearcher interface {
	SearchWithContext(ctx context.Context, filter domain.ProductFilter, sortBy string, limit, offset int) ([]domain.Product, int64, error)
	FacetsWithContext(ctx context.Context, filter domain.ProductFilter) (*domain.SearchFacets, error)
}

// SearchProductsQuery represents a faceted catalog search
type SearchProductsQuery struct {
	Filter domain.ProductFilter
	SortBy string
	Page   int
	Limit  int
}

// SearchResult bundles one result page with its pagination and facet
// metadata.
type SearchResult struct {
	Products   []domain.Product    `json:"products"`
	Pagination domain.Pagination   `json:"pagination"`
	Facets     domain.SearchFacets `json:"filters"`
}

// SearchProductsHandler handles search queries
type SearchProductsHandler struct {
	repo domain.ProductRepository
}

// NewSearchProductsHandler creates a new search products handler
func NewSearchProductsHandler(repo domain.ProductRepository) *SearchProductsHandler {
	return &SearchProductsHandler{repo: repo}
}

// Handle executes the search query
func (h *SearchProductsHandler) Handle(ctx context.Context, q SearchProductsQuery) (*SearchResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = domain.DefaultPageSize
	}
	offset := (q.Page - 1) * q.Limit

	products, total, err := h.search(ctx, q.Filter, q.SortBy, q.Limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	facets, err := h.facets(ctx, q.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to compute facets: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	return &SearchResult{
		Products:   products,
		Pagination: domain.NewPagination(q.Page, q.Limit, total),
		Facets:     *facets,
	}, nil
}

func (h *SearchProductsHandler) search(ctx context.Context, filter domain.ProductFilter, sortBy string, limit, offset int) ([]domain.Product, int64, error) {
	if traced, ok := h.repo.(tracedSearcher); ok {
		return traced.SearchWithContext(ctx, filter, sortBy, limit, offset)
	}
	return h.repo.Search(filter, sortBy, limit, offset)
}

func (h *SearchProductsHandler) facets(ctx context.Context, filter domain.ProductFilter) (*domain.SearchFacets, error) {
	if traced, ok := h.repo.(tracedSearcher); ok {
		return traced.FacetsWithContext(ctx, filter)
	}
	return h.repo.Facets(filter)
}
