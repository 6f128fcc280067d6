package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwell/storefront/internal/catalog/domain"
)

func TestSearchProducts_PaginatesAndCounts(t *testing.T) {
	repo := newMockProductRepo()
	for i := 0; i < 5; i++ {
		repo.add(domain.Product{Name: "Gaming Keyboard", Price: 49.99, Stock: 10, Category: "peripherals"})
	}

	handler := NewSearchProductsHandler(repo)
	result, err := handler.Handle(context.Background(), SearchProductsQuery{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Len(t, result.Products, 2)
	assert.Equal(t, int64(5), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.Pages)
	assert.Equal(t, 2, result.Pagination.Page)
}

func TestSearchProducts_DefaultsPageAndLimit(t *testing.T) {
	repo := newMockProductRepo()
	repo.add(domain.Product{Name: "Mouse", Price: 19.99, Stock: 3})

	handler := NewSearchProductsHandler(repo)
	result, err := handler.Handle(context.Background(), SearchProductsQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, domain.DefaultPageSize, result.Pagination.PerPage)
}

func TestSearchProducts_FilterByCategory(t *testing.T) {
	repo := newMockProductRepo()
	repo.add(domain.Product{Name: "Keyboard", Category: "peripherals", Price: 50, Stock: 5})
	repo.add(domain.Product{Name: "Desk", Category: "furniture", Price: 200, Stock: 5})

	handler := NewSearchProductsHandler(repo)
	result, err := handler.Handle(context.Background(), SearchProductsQuery{
		Filter: domain.ProductFilter{Category: "peripherals"},
	})
	require.NoError(t, err)

	require.Len(t, result.Products, 1)
	assert.Equal(t, "Keyboard", result.Products[0].Name)
}

func TestSearchProducts_EmptyResultIsNotNil(t *testing.T) {
	handler := NewSearchProductsHandler(newMockProductRepo())
	result, err := handler.Handle(context.Background(), SearchProductsQuery{
		Filter: domain.ProductFilter{Query: "nothing"},
	})
	require.NoError(t, err)

	assert.NotNil(t, result.Products)
	assert.Empty(t, result.Products)
	assert.Equal(t, 0, result.Pagination.Pages)
}

func TestSearchProducts_FacetsReflectFilteredSet(t *testing.T) {
	repo := newMockProductRepo()
	repo.add(domain.Product{Name: "Keyboard A", Category: "peripherals", Brand: "logi", Price: 40, Stock: 5})
	repo.add(domain.Product{Name: "Keyboard B", Category: "peripherals", Brand: "razer", Price: 90, Stock: 5})

	handler := NewSearchProductsHandler(repo)
	result, err := handler.Handle(context.Background(), SearchProductsQuery{
		Filter: domain.ProductFilter{Query: "keyboard"},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"logi", "razer"}, result.Facets.Brands)
	assert.Equal(t, 40.0, result.Facets.PriceRange.Min)
	assert.Equal(t, 90.0, result.Facets.PriceRange.Max)
}
