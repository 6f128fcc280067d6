package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwell/storefront/internal/catalog/domain"
)

// tracedMockRepo exposes the context-aware variants the gorm decorator
// provides, recording which ones the handlers pick.
type tracedMockRepo struct {
	*mockProductRepo

	searchCalls  int
	facetsCalls  int
	relatedCalls int
	findCalls    int
}

func (m *tracedMockRepo) SearchWithContext(_ context.Context, filter domain.ProductFilter, sortBy string, limit, offset int) ([]domain.Product, int64, error) {
	m.searchCalls++
	return m.Search(filter, sortBy, limit, offset)
}

func (m *tracedMockRepo) FacetsWithContext(_ context.Context, filter domain.ProductFilter) (*domain.SearchFacets, error) {
	m.facetsCalls++
	return m.Facets(filter)
}

func (m *tracedMockRepo) FindRelatedWithContext(_ context.Context, productID uint, limit int) ([]domain.Product, error) {
	m.relatedCalls++
	return m.FindRelated(productID, limit)
}

func (m *tracedMockRepo) FindByIDWithContext(_ context.Context, id uint) (*domain.Product, error) {
	m.findCalls++
	return m.FindByID(id)
}

func TestSearchProducts_UsesContextAwareRepository(t *testing.T) {
	repo := &tracedMockRepo{mockProductRepo: newMockProductRepo()}
	repo.add(domain.Product{Name: "Keyboard", Price: 50, Stock: 5})

	handler := NewSearchProductsHandler(repo)
	result, err := handler.Handle(context.Background(), SearchProductsQuery{})
	require.NoError(t, err)

	assert.Len(t, result.Products, 1)
	assert.Equal(t, 1, repo.searchCalls)
	assert.Equal(t, 1, repo.facetsCalls)
}

func TestRelatedProducts_UsesContextAwareRepository(t *testing.T) {
	repo := &tracedMockRepo{mockProductRepo: newMockProductRepo()}
	source := repo.add(domain.Product{Name: "Keyboard", Category: "peripherals"})
	repo.add(domain.Product{Name: "Mouse", Category: "peripherals"})

	handler := NewRelatedProductsHandler(repo)
	products, err := handler.Handle(context.Background(), RelatedProductsQuery{ProductID: source.ID})
	require.NoError(t, err)

	assert.Len(t, products, 1)
	assert.Equal(t, 1, repo.relatedCalls)
}

func TestRelatedProducts_MissingSourceUsesContextAwareLookup(t *testing.T) {
	repo := &tracedMockRepo{mockProductRepo: newMockProductRepo()}

	handler := NewRelatedProductsHandler(repo)
	products, err := handler.Handle(context.Background(), RelatedProductsQuery{ProductID: 404})
	require.NoError(t, err)

	assert.Empty(t, products)
	assert.Equal(t, 1, repo.findCalls)
}
