package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwell/storefront/internal/catalog/domain"
)

func TestRelatedProducts_SharesCategoryOrBrand(t *testing.T) {
	repo := newMockProductRepo()
	source := repo.add(domain.Product{Name: "Keyboard", Category: "peripherals", Brand: "logi"})
	repo.add(domain.Product{Name: "Mouse", Category: "peripherals", Brand: "razer"})
	repo.add(domain.Product{Name: "Webcam", Category: "video", Brand: "logi"})
	repo.add(domain.Product{Name: "Desk", Category: "furniture", Brand: "ikea"})

	handler := NewRelatedProductsHandler(repo)
	products, err := handler.Handle(context.Background(), RelatedProductsQuery{ProductID: source.ID})
	require.NoError(t, err)

	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Mouse", "Webcam"}, names)
}

func TestRelatedProducts_ExcludesSource(t *testing.T) {
	repo := newMockProductRepo()
	source := repo.add(domain.Product{Name: "Keyboard", Category: "peripherals"})

	handler := NewRelatedProductsHandler(repo)
	products, err := handler.Handle(context.Background(), RelatedProductsQuery{ProductID: source.ID})
	require.NoError(t, err)

	assert.Empty(t, products)
	assert.NotNil(t, products)
}

func TestRelatedProducts_MissingSourceYieldsEmpty(t *testing.T) {
	handler := NewRelatedProductsHandler(newMockProductRepo())
	products, err := handler.Handle(context.Background(), RelatedProductsQuery{ProductID: 404})
	require.NoError(t, err)

	assert.Empty(t, products)
	assert.NotNil(t, products)
}
