package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwell/storefront/internal/catalog/domain"
)

func TestSuggestProducts_RanksPrefixFirst(t *testing.T) {
	repo := newMockProductRepo()
	repo.add(domain.Product{Name: "Ergonomic Mouse Pad"}) // word prefix
	repo.add(domain.Product{Name: "Mouse Trap"})          // prefix
	repo.add(domain.Product{Name: "Thermouse"})           // substring

	handler := NewSuggestProductsHandler(repo)
	suggestions, err := handler.Handle(SuggestProductsQuery{Query: "mouse"})
	require.NoError(t, err)

	require.Len(t, suggestions, 3)
	assert.Equal(t, "Mouse Trap", suggestions[0].Name)
	assert.Equal(t, "Ergonomic Mouse Pad", suggestions[1].Name)
	assert.Equal(t, "Thermouse", suggestions[2].Name)
}

func TestSuggestProducts_ShortQueryReturnsEmpty(t *testing.T) {
	repo := newMockProductRepo()
	repo.add(domain.Product{Name: "Mouse"})

	handler := NewSuggestProductsHandler(repo)

	for _, q := range []string{"", "m", "  m  "} {
		suggestions, err := handler.Handle(SuggestProductsQuery{Query: q})
		require.NoError(t, err)
		assert.Empty(t, suggestions, "query %q", q)
		assert.NotNil(t, suggestions)
	}
}

func TestSuggestProducts_CapsAtMax(t *testing.T) {
	repo := newMockProductRepo()
	for i := 0; i < MaxSuggestions+5; i++ {
		repo.add(domain.Product{Name: fmt.Sprintf("Mouse %02d", i)})
	}

	handler := NewSuggestProductsHandler(repo)
	suggestions, err := handler.Handle(SuggestProductsQuery{Query: "mouse"})
	require.NoError(t, err)

	assert.Len(t, suggestions, MaxSuggestions)
}

func TestSuggestProducts_TiesBreakAlphabetically(t *testing.T) {
	repo := newMockProductRepo()
	repo.add(domain.Product{Name: "Mouse B"})
	repo.add(domain.Product{Name: "Mouse A"})

	handler := NewSuggestProductsHandler(repo)
	suggestions, err := handler.Handle(SuggestProductsQuery{Query: "mouse"})
	require.NoError(t, err)

	require.Len(t, suggestions, 2)
	assert.Equal(t, "Mouse A", suggestions[0].Name)
	assert.Equal(t, "Mouse B", suggestions[1].Name)
}
