package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopwell/storefront/internal/catalog/domain"
)

const (
	// MinSuggestQueryLen is the minimum query length before suggestions kick in.
	MinSuggestQueryLen = 2
	// MaxSuggestions caps the autocomplete dropdown.
	MaxSuggestions = 10

	// candidatePool bounds the ILIKE candidate fetch before in-memory ranking.
	candidatePool = 50
)

// SuggestProductsQuery represents an autocomplete query
type SuggestProductsQuery struct {
	Query string
}

// Suggestion is one autocomplete entry.
type Suggestion struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SuggestProductsHandler handles autocomplete queries
type SuggestProductsHandler struct {
	repo domain.ProductRepository
}

// NewSuggestProductsHandler creates a new suggest products handler
func NewSuggestProductsHandler(repo domain.ProductRepository) *SuggestProductsHandler {
	return &SuggestProductsHandler{repo: repo}
}

// Handle executes the autocomplete query, ranking candidate names by
// match score.
func (h *SuggestProductsHandler) Handle(q SuggestProductsQuery) ([]Suggestion, error) {
	query := strings.TrimSpace(q.Query)
	if len(query) < MinSuggestQueryLen {
		return []Suggestion{}, nil
	}

	candidates, err := h.repo.FindNameMatches(query, candidatePool)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch suggestions: %w", err)
	}

	type scored struct {
		suggestion Suggestion
		score      int
	}
	ranked := make([]scored, 0, len(candidates))
	for _, p := range candidates {
		score := domain.ScoreSuggestion(query, p.Name)
		if score == 0 {
			continue
		}
		ranked = append(ranked, scored{
			suggestion: Suggestion{ID: p.ID, Name: p.Name},
			score:      score,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].suggestion.Name < ranked[j].suggestion.Name
	})

	if len(ranked) > MaxSuggestions {
		ranked = ranked[:MaxSuggestions]
	}

	suggestions := make([]Suggestion, 0, len(ranked))
	for _, s := range ranked {
		suggestions = append(suggestions, s.suggestion)
	}
	return suggestions, nil
}
