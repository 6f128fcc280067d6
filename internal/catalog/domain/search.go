package domain

import "strings"

// ProductFilter is the composite filter applied to catalog searches.
// Zero values mean "not filtered".
type ProductFilter struct {
	Query     string
	Category  string
	Brand     string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Tags      []string
	InStock   bool
}

// Sort keys accepted by the search endpoint.
const (
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
	SortNewest     = "newest"
	SortPopularity = "popularity"
)

// SortClause maps a sort key to its ORDER BY clause. Unknown keys fall
// back to newest-first.
func SortClause(sortBy string) string {
	switch sortBy {
	case SortPriceAsc:
		return "price ASC"
	case SortPriceDesc:
		return "price DESC"
	case SortRatingDesc:
		return "average_rating DESC"
	case SortPopularity:
		return "num_reviews DESC"
	default:
		return "created_at DESC"
	}
}

// DefaultPageSize is the per-page item count when none is requested.
const DefaultPageSize = 12

// Pagination describes one page of a result set.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

// NewPagination normalizes page/limit and derives the page count.
// An empty result set has zero pages.
func NewPagination(page, limit int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:    page,
		PerPage: limit,
		Total:   total,
		Pages:   pages,
	}
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PriceRange is the min/max price over a filtered set.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SearchFacets summarizes distinct filter values over a filtered set,
// used to populate the filter UI.
type SearchFacets struct {
	Brands     []string   `json:"brands"`
	Categories []string   `json:"categories"`
	Tags       []string   `json:"tags"`
	PriceRange PriceRange `json:"price_range"`
}

// Suggestion score tiers: exact prefix beats word prefix beats substring.
const (
	scorePrefix     = 3
	scoreWordPrefix = 2
	scoreSubstring  = 1
)

// ScoreSuggestion ranks how well a product name matches an autocomplete
// query. Zero means no match.
func ScoreSuggestion(query, name string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	n := strings.ToLower(name)
	if q == "" || n == "" {
		return 0
	}

	if strings.HasPrefix(n, q) {
		return scorePrefix
	}
	for _, word := range strings.Fields(n) {
		if strings.HasPrefix(word, q) {
			return scoreWordPrefix
		}
	}
	if strings.Contains(n, q) {
		return scoreSubstring
	}
	return 0
}
