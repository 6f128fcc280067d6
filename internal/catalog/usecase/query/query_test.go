package query

import (
	"sort"
	"strings"

	"github.com/shopwell/storefront/internal/catalog/domain"
)

type mockProductRepo struct {
	products map[uint]*domain.Product
	nextID   uint

	searchErr error
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[uint]*domain.Product), nextID: 1}
}

func (m *mockProductRepo) add(p domain.Product) *domain.Product {
	p.ID = m.nextID
	m.nextID++
	if !p.IsActive {
		p.IsActive = true
	}
	m.products[p.ID] = &p
	return m.products[p.ID]
}

func (m *mockProductRepo) Create(product *domain.Product) error {
	product.ID = m.nextID
	m.nextID++
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) FindByID(id uint) (*domain.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (m *mockProductRepo) FindAll(limit, offset int) ([]domain.Product, error) {
	out := m.sorted()
	if offset > len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockProductRepo) Update(product *domain.Product) error {
	if _, ok := m.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) Delete(id uint) error {
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) Count() (int64, error) {
	return int64(len(m.products)), nil
}

func (m *mockProductRepo) UpdateStock(id uint, stock int) error {
	p, ok := m.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Stock = stock
	return nil
}

func (m *mockProductRepo) UpdateRatingStats(id uint, average float64, count int) error {
	p, ok := m.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.AverageRating = average
	p.NumReviews = count
	return nil
}

func (m *mockProductRepo) Search(filter domain.ProductFilter, sortBy string, limit, offset int) ([]domain.Product, int64, error) {
	if m.searchErr != nil {
		return nil, 0, m.searchErr
	}
	var matched []domain.Product
	for _, p := range m.sorted() {
		if matchesFilter(p, filter) {
			matched = append(matched, p)
		}
	}
	total := int64(len(matched))
	if offset > len(matched) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (m *mockProductRepo) Facets(filter domain.ProductFilter) (*domain.SearchFacets, error) {
	facets := &domain.SearchFacets{}
	seenBrand := map[string]bool{}
	seenCategory := map[string]bool{}
	for _, p := range m.sorted() {
		if !matchesFilter(p, filter) {
			continue
		}
		if p.Brand != "" && !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			facets.Brands = append(facets.Brands, p.Brand)
		}
		if p.Category != "" && !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			facets.Categories = append(facets.Categories, p.Category)
		}
		if facets.PriceRange.Min == 0 || p.Price < facets.PriceRange.Min {
			facets.PriceRange.Min = p.Price
		}
		if p.Price > facets.PriceRange.Max {
			facets.PriceRange.Max = p.Price
		}
	}
	return facets, nil
}

func (m *mockProductRepo) FindRelated(productID uint, limit int) ([]domain.Product, error) {
	source, ok := m.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	var out []domain.Product
	for _, p := range m.sorted() {
		if p.ID == productID {
			continue
		}
		if p.Category == source.Category || p.Brand == source.Brand {
			out = append(out, p)
		}
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockProductRepo) FindNameMatches(query string, limit int) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range m.sorted() {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockProductRepo) sorted() []domain.Product {
	out := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func matchesFilter(p domain.Product, f domain.ProductFilter) bool {
	if !p.IsActive {
		return false
	}
	if f.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Query)) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && p.AverageRating < *f.MinRating {
		return false
	}
	if f.InStock && p.Stock <= 0 {
		return false
	}
	return true
}
