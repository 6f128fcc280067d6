package repository

import (
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/shopwell/storefront/internal/catalog/domain"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Product{}, id).Error
}

func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}

func (r *GormProductRepository) UpdateStock(id uint, stock int) error {
	return r.db.Model(&domain.Product{}).Where("id = ?", id).Update("stock", stock).Error
}

func (r *GormProductRepository) UpdateRatingStats(id uint, average float64, count int) error {
	return r.db.Model(&domain.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"average_rating": average,
		"num_reviews":    count,
	}).Error
}

// applyFilter translates a ProductFilter into WHERE clauses.
func applyFilter(q *gorm.DB, f domain.ProductFilter) *gorm.DB {
	q = q.Where("is_active = ?", true)

	if f.Query != "" {
		pattern := "%" + f.Query + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Brand != "" {
		q = q.Where("brand = ?", f.Brand)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.MinRating != nil {
		q = q.Where("average_rating >= ?", *f.MinRating)
	}
	if len(f.Tags) > 0 {
		q = q.Where("tags && ?", pq.StringArray(f.Tags))
	}
	if f.InStock {
		q = q.Where("stock > 0")
	}
	return q
}

func (r *GormProductRepository) Search(filter domain.ProductFilter, sortBy string, limit, offset int) ([]domain.Product, int64, error) {
	base := applyFilter(r.db.Model(&domain.Product{}), filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []domain.Product
	err := base.
		Order(domain.SortClause(sortBy)).
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	return products, total, err
}

func (r *GormProductRepository) Facets(filter domain.ProductFilter) (*domain.SearchFacets, error) {
	facets := &domain.SearchFacets{}

	brandQuery := applyFilter(r.db.Model(&domain.Product{}), filter)
	if err := brandQuery.Where("brand <> ''").Distinct().Order("brand").
		Pluck("brand", &facets.Brands).Error; err != nil {
		return nil, err
	}

	categoryQuery := applyFilter(r.db.Model(&domain.Product{}), filter)
	if err := categoryQuery.Where("category <> ''").Distinct().Order("category").
		Pluck("category", &facets.Categories).Error; err != nil {
		return nil, err
	}

	tagQuery := applyFilter(r.db.Model(&domain.Product{}), filter)
	if err := tagQuery.Select("DISTINCT unnest(tags) AS tag").Order("tag").
		Pluck("tag", &facets.Tags).Error; err != nil {
		return nil, err
	}

	priceQuery := applyFilter(r.db.Model(&domain.Product{}), filter)
	var bounds struct {
		Min float64
		Max float64
	}
	if err := priceQuery.Select("COALESCE(MIN(price), 0) AS min, COALESCE(MAX(price), 0) AS max").
		Scan(&bounds).Error; err != nil {
		return nil, err
	}
	facets.PriceRange = domain.PriceRange{Min: bounds.Min, Max: bounds.Max}

	return facets, nil
}

func (r *GormProductRepository) FindRelated(productID uint, limit int) ([]domain.Product, error) {
	source, err := r.FindByID(productID)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	q := r.db.Where("id <> ?", productID).Where("is_active = ?", true)
	if len(source.Tags) > 0 {
		q = q.Where("category = ? OR brand = ? OR tags && ?", source.Category, source.Brand, source.Tags)
	} else {
		q = q.Where("category = ? OR brand = ?", source.Category, source.Brand)
	}
	err = q.Order("average_rating DESC").Limit(limit).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindNameMatches(query string, limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.
		Select("id", "name").
		Where("is_active = ?", true).
		Where("name ILIKE ?", "%"+query+"%").
		Limit(limit).
		Find(&products).Error
	return products, err
}
