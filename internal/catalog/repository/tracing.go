package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/shopwell/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormProductRepositoryWithTracing wraps GormProductRepository with tracing
// on the read paths the storefront hits hardest.
type GormProductRepositoryWithTracing struct {
	*GormProductRepository
}

// NewGormProductRepositoryWithTracing creates a new repository with tracing
func NewGormProductRepositoryWithTracing(db *gorm.DB) *GormProductRepositoryWithTracing {
	return &GormProductRepositoryWithTracing{
		GormProductRepository: NewGormProductRepository(db),
	}
}

// FindByIDWithContext fetches a product under a span.
func (r *GormProductRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.GormProductRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.Bool("product.is_active", product.IsActive),
	)
	return product, nil
}

// SearchWithContext runs a catalog search under a span.
func (r *GormProductRepositoryWithTracing) SearchWithContext(ctx context.Context, filter domain.ProductFilter, sortBy string, limit, offset int) ([]domain.Product, int64, error) {
	_, span := tracer.Start(ctx, "repository.Search",
		trace.WithAttributes(
			attribute.String("search.query", filter.Query),
			attribute.String("search.category", filter.Category),
			attribute.String("search.brand", filter.Brand),
			attribute.String("search.sort", sortBy),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	products, total, err := r.GormProductRepository.Search(filter, sortBy, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(
		attribute.Int("result.count", len(products)),
		attribute.Int64("result.total", total),
	)
	return products, total, err
}

// FacetsWithContext computes facets under a span.
func (r *GormProductRepositoryWithTracing) FacetsWithContext(ctx context.Context, filter domain.ProductFilter) (*domain.SearchFacets, error) {
	_, span := tracer.Start(ctx, "repository.Facets")
	defer span.End()

	facets, err := r.GormProductRepository.Facets(filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("facets.brands", len(facets.Brands)),
		attribute.Int("facets.categories", len(facets.Categories)),
		attribute.Int("facets.tags", len(facets.Tags)),
	)
	return facets, nil
}

// FindRelatedWithContext fetches related products under a span.
func (r *GormProductRepositoryWithTracing) FindRelatedWithContext(ctx context.Context, productID uint, limit int) ([]domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindRelated",
		trace.WithAttributes(
			attribute.Int("product.id", int(productID)),
			attribute.Int("query.limit", limit),
		),
	)
	defer span.End()

	products, err := r.GormProductRepository.FindRelated(productID, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}
