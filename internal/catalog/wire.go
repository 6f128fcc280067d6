//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/shopwell/storefront/internal/catalog/delivery/http"
	"github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/catalog/repository"
)

// ProvideProductRepository provides the product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

// InitializeProductHandler initializes the product HTTP handler with all dependencies
func InitializeProductHandler(db *gorm.DB) (*http.ProductHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewProductHandler,
	)
	return nil, nil
}

// InitializeSearchHandler initializes the search HTTP handler with all dependencies
func InitializeSearchHandler(db *gorm.DB) (*http.SearchHandler, error) {
	wire.Build(
		RepositorySet,
		http.NewSearchHandler,
	)
	return nil, nil
}
