//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/cart/delivery/http"
	"github.com/shopwell/storefront/internal/cart/domain"
	"github.com/shopwell/storefront/internal/cart/repository"
	"github.com/shopwell/storefront/internal/cart/usecase/command"
	"github.com/shopwell/storefront/internal/cart/usecase/query"
)

// ProvideCartRepository provides the Redis-backed cart repository
func ProvideCartRepository(client *redis.Client) domain.CartRepository {
	return repository.NewRedisCartRepository(client)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCartRepository,
)

var UseCaseSet = wire.NewSet(
	command.NewAddItemHandler,
	command.NewUpdateItemHandler,
	command.NewRemoveItemHandler,
	command.NewClearCartHandler,
	query.NewGetCartHandler,
)

// InitializeCartHandler initializes the cart HTTP handler with all dependencies
func InitializeCartHandler(client *redis.Client, products catalogdomain.ProductRepository) (*http.CartHandler, error) {
	wire.Build(
		RepositorySet,
		UseCaseSet,
		http.NewCartHandler,
	)
	return nil, nil
}
