//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/order/delivery/http"
	"github.com/shopwell/storefront/internal/order/domain"
	"github.com/shopwell/storefront/internal/order/repository"
	"github.com/shopwell/storefront/internal/order/usecase/command"
	"github.com/shopwell/storefront/internal/order/usecase/query"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
)

var UseCaseSet = wire.NewSet(
	command.NewCreateOrderHandler,
	command.NewUpdateOrderHandler,
	query.NewListOrdersHandler,
	query.NewGetOrderHandler,
)

// InitializeOrderHandler initializes the order HTTP handler with all
// dependencies. Publisher and cart clearer may be nil.
func InitializeOrderHandler(
	db *gorm.DB,
	products catalogdomain.ProductRepository,
	publisher command.EventPublisher,
	carts command.CartClearer,
) (*http.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		UseCaseSet,
		http.NewOrderHandler,
	)
	return nil, nil
}
