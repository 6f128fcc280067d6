//go:build wireinject
// +build wireinject

package review

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	orderdomain "github.com/shopwell/storefront/internal/order/domain"
	"github.com/shopwell/storefront/internal/review/delivery/http"
	"github.com/shopwell/storefront/internal/review/domain"
	"github.com/shopwell/storefront/internal/review/repository"
	"github.com/shopwell/storefront/internal/review/usecase/command"
	"github.com/shopwell/storefront/internal/review/usecase/query"
)

// ProvideReviewRepository provides the review repository
func ProvideReviewRepository(db *gorm.DB) domain.ReviewRepository {
	return repository.NewGormReviewRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideReviewRepository,
)

var UseCaseSet = wire.NewSet(
	command.NewCreateReviewHandler,
	command.NewUpdateReviewHandler,
	command.NewDeleteReviewHandler,
	command.NewVoteHelpfulHandler,
	command.NewReportReviewHandler,
	command.NewModerateReviewHandler,
	query.NewListReviewsHandler,
)

// InitializeReviewHandler initializes the review HTTP handler with all
// dependencies. Publisher may be nil.
func InitializeReviewHandler(
	db *gorm.DB,
	orders orderdomain.OrderRepository,
	products catalogdomain.ProductRepository,
	publisher command.EventPublisher,
) (*http.ReviewHandler, error) {
	wire.Build(
		RepositorySet,
		UseCaseSet,
		http.NewReviewHandler,
	)
	return nil, nil
}
