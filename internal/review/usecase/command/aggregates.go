package command

import (
	"fmt"
	"math"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/review/domain"
)

// AverageRating computes the mean of the ratings rounded to one decimal.
// An empty slice yields 0.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*10) / 10
}

// recomputeProductRating refreshes a product's rating aggregates from the
// remaining reviews. Runs synchronously inside every review write path.
func recomputeProductRating(reviews domain.ReviewRepository, products catalogdomain.ProductRepository, productID uint) error {
	ratings, err := reviews.RatingsByProduct(productID)
	if err != nil {
		return fmt.Errorf("failed to load ratings: %w", err)
	}
	if err := products.UpdateRatingStats(productID, AverageRating(ratings), len(ratings)); err != nil {
		return fmt.Errorf("failed to update rating stats: %w", err)
	}
	return nil
}
