package command

import (
	"fmt"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/review/domain"
	"github.com/shopwell/storefront/pkg/auth"
)

// DeleteReviewCommand represents the command to delete a review
type DeleteReviewCommand struct {
	ReviewID      uint
	RequesterID   uint
	RequesterRole string
}

// DeleteReviewHandler handles review deletion
type DeleteReviewHandler struct {
	repo     domain.ReviewRepository
	products catalogdomain.ProductRepository
}

// NewDeleteReviewHandler creates a new delete review handler
func NewDeleteReviewHandler(repo domain.ReviewRepository, products catalogdomain.ProductRepository) *DeleteReviewHandler {
	return &DeleteReviewHandler{repo: repo, products: products}
}

// Handle executes the delete review command. Deleting the last review of
// a product resets its aggregates to zero.
func (h *DeleteReviewHandler) Handle(cmd DeleteReviewCommand) error {
	review, err := h.repo.FindByID(cmd.ReviewID)
	if err != nil {
		return domain.ErrReviewNotFound
	}
	if review.UserID != cmd.RequesterID && cmd.RequesterRole != auth.RoleAdmin {
		return domain.ErrNotAuthorized
	}

	if err := h.repo.Delete(cmd.ReviewID); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return recomputeProductRating(h.repo, h.products, review.ProductID)
}
