package command

import (
	"fmt"
	"time"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/review/domain"
	"github.com/shopwell/storefront/pkg/auth"
)

// UpdateReviewCommand represents the command to update a review
type UpdateReviewCommand struct {
	ReviewID      uint
	RequesterID   uint
	RequesterRole string
	Rating        int
	Title         string
	Content       string
	Images        []string
}

// UpdateReviewHandler handles review updates
type UpdateReviewHandler struct {
	repo     domain.ReviewRepository
	products catalogdomain.ProductRepository
}

// NewUpdateReviewHandler creates a new update review handler
func NewUpdateReviewHandler(repo domain.ReviewRepository, products catalogdomain.ProductRepository) *UpdateReviewHandler {
	return &UpdateReviewHandler{repo: repo, products: products}
}

// Handle executes the update review command. Only the author or an admin
// may update; a rating change triggers an aggregate recompute.
func (h *UpdateReviewHandler) Handle(cmd UpdateReviewCommand) (*domain.Review, error) {
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	review, err := h.repo.FindByID(cmd.ReviewID)
	if err != nil {
		return nil, domain.ErrReviewNotFound
	}
	if review.UserID != cmd.RequesterID && cmd.RequesterRole != auth.RoleAdmin {
		return nil, domain.ErrNotAuthorized
	}

	ratingChanged := review.Rating != cmd.Rating

	review.Rating = cmd.Rating
	review.Title = cmd.Title
	review.Content = cmd.Content
	review.Images = cmd.Images
	review.UpdatedAt = time.Now()

	if err := h.repo.Update(review); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	if ratingChanged {
		if err := recomputeProductRating(h.repo, h.products, review.ProductID); err != nil {
			return nil, err
		}
	}

	return review, nil
}
