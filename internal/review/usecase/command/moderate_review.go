package command

import (
	"fmt"
	"time"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/review/domain"
	"github.com/shopwell/storefront/pkg/auth"
)

// ModerateReviewCommand applies an admin moderation action to a review.
type ModerateReviewCommand struct {
	ReviewID      uint
	RequesterRole string
	Action        string
}

// ModerateReviewHandler handles admin moderation
type ModerateReviewHandler struct {
	repo     domain.ReviewRepository
	products catalogdomain.ProductRepository
}

// NewModerateReviewHandler creates a new moderate review handler
func NewModerateReviewHandler(repo domain.ReviewRepository, products catalogdomain.ProductRepository) *ModerateReviewHandler {
	return &ModerateReviewHandler{repo: repo, products: products}
}

// Handle executes the moderation command.
func (h *ModerateReviewHandler) Handle(cmd ModerateReviewCommand) error {
	if cmd.RequesterRole != auth.RoleAdmin {
		return domain.ErrNotAuthorized
	}

	review, err := h.repo.FindByID(cmd.ReviewID)
	if err != nil {
		return domain.ErrReviewNotFound
	}

	switch cmd.Action {
	case domain.ActionRemove:
		if err := h.repo.Delete(review.ID); err != nil {
			return fmt.Errorf("failed to remove review: %w", err)
		}
		return recomputeProductRating(h.repo, h.products, review.ProductID)

	case domain.ActionClearReports:
		review.ReportedBy = nil
		review.UpdatedAt = time.Now()
		if err := h.repo.Update(review); err != nil {
			return fmt.Errorf("failed to clear reports: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown moderation action: %s", cmd.Action)
	}
}
