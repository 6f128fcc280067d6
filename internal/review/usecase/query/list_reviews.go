package query

import (
	"fmt"

	"github.com/shopwell/storefront/internal/review/domain"
)

// ListReviewsQuery lists the reviews of one product, newest first.
type ListReviewsQuery struct {
	ProductID uint
}

// ListReviewsHandler handles review listing queries
type ListReviewsHandler struct {
	repo domain.ReviewRepository
}

// NewListReviewsHandler creates a new list reviews handler
func NewListReviewsHandler(repo domain.ReviewRepository) *ListReviewsHandler {
	return &ListReviewsHandler{repo: repo}
}

// Handle executes the list reviews query.
func (h *ListReviewsHandler) Handle(q ListReviewsQuery) ([]domain.Review, error) {
	reviews, err := h.repo.FindByProductID(q.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}
