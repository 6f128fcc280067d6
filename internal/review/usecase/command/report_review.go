package command

import (
	"context"
	"fmt"
	"time"

	"github.com/shopwell/storefront/internal/review/domain"
	"github.com/shopwell/storefront/kafka"
	"github.com/shopwell/storefront/pkg/logger"
)

// ReportReviewCommand adds a distinct reporter to a review.
type ReportReviewCommand struct {
	ReviewID uint
	UserID   uint
}

// EventPublisher publishes review escalation events.
type EventPublisher interface {
	PublishReviewReported(ctx context.Context, event kafka.ReviewReportedEvent) error
}

// ReportReviewHandler handles review reports
type ReportReviewHandler struct {
	repo      domain.ReviewRepository
	publisher EventPublisher
}

// NewReportReviewHandler creates a new report review handler. Publisher
// may be nil.
func NewReportReviewHandler(repo domain.ReviewRepository, publisher EventPublisher) *ReportReviewHandler {
	return &ReportReviewHandler{repo: repo, publisher: publisher}
}

// Handle executes the report command. Crossing the report threshold
// emits an escalation event for administrators.
func (h *ReportReviewHandler) Handle(ctx context.Context, cmd ReportReviewCommand) error {
	if cmd.UserID == 0 {
		return fmt.Errorf("user id is required")
	}

	review, err := h.repo.FindByID(cmd.ReviewID)
	if err != nil {
		return domain.ErrReviewNotFound
	}

	if review.HasReported(cmd.UserID) {
		return domain.ErrAlreadyReported
	}

	review.AddReport(cmd.UserID)
	review.UpdatedAt = time.Now()

	if err := h.repo.Update(review); err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	if len(review.ReportedBy) >= domain.ReportThreshold && h.publisher != nil {
		if err := h.publisher.PublishReviewReported(ctx, kafka.ReviewReportedEvent{
			ReviewID:    review.ID,
			ProductID:   review.ProductID,
			ReportCount: len(review.ReportedBy),
		}); err != nil {
			logger.Warn(ctx).Err(err).Uint("review_id", review.ID).Msg("Failed to publish review reported event")
		}
	}

	return nil
}
