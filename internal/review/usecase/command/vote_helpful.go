package command

import (
	"fmt"
	"time"

	"github.com/shopwell/storefront/internal/review/domain"
)

// VoteHelpfulCommand toggles a user's helpful vote on a review.
type VoteHelpfulCommand struct {
	ReviewID uint
	UserID   uint
}

// VoteHelpfulResult reports the vote state after the toggle.
type VoteHelpfulResult struct {
	Voted      bool `json:"voted"`
	TotalVotes int  `json:"total_votes"`
}

// VoteHelpfulHandler handles helpful vote toggles
type VoteHelpfulHandler struct {
	repo domain.ReviewRepository
}

// NewVoteHelpfulHandler creates a new vote helpful handler
func NewVoteHelpfulHandler(repo domain.ReviewRepository) *VoteHelpfulHandler {
	return &VoteHelpfulHandler{repo: repo}
}

// Handle executes the vote toggle. A second vote by the same user
// un-votes.
func (h *VoteHelpfulHandler) Handle(cmd VoteHelpfulCommand) (*VoteHelpfulResult, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("user id is required")
	}

	review, err := h.repo.FindByID(cmd.ReviewID)
	if err != nil {
		return nil, domain.ErrReviewNotFound
	}

	voted := review.ToggleHelpfulVote(cmd.UserID)
	review.UpdatedAt = time.Now()

	if err := h.repo.Update(review); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	return &VoteHelpfulResult{
		Voted:      voted,
		TotalVotes: len(review.HelpfulVotes),
	}, nil
}
