package domain

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Review is a user's review of a purchased product. At most one review
// exists per (product, user) pair.
type Review struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	ProductID    uint           `json:"product_id" gorm:"not null;index;uniqueIndex:idx_reviews_product_user"`
	UserID       uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_reviews_product_user"`
	Rating       int            `json:"rating" gorm:"not null"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	Images       pq.StringArray `json:"images" gorm:"type:text[]"`
	Verified     bool           `json:"verified" gorm:"default:false"`
	HelpfulVotes pq.Int64Array  `json:"helpful_votes" gorm:"type:bigint[]"`
	ReportedBy   pq.Int64Array  `json:"-" gorm:"type:bigint[]"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Review) TableName() string {
	return "reviews"
}

// ReportThreshold is the reporter count at which a review is escalated
// to administrators.
const ReportThreshold = 3

// Moderation actions
const (
	ActionRemove       = "remove"
	ActionClearReports = "clear-reports"
)

// HasHelpfulVote reports whether the user already voted the review helpful.
func (r *Review) HasHelpfulVote(userID uint) bool {
	return containsUser(r.HelpfulVotes, userID)
}

// ToggleHelpfulVote adds the user's vote, or removes it when already
// present. Returns true when the vote is now set.
func (r *Review) ToggleHelpfulVote(userID uint) bool {
	if r.HasHelpfulVote(userID) {
		r.HelpfulVotes = removeUser(r.HelpfulVotes, userID)
		return false
	}
	r.HelpfulVotes = append(r.HelpfulVotes, int64(userID))
	return true
}

// HasReported reports whether the user already reported the review.
func (r *Review) HasReported(userID uint) bool {
	return containsUser(r.ReportedBy, userID)
}

// AddReport records a new distinct reporter.
func (r *Review) AddReport(userID uint) {
	r.ReportedBy = append(r.ReportedBy, int64(userID))
}

func containsUser(ids pq.Int64Array, userID uint) bool {
	for _, id := range ids {
		if id == int64(userID) {
			return true
		}
	}
	return false
}

func removeUser(ids pq.Int64Array, userID uint) pq.Int64Array {
	out := ids[:0]
	for _, id := range ids {
		if id != int64(userID) {
			out = append(out, id)
		}
	}
	return out
}

// Domain errors surfaced through the delivery layer.
var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrNotPurchased    = errors.New("product not purchased or not yet delivered")
	ErrDuplicateReview = errors.New("review already exists for this product")
	ErrAlreadyReported = errors.New("review already reported by this user")
	ErrNotAuthorized   = errors.New("not authorized to modify this review")
)

// ReviewRepository defines the contract for review data access
type ReviewRepository interface {
	Create(review *Review) error
	FindByID(id uint) (*Review, error)
	FindByProductID(productID uint) ([]Review, error)
	FindByProductAndUser(productID, userID uint) (*Review, error)
	Update(review *Review) error
	Delete(id uint) error

	// RatingsByProduct returns every remaining rating for a product,
	// feeding the aggregate recompute.
	RatingsByProduct(productID uint) ([]int, error)
}
