package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/shopwell/storefront/internal/catalog/domain"
	"github.com/shopwell/storefront/internal/review/domain"
	"github.com/shopwell/storefront/pkg/auth"
)

func seedReview(reviews *mockReviewRepo, userID, productID uint, rating int) *domain.Review {
	review := &domain.Review{ProductID: productID, UserID: userID, Rating: rating, Verified: true}
	_ = reviews.Create(review)
	return review
}

func TestUpdateReview_AuthorCanEdit(t *testing.T) {
	reviews := newMockReviewRepo()
	products := newStubProductRepo(catalogdomain.Product{ID: 1})
	review := seedReview(reviews, 7, 1, 3)

	handler := NewUpdateReviewHandler(reviews, products)
	updated, err := handler.Handle(UpdateReviewCommand{
		ReviewID:      review.ID,
		RequesterID:   7,
		RequesterRole: auth.RoleUser,
		Rating:        5,
		Title:         "Better than I thought",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, 5.0, products.lastAverage)
}

func TestUpdateReview_StrangerDenied(t *testing.T) {
	reviews := newMockReviewRepo()
	review := seedReview(reviews, 7, 1, 3)

	handler := NewUpdateReviewHandler(reviews, newStubProductRepo())
	_, err := handler.Handle(UpdateReviewCommand{
		ReviewID:      review.ID,
		RequesterID:   8,
		RequesterRole: auth.RoleUser,
		Rating:        1,
	})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestUpdateReview_AdminCanEdit(t *testing.T) {
	reviews := newMockReviewRepo()
	products := newStubProductRepo(catalogdomain.Product{ID: 1})
	review := seedReview(reviews, 7, 1, 3)

	handler := NewUpdateReviewHandler(reviews, products)
	updated, err := handler.Handle(UpdateReviewCommand{
		ReviewID:      review.ID,
		RequesterID:   99,
		RequesterRole: auth.RoleAdmin,
		Rating:        2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
}

func TestUpdateReview_UnchangedRatingSkipsRecompute(t *testing.T) {
	reviews := newMockReviewRepo()
	products := newStubProductRepo(catalogdomain.Product{ID: 1})
	review := seedReview(reviews, 7, 1, 3)

	handler := NewUpdateReviewHandler(reviews, products)
	_, err := handler.Handle(UpdateReviewCommand{
		ReviewID:      review.ID,
		RequesterID:   7,
		RequesterRole: auth.RoleUser,
		Rating:        3,
		Content:       "edited text only",
	})
	require.NoError(t, err)
	assert.Zero(t, products.lastCount)
}

func TestDeleteReview_AuthorCanDelete(t *testing.T) {
	reviews := newMockReviewRepo()
	products := newStubProductRepo(catalogdomain.Product{ID: 1})
	review := seedReview(reviews, 7, 1, 4)

	handler := NewDeleteReviewHandler(reviews, products)
	err := handler.Handle(DeleteReviewCommand{ReviewID: review.ID, RequesterID: 7, RequesterRole: auth.RoleUser})
	require.NoError(t, err)

	_, err = reviews.FindByID(review.ID)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}

func TestDeleteReview_LastReviewResetsAggregates(t *testing.T) {
	reviews := newMockReviewRepo()
	products := newStubProductRepo(catalogdomain.Product{ID: 1, AverageRating: 4, NumReviews: 1})
	review := seedReview(reviews, 7, 1, 4)

	handler := NewDeleteReviewHandler(reviews, products)
	err := handler.Handle(DeleteReviewCommand{ReviewID: review.ID, RequesterID: 7, RequesterRole: auth.RoleUser})
	require.NoError(t, err)

	assert.Equal(t, 0.0, products.lastAverage)
	assert.Equal(t, 0, products.lastCount)
}

func TestDeleteReview_StrangerDenied(t *testing.T) {
	reviews := newMockReviewRepo()
	review := seedReview(reviews, 7, 1, 4)

	handler := NewDeleteReviewHandler(reviews, newStubProductRepo())
	err := handler.Handle(DeleteReviewCommand{ReviewID: review.ID, RequesterID: 8, RequesterRole: auth.RoleUser})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}
