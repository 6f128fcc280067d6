package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleHelpfulVote(t *testing.T) {
	review := &Review{}

	assert.True(t, review.ToggleHelpfulVote(7))
	assert.True(t, review.HasHelpfulVote(7))

	assert.False(t, review.ToggleHelpfulVote(7))
	assert.False(t, review.HasHelpfulVote(7))
	assert.Empty(t, review.HelpfulVotes)
}

func TestToggleHelpfulVote_RemovesOnlyThatUser(t *testing.T) {
	review := &Review{}
	review.ToggleHelpfulVote(1)
	review.ToggleHelpfulVote(2)
	review.ToggleHelpfulVote(3)

	review.ToggleHelpfulVote(2)

	assert.True(t, review.HasHelpfulVote(1))
	assert.False(t, review.HasHelpfulVote(2))
	assert.True(t, review.HasHelpfulVote(3))
}

func TestAddReport(t *testing.T) {
	review := &Review{}

	assert.False(t, review.HasReported(7))
	review.AddReport(7)
	assert.True(t, review.HasReported(7))
	assert.Len(t, review.ReportedBy, 1)
}
