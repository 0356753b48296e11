package precinct

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoteTypeColumns(t *testing.T) {
	assert.Equal(t, []string{"candidate_a_votes_total", "candidate_b_votes_total", "total_votes"}, VoteTypeTotal.Columns())
	assert.Equal(t, []string{"candidate_a_votes_election_day", "candidate_b_votes_election_day", "total_votes_election_day"}, VoteTypeElectionDay.Columns())
	assert.Equal(t, []string{"candidate_a_votes_mailin", "candidate_b_votes_mailin", "total_votes_mailin"}, VoteTypeMailIn.Columns())
}

func TestVoteTypeIsValid(t *testing.T) {
	for _, vt := range TypePriority {
		assert.True(t, vt.IsValid(), "expected %s to be valid", vt)
	}
	assert.False(t, VoteType("provisional").IsValid())
	assert.False(t, VoteType("").IsValid())
}

func TestVoteTypeDisplayNameRoundTrip(t *testing.T) {
	for _, vt := range TypePriority {
		name := vt.DisplayName()
		assert.NotEmpty(t, name)

		resolved, ok := VoteTypeFromDisplayName(name)
		assert.True(t, ok)
		assert.Equal(t, vt, resolved)
	}

	_, ok := VoteTypeFromDisplayName("Provisional Votes")
	assert.False(t, ok)
}

// TestCSVColumnsLayout pins the canonical wide layout: identity, base and
// shared columns first, then one triplet per vote type in priority order.
func TestCSVColumnsLayout(t *testing.T) {
	assert.Len(t, CSVColumns, 24)
	assert.Equal(t, IdentityColumns, CSVColumns[:3])

	want := append([]string{}, IdentityColumns...)
	want = append(want, BaseColumns...)
	want = append(want, SharedColumns...)
	for _, vt := range TypePriority {
		want = append(want, vt.Columns()...)
	}
	assert.Equal(t, want, CSVColumns)
}
