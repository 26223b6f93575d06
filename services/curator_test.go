package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"home-finder/models"
)

func makeProps(ids ...string) []*models.Property {
	out := make([]*models.Property, len(ids))
	for i, id := range ids {
		out[i] = &models.Property{ID: id, City: "Austin"}
	}
	return out
}

func idsOf(ps []*models.Property) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestCurateDeduplicatesFirstWins(t *testing.T) {
	in := makeProps("999", "999")
	in[0].MedianPrice = 1
	in[1].MedianPrice = 2

	got := Curate(in, DefaultMaxResults)
	require.Len(t, got, 1)
	assert.Equal(t, "property-999", got[0].UniqueID)
	assert.Equal(t, 1.0, got[0].MedianPrice)
}

func TestCurateCapsAtLimit(t *testing.T) {
	got := Curate(makeProps("1", "2", "3", "4", "5"), DefaultMaxResults)
	assert.Equal(t, []string{"1", "2", "3"}, idsOf(got))
}

func TestCurateDedupBeforeCap(t *testing.T) {
	got := Curate(makeProps("1", "1", "2", "2", "3", "4"), 3)
	assert.Equal(t, []string{"1", "2", "3"}, idsOf(got))
}

func TestCurateKeepsOrderNoResort(t *testing.T) {
	in := makeProps("a", "b", "c")
	in[0].MatchScore, in[1].MatchScore, in[2].MatchScore = 86, 95, 90

	got := Curate(in, 3)
	assert.Equal(t, []string{"a", "b", "c"}, idsOf(got))
}

func TestCurateLength(t *testing.T) {
	tests := []struct {
		in   []string
		want int
	}{
		{nil, 0},
		{[]string{"1"}, 1},
		{[]string{"1", "1", "1"}, 1},
		{[]string{"1", "2"}, 2},
		{[]string{"1", "2", "2", "3", "4"}, 3},
	}
	for _, tt := range tests {
		assert.Len(t, Curate(makeProps(tt.in...), DefaultMaxResults), tt.want, "input %v", tt.in)
	}
}

func TestCurateIdempotent(t *testing.T) {
	once := Curate(makeProps("1", "2", "1", "3", "4"), DefaultMaxResults)
	twice := Curate(once, DefaultMaxResults)
	assert.Equal(t, idsOf(once), idsOf(twice))
	assert.Equal(t, once, twice)
}

func TestCurateNonPositiveLimitUsesDefault(t *testing.T) {
	assert.Len(t, Curate(makeProps("1", "2", "3", "4"), 0), DefaultMaxResults)
}
