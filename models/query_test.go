package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQueryEncode(t *testing.T) {
	min, max := int64(200000), int64(400000)
	q := SearchQuery{Location: "Austin, TX", PriceMin: &min, PriceMax: &max}

	assert.Equal(t, "location=Austin%2C%20TX&price_min=200000&price_max=400000", q.Encode())
}

func TestSearchQueryEncodeLocationOnly(t *testing.T) {
	q := SearchQuery{Location: "Salt Lake City & Provo"}
	assert.Equal(t, "location=Salt%20Lake%20City%20%26%20Provo", q.Encode())
}

func TestSearchQueryEncodeRoundTrips(t *testing.T) {
	max := int64(200000)
	v, err := url.ParseQuery(SearchQuery{Location: "Austin, TX", PriceMax: &max}.Encode())
	require.NoError(t, err)

	assert.Equal(t, "Austin, TX", v.Get("location"))
	assert.Equal(t, "200000", v.Get("price_max"))
	assert.False(t, v.Has("price_min"))
}

func TestPriceRangeContains(t *testing.T) {
	min, max := 100.0, 200.0
	tests := []struct {
		name  string
		r     PriceRange
		price float64
		want  bool
	}{
		{"unbounded", PriceRange{}, 5, true},
		{"at min", PriceRange{Min: &min, Max: &max}, 100, true},
		{"at max", PriceRange{Min: &min, Max: &max}, 200, true},
		{"below", PriceRange{Min: &min, Max: &max}, 99, false},
		{"above", PriceRange{Min: &min, Max: &max}, 201, false},
		{"open max", PriceRange{Min: &min}, 1e9, true},
		{"open min", PriceRange{Max: &max}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Contains(tt.price))
		})
	}
}
