package models

import (
	"net/url"
	"strconv"
	"strings"
)

// SearchQuery is the outbound search request. PriceMin and PriceMax are
// omitted from the wire when nil.
type SearchQuery struct {
	Location string
	PriceMin *int64
	PriceMax *int64
}

// Encode renders the query string with location first, then any price
// bounds. Spaces are encoded as %20 rather than '+'.
func (q SearchQuery) Encode() string {
	parts := []string{"location=" + escape(q.Location)}
	if q.PriceMin != nil {
		parts = append(parts, "price_min="+strconv.FormatInt(*q.PriceMin, 10))
	}
	if q.PriceMax != nil {
		parts = append(parts, "price_max="+strconv.FormatInt(*q.PriceMax, 10))
	}
	return strings.Join(parts, "&")
}

// QueryEscape never leaves a literal '+', so swapping it back is safe.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
