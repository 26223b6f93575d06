package services

import (
	"strings"

	"home-finder/models"
)

// BuildQuery turns preferences and the resolved range into a search query.
// A blank location falls back to fallbackLocation. A bound of exactly zero is
// treated the same as an unset bound and left off the query.
func BuildQuery(prefs models.Preferences, rng models.PriceRange, fallbackLocation string) models.SearchQuery {
	location := strings.TrimSpace(prefs.Location)
	if location == "" {
		location = fallbackLocation
	}

	q := models.SearchQuery{Location: location}
	if rng.Min != nil && *rng.Min != 0 {
		v := int64(*rng.Min)
		q.PriceMin = &v
	}
	if rng.Max != nil && *rng.Max != 0 {
		v := int64(*rng.Max)
		q.PriceMax = &v
	}
	return q
}
