package services

import (
	"home-finder/models"
	"home-finder/utils"
)

// DefaultMaxResults is how many properties the results view shows.
const DefaultMaxResults = 3

// UniqueID derives the display key for a property.
func UniqueID(p *models.Property) string {
	return "property-" + p.ID
}

// Curate assigns UniqueIDs, drops later duplicates and keeps at most limit
// properties. Input order is preserved. A limit below one means
// DefaultMaxResults.
func Curate(props []*models.Property, limit int) []*models.Property {
	if limit < 1 {
		limit = DefaultMaxResults
	}

	seen := utils.NewIDSet()
	out := make([]*models.Property, 0, min(limit, len(props)))
	for _, p := range props {
		if len(out) == limit {
			break
		}
		p.UniqueID = UniqueID(p)
		if !seen.Add(p.UniqueID) {
			continue
		}
		out = append(out, p)
	}
	return out
}
