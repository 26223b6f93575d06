package services

import (
	"strings"

	"home-finder/models"
)

// Budget tokens offered by the questionnaire.
const (
	BudgetUnder200k = "under-200k"
	Budget200to400k = "200k-400k"
	Budget400to600k = "400k-600k"
	Budget600kTo1m  = "600k-1m"
	BudgetOver1m    = "over-1m"
)

type bounds struct {
	min, max float64
}

// budgetRanges maps a token to the price filter sent to the search API.
// Zero means the side is open.
var budgetRanges = map[string]bounds{
	BudgetUnder200k: {max: 200000},
	Budget200to400k: {min: 200000, max: 400000},
	Budget400to600k: {min: 400000, max: 600000},
	Budget600kTo1m:  {min: 600000, max: 1000000},
	BudgetOver1m:    {min: 1000000},
}

// ResolveBudget returns the price range for a budget token. Unknown or empty
// tokens yield an empty range so the search covers all prices.
func ResolveBudget(token string) models.PriceRange {
	b, ok := budgetRanges[strings.TrimSpace(token)]
	if !ok {
		return models.PriceRange{}
	}

	var r models.PriceRange
	if b.min != 0 {
		min := b.min
		r.Min = &min
	}
	if b.max != 0 {
		max := b.max
		r.Max = &max
	}
	return r
}
