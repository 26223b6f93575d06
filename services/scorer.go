package services

import (
	"math"
	"strings"
)

const (
	scoreCeiling    = 95
	scoreBelowRange = 88
	scoreAboveRange = 86

	maxScoredPrice = 10_000_000
)

// scoreRanges closes the open sides of budgetRanges so a midpoint exists.
var scoreRanges = map[string]bounds{
	BudgetUnder200k: {min: 0, max: 200000},
	Budget200to400k: {min: 200000, max: 400000},
	Budget400to600k: {min: 400000, max: 600000},
	Budget600kTo1m:  {min: 600000, max: 1000000},
	BudgetOver1m:    {min: 1000000, max: maxScoredPrice},
}

// Score rates how well price fits the chosen budget. In range the score falls
// from 95 at the midpoint to 90 at either edge; below the range it is 88 and
// above it 86.
func Score(price float64, budget string) int {
	r, ok := scoreRanges[strings.TrimSpace(budget)]
	if !ok {
		r = bounds{min: 0, max: maxScoredPrice}
	}

	switch {
	case price < r.min:
		return scoreBelowRange
	case price > r.max:
		return scoreAboveRange
	}

	mid := (r.min + r.max) / 2
	deviation := math.Abs(price-mid) / (r.max - r.min)
	// half-up rounding
	return int(math.Floor(scoreCeiling - deviation*10 + 0.5))
}
