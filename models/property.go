package models

// Preferences holds the questionnaire answers submitted by the user.
// Only Location and Budget drive the search; the rest is echoed back in the
// results view.
type Preferences struct {
	Location     string   `yaml:"location"`
	Budget       string   `yaml:"budget"`
	Experience   string   `yaml:"experience"`
	Lifestyle    []string `yaml:"lifestyle"`
	Dealbreakers []string `yaml:"dealbreakers"`
}

// PriceRange is a pair of optional price bounds. A nil bound is unbounded.
type PriceRange struct {
	Min *float64
	Max *float64
}

// IsZero reports whether neither bound is set.
func (r PriceRange) IsZero() bool {
	return r.Min == nil && r.Max == nil
}

// Contains reports whether price lies within the range, inclusive on both
// ends and open on any side that is unset.
func (r PriceRange) Contains(price float64) bool {
	if r.Min != nil && price < *r.Min {
		return false
	}
	if r.Max != nil && price > *r.Max {
		return false
	}
	return true
}

// RawListing is one untrusted record from the search response.
type RawListing map[string]any

// Property is the normalized listing shown to the user.
type Property struct {
	ID           string
	City         string
	State        string
	MedianPrice  float64
	Image        string
	Neighborhood string
	PriceChange  string
	Bedrooms     float64
	Bathrooms    float64
	LivingArea   float64
	MatchScore   int
	RawData      RawListing

	// UniqueID is assigned by the curator and only used as a display key.
	UniqueID string

	// Safety is the optional crime/safety narrative for the city.
	Safety      string
	SafetyError string
}

// Result is what a pipeline run hands back to its caller. Data is empty
// whenever Error is set.
type Result struct {
	Data  []*Property
	Error string
}

// ResultsSummary holds aggregate figures over a curated result list.
type ResultsSummary struct {
	TotalResults int
	AveragePrice float64
	MinPrice     float64
	MaxPrice     float64
	BestMatch    *Property
	ByCity       map[string]int
}

