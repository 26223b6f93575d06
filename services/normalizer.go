package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"home-finder/models"
	"home-finder/utils"
)

const (
	unknownCity      = "Unknown"
	placeholderImage = "https://via.placeholder.com/800x500?text=No+Image"
)

// priceRegexp captures a plain number once currency symbols and thousands
// separators have been stripped.
var priceRegexp = regexp.MustCompile(`^-?\d+(?:\.\d+)?$`)

// Normalizer turns the untrusted search payload into Properties.
type Normalizer struct {
	logger *utils.Logger
}

// NewNormalizer creates a Normalizer with the given logger.
func NewNormalizer(logger *utils.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize maps the "props" array of raw into Properties, preserving order.
// A missing or mistyped array yields no properties. When backstop carries a
// bound, properties priced outside it are dropped.
func (n *Normalizer) Normalize(raw any, backstop *models.PriceRange) []*models.Property {
	records := extractProps(raw)
	result := make([]*models.Property, 0, len(records))

	for _, rec := range records {
		m, ok := rec.(map[string]any)
		if !ok {
			// keep the slot; every field simply takes its default
			m = map[string]any{}
		}
		p := n.normalizeOne(models.RawListing(m))

		if backstop != nil && !backstop.IsZero() && !backstop.Contains(p.MedianPrice) {
			n.logger.Debug("[normalizer] Dropping %s: price %.0f outside requested range", p.ID, p.MedianPrice)
			continue
		}
		result = append(result, p)
	}

	n.logger.Info("[normalizer] Normalized %d → %d properties (dropped %d)",
		len(records), len(result), len(records)-len(result))
	return result
}

func extractProps(raw any) []any {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	props, ok := obj["props"].([]any)
	if !ok {
		return nil
	}
	return props
}

func (n *Normalizer) normalizeOne(r models.RawListing) *models.Property {
	city := stringField(r, "city")
	state := stringField(r, "state")

	p := &models.Property{
		ID:           listingID(r),
		City:         city,
		State:        state,
		MedianPrice:  parsePrice(r["price"]),
		Image:        stringField(r, "imgSrc"),
		Neighborhood: firstString(r, "address", "streetAddress"),
		PriceChange:  stringField(r, "priceChangeText"),
		Bedrooms:     firstNumber(r, "bedrooms", "beds"),
		Bathrooms:    firstNumber(r, "bathrooms", "baths"),
		LivingArea:   firstNumber(r, "livingArea", "sqft"),
		RawData:      r,
	}

	if p.City == "" {
		p.City = unknownCity
	}
	if p.Image == "" {
		p.Image = placeholderImage
	}
	if p.Neighborhood == "" {
		p.Neighborhood = joinNonEmpty(", ", city, state)
	}
	return p
}

// listingID prefers zpid, then a coordinate composite, then a random id.
// Only zpid is stable across requests.
func listingID(r models.RawListing) string {
	if id := scalarString(r["zpid"]); id != "" {
		return id
	}

	lat, lng := scalarString(r["latitude"]), scalarString(r["longitude"])
	if lat != "" && lng != "" {
		id := "geo-" + lat + "-" + lng
		if lot := scalarString(r["lotAreaValue"]); lot != "" {
			id += "-" + lot
		}
		return id
	}

	return "fallback-" + uuid.NewString()
}

// parsePrice accepts numbers or numeric strings such as "$300,000".
// Anything else, including negatives, becomes 0.
func parsePrice(v any) float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case string:
		cleaned := strings.TrimSpace(x)
		cleaned = strings.TrimPrefix(cleaned, "$")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		if !priceRegexp.MatchString(cleaned) {
			return 0
		}
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func stringField(r models.RawListing, key string) string {
	s, _ := r[key].(string)
	return strings.TrimSpace(s)
}

func firstString(r models.RawListing, keys ...string) string {
	for _, k := range keys {
		if s := stringField(r, k); s != "" {
			return s
		}
	}
	return ""
}

func firstNumber(r models.RawListing, keys ...string) float64 {
	for _, k := range keys {
		if f := parsePrice(r[k]); f > 0 {
			return f
		}
	}
	return 0
}

// scalarString renders string or numeric ids; JSON numbers arrive as float64.
func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	}
	return ""
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
