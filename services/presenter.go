package services

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"home-finder/models"
)

// Summarize computes aggregate figures over the curated properties.
// Unpriced properties are left out of the price statistics.
func Summarize(props []*models.Property) *models.ResultsSummary {
	s := &models.ResultsSummary{ByCity: make(map[string]int)}
	if len(props) == 0 {
		return s
	}
	s.TotalResults = len(props)

	var total float64
	var priced int
	for _, p := range props {
		s.ByCity[p.City]++

		if s.BestMatch == nil || p.MatchScore > s.BestMatch.MatchScore {
			s.BestMatch = p
		}

		if p.MedianPrice <= 0 {
			continue
		}
		if priced == 0 || p.MedianPrice < s.MinPrice {
			s.MinPrice = p.MedianPrice
		}
		if p.MedianPrice > s.MaxPrice {
			s.MaxPrice = p.MedianPrice
		}
		total += p.MedianPrice
		priced++
	}

	if priced > 0 {
		s.AveragePrice = round2(total / float64(priced))
	}
	return s
}

// Presenter renders results as console cards.
type Presenter struct {
	out io.Writer
}

// NewPresenter creates a Presenter writing to out.
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// Print writes the preference recap, the summary and one card per property.
// A failed search and an empty one look the same to the user.
func (pr *Presenter) Print(prefs models.Preferences, props []*models.Property) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)
	w := pr.out

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  🏡 YOUR HOME MATCHES\033[0m\n")
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	fmt.Fprintf(w, "\033[1;33m  Your Preferences\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Budget       : %s\n", BudgetDisplay(prefs.Budget))
	fmt.Fprintf(w, "  Priorities   : %s\n", listOrNone(prefs.Lifestyle))
	fmt.Fprintf(w, "  Deal breakers: %s\n", listOrNone(prefs.Dealbreakers))
	fmt.Fprintf(w, "  Experience   : %s\n", orNotSpecified(prefs.Experience))
	fmt.Fprintln(w)

	if len(props) == 0 {
		fmt.Fprintf(w, "  No results found. Try a different location or budget.\n")
		fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
		return
	}

	summary := Summarize(props)
	fmt.Fprintf(w, "\033[1;33m  Overview\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Matches       : \033[1m%d\033[0m\n", summary.TotalResults)
	if summary.AveragePrice > 0 {
		fmt.Fprintf(w, "  Average price : \033[1;32m$%s\033[0m\n", formatPrice(summary.AveragePrice))
		fmt.Fprintf(w, "  Price range   : $%s – $%s\n", formatPrice(summary.MinPrice), formatPrice(summary.MaxPrice))
	}
	fmt.Fprintf(w, "  Cities        : %s\n", citySummary(summary.ByCity))
	fmt.Fprintln(w)

	for i, p := range props {
		fmt.Fprintf(w, "\033[1;33m  %d. %s\033[0m  \033[1;32m%d%% Match\033[0m\n", i+1, truncate(p.Neighborhood, 38), p.MatchScore)
		fmt.Fprintf(w, "  %s\n", thin)
		fmt.Fprintf(w, "  Location : %s\n", joinNonEmpty(", ", p.City, p.State))
		fmt.Fprintf(w, "  Price    : $%s", formatPrice(p.MedianPrice))
		if p.PriceChange != "" {
			fmt.Fprintf(w, "  (%s)", colorChange(p.PriceChange))
		}
		fmt.Fprintln(w)
		if facts := propertyFacts(p); facts != "" {
			fmt.Fprintf(w, "  Details  : %s\n", facts)
		}
		fmt.Fprintf(w, "  Photo    : %s\n", p.Image)
		switch {
		case p.Safety != "":
			fmt.Fprintf(w, "  Safety   : %s\n", truncate(p.Safety, 300))
		case p.SafetyError != "":
			fmt.Fprintf(w, "  Safety   : unavailable\n")
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)
}

// BudgetDisplay turns a token such as "200k-400k" into "$200K - $400K".
func BudgetDisplay(token string) string {
	if token == "" {
		return "Not specified"
	}
	s := strings.Replace(token, "-", " - $", 1)
	s = strings.ReplaceAll(s, "k", "K")
	s = strings.ReplaceAll(s, "m", "M")
	if strings.HasPrefix(s, "under") || strings.HasPrefix(s, "over") {
		return strings.Replace(s, " - $", " $", 1)
	}
	return "$" + s
}

func propertyFacts(p *models.Property) string {
	var facts []string
	if p.Bedrooms > 0 {
		facts = append(facts, fmt.Sprintf("%g bd", p.Bedrooms))
	}
	if p.Bathrooms > 0 {
		facts = append(facts, fmt.Sprintf("%g ba", p.Bathrooms))
	}
	if p.LivingArea > 0 {
		facts = append(facts, fmt.Sprintf("%s sqft", formatPrice(p.LivingArea)))
	}
	return strings.Join(facts, " · ")
}

// colorChange paints increases red and drops green.
func colorChange(s string) string {
	switch {
	case strings.HasPrefix(s, "+"):
		return "\033[31m" + s + "\033[0m"
	case strings.HasPrefix(s, "-"):
		return "\033[32m" + s + "\033[0m"
	}
	return s
}

func citySummary(byCity map[string]int) string {
	type cityCount struct {
		city  string
		count int
	}
	var cities []cityCount
	for c, n := range byCity {
		cities = append(cities, cityCount{c, n})
	}
	sort.Slice(cities, func(i, j int) bool {
		if cities[i].count != cities[j].count {
			return cities[i].count > cities[j].count
		}
		return cities[i].city < cities[j].city
	})

	parts := make([]string, len(cities))
	for i, c := range cities {
		parts[i] = fmt.Sprintf("%s (%d)", c.city, c.count)
	}
	return strings.Join(parts, ", ")
}

// formatPrice renders whole dollars with thousands separators.
func formatPrice(f float64) string {
	n := int64(f + 0.5)
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}

// truncate cuts s to at most max runes, ending in "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
