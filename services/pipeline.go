package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"home-finder/models"
	"home-finder/utils"
)

// Searcher issues the single outbound property search.
type Searcher interface {
	Search(ctx context.Context, q models.SearchQuery) (any, error)
}

// kindedError is implemented by search errors that classify their cause.
type kindedError interface {
	error
	ErrorKind() string
}

// searchErrorKind reports the classified kind of err, or "unknown".
func searchErrorKind(err error) string {
	var ke kindedError
	if errors.As(err, &ke) {
		return ke.ErrorKind()
	}
	return "unknown"
}

// PipelineOptions tunes a Pipeline.
type PipelineOptions struct {
	DefaultLocation string
	MaxResults      int
	// PriceBackstop re-applies the budget range locally because the search
	// service does not reliably honor price_min/price_max.
	PriceBackstop bool
}

// Pipeline turns questionnaire answers into a curated, scored result list.
type Pipeline struct {
	searcher   Searcher
	normalizer *Normalizer
	opts       PipelineOptions
	logger     *utils.Logger
}

// NewPipeline wires a Pipeline around searcher.
func NewPipeline(searcher Searcher, opts PipelineOptions, logger *utils.Logger) *Pipeline {
	if opts.MaxResults < 1 {
		opts.MaxResults = DefaultMaxResults
	}
	return &Pipeline{
		searcher:   searcher,
		normalizer: NewNormalizer(logger),
		opts:       opts,
		logger:     logger,
	}
}

// Run executes one search for prefs. It never returns both data and an
// error: any search failure yields an empty Data and the error message.
func (p *Pipeline) Run(ctx context.Context, prefs models.Preferences) (result models.Result) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("[pipeline] Recovered from panic: %v", r)
			result = models.Result{Data: []*models.Property{}, Error: fmt.Sprint(r)}
		}
	}()

	prefs.Budget = strings.TrimSpace(prefs.Budget)
	rng := ResolveBudget(prefs.Budget)
	q := BuildQuery(prefs, rng, p.opts.DefaultLocation)
	p.logger.Info("[pipeline] Searching %q (budget: %s)", q.Location, budgetLabel(prefs.Budget))

	raw, err := p.searcher.Search(ctx, q)
	if err != nil {
		p.logger.Error("[pipeline] Search failed (%s): %v", searchErrorKind(err), err)
		return models.Result{Data: []*models.Property{}, Error: err.Error()}
	}

	var backstop *models.PriceRange
	if p.opts.PriceBackstop {
		backstop = &rng
	}
	props := p.normalizer.Normalize(raw, backstop)

	for _, prop := range props {
		prop.MatchScore = Score(prop.MedianPrice, prefs.Budget)
	}

	curated := Curate(props, p.opts.MaxResults)
	p.logger.Info("[pipeline] %d properties ready to display", len(curated))
	return models.Result{Data: curated}
}

func budgetLabel(token string) string {
	if token == "" {
		return "any"
	}
	return token
}
