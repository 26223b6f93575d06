package services

import (
	"context"
	"strings"

	"home-finder/models"
	"home-finder/utils"
)

// Enricher supplies narrative safety information for a city.
type Enricher interface {
	Enrich(ctx context.Context, city string) (string, error)
}

// EnrichAll runs enricher once per property on pool. Each failure is kept on
// its own property; nothing is returned because enrichment never fails the
// search.
func EnrichAll(ctx context.Context, enricher Enricher, pool *utils.WorkerPool, props []*models.Property, logger *utils.Logger) {
	for _, prop := range props {
		p := prop
		city := p.City
		if p.State != "" {
			city += ", " + p.State
		}

		pool.Submit(func() {
			if err := ctx.Err(); err != nil {
				p.SafetyError = err.Error()
				return
			}

			text, err := enricher.Enrich(ctx, city)
			if err != nil {
				logger.Warn("[enrich] Safety lookup failed for %s: %v", city, err)
				p.SafetyError = err.Error()
				return
			}
			p.Safety = strings.TrimSpace(text)
			logger.Debug("[enrich] Safety summary ready for %s", city)
		})
	}
	pool.Wait()
}
