package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"home-finder/models"
	"home-finder/utils"
)

type fakeEnricher struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]bool
}

func (f *fakeEnricher) Enrich(_ context.Context, city string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, city)
	f.mu.Unlock()

	if f.fail[city] {
		return "", errors.New("quota exceeded")
	}
	return "  Low crime in " + city + ".  ", nil
}

func TestEnrichAllIsolatesFailures(t *testing.T) {
	props := []*models.Property{
		{ID: "1", City: "Austin", State: "TX"},
		{ID: "2", City: "Gary", State: "IN"},
		{ID: "3", City: "Unknown"},
	}
	e := &fakeEnricher{fail: map[string]bool{"Gary, IN": true}}

	EnrichAll(context.Background(), e, utils.NewWorkerPool(2, 0), props, utils.NewNopLogger())

	assert.Len(t, e.calls, 3)
	assert.Equal(t, "Low crime in Austin, TX.", props[0].Safety)
	assert.Empty(t, props[0].SafetyError)

	assert.Empty(t, props[1].Safety)
	assert.Equal(t, "quota exceeded", props[1].SafetyError)

	assert.Equal(t, "Low crime in Unknown.", props[2].Safety)
}

func TestEnrichAllCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	props := []*models.Property{{ID: "1", City: "Austin"}}
	e := &fakeEnricher{}

	EnrichAll(ctx, e, utils.NewWorkerPool(1, 0), props, utils.NewNopLogger())

	assert.Empty(t, e.calls)
	assert.NotEmpty(t, props[0].SafetyError)
}
