package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RAPIDAPI_KEY", "secret")
	t.Setenv("SEARCH_TIMEOUT_SEC", "")
	t.Setenv("MAX_RESULTS", "")
	t.Setenv("PRICE_BACKSTOP", "")
	t.Setenv("DEFAULT_LOCATION", "")

	cfg := Load()
	assert.Equal(t, "secret", cfg.RapidAPIKey)
	assert.Equal(t, "zillow-com1.p.rapidapi.com", cfg.RapidAPIHost)
	assert.Equal(t, 15*time.Second, cfg.SearchTimeout)
	assert.Equal(t, "Austin, TX", cfg.DefaultLocation)
	assert.Equal(t, 3, cfg.MaxResults)
	assert.True(t, cfg.PriceBackstop)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SEARCH_TIMEOUT_SEC", "5")
	t.Setenv("MAX_RESULTS", "not-a-number")
	t.Setenv("PRICE_BACKSTOP", "false")

	cfg := Load()
	assert.Equal(t, 5*time.Second, cfg.SearchTimeout)
	assert.Equal(t, 3, cfg.MaxResults)
	assert.False(t, cfg.PriceBackstop)
}

func TestLoadPreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	body := `location: "Denver, CO"
budget: 400k-600k
experience: first-time
lifestyle: [outdoors, nightlife]
dealbreakers: [hoa]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	prefs, err := LoadPreferences(path)
	require.NoError(t, err)
	assert.Equal(t, "Denver, CO", prefs.Location)
	assert.Equal(t, "400k-600k", prefs.Budget)
	assert.Equal(t, []string{"outdoors", "nightlife"}, prefs.Lifestyle)
}

func TestLoadPreferencesTooManyLifestyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	body := "lifestyle: [a, b, c, d]\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := LoadPreferences(path)
	assert.Error(t, err)
}

func TestLoadPreferencesMissingFile(t *testing.T) {
	_, err := LoadPreferences(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
