package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"home-finder/models"
)

const (
	MaxLifestyle    = 3
	MaxDealbreakers = 5
)

// LoadPreferences reads questionnaire answers from a YAML file.
func LoadPreferences(path string) (*models.Preferences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}

	var prefs models.Preferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse answers file: %w", err)
	}

	if err := ValidatePreferences(&prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// ValidatePreferences enforces the questionnaire's selection limits.
func ValidatePreferences(p *models.Preferences) error {
	if len(p.Lifestyle) > MaxLifestyle {
		return fmt.Errorf("at most %d lifestyle selections allowed, got %d", MaxLifestyle, len(p.Lifestyle))
	}
	if len(p.Dealbreakers) > MaxDealbreakers {
		return fmt.Errorf("at most %d dealbreakers allowed, got %d", MaxDealbreakers, len(p.Dealbreakers))
	}
	return nil
}
