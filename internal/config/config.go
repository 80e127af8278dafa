package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lifeindex/internal/scoring"
)

// Config represents the application configuration
type Config struct {
	Oura    OuraConfig              `json:"oura"`
	Goals   map[string]GoalOverride `json:"goals,omitempty"`
	Display DisplayConfig           `json:"display"`
}

// OuraConfig holds Oura API credentials
type OuraConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// GoalOverride adjusts one metric's target range or weight. Nil fields keep
// the built-in default. If any weight is overridden the full set must still
// sum to 1.0.
type GoalOverride struct {
	Low    *float64 `json:"low,omitempty"`
	High   *float64 `json:"high,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	HistoryDays int `json:"history_days"` // days shown on the history screen and trend chart
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultHistoryDays is the trend window when not configured
const DefaultHistoryDays = 30

// Load reads the configuration from ~/.lifeindex/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Display.HistoryDays <= 0 {
		cfg.Display.HistoryDays = DefaultHistoryDays
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.lifeindex/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample writes an example config file for the user to edit
func CreateExample() error {
	return Save(&Config{
		Oura: OuraConfig{
			ClientID:     "YOUR_CLIENT_ID",
			ClientSecret: "YOUR_CLIENT_SECRET",
		},
		Display: DisplayConfig{
			HistoryDays: DefaultHistoryDays,
		},
	})
}

// Validate checks that required fields are present and goal overrides name
// real metrics
func (c *Config) Validate() error {
	if c.Oura.ClientID == "" || c.Oura.ClientID == "YOUR_CLIENT_ID" {
		return errors.New("oura.client_id is not set")
	}
	if c.Oura.ClientSecret == "" || c.Oura.ClientSecret == "YOUR_CLIENT_SECRET" {
		return errors.New("oura.client_secret is not set")
	}
	for name := range c.Goals {
		if !scoring.ValidMetricType(name) {
			return fmt.Errorf("goals: unknown metric %q", name)
		}
	}
	return nil
}

// Catalog builds the scoring catalog: built-in defaults with this config's
// goal overrides applied. The result is validated, so a weight override
// that breaks the sum-to-1.0 invariant is rejected here rather than
// surfacing as a skewed score later.
func (c *Config) Catalog() (scoring.Catalog, error) {
	catalog := scoring.DefaultCatalog()

	for name, override := range c.Goals {
		mt := scoring.MetricType(name)

		target, err := catalog.TargetFor(mt)
		if err != nil {
			return scoring.Catalog{}, err
		}
		weight, err := catalog.WeightFor(mt)
		if err != nil {
			return scoring.Catalog{}, err
		}

		if override.Low != nil {
			target.Low = *override.Low
		}
		if override.High != nil {
			target.High = *override.High
		}
		if override.Weight != nil {
			weight = *override.Weight
		}

		if err := catalog.SetGoal(mt, scoring.MetricGoal{Target: target, Weight: weight}); err != nil {
			return scoring.Catalog{}, err
		}
	}

	if err := catalog.Validate(); err != nil {
		return scoring.Catalog{}, fmt.Errorf("applying goal overrides: %w", err)
	}
	return catalog, nil
}

// GetConfigDir returns the directory containing the config file
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".lifeindex"), nil
}

func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
