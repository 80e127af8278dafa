package config

import (
	"strings"
	"testing"

	"lifeindex/internal/scoring"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errContains string
	}{
		{
			name: "valid config",
			config: Config{
				Oura: OuraConfig{
					ClientID:     "ABCDEF",
					ClientSecret: "abc123secret",
				},
			},
			expectError: false,
		},
		{
			name: "empty client ID",
			config: Config{
				Oura: OuraConfig{
					ClientID:     "",
					ClientSecret: "abc123secret",
				},
			},
			expectError: true,
			errContains: "client_id",
		},
		{
			name: "placeholder client ID",
			config: Config{
				Oura: OuraConfig{
					ClientID:     "YOUR_CLIENT_ID",
					ClientSecret: "abc123secret",
				},
			},
			expectError: true,
			errContains: "client_id",
		},
		{
			name: "placeholder client secret",
			config: Config{
				Oura: OuraConfig{
					ClientID:     "ABCDEF",
					ClientSecret: "YOUR_CLIENT_SECRET",
				},
			},
			expectError: true,
			errContains: "client_secret",
		},
		{
			name: "unknown goal metric",
			config: Config{
				Oura: OuraConfig{
					ClientID:     "ABCDEF",
					ClientSecret: "abc123secret",
				},
				Goals: map[string]GoalOverride{
					"vo2max": {Low: f(40)},
				},
			},
			expectError: true,
			errContains: "vo2max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCatalogNoOverrides(t *testing.T) {
	cfg := Config{}

	catalog, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error: %v", err)
	}

	target, err := catalog.TargetFor(scoring.MetricSteps)
	if err != nil {
		t.Fatalf("TargetFor() error: %v", err)
	}
	if target.Low != 10000 {
		t.Errorf("steps target low = %v, want default 10000", target.Low)
	}
}

func TestCatalogTargetOverride(t *testing.T) {
	cfg := Config{
		Goals: map[string]GoalOverride{
			"steps": {Low: f(8000), High: f(12000)},
		},
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error: %v", err)
	}

	target, err := catalog.TargetFor(scoring.MetricSteps)
	if err != nil {
		t.Fatalf("TargetFor() error: %v", err)
	}
	if target.Low != 8000 || target.High != 12000 {
		t.Errorf("steps target = %+v, want [8000, 12000]", target)
	}

	// Weight untouched
	weight, err := catalog.WeightFor(scoring.MetricSteps)
	if err != nil {
		t.Fatalf("WeightFor() error: %v", err)
	}
	if weight != 0.20 {
		t.Errorf("steps weight = %v, want default 0.20", weight)
	}
}

func TestCatalogWeightOverrideMustStillSum(t *testing.T) {
	// Raising one weight without lowering another breaks the sum-to-1.0
	// invariant and must be rejected at load time.
	cfg := Config{
		Goals: map[string]GoalOverride{
			"steps": {Weight: f(0.5)},
		},
	}

	if _, err := cfg.Catalog(); err == nil {
		t.Error("Catalog() = nil error, want weight sum violation")
	}

	// A balanced override passes.
	cfg = Config{
		Goals: map[string]GoalOverride{
			"steps":           {Weight: f(0.25)},
			"mindful_minutes": {Weight: f(0.0)},
		},
	}
	if _, err := cfg.Catalog(); err != nil {
		t.Errorf("Catalog() error for balanced override: %v", err)
	}
}

func f(v float64) *float64 { return &v }
