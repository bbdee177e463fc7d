package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Runner.FitnessPct != 100 {
		t.Errorf("Runner.FitnessPct = %v, want 100", cfg.Runner.FitnessPct)
	}
	if cfg.Runner.DescentTechnicality != "average" {
		t.Errorf("Runner.DescentTechnicality = %q, want %q", cfg.Runner.DescentTechnicality, "average")
	}

	if cfg.Race.DistanceKm != 42 {
		t.Errorf("Race.DistanceKm = %v, want 42", cfg.Race.DistanceKm)
	}
	if cfg.Race.TemperatureC != 15 {
		t.Errorf("Race.TemperatureC = %v, want 15", cfg.Race.TemperatureC)
	}
	if cfg.Race.RefuelMinutesPerStop != 2 {
		t.Errorf("Race.RefuelMinutesPerStop = %v, want 2", cfg.Race.RefuelMinutesPerStop)
	}

	if cfg.Display.DistanceUnit != "km" {
		t.Errorf("Display.DistanceUnit = %q, want %q", cfg.Display.DistanceUnit, "km")
	}
	if cfg.Display.PaceUnit != "min/km" {
		t.Errorf("Display.PaceUnit = %q, want %q", cfg.Display.PaceUnit, "min/km")
	}

	if cfg.Strava.ClientID != "" || cfg.Strava.ClientSecret != "" {
		t.Error("Strava credentials should be empty by default")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.Strava = StravaConfig{ClientID: "12345", ClientSecret: "abc123secret"}
		return cfg
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
		errContains string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:        "empty client ID",
			mutate:      func(c *Config) { c.Strava.ClientID = "" },
			expectError: true,
			errContains: "client_id",
		},
		{
			name:        "placeholder client ID",
			mutate:      func(c *Config) { c.Strava.ClientID = "YOUR_CLIENT_ID" },
			expectError: true,
			errContains: "client_id",
		},
		{
			name:        "empty client secret",
			mutate:      func(c *Config) { c.Strava.ClientSecret = "" },
			expectError: true,
			errContains: "client_secret",
		},
		{
			name:        "bad descent technicality",
			mutate:      func(c *Config) { c.Runner.DescentTechnicality = "fearless" },
			expectError: true,
			errContains: "descent_technicality",
		},
		{
			name:        "negative race distance",
			mutate:      func(c *Config) { c.Race.DistanceKm = -10 },
			expectError: true,
			errContains: "negative",
		},
		{
			name:        "bad distance unit",
			mutate:      func(c *Config) { c.Display.DistanceUnit = "furlong" },
			expectError: true,
			errContains: "distance_unit",
		},
		{
			name:        "bad pace unit",
			mutate:      func(c *Config) { c.Display.PaceUnit = "min/furlong" },
			expectError: true,
			errContains: "pace_unit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expectError {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not mention %q", err, tt.errContains)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	if cfg.Runner.FitnessPct != 100 {
		t.Errorf("FitnessPct default not applied, got %v", cfg.Runner.FitnessPct)
	}
	if cfg.Race.RefuelMinutesPerStop != 2 {
		t.Errorf("RefuelMinutesPerStop default not applied, got %v", cfg.Race.RefuelMinutesPerStop)
	}
	if cfg.Display.DistanceUnit != "km" {
		t.Errorf("DistanceUnit default not applied, got %q", cfg.Display.DistanceUnit)
	}

	// Explicit values survive
	cfg = Config{Race: RaceConfig{DistanceKm: 100}}
	applyDefaults(&cfg)
	if cfg.Race.DistanceKm != 100 {
		t.Errorf("explicit DistanceKm overwritten: %v", cfg.Race.DistanceKm)
	}
}
