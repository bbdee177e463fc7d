package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Strava  StravaConfig  `json:"strava"`
	Runner  RunnerConfig  `json:"runner"`
	Race    RaceConfig    `json:"race"`
	Display DisplayConfig `json:"display"`
}

// StravaConfig holds Strava API credentials
type StravaConfig struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// RunnerConfig holds runner-specific estimate settings
type RunnerConfig struct {
	FitnessPct          float64 `json:"fitness_pct"`
	DescentTechnicality string  `json:"descent_technicality"` // good, average, cautious
}

// RaceConfig holds the target race and expected conditions
type RaceConfig struct {
	Name                 string  `json:"name"`
	DistanceKm           float64 `json:"distance_km"`
	ElevationGainM       float64 `json:"elevation_gain_m"`
	TemperatureC         float64 `json:"temperature_c"`
	BagWeightKg          float64 `json:"bag_weight_kg"`
	RefuelStops          int     `json:"refuel_stops"`
	RefuelMinutesPerStop float64 `json:"refuel_minutes_per_stop"`
	GPXPath              string  `json:"gpx_path"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	DistanceUnit string `json:"distance_unit"`
	PaceUnit     string `json:"pace_unit"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Runner: RunnerConfig{
			FitnessPct:          100,
			DescentTechnicality: "average",
		},
		Race: RaceConfig{
			DistanceKm:           42,
			ElevationGainM:       2000,
			TemperatureC:         15,
			RefuelMinutesPerStop: 2,
		},
		Display: DisplayConfig{
			DistanceUnit: "km",
			PaceUnit:     "min/km",
		},
	}
}

// Load reads the configuration from ~/.trailready/config.json.
// STRAVA_CLIENT_ID and STRAVA_CLIENT_SECRET from the environment (or a
// .env file in the working directory) override the file values.
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

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.Runner.FitnessPct == 0 {
		cfg.Runner.FitnessPct = defaults.Runner.FitnessPct
	}
	if cfg.Runner.DescentTechnicality == "" {
		cfg.Runner.DescentTechnicality = defaults.Runner.DescentTechnicality
	}
	if cfg.Race.DistanceKm == 0 {
		cfg.Race.DistanceKm = defaults.Race.DistanceKm
	}
	if cfg.Race.TemperatureC == 0 {
		cfg.Race.TemperatureC = defaults.Race.TemperatureC
	}
	if cfg.Race.RefuelMinutesPerStop == 0 {
		cfg.Race.RefuelMinutesPerStop = defaults.Race.RefuelMinutesPerStop
	}
	if cfg.Display.DistanceUnit == "" {
		cfg.Display.DistanceUnit = defaults.Display.DistanceUnit
	}
	if cfg.Display.PaceUnit == "" {
		cfg.Display.PaceUnit = defaults.Display.PaceUnit
	}
}

// applyEnvOverrides lets credentials come from the environment so the
// config file can live in dotfiles without secrets.
func applyEnvOverrides(cfg *Config) {
	_ = godotenv.Load() // best effort; no .env is fine

	if v := os.Getenv("STRAVA_CLIENT_ID"); v != "" {
		cfg.Strava.ClientID = v
	}
	if v := os.Getenv("STRAVA_CLIENT_SECRET"); v != "" {
		cfg.Strava.ClientSecret = v
	}
}

// Save writes the configuration to ~/.trailready/config.json
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

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	example.Strava = StravaConfig{
		ClientID:     "YOUR_CLIENT_ID",
		ClientSecret: "YOUR_CLIENT_SECRET",
	}
	example.Race.Name = "My Target Race"

	return Save(&example)
}

// Validate checks if the config has required fields
func (c *Config) Validate() error {
	if c.Strava.ClientID == "" || c.Strava.ClientID == "YOUR_CLIENT_ID" {
		return errors.New("strava.client_id is required - get it from https://www.strava.com/settings/api")
	}
	if c.Strava.ClientSecret == "" || c.Strava.ClientSecret == "YOUR_CLIENT_SECRET" {
		return errors.New("strava.client_secret is required - get it from https://www.strava.com/settings/api")
	}

	switch c.Runner.DescentTechnicality {
	case "", "good", "average", "cautious":
	default:
		return fmt.Errorf("runner.descent_technicality must be \"good\", \"average\" or \"cautious\", got %q", c.Runner.DescentTechnicality)
	}
	if c.Runner.FitnessPct < 0 {
		return fmt.Errorf("runner.fitness_pct must not be negative, got %v", c.Runner.FitnessPct)
	}

	if c.Race.DistanceKm < 0 || c.Race.ElevationGainM < 0 {
		return errors.New("race distance and elevation gain must not be negative")
	}

	if c.Display.DistanceUnit != "" && c.Display.DistanceUnit != "km" && c.Display.DistanceUnit != "mi" {
		return fmt.Errorf("display.distance_unit must be \"km\" or \"mi\", got %q", c.Display.DistanceUnit)
	}
	if c.Display.PaceUnit != "" && c.Display.PaceUnit != "min/km" && c.Display.PaceUnit != "min/mi" {
		return fmt.Errorf("display.pace_unit must be \"min/km\" or \"min/mi\", got %q", c.Display.PaceUnit)
	}

	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".trailready", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".trailready"), nil
}
