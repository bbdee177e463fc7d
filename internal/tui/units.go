package tui

import (
	"fmt"

	"trailready/internal/config"
)

const metersPerMile = 1609.34

// Units provides unit conversion and formatting based on user preferences.
// Everything internal is metric; miles exist only at the display boundary.
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatDistanceMeters formats a distance in meters to the preferred unit
func (u Units) FormatDistanceMeters(meters float64) string {
	return u.FormatDistanceKm(meters / 1000)
}

// FormatDistanceKm formats a distance in kilometers to the preferred unit
func (u Units) FormatDistanceKm(km float64) string {
	if u.cfg.DistanceUnit == "mi" {
		return fmt.Sprintf("%.1f mi", km*1000/metersPerMile)
	}
	return fmt.Sprintf("%.1f km", km)
}

// FormatElevation formats an elevation gain in meters
func (u Units) FormatElevation(meters float64) string {
	if u.cfg.DistanceUnit == "mi" {
		return fmt.Sprintf("%.0f ft", meters*3.28084)
	}
	return fmt.Sprintf("%.0f m", meters)
}

// FormatPace formats a pace in minutes per km to the preferred unit
func (u Units) FormatPace(minPerKm float64) string {
	if minPerKm <= 0 {
		return "-"
	}
	pace := minPerKm
	if u.cfg.PaceUnit == "min/mi" {
		pace = minPerKm * metersPerMile / 1000
	}
	mins := int(pace)
	secs := int((pace - float64(mins)) * 60)
	return fmt.Sprintf("%d:%02d/%s", mins, secs, u.DistanceLabel())
}

// DistanceLabel returns the short unit label ("mi" or "km")
func (u Units) DistanceLabel() string {
	if u.cfg.DistanceUnit == "mi" {
		return "mi"
	}
	return "km"
}
