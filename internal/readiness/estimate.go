package readiness

import (
	"fmt"
	"math"
)

// DescentTechnicality describes how confidently the runner descends.
type DescentTechnicality string

const (
	DescentGood     DescentTechnicality = "good"
	DescentAverage  DescentTechnicality = "average"
	DescentCautious DescentTechnicality = "cautious"
)

// descentFactor returns the pace multiplier applied to the descending share
// of the course.
func (d DescentTechnicality) factor() float64 {
	switch d {
	case DescentGood:
		return 0.95
	case DescentCautious:
		return 1.10
	default:
		return 1.0
	}
}

// EstimateParams carries the course and conditions for a time estimate.
type EstimateParams struct {
	DistanceKm     float64
	ElevationGainM float64

	// Optional override; otherwise the base pace is derived from metrics
	BasePaceMinPerKm *float64

	TemperatureC         float64
	BagWeightKg          float64
	RefuelStops          int
	RefuelMinutesPerStop float64
	FitnessPct           float64
	Technicality         DescentTechnicality
}

// NewEstimateParams returns params for a course with the default conditions:
// 15°C, no pack, no refuel stops (2 min each when set), 100% fitness,
// average descending.
func NewEstimateParams(distanceKm, elevationGainM float64) EstimateParams {
	return EstimateParams{
		DistanceKm:           distanceKm,
		ElevationGainM:       elevationGainM,
		TemperatureC:         15,
		RefuelMinutesPerStop: 2,
		FitnessPct:           100,
		Technicality:         DescentAverage,
	}
}

// TimeEstimate is a point estimate with a ±15% uncertainty band.
type TimeEstimate struct {
	TotalMinutes float64
	MinMinutes   float64
	MaxMinutes   float64

	BasePaceMinPerKm  float64
	FinalPaceMinPerKm float64

	Formatted      string // "4h32"
	FormattedRange string // "3h51 - 5h13"
}

// EstimateTime predicts a finish time by applying a sequential correction
// chain to a base pace: fitness, elevation, descent technicality, distance
// fatigue, temperature, pack weight, then refuel stops. The order is part
// of the model; each step sees the pace produced by the previous one.
func EstimateTime(p EstimateParams, m *Metrics) TimeEstimate {
	base := basePace(p, m)
	pace := base

	// Fitness: higher percentage means a faster (smaller) pace
	if p.FitnessPct > 0 {
		pace /= p.FitnessPct / 100
	}

	// Elevation: penalty proportional to total climbing
	pace *= 1 + ElevationPacePenalty*(p.ElevationGainM/1000)

	// Descent technicality: applies only to the descending share
	pace *= (1 - DescentShare) + DescentShare*p.Technicality.factor()

	// Distance fatigue: lose 1 km/h per complete 40 km tranche
	if tranches := math.Floor(p.DistanceKm / FatigueTrancheKm); tranches > 0 && pace > 0 {
		speed := 60/pace - tranches
		if speed < FatigueSpeedFloor {
			speed = FatigueSpeedFloor
		}
		pace = 60 / speed
	}

	// Temperature: slow down outside the 0-20°C comfort band
	if delta := temperatureExcess(p.TemperatureC); delta > 0 {
		pace += TemperatureSecPerDegree * delta / 60
	}

	// Pack weight
	pace += PackWeightSecPerKg * p.BagWeightKg / 60

	total := pace*p.DistanceKm + float64(p.RefuelStops)*p.RefuelMinutesPerStop

	est := TimeEstimate{
		TotalMinutes:      total,
		MinMinutes:        total * (1 - EstimateRangePct),
		MaxMinutes:        total * (1 + EstimateRangePct),
		BasePaceMinPerKm:  base,
		FinalPaceMinPerKm: pace,
	}
	est.Formatted = FormatMinutes(est.TotalMinutes)
	est.FormattedRange = FormatMinutes(est.MinMinutes) + " - " + FormatMinutes(est.MaxMinutes)
	return est
}

// basePace returns the caller override, a speed derived from training
// metrics, or the 6 min/km fallback when nothing is known.
func basePace(p EstimateParams, m *Metrics) float64 {
	if p.BasePaceMinPerKm != nil && *p.BasePaceMinPerKm > 0 {
		return *p.BasePaceMinPerKm
	}
	if m == nil {
		return DefaultPaceMinPerKm
	}

	var speed float64
	if m.LongRunDistanceKm > 0 {
		speed = 10 - (m.KmPerWeek-20)/50
	} else {
		speed = 9 + m.KmPerWeek/100
	}
	speed = clamp(speed, BaseSpeedMinKmh, BaseSpeedMaxKmh)
	return 60 / speed
}

func temperatureExcess(tempC float64) float64 {
	switch {
	case tempC < TemperatureComfortMinC:
		return TemperatureComfortMinC - tempC
	case tempC > TemperatureComfortMaxC:
		return tempC - TemperatureComfortMaxC
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FormatMinutes renders a duration in minutes as "4h32" or "47min".
func FormatMinutes(minutes float64) string {
	total := int(math.Round(minutes))
	h := total / 60
	m := total % 60
	if h == 0 {
		return fmt.Sprintf("%dmin", m)
	}
	return fmt.Sprintf("%dh%02d", h, m)
}

// FormatPace renders a pace in min/km as "5:45/km".
func FormatPace(minPerKm float64) string {
	mins := int(minPerKm)
	secs := int(math.Round((minPerKm - float64(mins)) * 60))
	if secs == 60 {
		mins++
		secs = 0
	}
	return fmt.Sprintf("%d:%02d/km", mins, secs)
}
