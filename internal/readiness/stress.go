package readiness

import (
	"math"
	"time"
)

// stressScore is the per-activity training stress proxy: the same
// distance/elevation weighting used for the weekly load score.
func stressScore(a Activity) float64 {
	return DistanceLoadWeight*a.DistanceKm + ElevationLoadWeight*a.ElevationGainM
}

// BalanceFromActivities computes the training stress balance (chronic minus
// acute load) from a raw activity history. Positive means fresh, negative
// means fatigued. The result is rounded and clamped to [-50, 50].
//
// Chronic load is the exponentially time-weighted mean stress over the
// trailing 42 days (decay (1-1/42) per day of age); acute load is the same
// over the trailing 7 days (decay (1-1/7) per day).
func BalanceFromActivities(activities []Activity, now time.Time) int {
	ctl := decayedLoad(activities, now, ChronicDecayDays)
	atl := decayedLoad(activities, now, AcuteDecayDays)
	return clampBalance(int(math.Round(ctl - atl)))
}

// decayedLoad is the weighted mean sum(w*stress)/sum(w) over activities
// within the trailing windowDays, with w = (1-1/windowDays)^ageDays.
// No qualifying activities means zero load, not an error.
func decayedLoad(activities []Activity, now time.Time, windowDays float64) float64 {
	decay := 1 - 1/windowDays

	var weighted, weights float64
	for _, a := range activities {
		age := now.Sub(a.Date).Hours() / 24
		if age < 0 || age > windowDays {
			continue
		}
		w := math.Pow(decay, age)
		weighted += w * stressScore(a)
		weights += w
	}

	if weights == 0 {
		return 0
	}
	return weighted / weights
}

// BalanceFromMetrics approximates the balance when only aggregated metrics
// are known (e.g. a single imported file with no dated history). It treats
// the weekly load score as chronic load and scales it by the week-over-week
// variation for the acute side.
//
// This is deliberately a coarser model than BalanceFromActivities and the
// two do not agree on the same data; callers should label it as approximate.
func BalanceFromMetrics(m *Metrics) int {
	if m == nil {
		return 0
	}
	ctl := m.LoadScore
	atl := m.LoadScore * (1 + m.LoadVariationPct/100)
	return clampBalance(int(math.Round((ctl - atl) / 10)))
}

func clampBalance(b int) int {
	if b < BalanceMin {
		return BalanceMin
	}
	if b > BalanceMax {
		return BalanceMax
	}
	return b
}

// BalanceDescription maps a balance value to a readable freshness tier.
func BalanceDescription(balance int) string {
	switch {
	case balance > 25:
		return "Very fresh (possibly detrained)"
	case balance > 10:
		return "Fresh and ready to race"
	case balance > 0:
		return "Neutral - good for training"
	case balance > -10:
		return "Slightly fatigued"
	case balance > -25:
		return "Tired but building fitness"
	default:
		return "Very fatigued - rest needed"
	}
}
