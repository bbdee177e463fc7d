package readiness

import "math"

// MergeMetrics reconciles Strava-derived metrics with imported workout
// summaries. Policy:
//
//   - neither source: nil
//   - only summaries: synthesize metrics from up to 5 of them
//   - both: reconcile only the long-run fields (each becomes the max of the
//     two sources); real weekly history is never lowered by an import
//
// The input metrics are not mutated; a copy is returned.
func MergeMetrics(m *Metrics, summaries []FitSummary) *Metrics {
	if m == nil && len(summaries) == 0 {
		return nil
	}

	if m == nil {
		return synthesizeFromSummaries(summaries)
	}

	merged := *m
	if len(summaries) == 0 {
		return &merged
	}

	maxKm, maxAscent := summaryMaxima(summaries)
	if maxKm > merged.LongRunDistanceKm {
		merged.LongRunDistanceKm = maxKm
	}
	if maxAscent > merged.LongRunElevationM {
		merged.LongRunElevationM = maxAscent
	}
	return &merged
}

// synthesizeFromSummaries builds approximate metrics from imported files
// alone, treating the sample as representative of one training week.
func synthesizeFromSummaries(summaries []FitSummary) *Metrics {
	if len(summaries) > MaxFusedSummaries {
		summaries = summaries[:MaxFusedSummaries]
	}

	maxKm, maxAscent := summaryMaxima(summaries)

	var kmSum, kmN, ascentSum, ascentN float64
	for _, s := range summaries {
		if s.DistanceKm != nil {
			kmSum += *s.DistanceKm
			kmN++
		}
		if s.AscentM != nil {
			ascentSum += *s.AscentM
			ascentN++
		}
	}

	m := Metrics{
		LongRunDistanceKm:           maxKm,
		LongRunElevationM:           maxAscent,
		Regularity:                  fuseRegularity(len(summaries)),
		TargetElevationGainPerWeekM: TargetWeeklyElevationGainM,
	}
	if kmN > 0 {
		m.KmPerWeek = kmSum / kmN
	}
	if ascentN > 0 {
		m.ElevationGainPerWeek = ascentSum / ascentN
	}
	m.LoadScore = math.Round(DistanceLoadWeight*m.KmPerWeek + ElevationLoadWeight*m.ElevationGainPerWeek)
	m.Recommendations = recommend(m)

	return &m
}

func summaryMaxima(summaries []FitSummary) (maxKm, maxAscentM float64) {
	for _, s := range summaries {
		if s.DistanceKm != nil && *s.DistanceKm > maxKm {
			maxKm = *s.DistanceKm
		}
		if s.AscentM != nil && *s.AscentM > maxAscentM {
			maxAscentM = *s.AscentM
		}
	}
	return maxKm, maxAscentM
}

func fuseRegularity(count int) Regularity {
	switch {
	case count >= FuseRegularityGoodCount:
		return RegularityGood
	case count >= FuseRegularityMediumCount:
		return RegularityMedium
	default:
		return RegularityLow
	}
}
