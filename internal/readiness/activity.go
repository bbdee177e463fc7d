package readiness

import "time"

// Activity is one completed run, as handed to the readiness models by the
// caller (Strava sync or storage). The models only ever read these values.
type Activity struct {
	ID             int64
	Date           time.Time
	DistanceKm     float64
	ElevationGainM float64
	MovingTimeSec  int
	Type           string

	// Optional enrichers; nil when the source didn't record them
	AvgHeartrate *float64 // bpm
	AvgCadence   *float64 // spm
	AvgSpeedKmh  *float64 // km/h
	SufferScore  *float64
}

// FitSummary is a single imported workout file reduced to its session
// totals. Every field is optional: FIT files in the wild omit ascent,
// sometimes even distance.
type FitSummary struct {
	DistanceKm  *float64
	DurationSec *float64
	AscentM     *float64
}

// Regularity buckets mean weekly run count into coarse tiers.
type Regularity string

const (
	RegularityLow    Regularity = "low"
	RegularityMedium Regularity = "medium"
	RegularityGood   Regularity = "good"
)

// Metrics is the canonical derived summary of a runner's recent training,
// consumed by the balance, estimate and zone models.
type Metrics struct {
	KmPerWeek            float64
	ElevationGainPerWeek float64
	LongRunDistanceKm    float64
	LongRunElevationM    float64
	Regularity           Regularity
	LoadVariationPct     float64
	LoadScore            float64
	LoadDeltaPct         int
	Recommendations      []string

	TargetElevationGainPerWeekM float64

	// Optional enrichment, present only when the source activities carry
	// the underlying data
	AvgHeartrate  *float64
	AvgCadence    *float64
	AvgSpeedKmh   *float64
	RestDayRatio  *float64
	SufferScore   *float64
	TrailRunRatio *float64
}
