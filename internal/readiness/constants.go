package readiness

// Tuning constants for the readiness models. These are heuristics, not
// validated physiology — they live here so they can be adjusted in one
// place without touching the algorithms.
const (
	// Weekly bucketing
	WeekCount  = 6
	BucketDays = 7
	WindowDays = WeekCount * BucketDays // 42

	// Load score weights: load = 10*km + 0.3*elevationGain
	DistanceLoadWeight  = 10.0
	ElevationLoadWeight = 0.3

	// Exponential decay windows for chronic/acute load
	ChronicDecayDays = 42.0
	AcuteDecayDays   = 7.0

	// Balance output bounds
	BalanceMin = -50
	BalanceMax = 50

	// Reference weekly climbing volume for a mountain trail runner
	TargetWeeklyElevationGainM = 2800.0

	// Regularity thresholds on mean weekly activity count
	RegularityMediumRuns = 2.0
	RegularityGoodRuns   = 4.0
)

// Grade thresholds (percent) for technicity classification.
// Descents get stricter thresholds: a -18% downhill is harder to run
// than a +18% uphill.
const (
	GradeChaosAbs         = 25.0
	GradeChaosDescent     = -20.0
	GradeTechnicalAbs     = 15.0
	GradeTechnicalDescent = -12.0
)

// Capacity factor bounds: runner elevation-per-km relative to the course,
// clamped so one freak long run cannot flip every zone.
const (
	CapacityFactorMin = 0.5
	CapacityFactorMax = 1.5
)

// Time estimator constants.
const (
	// Base pace derivation bounds (km/h)
	BaseSpeedMinKmh = 8.0
	BaseSpeedMaxKmh = 12.0

	// Fallback when nothing is known about the runner
	DefaultPaceMinPerKm = 6.0

	// Pace penalty per 1000 m of climbing
	ElevationPacePenalty = 0.015

	// Share of the race assumed to be descending
	DescentShare = 0.4

	// Distance fatigue: lose 1 km/h per complete tranche, never below floor
	FatigueTrancheKm  = 40.0
	FatigueSpeedFloor = 4.0

	// Comfort band outside which heat/cold slows the pace (seconds per degree)
	TemperatureComfortMinC  = 0.0
	TemperatureComfortMaxC  = 20.0
	TemperatureSecPerDegree = 2.0

	// Pack weight: seconds per kg added to every km
	PackWeightSecPerKg = 5.0

	// Uncertainty band on the final estimate
	EstimateRangePct = 0.15
)

// Metrics fusion constants.
const (
	// At most this many imported summaries contribute to synthesized metrics
	MaxFusedSummaries = 5

	FuseRegularityGoodCount   = 4
	FuseRegularityMediumCount = 2
)
