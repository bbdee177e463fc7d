package readiness

// Difficulty rates a course section relative to the runner's measured
// climbing capability.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
	DifficultyCritical Difficulty = "critical"
)

// Display colors, one per difficulty tier.
var difficultyColors = map[Difficulty]string{
	DifficultyEasy:     "#22C55E", // green
	DifficultyModerate: "#F59E0B", // orange
	DifficultyHard:     "#EF4444", // red
	DifficultyCritical: "#991B1B", // dark red
}

var difficultyDescriptions = map[Difficulty]string{
	DifficultyEasy:     "Runnable terrain, settle into your rhythm",
	DifficultyModerate: "Sustained effort, manage your pace",
	DifficultyHard:     "Demanding section, expect to power-hike the climbs",
	DifficultyCritical: "Very steep terrain, move carefully and protect the descents",
}

// Zone is a maximal run of consecutive segments sharing one difficulty.
type Zone struct {
	StartKm    float64
	EndKm      float64
	Difficulty Difficulty

	ElevationGainM float64
	ElevationLossM float64
	AvgGrade       float64 // percent over the whole zone

	Description string
	Color       string
}

// Color returns the display color for a difficulty tier.
func (d Difficulty) Color() string { return difficultyColors[d] }

// Description returns the fixed human-readable description of a tier.
func (d Difficulty) Description() string { return difficultyDescriptions[d] }

// AnalyzeZones classifies a course profile into difficulty zones. Without
// runner metrics the rating degrades to technicity only (chaos=critical,
// technical=hard, smooth=easy). With metrics, each segment is rated against
// the runner's elevation-per-km capability, and adjacent segments with the
// same difficulty are merged.
func AnalyzeZones(profile Profile, m *Metrics, courseDistanceKm, courseElevationGainM float64) []Zone {
	segments := ClassifyProfile(profile)
	if len(segments) == 0 {
		return nil
	}

	runnerPerKm, capacity := runnerCapacity(m, courseDistanceKm, courseElevationGainM)

	var zones []Zone
	var cur *Zone // accumulator for the zone being built

	for _, seg := range segments {
		diff := segmentDifficulty(seg, m, runnerPerKm, capacity)

		if cur == nil || cur.Difficulty != diff {
			if cur != nil {
				zones = append(zones, finishZone(*cur))
			}
			cur = &Zone{
				StartKm:    seg.StartKm,
				EndKm:      seg.EndKm,
				Difficulty: diff,
			}
		} else {
			cur.EndKm = seg.EndKm
		}

		if d := seg.EndElevationM - seg.StartElevationM; d >= 0 {
			cur.ElevationGainM += d
		} else {
			cur.ElevationLossM += -d
		}
	}
	zones = append(zones, finishZone(*cur))

	return zones
}

// runnerCapacity derives the runner's elevation-per-km and the capacity
// factor against the course. A nil metrics value or a flat course yields
// the neutral factor 1.0.
func runnerCapacity(m *Metrics, courseDistanceKm, courseElevationGainM float64) (runnerPerKm, capacity float64) {
	capacity = 1.0
	if m == nil {
		return 0, capacity
	}

	if m.LongRunDistanceKm > 0 && m.LongRunElevationM > 0 {
		runnerPerKm = m.LongRunElevationM / m.LongRunDistanceKm
	} else {
		den := m.KmPerWeek
		if den < 1 {
			den = 1
		}
		runnerPerKm = m.ElevationGainPerWeek / den
	}

	var coursePerKm float64
	if courseDistanceKm > 0 {
		coursePerKm = courseElevationGainM / courseDistanceKm
	}
	if coursePerKm > 0 {
		capacity = clamp(runnerPerKm/coursePerKm, CapacityFactorMin, CapacityFactorMax)
	}

	return runnerPerKm, capacity
}

func segmentDifficulty(seg Segment, m *Metrics, runnerPerKm, capacity float64) Difficulty {
	if m == nil {
		// Technicity-only degradation
		switch seg.Technicity {
		case TechnicityChaos:
			return DifficultyCritical
		case TechnicityTechnical:
			return DifficultyHard
		default:
			return DifficultyEasy
		}
	}

	switch seg.Technicity {
	case TechnicityChaos:
		return DifficultyCritical
	case TechnicityTechnical:
		switch {
		case capacity < 0.8:
			return DifficultyCritical
		case capacity < 1.0:
			return DifficultyHard
		default:
			return DifficultyModerate
		}
	default:
		return smoothDifficulty(seg, runnerPerKm, capacity)
	}
}

// smoothDifficulty rates a smooth segment by how its local climbing rate
// compares to what the runner is used to.
func smoothDifficulty(seg Segment, runnerPerKm, capacity float64) Difficulty {
	dKm := seg.EndKm - seg.StartKm
	var localPerKm float64
	if gain := seg.EndElevationM - seg.StartElevationM; gain > 0 && dKm > 0 {
		localPerKm = gain / dKm
	}

	// A runner with no recorded climbing has runnerPerKm 0, so any climb
	// exceeds the bound and rates against their (clamped-low) capacity.
	switch {
	case localPerKm > 1.2*runnerPerKm:
		if capacity < 0.9 {
			return DifficultyHard
		}
		return DifficultyModerate
	case localPerKm > 0.8*runnerPerKm:
		return DifficultyModerate
	default:
		return DifficultyEasy
	}
}

func finishZone(z Zone) Zone {
	if dKm := z.EndKm - z.StartKm; dKm > 0 {
		z.AvgGrade = (z.ElevationGainM - z.ElevationLossM) / (dKm * 1000) * 100
	}
	z.Description = z.Difficulty.Description()
	z.Color = z.Difficulty.Color()
	return z
}
