package readiness

// Point is one sample of a course elevation profile.
type Point struct {
	DistanceKm float64
	ElevationM float64
}

// Profile is an ordered elevation profile, strictly increasing in distance.
type Profile []Point

// TotalDistanceKm returns the distance covered by the profile.
func (p Profile) TotalDistanceKm() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].DistanceKm - p[0].DistanceKm
}

// TotalElevationGainM sums the positive elevation deltas of the profile.
func (p Profile) TotalElevationGainM() float64 {
	var gain float64
	for i := 1; i < len(p); i++ {
		if d := p[i].ElevationM - p[i-1].ElevationM; d > 0 {
			gain += d
		}
	}
	return gain
}

// Technicity classifies terrain steepness severity from grade.
type Technicity string

const (
	TechnicitySmooth    Technicity = "smooth"
	TechnicityTechnical Technicity = "technical"
	TechnicityChaos     Technicity = "chaos"
)

// Segment is one inter-sample interval of a profile, tagged with its grade
// and technicity.
type Segment struct {
	StartKm         float64
	EndKm           float64
	StartElevationM float64
	EndElevationM   float64
	Grade           float64 // percent
	Technicity      Technicity
}

// ClassifyProfile tags every consecutive sample pair of the profile with a
// grade and a technicity class. Sample pairs with a zero or negative
// distance delta are skipped, never divided by. Fewer than two points
// yields an empty result.
func ClassifyProfile(profile Profile) []Segment {
	if len(profile) < 2 {
		return nil
	}

	segments := make([]Segment, 0, len(profile)-1)
	for i := 1; i < len(profile); i++ {
		prev, cur := profile[i-1], profile[i]
		dKm := cur.DistanceKm - prev.DistanceKm
		if dKm <= 0 {
			continue
		}

		grade := (cur.ElevationM - prev.ElevationM) / (dKm * 1000) * 100
		segments = append(segments, Segment{
			StartKm:         prev.DistanceKm,
			EndKm:           cur.DistanceKm,
			StartElevationM: prev.ElevationM,
			EndElevationM:   cur.ElevationM,
			Grade:           grade,
			Technicity:      technicityFor(grade),
		})
	}

	return segments
}

// technicityFor applies the grade thresholds in severity order.
func technicityFor(grade float64) Technicity {
	abs := grade
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs > GradeChaosAbs || grade < GradeChaosDescent:
		return TechnicityChaos
	case abs > GradeTechnicalAbs || grade < GradeTechnicalDescent:
		return TechnicityTechnical
	default:
		return TechnicitySmooth
	}
}
