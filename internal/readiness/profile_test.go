package readiness

import (
	"math"
	"testing"
)

func TestClassifyProfileFlat(t *testing.T) {
	profile := Profile{
		{DistanceKm: 0, ElevationM: 250},
		{DistanceKm: 1, ElevationM: 250},
		{DistanceKm: 2.5, ElevationM: 250},
		{DistanceKm: 4, ElevationM: 250},
	}

	segments := ClassifyProfile(profile)
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}
	for i, s := range segments {
		if s.Grade != 0 {
			t.Errorf("segment %d grade = %v, want 0", i, s.Grade)
		}
		if s.Technicity != TechnicitySmooth {
			t.Errorf("segment %d technicity = %v, want smooth", i, s.Technicity)
		}
	}
}

func TestClassifyProfileSteepWall(t *testing.T) {
	// 500 m of gain over one km: way past the chaos threshold
	profile := Profile{
		{DistanceKm: 0, ElevationM: 100},
		{DistanceKm: 1, ElevationM: 100},
		{DistanceKm: 2, ElevationM: 600},
	}

	segments := ClassifyProfile(profile)
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}

	if segments[0].Technicity != TechnicitySmooth {
		t.Errorf("segment 1 technicity = %v, want smooth", segments[0].Technicity)
	}
	if math.Abs(segments[1].Grade-50) > 0.001 {
		t.Errorf("segment 2 grade = %v, want 50", segments[1].Grade)
	}
	if segments[1].Technicity != TechnicityChaos {
		t.Errorf("segment 2 technicity = %v, want chaos", segments[1].Technicity)
	}
}

func TestClassifyProfileThresholds(t *testing.T) {
	// One segment per case, 1 km long, elevation delta in meters sets the
	// grade directly in percent.
	tests := []struct {
		name   string
		deltaM float64
		want   Technicity
	}{
		{"gentle climb", 100, TechnicitySmooth},
		{"moderate climb", 150, TechnicitySmooth},
		{"steep climb", 200, TechnicityTechnical},
		{"very steep climb", 300, TechnicityChaos},
		{"gentle descent", -100, TechnicitySmooth},
		{"steep descent past descent threshold", -130, TechnicityTechnical},
		{"plunging descent", -210, TechnicityChaos},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := Profile{
				{DistanceKm: 0, ElevationM: 1000},
				{DistanceKm: 1, ElevationM: 1000 + tt.deltaM},
			}
			segments := ClassifyProfile(profile)
			if len(segments) != 1 {
				t.Fatalf("expected 1 segment, got %d", len(segments))
			}
			if segments[0].Technicity != tt.want {
				t.Errorf("grade %v%%: technicity = %v, want %v",
					segments[0].Grade, segments[0].Technicity, tt.want)
			}
		})
	}
}

func TestClassifyProfileSkipsZeroDistanceDelta(t *testing.T) {
	profile := Profile{
		{DistanceKm: 0, ElevationM: 100},
		{DistanceKm: 1, ElevationM: 150},
		{DistanceKm: 1, ElevationM: 400}, // duplicate distance sample
		{DistanceKm: 2, ElevationM: 420},
	}

	segments := ClassifyProfile(profile)
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments (duplicate skipped), got %d", len(segments))
	}
}

func TestClassifyProfileTooShort(t *testing.T) {
	if got := ClassifyProfile(nil); got != nil {
		t.Errorf("ClassifyProfile(nil) = %v, want nil", got)
	}
	if got := ClassifyProfile(Profile{{DistanceKm: 0, ElevationM: 10}}); got != nil {
		t.Errorf("single point profile = %v, want nil", got)
	}
}

func TestProfileTotals(t *testing.T) {
	profile := Profile{
		{DistanceKm: 0, ElevationM: 100},
		{DistanceKm: 5, ElevationM: 600},
		{DistanceKm: 8, ElevationM: 400},
		{DistanceKm: 10, ElevationM: 700},
	}

	if got := profile.TotalDistanceKm(); math.Abs(got-10) > 0.001 {
		t.Errorf("TotalDistanceKm = %v, want 10", got)
	}
	if got := profile.TotalElevationGainM(); math.Abs(got-800) > 0.001 {
		t.Errorf("TotalElevationGainM = %v, want 800", got)
	}
}
