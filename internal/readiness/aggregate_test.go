package readiness

import (
	"math"
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }

func TestAggregateEmpty(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	m := Aggregate(nil, now)

	if m.KmPerWeek != 0 || m.ElevationGainPerWeek != 0 {
		t.Errorf("expected zero weekly volume, got km=%v elev=%v", m.KmPerWeek, m.ElevationGainPerWeek)
	}
	if m.LongRunDistanceKm != 0 || m.LongRunElevationM != 0 {
		t.Errorf("expected zero long run, got %v/%v", m.LongRunDistanceKm, m.LongRunElevationM)
	}
	if m.Regularity != RegularityLow {
		t.Errorf("Regularity = %v, want low", m.Regularity)
	}
	if m.LoadVariationPct != 0 {
		t.Errorf("LoadVariationPct = %v, want 0", m.LoadVariationPct)
	}
	if len(m.Recommendations) == 0 {
		t.Error("expected at least the generic nutrition recommendation")
	}
}

func TestAggregateSingleActivityNow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	m := Aggregate([]Activity{
		{ID: 1, Date: now, DistanceKm: 10, ElevationGainM: 300, MovingTimeSec: 3600},
	}, now)

	if m.KmPerWeek != 10 {
		t.Errorf("KmPerWeek = %v, want 10", m.KmPerWeek)
	}
	if m.ElevationGainPerWeek != 300 {
		t.Errorf("ElevationGainPerWeek = %v, want 300", m.ElevationGainPerWeek)
	}
	if m.LongRunDistanceKm != 10 {
		t.Errorf("LongRunDistanceKm = %v, want 10", m.LongRunDistanceKm)
	}
	// loadScore = 10*10 + 0.3*300 = 190
	if math.Abs(m.LoadScore-190) > 0.001 {
		t.Errorf("LoadScore = %v, want 190", m.LoadScore)
	}
}

func TestWeekBucketsPartition(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	activities := []Activity{
		{ID: 1, Date: now.AddDate(0, 0, -1), DistanceKm: 12, ElevationGainM: 400},
		{ID: 2, Date: now.AddDate(0, 0, -8), DistanceKm: 8, ElevationGainM: 100},
		{ID: 3, Date: now.AddDate(0, 0, -20), DistanceKm: 21, ElevationGainM: 900},
		{ID: 4, Date: now.AddDate(0, 0, -41), DistanceKm: 5, ElevationGainM: 50},
		{ID: 5, Date: now.AddDate(0, 0, -60), DistanceKm: 30, ElevationGainM: 1500}, // outside window
	}

	buckets := WeekBuckets(activities, now)

	if len(buckets) != WeekCount {
		t.Fatalf("expected %d buckets, got %d", WeekCount, len(buckets))
	}

	var totalKm float64
	var totalCount int
	for _, b := range buckets {
		totalKm += b.Km
		totalCount += b.ActivityCount
	}

	// Every in-window activity lands in exactly one bucket
	if totalCount != 4 {
		t.Errorf("bucketed %d activities, want 4", totalCount)
	}
	if math.Abs(totalKm-(12+8+21+5)) > 0.001 {
		t.Errorf("total bucketed km = %v, want 46", totalKm)
	}

	// Buckets tile the window, oldest first
	for j := 0; j < WeekCount; j++ {
		if !buckets[j].End.Equal(buckets[j].Start.AddDate(0, 0, BucketDays)) {
			t.Errorf("bucket %d is not 7 days wide", j)
		}
		if j > 0 && !buckets[j].Start.Equal(buckets[j-1].End) {
			t.Errorf("gap between bucket %d and %d", j-1, j)
		}
	}
	if !buckets[WeekCount-1].End.Equal(now) {
		t.Errorf("latest bucket ends at %v, want %v", buckets[WeekCount-1].End, now)
	}
}

func TestWeekBucketsIndependentMaxima(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// Longest run by distance is not the biggest climb
	buckets := WeekBuckets([]Activity{
		{ID: 1, Date: now.AddDate(0, 0, -1), DistanceKm: 25, ElevationGainM: 200},
		{ID: 2, Date: now.AddDate(0, 0, -2), DistanceKm: 12, ElevationGainM: 1100},
	}, now)

	latest := buckets[WeekCount-1]
	if latest.LongestRunKm != 25 {
		t.Errorf("LongestRunKm = %v, want 25", latest.LongestRunKm)
	}
	if latest.LongestRunElevationM != 1100 {
		t.Errorf("LongestRunElevationM = %v, want 1100", latest.LongestRunElevationM)
	}
}

func TestAggregateRegularity(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	makeRuns := func(perWeek int) []Activity {
		var runs []Activity
		id := int64(0)
		for w := 0; w < WeekCount; w++ {
			for r := 0; r < perWeek; r++ {
				id++
				runs = append(runs, Activity{
					ID:         id,
					Date:       now.AddDate(0, 0, -(w*BucketDays + r + 1)),
					DistanceKm: 10,
				})
			}
		}
		return runs
	}

	tests := []struct {
		name    string
		perWeek int
		want    Regularity
	}{
		{"one run per week", 1, RegularityLow},
		{"three runs per week", 3, RegularityMedium},
		{"five runs per week", 5, RegularityGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Aggregate(makeRuns(tt.perWeek), now)
			if m.Regularity != tt.want {
				t.Errorf("Regularity = %v, want %v", m.Regularity, tt.want)
			}
		})
	}
}

func TestAggregateLoadVariation(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		activities []Activity
		wantPct    float64
		wantDelta  int
	}{
		{
			name: "fifty percent increase",
			activities: []Activity{
				{ID: 1, Date: now.AddDate(0, 0, -10), DistanceKm: 20, ElevationGainM: 0},
				{ID: 2, Date: now.AddDate(0, 0, -2), DistanceKm: 30, ElevationGainM: 0},
			},
			wantPct:   50,
			wantDelta: 50,
		},
		{
			name: "previous week empty reports zero",
			activities: []Activity{
				{ID: 1, Date: now.AddDate(0, 0, -2), DistanceKm: 30, ElevationGainM: 500},
			},
			wantPct:   0,
			wantDelta: 0,
		},
		{
			name: "load drop",
			activities: []Activity{
				{ID: 1, Date: now.AddDate(0, 0, -10), DistanceKm: 40, ElevationGainM: 0},
				{ID: 2, Date: now.AddDate(0, 0, -2), DistanceKm: 10, ElevationGainM: 0},
			},
			wantPct:   -75,
			wantDelta: -75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Aggregate(tt.activities, now)
			if math.Abs(m.LoadVariationPct-tt.wantPct) > 0.01 {
				t.Errorf("LoadVariationPct = %v, want %v", m.LoadVariationPct, tt.wantPct)
			}
			if m.LoadDeltaPct != tt.wantDelta {
				t.Errorf("LoadDeltaPct = %v, want %v", m.LoadDeltaPct, tt.wantDelta)
			}
		})
	}
}

func TestAggregateEnrichment(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	m := Aggregate([]Activity{
		{ID: 1, Date: now.AddDate(0, 0, -1), DistanceKm: 10, MovingTimeSec: 3600,
			Type: "TrailRun", AvgHeartrate: floatPtr(150)},
		{ID: 2, Date: now.AddDate(0, 0, -3), DistanceKm: 10, MovingTimeSec: 3600,
			Type: "Run", AvgHeartrate: floatPtr(140)},
	}, now)

	if m.AvgHeartrate == nil || math.Abs(*m.AvgHeartrate-145) > 0.001 {
		t.Errorf("AvgHeartrate = %v, want 145", m.AvgHeartrate)
	}
	if m.TrailRunRatio == nil || math.Abs(*m.TrailRunRatio-0.5) > 0.001 {
		t.Errorf("TrailRunRatio = %v, want 0.5", m.TrailRunRatio)
	}
	if m.AvgSpeedKmh == nil || math.Abs(*m.AvgSpeedKmh-10) > 0.001 {
		t.Errorf("AvgSpeedKmh = %v, want 10", m.AvgSpeedKmh)
	}
}

func TestRecommendationsAlwaysIncludeNutrition(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, activities := range [][]Activity{
		nil,
		{{ID: 1, Date: now.AddDate(0, 0, -1), DistanceKm: 10, ElevationGainM: 3000}},
	} {
		m := Aggregate(activities, now)
		found := false
		for _, r := range m.Recommendations {
			if r == "Practice race-day nutrition and hydration on your long runs" {
				found = true
			}
		}
		if !found {
			t.Errorf("nutrition hint missing from %v", m.Recommendations)
		}
	}
}
