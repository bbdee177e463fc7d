package readiness

import (
	"math"
	"testing"
)

func TestMergeMetricsNeitherSource(t *testing.T) {
	if got := MergeMetrics(nil, nil); got != nil {
		t.Errorf("MergeMetrics(nil, nil) = %v, want nil", got)
	}
	if got := MergeMetrics(nil, []FitSummary{}); got != nil {
		t.Errorf("MergeMetrics(nil, []) = %v, want nil", got)
	}
}

func TestMergeMetricsOnlyStrava(t *testing.T) {
	m := &Metrics{
		KmPerWeek:         42,
		LongRunDistanceKm: 18,
		LongRunElevationM: 700,
		Regularity:        RegularityGood,
		LoadScore:         500,
	}

	got := MergeMetrics(m, nil)
	if got == nil {
		t.Fatal("expected metrics, got nil")
	}
	if got.KmPerWeek != m.KmPerWeek || got.LongRunDistanceKm != m.LongRunDistanceKm ||
		got.LongRunElevationM != m.LongRunElevationM || got.Regularity != m.Regularity ||
		got.LoadScore != m.LoadScore {
		t.Errorf("MergeMetrics(m, []) = %+v, want unchanged %+v", *got, *m)
	}
	if got == m {
		t.Error("expected a copy, got the same pointer")
	}
}

func TestMergeMetricsSynthesizeFromSummaries(t *testing.T) {
	summaries := []FitSummary{
		{DistanceKm: floatPtr(20), AscentM: floatPtr(800)},
	}

	got := MergeMetrics(nil, summaries)
	if got == nil {
		t.Fatal("expected synthesized metrics, got nil")
	}

	if got.LongRunDistanceKm != 20 {
		t.Errorf("LongRunDistanceKm = %v, want 20", got.LongRunDistanceKm)
	}
	if got.LongRunElevationM != 800 {
		t.Errorf("LongRunElevationM = %v, want 800", got.LongRunElevationM)
	}
	// loadScore = round(20*10 + 800*0.3) = 440
	if math.Abs(got.LoadScore-440) > 0.001 {
		t.Errorf("LoadScore = %v, want 440", got.LoadScore)
	}
	if got.Regularity != RegularityLow {
		t.Errorf("Regularity = %v, want low for a single file", got.Regularity)
	}
}

func TestMergeMetricsSynthesizedRegularityAndMeans(t *testing.T) {
	summaries := []FitSummary{
		{DistanceKm: floatPtr(10), AscentM: floatPtr(400)},
		{DistanceKm: floatPtr(20), AscentM: floatPtr(600)},
		{DistanceKm: floatPtr(30)}, // no ascent recorded
		{DistanceKm: floatPtr(12), AscentM: floatPtr(500)},
	}

	got := MergeMetrics(nil, summaries)
	if got == nil {
		t.Fatal("expected synthesized metrics, got nil")
	}

	if got.Regularity != RegularityGood {
		t.Errorf("Regularity = %v, want good for 4 summaries", got.Regularity)
	}
	// Means only over present fields: km (10+20+30+12)/4, ascent (400+600+500)/3
	if math.Abs(got.KmPerWeek-18) > 0.001 {
		t.Errorf("KmPerWeek = %v, want 18", got.KmPerWeek)
	}
	if math.Abs(got.ElevationGainPerWeek-500) > 0.001 {
		t.Errorf("ElevationGainPerWeek = %v, want 500", got.ElevationGainPerWeek)
	}
	if got.LongRunDistanceKm != 30 {
		t.Errorf("LongRunDistanceKm = %v, want 30", got.LongRunDistanceKm)
	}
	if got.LongRunElevationM != 600 {
		t.Errorf("LongRunElevationM = %v, want 600", got.LongRunElevationM)
	}
}

func TestMergeMetricsCapsSummaryCount(t *testing.T) {
	var summaries []FitSummary
	for i := 0; i < 8; i++ {
		summaries = append(summaries, FitSummary{DistanceKm: floatPtr(float64(10 + i))})
	}

	got := MergeMetrics(nil, summaries)
	if got == nil {
		t.Fatal("expected synthesized metrics, got nil")
	}
	// Only the first 5 summaries contribute: max distance 14, mean 12
	if got.LongRunDistanceKm != 14 {
		t.Errorf("LongRunDistanceKm = %v, want 14", got.LongRunDistanceKm)
	}
	if math.Abs(got.KmPerWeek-12) > 0.001 {
		t.Errorf("KmPerWeek = %v, want 12", got.KmPerWeek)
	}
}

func TestMergeMetricsBothSources(t *testing.T) {
	m := &Metrics{
		KmPerWeek:            42,
		ElevationGainPerWeek: 1200,
		LongRunDistanceKm:    18,
		LongRunElevationM:    700,
		Regularity:           RegularityGood,
		LoadVariationPct:     12,
		LoadScore:            780,
	}
	summaries := []FitSummary{
		{DistanceKm: floatPtr(25), AscentM: floatPtr(500)}, // longer but flatter
	}

	got := MergeMetrics(m, summaries)
	if got == nil {
		t.Fatal("expected metrics, got nil")
	}

	// Long-run fields reconcile to the max of both sources
	if got.LongRunDistanceKm != 25 {
		t.Errorf("LongRunDistanceKm = %v, want 25", got.LongRunDistanceKm)
	}
	if got.LongRunElevationM != 700 {
		t.Errorf("LongRunElevationM = %v, want 700 (import never lowers it)", got.LongRunElevationM)
	}

	// Everything else from real history is untouched
	if got.KmPerWeek != 42 || got.ElevationGainPerWeek != 1200 {
		t.Errorf("weekly volume changed: %+v", got)
	}
	if got.Regularity != RegularityGood || got.LoadVariationPct != 12 || got.LoadScore != 780 {
		t.Errorf("derived fields changed: %+v", got)
	}

	// Input must not have been mutated
	if m.LongRunDistanceKm != 18 {
		t.Errorf("input metrics mutated: %+v", m)
	}
}
