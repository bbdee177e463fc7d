package readiness

import (
	"testing"
	"time"
)

func TestBalanceFromActivities(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		activities []Activity
		want       int
	}{
		{
			name:       "no activities",
			activities: nil,
			want:       0,
		},
		{
			name: "single recent activity cancels out",
			// The weighted mean of one activity is its stress score on
			// both windows, so chronic and acute loads are equal.
			activities: []Activity{
				{ID: 1, Date: now.Add(-2 * time.Hour), DistanceKm: 10, ElevationGainM: 300},
			},
			want: 0,
		},
		{
			name: "only old training means freshness, clamped at +50",
			// Activity outside the 7-day window: acute load is 0, chronic
			// load is the full stress score (10*10 + 0.3*300 = 190).
			activities: []Activity{
				{ID: 1, Date: now.AddDate(0, 0, -20), DistanceKm: 10, ElevationGainM: 300},
			},
			want: 50,
		},
		{
			name: "activities outside 42 days are ignored",
			activities: []Activity{
				{ID: 1, Date: now.AddDate(0, 0, -50), DistanceKm: 100, ElevationGainM: 5000},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BalanceFromActivities(tt.activities, now)
			if got != tt.want {
				t.Errorf("BalanceFromActivities() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBalanceAlwaysInRange(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// Extreme histories must stay inside [-50, 50]
	var heavy []Activity
	for i := 0; i < 42; i++ {
		heavy = append(heavy, Activity{
			ID: int64(i), Date: now.AddDate(0, 0, -i), DistanceKm: 50, ElevationGainM: 3000,
		})
	}

	histories := [][]Activity{
		nil,
		heavy,
		{{ID: 1, Date: now.AddDate(0, 0, -1), DistanceKm: 200, ElevationGainM: 10000}},
		{{ID: 1, Date: now.AddDate(0, 0, -40), DistanceKm: 200, ElevationGainM: 10000}},
	}

	for i, activities := range histories {
		b := BalanceFromActivities(activities, now)
		if b < BalanceMin || b > BalanceMax {
			t.Errorf("history %d: balance %d outside [%d, %d]", i, b, BalanceMin, BalanceMax)
		}
	}
}

func TestBalanceFromMetrics(t *testing.T) {
	tests := []struct {
		name    string
		metrics *Metrics
		want    int
	}{
		{
			name:    "nil metrics",
			metrics: nil,
			want:    0,
		},
		{
			name:    "steady load is neutral",
			metrics: &Metrics{LoadScore: 190, LoadVariationPct: 0},
			want:    0,
		},
		{
			name: "ramping load reads as fatigue",
			// atl = 190 * 1.5 = 285, (190-285)/10 = -9.5 -> -10
			metrics: &Metrics{LoadScore: 190, LoadVariationPct: 50},
			want:    -10,
		},
		{
			name: "tapering load reads as freshness",
			// atl = 200 * 0.5 = 100, (200-100)/10 = 10
			metrics: &Metrics{LoadScore: 200, LoadVariationPct: -50},
			want:    10,
		},
		{
			name: "huge swing clamps",
			// atl = 1000 * 10 = 10000, (1000-10000)/10 = -900 -> -50
			metrics: &Metrics{LoadScore: 1000, LoadVariationPct: 900},
			want:    -50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BalanceFromMetrics(tt.metrics)
			if got != tt.want {
				t.Errorf("BalanceFromMetrics() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBalanceDescription(t *testing.T) {
	tests := []struct {
		balance  int
		expected string
	}{
		{30, "Very fresh (possibly detrained)"},
		{15, "Fresh and ready to race"},
		{5, "Neutral - good for training"},
		{-5, "Slightly fatigued"},
		{-15, "Tired but building fitness"},
		{-40, "Very fatigued - rest needed"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := BalanceDescription(tt.balance); got != tt.expected {
				t.Errorf("BalanceDescription(%d) = %q, want %q", tt.balance, got, tt.expected)
			}
		})
	}
}
