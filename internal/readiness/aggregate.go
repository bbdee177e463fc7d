package readiness

import (
	"math"
	"strings"
	"time"
)

// WeekBucket is one trailing 7-day window of training. Six of them tile
// the 42 days ending at the reference instant, oldest first.
type WeekBucket struct {
	Start time.Time
	End   time.Time

	Km             float64
	ElevationGainM float64
	ActivityCount  int

	// Tracked independently: the longest run by distance is not
	// necessarily the run with the most climbing.
	LongestRunKm         float64
	LongestRunElevationM float64
}

// WeekBuckets partitions activities into six trailing weekly buckets ending
// at now. Bucket j covers [now-(6-j)*7d, now-(5-j)*7d), so index 5 is the
// current week. Activities older than 42 days are dropped silently.
func WeekBuckets(activities []Activity, now time.Time) []WeekBucket {
	buckets := make([]WeekBucket, WeekCount)
	for j := range buckets {
		buckets[j].Start = now.AddDate(0, 0, -(WeekCount-j)*BucketDays)
		buckets[j].End = now.AddDate(0, 0, -(WeekCount-j-1)*BucketDays)
	}

	for _, a := range activities {
		for j := range buckets {
			b := &buckets[j]
			// Half-open [Start, End), except the newest bucket keeps its
			// upper bound so an activity stamped exactly "now" counts.
			inBucket := !a.Date.Before(b.Start) &&
				(a.Date.Before(b.End) || (j == WeekCount-1 && a.Date.Equal(now)))
			if !inBucket {
				continue
			}
			b.Km += a.DistanceKm
			b.ElevationGainM += a.ElevationGainM
			b.ActivityCount++
			if a.DistanceKm > b.LongestRunKm {
				b.LongestRunKm = a.DistanceKm
			}
			if a.ElevationGainM > b.LongestRunElevationM {
				b.LongestRunElevationM = a.ElevationGainM
			}
			break
		}
	}

	return buckets
}

// Aggregate derives runner metrics from an activity history. The reference
// instant is explicit so callers (and tests) control the bucket boundaries.
// An empty history yields zeroed metrics, not an error.
func Aggregate(activities []Activity, now time.Time) Metrics {
	buckets := WeekBuckets(activities, now)
	latest := buckets[WeekCount-1]
	previous := buckets[WeekCount-2]

	m := Metrics{
		KmPerWeek:                   latest.Km,
		ElevationGainPerWeek:        latest.ElevationGainM,
		LongRunDistanceKm:           latest.LongestRunKm,
		LongRunElevationM:           latest.LongestRunElevationM,
		TargetElevationGainPerWeekM: TargetWeeklyElevationGainM,
	}

	totalRuns := 0
	for _, b := range buckets {
		totalRuns += b.ActivityCount
	}
	m.Regularity = regularityFor(float64(totalRuns) / WeekCount)

	// Week-over-week variation of km + elevation; undefined (0) when the
	// previous week had no load.
	prevLoad := previous.Km + previous.ElevationGainM
	if prevLoad > 0 {
		m.LoadVariationPct = (latest.Km + latest.ElevationGainM - prevLoad) / prevLoad * 100
	}
	m.LoadDeltaPct = int(math.Round(m.LoadVariationPct))

	m.LoadScore = DistanceLoadWeight*latest.Km + ElevationLoadWeight*latest.ElevationGainM

	enrich(&m, activities, now)
	m.Recommendations = recommend(m)

	return m
}

func regularityFor(meanWeeklyRuns float64) Regularity {
	switch {
	case meanWeeklyRuns < RegularityMediumRuns:
		return RegularityLow
	case meanWeeklyRuns < RegularityGoodRuns:
		return RegularityMedium
	default:
		return RegularityGood
	}
}

// enrich fills the optional metric fields from whatever the activities in
// the 42-day window happen to carry. Absence of any of these never affects
// the required fields.
func enrich(m *Metrics, activities []Activity, now time.Time) {
	windowStart := now.AddDate(0, 0, -WindowDays)

	var (
		hrSum, hrN           float64
		cadSum, cadN         float64
		speedSum, speedN     float64
		sufferSum, sufferN   float64
		trailRuns, totalRuns float64
	)
	activeDays := make(map[string]bool)

	for _, a := range activities {
		if a.Date.Before(windowStart) || a.Date.After(now) {
			continue
		}
		totalRuns++
		activeDays[a.Date.Format("2006-01-02")] = true
		if a.AvgHeartrate != nil {
			hrSum += *a.AvgHeartrate
			hrN++
		}
		if a.AvgCadence != nil {
			cadSum += *a.AvgCadence
			cadN++
		}
		if a.AvgSpeedKmh != nil {
			speedSum += *a.AvgSpeedKmh
			speedN++
		} else if a.MovingTimeSec > 0 {
			speedSum += a.DistanceKm / (float64(a.MovingTimeSec) / 3600)
			speedN++
		}
		if a.SufferScore != nil {
			sufferSum += *a.SufferScore
			sufferN++
		}
		if strings.Contains(strings.ToLower(a.Type), "trail") {
			trailRuns++
		}
	}

	if hrN > 0 {
		v := hrSum / hrN
		m.AvgHeartrate = &v
	}
	if cadN > 0 {
		v := cadSum / cadN
		m.AvgCadence = &v
	}
	if speedN > 0 {
		v := speedSum / speedN
		m.AvgSpeedKmh = &v
	}
	if sufferN > 0 {
		v := sufferSum / sufferN
		m.SufferScore = &v
	}
	if totalRuns > 0 {
		rest := float64(WindowDays-len(activeDays)) / WindowDays
		m.RestDayRatio = &rest
		trail := trailRuns / totalRuns
		m.TrailRunRatio = &trail
	}
}

// recommend appends heuristic, non-normative training hints. The list
// always ends with a generic nutrition reminder.
func recommend(m Metrics) []string {
	var recs []string

	if m.Regularity == RegularityLow {
		recs = append(recs, "Run more consistently: aim for at least 2-3 outings per week")
	}
	if m.ElevationGainPerWeek < m.TargetElevationGainPerWeekM/2 {
		recs = append(recs, "Add climbing volume: hill repeats or a weekly vertical-focused session")
	}
	if m.LoadVariationPct > 30 {
		recs = append(recs, "Weekly load jumped sharply: consolidate before increasing again")
	} else if m.LoadVariationPct < -30 && m.LoadScore > 0 {
		recs = append(recs, "Training volume dropped: ease back in progressively")
	}
	if m.KmPerWeek >= 30 && m.LongRunDistanceKm < 15 {
		recs = append(recs, "Schedule a longer weekend run to build time on feet")
	}

	recs = append(recs, "Practice race-day nutrition and hydration on your long runs")
	return recs
}
