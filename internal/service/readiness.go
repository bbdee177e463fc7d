package service

import (
	"fmt"
	"time"

	"trailready/internal/config"
	"trailready/internal/importer"
	"trailready/internal/readiness"
	"trailready/internal/store"
)

// ReadinessService derives training readiness from stored activities and
// imported workout files. It owns no state beyond its collaborators; every
// report is computed fresh from storage.
type ReadinessService struct {
	store *store.Store
	cfg   *config.Config
}

// NewReadinessService creates a new readiness service
func NewReadinessService(st *store.Store, cfg *config.Config) *ReadinessService {
	return &ReadinessService{store: st, cfg: cfg}
}

// Report is the full readiness picture for the dashboard
type Report struct {
	Metrics *readiness.Metrics
	Buckets []readiness.WeekBucket

	Balance            int
	BalanceApproximate bool // true when derived from metrics instead of the activity log
	BalanceDescription string

	Recent []store.Activity
}

// BuildReport aggregates the trailing training window into a readiness
// report. The reference instant is injected so reports are reproducible.
func (s *ReadinessService) BuildReport(now time.Time) (*Report, error) {
	windowStart := now.AddDate(0, 0, -readiness.WindowDays)
	rows, err := s.store.ListActivitiesSince(windowStart)
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}

	activities := make([]readiness.Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, toReadinessActivity(row))
	}

	report := &Report{}

	var metrics *readiness.Metrics
	if len(activities) > 0 {
		m := readiness.Aggregate(activities, now)
		metrics = &m
		report.Buckets = readiness.WeekBuckets(activities, now)
	}

	// Fold in imported FIT summaries; they can synthesize metrics on
	// their own when the activity log is empty.
	summaries, err := s.loadFitSummaries()
	if err != nil {
		return nil, err
	}
	report.Metrics = readiness.MergeMetrics(metrics, summaries)

	if len(activities) > 0 {
		report.Balance = readiness.BalanceFromActivities(activities, now)
	} else {
		report.Balance = readiness.BalanceFromMetrics(report.Metrics)
		report.BalanceApproximate = true
	}
	report.BalanceDescription = readiness.BalanceDescription(report.Balance)

	recent, err := s.store.ListRecentActivities(5)
	if err != nil {
		return nil, fmt.Errorf("loading recent activities: %w", err)
	}
	report.Recent = recent

	return report, nil
}

// Estimate predicts the configured race's finish time using the current
// training metrics.
func (s *ReadinessService) Estimate(now time.Time) (readiness.TimeEstimate, error) {
	report, err := s.BuildReport(now)
	if err != nil {
		return readiness.TimeEstimate{}, err
	}
	return readiness.EstimateTime(s.estimateParams(), report.Metrics), nil
}

// CourseReport is the race course analyzed against the runner's capacity
type CourseReport struct {
	Profile  readiness.Profile
	Segments []readiness.Segment
	Zones    []readiness.Zone
	Estimate readiness.TimeEstimate
}

// AnalyzeCourse loads the configured GPX track and classifies it against
// the runner's current metrics.
func (s *ReadinessService) AnalyzeCourse(now time.Time) (*CourseReport, error) {
	if s.cfg.Race.GPXPath == "" {
		return nil, fmt.Errorf("no GPX path configured (set race.gpx_path)")
	}

	profile, err := importer.ParseGPXFile(s.cfg.Race.GPXPath)
	if err != nil {
		return nil, fmt.Errorf("loading course: %w", err)
	}

	report, err := s.BuildReport(now)
	if err != nil {
		return nil, err
	}

	distanceKm := s.cfg.Race.DistanceKm
	elevationM := s.cfg.Race.ElevationGainM
	if distanceKm <= 0 {
		distanceKm = profile.TotalDistanceKm()
	}
	if elevationM <= 0 {
		elevationM = profile.TotalElevationGainM()
	}

	return &CourseReport{
		Profile:  profile,
		Segments: readiness.ClassifyProfile(profile),
		Zones:    readiness.AnalyzeZones(profile, report.Metrics, distanceKm, elevationM),
		Estimate: readiness.EstimateTime(s.estimateParams(), report.Metrics),
	}, nil
}

// estimateParams builds estimate inputs from the race and runner config
func (s *ReadinessService) estimateParams() readiness.EstimateParams {
	p := readiness.NewEstimateParams(s.cfg.Race.DistanceKm, s.cfg.Race.ElevationGainM)
	p.TemperatureC = s.cfg.Race.TemperatureC
	p.BagWeightKg = s.cfg.Race.BagWeightKg
	p.RefuelStops = s.cfg.Race.RefuelStops
	if s.cfg.Race.RefuelMinutesPerStop > 0 {
		p.RefuelMinutesPerStop = s.cfg.Race.RefuelMinutesPerStop
	}
	if s.cfg.Runner.FitnessPct > 0 {
		p.FitnessPct = s.cfg.Runner.FitnessPct
	}
	if s.cfg.Runner.DescentTechnicality != "" {
		p.Technicality = readiness.DescentTechnicality(s.cfg.Runner.DescentTechnicality)
	}
	return p
}

// loadFitSummaries converts the most recent stored imports into the value
// type the fuser consumes
func (s *ReadinessService) loadFitSummaries() ([]readiness.FitSummary, error) {
	imports, err := s.store.ListFitImports(readiness.MaxFusedSummaries)
	if err != nil {
		return nil, fmt.Errorf("loading fit imports: %w", err)
	}
	summaries := make([]readiness.FitSummary, 0, len(imports))
	for _, imp := range imports {
		summaries = append(summaries, readiness.FitSummary{
			DistanceKm:  imp.DistanceKm,
			DurationSec: imp.DurationSec,
			AscentM:     imp.AscentM,
		})
	}
	return summaries, nil
}

// toReadinessActivity converts a stored row into the model's value type.
// Distances move from meters to kilometers here; the models never see
// Strava units.
func toReadinessActivity(a store.Activity) readiness.Activity {
	out := readiness.Activity{
		ID:             a.ID,
		Date:           a.StartDate,
		DistanceKm:     a.Distance / 1000,
		ElevationGainM: a.TotalElevationGain,
		MovingTimeSec:  a.MovingTime,
		Type:           a.Type,
		AvgHeartrate:   a.AverageHeartrate,
		AvgCadence:     a.AverageCadence,
	}
	if a.AverageSpeed > 0 {
		kmh := a.AverageSpeed * 3.6
		out.AvgSpeedKmh = &kmh
	}
	if a.SufferScore != nil {
		ss := float64(*a.SufferScore)
		out.SufferScore = &ss
	}
	return out
}
