package service

import (
	"context"
	"fmt"
	"time"

	"trailready/internal/store"
	"trailready/internal/strava"
)

// SyncService orchestrates syncing activity summaries from Strava
type SyncService struct {
	client *strava.Client
	store  *store.Store
}

// NewSyncService creates a new sync service
func NewSyncService(client *strava.Client, store *store.Store) *SyncService {
	return &SyncService{
		client: client,
		store:  store,
	}
}

// SyncProgress reports progress during sync
type SyncProgress struct {
	Fetched int
	Stored  int
	Error   error
}

// SyncResult contains the results of a sync operation
type SyncResult struct {
	ActivitiesFetched int
	ActivitiesStored  int
	RunsSkipped       int
	Errors            []error
}

// SyncActivities fetches activities added since the last sync and stores
// the runs among them. Non-running sports are skipped.
func (s *SyncService) SyncActivities(ctx context.Context, progress chan<- SyncProgress) (*SyncResult, error) {
	if progress != nil {
		defer close(progress)
	}

	result := &SyncResult{}

	lastSyncStr, _ := s.store.GetSyncState("last_activity_sync")
	var after time.Time
	if lastSyncStr != "" {
		after, _ = time.Parse(time.RFC3339, lastSyncStr)
	}

	page := 1
	perPage := 100

	for {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		activities, err := s.client.GetActivities(ctx, after, page, perPage)
		if err != nil {
			return result, fmt.Errorf("fetching page %d: %w", page, err)
		}
		if len(activities) == 0 {
			break
		}

		result.ActivitiesFetched += len(activities)

		for _, a := range activities {
			if !a.IsRun() {
				result.RunsSkipped++
				continue
			}
			if err := s.store.UpsertActivity(convertActivity(a)); err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("storing activity %d: %w", a.ID, err))
				continue
			}
			result.ActivitiesStored++
		}

		if progress != nil {
			progress <- SyncProgress{
				Fetched: result.ActivitiesFetched,
				Stored:  result.ActivitiesStored,
			}
		}

		if len(activities) < perPage {
			break // last page
		}
		page++
	}

	s.store.SetSyncState("last_activity_sync", time.Now().Format(time.RFC3339))

	return result, nil
}

// RateLimitStatus returns the current rate limit status from the client
func (s *SyncService) RateLimitStatus() (shortRemaining, dailyRemaining int) {
	return s.client.RateLimitStatus()
}

// convertActivity converts a Strava API activity to a store activity
func convertActivity(a strava.Activity) *store.Activity {
	activity := &store.Activity{
		ID:                 a.ID,
		AthleteID:          a.Athlete.ID,
		Name:               a.Name,
		Type:               activityType(a),
		StartDate:          a.StartDate,
		Distance:           a.Distance,
		MovingTime:         a.MovingTime,
		ElapsedTime:        a.ElapsedTime,
		TotalElevationGain: a.TotalElevationGain,
		AverageSpeed:       a.AverageSpeed,
	}

	if a.AverageHeartrate > 0 {
		activity.AverageHeartrate = &a.AverageHeartrate
	}
	if a.AverageCadence > 0 {
		activity.AverageCadence = &a.AverageCadence
	}
	if a.SufferScore > 0 {
		ss := a.SufferScore
		activity.SufferScore = &ss
	}

	return activity
}

// activityType prefers the finer-grained sport type when present, so trail
// runs survive the round trip through storage.
func activityType(a strava.Activity) string {
	if a.SportType != "" {
		return a.SportType
	}
	return a.Type
}
