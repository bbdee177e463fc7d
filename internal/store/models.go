package store

import "time"

// Auth represents OAuth tokens for Strava API access
type Auth struct {
	AthleteID    int64
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Activity represents a Strava activity summary
type Activity struct {
	ID                 int64
	AthleteID          int64
	Name               string
	Type               string
	StartDate          time.Time
	Distance           float64 // meters
	MovingTime         int     // seconds
	ElapsedTime        int     // seconds
	TotalElevationGain float64 // meters
	AverageSpeed       float64 // m/s
	AverageHeartrate   *float64
	AverageCadence     *float64
	SufferScore        *int
}

// FitImport is a summary parsed from a FIT file export
type FitImport struct {
	ID          string // uuid
	FileName    string
	DistanceKm  *float64
	DurationSec *float64
	AscentM     *float64
	ImportedAt  time.Time
}
