package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// UpsertActivity inserts or updates an activity
func (s *Store) UpsertActivity(a *Activity) error {
	_, err := s.db.Exec(`
		INSERT INTO activities (
			id, athlete_id, name, type, start_date,
			distance, moving_time, elapsed_time, total_elevation_gain,
			average_speed, average_heartrate, average_cadence, suffer_score, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			athlete_id = excluded.athlete_id,
			name = excluded.name,
			type = excluded.type,
			start_date = excluded.start_date,
			distance = excluded.distance,
			moving_time = excluded.moving_time,
			elapsed_time = excluded.elapsed_time,
			total_elevation_gain = excluded.total_elevation_gain,
			average_speed = excluded.average_speed,
			average_heartrate = excluded.average_heartrate,
			average_cadence = excluded.average_cadence,
			suffer_score = excluded.suffer_score,
			updated_at = CURRENT_TIMESTAMP
	`,
		a.ID, a.AthleteID, a.Name, a.Type, a.StartDate.Format(time.RFC3339),
		a.Distance, a.MovingTime, a.ElapsedTime, a.TotalElevationGain,
		a.AverageSpeed, a.AverageHeartrate, a.AverageCadence, a.SufferScore,
	)
	return err
}

// GetActivity retrieves an activity by ID
func (s *Store) GetActivity(id int64) (*Activity, error) {
	row := s.db.QueryRow(`
		SELECT id, athlete_id, name, type, start_date,
			distance, moving_time, elapsed_time, total_elevation_gain,
			average_speed, average_heartrate, average_cadence, suffer_score
		FROM activities
		WHERE id = ?
	`, id)

	a, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrActivityNotFound
	}
	return a, err
}

// ListActivitiesSince returns activities starting at or after the given
// time, oldest first.
func (s *Store) ListActivitiesSince(since time.Time) ([]Activity, error) {
	rows, err := s.db.Query(`
		SELECT id, athlete_id, name, type, start_date,
			distance, moving_time, elapsed_time, total_elevation_gain,
			average_speed, average_heartrate, average_cadence, suffer_score
		FROM activities
		WHERE start_date >= ?
		ORDER BY start_date ASC
	`, since.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectActivities(rows)
}

// ListRecentActivities returns the most recent activities, newest first
func (s *Store) ListRecentActivities(limit int) ([]Activity, error) {
	rows, err := s.db.Query(`
		SELECT id, athlete_id, name, type, start_date,
			distance, moving_time, elapsed_time, total_elevation_gain,
			average_speed, average_heartrate, average_cadence, suffer_score
		FROM activities
		ORDER BY start_date DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectActivities(rows)
}

// CountActivities returns the total number of activities
func (s *Store) CountActivities() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM activities`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*Activity, error) {
	var a Activity
	var startDate string
	var elevationGain, avgSpeed sql.NullFloat64

	err := row.Scan(
		&a.ID, &a.AthleteID, &a.Name, &a.Type, &startDate,
		&a.Distance, &a.MovingTime, &a.ElapsedTime, &elevationGain,
		&avgSpeed, &a.AverageHeartrate, &a.AverageCadence, &a.SufferScore,
	)
	if err != nil {
		return nil, err
	}

	a.StartDate, err = time.Parse(time.RFC3339, startDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date %q: %w", startDate, err)
	}
	a.TotalElevationGain = elevationGain.Float64
	a.AverageSpeed = avgSpeed.Float64

	return &a, nil
}

func collectActivities(rows *sql.Rows) ([]Activity, error) {
	var activities []Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}
	return activities, rows.Err()
}
