// Package importer converts workout and route files into the value types
// the readiness models consume. It never touches the network or the
// database; callers hand it raw file bytes.
package importer

import (
	"bytes"
	"fmt"
	"os"

	"github.com/tormoder/fit"

	"trailready/internal/readiness"
)

// ParseFitSummary decodes a FIT file and reduces its first session to the
// summary the metrics fuser understands. Fields the device didn't record
// stay nil.
func ParseFitSummary(data []byte) (readiness.FitSummary, error) {
	var summary readiness.FitSummary

	fitFile, err := fit.Decode(bytes.NewReader(data))
	if err != nil {
		return summary, fmt.Errorf("decoding FIT file: %w", err)
	}

	activity, err := fitFile.Activity()
	if err != nil {
		return summary, fmt.Errorf("reading FIT activity: %w", err)
	}
	if len(activity.Sessions) == 0 {
		return summary, fmt.Errorf("no sessions in FIT file")
	}

	session := activity.Sessions[0]

	if d := session.GetTotalDistanceScaled(); d > 0 {
		km := d / 1000 // meters to km
		summary.DistanceKm = &km
	}
	if t := session.GetTotalTimerTimeScaled(); t > 0 {
		secs := t
		summary.DurationSec = &secs
	}
	if session.TotalAscent != 0xFFFF { // FIT invalid marker
		ascent := float64(session.TotalAscent)
		summary.AscentM = &ascent
	}

	return summary, nil
}

// ParseFitFile reads and parses a FIT file from disk
func ParseFitFile(path string) (readiness.FitSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return readiness.FitSummary{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseFitSummary(data)
}
