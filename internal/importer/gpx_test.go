package importer

import (
	"errors"
	"math"
	"testing"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>Col du Test</name>
    <trkseg>
      <trkpt lat="45.0000" lon="6.0000"><ele>1500.2</ele></trkpt>
      <trkpt lat="45.0090" lon="6.0000"><ele>1580.7</ele></trkpt>
      <trkpt lat="45.0180" lon="6.0000"><ele>1655.0</ele></trkpt>
    </trkseg>
  </trk>
</gpx>`

const routeOnlyGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <rte>
    <rtept lat="45.0" lon="6.0"><ele>1000</ele></rtept>
    <rtept lat="45.01" lon="6.0"><ele>1100</ele></rtept>
  </rte>
</gpx>`

func TestParseGPXProfile(t *testing.T) {
	profile, err := ParseGPXProfile([]byte(sampleGPX))
	if err != nil {
		t.Fatalf("ParseGPXProfile() error = %v", err)
	}

	if len(profile) != 3 {
		t.Fatalf("expected 3 points, got %d", len(profile))
	}

	if profile[0].DistanceKm != 0 {
		t.Errorf("first point distance = %v, want 0", profile[0].DistanceKm)
	}
	if profile[0].ElevationM != 1500 {
		t.Errorf("first point elevation = %v, want 1500 (rounded)", profile[0].ElevationM)
	}

	// 0.009 degrees of latitude is almost exactly 1 km
	if math.Abs(profile[1].DistanceKm-1.0) > 0.05 {
		t.Errorf("second point distance = %v, want ~1.0", profile[1].DistanceKm)
	}
	if profile[1].ElevationM != 1581 {
		t.Errorf("second point elevation = %v, want 1581", profile[1].ElevationM)
	}

	// Distances are cumulative and increasing
	for i := 1; i < len(profile); i++ {
		if profile[i].DistanceKm <= profile[i-1].DistanceKm {
			t.Errorf("distance not increasing at point %d: %v <= %v",
				i, profile[i].DistanceKm, profile[i-1].DistanceKm)
		}
	}
}

func TestParseGPXProfileRouteFallback(t *testing.T) {
	profile, err := ParseGPXProfile([]byte(routeOnlyGPX))
	if err != nil {
		t.Fatalf("ParseGPXProfile() error = %v", err)
	}
	if len(profile) != 2 {
		t.Fatalf("expected 2 points from route fallback, got %d", len(profile))
	}
}

func TestParseGPXProfileErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty gpx", `<?xml version="1.0"?><gpx></gpx>`},
		{"single point", `<?xml version="1.0"?><gpx><trk><trkseg><trkpt lat="45" lon="6"><ele>100</ele></trkpt></trkseg></trk></gpx>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGPXProfile([]byte(tt.data))
			if !errors.Is(err, ErrNoTrackData) {
				t.Errorf("error = %v, want ErrNoTrackData", err)
			}
		})
	}

	if _, err := ParseGPXProfile([]byte("not xml at all{")); err == nil {
		t.Error("expected parse error for malformed input")
	}
}

func TestHaversineKm(t *testing.T) {
	// One degree of latitude is ~111.2 km
	d := haversineKm(45, 6, 46, 6)
	if math.Abs(d-111.2) > 0.5 {
		t.Errorf("haversineKm one degree latitude = %v, want ~111.2", d)
	}

	if d := haversineKm(45, 6, 45, 6); d != 0 {
		t.Errorf("identical points distance = %v, want 0", d)
	}
}
