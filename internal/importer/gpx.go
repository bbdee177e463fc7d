package importer

import (
	"encoding/xml"
	"errors"
	"fmt"
	"math"
	"os"

	"trailready/internal/readiness"
)

// ErrNoTrackData is returned when a GPX file contains no usable points
var ErrNoTrackData = errors.New("no track data in GPX file")

// gpxFile mirrors the subset of the GPX schema we care about. Route and
// waypoint elements act as fallbacks for files without a track.
type gpxFile struct {
	XMLName xml.Name   `xml:"gpx"`
	Tracks  []gpxTrack `xml:"trk"`
	Routes  []gpxRoute `xml:"rte"`
	Wpts    []gpxPoint `xml:"wpt"`
}

type gpxTrack struct {
	Segments []gpxSegment `xml:"trkseg"`
}

type gpxSegment struct {
	Points []gpxPoint `xml:"trkpt"`
}

type gpxRoute struct {
	Points []gpxPoint `xml:"rtept"`
}

type gpxPoint struct {
	Lat float64 `xml:"lat,attr"`
	Lon float64 `xml:"lon,attr"`
	Ele float64 `xml:"ele"`
}

// ParseGPXProfile extracts a distance/elevation profile from GPX bytes.
// Distances are cumulative haversine kilometers rounded to two decimals,
// elevations are rounded meters. Fewer than two points is an error: no
// profile can be built from them.
func ParseGPXProfile(data []byte) (readiness.Profile, error) {
	var gpx gpxFile
	if err := xml.Unmarshal(data, &gpx); err != nil {
		return nil, fmt.Errorf("parsing GPX: %w", err)
	}

	points := collectPoints(gpx)
	if len(points) < 2 {
		return nil, ErrNoTrackData
	}

	profile := make(readiness.Profile, 0, len(points))
	var cumulativeKm float64
	prev := points[0]

	for i, pt := range points {
		if i > 0 {
			cumulativeKm += haversineKm(prev.Lat, prev.Lon, pt.Lat, pt.Lon)
		}
		profile = append(profile, readiness.Point{
			DistanceKm: math.Round(cumulativeKm*100) / 100,
			ElevationM: math.Round(pt.Ele),
		})
		prev = pt
	}

	return profile, nil
}

// ParseGPXFile reads and parses a GPX file from disk
func ParseGPXFile(path string) (readiness.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseGPXProfile(data)
}

// collectPoints prefers track points, then route points, then waypoints
func collectPoints(gpx gpxFile) []gpxPoint {
	var points []gpxPoint
	for _, trk := range gpx.Tracks {
		for _, seg := range trk.Segments {
			points = append(points, seg.Points...)
		}
	}
	if len(points) == 0 {
		for _, rte := range gpx.Routes {
			points = append(points, rte.Points...)
		}
	}
	if len(points) == 0 {
		points = gpx.Wpts
	}
	return points
}

// haversineKm is the great-circle distance between two coordinates
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371

	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}
