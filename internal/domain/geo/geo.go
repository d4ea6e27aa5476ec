// Package geo holds the great-circle math shared by geofence evaluation and session metrics.
// Points are orb.Point values, so X is longitude and Y is latitude.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMeters is the mean Earth radius used by every distance in the service.
const EarthRadiusMeters = 6371000.0

// Point builds an orb.Point from latitude and longitude.
func Point(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// HaversineMeters returns the great-circle distance between a and b.
func HaversineMeters(a, b orb.Point) float64 {
	lat1 := deg2rad(a.Lat())
	lat2 := deg2rad(b.Lat())
	dLat := lat2 - lat1
	dLng := deg2rad(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// Rounding can push h a hair above 1 for antipodal points.
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// SpeedKmh returns the implied speed for covering meters in seconds.
// A non-positive interval yields +Inf for any movement and 0 for none.
func SpeedKmh(meters, seconds float64) float64 {
	if seconds <= 0 {
		if meters > 0 {
			return math.Inf(1)
		}

		return 0
	}

	return (meters / 1000) / (seconds / 3600)
}

// Circle is a containment zone of RadiusMeters around Center.
type Circle struct {
	Center       orb.Point
	RadiusMeters float64
}

// Distance returns the haversine distance from the center to p.
func (c Circle) Distance(p orb.Point) float64 {
	return HaversineMeters(c.Center, p)
}

// Contains reports whether p lies within the radius, borders included, along with the distance.
// Callers always need the distance, so there is no bounding-box shortcut; a lat/lng box would
// also have to be split where the circle crosses the antimeridian.
func (c Circle) Contains(p orb.Point) (float64, bool) {
	d := c.Distance(p)

	return d, d <= c.RadiusMeters
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
