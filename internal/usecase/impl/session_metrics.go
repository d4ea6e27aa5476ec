package impl

import (
	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/domain/geo"
)

// plausibility holds the thresholds a segment must satisfy to count toward distance.
type plausibility struct {
	maxSpeedKmh       float64
	maxAccuracyMeters float64
}

// distanceResult is the outcome of walking an ordered sample sequence.
type distanceResult struct {
	meters    float64
	kept      int
	discarded int
}

// accumulateDistance sums the haversine length of every plausible consecutive segment.
// A segment is dropped when either endpoint reports a poor accuracy or the implied speed is too high.
// Samples must be ordered by RecordedAt.
func accumulateDistance(samples []*entity.LocationSample, p plausibility) distanceResult {
	var res distanceResult
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]

		if prev.AccuracyExceeds(p.maxAccuracyMeters) || cur.AccuracyExceeds(p.maxAccuracyMeters) {
			res.discarded++

			continue
		}

		meters := geo.HaversineMeters(geo.Point(prev.Latitude, prev.Longitude), geo.Point(cur.Latitude, cur.Longitude))
		seconds := cur.RecordedAt.Sub(prev.RecordedAt).Seconds()
		if geo.SpeedKmh(meters, seconds) > p.maxSpeedKmh {
			res.discarded++

			continue
		}

		res.meters += meters
		res.kept++
	}

	return res
}
