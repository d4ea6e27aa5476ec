package impl

import (
	"math/rand/v2"
	"testing"
	"time"

	"fieldtrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

var defaultPlausibility = plausibility{maxSpeedKmh: 120, maxAccuracyMeters: 50}

func sampleAt(lat, lng float64, at time.Time, accuracy *float64) *entity.LocationSample {
	return &entity.LocationSample{Latitude: lat, Longitude: lng, RecordedAt: at, Accuracy: accuracy}
}

func TestAccumulateDistance_DiscardsImplausibleSpeed(t *testing.T) {
	// 5 km in one minute implies 300 km/h.
	samples := []*entity.LocationSample{
		sampleAt(limaLat, limaLng, fixedNow, nil),
		sampleAt(limaLat+5000/metersPerDegreeLat, limaLng, fixedNow.Add(time.Minute), nil),
	}

	res := accumulateDistance(samples, defaultPlausibility)

	assert.Zero(t, res.meters)
	assert.Equal(t, 0, res.kept)
	assert.Equal(t, 1, res.discarded)
}

func TestAccumulateDistance_SumsPlausibleSegments(t *testing.T) {
	// Walking 100 m per minute.
	samples := []*entity.LocationSample{
		sampleAt(limaLat, limaLng, fixedNow, floatPtr(5)),
		sampleAt(limaLat+100/metersPerDegreeLat, limaLng, fixedNow.Add(time.Minute), floatPtr(5)),
		sampleAt(limaLat+200/metersPerDegreeLat, limaLng, fixedNow.Add(2*time.Minute), nil),
	}

	res := accumulateDistance(samples, defaultPlausibility)

	assert.InDelta(t, 200, res.meters, 0.01)
	assert.Equal(t, 2, res.kept)
}

func TestAccumulateDistance_DiscardsPoorAccuracy(t *testing.T) {
	samples := []*entity.LocationSample{
		sampleAt(limaLat, limaLng, fixedNow, floatPtr(5)),
		sampleAt(limaLat+100/metersPerDegreeLat, limaLng, fixedNow.Add(time.Minute), floatPtr(80)),
		sampleAt(limaLat+200/metersPerDegreeLat, limaLng, fixedNow.Add(2*time.Minute), floatPtr(5)),
	}

	res := accumulateDistance(samples, defaultPlausibility)

	assert.Zero(t, res.meters)
	assert.Equal(t, 2, res.discarded)
}

func TestAccumulateDistance_SameInstantMovementIsImplausible(t *testing.T) {
	samples := []*entity.LocationSample{
		sampleAt(limaLat, limaLng, fixedNow, nil),
		sampleAt(limaLat+10/metersPerDegreeLat, limaLng, fixedNow, nil),
		sampleAt(limaLat+10/metersPerDegreeLat, limaLng, fixedNow, nil),
	}

	res := accumulateDistance(samples, defaultPlausibility)

	assert.Zero(t, res.meters)
	assert.Equal(t, 1, res.discarded)
	assert.Equal(t, 1, res.kept)
}

func TestAccumulateDistance_EmptyAndSingle(t *testing.T) {
	assert.Zero(t, accumulateDistance(nil, defaultPlausibility).meters)
	assert.Zero(t, accumulateDistance([]*entity.LocationSample{sampleAt(1, 1, fixedNow, nil)}, defaultPlausibility).meters)
}

func TestAccumulateDistance_MonotoneAndNonNegative(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	at := fixedNow
	lat, lng := limaLat, limaLng
	samples := make([]*entity.LocationSample, 0, 200)

	prev := 0.0
	for range 200 {
		at = at.Add(time.Duration(rng.IntN(120)) * time.Second)
		lat += (rng.Float64() - 0.5) / 500
		lng += (rng.Float64() - 0.5) / 500
		samples = append(samples, sampleAt(lat, lng, at, floatPtr(rng.Float64()*80)))

		res := accumulateDistance(samples, defaultPlausibility)
		assert.GreaterOrEqual(t, res.meters, 0.0)
		assert.GreaterOrEqual(t, res.meters, prev)
		prev = res.meters
	}
}
