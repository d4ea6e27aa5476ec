package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// metersPerDegreeLat is the length of one degree of latitude at EarthRadiusMeters.
const metersPerDegreeLat = EarthRadiusMeters * math.Pi / 180

var lima = Point(-12.0464, -77.0428)

func TestHaversineMeters_Zero(t *testing.T) {
	assert.Equal(t, 0.0, HaversineMeters(lima, lima))
}

func TestHaversineMeters_Symmetric(t *testing.T) {
	points := []struct{ lat, lng float64 }{
		{-12.0464, -77.0428},
		{40.7128, -74.0060},
		{51.5074, -0.1278},
		{-33.8688, 151.2093},
		{0, 179.9},
		{0, -179.9},
	}

	for _, a := range points {
		for _, b := range points {
			pa, pb := Point(a.lat, a.lng), Point(b.lat, b.lng)
			assert.InDelta(t, HaversineMeters(pa, pb), HaversineMeters(pb, pa), 1e-6)
		}
	}
}

func TestHaversineMeters_TriangleInequality(t *testing.T) {
	a := Point(-12.0464, -77.0428)
	b := Point(-12.0500, -77.0300)
	c := Point(-11.9000, -77.1000)

	ab := HaversineMeters(a, b)
	bc := HaversineMeters(b, c)
	ac := HaversineMeters(a, c)

	assert.LessOrEqual(t, ac, ab+bc+1e-6)
	assert.LessOrEqual(t, ab, ac+bc+1e-6)
	assert.LessOrEqual(t, bc, ab+ac+1e-6)
}

func TestHaversineMeters_KnownDistance(t *testing.T) {
	// One degree of latitude along a meridian.
	assert.InDelta(t, metersPerDegreeLat, HaversineMeters(Point(0, 0), Point(1, 0)), 0.001)
	// Antipodes are half the circumference apart.
	assert.InDelta(t, math.Pi*EarthRadiusMeters, HaversineMeters(Point(0, 0), Point(0, 180)), 0.001)
}

func TestCircleContains(t *testing.T) {
	fence := Circle{Center: lima, RadiusMeters: 50}

	tests := []struct {
		name       string
		offsetM    float64
		wantWithin bool
	}{
		{name: "15 m away", offsetM: 15, wantWithin: true},
		{name: "just inside", offsetM: 49.9, wantWithin: true},
		{name: "just outside", offsetM: 50.1, wantWithin: false},
		{name: "200 m away", offsetM: 200, wantWithin: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Point(lima.Lat()+tt.offsetM/metersPerDegreeLat, lima.Lon())

			d, within := fence.Contains(p)

			assert.InDelta(t, tt.offsetM, d, 0.01)
			assert.Equal(t, tt.wantWithin, within)
		})
	}
}

func TestCircleContains_AcrossAntimeridian(t *testing.T) {
	// A PDV in Fiji sits on the 180th meridian; readings on either side are meters apart.
	fence := Circle{Center: Point(-16.8, 179.9999), RadiusMeters: 50}

	tests := []struct {
		name       string
		p          [2]float64
		wantWithin bool
	}{
		{name: "west of the line", p: [2]float64{-16.8, -179.9999}, wantWithin: true},
		{name: "on the line", p: [2]float64{-16.8, 180}, wantWithin: true},
		{name: "same side", p: [2]float64{-16.8, 179.9998}, wantWithin: true},
		{name: "far west", p: [2]float64{-16.8, -179.999}, wantWithin: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Point(tt.p[0], tt.p[1])

			d, within := fence.Contains(p)

			assert.InDelta(t, HaversineMeters(fence.Center, p), d, 1e-9)
			assert.Equal(t, tt.wantWithin, within)
		})
	}
}

func TestCircleContains_NearPole(t *testing.T) {
	fence := Circle{Center: Point(89.9999, 0), RadiusMeters: 50}

	// Longitude is almost meaningless this close to the pole.
	d, within := fence.Contains(Point(89.9999, 170))

	assert.Less(t, d, 25.0)
	assert.True(t, within)
}

func TestSpeedKmh(t *testing.T) {
	assert.InDelta(t, 300.0, SpeedKmh(5000, 60), 1e-9)
	assert.InDelta(t, 36.0, SpeedKmh(10, 1), 1e-9)
	assert.True(t, math.IsInf(SpeedKmh(1, 0), 1))
	assert.Equal(t, 0.0, SpeedKmh(0, 0))
}
