// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// LocationSample is one raw position reported by a field device.
// Samples are immutable and form an append-only sequence per user ordered by RecordedAt.
type LocationSample struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Accuracy       *float64  `json:"accuracy,omitempty"`    // Horizontal accuracy reported by the device, in meters.
	SpeedKmh       *float64  `json:"speed_kmh,omitempty"`   // Device-reported speed.
	HeadingDeg     *float64  `json:"heading_deg,omitempty"` // Device-reported bearing, 0-360.
	BatteryPct     *float64  `json:"battery_pct,omitempty"`
	IsMockLocation bool      `json:"is_mock_location"` // Client-reported and untrusted.
	Geohash        string    `json:"geohash"`
	RecordedAt     time.Time `json:"recorded_at"` // Device clock.
	ReceivedAt     time.Time `json:"received_at"` // Server clock.
}

// ValidCoordinate reports whether lat/lng lie on Earth.
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return math.Abs(lat) <= 90 && math.Abs(lng) <= 180
}

// AccuracyExceeds reports whether the sample's accuracy is known and worse than limit meters.
func (s *LocationSample) AccuracyExceeds(limit float64) bool {
	return s.Accuracy != nil && limit > 0 && *s.Accuracy > limit
}
