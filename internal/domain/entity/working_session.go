package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus is the state of an agent's working day.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionPaused    SessionStatus = "paused"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// IsOpen reports whether the session still accepts transitions.
func (s SessionStatus) IsOpen() bool {
	return s == SessionActive || s == SessionPaused
}

// WorkingSession is one field agent's work day, bounded by start/end location and time.
// At most one open (active or paused) session exists per user.
type WorkingSession struct {
	ID                   uuid.UUID     `json:"id"`
	UserID               uuid.UUID     `json:"user_id"`
	StartedAt            time.Time     `json:"started_at"`
	StartLat             *float64      `json:"start_lat,omitempty"`
	StartLng             *float64      `json:"start_lng,omitempty"`
	EndedAt              *time.Time    `json:"ended_at,omitempty"`
	EndLat               *float64      `json:"end_lat,omitempty"`
	EndLng               *float64      `json:"end_lng,omitempty"`
	TotalDistanceKm      *float64      `json:"total_distance_km,omitempty"`
	TotalPDVsVisited     int           `json:"total_pdvs_visited"`
	TotalDurationMinutes *int          `json:"total_duration_minutes,omitempty"`
	Status               SessionStatus `json:"status"`
	MetricsStale         bool          `json:"metrics_stale"`
	MetricsComputedAt    *time.Time    `json:"metrics_computed_at,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// WindowEnd is the upper bound of the session's sample window.
func (s *WorkingSession) WindowEnd(now time.Time) time.Time {
	if s.EndedAt != nil {
		return *s.EndedAt
	}

	return now
}

// SessionMetrics are the aggregates derived from the location stream and completed visits.
type SessionMetrics struct {
	TotalDistanceKm      float64 `json:"total_distance_km"`
	TotalPDVsVisited     int     `json:"total_pdvs_visited"`
	TotalDurationMinutes int     `json:"total_duration_minutes"`
	SegmentsKept         int     `json:"segments_kept"`
	SegmentsDiscarded    int     `json:"segments_discarded"`
}

// Apply copies the metrics onto the session and clears the stale flag.
func (s *WorkingSession) Apply(m SessionMetrics, at time.Time) {
	distance := m.TotalDistanceKm
	duration := m.TotalDurationMinutes
	s.TotalDistanceKm = &distance
	s.TotalPDVsVisited = m.TotalPDVsVisited
	s.TotalDurationMinutes = &duration
	s.MetricsStale = false
	s.MetricsComputedAt = &at
}
