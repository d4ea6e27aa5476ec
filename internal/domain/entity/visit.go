package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// VisitStatus is the state of a visit's check-in/check-out lifecycle.
type VisitStatus string

const (
	VisitInProgress VisitStatus = "in_progress"
	VisitCompleted  VisitStatus = "completed"
	VisitCancelled  VisitStatus = "cancelled"
)

// IsTerminal reports whether no transition leaves the status.
func (s VisitStatus) IsTerminal() bool {
	return s == VisitCompleted || s == VisitCancelled
}

// Visit is one check-in/check-out episode by a user at a PDV.
// CheckOutAt is set if and only if Status is VisitCompleted.
type Visit struct {
	ID                  uuid.UUID   `json:"id"`
	UserID              uuid.UUID   `json:"user_id"`
	PDVID               uuid.UUID   `json:"pdv_id"`
	SessionID           *uuid.UUID  `json:"session_id,omitempty"`
	CheckInAt           time.Time   `json:"check_in_at"`
	CheckInLat          float64     `json:"check_in_lat"`
	CheckInLng          float64     `json:"check_in_lng"`
	DistanceToPDVMeters float64     `json:"distance_to_pdv_meters"`
	UsedMockLocation    bool        `json:"used_mock_location"`
	GeofenceConfigured  bool        `json:"geofence_configured"`
	IsValid             bool        `json:"is_valid"`
	CheckOutAt          *time.Time  `json:"check_out_at,omitempty"`
	DurationMinutes     *int        `json:"duration_minutes,omitempty"`
	Status              VisitStatus `json:"status"`
	Notes               *string     `json:"notes,omitempty"`
	AttachmentsRef      *string     `json:"attachments_ref,omitempty"` // Opaque pointer into the visit-form engine.
	CancelReason        *string     `json:"cancel_reason,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// CheckInValid is the integrity rule for a check-in: inside the fence and not a mock location.
func CheckInValid(withinRadius, usedMockLocation bool) bool {
	return withinRadius && !usedMockLocation
}

// DurationMinutesBetween rounds the elapsed time to whole minutes.
func DurationMinutesBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Seconds() / 60))
}

// Complete moves an in-progress visit to completed at the given instant.
func (v *Visit) Complete(at time.Time, notes, attachmentsRef *string) bool {
	if v.Status != VisitInProgress {
		return false
	}

	duration := DurationMinutesBetween(v.CheckInAt, at)
	v.CheckOutAt = &at
	v.DurationMinutes = &duration
	v.Status = VisitCompleted
	v.Notes = notes
	v.AttachmentsRef = attachmentsRef
	v.UpdatedAt = at

	return true
}

// Cancel moves an in-progress visit to cancelled.
func (v *Visit) Cancel(at time.Time, reason string) bool {
	if v.Status != VisitInProgress {
		return false
	}

	v.Status = VisitCancelled
	if reason != "" {
		v.CancelReason = &reason
	}
	v.UpdatedAt = at

	return true
}
