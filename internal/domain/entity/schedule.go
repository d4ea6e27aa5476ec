package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledVisitDate is a published date on which a route must be worked.
// Unique per (RouteID, VisitDate); supplied by the schedule collaborator.
type ScheduledVisitDate struct {
	ID        uuid.UUID `json:"id"`
	RouteID   uuid.UUID `json:"route_id"`
	VisitDate time.Time `json:"visit_date"`
	IsActive  bool      `json:"is_active"`
}

// ComplianceScore compares completed visits with the published schedule.
// Percentage is nil when no schedule is published for the range.
type ComplianceScore struct {
	UserID          uuid.UUID `json:"user_id"`
	RouteID         uuid.UUID `json:"route_id"`
	DateFrom        string    `json:"date_from"`
	DateTo          string    `json:"date_to"`
	ProgrammedCount int       `json:"programmed_count"`
	VisitedCount    int       `json:"visited_count"`
	Percentage      *float64  `json:"percentage"`
}

// ScheduleDefined reports whether any visit date was published for the range.
func (c *ComplianceScore) ScheduleDefined() bool {
	return c.ProgrammedCount > 0
}
