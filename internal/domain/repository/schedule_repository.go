package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ScheduleRepository reads the published visit calendar.
type ScheduleRepository interface {
	// CountActiveVisitDates counts active scheduled dates of the route within [from, to], inclusive.
	CountActiveVisitDates(ctx context.Context, routeID uuid.UUID, from, to time.Time) (int, error)
}
