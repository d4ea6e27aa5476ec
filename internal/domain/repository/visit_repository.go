package repository

import (
	"context"
	"time"

	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for visit persistence.
var (
	// ErrVisitNotFound is returned when a visit is not found.
	ErrVisitNotFound = errors.New("visit not found")
	// ErrVisitInProgressConflict is returned when the user already holds an in-progress visit.
	ErrVisitInProgressConflict = errors.New("user already has a visit in progress")
	// ErrVisitNotInProgress is returned by conditional updates when the visit left in_progress meanwhile.
	ErrVisitNotInProgress = errors.New("visit is not in progress")
)

// VisitRepository persists visits.
type VisitRepository interface {
	// CreateVisit inserts an in-progress visit.
	// Returns ErrVisitInProgressConflict when the user already has one.
	CreateVisit(ctx context.Context, visit *entity.Visit) error

	// FindVisitByID returns a visit or ErrVisitNotFound.
	FindVisitByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error)

	// FindInProgressByUser returns the user's in-progress visit or ErrVisitNotFound.
	FindInProgressByUser(ctx context.Context, userID uuid.UUID) (*entity.Visit, error)

	// FindVisitsByUserInRange lists visits with CheckInAt in [from, to], newest first.
	FindVisitsByUserInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Visit, error)

	// CompleteVisit writes the checkout fields only while the visit is still in progress.
	// Returns ErrVisitNotInProgress when another transition won.
	CompleteVisit(ctx context.Context, visit *entity.Visit) error

	// CancelVisit writes the cancellation only while the visit is still in progress.
	// Returns ErrVisitNotInProgress when another transition won.
	CancelVisit(ctx context.Context, visit *entity.Visit) error

	// CountDistinctValidPDVs counts distinct PDVs with a completed, valid visit by the user
	// whose CheckInAt falls in [from, to].
	CountDistinctValidPDVs(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)

	// CountDistinctValidPDVsOnRoute is CountDistinctValidPDVs restricted to PDVs of one route.
	CountDistinctValidPDVsOnRoute(ctx context.Context, userID, routeID uuid.UUID, from, to time.Time) (int, error)
}
