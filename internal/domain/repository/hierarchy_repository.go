package repository

import (
	"context"

	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/errors"

	"github.com/google/uuid"
)

// ErrPDVNotFound is returned when the hierarchy has no such PDV.
var ErrPDVNotFound = errors.New("pdv not found")

// HierarchyRepository is the read-only view of the business hierarchy the core scopes against.
type HierarchyRepository interface {
	// FindPDVByID returns a PDV or ErrPDVNotFound.
	FindPDVByID(ctx context.Context, pdvID uuid.UUID) (*entity.PDV, error)

	// FindPDVByCode resolves the code printed on a PDV label.
	FindPDVByCode(ctx context.Context, code string) (*entity.PDV, error)

	// IsUserAssignedToRoute reports whether the user has an active assignment to the route.
	IsUserAssignedToRoute(ctx context.Context, userID, routeID uuid.UUID) (bool, error)
}
