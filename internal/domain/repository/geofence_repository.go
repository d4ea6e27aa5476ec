package repository

import (
	"context"

	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/errors"

	"github.com/google/uuid"
)

// ErrGeofenceNotFound is returned when a PDV has no active geofence.
var ErrGeofenceNotFound = errors.New("active geofence not found")

// GeofenceRepository reads geofences owned by the configuration collaborator.
type GeofenceRepository interface {
	// FindActiveByPDV returns the single active geofence of a PDV.
	// Returns ErrGeofenceNotFound if none is active.
	FindActiveByPDV(ctx context.Context, pdvID uuid.UUID) (*entity.Geofence, error)
}
