package usecase

import (
	"context"

	"fieldtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// GeofenceUsecase decides whether a point lies within a PDV's active geofence
type GeofenceUsecase interface {
	Evaluate(ctx context.Context, pdvID uuid.UUID, lat, lng float64) (*entity.GeofenceEvaluation, error)
}
