package usecase

import (
	"context"

	"fieldtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// SessionLocationInput is the optional position recorded at a session boundary.
type SessionLocationInput struct {
	Latitude  *float64 `json:"latitude,omitempty" validate:"required_with=Longitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"required_with=Latitude"`
}

// SessionUsecase accumulates working-session metrics from the location stream
type SessionUsecase interface {
	// Lifecycle
	StartSession(ctx context.Context, userID uuid.UUID, input *SessionLocationInput) (*entity.WorkingSession, error)
	EndSession(ctx context.Context, userID, sessionID uuid.UUID, input *SessionLocationInput) (*entity.WorkingSession, error)
	PauseSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WorkingSession, error)
	ResumeSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WorkingSession, error)
	CancelSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WorkingSession, error)

	// Metrics
	RecomputeMetrics(ctx context.Context, sessionID uuid.UUID) (*entity.WorkingSession, error)
	RecomputeOpenSession(ctx context.Context, userID uuid.UUID) error
	RecomputeStale(ctx context.Context, limit int) (int, error)

	// Reads
	GetSession(ctx context.Context, actor Actor, sessionID uuid.UUID) (*entity.WorkingSession, error)
	GetActiveSession(ctx context.Context, userID uuid.UUID) (*entity.WorkingSession, error)
	SessionTrack(ctx context.Context, actor Actor, sessionID uuid.UUID) (*geojson.FeatureCollection, error)
}
