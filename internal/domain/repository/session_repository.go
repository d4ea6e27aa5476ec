package repository

import (
	"context"

	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for working session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("working session not found")
	// ErrOpenSessionConflict is returned when the user already has an active or paused session.
	ErrOpenSessionConflict = errors.New("user already has an open working session")
	// ErrSessionStatusChanged is returned by conditional updates when the stored status no longer matches.
	ErrSessionStatusChanged = errors.New("working session status changed")
)

// SessionRepository persists working sessions.
type SessionRepository interface {
	// CreateSession inserts an active session.
	// Returns ErrOpenSessionConflict when the user already has an open one.
	CreateSession(ctx context.Context, session *entity.WorkingSession) error

	// FindSessionByID returns a session or ErrSessionNotFound.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.WorkingSession, error)

	// FindOpenByUser returns the user's active or paused session or ErrSessionNotFound.
	FindOpenByUser(ctx context.Context, userID uuid.UUID) (*entity.WorkingSession, error)

	// UpdateSession saves the session only if its stored status equals expected.
	// Returns ErrSessionStatusChanged otherwise.
	UpdateSession(ctx context.Context, session *entity.WorkingSession, expected entity.SessionStatus) error

	// SaveMetrics persists computed metrics and clears the stale flag, provided the stored status
	// and ended_at still equal the session's. Returns ErrSessionStatusChanged otherwise.
	SaveMetrics(ctx context.Context, session *entity.WorkingSession) error

	// MarkMetricsStale flags the user's open session for recomputation.
	// It is a no-op when the user has no open session.
	MarkMetricsStale(ctx context.Context, userID uuid.UUID) error

	// FindStaleSessions returns up to limit sessions waiting for recomputation, oldest first.
	FindStaleSessions(ctx context.Context, limit int) ([]*entity.WorkingSession, error)
}
