package usecase

import (
	"context"

	"fieldtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ScoreInput selects the user, route and inclusive date range (YYYY-MM-DD) to score.
type ScoreInput struct {
	UserID   uuid.UUID
	RouteID  uuid.UUID
	DateFrom string
	DateTo   string
}

// ComplianceUsecase scores completed visits against the published schedule
type ComplianceUsecase interface {
	Score(ctx context.Context, actor Actor, input *ScoreInput) (*entity.ComplianceScore, error)
	// Invalidate drops cached scores of the user; failures are logged, not returned.
	Invalidate(ctx context.Context, userID uuid.UUID)
}
