package service

import (
	"context"

	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/errors"

	"github.com/google/uuid"
)

// ErrCacheMiss is returned by ComplianceCache.Get when nothing is cached for the key.
var ErrCacheMiss = errors.New("compliance cache miss")

// ComplianceCacheKey identifies one cached score. Version is the user's cache
// generation, filled in by Pin.
type ComplianceCacheKey struct {
	UserID   uuid.UUID
	RouteID  uuid.UUID
	DateFrom string
	DateTo   string
	Version  int64
}

// ComplianceCache stores computed compliance scores until the user's visits change.
type ComplianceCache interface {
	// Pin returns key bound to the user's current cache generation. Get and Set use the
	// pinned generation, so a score computed before an Invalidate is never readable after it.
	Pin(ctx context.Context, key ComplianceCacheKey) (ComplianceCacheKey, error)

	// Get returns a cached score or ErrCacheMiss.
	Get(ctx context.Context, key ComplianceCacheKey) (*entity.ComplianceScore, error)

	// Set stores a score under the key's pinned generation.
	Set(ctx context.Context, key ComplianceCacheKey, score *entity.ComplianceScore) error

	// Invalidate drops every cached score of the user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
