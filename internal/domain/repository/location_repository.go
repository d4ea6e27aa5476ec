// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"fieldtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationSampleRepository stores the append-only stream of device positions.
type LocationSampleRepository interface {
	// CreateSample persists one sample and fills in its ID.
	CreateSample(ctx context.Context, sample *entity.LocationSample) error

	// CreateSamples persists a batch in a single statement.
	CreateSamples(ctx context.Context, samples []*entity.LocationSample) error

	// FindSamplesByUserInRange returns samples with RecordedAt in [from, to], ascending by RecordedAt.
	FindSamplesByUserInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.LocationSample, error)
}
