package usecase

import (
	"context"
	"time"

	"fieldtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationSampleInput is the ingestion contract shared by devices.
type LocationSampleInput struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Accuracy       *float64  `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	SpeedKmh       *float64  `json:"speed_kmh,omitempty" validate:"omitempty,gte=0"`
	HeadingDeg     *float64  `json:"heading_deg,omitempty" validate:"omitempty,gte=0,lte=360"`
	BatteryPct     *float64  `json:"battery_pct,omitempty" validate:"omitempty,gte=0,lte=100"`
	IsMockLocation bool      `json:"is_mock_location"`
	RecordedAt     time.Time `json:"recorded_at" validate:"required"`
}

// LocationBatchInput wraps an offline burst upload.
type LocationBatchInput struct {
	Samples []*LocationSampleInput `json:"samples" validate:"required,min=1,dive,required"`
}

// LocationUsecase defines the interface for location ingestion
type LocationUsecase interface {
	// Ingest validates and persists one sample verbatim.
	Ingest(ctx context.Context, userID uuid.UUID, input *LocationSampleInput) (*entity.LocationSample, error)

	// IngestBatch validates every sample first and persists all or none.
	IngestBatch(ctx context.Context, userID uuid.UUID, inputs []*LocationSampleInput) ([]*entity.LocationSample, error)

	// ListSamples returns the user's samples in [from, to], oldest first.
	ListSamples(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.LocationSample, error)
}
