// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"fieldtrack/config"
	deliverycontext "fieldtrack/internal/delivery/context"
	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/infra/metrics"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sampleGeohashPrecision gives cells of roughly 5 m.
const sampleGeohashPrecision = 9

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	SampleRepo repository.LocationSampleRepository
	Config     *config.Config
	Logger     *slog.Logger
}

type locationService struct {
	sampleRepo   repository.LocationSampleRepository
	maxBatchSize int
	logger       *slog.Logger
	now          func() time.Time
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	maxBatchSize := 0
	if params.Config != nil && params.Config.Tracking != nil {
		maxBatchSize = params.Config.Tracking.MaxBatchSize
	}

	return &locationService{
		sampleRepo:   params.SampleRepo,
		maxBatchSize: maxBatchSize,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Ingest persists one sample verbatim; the mock flag is stored, never acted upon.
func (srv *locationService) Ingest(ctx context.Context, userID uuid.UUID, input *usecase.LocationSampleInput) (*entity.LocationSample, error) {
	if !entity.ValidCoordinate(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails(coordinateDetails(input.Latitude, input.Longitude))
	}

	sample := srv.buildSample(userID, input)
	if err := srv.sampleRepo.CreateSample(ctx, sample); err != nil {
		return nil, errors.Wrap(err, "failed to create location sample")
	}

	metrics.RecordSamplesIngested(sample.IsMockLocation, 1)

	return sample, nil
}

// IngestBatch rejects the whole batch when any sample is invalid.
func (srv *locationService) IngestBatch(ctx context.Context, userID uuid.UUID, inputs []*usecase.LocationSampleInput) ([]*entity.LocationSample, error) {
	if len(inputs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("batch is empty")
	}
	if srv.maxBatchSize > 0 && len(inputs) > srv.maxBatchSize {
		return nil, domainerrors.ErrValidationFailed.WithDetails("batch exceeds the maximum size")
	}

	samples := make([]*entity.LocationSample, 0, len(inputs))
	mockCount := 0
	for i, input := range inputs {
		if input == nil || !entity.ValidCoordinate(input.Latitude, input.Longitude) {
			return nil, domainerrors.ErrInvalidCoordinate.WithDetails(batchIndexDetails(i))
		}
		sample := srv.buildSample(userID, input)
		if sample.IsMockLocation {
			mockCount++
		}
		samples = append(samples, sample)
	}

	if err := srv.sampleRepo.CreateSamples(ctx, samples); err != nil {
		return nil, errors.Wrap(err, "failed to create location samples")
	}

	srv.log(ctx).Debug("Location batch ingested", slog.Any("user_id", userID), slog.Int("count", len(samples)))
	metrics.RecordSamplesIngested(true, mockCount)
	metrics.RecordSamplesIngested(false, len(samples)-mockCount)

	return samples, nil
}

// ListSamples returns the user's samples ordered by recording time.
func (srv *locationService) ListSamples(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.LocationSample, error) {
	if to.Before(from) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from must not be after to")
	}

	samples, err := srv.sampleRepo.FindSamplesByUserInRange(ctx, userID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find location samples")
	}

	return samples, nil
}

func (srv *locationService) buildSample(userID uuid.UUID, input *usecase.LocationSampleInput) *entity.LocationSample {
	return &entity.LocationSample{
		ID:             uuid.New(),
		UserID:         userID,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Accuracy:       input.Accuracy,
		SpeedKmh:       input.SpeedKmh,
		HeadingDeg:     input.HeadingDeg,
		BatteryPct:     input.BatteryPct,
		IsMockLocation: input.IsMockLocation,
		Geohash:        geohash.EncodeWithPrecision(input.Latitude, input.Longitude, sampleGeohashPrecision),
		RecordedAt:     input.RecordedAt,
		ReceivedAt:     srv.now(),
	}
}
