package postgres

import (
	"context"
	"time"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sampleInsertBatchSize bounds the rows per INSERT statement for offline uploads.
const sampleInsertBatchSize = 200

type locationSampleRepository struct {
	db *gorm.DB
}

// NewLocationSampleRepository is the constructor for locationSampleRepository.
func NewLocationSampleRepository(db *gorm.DB) repository.LocationSampleRepository {
	return &locationSampleRepository{db: db}
}

func (repo *locationSampleRepository) CreateSample(ctx context.Context, sample *entity.LocationSample) error {
	sampleM := fromSampleDomain(sample)

	if err := repo.db.WithContext(ctx).Create(sampleM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create location sample")
	}
	sample.ID = sampleM.ID

	return nil
}

// CreateSamples inserts the batch atomically; CreateInBatches wraps the chunks in one transaction
// unless the caller already holds one.
func (repo *locationSampleRepository) CreateSamples(ctx context.Context, samples []*entity.LocationSample) error {
	if len(samples) == 0 {
		return nil
	}

	sampleModels := make([]*model.LocationSampleModel, 0, len(samples))
	for _, s := range samples {
		sampleModels = append(sampleModels, fromSampleDomain(s))
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(sampleModels, sampleInsertBatchSize).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create location samples")
	}

	for i, m := range sampleModels {
		samples[i].ID = m.ID
	}

	return nil
}

func (repo *locationSampleRepository) FindSamplesByUserInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.LocationSample, error) {
	var sampleModels []*model.LocationSampleModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND recorded_at BETWEEN ? AND ?", userID, from, to).
		Order("recorded_at ASC, received_at ASC").
		Find(&sampleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find location samples")
	}

	samples := make([]*entity.LocationSample, 0, len(sampleModels))
	for _, m := range sampleModels {
		samples = append(samples, toSampleDomain(m))
	}

	return samples, nil
}

// --- Mapper Functions ---

func toSampleDomain(data *model.LocationSampleModel) *entity.LocationSample {
	if data == nil {
		return nil
	}

	return &entity.LocationSample{
		ID:             data.ID,
		UserID:         data.UserID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Accuracy:       data.Accuracy,
		SpeedKmh:       data.SpeedKmh,
		HeadingDeg:     data.HeadingDeg,
		BatteryPct:     data.BatteryPct,
		IsMockLocation: data.IsMockLocation,
		Geohash:        data.Geohash,
		RecordedAt:     data.RecordedAt,
		ReceivedAt:     data.ReceivedAt,
	}
}

func fromSampleDomain(data *entity.LocationSample) *model.LocationSampleModel {
	if data == nil {
		return nil
	}

	return &model.LocationSampleModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Accuracy:       data.Accuracy,
		SpeedKmh:       data.SpeedKmh,
		HeadingDeg:     data.HeadingDeg,
		BatteryPct:     data.BatteryPct,
		IsMockLocation: data.IsMockLocation,
		Geohash:        data.Geohash,
		RecordedAt:     data.RecordedAt,
		ReceivedAt:     data.ReceivedAt,
	}
}
