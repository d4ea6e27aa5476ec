package impl

import (
	"context"
	"testing"
	"time"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	mockRepo "fieldtrack/internal/mocks/repository"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLocationService(t *testing.T) (*locationService, *mockRepo.MockLocationSampleRepository) {
	sampleRepo := mockRepo.NewMockLocationSampleRepository(t)

	srv := NewLocationService(LocationServiceParams{
		SampleRepo: sampleRepo,
		Config:     testConfig(),
		Logger:     discardLogger(),
	}).(*locationService)
	srv.now = func() time.Time { return fixedNow }

	return srv, sampleRepo
}

func TestLocationService_Ingest_PersistsVerbatim(t *testing.T) {
	srv, sampleRepo := createTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	recordedAt := fixedNow.Add(-time.Minute)
	input := &usecase.LocationSampleInput{
		Latitude:       -12.0464,
		Longitude:      -77.0428,
		Accuracy:       floatPtr(8),
		IsMockLocation: true,
		RecordedAt:     recordedAt,
	}

	sampleRepo.EXPECT().
		CreateSample(ctx, mock.MatchedBy(func(s *entity.LocationSample) bool {
			return s.UserID == userID && s.IsMockLocation && s.Latitude == input.Latitude && s.RecordedAt.Equal(recordedAt)
		})).
		Return(nil)

	sample, err := srv.Ingest(ctx, userID, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sample.ID)
	assert.True(t, sample.IsMockLocation)
	assert.Len(t, sample.Geohash, sampleGeohashPrecision)
	assert.Equal(t, fixedNow, sample.ReceivedAt)
}

func TestLocationService_Ingest_InvalidCoordinate(t *testing.T) {
	srv, _ := createTestLocationService(t)

	tests := []struct {
		name     string
		lat, lng float64
	}{
		{name: "latitude above 90", lat: 90.5, lng: 0},
		{name: "latitude below -90", lat: -91, lng: 0},
		{name: "longitude above 180", lat: 0, lng: 181},
		{name: "longitude below -180", lat: 0, lng: -180.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.Ingest(context.Background(), uuid.New(), &usecase.LocationSampleInput{
				Latitude:   tt.lat,
				Longitude:  tt.lng,
				RecordedAt: fixedNow,
			})

			assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
		})
	}
}

func TestLocationService_Ingest_AcceptsDuplicateTimestamps(t *testing.T) {
	srv, sampleRepo := createTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LocationSampleInput{Latitude: 1, Longitude: 1, RecordedAt: fixedNow}

	sampleRepo.EXPECT().CreateSample(ctx, mock.Anything).Return(nil).Times(2)

	first, err := srv.Ingest(ctx, userID, input)
	require.NoError(t, err)
	second, err := srv.Ingest(ctx, userID, input)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestLocationService_Ingest_RepositoryError(t *testing.T) {
	srv, sampleRepo := createTestLocationService(t)
	ctx := context.Background()

	sampleRepo.EXPECT().CreateSample(ctx, mock.Anything).Return(errors.New("db down"))

	_, err := srv.Ingest(ctx, uuid.New(), &usecase.LocationSampleInput{Latitude: 1, Longitude: 1, RecordedAt: fixedNow})

	assert.ErrorContains(t, err, "db down")
}

func TestLocationService_IngestBatch(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("persists all samples at once", func(t *testing.T) {
		srv, sampleRepo := createTestLocationService(t)
		inputs := []*usecase.LocationSampleInput{
			{Latitude: 1, Longitude: 1, RecordedAt: fixedNow},
			{Latitude: 1.001, Longitude: 1, RecordedAt: fixedNow.Add(time.Second), IsMockLocation: true},
		}

		sampleRepo.EXPECT().
			CreateSamples(ctx, mock.MatchedBy(func(s []*entity.LocationSample) bool { return len(s) == 2 })).
			Return(nil)

		samples, err := srv.IngestBatch(ctx, userID, inputs)

		require.NoError(t, err)
		assert.Len(t, samples, 2)
	})

	t.Run("one invalid sample rejects the batch", func(t *testing.T) {
		srv, _ := createTestLocationService(t)
		inputs := []*usecase.LocationSampleInput{
			{Latitude: 1, Longitude: 1, RecordedAt: fixedNow},
			{Latitude: 100, Longitude: 1, RecordedAt: fixedNow},
		}

		_, err := srv.IngestBatch(ctx, userID, inputs)

		require.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("oversized batch", func(t *testing.T) {
		srv, _ := createTestLocationService(t)
		inputs := make([]*usecase.LocationSampleInput, 4)
		for i := range inputs {
			inputs[i] = &usecase.LocationSampleInput{Latitude: 1, Longitude: 1, RecordedAt: fixedNow}
		}

		_, err := srv.IngestBatch(ctx, userID, inputs)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("empty batch", func(t *testing.T) {
		srv, _ := createTestLocationService(t)

		_, err := srv.IngestBatch(ctx, userID, nil)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestLocationService_ListSamples(t *testing.T) {
	srv, sampleRepo := createTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	from, to := fixedNow.Add(-time.Hour), fixedNow

	sampleRepo.EXPECT().FindSamplesByUserInRange(ctx, userID, from, to).Return([]*entity.LocationSample{{ID: uuid.New()}}, nil)

	samples, err := srv.ListSamples(ctx, userID, from, to)
	require.NoError(t, err)
	assert.Len(t, samples, 1)

	_, err = srv.ListSamples(ctx, userID, to, from)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
