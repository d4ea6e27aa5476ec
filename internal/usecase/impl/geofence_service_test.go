package impl

import (
	"context"
	"testing"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	mockRepo "fieldtrack/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	limaLat = -12.0464
	limaLng = -77.0428
)

func createTestGeofenceService(t *testing.T) (*geofenceService, *mockRepo.MockGeofenceRepository, *mockRepo.MockHierarchyRepository) {
	geofenceRepo := mockRepo.NewMockGeofenceRepository(t)
	hierarchyRepo := mockRepo.NewMockHierarchyRepository(t)

	srv := NewGeofenceService(GeofenceServiceParams{
		GeofenceRepo:  geofenceRepo,
		HierarchyRepo: hierarchyRepo,
		Config:        testConfig(),
		Logger:        discardLogger(),
	}).(*geofenceService)

	return srv, geofenceRepo, hierarchyRepo
}

func limaFence(pdvID uuid.UUID, radius float64) *entity.Geofence {
	return &entity.Geofence{
		ID:           uuid.New(),
		PDVID:        pdvID,
		CenterLat:    limaLat,
		CenterLng:    limaLng,
		RadiusMeters: radius,
		IsActive:     true,
		TriggerType:  entity.TriggerBoth,
	}
}

func TestGeofenceService_Evaluate_WithinRadius(t *testing.T) {
	srv, geofenceRepo, hierarchyRepo := createTestGeofenceService(t)
	ctx := context.Background()
	pdvID := uuid.New()

	hierarchyRepo.EXPECT().FindPDVByID(ctx, pdvID).Return(&entity.PDV{ID: pdvID, IsActive: true}, nil)
	geofenceRepo.EXPECT().FindActiveByPDV(ctx, pdvID).Return(limaFence(pdvID, 50), nil)

	result, err := srv.Evaluate(ctx, pdvID, limaLat+15/metersPerDegreeLat, limaLng)

	require.NoError(t, err)
	assert.True(t, result.GeofenceConfigured)
	assert.True(t, result.WithinRadius)
	assert.InDelta(t, 15, result.DistanceMeters, 0.5)
}

func TestGeofenceService_Evaluate_OutsideRadius(t *testing.T) {
	srv, geofenceRepo, hierarchyRepo := createTestGeofenceService(t)
	ctx := context.Background()
	pdvID := uuid.New()

	hierarchyRepo.EXPECT().FindPDVByID(ctx, pdvID).Return(&entity.PDV{ID: pdvID, IsActive: true}, nil)
	geofenceRepo.EXPECT().FindActiveByPDV(ctx, pdvID).Return(limaFence(pdvID, 50), nil)

	result, err := srv.Evaluate(ctx, pdvID, limaLat+200/metersPerDegreeLat, limaLng)

	require.NoError(t, err)
	assert.False(t, result.WithinRadius)
	assert.InDelta(t, 200, result.DistanceMeters, 0.5)
}

func TestGeofenceService_Evaluate_ZeroRadiusFallsBackToDefault(t *testing.T) {
	srv, geofenceRepo, hierarchyRepo := createTestGeofenceService(t)
	ctx := context.Background()
	pdvID := uuid.New()

	hierarchyRepo.EXPECT().FindPDVByID(ctx, pdvID).Return(&entity.PDV{ID: pdvID, IsActive: true}, nil)
	geofenceRepo.EXPECT().FindActiveByPDV(ctx, pdvID).Return(limaFence(pdvID, 0), nil)

	result, err := srv.Evaluate(ctx, pdvID, limaLat+40/metersPerDegreeLat, limaLng)

	require.NoError(t, err)
	assert.True(t, result.WithinRadius)
	assert.Equal(t, 50.0, result.RadiusMeters)
}

func TestGeofenceService_Evaluate_NoActiveGeofence(t *testing.T) {
	ctx := context.Background()

	t.Run("distance to pdv coordinates", func(t *testing.T) {
		srv, geofenceRepo, hierarchyRepo := createTestGeofenceService(t)
		pdvID := uuid.New()
		lat, lng := limaLat, limaLng

		hierarchyRepo.EXPECT().FindPDVByID(ctx, pdvID).Return(&entity.PDV{ID: pdvID, IsActive: true, Latitude: &lat, Longitude: &lng}, nil)
		geofenceRepo.EXPECT().FindActiveByPDV(ctx, pdvID).Return(nil, repository.ErrGeofenceNotFound)

		result, err := srv.Evaluate(ctx, pdvID, limaLat+10/metersPerDegreeLat, limaLng)

		require.NoError(t, err)
		assert.False(t, result.GeofenceConfigured)
		assert.False(t, result.WithinRadius)
		assert.InDelta(t, 10, result.DistanceMeters, 0.5)
	})

	t.Run("pdv without coordinates", func(t *testing.T) {
		srv, geofenceRepo, hierarchyRepo := createTestGeofenceService(t)
		pdvID := uuid.New()

		hierarchyRepo.EXPECT().FindPDVByID(ctx, pdvID).Return(&entity.PDV{ID: pdvID, IsActive: true}, nil)
		geofenceRepo.EXPECT().FindActiveByPDV(ctx, pdvID).Return(nil, repository.ErrGeofenceNotFound)

		result, err := srv.Evaluate(ctx, pdvID, limaLat, limaLng)

		require.NoError(t, err)
		assert.False(t, result.WithinRadius)
		assert.Zero(t, result.DistanceMeters)
	})
}

func TestGeofenceService_Evaluate_PDVNotFound(t *testing.T) {
	srv, _, hierarchyRepo := createTestGeofenceService(t)
	ctx := context.Background()
	pdvID := uuid.New()

	hierarchyRepo.EXPECT().FindPDVByID(ctx, pdvID).Return(nil, repository.ErrPDVNotFound)

	_, err := srv.Evaluate(ctx, pdvID, limaLat, limaLng)

	assert.ErrorIs(t, err, domainerrors.ErrPDVNotFound)
}

func TestGeofenceService_Evaluate_InactivePDV(t *testing.T) {
	srv, _, hierarchyRepo := createTestGeofenceService(t)
	ctx := context.Background()
	pdvID := uuid.New()

	hierarchyRepo.EXPECT().FindPDVByID(ctx, pdvID).Return(&entity.PDV{ID: pdvID, IsActive: false}, nil)

	_, err := srv.Evaluate(ctx, pdvID, limaLat, limaLng)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.ErrorIs(t, err, domainerrors.ErrPDVNotFound)
	assert.Equal(t, "pdv is inactive", appErr.Details())
}

func TestGeofenceService_Evaluate_InvalidCoordinate(t *testing.T) {
	srv, _, _ := createTestGeofenceService(t)

	_, err := srv.Evaluate(context.Background(), uuid.New(), 95, 0)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}
