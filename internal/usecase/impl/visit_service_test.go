package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/domain/service"
	mockRepo "fieldtrack/internal/mocks/repository"
	mockSvc "fieldtrack/internal/mocks/service"
	mockUsecase "fieldtrack/internal/mocks/usecase"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type visitMocks struct {
	geofence   *mockUsecase.MockGeofenceUsecase
	compliance *mockUsecase.MockComplianceUsecase
	visitRepo  *mockRepo.MockVisitRepository
	session    *mockRepo.MockSessionRepository
	hierarchy  *mockRepo.MockHierarchyRepository
	qrcode     *mockSvc.MockQRCodeService
	publisher  *mockSvc.MockEventPublisher
}

func createTestVisitService(t *testing.T) (*visitService, *visitMocks) {
	m := &visitMocks{
		geofence:   mockUsecase.NewMockGeofenceUsecase(t),
		compliance: mockUsecase.NewMockComplianceUsecase(t),
		visitRepo:  mockRepo.NewMockVisitRepository(t),
		session:    mockRepo.NewMockSessionRepository(t),
		hierarchy:  mockRepo.NewMockHierarchyRepository(t),
		qrcode:     mockSvc.NewMockQRCodeService(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
	}

	srv := NewVisitService(VisitServiceParams{
		Geofence:       m.geofence,
		Compliance:     m.compliance,
		VisitRepo:      m.visitRepo,
		SessionRepo:    m.session,
		HierarchyRepo:  m.hierarchy,
		QRCodeService:  m.qrcode,
		EventPublisher: m.publisher,
		Logger:         discardLogger(),
	}).(*visitService)
	srv.now = func() time.Time { return fixedNow }

	return srv, m
}

func TestVisitService_CheckIn_ValidityTruthTable(t *testing.T) {
	tests := []struct {
		name      string
		within    bool
		mock      bool
		wantValid bool
	}{
		{name: "inside and genuine", within: true, mock: false, wantValid: true},
		{name: "inside but mocked", within: true, mock: true, wantValid: false},
		{name: "outside and genuine", within: false, mock: false, wantValid: false},
		{name: "outside and mocked", within: false, mock: true, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := createTestVisitService(t)
			ctx := context.Background()
			userID, pdvID := uuid.New(), uuid.New()

			m.geofence.EXPECT().Evaluate(ctx, pdvID, limaLat, limaLng).Return(&entity.GeofenceEvaluation{
				PDVID: pdvID, DistanceMeters: 12, WithinRadius: tt.within, GeofenceConfigured: true,
			}, nil)
			m.session.EXPECT().FindOpenByUser(ctx, userID).Return(nil, repository.ErrSessionNotFound)
			m.visitRepo.EXPECT().CreateVisit(ctx, mock.Anything).Return(nil)

			visit, err := srv.CheckIn(ctx, userID, &usecase.CheckInInput{
				PDVID: &pdvID, Latitude: limaLat, Longitude: limaLng, IsMockLocation: tt.mock,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, visit.IsValid)
			assert.Equal(t, tt.mock, visit.UsedMockLocation)
			assert.Equal(t, entity.VisitInProgress, visit.Status)
			assert.Equal(t, fixedNow, visit.CheckInAt)
			assert.Nil(t, visit.CheckOutAt)
			assert.Nil(t, visit.SessionID)
		})
	}
}

func TestVisitService_CheckIn_GeofenceScenarios(t *testing.T) {
	tests := []struct {
		name         string
		offsetMeters float64
		wantValid    bool
	}{
		{name: "15 m from center", offsetMeters: 15, wantValid: true},
		{name: "200 m from center", offsetMeters: 200, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := createTestVisitService(t)
			geofenceSrv, geofenceRepo, hierarchyRepo := createTestGeofenceService(t)
			srv.geofence = geofenceSrv
			ctx := context.Background()
			userID, pdvID := uuid.New(), uuid.New()

			hierarchyRepo.EXPECT().FindPDVByID(ctx, pdvID).Return(&entity.PDV{ID: pdvID}, nil)
			geofenceRepo.EXPECT().FindActiveByPDV(ctx, pdvID).Return(limaFence(pdvID, 50), nil)
			m.session.EXPECT().FindOpenByUser(ctx, userID).Return(nil, repository.ErrSessionNotFound)
			m.visitRepo.EXPECT().CreateVisit(ctx, mock.Anything).Return(nil)

			visit, err := srv.CheckIn(ctx, userID, &usecase.CheckInInput{
				PDVID:     &pdvID,
				Latitude:  limaLat + tt.offsetMeters/metersPerDegreeLat,
				Longitude: limaLng,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, visit.IsValid)
			assert.InDelta(t, tt.offsetMeters, visit.DistanceToPDVMeters, 0.5)
		})
	}
}

func TestVisitService_CheckIn_NoGeofenceStoresInvalidVisit(t *testing.T) {
	srv, m := createTestVisitService(t)
	ctx := context.Background()
	userID, pdvID := uuid.New(), uuid.New()

	m.geofence.EXPECT().Evaluate(ctx, pdvID, limaLat, limaLng).Return(&entity.GeofenceEvaluation{PDVID: pdvID}, nil)
	m.session.EXPECT().FindOpenByUser(ctx, userID).Return(nil, repository.ErrSessionNotFound)
	m.visitRepo.EXPECT().CreateVisit(ctx, mock.Anything).Return(nil)

	visit, err := srv.CheckIn(ctx, userID, &usecase.CheckInInput{PDVID: &pdvID, Latitude: limaLat, Longitude: limaLng})

	require.NoError(t, err)
	assert.False(t, visit.IsValid)
	assert.False(t, visit.GeofenceConfigured)
}

func TestVisitService_CheckIn_AttachesOpenSession(t *testing.T) {
	srv, m := createTestVisitService(t)
	ctx := context.Background()
	userID, pdvID, sessionID := uuid.New(), uuid.New(), uuid.New()

	m.geofence.EXPECT().Evaluate(ctx, pdvID, limaLat, limaLng).Return(&entity.GeofenceEvaluation{WithinRadius: true, GeofenceConfigured: true}, nil)
	m.session.EXPECT().FindOpenByUser(ctx, userID).Return(&entity.WorkingSession{ID: sessionID, UserID: userID, Status: entity.SessionActive}, nil)
	m.visitRepo.EXPECT().
		CreateVisit(ctx, mock.MatchedBy(func(v *entity.Visit) bool { return v.SessionID != nil && *v.SessionID == sessionID })).
		Return(nil)

	visit, err := srv.CheckIn(ctx, userID, &usecase.CheckInInput{PDVID: &pdvID, Latitude: limaLat, Longitude: limaLng})

	require.NoError(t, err)
	assert.Equal(t, sessionID, *visit.SessionID)
}

func TestVisitService_CheckIn_ByQRCode(t *testing.T) {
	ctx := context.Background()
	userID, pdvID := uuid.New(), uuid.New()

	t.Run("resolves the pdv from the label", func(t *testing.T) {
		srv, m := createTestVisitService(t)

		m.qrcode.EXPECT().ParsePDVLabel("label").Return("PDV-001", nil)
		m.hierarchy.EXPECT().FindPDVByCode(ctx, "PDV-001").Return(&entity.PDV{ID: pdvID, Code: "PDV-001"}, nil)
		m.geofence.EXPECT().Evaluate(ctx, pdvID, limaLat, limaLng).Return(&entity.GeofenceEvaluation{WithinRadius: true, GeofenceConfigured: true}, nil)
		m.session.EXPECT().FindOpenByUser(ctx, userID).Return(nil, repository.ErrSessionNotFound)
		m.visitRepo.EXPECT().CreateVisit(ctx, mock.Anything).Return(nil)

		visit, err := srv.CheckIn(ctx, userID, &usecase.CheckInInput{QRData: "label", Latitude: limaLat, Longitude: limaLng})

		require.NoError(t, err)
		assert.Equal(t, pdvID, visit.PDVID)
	})

	t.Run("unreadable label", func(t *testing.T) {
		srv, m := createTestVisitService(t)

		m.qrcode.EXPECT().ParsePDVLabel("garbage").Return("", errors.New("bad payload"))

		_, err := srv.CheckIn(ctx, userID, &usecase.CheckInInput{QRData: "garbage", Latitude: limaLat, Longitude: limaLng})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
	})

	t.Run("unknown pdv code", func(t *testing.T) {
		srv, m := createTestVisitService(t)

		m.qrcode.EXPECT().ParsePDVLabel("label").Return("PDV-404", nil)
		m.hierarchy.EXPECT().FindPDVByCode(ctx, "PDV-404").Return(nil, repository.ErrPDVNotFound)

		_, err := srv.CheckIn(ctx, userID, &usecase.CheckInInput{QRData: "label", Latitude: limaLat, Longitude: limaLng})

		assert.ErrorIs(t, err, domainerrors.ErrPDVNotFound)
	})
}

func TestVisitService_CheckIn_Errors(t *testing.T) {
	ctx := context.Background()
	userID, pdvID := uuid.New(), uuid.New()

	t.Run("invalid coordinate", func(t *testing.T) {
		srv, _ := createTestVisitService(t)

		_, err := srv.CheckIn(ctx, userID, &usecase.CheckInInput{PDVID: &pdvID, Latitude: -91, Longitude: 0})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
	})

	t.Run("pdv not found is fatal", func(t *testing.T) {
		srv, m := createTestVisitService(t)

		m.geofence.EXPECT().Evaluate(ctx, pdvID, limaLat, limaLng).Return(nil, domainerrors.ErrPDVNotFound)

		_, err := srv.CheckIn(ctx, userID, &usecase.CheckInInput{PDVID: &pdvID, Latitude: limaLat, Longitude: limaLng})

		assert.ErrorIs(t, err, domainerrors.ErrPDVNotFound)
	})

	t.Run("visit already in progress", func(t *testing.T) {
		srv, m := createTestVisitService(t)

		m.geofence.EXPECT().Evaluate(ctx, pdvID, limaLat, limaLng).Return(&entity.GeofenceEvaluation{}, nil)
		m.session.EXPECT().FindOpenByUser(ctx, userID).Return(nil, repository.ErrSessionNotFound)
		m.visitRepo.EXPECT().CreateVisit(ctx, mock.Anything).Return(repository.ErrVisitInProgressConflict)

		_, err := srv.CheckIn(ctx, userID, &usecase.CheckInInput{PDVID: &pdvID, Latitude: limaLat, Longitude: limaLng})

		assert.ErrorIs(t, err, domainerrors.ErrConcurrentVisitConflict)
	})
}

func inProgressVisit(userID uuid.UUID, sessionID *uuid.UUID) *entity.Visit {
	return &entity.Visit{
		ID:        uuid.New(),
		UserID:    userID,
		PDVID:     uuid.New(),
		SessionID: sessionID,
		CheckInAt: fixedNow.Add(-30 * time.Minute),
		IsValid:   true,
		Status:    entity.VisitInProgress,
	}
}

func TestVisitService_CheckOut_Success(t *testing.T) {
	srv, m := createTestVisitService(t)
	ctx := context.Background()
	userID, sessionID := uuid.New(), uuid.New()
	visit := inProgressVisit(userID, &sessionID)
	answers := []entity.FormAnswer{{FieldID: "stock", Type: entity.FormFieldNumber, Number: floatPtr(12)}}

	m.visitRepo.EXPECT().FindVisitByID(ctx, visit.ID).Return(visit, nil)
	m.visitRepo.EXPECT().CompleteVisit(ctx, visit).Return(nil)
	m.session.EXPECT().MarkMetricsStale(ctx, userID).Return(nil)
	m.publisher.EXPECT().
		PublishVisitEvent(ctx, mock.MatchedBy(func(e *service.VisitEvent) bool {
			return e.Type == service.EventVisitCompleted &&
				e.VisitID == visit.ID.String() &&
				e.SessionID == sessionID.String() &&
				len(e.Answers) == 1
		})).
		Return(nil)
	m.compliance.EXPECT().Invalidate(ctx, userID).Return()

	result, err := srv.CheckOut(ctx, userID, visit.ID, &usecase.CheckOutInput{Notes: stringPtr("restocked"), Answers: answers})

	require.NoError(t, err)
	assert.Equal(t, entity.VisitCompleted, result.Status)
	require.NotNil(t, result.CheckOutAt)
	assert.Equal(t, fixedNow, *result.CheckOutAt)
	assert.Equal(t, 30, *result.DurationMinutes)
	assert.Equal(t, "restocked", *result.Notes)
}

func TestVisitService_CheckOut_NotificationFailuresDoNotFail(t *testing.T) {
	srv, m := createTestVisitService(t)
	ctx := context.Background()
	userID := uuid.New()
	visit := inProgressVisit(userID, nil)

	m.visitRepo.EXPECT().FindVisitByID(ctx, visit.ID).Return(visit, nil)
	m.visitRepo.EXPECT().CompleteVisit(ctx, visit).Return(nil)
	m.session.EXPECT().MarkMetricsStale(ctx, userID).Return(errors.New("db hiccup"))
	m.publisher.EXPECT().PublishVisitEvent(ctx, mock.Anything).Return(errors.New("broker down"))
	m.compliance.EXPECT().Invalidate(ctx, userID).Return()

	result, err := srv.CheckOut(ctx, userID, visit.ID, &usecase.CheckOutInput{})

	require.NoError(t, err)
	assert.Equal(t, entity.VisitCompleted, result.Status)
}

func TestVisitService_CheckOut_Errors(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("visit not found", func(t *testing.T) {
		srv, m := createTestVisitService(t)
		visitID := uuid.New()

		m.visitRepo.EXPECT().FindVisitByID(ctx, visitID).Return(nil, repository.ErrVisitNotFound)

		_, err := srv.CheckOut(ctx, userID, visitID, &usecase.CheckOutInput{})

		assert.ErrorIs(t, err, domainerrors.ErrVisitNotFound)
	})

	t.Run("other user's visit", func(t *testing.T) {
		srv, m := createTestVisitService(t)
		visit := inProgressVisit(uuid.New(), nil)

		m.visitRepo.EXPECT().FindVisitByID(ctx, visit.ID).Return(visit, nil)

		_, err := srv.CheckOut(ctx, userID, visit.ID, &usecase.CheckOutInput{})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	for _, status := range []entity.VisitStatus{entity.VisitCompleted, entity.VisitCancelled} {
		t.Run("from "+string(status), func(t *testing.T) {
			srv, m := createTestVisitService(t)
			visit := inProgressVisit(userID, nil)
			visit.Status = status

			m.visitRepo.EXPECT().FindVisitByID(ctx, visit.ID).Return(visit, nil)

			_, err := srv.CheckOut(ctx, userID, visit.ID, &usecase.CheckOutInput{})

			assert.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)
		})
	}

	t.Run("lost race against cancel", func(t *testing.T) {
		srv, m := createTestVisitService(t)
		visit := inProgressVisit(userID, nil)

		m.visitRepo.EXPECT().FindVisitByID(ctx, visit.ID).Return(visit, nil)
		m.visitRepo.EXPECT().CompleteVisit(ctx, visit).Return(repository.ErrVisitNotInProgress)

		_, err := srv.CheckOut(ctx, userID, visit.ID, &usecase.CheckOutInput{})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)
	})

	t.Run("invalid form answers", func(t *testing.T) {
		srv, _ := createTestVisitService(t)
		answers := []entity.FormAnswer{{FieldID: "photo", Type: entity.FormFieldImage}}

		_, err := srv.CheckOut(ctx, userID, uuid.New(), &usecase.CheckOutInput{Answers: answers})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestVisitService_Cancel(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("cancels without duration", func(t *testing.T) {
		srv, m := createTestVisitService(t)
		visit := inProgressVisit(userID, nil)

		m.visitRepo.EXPECT().FindVisitByID(ctx, visit.ID).Return(visit, nil)
		m.visitRepo.EXPECT().CancelVisit(ctx, visit).Return(nil)
		m.publisher.EXPECT().
			PublishVisitEvent(ctx, mock.MatchedBy(func(e *service.VisitEvent) bool { return e.Type == service.EventVisitCancelled })).
			Return(nil)

		result, err := srv.Cancel(ctx, userID, visit.ID, "store closed")

		require.NoError(t, err)
		assert.Equal(t, entity.VisitCancelled, result.Status)
		assert.Nil(t, result.DurationMinutes)
		assert.Nil(t, result.CheckOutAt)
	})

	t.Run("completed visits cannot be cancelled", func(t *testing.T) {
		srv, m := createTestVisitService(t)
		visit := inProgressVisit(userID, nil)
		visit.Status = entity.VisitCompleted

		m.visitRepo.EXPECT().FindVisitByID(ctx, visit.ID).Return(visit, nil)

		_, err := srv.Cancel(ctx, userID, visit.ID, "")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidStateTransition)
	})
}

func TestVisitService_Reads(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	visit := inProgressVisit(ownerID, nil)

	t.Run("owner reads own visit", func(t *testing.T) {
		srv, m := createTestVisitService(t)
		m.visitRepo.EXPECT().FindVisitByID(ctx, visit.ID).Return(visit, nil)

		got, err := srv.GetVisit(ctx, usecase.Actor{UserID: ownerID, Roles: entity.Roles{entity.RoleAgent}}, visit.ID)

		require.NoError(t, err)
		assert.Equal(t, visit.ID, got.ID)
	})

	t.Run("supervisor reads any visit", func(t *testing.T) {
		srv, m := createTestVisitService(t)
		m.visitRepo.EXPECT().FindVisitByID(ctx, visit.ID).Return(visit, nil)

		_, err := srv.GetVisit(ctx, usecase.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleSupervisor}}, visit.ID)

		assert.NoError(t, err)
	})

	t.Run("other agent is forbidden", func(t *testing.T) {
		srv, m := createTestVisitService(t)
		m.visitRepo.EXPECT().FindVisitByID(ctx, visit.ID).Return(visit, nil)

		_, err := srv.GetVisit(ctx, usecase.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAgent}}, visit.ID)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("no active visit", func(t *testing.T) {
		srv, m := createTestVisitService(t)
		m.visitRepo.EXPECT().FindInProgressByUser(ctx, ownerID).Return(nil, repository.ErrVisitNotFound)

		_, err := srv.GetActiveVisit(ctx, ownerID)

		assert.ErrorIs(t, err, domainerrors.ErrVisitNotFound)
	})
}

// fakeVisitRepository enforces the one-in-progress-visit rule the way the partial unique index does.
type fakeVisitRepository struct {
	repository.VisitRepository

	mu     sync.Mutex
	visits map[uuid.UUID]*entity.Visit
}

func (f *fakeVisitRepository) CreateVisit(_ context.Context, visit *entity.Visit) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, v := range f.visits {
		if v.UserID == visit.UserID && v.Status == entity.VisitInProgress {
			return repository.ErrVisitInProgressConflict
		}
	}
	copied := *visit
	f.visits[visit.ID] = &copied

	return nil
}

func TestVisitService_CheckIn_ConcurrentRequestsYieldOneVisit(t *testing.T) {
	srv, m := createTestVisitService(t)
	fake := &fakeVisitRepository{visits: make(map[uuid.UUID]*entity.Visit)}
	srv.visitRepo = fake
	ctx := context.Background()
	userID, pdvID := uuid.New(), uuid.New()

	m.geofence.EXPECT().Evaluate(ctx, pdvID, limaLat, limaLng).Return(&entity.GeofenceEvaluation{WithinRadius: true, GeofenceConfigured: true}, nil)
	m.session.EXPECT().FindOpenByUser(ctx, userID).Return(nil, repository.ErrSessionNotFound)

	const attempts = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := srv.CheckIn(ctx, userID, &usecase.CheckInInput{PDVID: &pdvID, Latitude: limaLat, Longitude: limaLng})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domainerrors.ErrConcurrentVisitConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, fake.visits, 1)
}
