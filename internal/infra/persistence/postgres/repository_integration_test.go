//go:build integration

package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("fieldtrack"),
		postgrescontainer.WithUsername("fieldtrack"),
		postgrescontainer.WithPassword("fieldtrack"),
		postgrescontainer.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db))

	return db
}

func seedPDV(t *testing.T, db *gorm.DB, routeID uuid.UUID, code string) uuid.UUID {
	t.Helper()
	lat, lng := -12.0464, -77.0428
	pdv := &model.PDVModel{ID: uuid.New(), RouteID: routeID, Code: code, Name: code, Latitude: &lat, Longitude: &lng, IsActive: true}
	require.NoError(t, db.Create(pdv).Error)

	return pdv.ID
}

func newInProgressVisit(userID, pdvID uuid.UUID, at time.Time) *entity.Visit {
	return &entity.Visit{
		ID:         uuid.New(),
		UserID:     userID,
		PDVID:      pdvID,
		CheckInAt:  at,
		CheckInLat: -12.0464,
		CheckInLng: -77.0428,
		IsValid:    true,
		Status:     entity.VisitInProgress,
	}
}

func TestVisitRepository_SingleInProgressUnderConcurrency(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()
	repo := NewVisitRepository(db)
	userID := uuid.New()
	pdvID := seedPDV(t, db, uuid.New(), "PDV-1")

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.CreateVisit(ctx, newInProgressVisit(userID, pdvID, time.Now().UTC()))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, repository.ErrVisitInProgressConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
}

func TestVisitRepository_TransitionsAreCompareAndSet(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()
	repo := NewVisitRepository(db)
	userID := uuid.New()
	pdvID := seedPDV(t, db, uuid.New(), "PDV-2")

	visit := newInProgressVisit(userID, pdvID, time.Now().UTC().Add(-30*time.Minute))
	require.NoError(t, repo.CreateVisit(ctx, visit))

	require.True(t, visit.Complete(time.Now().UTC(), nil, nil))
	require.NoError(t, repo.CompleteVisit(ctx, visit))

	late := &entity.Visit{ID: visit.ID, Status: entity.VisitInProgress}
	require.True(t, late.Cancel(time.Now().UTC(), "late"))
	err := repo.CancelVisit(ctx, late)
	assert.ErrorIs(t, err, repository.ErrVisitNotInProgress)

	stored, err := repo.FindVisitByID(ctx, visit.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitCompleted, stored.Status)
	assert.Equal(t, 30, *stored.DurationMinutes)

	// The slot is free again after checkout.
	require.NoError(t, repo.CreateVisit(ctx, newInProgressVisit(userID, pdvID, time.Now().UTC())))
}

func TestVisitRepository_CountDistinctValidPDVsOnRoute(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()
	repo := NewVisitRepository(db)
	userID, routeID := uuid.New(), uuid.New()
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	onRoute := []uuid.UUID{seedPDV(t, db, routeID, "R-1"), seedPDV(t, db, routeID, "R-2")}
	offRoute := seedPDV(t, db, uuid.New(), "X-1")

	complete := func(pdvID uuid.UUID, at time.Time, valid bool) {
		v := newInProgressVisit(userID, pdvID, at)
		v.IsValid = valid
		require.NoError(t, repo.CreateVisit(ctx, v))
		require.True(t, v.Complete(at.Add(10*time.Minute), nil, nil))
		require.NoError(t, repo.CompleteVisit(ctx, v))
	}
	complete(onRoute[0], day.Add(9*time.Hour), true)
	complete(onRoute[0], day.Add(11*time.Hour), true) // same PDV twice counts once
	complete(onRoute[1], day.Add(13*time.Hour), false)
	complete(offRoute, day.Add(15*time.Hour), true)

	count, err := repo.CountDistinctValidPDVsOnRoute(ctx, userID, routeID, day, day.Add(24*time.Hour-time.Nanosecond))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	all, err := repo.CountDistinctValidPDVs(ctx, userID, day, day.Add(24*time.Hour-time.Nanosecond))
	require.NoError(t, err)
	assert.Equal(t, 2, all)
}

func TestSessionRepository_OpenSessionExclusivity(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)
	userID := uuid.New()

	first := &entity.WorkingSession{ID: uuid.New(), UserID: userID, StartedAt: time.Now().UTC(), Status: entity.SessionActive}
	require.NoError(t, repo.CreateSession(ctx, first))

	second := &entity.WorkingSession{ID: uuid.New(), UserID: userID, StartedAt: time.Now().UTC(), Status: entity.SessionActive}
	assert.ErrorIs(t, repo.CreateSession(ctx, second), repository.ErrOpenSessionConflict)

	first.Status = entity.SessionPaused
	require.NoError(t, repo.UpdateSession(ctx, first, entity.SessionActive))
	assert.ErrorIs(t, repo.UpdateSession(ctx, first, entity.SessionActive), repository.ErrSessionStatusChanged)

	require.NoError(t, repo.MarkMetricsStale(ctx, userID))
	stale, err := repo.FindStaleSessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, first.ID, stale[0].ID)

	now := time.Now().UTC()
	first.Status = entity.SessionCompleted
	first.EndedAt = &now
	first.Apply(entity.SessionMetrics{TotalDistanceKm: 1.5, TotalPDVsVisited: 2, TotalDurationMinutes: 60}, now)
	require.NoError(t, repo.UpdateSession(ctx, first, entity.SessionPaused))

	require.NoError(t, repo.CreateSession(ctx, second))
}

func TestSessionRepository_SaveMetricsLosesToEndSession(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)
	started := time.Now().UTC().Add(-2 * time.Hour).Truncate(time.Microsecond)

	session := &entity.WorkingSession{ID: uuid.New(), UserID: uuid.New(), StartedAt: started, Status: entity.SessionActive}
	require.NoError(t, repo.CreateSession(ctx, session))

	// A recompute read the session while it was still active.
	inFlight, err := repo.FindSessionByID(ctx, session.ID)
	require.NoError(t, err)

	ended := time.Now().UTC().Truncate(time.Microsecond)
	session.Status = entity.SessionCompleted
	session.EndedAt = &ended
	session.Apply(entity.SessionMetrics{TotalDistanceKm: 9, TotalDurationMinutes: 120}, ended)
	require.NoError(t, repo.UpdateSession(ctx, session, entity.SessionActive))

	inFlight.Apply(entity.SessionMetrics{TotalDistanceKm: 1, TotalDurationMinutes: 90}, ended)
	assert.ErrorIs(t, repo.SaveMetrics(ctx, inFlight), repository.ErrSessionStatusChanged)

	stored, err := repo.FindSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 9.0, *stored.TotalDistanceKm)
	assert.Equal(t, 120, *stored.TotalDurationMinutes)

	// A recompute of the completed session as stored still applies.
	stored.Apply(entity.SessionMetrics{TotalDistanceKm: 9.5, TotalDurationMinutes: 120}, ended)
	require.NoError(t, repo.SaveMetrics(ctx, stored))
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)
	userID := uuid.New()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		session := &entity.WorkingSession{ID: uuid.New(), UserID: userID, StartedAt: time.Now().UTC(), Status: entity.SessionActive}
		if err := f.SessionRepo().CreateSession(ctx, session); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewSessionRepository(db).FindOpenByUser(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestLocationSampleRepository_BatchAndRange(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()
	repo := NewLocationSampleRepository(db)
	userID := uuid.New()
	base := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	samples := []*entity.LocationSample{
		{ID: uuid.New(), UserID: userID, Latitude: 1, Longitude: 1, RecordedAt: base.Add(2 * time.Minute), ReceivedAt: base},
		{ID: uuid.New(), UserID: userID, Latitude: 2, Longitude: 2, RecordedAt: base, ReceivedAt: base},
		{ID: uuid.New(), UserID: userID, Latitude: 3, Longitude: 3, RecordedAt: base, ReceivedAt: base},
		{ID: uuid.New(), UserID: userID, Latitude: 4, Longitude: 4, RecordedAt: base.Add(time.Hour), ReceivedAt: base},
	}
	require.NoError(t, repo.CreateSamples(ctx, samples))

	got, err := repo.FindSamplesByUserInRange(ctx, userID, base, base.Add(10*time.Minute))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].RecordedAt.Equal(base))
	assert.True(t, got[2].RecordedAt.Equal(base.Add(2*time.Minute)))
}

func TestHierarchyRepository_ScheduleAndAssignment(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()
	repo := NewHierarchyRepository(db)
	schedule := NewScheduleRepository(db)
	userID, routeID := uuid.New(), uuid.New()

	require.NoError(t, db.Create(&model.UserRouteModel{UserID: userID, RouteID: routeID, IsActive: true}).Error)
	for day := 1; day <= 6; day++ {
		require.NoError(t, db.Create(&model.ScheduledVisitDateModel{
			ID: uuid.New(), RouteID: routeID, VisitDate: time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC), IsActive: day != 6,
		}).Error)
	}

	assigned, err := repo.IsUserAssignedToRoute(ctx, userID, routeID)
	require.NoError(t, err)
	assert.True(t, assigned)

	count, err := schedule.CountActiveVisitDates(ctx, routeID,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	_, err = repo.FindPDVByCode(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrPDVNotFound)
}
