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
	"fieldtrack/internal/domain/service"
	"fieldtrack/internal/infra/metrics"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	SessionRepo    repository.SessionRepository
	SampleRepo     repository.LocationSampleRepository
	VisitRepo      repository.VisitRepository
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager      repository.TransactionManager
	sessionRepo    repository.SessionRepository
	sampleRepo     repository.LocationSampleRepository
	visitRepo      repository.VisitRepository
	eventPublisher service.EventPublisher
	plausibility   plausibility
	logger         *slog.Logger
	now            func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	p := plausibility{maxSpeedKmh: 120, maxAccuracyMeters: 50}
	if params.Config != nil && params.Config.Tracking != nil {
		if params.Config.Tracking.MaxPlausibleSpeedKmh > 0 {
			p.maxSpeedKmh = params.Config.Tracking.MaxPlausibleSpeedKmh
		}
		if params.Config.Tracking.MaxAccuracyMeters > 0 {
			p.maxAccuracyMeters = params.Config.Tracking.MaxAccuracyMeters
		}
	}

	return &sessionService{
		txManager:      params.TxManager,
		sessionRepo:    params.SessionRepo,
		sampleRepo:     params.SampleRepo,
		visitRepo:      params.VisitRepo,
		eventPublisher: params.EventPublisher,
		plausibility:   p,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartSession opens a working day. The storage layer guarantees one open session per user.
func (srv *sessionService) StartSession(ctx context.Context, userID uuid.UUID, input *usecase.SessionLocationInput) (*entity.WorkingSession, error) {
	if err := validateSessionLocation(input); err != nil {
		return nil, err
	}

	now := srv.now()
	session := &entity.WorkingSession{
		ID:           uuid.New(),
		UserID:       userID,
		StartedAt:    now,
		Status:       entity.SessionActive,
		MetricsStale: false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input != nil {
		session.StartLat, session.StartLng = input.Latitude, input.Longitude
	}

	if err := srv.sessionRepo.CreateSession(ctx, session); err != nil {
		if errors.Is(err, repository.ErrOpenSessionConflict) {
			return nil, domainerrors.ErrActiveSessionExists
		}

		return nil, errors.Wrap(err, "failed to create working session")
	}

	srv.log(ctx).Info("Working session started", slog.Any("session_id", session.ID), slog.Any("user_id", userID))

	return session, nil
}

// EndSession closes the session and persists its final metrics in the same transaction.
// A visit still in progress blocks the end.
func (srv *sessionService) EndSession(ctx context.Context, userID, sessionID uuid.UUID, input *usecase.SessionLocationInput) (*entity.WorkingSession, error) {
	if err := validateSessionLocation(input); err != nil {
		return nil, err
	}

	var ended *entity.WorkingSession
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()
		visitRepo := repoFactory.VisitRepo()

		session, err := findOwnedSession(ctx, sessionRepo, userID, sessionID)
		if err != nil {
			return err
		}
		if !session.Status.IsOpen() {
			return domainerrors.ErrInvalidStateTransition.WithDetails("session is " + string(session.Status))
		}

		_, err = visitRepo.FindInProgressByUser(ctx, userID)
		if err == nil {
			return domainerrors.ErrVisitInProgress
		}
		if !errors.Is(err, repository.ErrVisitNotFound) {
			return errors.Wrap(err, "failed to find visit in progress")
		}

		previous := session.Status
		now := srv.now()
		session.EndedAt = &now
		if input != nil {
			session.EndLat, session.EndLng = input.Latitude, input.Longitude
		}
		session.Status = entity.SessionCompleted
		session.UpdatedAt = now

		m, err := srv.computeMetrics(ctx, repoFactory.SampleRepo(), visitRepo, session, now)
		if err != nil {
			return err
		}
		session.Apply(m, now)

		if err := sessionRepo.UpdateSession(ctx, session, previous); err != nil {
			return mapSessionUpdateError(err)
		}
		ended = session

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Working session ended",
		slog.Any("session_id", ended.ID),
		slog.Float64("distance_km", *ended.TotalDistanceKm),
		slog.Int("pdvs_visited", ended.TotalPDVsVisited),
	)
	srv.publishEnded(ctx, ended)

	return ended, nil
}

// PauseSession moves an active session to paused.
func (srv *sessionService) PauseSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WorkingSession, error) {
	return srv.transition(ctx, userID, sessionID, entity.SessionActive, entity.SessionPaused)
}

// ResumeSession moves a paused session back to active.
func (srv *sessionService) ResumeSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WorkingSession, error) {
	return srv.transition(ctx, userID, sessionID, entity.SessionPaused, entity.SessionActive)
}

// CancelSession abandons an open session without metrics.
func (srv *sessionService) CancelSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WorkingSession, error) {
	session, err := findOwnedSession(ctx, srv.sessionRepo, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Status.IsOpen() {
		return nil, domainerrors.ErrInvalidStateTransition.WithDetails("session is " + string(session.Status))
	}

	previous := session.Status
	now := srv.now()
	session.Status = entity.SessionCancelled
	session.EndedAt = &now
	session.MetricsStale = false
	session.UpdatedAt = now

	if err := srv.sessionRepo.UpdateSession(ctx, session, previous); err != nil {
		return nil, mapSessionUpdateError(err)
	}

	return session, nil
}

func (srv *sessionService) transition(ctx context.Context, userID, sessionID uuid.UUID, from, to entity.SessionStatus) (*entity.WorkingSession, error) {
	session, err := findOwnedSession(ctx, srv.sessionRepo, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != from {
		return nil, domainerrors.ErrInvalidStateTransition.WithDetails("session is " + string(session.Status))
	}

	session.Status = to
	session.UpdatedAt = srv.now()
	if err := srv.sessionRepo.UpdateSession(ctx, session, from); err != nil {
		return nil, mapSessionUpdateError(err)
	}

	return session, nil
}

// RecomputeMetrics rebuilds distance, visit count and duration from the stored samples and visits.
func (srv *sessionService) RecomputeMetrics(ctx context.Context, sessionID uuid.UUID) (*entity.WorkingSession, error) {
	start := time.Now()

	session, err := srv.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound.WithDetails(sessionID.String())
		}

		return nil, errors.Wrap(err, "failed to find working session")
	}
	if session.Status == entity.SessionCancelled {
		return nil, domainerrors.ErrInvalidStateTransition.WithDetails("cancelled sessions carry no metrics")
	}

	now := srv.now()
	m, err := srv.computeMetrics(ctx, srv.sampleRepo, srv.visitRepo, session, now)
	if err != nil {
		metrics.RecordRecompute(0, 0, true)

		return nil, err
	}
	session.Apply(m, now)

	if err := srv.sessionRepo.SaveMetrics(ctx, session); err != nil {
		if errors.Is(err, repository.ErrSessionStatusChanged) {
			// The session was ended, paused or cancelled meanwhile; its stored metrics stand.
			srv.log(ctx).Debug("Session changed during recompute, keeping stored metrics",
				slog.Any("session_id", session.ID),
				slog.String("computed_for", string(session.Status)),
			)

			return findSession(ctx, srv.sessionRepo, session.ID)
		}
		metrics.RecordRecompute(0, 0, true)

		return nil, errors.Wrap(err, "failed to save session metrics")
	}

	metrics.RecordRecompute(time.Since(start).Seconds(), m.SegmentsDiscarded, false)
	srv.log(ctx).Debug("Session metrics recomputed",
		slog.Any("session_id", session.ID),
		slog.Int("segments_kept", m.SegmentsKept),
		slog.Int("segments_discarded", m.SegmentsDiscarded),
	)

	return session, nil
}

// RecomputeOpenSession refreshes the user's open session, if any.
func (srv *sessionService) RecomputeOpenSession(ctx context.Context, userID uuid.UUID) error {
	session, err := srv.sessionRepo.FindOpenByUser(ctx, userID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find open session")
	}

	_, err = srv.RecomputeMetrics(ctx, session.ID)

	return err
}

// RecomputeStale recomputes up to limit stale sessions and returns how many succeeded.
// Failures stay stale and are retried on the next pass.
func (srv *sessionService) RecomputeStale(ctx context.Context, limit int) (int, error) {
	sessions, err := srv.sessionRepo.FindStaleSessions(ctx, limit)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find stale sessions")
	}

	done := 0
	for _, session := range sessions {
		if ctx.Err() != nil {
			return done, ctx.Err()
		}
		if _, err := srv.RecomputeMetrics(ctx, session.ID); err != nil {
			srv.log(ctx).Warn("Stale session recompute failed", slog.Any("session_id", session.ID), slog.Any("error", err))

			continue
		}
		done++
	}

	return done, nil
}

// GetSession returns a session readable by the actor.
func (srv *sessionService) GetSession(ctx context.Context, actor usecase.Actor, sessionID uuid.UUID) (*entity.WorkingSession, error) {
	session, err := findSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}
	if !actor.CanRead(session.UserID) {
		return nil, domainerrors.ErrForbidden
	}

	return session, nil
}

// GetActiveSession returns the user's open session.
func (srv *sessionService) GetActiveSession(ctx context.Context, userID uuid.UUID) (*entity.WorkingSession, error) {
	session, err := srv.sessionRepo.FindOpenByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound.WithDetails("no open session")
		}

		return nil, errors.Wrap(err, "failed to find open session")
	}

	return session, nil
}

// SessionTrack exports the session's usable samples as a GeoJSON line.
func (srv *sessionService) SessionTrack(ctx context.Context, actor usecase.Actor, sessionID uuid.UUID) (*geojson.FeatureCollection, error) {
	session, err := srv.GetSession(ctx, actor, sessionID)
	if err != nil {
		return nil, err
	}

	samples, err := srv.sampleRepo.FindSamplesByUserInRange(ctx, session.UserID, session.StartedAt, session.WindowEnd(srv.now()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find session samples")
	}

	line := make(orb.LineString, 0, len(samples))
	for _, s := range samples {
		if s.AccuracyExceeds(srv.plausibility.maxAccuracyMeters) {
			continue
		}
		line = append(line, orb.Point{s.Longitude, s.Latitude})
	}

	fc := geojson.NewFeatureCollection()
	track := geojson.NewFeature(line)
	track.Properties["session_id"] = session.ID.String()
	track.Properties["user_id"] = session.UserID.String()
	track.Properties["status"] = string(session.Status)
	track.Properties["samples"] = len(line)
	if session.TotalDistanceKm != nil {
		track.Properties["total_distance_km"] = *session.TotalDistanceKm
	}
	fc.Append(track)

	return fc, nil
}

func (srv *sessionService) computeMetrics(
	ctx context.Context,
	sampleRepo repository.LocationSampleRepository,
	visitRepo repository.VisitRepository,
	session *entity.WorkingSession,
	now time.Time,
) (entity.SessionMetrics, error) {
	windowEnd := session.WindowEnd(now)

	samples, err := sampleRepo.FindSamplesByUserInRange(ctx, session.UserID, session.StartedAt, windowEnd)
	if err != nil {
		return entity.SessionMetrics{}, errors.Wrap(err, "failed to find session samples")
	}

	pdvs, err := visitRepo.CountDistinctValidPDVs(ctx, session.UserID, session.StartedAt, windowEnd)
	if err != nil {
		return entity.SessionMetrics{}, errors.Wrap(err, "failed to count visited pdvs")
	}

	dist := accumulateDistance(samples, srv.plausibility)

	return entity.SessionMetrics{
		TotalDistanceKm:      dist.meters / 1000,
		TotalPDVsVisited:     pdvs,
		TotalDurationMinutes: entity.DurationMinutesBetween(session.StartedAt, windowEnd),
		SegmentsKept:         dist.kept,
		SegmentsDiscarded:    dist.discarded,
	}, nil
}

func (srv *sessionService) publishEnded(ctx context.Context, session *entity.WorkingSession) {
	event := &service.VisitEvent{
		Type:       service.EventSessionEnded,
		EventID:    uuid.New().String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		UserID:     session.UserID.String(),
		SessionID:  session.ID.String(),
		OccurredAt: srv.now(),
	}
	if err := srv.eventPublisher.PublishVisitEvent(ctx, event); err != nil {
		metrics.RecordPublishFailure(string(event.Type))
		srv.log(ctx).Error("Failed to publish session event", slog.Any("session_id", session.ID), slog.Any("error", err))
	}
}

func findSession(ctx context.Context, sessionRepo repository.SessionRepository, sessionID uuid.UUID) (*entity.WorkingSession, error) {
	session, err := sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound.WithDetails(sessionID.String())
		}

		return nil, errors.Wrap(err, "failed to find working session")
	}

	return session, nil
}

func findOwnedSession(ctx context.Context, sessionRepo repository.SessionRepository, userID, sessionID uuid.UUID) (*entity.WorkingSession, error) {
	session, err := findSession(ctx, sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, domainerrors.ErrForbidden.WithDetails("session belongs to another user")
	}

	return session, nil
}

func mapSessionUpdateError(err error) error {
	if errors.Is(err, repository.ErrSessionStatusChanged) {
		return domainerrors.ErrInvalidStateTransition.WithDetails("session status changed concurrently")
	}

	return errors.Wrap(err, "failed to update working session")
}

func validateSessionLocation(input *usecase.SessionLocationInput) error {
	if input == nil || (input.Latitude == nil && input.Longitude == nil) {
		return nil
	}
	if input.Latitude == nil || input.Longitude == nil || !entity.ValidCoordinate(*input.Latitude, *input.Longitude) {
		return domainerrors.ErrInvalidCoordinate
	}

	return nil
}
