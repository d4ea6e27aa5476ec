package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fieldtrack/internal/delivery/context"
	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/domain/service"
	"fieldtrack/internal/infra/metrics"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VisitServiceParams holds dependencies for VisitService, injected by Fx.
type VisitServiceParams struct {
	fx.In

	Geofence       usecase.GeofenceUsecase
	Compliance     usecase.ComplianceUsecase
	VisitRepo      repository.VisitRepository
	SessionRepo    repository.SessionRepository
	HierarchyRepo  repository.HierarchyRepository
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

type visitService struct {
	geofence       usecase.GeofenceUsecase
	compliance     usecase.ComplianceUsecase
	visitRepo      repository.VisitRepository
	sessionRepo    repository.SessionRepository
	hierarchyRepo  repository.HierarchyRepository
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	logger         *slog.Logger
	now            func() time.Time
}

// NewVisitService creates the visit lifecycle manager
func NewVisitService(params VisitServiceParams) usecase.VisitUsecase {
	return &visitService{
		geofence:       params.Geofence,
		compliance:     params.Compliance,
		visitRepo:      params.VisitRepo,
		sessionRepo:    params.SessionRepo,
		hierarchyRepo:  params.HierarchyRepo,
		qrcodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *visitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckIn opens a visit. The storage layer guarantees at most one in-progress visit per user.
func (srv *visitService) CheckIn(ctx context.Context, userID uuid.UUID, input *usecase.CheckInInput) (*entity.Visit, error) {
	if !entity.ValidCoordinate(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails(coordinateDetails(input.Latitude, input.Longitude))
	}

	pdvID, err := srv.resolvePDV(ctx, input)
	if err != nil {
		return nil, err
	}

	evaluation, err := srv.geofence.Evaluate(ctx, pdvID, input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	visit := &entity.Visit{
		ID:                  uuid.New(),
		UserID:              userID,
		PDVID:               pdvID,
		CheckInAt:           now,
		CheckInLat:          input.Latitude,
		CheckInLng:          input.Longitude,
		DistanceToPDVMeters: evaluation.DistanceMeters,
		UsedMockLocation:    input.IsMockLocation,
		GeofenceConfigured:  evaluation.GeofenceConfigured,
		IsValid:             entity.CheckInValid(evaluation.WithinRadius, input.IsMockLocation),
		Status:              entity.VisitInProgress,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	session, err := srv.sessionRepo.FindOpenByUser(ctx, userID)
	switch {
	case err == nil:
		visit.SessionID = &session.ID
	case !errors.Is(err, repository.ErrSessionNotFound):
		return nil, errors.Wrap(err, "failed to find open session")
	}

	if err := srv.visitRepo.CreateVisit(ctx, visit); err != nil {
		if errors.Is(err, repository.ErrVisitInProgressConflict) {
			return nil, domainerrors.ErrConcurrentVisitConflict
		}

		return nil, errors.Wrap(err, "failed to create visit")
	}

	srv.log(ctx).Info("Visit checked in",
		slog.Any("visit_id", visit.ID),
		slog.Any("pdv_id", pdvID),
		slog.Float64("distance_m", visit.DistanceToPDVMeters),
		slog.Bool("valid", visit.IsValid),
		slog.Bool("geofence_configured", visit.GeofenceConfigured),
	)
	metrics.RecordCheckIn(visit.IsValid)

	return visit, nil
}

func (srv *visitService) resolvePDV(ctx context.Context, input *usecase.CheckInInput) (uuid.UUID, error) {
	if input.PDVID != nil {
		return *input.PDVID, nil
	}
	if input.QRData == "" {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("pdv_id or qr_data is required")
	}

	code, err := srv.qrcodeService.ParsePDVLabel(input.QRData)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	pdv, err := srv.hierarchyRepo.FindPDVByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrPDVNotFound) {
			return uuid.Nil, domainerrors.ErrPDVNotFound.WithDetails(code)
		}

		return uuid.Nil, errors.Wrap(err, "failed to find pdv by code")
	}

	return pdv.ID, nil
}

// CheckOut completes an in-progress visit and notifies downstream consumers.
func (srv *visitService) CheckOut(ctx context.Context, userID, visitID uuid.UUID, input *usecase.CheckOutInput) (*entity.Visit, error) {
	if err := entity.ValidateFormAnswers(input.Answers); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	visit, err := srv.findOwnedVisit(ctx, userID, visitID)
	if err != nil {
		return nil, err
	}

	if !visit.Complete(srv.now(), input.Notes, input.AttachmentsRef) {
		return nil, domainerrors.ErrInvalidStateTransition.WithDetails("visit is " + string(visit.Status))
	}

	if err := srv.visitRepo.CompleteVisit(ctx, visit); err != nil {
		if errors.Is(err, repository.ErrVisitNotInProgress) {
			return nil, domainerrors.ErrInvalidStateTransition.WithDetails("visit is no longer in progress")
		}

		return nil, errors.Wrap(err, "failed to complete visit")
	}

	metrics.RecordVisitTransition(string(entity.VisitCompleted))
	srv.afterCheckOut(ctx, visit, input.Answers)

	return visit, nil
}

// afterCheckOut fans the completion out to the session accumulator and the compliance scorer.
// None of these steps can fail the checkout.
func (srv *visitService) afterCheckOut(ctx context.Context, visit *entity.Visit, answers []entity.FormAnswer) {
	if err := srv.sessionRepo.MarkMetricsStale(ctx, visit.UserID); err != nil {
		srv.log(ctx).Error("Failed to mark session metrics stale", slog.Any("user_id", visit.UserID), slog.Any("error", err))
	}

	srv.publish(ctx, &service.VisitEvent{
		Type:    service.EventVisitCompleted,
		UserID:  visit.UserID.String(),
		VisitID: visit.ID.String(),
		PDVID:   visit.PDVID.String(),
		Answers: answers,
	}, visit.SessionID)

	srv.compliance.Invalidate(ctx, visit.UserID)
}

// Cancel abandons an in-progress visit without a duration.
func (srv *visitService) Cancel(ctx context.Context, userID, visitID uuid.UUID, reason string) (*entity.Visit, error) {
	visit, err := srv.findOwnedVisit(ctx, userID, visitID)
	if err != nil {
		return nil, err
	}

	if !visit.Cancel(srv.now(), reason) {
		return nil, domainerrors.ErrInvalidStateTransition.WithDetails("visit is " + string(visit.Status))
	}

	if err := srv.visitRepo.CancelVisit(ctx, visit); err != nil {
		if errors.Is(err, repository.ErrVisitNotInProgress) {
			return nil, domainerrors.ErrInvalidStateTransition.WithDetails("visit is no longer in progress")
		}

		return nil, errors.Wrap(err, "failed to cancel visit")
	}

	metrics.RecordVisitTransition(string(entity.VisitCancelled))
	srv.publish(ctx, &service.VisitEvent{
		Type:    service.EventVisitCancelled,
		UserID:  visit.UserID.String(),
		VisitID: visit.ID.String(),
		PDVID:   visit.PDVID.String(),
	}, visit.SessionID)

	return visit, nil
}

// GetVisit returns a visit readable by the actor.
func (srv *visitService) GetVisit(ctx context.Context, actor usecase.Actor, visitID uuid.UUID) (*entity.Visit, error) {
	visit, err := srv.findVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if !actor.CanRead(visit.UserID) {
		return nil, domainerrors.ErrForbidden
	}

	return visit, nil
}

// GetActiveVisit returns the user's in-progress visit.
func (srv *visitService) GetActiveVisit(ctx context.Context, userID uuid.UUID) (*entity.Visit, error) {
	visit, err := srv.visitRepo.FindInProgressByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return nil, domainerrors.ErrVisitNotFound.WithDetails("no visit in progress")
		}

		return nil, errors.Wrap(err, "failed to find visit in progress")
	}

	return visit, nil
}

// ListVisits lists the user's visits checked in within [from, to].
func (srv *visitService) ListVisits(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Visit, error) {
	if to.Before(from) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from must not be after to")
	}

	visits, err := srv.visitRepo.FindVisitsByUserInRange(ctx, userID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visits")
	}

	return visits, nil
}

func (srv *visitService) findVisit(ctx context.Context, visitID uuid.UUID) (*entity.Visit, error) {
	visit, err := srv.visitRepo.FindVisitByID(ctx, visitID)
	if err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return nil, domainerrors.ErrVisitNotFound.WithDetails(visitID.String())
		}

		return nil, errors.Wrap(err, "failed to find visit")
	}

	return visit, nil
}

func (srv *visitService) findOwnedVisit(ctx context.Context, userID, visitID uuid.UUID) (*entity.Visit, error) {
	visit, err := srv.findVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit.UserID != userID {
		return nil, domainerrors.ErrForbidden.WithDetails("visit belongs to another user")
	}

	return visit, nil
}

func (srv *visitService) publish(ctx context.Context, event *service.VisitEvent, sessionID *uuid.UUID) {
	event.EventID = uuid.New().String()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = srv.now()
	if sessionID != nil {
		event.SessionID = sessionID.String()
	}

	if err := srv.eventPublisher.PublishVisitEvent(ctx, event); err != nil {
		metrics.RecordPublishFailure(string(event.Type))
		srv.log(ctx).Error("Failed to publish visit event",
			slog.String("type", string(event.Type)),
			slog.String("visit_id", event.VisitID),
			slog.Any("error", err),
		)
	}
}
