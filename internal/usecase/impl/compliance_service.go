package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"fieldtrack/config"
	deliverycontext "fieldtrack/internal/delivery/context"
	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/domain/service"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ComplianceServiceParams holds dependencies for ComplianceService, injected by Fx.
type ComplianceServiceParams struct {
	fx.In

	ScheduleRepo  repository.ScheduleRepository
	HierarchyRepo repository.HierarchyRepository
	VisitRepo     repository.VisitRepository
	Cache         service.ComplianceCache
	Config        *config.Config
	Logger        *slog.Logger
}

type complianceService struct {
	scheduleRepo  repository.ScheduleRepository
	hierarchyRepo repository.HierarchyRepository
	visitRepo     repository.VisitRepository
	cache         service.ComplianceCache
	location      *time.Location
	logger        *slog.Logger
}

// NewComplianceService creates the schedule compliance scorer
func NewComplianceService(params ComplianceServiceParams) (usecase.ComplianceUsecase, error) {
	location := time.UTC
	if params.Config != nil && params.Config.Compliance != nil {
		loc, err := params.Config.ComplianceLocation()
		if err != nil {
			return nil, err
		}
		location = loc
	}

	return &complianceService{
		scheduleRepo:  params.ScheduleRepo,
		hierarchyRepo: params.HierarchyRepo,
		visitRepo:     params.VisitRepo,
		cache:         params.Cache,
		location:      location,
		logger:        params.Logger,
	}, nil
}

func (srv *complianceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Score compares completed valid visits on the route with the scheduled dates in the inclusive range.
// Percentage stays nil when nothing is scheduled.
func (srv *complianceService) Score(ctx context.Context, actor usecase.Actor, input *usecase.ScoreInput) (*entity.ComplianceScore, error) {
	userID := input.UserID
	if userID == uuid.Nil {
		userID = actor.UserID
	}
	if !actor.CanRead(userID) {
		return nil, domainerrors.ErrForbidden.WithDetails("agents can only score themselves")
	}
	if input.RouteID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("route_id is required")
	}

	from, err := time.ParseInLocation(time.DateOnly, input.DateFrom, srv.location)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from must be YYYY-MM-DD")
	}
	to, err := time.ParseInLocation(time.DateOnly, input.DateTo, srv.location)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("to must be YYYY-MM-DD")
	}
	if from.After(to) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from must not be after to")
	}

	if !actor.IsSupervisor() {
		assigned, err := srv.hierarchyRepo.IsUserAssignedToRoute(ctx, userID, input.RouteID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check route assignment")
		}
		if !assigned {
			return nil, domainerrors.ErrForbidden.WithDetails("user is not assigned to the route")
		}
	}

	// The generation is pinned before the counts are read, so a checkout landing mid-computation
	// invalidates the score written below.
	key, cacheable := srv.pinCacheKey(ctx, service.ComplianceCacheKey{
		UserID: userID, RouteID: input.RouteID, DateFrom: input.DateFrom, DateTo: input.DateTo,
	})
	if cacheable {
		cached, err := srv.cache.Get(ctx, key)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, service.ErrCacheMiss) {
			srv.log(ctx).Warn("Compliance cache read failed", slog.Any("error", err))
		}
	}

	programmed, err := srv.scheduleRepo.CountActiveVisitDates(ctx, input.RouteID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count scheduled visit dates")
	}

	// Visits are matched by check-in instant over whole local days.
	windowEnd := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	visited, err := srv.visitRepo.CountDistinctValidPDVsOnRoute(ctx, userID, input.RouteID, from, windowEnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count visited pdvs")
	}

	score := &entity.ComplianceScore{
		UserID:          userID,
		RouteID:         input.RouteID,
		DateFrom:        input.DateFrom,
		DateTo:          input.DateTo,
		ProgrammedCount: programmed,
		VisitedCount:    visited,
		Percentage:      compliancePercentage(visited, programmed),
	}

	if cacheable {
		if err := srv.cache.Set(ctx, key, score); err != nil {
			srv.log(ctx).Warn("Compliance cache write failed", slog.Any("error", err))
		}
	}

	return score, nil
}

// pinCacheKey reports false when the generation cannot be read; the score is then neither
// read from nor written to the cache.
func (srv *complianceService) pinCacheKey(ctx context.Context, key service.ComplianceCacheKey) (service.ComplianceCacheKey, bool) {
	pinned, err := srv.cache.Pin(ctx, key)
	if err != nil {
		srv.log(ctx).Warn("Compliance cache unavailable", slog.Any("error", err))

		return key, false
	}

	return pinned, true
}

// Invalidate drops the user's cached scores.
func (srv *complianceService) Invalidate(ctx context.Context, userID uuid.UUID) {
	if err := srv.cache.Invalidate(ctx, userID); err != nil {
		srv.log(ctx).Warn("Compliance cache invalidation failed", slog.Any("user_id", userID), slog.Any("error", err))
	}
}

// compliancePercentage rounds to one decimal and caps at 100.
func compliancePercentage(visited, programmed int) *float64 {
	if programmed <= 0 {
		return nil
	}

	pct := math.Round(float64(visited)/float64(programmed)*1000) / 10
	pct = math.Min(100, math.Max(0, pct))

	return &pct
}
