package impl

import (
	"context"
	"log/slog"

	"fieldtrack/config"
	deliverycontext "fieldtrack/internal/delivery/context"
	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/geo"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GeofenceServiceParams holds dependencies for GeofenceService, injected by Fx.
type GeofenceServiceParams struct {
	fx.In

	GeofenceRepo  repository.GeofenceRepository
	HierarchyRepo repository.HierarchyRepository
	Config        *config.Config
	Logger        *slog.Logger
}

type geofenceService struct {
	geofenceRepo  repository.GeofenceRepository
	hierarchyRepo repository.HierarchyRepository
	defaultRadius float64
	logger        *slog.Logger
}

// NewGeofenceService creates a new geofence evaluator
func NewGeofenceService(params GeofenceServiceParams) usecase.GeofenceUsecase {
	defaultRadius := entity.DefaultGeofenceRadiusMeters
	if params.Config != nil && params.Config.Tracking != nil && params.Config.Tracking.DefaultGeofenceRadiusMeters > 0 {
		defaultRadius = params.Config.Tracking.DefaultGeofenceRadiusMeters
	}

	return &geofenceService{
		geofenceRepo:  params.GeofenceRepo,
		hierarchyRepo: params.HierarchyRepo,
		defaultRadius: defaultRadius,
		logger:        params.Logger,
	}
}

func (srv *geofenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Evaluate measures the point against the PDV's active geofence.
// A PDV without an active geofence is reported as unconfigured and never within radius.
func (srv *geofenceService) Evaluate(ctx context.Context, pdvID uuid.UUID, lat, lng float64) (*entity.GeofenceEvaluation, error) {
	if !entity.ValidCoordinate(lat, lng) {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails(coordinateDetails(lat, lng))
	}

	pdv, err := srv.hierarchyRepo.FindPDVByID(ctx, pdvID)
	if err != nil {
		if errors.Is(err, repository.ErrPDVNotFound) {
			return nil, domainerrors.ErrPDVNotFound.WithDetails(pdvID.String())
		}

		return nil, errors.Wrap(err, "failed to find pdv")
	}
	// Retired PDVs stay in the hierarchy for reporting but take no new check-ins.
	if !pdv.IsActive {
		return nil, domainerrors.ErrPDVNotFound.WithDetails("pdv is inactive")
	}

	point := geo.Point(lat, lng)

	fence, err := srv.geofenceRepo.FindActiveByPDV(ctx, pdvID)
	if errors.Is(err, repository.ErrGeofenceNotFound) {
		srv.log(ctx).Warn("No active geofence for PDV", slog.Any("pdv_id", pdvID))

		distance := 0.0
		if pdv.HasCoordinates() {
			distance = geo.HaversineMeters(geo.Point(*pdv.Latitude, *pdv.Longitude), point)
		}

		return &entity.GeofenceEvaluation{
			PDVID:              pdvID,
			DistanceMeters:     distance,
			WithinRadius:       false,
			GeofenceConfigured: false,
		}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active geofence")
	}

	radius := fence.RadiusMeters
	if radius <= 0 {
		radius = srv.defaultRadius
	}
	circle := geo.Circle{Center: geo.Point(fence.CenterLat, fence.CenterLng), RadiusMeters: radius}
	distance, within := circle.Contains(point)

	return &entity.GeofenceEvaluation{
		PDVID:              pdvID,
		DistanceMeters:     distance,
		WithinRadius:       within,
		GeofenceConfigured: true,
		RadiusMeters:       radius,
	}, nil
}
