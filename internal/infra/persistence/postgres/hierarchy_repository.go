package postgres

import (
	"context"
	"time"

	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// hierarchyRepository reads the PDV, geofence, assignment and schedule tables
// maintained by the configuration collaborator.
type hierarchyRepository struct {
	db *gorm.DB
}

// NewHierarchyRepository is the constructor for hierarchyRepository.
func NewHierarchyRepository(db *gorm.DB) repository.HierarchyRepository {
	return &hierarchyRepository{db: db}
}

// NewGeofenceRepository exposes the geofence reads of the hierarchy tables.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &hierarchyRepository{db: db}
}

// NewScheduleRepository exposes the schedule reads of the hierarchy tables.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &hierarchyRepository{db: db}
}

func (repo *hierarchyRepository) FindPDVByID(ctx context.Context, pdvID uuid.UUID) (*entity.PDV, error) {
	return repo.findPDV(ctx, "id = ?", pdvID)
}

func (repo *hierarchyRepository) FindPDVByCode(ctx context.Context, code string) (*entity.PDV, error) {
	return repo.findPDV(ctx, "code = ?", code)
}

func (repo *hierarchyRepository) findPDV(ctx context.Context, query string, arg any) (*entity.PDV, error) {
	var pdvM model.PDVModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&pdvM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPDVNotFound
		}

		return nil, errors.Wrap(err, "failed to find pdv")
	}

	return &entity.PDV{
		ID:        pdvM.ID,
		RouteID:   pdvM.RouteID,
		Code:      pdvM.Code,
		Name:      pdvM.Name,
		Latitude:  pdvM.Latitude,
		Longitude: pdvM.Longitude,
		IsActive:  pdvM.IsActive,
	}, nil
}

func (repo *hierarchyRepository) IsUserAssignedToRoute(ctx context.Context, userID, routeID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserRouteModel{}).
		Where("user_id = ? AND route_id = ? AND is_active = ?", userID, routeID, true).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check route assignment")
	}

	return count > 0, nil
}

func (repo *hierarchyRepository) FindActiveByPDV(ctx context.Context, pdvID uuid.UUID) (*entity.Geofence, error) {
	var fenceM model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("pdv_id = ? AND is_active = ?", pdvID, true).
		Order("updated_at DESC").
		First(&fenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeofenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find active geofence")
	}

	return &entity.Geofence{
		ID:           fenceM.ID,
		PDVID:        fenceM.PDVID,
		CenterLat:    fenceM.CenterLat,
		CenterLng:    fenceM.CenterLng,
		RadiusMeters: fenceM.RadiusMeters,
		IsActive:     fenceM.IsActive,
		TriggerType:  entity.TriggerType(fenceM.TriggerType),
	}, nil
}

// CountActiveVisitDates compares calendar dates only; the bounds' time of day is ignored.
func (repo *hierarchyRepository) CountActiveVisitDates(ctx context.Context, routeID uuid.UUID, from, to time.Time) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ScheduledVisitDateModel{}).
		Where("route_id = ? AND is_active = ?", routeID, true).
		Where("visit_date BETWEEN ?::date AND ?::date", from.Format(time.DateOnly), to.Format(time.DateOnly)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count scheduled visit dates")
	}

	return int(count), nil
}
