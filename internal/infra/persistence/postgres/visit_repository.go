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

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{db: db}
}

// CreateVisit relies on ux_visits_user_in_progress to reject a second in-progress visit,
// so two racing check-ins cannot both succeed.
func (repo *visitRepository) CreateVisit(ctx context.Context, visit *entity.Visit) error {
	visitM := fromVisitDomain(visit)

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		if isUniqueViolationOn(err, constraintVisitInProgress) {
			return repository.ErrVisitInProgressConflict
		}
		if isForeignKeyViolation(err) {
			return domainerrors.ErrPDVNotFound.WithDetails("visit references an unknown pdv or session")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit")
	}

	visit.CreatedAt = visitM.CreatedAt
	visit.UpdatedAt = visitM.UpdatedAt

	return nil
}

func (repo *visitRepository) FindVisitByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	var visitM model.VisitModel

	if err := primary(ctx, repo.db).Where("id = ?", id).First(&visitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit by ID")
	}

	return toVisitDomain(&visitM), nil
}

func (repo *visitRepository) FindInProgressByUser(ctx context.Context, userID uuid.UUID) (*entity.Visit, error) {
	var visitM model.VisitModel

	if err := primary(ctx, repo.db).
		Where("user_id = ? AND status = ?", userID, entity.VisitInProgress).
		First(&visitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit in progress")
	}

	return toVisitDomain(&visitM), nil
}

func (repo *visitRepository) FindVisitsByUserInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Visit, error) {
	var visitModels []*model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND check_in_at BETWEEN ? AND ?", userID, from, to).
		Order("check_in_at DESC").
		Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visits by user")
	}

	visits := make([]*entity.Visit, 0, len(visitModels))
	for _, m := range visitModels {
		visits = append(visits, toVisitDomain(m))
	}

	return visits, nil
}

// CompleteVisit is a compare-and-set on status; losing a race to cancel leaves zero rows affected.
func (repo *visitRepository) CompleteVisit(ctx context.Context, visit *entity.Visit) error {
	return repo.transitionFromInProgress(ctx, visit.ID, map[string]any{
		"status":           string(visit.Status),
		"check_out_at":     visit.CheckOutAt,
		"duration_minutes": visit.DurationMinutes,
		"notes":            visit.Notes,
		"attachments_ref":  visit.AttachmentsRef,
		"updated_at":       visit.UpdatedAt,
	})
}

func (repo *visitRepository) CancelVisit(ctx context.Context, visit *entity.Visit) error {
	return repo.transitionFromInProgress(ctx, visit.ID, map[string]any{
		"status":        string(visit.Status),
		"cancel_reason": visit.CancelReason,
		"updated_at":    visit.UpdatedAt,
	})
}

func (repo *visitRepository) transitionFromInProgress(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("id = ? AND status = ?", id, entity.VisitInProgress).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update visit")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVisitNotInProgress
	}

	return nil
}

func (repo *visitRepository) CountDistinctValidPDVs(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	var count int64

	if err := repo.validCompletedVisits(ctx, userID, from, to).
		Distinct("pdv_id").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count visited pdvs")
	}

	return int(count), nil
}

func (repo *visitRepository) CountDistinctValidPDVsOnRoute(ctx context.Context, userID, routeID uuid.UUID, from, to time.Time) (int, error) {
	var count int64

	if err := repo.validCompletedVisits(ctx, userID, from, to).
		Joins("JOIN pdvs ON pdvs.id = visits.pdv_id").
		Where("pdvs.route_id = ?", routeID).
		Distinct("visits.pdv_id").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count visited pdvs on route")
	}

	return int(count), nil
}

func (repo *visitRepository) validCompletedVisits(ctx context.Context, userID uuid.UUID, from, to time.Time) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("visits.user_id = ? AND visits.status = ? AND visits.is_valid = ?", userID, entity.VisitCompleted, true).
		Where("visits.check_in_at BETWEEN ? AND ?", from, to)
}

// --- Mapper Functions ---

func toVisitDomain(data *model.VisitModel) *entity.Visit {
	if data == nil {
		return nil
	}

	return &entity.Visit{
		ID:                  data.ID,
		UserID:              data.UserID,
		PDVID:               data.PDVID,
		SessionID:           data.SessionID,
		CheckInAt:           data.CheckInAt,
		CheckInLat:          data.CheckInLat,
		CheckInLng:          data.CheckInLng,
		DistanceToPDVMeters: data.DistanceToPDVMeters,
		UsedMockLocation:    data.UsedMockLocation,
		GeofenceConfigured:  data.GeofenceConfigured,
		IsValid:             data.IsValid,
		CheckOutAt:          data.CheckOutAt,
		DurationMinutes:     data.DurationMinutes,
		Status:              entity.VisitStatus(data.Status),
		Notes:               data.Notes,
		AttachmentsRef:      data.AttachmentsRef,
		CancelReason:        data.CancelReason,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromVisitDomain(data *entity.Visit) *model.VisitModel {
	if data == nil {
		return nil
	}

	return &model.VisitModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		PDVID:               data.PDVID,
		SessionID:           data.SessionID,
		CheckInAt:           data.CheckInAt,
		CheckInLat:          data.CheckInLat,
		CheckInLng:          data.CheckInLng,
		DistanceToPDVMeters: data.DistanceToPDVMeters,
		UsedMockLocation:    data.UsedMockLocation,
		GeofenceConfigured:  data.GeofenceConfigured,
		IsValid:             data.IsValid,
		CheckOutAt:          data.CheckOutAt,
		DurationMinutes:     data.DurationMinutes,
		Status:              string(data.Status),
		Notes:               data.Notes,
		AttachmentsRef:      data.AttachmentsRef,
		CancelReason:        data.CancelReason,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
