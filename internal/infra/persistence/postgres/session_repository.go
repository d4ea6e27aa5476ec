package postgres

import (
	"context"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

var openSessionStatuses = []string{string(entity.SessionActive), string(entity.SessionPaused)}

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) CreateSession(ctx context.Context, session *entity.WorkingSession) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueViolationOn(err, constraintSessionOpen) {
			return repository.ErrOpenSessionConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create working session")
	}

	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindSessionByID locks the row when called inside a transaction so that EndSession
// serializes with concurrent transitions of the same session.
func (repo *sessionRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.WorkingSession, error) {
	var sessionM model.WorkingSessionModel

	query := primary(ctx, repo.db)
	if inTransaction(query) {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.Where("id = ?", id).First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find working session by ID")
	}

	return toSessionDomain(&sessionM), nil
}

func (repo *sessionRepository) FindOpenByUser(ctx context.Context, userID uuid.UUID) (*entity.WorkingSession, error) {
	var sessionM model.WorkingSessionModel

	if err := primary(ctx, repo.db).
		Where("user_id = ? AND status IN ?", userID, openSessionStatuses).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find open working session")
	}

	return toSessionDomain(&sessionM), nil
}

func (repo *sessionRepository) UpdateSession(ctx context.Context, session *entity.WorkingSession, expected entity.SessionStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkingSessionModel{}).
		Where("id = ? AND status = ?", session.ID, string(expected)).
		Updates(map[string]any{
			"status":                 string(session.Status),
			"ended_at":               session.EndedAt,
			"end_lat":                session.EndLat,
			"end_lng":                session.EndLng,
			"total_distance_km":      session.TotalDistanceKm,
			"total_pdvs_visited":     session.TotalPDVsVisited,
			"total_duration_minutes": session.TotalDurationMinutes,
			"metrics_stale":          session.MetricsStale,
			"metrics_computed_at":    session.MetricsComputedAt,
			"updated_at":             session.UpdatedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update working session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionStatusChanged
	}

	return nil
}

// SaveMetrics is a compare-and-set on the status and ended_at the metrics were computed from.
// An EndSession or cancel committed in between wins; the late write affects no rows.
func (repo *sessionRepository) SaveMetrics(ctx context.Context, session *entity.WorkingSession) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkingSessionModel{}).
		Where("id = ? AND status = ? AND status <> ?", session.ID, string(session.Status), string(entity.SessionCancelled)).
		Where("ended_at IS NOT DISTINCT FROM ?", session.EndedAt).
		Updates(map[string]any{
			"total_distance_km":      session.TotalDistanceKm,
			"total_pdvs_visited":     session.TotalPDVsVisited,
			"total_duration_minutes": session.TotalDurationMinutes,
			"metrics_stale":          false,
			"metrics_computed_at":    session.MetricsComputedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to save session metrics")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionStatusChanged
	}

	return nil
}

func (repo *sessionRepository) MarkMetricsStale(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.WorkingSessionModel{}).
		Where("user_id = ? AND status IN ?", userID, openSessionStatuses).
		Update("metrics_stale", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark session metrics stale")
	}

	return nil
}

func (repo *sessionRepository) FindStaleSessions(ctx context.Context, limit int) ([]*entity.WorkingSession, error) {
	var sessionModels []*model.WorkingSessionModel

	if err := repo.db.WithContext(ctx).
		Where("metrics_stale = ? AND status <> ?", true, string(entity.SessionCancelled)).
		Order("updated_at ASC").
		Limit(limit).
		Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stale sessions")
	}

	sessions := make([]*entity.WorkingSession, 0, len(sessionModels))
	for _, m := range sessionModels {
		sessions = append(sessions, toSessionDomain(m))
	}

	return sessions, nil
}

// primary pins a read to the write source. State checks right after a write must not
// be served by a lagging replica.
func primary(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).Clauses(dbresolver.Write)
}

// inTransaction reports whether db is bound to an open *sql.Tx.
func inTransaction(db *gorm.DB) bool {
	_, ok := db.Statement.ConnPool.(gorm.TxCommitter)

	return ok
}

// --- Mapper Functions ---

func toSessionDomain(data *model.WorkingSessionModel) *entity.WorkingSession {
	if data == nil {
		return nil
	}

	return &entity.WorkingSession{
		ID:                   data.ID,
		UserID:               data.UserID,
		StartedAt:            data.StartedAt,
		StartLat:             data.StartLat,
		StartLng:             data.StartLng,
		EndedAt:              data.EndedAt,
		EndLat:               data.EndLat,
		EndLng:               data.EndLng,
		TotalDistanceKm:      data.TotalDistanceKm,
		TotalPDVsVisited:     data.TotalPDVsVisited,
		TotalDurationMinutes: data.TotalDurationMinutes,
		Status:               entity.SessionStatus(data.Status),
		MetricsStale:         data.MetricsStale,
		MetricsComputedAt:    data.MetricsComputedAt,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromSessionDomain(data *entity.WorkingSession) *model.WorkingSessionModel {
	if data == nil {
		return nil
	}

	return &model.WorkingSessionModel{
		ID:                   data.ID,
		UserID:               data.UserID,
		StartedAt:            data.StartedAt,
		StartLat:             data.StartLat,
		StartLng:             data.StartLng,
		EndedAt:              data.EndedAt,
		EndLat:               data.EndLat,
		EndLng:               data.EndLng,
		TotalDistanceKm:      data.TotalDistanceKm,
		TotalPDVsVisited:     data.TotalPDVsVisited,
		TotalDurationMinutes: data.TotalDurationMinutes,
		Status:               string(data.Status),
		MetricsStale:         data.MetricsStale,
		MetricsComputedAt:    data.MetricsComputedAt,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
