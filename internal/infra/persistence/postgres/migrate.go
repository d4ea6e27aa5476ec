package postgres

import (
	"context"

	"fieldtrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// partialIndexes back the per-user exclusivity rules. GORM tags cannot express a WHERE clause.
var partialIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + constraintVisitInProgress +
		` ON visits (user_id) WHERE status = 'in_progress'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + constraintSessionOpen +
		` ON working_sessions (user_id) WHERE status IN ('active', 'paused')`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_geofences_pdv_active ON geofences (pdv_id) WHERE is_active`,
	`CREATE INDEX IF NOT EXISTS idx_working_sessions_stale ON working_sessions (updated_at) WHERE metrics_stale`,
}

// Migrate creates or updates the tracking tables. Collaborator tables are included so that
// development and test databases are self-contained.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&model.PDVModel{},
			&model.GeofenceModel{},
			&model.UserRouteModel{},
			&model.ScheduledVisitDateModel{},
			&model.LocationSampleModel{},
			&model.WorkingSessionModel{},
			&model.VisitModel{},
		); err != nil {
			return errors.Wrap(err, "auto migrate")
		}

		for _, stmt := range partialIndexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return errors.Wrapf(err, "create index: %s", stmt)
			}
		}

		return nil
	})
}
