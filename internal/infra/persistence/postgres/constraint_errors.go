package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Partial unique indexes that back the per-user single-open-record rules.
const (
	constraintVisitInProgress = "ux_visits_user_in_progress"
	constraintSessionOpen     = "ux_working_sessions_user_open"
)

// isUniqueViolationOn reports whether err is a unique violation raised by the named constraint.
// An empty constraint name matches any unique violation.
func isUniqueViolationOn(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
	}

	// A translated error has lost the constraint name. Visits and sessions carry no other
	// unique key besides their service-generated primary key, so it can only be the named one.
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
