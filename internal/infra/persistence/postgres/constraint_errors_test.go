package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolationOn(t *testing.T) {
	visitDup := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintVisitInProgress}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"matching constraint", visitDup, constraintVisitInProgress, true},
		{"wrapped", fmt.Errorf("insert: %w", visitDup), constraintVisitInProgress, true},
		{"other constraint", visitDup, constraintSessionOpen, false},
		{"any unique", visitDup, "", true},
		{"not unique", &pgconn.PgError{Code: pgForeignKeyViolation}, "", false},
		{"translated by gorm", gorm.ErrDuplicatedKey, constraintSessionOpen, true},
		{"plain error", errors.New("boom"), constraintSessionOpen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolationOn(tt.err, tt.constraint))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: pgUniqueViolation}))
}
