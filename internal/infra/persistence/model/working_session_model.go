package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkingSessionModel is the GORM-specific struct for the 'working_sessions' table.
// The partial unique index ux_working_sessions_user_open is created by the migrator.
type WorkingSessionModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;index"`
	StartedAt            time.Time `gorm:"not null"`
	StartLat             *float64  `gorm:"type:double precision"`
	StartLng             *float64  `gorm:"type:double precision"`
	EndedAt              *time.Time
	EndLat               *float64 `gorm:"type:double precision"`
	EndLng               *float64 `gorm:"type:double precision"`
	TotalDistanceKm      *float64 `gorm:"type:double precision"`
	TotalPDVsVisited     int      `gorm:"column:total_pdvs_visited;not null;default:0"`
	TotalDurationMinutes *int
	Status               string `gorm:"type:varchar(20);not null"`
	MetricsStale         bool   `gorm:"not null;default:false;index"`
	MetricsComputedAt    *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkingSessionModel) TableName() string {
	return "working_sessions"
}
