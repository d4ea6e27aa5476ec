package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitModel is the GORM-specific struct for the 'visits' table.
// The partial unique index ux_visits_user_in_progress is created by the migrator.
type VisitModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID              uuid.UUID  `gorm:"type:uuid;not null;index:idx_visits_user_check_in,priority:1"`
	PDVID               uuid.UUID  `gorm:"column:pdv_id;type:uuid;not null;index"`
	SessionID           *uuid.UUID `gorm:"type:uuid;index"`
	CheckInAt           time.Time  `gorm:"not null;index:idx_visits_user_check_in,priority:2"`
	CheckInLat          float64    `gorm:"type:double precision;not null"`
	CheckInLng          float64    `gorm:"type:double precision;not null"`
	DistanceToPDVMeters float64    `gorm:"column:distance_to_pdv_meters;type:double precision;not null"`
	UsedMockLocation    bool       `gorm:"not null;default:false"`
	GeofenceConfigured  bool       `gorm:"not null;default:false"`
	IsValid             bool       `gorm:"not null;default:false"`
	CheckOutAt          *time.Time
	DurationMinutes     *int
	Status              string  `gorm:"type:varchar(20);not null"`
	Notes               *string `gorm:"type:text"`
	AttachmentsRef      *string `gorm:"type:varchar(255)"`
	CancelReason        *string `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visits"
}
