package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationSampleModel is the GORM-specific struct for the 'location_samples' table.
// Rows are append-only; duplicates by recorded_at are kept.
type LocationSampleModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_location_samples_user_recorded,priority:1"`
	Latitude       float64   `gorm:"type:double precision;not null"`
	Longitude      float64   `gorm:"type:double precision;not null"`
	Accuracy       *float64  `gorm:"type:double precision"`
	SpeedKmh       *float64  `gorm:"type:double precision"`
	HeadingDeg     *float64  `gorm:"type:double precision"`
	BatteryPct     *float64  `gorm:"type:double precision"`
	IsMockLocation bool      `gorm:"not null;default:false"`
	Geohash        string    `gorm:"type:varchar(12);index"`
	RecordedAt     time.Time `gorm:"not null;index:idx_location_samples_user_recorded,priority:2"`
	ReceivedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (LocationSampleModel) TableName() string {
	return "location_samples"
}
