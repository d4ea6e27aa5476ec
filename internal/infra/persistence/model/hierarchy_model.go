package model

import (
	"time"

	"github.com/google/uuid"
)

// The tables below belong to the configuration collaborator. The core only reads them;
// the models exist so development databases can be migrated and seeded.

// PDVModel is the GORM-specific struct for the 'pdvs' table.
type PDVModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RouteID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Code      string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Latitude  *float64  `gorm:"type:double precision"`
	Longitude *float64  `gorm:"type:double precision"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PDVModel) TableName() string {
	return "pdvs"
}

// GeofenceModel is the GORM-specific struct for the 'geofences' table.
type GeofenceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PDVID        uuid.UUID `gorm:"column:pdv_id;type:uuid;not null;index"`
	CenterLat    float64   `gorm:"type:double precision;not null"`
	CenterLng    float64   `gorm:"type:double precision;not null"`
	RadiusMeters float64   `gorm:"type:double precision;not null;default:50"`
	IsActive     bool      `gorm:"not null;default:true"`
	TriggerType  string    `gorm:"type:varchar(10);not null;default:'both'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (GeofenceModel) TableName() string {
	return "geofences"
}

// UserRouteModel is the GORM-specific struct for the 'user_routes' table.
type UserRouteModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserRouteModel) TableName() string {
	return "user_routes"
}

// ScheduledVisitDateModel is the GORM-specific struct for the 'scheduled_visit_dates' table.
type ScheduledVisitDateModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RouteID   uuid.UUID `gorm:"type:uuid;not null;index:idx_scheduled_visit_dates_route_date,priority:1"`
	VisitDate time.Time `gorm:"type:date;not null;index:idx_scheduled_visit_dates_route_date,priority:2"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduledVisitDateModel) TableName() string {
	return "scheduled_visit_dates"
}
