package entity

import (
	"github.com/google/uuid"
)

// DefaultGeofenceRadiusMeters applies when a geofence is stored without a usable radius.
const DefaultGeofenceRadiusMeters = 50.0

// TriggerType tells the configuration collaborator which crossings the fence reacts to.
type TriggerType string

const (
	TriggerEnter TriggerType = "enter"
	TriggerExit  TriggerType = "exit"
	TriggerBoth  TriggerType = "both"
)

// Geofence is a circular containment zone around a PDV.
// Owned by the geofence configuration collaborator; at most one is active per PDV.
type Geofence struct {
	ID           uuid.UUID   `json:"id"`
	PDVID        uuid.UUID   `json:"pdv_id"`
	CenterLat    float64     `json:"center_lat"`
	CenterLng    float64     `json:"center_lng"`
	RadiusMeters float64     `json:"radius_meters"`
	IsActive     bool        `json:"is_active"`
	TriggerType  TriggerType `json:"trigger_type"`
}

// GeofenceEvaluation is the outcome of testing a point against a PDV's active geofence.
type GeofenceEvaluation struct {
	PDVID              uuid.UUID `json:"pdv_id"`
	DistanceMeters     float64   `json:"distance_meters"`
	WithinRadius       bool      `json:"within_radius"`
	GeofenceConfigured bool      `json:"geofence_configured"`
	RadiusMeters       float64   `json:"radius_meters,omitempty"`
}
