package entity

import "github.com/google/uuid"

// PDV is the read-only view of a point of sale exposed by the hierarchy collaborator.
type PDV struct {
	ID        uuid.UUID `json:"id"`
	RouteID   uuid.UUID `json:"route_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	IsActive  bool      `json:"is_active"`
}

// HasCoordinates reports whether the PDV carries its own position.
func (p *PDV) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// UserRoute is an assignment of an agent to a route.
type UserRoute struct {
	UserID   uuid.UUID `json:"user_id"`
	RouteID  uuid.UUID `json:"route_id"`
	IsActive bool      `json:"is_active"`
}
