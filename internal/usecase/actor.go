package usecase

import (
	"fieldtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a read operation.
type Actor struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// IsSupervisor reports whether the actor may read other users' data.
func (a Actor) IsSupervisor() bool {
	return a.Roles.Contains(entity.RoleSupervisor)
}

// CanRead reports whether the actor may read data owned by ownerID.
func (a Actor) CanRead(ownerID uuid.UUID) bool {
	return a.UserID == ownerID || a.IsSupervisor()
}
