package authent

import (
	"github.com/geotrail/backend/internal/domain/shared"
)

// Event types emitted by the authent context
const (
	EventStructureCreated = "authent.structure.created"
	EventUserCreated      = "authent.user.created"
)

// StructureCreatedEvent is emitted when a new structure is registered
type StructureCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewStructureCreatedEvent creates a new structure created event
func NewStructureCreatedEvent(s *Structure) *StructureCreatedEvent {
	return &StructureCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventStructureCreated, "Structure", s.ID, s.ID),
		Name:            s.Name,
	}
}

// UserCreatedEvent is emitted when a new user account is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
}

// NewUserCreatedEvent creates a new user created event
func NewUserCreatedEvent(u *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventUserCreated, "User", u.ID, u.StructureID),
		Username:        u.Username,
	}
}
