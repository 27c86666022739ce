package signage

import (
	"github.com/geotrail/backend/internal/domain/shared"
)

// Event types emitted by the signage context
const (
	EventSignageCreated = "signage.signage.created"
	EventBladeCreated   = "signage.blade.created"
)

// SignageCreatedEvent is emitted when a signpost is planted
type SignageCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewSignageCreatedEvent creates a new signage created event
func NewSignageCreatedEvent(s *Signage) *SignageCreatedEvent {
	return &SignageCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventSignageCreated, "Signage", s.ID, s.StructureID),
		Name:            s.Name,
	}
}

// BladeCreatedEvent is emitted when a blade is mounted
type BladeCreatedEvent struct {
	shared.BaseDomainEvent
	Number string `json:"number"`
}

// NewBladeCreatedEvent creates a new blade created event
func NewBladeCreatedEvent(b *Blade) *BladeCreatedEvent {
	return &BladeCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventBladeCreated, "Blade", b.ID, b.StructureID),
		Number:          b.Number,
	}
}
