package core

import (
	"github.com/geotrail/backend/internal/domain/shared"
)

// Event types emitted by the core context
const (
	EventPathCreated         = "core.path.created"
	EventPathGeometryChanged = "core.path.geometry_changed"
)

// PathCreatedEvent is emitted when a path is added to the network
type PathCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewPathCreatedEvent creates a new path created event
func NewPathCreatedEvent(p *Path) *PathCreatedEvent {
	return &PathCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPathCreated, "Path", p.ID, p.StructureID),
		Name:            p.Name,
	}
}

// PathGeometryChangedEvent triggers altimetry recomputation
type PathGeometryChangedEvent struct {
	shared.BaseDomainEvent
	EWKT string `json:"ewkt"`
}

// NewPathGeometryChangedEvent creates a new geometry changed event
func NewPathGeometryChangedEvent(p *Path) *PathGeometryChangedEvent {
	return &PathGeometryChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPathGeometryChanged, "Path", p.ID, p.StructureID),
		EWKT:            p.Geometry.EWKT(),
	}
}
