package trekking

import (
	"github.com/geotrail/backend/internal/domain/shared"
)

// Event types emitted by the trekking context
const (
	EventTrekCreated         = "trekking.trek.created"
	EventTrekGeometryChanged = "trekking.trek.geometry_changed"
	EventTrekPublished       = "trekking.trek.published"
	EventTrekUnpublished     = "trekking.trek.unpublished"
	EventPOICreated          = "trekking.poi.created"
)

// TrekCreatedEvent is emitted when a new trek is created
type TrekCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewTrekCreatedEvent creates a new trek created event
func NewTrekCreatedEvent(t *Trek) *TrekCreatedEvent {
	return &TrekCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTrekCreated, "Trek", t.ID, t.StructureID),
		Name:            t.Name,
	}
}

// TrekGeometryChangedEvent triggers altimetry recomputation and a fresh
// map image capture
type TrekGeometryChangedEvent struct {
	shared.BaseDomainEvent
	EWKT string `json:"ewkt"`
}

// NewTrekGeometryChangedEvent creates a new geometry changed event
func NewTrekGeometryChangedEvent(t *Trek) *TrekGeometryChangedEvent {
	return &TrekGeometryChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTrekGeometryChanged, "Trek", t.ID, t.StructureID),
		EWKT:            t.Geometry.EWKT(),
	}
}

// TrekPublishedEvent invalidates the cached public layer and triggers a
// map image capture
type TrekPublishedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewTrekPublishedEvent creates a new trek published event
func NewTrekPublishedEvent(t *Trek) *TrekPublishedEvent {
	return &TrekPublishedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTrekPublished, "Trek", t.ID, t.StructureID),
		Name:            t.Name,
	}
}

// TrekUnpublishedEvent invalidates the cached public layer
type TrekUnpublishedEvent struct {
	shared.BaseDomainEvent
}

// NewTrekUnpublishedEvent creates a new trek unpublished event
func NewTrekUnpublishedEvent(t *Trek) *TrekUnpublishedEvent {
	return &TrekUnpublishedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTrekUnpublished, "Trek", t.ID, t.StructureID),
	}
}

// POICreatedEvent is emitted when a point of interest is created
type POICreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewPOICreatedEvent creates a new POI created event
func NewPOICreatedEvent(p *POI) *POICreatedEvent {
	return &POICreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPOICreated, "POI", p.ID, p.StructureID),
		Name:            p.Name,
	}
}
