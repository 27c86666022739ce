package shared

import (
	"github.com/google/uuid"
)

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
	AddDomainEvent(event DomainEvent)
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version      int           `gorm:"not null;default:1"`
	domainEvents []DomainEvent `gorm:"-"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// AddDomainEvent adds a domain event to be published
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns all pending domain events
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents clears the pending domain events
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity:   NewBaseEntity(),
		Version:      1,
		domainEvents: make([]DomainEvent, 0),
	}
}

// StructureAggregateRoot extends BaseAggregateRoot with organizational
// structure ownership. Records belong to the structure of the user who
// created them; editing from another structure requires a bypass permission.
type StructureAggregateRoot struct {
	BaseAggregateRoot
	StructureID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid;index"`
}

// NewStructureAggregateRoot creates a new structure-owned aggregate root
func NewStructureAggregateRoot(structureID uuid.UUID) StructureAggregateRoot {
	return StructureAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		StructureID:       structureID,
	}
}

// NewStructureAggregateRootWithCreator creates a structure-owned aggregate root with creator info
func NewStructureAggregateRootWithCreator(structureID, createdBy uuid.UUID) StructureAggregateRoot {
	return StructureAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		StructureID:       structureID,
		CreatedBy:         &createdBy,
	}
}

// SetCreatedBy sets the creator user ID
func (s *StructureAggregateRoot) SetCreatedBy(userID uuid.UUID) {
	s.CreatedBy = &userID
}

// GetStructureID returns the owning structure
func (s *StructureAggregateRoot) GetStructureID() uuid.UUID {
	return s.StructureID
}

// SameStructure reports whether the aggregate belongs to the given structure
func (s *StructureAggregateRoot) SameStructure(structureID uuid.UUID) bool {
	return s.StructureID == structureID
}
