package authent

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
)

// Structure is the organizational unit owning records and scoping edit
// permissions. Every user belongs to exactly one structure.
type Structure struct {
	shared.BaseAggregateRoot
	Name string `gorm:"type:varchar(256);not null;uniqueIndex"`
}

// TableName returns the database table name
func (Structure) TableName() string {
	return "authent_structures"
}

// NewStructure creates a new structure
func NewStructure(name string) (*Structure, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "structure name is required")
	}
	s := &Structure{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}
	s.AddDomainEvent(NewStructureCreatedEvent(s))
	return s, nil
}

// Rename changes the structure name
func (s *Structure) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "structure name is required")
	}
	s.Name = name
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}
