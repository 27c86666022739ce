// Package signage models field signage: posts planted along the network
// and the blades mounted on them.
package signage

import (
	"strconv"
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Signage is a signpost planted on the trail network
type Signage struct {
	shared.StructureAggregateRoot
	Name             string          `gorm:"type:varchar(128);not null"`
	Code             string          `gorm:"type:varchar(250);index"`
	Description      string          `gorm:"type:text"`
	Geometry         shared.Geometry `gorm:"type:geometry(Point,2154);not null"`
	TypeID           *uuid.UUID      `gorm:"type:uuid;index"`
	Type             *SignageType    `gorm:"foreignKey:TypeID"`
	ConditionID      *uuid.UUID      `gorm:"type:uuid;index"`
	Condition        *Condition      `gorm:"foreignKey:ConditionID"`
	SealingID        *uuid.UUID      `gorm:"type:uuid;index"`
	Sealing          *Sealing        `gorm:"foreignKey:SealingID"`
	ManagerID        *uuid.UUID      `gorm:"type:uuid;index"`
	ImplantationYear *int
	PrintedElevation *int
	Published        bool `gorm:"not null;default:false;index"`
	ReviewRequested  bool `gorm:"not null;default:false"`
	PublicationDate  *time.Time
	EID              string         `gorm:"type:varchar(1024);column:eid"`
	Blades           []Blade        `gorm:"foreignKey:SignageID"`
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName returns the database table name
func (Signage) TableName() string {
	return "signage_signages"
}

// NewSignage creates a signpost
func NewSignage(structureID uuid.UUID, name string, geom shared.Geometry) (*Signage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "signage name is required")
	}
	if err := validatePointGeometry(geom); err != nil {
		return nil, err
	}
	s := &Signage{
		StructureAggregateRoot: shared.NewStructureAggregateRoot(structureID),
		Name:                   name,
		Geometry:               geom,
	}
	s.AddDomainEvent(NewSignageCreatedEvent(s))
	return s, nil
}

// Update changes the signpost's descriptive fields
func (s *Signage) Update(name, code, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "signage name is required")
	}
	s.Name = name
	s.Code = strings.TrimSpace(code)
	s.Description = description
	s.touch()
	return nil
}

// SetGeometry moves the signpost
func (s *Signage) SetGeometry(geom shared.Geometry) error {
	if err := validatePointGeometry(geom); err != nil {
		return err
	}
	s.Geometry = geom
	s.touch()
	return nil
}

// SetCondition records the observed condition
func (s *Signage) SetCondition(conditionID *uuid.UUID) {
	s.ConditionID = conditionID
	s.touch()
}

// SetEquipment assigns type, sealing and managing organism
func (s *Signage) SetEquipment(typeID, sealingID, managerID *uuid.UUID) {
	s.TypeID = typeID
	s.SealingID = sealingID
	s.ManagerID = managerID
	s.touch()
}

// SetImplantation records the implantation year and printed elevation
func (s *Signage) SetImplantation(year, printedElevation *int) error {
	if year != nil && (*year < 1800 || *year > time.Now().Year()+1) {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "implausible implantation year")
	}
	s.ImplantationYear = year
	s.PrintedElevation = printedElevation
	s.touch()
	return nil
}

// Publish makes the signage visible on public portals
func (s *Signage) Publish() error {
	if s.Published {
		return shared.NewDomainError(shared.ErrInvalidState.Code, "signage is already published")
	}
	now := time.Now()
	s.Published = true
	s.ReviewRequested = false
	s.PublicationDate = &now
	s.touch()
	return nil
}

// Unpublish removes the signage from public portals
func (s *Signage) Unpublish() error {
	if !s.Published {
		return shared.NewDomainError(shared.ErrInvalidState.Code, "signage is not published")
	}
	s.Published = false
	s.PublicationDate = nil
	s.touch()
	return nil
}

// NextBladeNumber suggests the next free blade number on this signpost
func (s *Signage) NextBladeNumber() string {
	used := make(map[string]struct{}, len(s.Blades))
	for _, b := range s.Blades {
		used[b.Number] = struct{}{}
	}
	for i := 1; ; i++ {
		candidate := strconv.Itoa(i)
		if _, taken := used[candidate]; !taken {
			return candidate
		}
	}
}

func (s *Signage) touch() {
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

func validatePointGeometry(geom shared.Geometry) error {
	if geom.IsZero() {
		return shared.NewDomainError(shared.ErrInvalidGeometry.Code, "point geometry is required")
	}
	if geom.Type != shared.GeometryPoint {
		return shared.NewDomainError(shared.ErrInvalidGeometry.Code, "geometry must be a point")
	}
	return nil
}
