// Package infrastructure models built works on the trail network:
// bridges, stairs, shelters and other managed equipment.
package infrastructure

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kind splits infrastructure types into broad families
type Kind string

const (
	KindBuilding  Kind = "BUILDING"
	KindFacility  Kind = "FACILITY"
	KindEquipment Kind = "EQUIPMENT"
)

// Valid reports whether the kind is one of the known families
func (k Kind) Valid() bool {
	switch k {
	case KindBuilding, KindFacility, KindEquipment:
		return true
	}
	return false
}

// Infrastructure is a built work on the trail network
type Infrastructure struct {
	shared.StructureAggregateRoot
	Name                    string              `gorm:"type:varchar(128);not null"`
	Description             string              `gorm:"type:text"`
	Geometry                shared.Geometry     `gorm:"type:geometry(Point,2154);not null"`
	TypeID                  uuid.UUID           `gorm:"type:uuid;not null;index"`
	Type                    *InfrastructureType `gorm:"foreignKey:TypeID"`
	ConditionID             *uuid.UUID          `gorm:"type:uuid;index"`
	MaintenanceDifficultyID *uuid.UUID          `gorm:"type:uuid;index"`
	UsageDifficultyID       *uuid.UUID          `gorm:"type:uuid;index"`
	ImplantationYear        *int
	AccessibilityNote       string `gorm:"type:text"`
	Published               bool   `gorm:"not null;default:false;index"`
	ReviewRequested         bool   `gorm:"not null;default:false"`
	PublicationDate         *time.Time
	EID                     string         `gorm:"type:varchar(1024);column:eid"`
	DeletedAt               gorm.DeletedAt `gorm:"index"`
}

// TableName returns the database table name
func (Infrastructure) TableName() string {
	return "infrastructure_infrastructures"
}

// NewInfrastructure creates an infrastructure record
func NewInfrastructure(structureID uuid.UUID, name string, typeID uuid.UUID, geom shared.Geometry) (*Infrastructure, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "infrastructure name is required")
	}
	if typeID == uuid.Nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "infrastructure type is required")
	}
	if geom.IsZero() || geom.Type != shared.GeometryPoint {
		return nil, shared.NewDomainError(shared.ErrInvalidGeometry.Code, "infrastructure geometry must be a point")
	}
	return &Infrastructure{
		StructureAggregateRoot: shared.NewStructureAggregateRoot(structureID),
		Name:                   name,
		TypeID:                 typeID,
		Geometry:               geom,
	}, nil
}

// Update changes the descriptive fields and type
func (i *Infrastructure) Update(name, description string, typeID uuid.UUID) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "infrastructure name is required")
	}
	if typeID == uuid.Nil {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "infrastructure type is required")
	}
	i.Name = name
	i.Description = description
	i.TypeID = typeID
	i.touch()
	return nil
}

// SetGeometry moves the infrastructure
func (i *Infrastructure) SetGeometry(geom shared.Geometry) error {
	if geom.IsZero() || geom.Type != shared.GeometryPoint {
		return shared.NewDomainError(shared.ErrInvalidGeometry.Code, "infrastructure geometry must be a point")
	}
	i.Geometry = geom
	i.touch()
	return nil
}

// SetConditions assigns condition and difficulty ratings
func (i *Infrastructure) SetConditions(conditionID, maintenanceDifficultyID, usageDifficultyID *uuid.UUID) {
	i.ConditionID = conditionID
	i.MaintenanceDifficultyID = maintenanceDifficultyID
	i.UsageDifficultyID = usageDifficultyID
	i.touch()
}

// SetImplantation records the implantation year
func (i *Infrastructure) SetImplantation(year *int) error {
	if year != nil && (*year < 1800 || *year > time.Now().Year()+1) {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "implausible implantation year")
	}
	i.ImplantationYear = year
	i.touch()
	return nil
}

// Publish makes the infrastructure visible on public portals
func (i *Infrastructure) Publish() error {
	if i.Published {
		return shared.NewDomainError(shared.ErrInvalidState.Code, "infrastructure is already published")
	}
	now := time.Now()
	i.Published = true
	i.ReviewRequested = false
	i.PublicationDate = &now
	i.touch()
	return nil
}

// Unpublish removes it from public portals
func (i *Infrastructure) Unpublish() error {
	if !i.Published {
		return shared.NewDomainError(shared.ErrInvalidState.Code, "infrastructure is not published")
	}
	i.Published = false
	i.PublicationDate = nil
	i.touch()
	return nil
}

func (i *Infrastructure) touch() {
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// InfrastructureType classifies infrastructures within a kind
type InfrastructureType struct {
	shared.BaseAggregateRoot
	Label       string     `gorm:"type:varchar(128);not null"`
	Kind        Kind       `gorm:"type:varchar(32);not null;index"`
	Pictogram   string     `gorm:"type:varchar(512)"`
	StructureID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the database table name
func (InfrastructureType) TableName() string {
	return "infrastructure_types"
}

// NewInfrastructureType creates a typed label within a kind
func NewInfrastructureType(label string, kind Kind, structureID *uuid.UUID) (*InfrastructureType, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "infrastructure type label is required")
	}
	if !kind.Valid() {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown infrastructure kind")
	}
	return &InfrastructureType{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Label:             label,
		Kind:              kind,
		StructureID:       structureID,
	}, nil
}

// DifficultyLevel rates maintenance or usage difficulty
type DifficultyLevel struct {
	shared.BaseAggregateRoot
	Label       string     `gorm:"type:varchar(250);not null"`
	StructureID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the database table name
func (DifficultyLevel) TableName() string {
	return "infrastructure_difficulty_levels"
}

// NewDifficultyLevel creates a difficulty label
func NewDifficultyLevel(label string, structureID *uuid.UUID) (*DifficultyLevel, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "difficulty label is required")
	}
	return &DifficultyLevel{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Label: label, StructureID: structureID}, nil
}
