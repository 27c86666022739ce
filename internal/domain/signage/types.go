package signage

import (
	"strings"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SignageType classifies signposts
type SignageType struct {
	shared.BaseAggregateRoot
	Label       string     `gorm:"type:varchar(128);not null"`
	Pictogram   string     `gorm:"type:varchar(512)"`
	StructureID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the database table name
func (SignageType) TableName() string {
	return "signage_types"
}

// Sealing describes how a signpost is anchored
type Sealing struct {
	shared.BaseAggregateRoot
	Label       string     `gorm:"type:varchar(250);not null"`
	StructureID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the database table name
func (Sealing) TableName() string {
	return "signage_sealings"
}

// Condition rates the observed state of signage equipment
type Condition struct {
	shared.BaseAggregateRoot
	Label       string     `gorm:"type:varchar(250);not null"`
	StructureID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the database table name
func (Condition) TableName() string {
	return "signage_conditions"
}

// BladeType classifies blades
type BladeType struct {
	shared.BaseAggregateRoot
	Label       string     `gorm:"type:varchar(128);not null"`
	StructureID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the database table name
func (BladeType) TableName() string {
	return "signage_blade_types"
}

// BladeColor is a display color for blades
type BladeColor struct {
	shared.BaseAggregateRoot
	Label string `gorm:"type:varchar(128);not null;uniqueIndex"`
}

// TableName returns the database table name
func (BladeColor) TableName() string {
	return "signage_blade_colors"
}

// BladeDirection is the direction a blade points to
type BladeDirection struct {
	shared.BaseAggregateRoot
	Label string `gorm:"type:varchar(128);not null;uniqueIndex"`
}

// TableName returns the database table name
func (BladeDirection) TableName() string {
	return "signage_blade_directions"
}

// NewSignageType creates a signage type
func NewSignageType(label, pictogram string, structureID *uuid.UUID) (*SignageType, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "signage type label is required")
	}
	return &SignageType{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Label: label, Pictogram: pictogram, StructureID: structureID}, nil
}

// NewSealing creates a sealing label
func NewSealing(label string, structureID *uuid.UUID) (*Sealing, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "sealing label is required")
	}
	return &Sealing{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Label: label, StructureID: structureID}, nil
}

// NewCondition creates a condition label
func NewCondition(label string, structureID *uuid.UUID) (*Condition, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "condition label is required")
	}
	return &Condition{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Label: label, StructureID: structureID}, nil
}

// NewBladeType creates a blade type
func NewBladeType(label string, structureID *uuid.UUID) (*BladeType, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "blade type label is required")
	}
	return &BladeType{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Label: label, StructureID: structureID}, nil
}

// NewBladeColor creates a blade color
func NewBladeColor(label string) (*BladeColor, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "blade color label is required")
	}
	return &BladeColor{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Label: label}, nil
}

// NewBladeDirection creates a blade direction
func NewBladeDirection(label string) (*BladeDirection, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "blade direction label is required")
	}
	return &BladeDirection{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Label: label}, nil
}
