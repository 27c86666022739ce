// Package land models legal layers draped over the trail network:
// physical nature of the ground, land tenure, and which organism holds
// competence, work management or signage management over a stretch.
package land

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EdgeKind distinguishes the legal layers an edge can belong to
type EdgeKind string

const (
	EdgePhysical          EdgeKind = "PHYSICAL"
	EdgeLand              EdgeKind = "LAND"
	EdgeCompetence        EdgeKind = "COMPETENCE"
	EdgeWorkManagement    EdgeKind = "WORK_MANAGEMENT"
	EdgeSignageManagement EdgeKind = "SIGNAGE_MANAGEMENT"
)

// Valid reports whether the kind is one of the known layers
func (k EdgeKind) Valid() bool {
	switch k {
	case EdgePhysical, EdgeLand, EdgeCompetence, EdgeWorkManagement, EdgeSignageManagement:
		return true
	}
	return false
}

// RequiresOrganism reports whether edges of this kind are typed by an
// organism rather than a picklist entry.
func (k EdgeKind) RequiresOrganism() bool {
	switch k {
	case EdgeCompetence, EdgeWorkManagement, EdgeSignageManagement:
		return true
	}
	return false
}

// Edge is a stretch of the network carrying one legal attribute.
// PHYSICAL edges reference a physical type, LAND edges a land type,
// and the three management kinds reference an organism.
type Edge struct {
	shared.StructureAggregateRoot
	Kind           EdgeKind        `gorm:"type:varchar(32);not null;index"`
	Geometry       shared.Geometry `gorm:"type:geometry(LineString,2154);not null"`
	PhysicalTypeID *uuid.UUID      `gorm:"type:uuid;index"`
	PhysicalType   *PhysicalType   `gorm:"foreignKey:PhysicalTypeID"`
	LandTypeID     *uuid.UUID      `gorm:"type:uuid;index"`
	LandType       *LandType       `gorm:"foreignKey:LandTypeID"`
	OrganismID     *uuid.UUID      `gorm:"type:uuid;index"`
	Comment        string          `gorm:"type:text"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the database table name
func (Edge) TableName() string {
	return "land_edges"
}

// NewEdge creates an edge of the given kind. The reference ID is
// interpreted per kind: physical type, land type, or organism.
func NewEdge(structureID uuid.UUID, kind EdgeKind, geom shared.Geometry, refID uuid.UUID) (*Edge, error) {
	if !kind.Valid() {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown edge kind")
	}
	if geom.IsZero() || geom.Type != shared.GeometryLineString {
		return nil, shared.NewDomainError(shared.ErrInvalidGeometry.Code, "edge geometry must be a linestring")
	}
	if refID == uuid.Nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "edge reference is required")
	}
	e := &Edge{
		StructureAggregateRoot: shared.NewStructureAggregateRoot(structureID),
		Kind:                   kind,
		Geometry:               geom,
	}
	e.setReference(refID)
	return e, nil
}

// SetGeometry moves the edge along the network
func (e *Edge) SetGeometry(geom shared.Geometry) error {
	if geom.IsZero() || geom.Type != shared.GeometryLineString {
		return shared.NewDomainError(shared.ErrInvalidGeometry.Code, "edge geometry must be a linestring")
	}
	e.Geometry = geom
	e.touch()
	return nil
}

// SetReference retypes the edge within its kind
func (e *Edge) SetReference(refID uuid.UUID) error {
	if refID == uuid.Nil {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "edge reference is required")
	}
	e.setReference(refID)
	e.touch()
	return nil
}

func (e *Edge) setReference(refID uuid.UUID) {
	switch {
	case e.Kind == EdgePhysical:
		e.PhysicalTypeID = &refID
	case e.Kind == EdgeLand:
		e.LandTypeID = &refID
	default:
		e.OrganismID = &refID
	}
}

// ReferenceID returns the typed reference, whichever column holds it
func (e *Edge) ReferenceID() uuid.UUID {
	switch {
	case e.PhysicalTypeID != nil:
		return *e.PhysicalTypeID
	case e.LandTypeID != nil:
		return *e.LandTypeID
	case e.OrganismID != nil:
		return *e.OrganismID
	}
	return uuid.Nil
}

// SetComment records a free-text note on the edge
func (e *Edge) SetComment(comment string) {
	e.Comment = comment
	e.touch()
}

func (e *Edge) touch() {
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// PhysicalType labels the physical nature of the ground (path, road,
// ford, bridge).
type PhysicalType struct {
	shared.BaseAggregateRoot
	Label       string     `gorm:"type:varchar(128);not null"`
	StructureID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the database table name
func (PhysicalType) TableName() string {
	return "land_physical_types"
}

// NewPhysicalType creates a physical type label
func NewPhysicalType(label string, structureID *uuid.UUID) (*PhysicalType, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "physical type label is required")
	}
	return &PhysicalType{BaseAggregateRoot: shared.NewBaseAggregateRoot(), Label: label, StructureID: structureID}, nil
}

// LandType labels land tenure (public domain, private, easement) and
// whether a right of way exists over it.
type LandType struct {
	shared.BaseAggregateRoot
	Label       string     `gorm:"type:varchar(128);not null"`
	RightOfWay  bool       `gorm:"not null;default:false"`
	StructureID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the database table name
func (LandType) TableName() string {
	return "land_types"
}

// NewLandType creates a land type label
func NewLandType(label string, rightOfWay bool, structureID *uuid.UUID) (*LandType, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "land type label is required")
	}
	return &LandType{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Label:             label,
		RightOfWay:        rightOfWay,
		StructureID:       structureID,
	}, nil
}
