// Package core models the physical trail network: paths are the
// geometric backbone, trails are named groupings over them.
package core

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Path is a segment of the physical trail network
type Path struct {
	shared.StructureAggregateRoot
	Name      string          `gorm:"type:varchar(250);index"`
	Departure string          `gorm:"type:varchar(250)"`
	Arrival   string          `gorm:"type:varchar(250)"`
	Comments  string          `gorm:"type:text"`
	Geometry  shared.Geometry `gorm:"type:geometry(LineString,2154);not null"`
	EID       string          `gorm:"type:varchar(1024);column:eid"`
	StakeID   *uuid.UUID      `gorm:"type:uuid;index"`
	Stake     *Stake          `gorm:"foreignKey:StakeID"`
	Networks  []Network       `gorm:"many2many:core_path_networks"`
	Usages    []Usage         `gorm:"many2many:core_path_usages"`
	Altimetry `gorm:"embedded"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Altimetry carries elevation figures derived from the 3D geometry
type Altimetry struct {
	Geom3D       shared.Geometry `gorm:"type:geometry(LineStringZ,2154);column:geom_3d"`
	Length       float64         `gorm:"not null;default:0"`
	Ascent       int             `gorm:"not null;default:0"`
	Descent      int             `gorm:"not null;default:0"`
	MinElevation int             `gorm:"not null;default:0"`
	MaxElevation int             `gorm:"not null;default:0"`
	Slope        float64         `gorm:"not null;default:0"`
}

// TableName returns the database table name
func (Path) TableName() string {
	return "core_paths"
}

// NewPath creates a path on the network
func NewPath(structureID uuid.UUID, name string, geom shared.Geometry) (*Path, error) {
	if err := validatePathGeometry(geom); err != nil {
		return nil, err
	}
	p := &Path{
		StructureAggregateRoot: shared.NewStructureAggregateRoot(structureID),
		Name:                   strings.TrimSpace(name),
		Geometry:               geom,
	}
	p.Length = geom.Length2D()
	p.AddDomainEvent(NewPathCreatedEvent(p))
	return p, nil
}

// Update changes the path's descriptive fields
func (p *Path) Update(name, departure, arrival, comments string) {
	p.Name = strings.TrimSpace(name)
	p.Departure = strings.TrimSpace(departure)
	p.Arrival = strings.TrimSpace(arrival)
	p.Comments = comments
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetGeometry replaces the path geometry and resets derived figures.
// Altimetry is recomputed asynchronously from the saved geometry.
func (p *Path) SetGeometry(geom shared.Geometry) error {
	if err := validatePathGeometry(geom); err != nil {
		return err
	}
	p.Geometry = geom
	p.Altimetry = Altimetry{Length: geom.Length2D()}
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	p.AddDomainEvent(NewPathGeometryChangedEvent(p))
	return nil
}

// SetAltimetry stores the computed elevation figures
func (p *Path) SetAltimetry(a Altimetry) {
	p.Altimetry = a
	p.UpdatedAt = time.Now()
}

// SetStake assigns the maintenance stake level
func (p *Path) SetStake(stakeID *uuid.UUID) {
	p.StakeID = stakeID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetEID assigns the external import identifier
func (p *Path) SetEID(eid string) {
	p.EID = eid
	p.UpdatedAt = time.Now()
}

func validatePathGeometry(geom shared.Geometry) error {
	if geom.IsZero() {
		return shared.NewDomainError(shared.ErrInvalidGeometry.Code, "path geometry is required")
	}
	if geom.Type != shared.GeometryLineString {
		return shared.NewDomainError(shared.ErrInvalidGeometry.Code, "path geometry must be a linestring")
	}
	return nil
}
