package trekking

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POI is a publishable point of interest near the trail network
type POI struct {
	shared.StructureAggregateRoot
	Name            string          `gorm:"type:varchar(128);not null"`
	Description     string          `gorm:"type:text"`
	Geometry        shared.Geometry `gorm:"type:geometry(Point,2154);not null"`
	TypeID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type            *POIType        `gorm:"foreignKey:TypeID"`
	Published       bool            `gorm:"not null;default:false;index"`
	ReviewRequested bool            `gorm:"not null;default:false"`
	PublicationDate *time.Time
	EID             string         `gorm:"type:varchar(1024);column:eid"`
	Elevation       int            `gorm:"not null;default:0"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName returns the database table name
func (POI) TableName() string {
	return "trekking_pois"
}

// NewPOI creates an unpublished point of interest
func NewPOI(structureID uuid.UUID, name string, typeID uuid.UUID, geom shared.Geometry) (*POI, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "poi name is required")
	}
	if typeID == uuid.Nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "poi type is required")
	}
	if err := validatePointGeometry(geom); err != nil {
		return nil, err
	}
	p := &POI{
		StructureAggregateRoot: shared.NewStructureAggregateRoot(structureID),
		Name:                   name,
		TypeID:                 typeID,
		Geometry:               geom,
	}
	p.AddDomainEvent(NewPOICreatedEvent(p))
	return p, nil
}

// Update changes the POI's descriptive fields and type
func (p *POI) Update(name, description string, typeID uuid.UUID) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "poi name is required")
	}
	if typeID == uuid.Nil {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "poi type is required")
	}
	p.Name = name
	p.Description = description
	p.TypeID = typeID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetGeometry moves the point of interest
func (p *POI) SetGeometry(geom shared.Geometry) error {
	if err := validatePointGeometry(geom); err != nil {
		return err
	}
	p.Geometry = geom
	p.Elevation = 0
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetElevation stores the elevation sampled at the point
func (p *POI) SetElevation(elevation int) {
	p.Elevation = elevation
	p.UpdatedAt = time.Now()
}

// Publish makes the POI visible on public portals
func (p *POI) Publish() error {
	if p.Published {
		return shared.NewDomainError(shared.ErrInvalidState.Code, "poi is already published")
	}
	now := time.Now()
	p.Published = true
	p.ReviewRequested = false
	p.PublicationDate = &now
	p.UpdatedAt = now
	p.IncrementVersion()
	return nil
}

// Unpublish removes the POI from public portals
func (p *POI) Unpublish() error {
	if !p.Published {
		return shared.NewDomainError(shared.ErrInvalidState.Code, "poi is not published")
	}
	p.Published = false
	p.PublicationDate = nil
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
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
