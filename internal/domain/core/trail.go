package core

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Trail is a named route over the path network
type Trail struct {
	shared.StructureAggregateRoot
	Name       string          `gorm:"type:varchar(64);not null"`
	Departure  string          `gorm:"type:varchar(64)"`
	Arrival    string          `gorm:"type:varchar(64)"`
	Comments   string          `gorm:"type:text"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	Category   *TrailCategory  `gorm:"foreignKey:CategoryID"`
	Geometry   shared.Geometry `gorm:"type:geometry(LineString,2154)"`
	EID        string          `gorm:"type:varchar(1024);column:eid"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the database table name
func (Trail) TableName() string {
	return "core_trails"
}

// NewTrail creates a trail
func NewTrail(structureID uuid.UUID, name string, geom shared.Geometry) (*Trail, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "trail name is required")
	}
	if !geom.IsZero() && geom.Type != shared.GeometryLineString {
		return nil, shared.NewDomainError(shared.ErrInvalidGeometry.Code, "trail geometry must be a linestring")
	}
	return &Trail{
		StructureAggregateRoot: shared.NewStructureAggregateRoot(structureID),
		Name:                   name,
		Geometry:               geom,
	}, nil
}

// Update changes descriptive fields
func (t *Trail) Update(name, departure, arrival, comments string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "trail name is required")
	}
	t.Name = name
	t.Departure = strings.TrimSpace(departure)
	t.Arrival = strings.TrimSpace(arrival)
	t.Comments = comments
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
	return nil
}

// SetGeometry replaces the trail geometry
func (t *Trail) SetGeometry(geom shared.Geometry) error {
	if !geom.IsZero() && geom.Type != shared.GeometryLineString {
		return shared.NewDomainError(shared.ErrInvalidGeometry.Code, "trail geometry must be a linestring")
	}
	t.Geometry = geom
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
	return nil
}

// SetCategory assigns the trail category
func (t *Trail) SetCategory(categoryID *uuid.UUID) {
	t.CategoryID = categoryID
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}
