// Package trekking models publishable trail content: treks, their
// points of interest and the services found along them.
package trekking

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Trek is a publishable itinerary over the trail network
type Trek struct {
	shared.StructureAggregateRoot
	Name              string          `gorm:"type:varchar(128);not null"`
	Departure         string          `gorm:"type:varchar(128)"`
	Arrival           string          `gorm:"type:varchar(128)"`
	DescriptionTeaser string          `gorm:"type:text"`
	Description       string          `gorm:"type:text"`
	Ambiance          string          `gorm:"type:text"`
	Access            string          `gorm:"type:text"`
	Advice            string          `gorm:"type:text"`
	DurationHours     *float64        `gorm:"column:duration"`
	Geometry          shared.Geometry `gorm:"type:geometry(LineString,2154);not null"`
	ParkingLocation   shared.Geometry `gorm:"type:geometry(Point,2154)"`
	PointsReference   shared.Geometry `gorm:"type:geometry(MultiPoint,2154)"`
	DifficultyID      *uuid.UUID      `gorm:"type:uuid;index"`
	Difficulty        *DifficultyLevel
	PracticeID        *uuid.UUID `gorm:"type:uuid;index"`
	Practice          *Practice
	RouteID           *uuid.UUID `gorm:"type:uuid;index"`
	Route             *Route
	Themes            []common.Theme  `gorm:"many2many:trekking_trek_themes"`
	Networks          []TrekNetwork   `gorm:"many2many:trekking_trek_networks"`
	Accessibilities   []Accessibility `gorm:"many2many:trekking_trek_accessibilities"`
	WebLinks          []WebLink       `gorm:"many2many:trekking_trek_weblinks"`
	Published         bool            `gorm:"not null;default:false;index"`
	ReviewRequested   bool            `gorm:"not null;default:false"`
	PublicationDate   *time.Time
	EID               string         `gorm:"type:varchar(1024);column:eid"`
	EID2              string         `gorm:"type:varchar(1024);column:eid2"`
	MapImageKey       string         `gorm:"type:varchar(512)"`
	Altimetry         TrekAltimetry  `gorm:"embedded"`
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TrekAltimetry carries elevation figures derived from the 3D geometry
type TrekAltimetry struct {
	Geom3D       shared.Geometry `gorm:"type:geometry(LineStringZ,2154);column:geom_3d"`
	Length       float64         `gorm:"not null;default:0"`
	Ascent       int             `gorm:"not null;default:0"`
	Descent      int             `gorm:"not null;default:0"`
	MinElevation int             `gorm:"not null;default:0"`
	MaxElevation int             `gorm:"not null;default:0"`
	Slope        float64         `gorm:"not null;default:0"`
}

// TableName returns the database table name
func (Trek) TableName() string {
	return "trekking_treks"
}

// NewTrek creates an unpublished trek
func NewTrek(structureID uuid.UUID, name string, geom shared.Geometry) (*Trek, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "trek name is required")
	}
	if err := validateTrekGeometry(geom); err != nil {
		return nil, err
	}
	t := &Trek{
		StructureAggregateRoot: shared.NewStructureAggregateRoot(structureID),
		Name:                   name,
		Geometry:               geom,
	}
	t.Altimetry.Length = geom.Length2D()
	t.AddDomainEvent(NewTrekCreatedEvent(t))
	return t, nil
}

// TrekTexts groups the long descriptive fields of a trek
type TrekTexts struct {
	DescriptionTeaser string
	Description       string
	Ambiance          string
	Access            string
	Advice            string
}

// Update changes the trek's descriptive fields
func (t *Trek) Update(name, departure, arrival string, texts TrekTexts) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "trek name is required")
	}
	t.Name = name
	t.Departure = strings.TrimSpace(departure)
	t.Arrival = strings.TrimSpace(arrival)
	t.DescriptionTeaser = texts.DescriptionTeaser
	t.Description = texts.Description
	t.Ambiance = texts.Ambiance
	t.Access = texts.Access
	t.Advice = texts.Advice
	t.touch()
	return nil
}

// SetGeometry replaces the itinerary geometry. Derived elevation data
// and the captured map image are stale afterwards.
func (t *Trek) SetGeometry(geom shared.Geometry) error {
	if err := validateTrekGeometry(geom); err != nil {
		return err
	}
	t.Geometry = geom
	t.Altimetry = TrekAltimetry{Length: geom.Length2D()}
	t.MapImageKey = ""
	t.touch()
	t.AddDomainEvent(NewTrekGeometryChangedEvent(t))
	return nil
}

// SetParkingLocation sets the parking point, or clears it when zero
func (t *Trek) SetParkingLocation(geom shared.Geometry) error {
	if !geom.IsZero() && geom.Type != shared.GeometryPoint {
		return shared.NewDomainError(shared.ErrInvalidGeometry.Code, "parking location must be a point")
	}
	t.ParkingLocation = geom
	t.touch()
	return nil
}

// SetPointsReference sets the reference points shown on printed maps
func (t *Trek) SetPointsReference(geom shared.Geometry) error {
	if !geom.IsZero() && geom.Type != shared.GeometryMultiPoint {
		return shared.NewDomainError(shared.ErrInvalidGeometry.Code, "points reference must be a multipoint")
	}
	t.PointsReference = geom
	t.touch()
	return nil
}

// SetDuration sets the walking duration in hours
func (t *Trek) SetDuration(hours *float64) error {
	if hours != nil && *hours < 0 {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "duration must not be negative")
	}
	t.DurationHours = hours
	t.touch()
	return nil
}

// Classify assigns difficulty, practice and route
func (t *Trek) Classify(difficultyID, practiceID, routeID *uuid.UUID) {
	t.DifficultyID = difficultyID
	t.PracticeID = practiceID
	t.RouteID = routeID
	t.touch()
}

// SetAltimetry stores the computed elevation figures
func (t *Trek) SetAltimetry(a TrekAltimetry) {
	t.Altimetry = a
	t.UpdatedAt = time.Now()
}

// SetMapImage records the object key of the captured map image
func (t *Trek) SetMapImage(key string) {
	t.MapImageKey = key
	t.UpdatedAt = time.Now()
}

// RequestReview flags the trek for editorial review before publication
func (t *Trek) RequestReview() {
	t.ReviewRequested = true
	t.touch()
}

// Publish makes the trek visible on public portals
func (t *Trek) Publish() error {
	if t.Published {
		return shared.NewDomainError(shared.ErrInvalidState.Code, "trek is already published")
	}
	now := time.Now()
	t.Published = true
	t.ReviewRequested = false
	t.PublicationDate = &now
	t.touch()
	t.AddDomainEvent(NewTrekPublishedEvent(t))
	return nil
}

// Unpublish removes the trek from public portals
func (t *Trek) Unpublish() error {
	if !t.Published {
		return shared.NewDomainError(shared.ErrInvalidState.Code, "trek is not published")
	}
	t.Published = false
	t.PublicationDate = nil
	t.touch()
	t.AddDomainEvent(NewTrekUnpublishedEvent(t))
	return nil
}

// SetEIDs assigns the external import identifiers
func (t *Trek) SetEIDs(eid, eid2 string) {
	t.EID = eid
	t.EID2 = eid2
	t.UpdatedAt = time.Now()
}

func (t *Trek) touch() {
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

func validateTrekGeometry(geom shared.Geometry) error {
	if geom.IsZero() {
		return shared.NewDomainError(shared.ErrInvalidGeometry.Code, "trek geometry is required")
	}
	if geom.Type != shared.GeometryLineString {
		return shared.NewDomainError(shared.ErrInvalidGeometry.Code, "trek geometry must be a linestring")
	}
	return nil
}

// OrderedTrekChild links a parent trek to an ordered child step
type OrderedTrekChild struct {
	ParentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChildID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Order    int       `gorm:"column:ordering;not null;default:0"`
}

// TableName returns the database table name
func (OrderedTrekChild) TableName() string {
	return "trekking_ordered_trek_children"
}

// TrekRelationship links two treks sharing ground features. Relations are
// symmetric: a single row covers both directions.
type TrekRelationship struct {
	shared.BaseEntity
	TrekAID            uuid.UUID `gorm:"type:uuid;not null;index:idx_trek_relationship,unique"`
	TrekBID            uuid.UUID `gorm:"type:uuid;not null;index:idx_trek_relationship,unique"`
	HasCommonDeparture bool      `gorm:"not null;default:false"`
	HasCommonEdge      bool      `gorm:"not null;default:false"`
	IsCircuitStep      bool      `gorm:"not null;default:false"`
}

// TableName returns the database table name
func (TrekRelationship) TableName() string {
	return "trekking_trek_relationships"
}

// NewTrekRelationship creates a relationship between two distinct treks
func NewTrekRelationship(a, b uuid.UUID, commonDeparture, commonEdge, circuitStep bool) (*TrekRelationship, error) {
	if a == b {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "a trek cannot relate to itself")
	}
	// Normalize ordering so the pair is unique regardless of direction
	if b.String() < a.String() {
		a, b = b, a
	}
	return &TrekRelationship{
		BaseEntity:         shared.NewBaseEntity(),
		TrekAID:            a,
		TrekBID:            b,
		HasCommonDeparture: commonDeparture,
		HasCommonEdge:      commonEdge,
		IsCircuitStep:      circuitStep,
	}, nil
}
