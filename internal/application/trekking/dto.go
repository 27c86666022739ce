package trekking

import (
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateTrekInput carries the fields for creating a trek
type CreateTrekInput struct {
	Name              string
	Departure         string
	Arrival           string
	DescriptionTeaser string
	Description       string
	Ambiance          string
	Access            string
	Advice            string
	DurationHours     *float64
	Geometry          shared.Geometry
	ParkingLocation   shared.Geometry
	PointsReference   shared.Geometry
	DifficultyID      *uuid.UUID
	PracticeID        *uuid.UUID
	RouteID           *uuid.UUID
	ThemeIDs          []uuid.UUID
	NetworkIDs        []uuid.UUID
	AccessibilityIDs  []uuid.UUID
	WebLinkIDs        []uuid.UUID
	EID               string
	EID2              string
}

// UpdateTrekInput carries the fields for updating a trek.
// Nil geometry pointers and nil ID slices leave those parts untouched.
type UpdateTrekInput struct {
	Name              string
	Departure         string
	Arrival           string
	DescriptionTeaser string
	Description       string
	Ambiance          string
	Access            string
	Advice            string
	DurationHours     *float64
	Geometry          *shared.Geometry
	ParkingLocation   *shared.Geometry
	PointsReference   *shared.Geometry
	DifficultyID      *uuid.UUID
	PracticeID        *uuid.UUID
	RouteID           *uuid.UUID
	ThemeIDs          []uuid.UUID
	NetworkIDs        []uuid.UUID
	AccessibilityIDs  []uuid.UUID
	WebLinkIDs        []uuid.UUID
}

// RelateTreksInput describes a symmetric relationship between two treks
type RelateTreksInput struct {
	TrekAID            uuid.UUID
	TrekBID            uuid.UUID
	HasCommonDeparture bool
	HasCommonEdge      bool
	IsCircuitStep      bool
}

// CreatePOIInput carries the fields for creating a POI
type CreatePOIInput struct {
	Name        string
	Description string
	TypeID      uuid.UUID
	Geometry    shared.Geometry
	EID         string
}

// UpdatePOIInput carries the fields for updating a POI
type UpdatePOIInput struct {
	Name        string
	Description string
	TypeID      uuid.UUID
	Geometry    *shared.Geometry
}

// CreateServiceInput carries the fields for creating a service point
type CreateServiceInput struct {
	TypeID   uuid.UUID
	Geometry shared.Geometry
	EID      string
}

// UpdateServiceInput carries the fields for updating a service point
type UpdateServiceInput struct {
	TypeID   uuid.UUID
	Geometry *shared.Geometry
}
