package core

import (
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreatePathInput carries the fields for creating a path
type CreatePathInput struct {
	Name       string
	Departure  string
	Arrival    string
	Comments   string
	Geometry   shared.Geometry
	EID        string
	StakeID    *uuid.UUID
	NetworkIDs []uuid.UUID
	UsageIDs   []uuid.UUID
}

// UpdatePathInput carries the fields for updating a path.
// Nil slices leave the associations untouched.
type UpdatePathInput struct {
	Name       string
	Departure  string
	Arrival    string
	Comments   string
	Geometry   *shared.Geometry
	StakeID    *uuid.UUID
	NetworkIDs []uuid.UUID
	UsageIDs   []uuid.UUID
}

// CreateTrailInput carries the fields for creating a trail
type CreateTrailInput struct {
	Name       string
	Departure  string
	Arrival    string
	Comments   string
	Geometry   shared.Geometry
	CategoryID *uuid.UUID
}

// UpdateTrailInput carries the fields for updating a trail
type UpdateTrailInput struct {
	Name       string
	Departure  string
	Arrival    string
	Comments   string
	Geometry   *shared.Geometry
	CategoryID *uuid.UUID
}

// ProfilePoint is one sample of a path's elevation profile
type ProfilePoint struct {
	Distance  float64 `json:"distance"`
	Elevation float64 `json:"elevation"`
}
