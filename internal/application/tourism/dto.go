package tourism

import (
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateContentInput carries the fields for recording a touristic content
type CreateContentInput struct {
	Name          string
	TeaserText    string
	Description   string
	Practical     string
	Geometry      shared.Geometry
	CategoryID    uuid.UUID
	Type1IDs      []uuid.UUID
	Type2IDs      []uuid.UUID
	ThemeIDs      []uuid.UUID
	ContactInfo   string
	Email         string
	Website       string
	ReservationID string
	EID           string
}

// UpdateContentInput carries the fields for updating a touristic content.
// Nil slices leave the corresponding associations untouched.
type UpdateContentInput struct {
	Name          string
	TeaserText    string
	Description   string
	Practical     string
	Geometry      *shared.Geometry
	CategoryID    uuid.UUID
	Type1IDs      []uuid.UUID
	Type2IDs      []uuid.UUID
	ThemeIDs      []uuid.UUID
	ContactInfo   string
	Email         string
	Website       string
	ReservationID string
}

// CreateDeskInput carries the fields for registering an information desk
type CreateDeskInput struct {
	Name         string
	TypeID       uuid.UUID
	Description  string
	Phone        string
	Email        string
	Website      string
	Street       string
	PostalCode   string
	Municipality string
	Geometry     shared.Geometry
}

// UpdateDeskInput carries the fields for updating an information desk
type UpdateDeskInput struct {
	Description  string
	Phone        string
	Email        string
	Website      string
	Street       string
	PostalCode   string
	Municipality string
	Geometry     *shared.Geometry
}
