package land

import (
	"github.com/geotrail/backend/internal/domain/land"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateInput carries the fields for recording an edge
type CreateInput struct {
	Kind        land.EdgeKind
	Geometry    shared.Geometry
	ReferenceID uuid.UUID
	Comment     string
}

// UpdateInput carries the fields for updating an edge
type UpdateInput struct {
	Geometry    *shared.Geometry
	ReferenceID uuid.UUID
	Comment     string
}
