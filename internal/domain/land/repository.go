package land

import (
	"context"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository persists edges
type Repository interface {
	shared.StructureRepository[Edge]

	// FindByKind returns edges of one legal layer
	FindByKind(ctx context.Context, kind EdgeKind, filter shared.Filter) ([]Edge, error)
	// CountByPhysicalType counts edges referencing a physical type
	CountByPhysicalType(ctx context.Context, typeID uuid.UUID) (int64, error)
	// CountByLandType counts edges referencing a land type
	CountByLandType(ctx context.Context, typeID uuid.UUID) (int64, error)
}

// PhysicalTypeRepository persists physical type labels
type PhysicalTypeRepository interface {
	shared.Repository[PhysicalType]
}

// LandTypeRepository persists land type labels
type LandTypeRepository interface {
	shared.Repository[LandType]
}
