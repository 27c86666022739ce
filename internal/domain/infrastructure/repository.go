package infrastructure

import (
	"context"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository persists infrastructures
type Repository interface {
	shared.StructureRepository[Infrastructure]
	FindByKind(ctx context.Context, kind Kind, filter shared.Filter) ([]Infrastructure, error)
	FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]Infrastructure, error)
	CountByType(ctx context.Context, typeID uuid.UUID) (int64, error)
}

// TypeRepository persists infrastructure types
type TypeRepository interface {
	shared.Repository[InfrastructureType]
	FindByKind(ctx context.Context, kind Kind) ([]InfrastructureType, error)
}

// DifficultyLevelRepository persists difficulty labels
type DifficultyLevelRepository interface {
	shared.Repository[DifficultyLevel]
}
