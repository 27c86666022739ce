package core

import (
	"context"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PathRepository persists paths
type PathRepository interface {
	shared.StructureRepository[Path]
	// FindNear returns paths within distance meters of the given geometry
	FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]Path, error)
	FindByEID(ctx context.Context, eid string) (*Path, error)
	ReplaceNetworks(ctx context.Context, path *Path, networks []Network) error
	ReplaceUsages(ctx context.Context, path *Path, usages []Usage) error
}

// TrailRepository persists trails
type TrailRepository interface {
	shared.StructureRepository[Trail]
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]Trail, error)
}

// StakeRepository persists stake levels
type StakeRepository interface {
	shared.Repository[Stake]
	ExistsByRank(ctx context.Context, rank int) (bool, error)
	InUse(ctx context.Context, id uuid.UUID) (bool, error)
}

// NetworkRepository persists path networks
type NetworkRepository interface {
	shared.Repository[Network]
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Network, error)
}

// UsageRepository persists path usages
type UsageRepository interface {
	shared.Repository[Usage]
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Usage, error)
}

// TrailCategoryRepository persists trail categories
type TrailCategoryRepository interface {
	shared.Repository[TrailCategory]
}
