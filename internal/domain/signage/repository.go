package signage

import (
	"context"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SignageRepository persists signposts
type SignageRepository interface {
	shared.StructureRepository[Signage]
	// FindByIDWithBlades loads a signage with its blades and lines
	FindByIDWithBlades(ctx context.Context, id uuid.UUID) (*Signage, error)
	FindByCode(ctx context.Context, code string) (*Signage, error)
	FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]Signage, error)
	// DeleteWithBlades soft deletes a signage and its blades
	DeleteWithBlades(ctx context.Context, id uuid.UUID) error
}

// BladeRepository persists blades and their lines
type BladeRepository interface {
	shared.Repository[Blade]
	FindBySignage(ctx context.Context, signageID uuid.UUID) ([]Blade, error)
	FindByIDWithLines(ctx context.Context, id uuid.UUID) (*Blade, error)
	ExistsByNumber(ctx context.Context, signageID uuid.UUID, number string) (bool, error)
	ReplaceLines(ctx context.Context, blade *Blade) error
}

// SignageTypeRepository persists signage types
type SignageTypeRepository interface {
	shared.Repository[SignageType]
	InUse(ctx context.Context, id uuid.UUID) (bool, error)
}

// SealingRepository persists sealing labels
type SealingRepository interface {
	shared.Repository[Sealing]
}

// ConditionRepository persists condition labels
type ConditionRepository interface {
	shared.Repository[Condition]
}

// BladeTypeRepository persists blade types
type BladeTypeRepository interface {
	shared.Repository[BladeType]
}

// BladeColorRepository persists blade colors
type BladeColorRepository interface {
	shared.Repository[BladeColor]
}

// BladeDirectionRepository persists blade directions
type BladeDirectionRepository interface {
	shared.Repository[BladeDirection]
}
