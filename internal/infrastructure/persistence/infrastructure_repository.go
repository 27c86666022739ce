package persistence

import (
	"context"

	"github.com/geotrail/backend/internal/domain/infrastructure"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInfrastructureRepository implements infrastructure.Repository using GORM
type GormInfrastructureRepository struct {
	*GormStructureScopedRepository[infrastructure.Infrastructure]
	db *gorm.DB
}

// NewGormInfrastructureRepository creates a new GormInfrastructureRepository
func NewGormInfrastructureRepository(db *gorm.DB) *GormInfrastructureRepository {
	return &GormInfrastructureRepository{
		GormStructureScopedRepository: NewGormStructureScopedRepository[infrastructure.Infrastructure](
			db,
			[]string{"name", "description"},
			"name ASC",
			map[string]string{
				"type_id":      "type_id",
				"condition_id": "condition_id",
				"published":    "published",
			},
		),
		db: db,
	}
}

// FindByKind finds infrastructures whose type belongs to the given kind
func (r *GormInfrastructureRepository) FindByKind(ctx context.Context, kind infrastructure.Kind, filter shared.Filter) ([]infrastructure.Infrastructure, error) {
	var items []infrastructure.Infrastructure
	query := r.db.WithContext(ctx).
		Model(&infrastructure.Infrastructure{}).
		Joins("JOIN infrastructure_types ON infrastructure_types.id = infrastructure_infrastructures.type_id").
		Where("infrastructure_types.kind = ?", kind)
	query = r.applyFilter(query, filter)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindNear returns infrastructures within distance meters of the given geometry
func (r *GormInfrastructureRepository) FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]infrastructure.Infrastructure, error) {
	var items []infrastructure.Infrastructure
	if err := r.db.WithContext(ctx).
		Where("ST_DWithin(geometry, ST_GeomFromEWKT(?), ?)", geom.EWKT(), distance).
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CountByType counts infrastructures of a given type
func (r *GormInfrastructureRepository) CountByType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&infrastructure.Infrastructure{}).
		Where("type_id = ?", typeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormInfrastructureTypeRepository implements infrastructure.TypeRepository using GORM
type GormInfrastructureTypeRepository struct {
	*GormLookupRepository[infrastructure.InfrastructureType]
	db *gorm.DB
}

// NewGormInfrastructureTypeRepository creates a new GormInfrastructureTypeRepository
func NewGormInfrastructureTypeRepository(db *gorm.DB) *GormInfrastructureTypeRepository {
	return &GormInfrastructureTypeRepository{
		GormLookupRepository: NewGormLookupRepository[infrastructure.InfrastructureType](db, []string{"label"}, "label ASC"),
		db:                   db,
	}
}

// FindByKind finds infrastructure types of the given kind
func (r *GormInfrastructureTypeRepository) FindByKind(ctx context.Context, kind infrastructure.Kind) ([]infrastructure.InfrastructureType, error) {
	var types []infrastructure.InfrastructureType
	if err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("label ASC").
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// GormInfraDifficultyLevelRepository implements infrastructure.DifficultyLevelRepository using GORM
type GormInfraDifficultyLevelRepository struct {
	*GormLookupRepository[infrastructure.DifficultyLevel]
}

// NewGormInfraDifficultyLevelRepository creates a new GormInfraDifficultyLevelRepository
func NewGormInfraDifficultyLevelRepository(db *gorm.DB) *GormInfraDifficultyLevelRepository {
	return &GormInfraDifficultyLevelRepository{
		GormLookupRepository: NewGormLookupRepository[infrastructure.DifficultyLevel](db, []string{"label"}, "label ASC"),
	}
}

var (
	_ infrastructure.Repository                = (*GormInfrastructureRepository)(nil)
	_ infrastructure.TypeRepository            = (*GormInfrastructureTypeRepository)(nil)
	_ infrastructure.DifficultyLevelRepository = (*GormInfraDifficultyLevelRepository)(nil)
)
