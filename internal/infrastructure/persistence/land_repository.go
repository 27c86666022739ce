package persistence

import (
	"context"

	"github.com/geotrail/backend/internal/domain/land"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLandEdgeRepository implements land.Repository using GORM
type GormLandEdgeRepository struct {
	*GormStructureScopedRepository[land.Edge]
	db *gorm.DB
}

// NewGormLandEdgeRepository creates a new GormLandEdgeRepository
func NewGormLandEdgeRepository(db *gorm.DB) *GormLandEdgeRepository {
	return &GormLandEdgeRepository{
		GormStructureScopedRepository: NewGormStructureScopedRepository[land.Edge](
			db,
			[]string{"comment"},
			"created_at DESC",
			map[string]string{
				"kind":             "kind",
				"physical_type_id": "physical_type_id",
				"land_type_id":     "land_type_id",
				"organism_id":      "organism_id",
			},
		),
		db: db,
	}
}

// FindByKind finds edges of one legal layer
func (r *GormLandEdgeRepository) FindByKind(ctx context.Context, kind land.EdgeKind, filter shared.Filter) ([]land.Edge, error) {
	var items []land.Edge
	query := r.db.WithContext(ctx).
		Model(&land.Edge{}).
		Where("kind = ?", kind)
	query = r.applyFilter(query, filter)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CountByPhysicalType counts edges referencing a physical type
func (r *GormLandEdgeRepository) CountByPhysicalType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&land.Edge{}).
		Where("physical_type_id = ?", typeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByLandType counts edges referencing a land type
func (r *GormLandEdgeRepository) CountByLandType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&land.Edge{}).
		Where("land_type_id = ?", typeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormPhysicalTypeRepository implements land.PhysicalTypeRepository using GORM
type GormPhysicalTypeRepository struct {
	*GormLookupRepository[land.PhysicalType]
}

// NewGormPhysicalTypeRepository creates a new GormPhysicalTypeRepository
func NewGormPhysicalTypeRepository(db *gorm.DB) *GormPhysicalTypeRepository {
	return &GormPhysicalTypeRepository{
		GormLookupRepository: NewGormLookupRepository[land.PhysicalType](db, []string{"label"}, "label ASC"),
	}
}

// GormLandTypeRepository implements land.LandTypeRepository using GORM
type GormLandTypeRepository struct {
	*GormLookupRepository[land.LandType]
}

// NewGormLandTypeRepository creates a new GormLandTypeRepository
func NewGormLandTypeRepository(db *gorm.DB) *GormLandTypeRepository {
	return &GormLandTypeRepository{
		GormLookupRepository: NewGormLookupRepository[land.LandType](db, []string{"label"}, "label ASC"),
	}
}

var (
	_ land.Repository             = (*GormLandEdgeRepository)(nil)
	_ land.PhysicalTypeRepository = (*GormPhysicalTypeRepository)(nil)
	_ land.LandTypeRepository     = (*GormLandTypeRepository)(nil)
)
