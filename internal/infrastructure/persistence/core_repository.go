package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/geotrail/backend/internal/domain/core"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPathRepository implements core.PathRepository using GORM
type GormPathRepository struct {
	*GormStructureScopedRepository[core.Path]
	db *gorm.DB
}

// NewGormPathRepository creates a new GormPathRepository
func NewGormPathRepository(db *gorm.DB) *GormPathRepository {
	return &GormPathRepository{
		GormStructureScopedRepository: NewGormStructureScopedRepository[core.Path](
			db,
			[]string{"name", "departure", "arrival"},
			"name ASC",
			map[string]string{
				"stake_id": "stake_id",
			},
		),
		db: db,
	}
}

// FindByID finds a path with its relations preloaded
func (r *GormPathRepository) FindByID(ctx context.Context, id uuid.UUID) (*core.Path, error) {
	var path core.Path
	if err := r.db.WithContext(ctx).
		Preload("Stake").
		Preload("Networks").
		Preload("Usages").
		First(&path, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &path, nil
}

// FindNear returns paths within distance meters of the given geometry
func (r *GormPathRepository) FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]core.Path, error) {
	var paths []core.Path
	if err := r.db.WithContext(ctx).
		Where("ST_DWithin(geometry, ST_GeomFromEWKT(?), ?)", geom.EWKT(), distance).
		Order("name ASC").
		Find(&paths).Error; err != nil {
		return nil, err
	}
	return paths, nil
}

// FindByEID finds a path by its external ID
func (r *GormPathRepository) FindByEID(ctx context.Context, eid string) (*core.Path, error) {
	var path core.Path
	if err := r.db.WithContext(ctx).
		Where("eid = ?", eid).
		First(&path).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &path, nil
}

// FindModifiedSince returns paths updated after the given time, optionally
// restricted to one structure
func (r *GormPathRepository) FindModifiedSince(ctx context.Context, since time.Time, structureID *uuid.UUID) ([]core.Path, error) {
	var paths []core.Path
	query := r.db.WithContext(ctx).Where("updated_at > ?", since)
	if structureID != nil {
		query = query.Where("structure_id = ?", *structureID)
	}
	if err := query.Order("updated_at ASC").Find(&paths).Error; err != nil {
		return nil, err
	}
	return paths, nil
}

// ReplaceNetworks replaces the path's networks
func (r *GormPathRepository) ReplaceNetworks(ctx context.Context, path *core.Path, networks []core.Network) error {
	if err := r.db.WithContext(ctx).Model(path).Association("Networks").Replace(networks); err != nil {
		return err
	}
	path.Networks = networks
	return nil
}

// ReplaceUsages replaces the path's usages
func (r *GormPathRepository) ReplaceUsages(ctx context.Context, path *core.Path, usages []core.Usage) error {
	if err := r.db.WithContext(ctx).Model(path).Association("Usages").Replace(usages); err != nil {
		return err
	}
	path.Usages = usages
	return nil
}

// GormTrailRepository implements core.TrailRepository using GORM
type GormTrailRepository struct {
	*GormStructureScopedRepository[core.Trail]
	db *gorm.DB
}

// NewGormTrailRepository creates a new GormTrailRepository
func NewGormTrailRepository(db *gorm.DB) *GormTrailRepository {
	return &GormTrailRepository{
		GormStructureScopedRepository: NewGormStructureScopedRepository[core.Trail](
			db,
			[]string{"name", "departure", "arrival"},
			"name ASC",
			map[string]string{
				"category_id": "category_id",
			},
		),
		db: db,
	}
}

// FindByCategory finds trails by category
func (r *GormTrailRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]core.Trail, error) {
	var trails []core.Trail
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&trails).Error; err != nil {
		return nil, err
	}
	return trails, nil
}

// GormStakeRepository implements core.StakeRepository using GORM
type GormStakeRepository struct {
	*GormLookupRepository[core.Stake]
	db *gorm.DB
}

// NewGormStakeRepository creates a new GormStakeRepository
func NewGormStakeRepository(db *gorm.DB) *GormStakeRepository {
	return &GormStakeRepository{
		GormLookupRepository: NewGormLookupRepository[core.Stake](db, []string{"label"}, "rank ASC"),
		db:                   db,
	}
}

// ExistsByRank checks if a stake with the given rank exists
func (r *GormStakeRepository) ExistsByRank(ctx context.Context, rank int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&core.Stake{}).
		Where("rank = ?", rank).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// InUse checks if the stake is referenced by a path
func (r *GormStakeRepository) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&core.Path{}).
		Where("stake_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormNetworkRepository implements core.NetworkRepository using GORM
type GormNetworkRepository struct {
	*GormLookupRepository[core.Network]
}

// NewGormNetworkRepository creates a new GormNetworkRepository
func NewGormNetworkRepository(db *gorm.DB) *GormNetworkRepository {
	return &GormNetworkRepository{
		GormLookupRepository: NewGormLookupRepository[core.Network](db, []string{"label"}, "label ASC"),
	}
}

// GormUsageRepository implements core.UsageRepository using GORM
type GormUsageRepository struct {
	*GormLookupRepository[core.Usage]
}

// NewGormUsageRepository creates a new GormUsageRepository
func NewGormUsageRepository(db *gorm.DB) *GormUsageRepository {
	return &GormUsageRepository{
		GormLookupRepository: NewGormLookupRepository[core.Usage](db, []string{"label"}, "label ASC"),
	}
}

// GormTrailCategoryRepository implements core.TrailCategoryRepository using GORM
type GormTrailCategoryRepository struct {
	*GormLookupRepository[core.TrailCategory]
}

// NewGormTrailCategoryRepository creates a new GormTrailCategoryRepository
func NewGormTrailCategoryRepository(db *gorm.DB) *GormTrailCategoryRepository {
	return &GormTrailCategoryRepository{
		GormLookupRepository: NewGormLookupRepository[core.TrailCategory](db, []string{"label"}, "label ASC"),
	}
}

var (
	_ core.PathRepository          = (*GormPathRepository)(nil)
	_ core.TrailRepository         = (*GormTrailRepository)(nil)
	_ core.StakeRepository         = (*GormStakeRepository)(nil)
	_ core.NetworkRepository       = (*GormNetworkRepository)(nil)
	_ core.UsageRepository         = (*GormUsageRepository)(nil)
	_ core.TrailCategoryRepository = (*GormTrailCategoryRepository)(nil)
)
