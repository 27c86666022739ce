package persistence

import (
	"context"
	"errors"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/signage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSignageRepository implements signage.SignageRepository using GORM
type GormSignageRepository struct {
	*GormStructureScopedRepository[signage.Signage]
	db *gorm.DB
}

// NewGormSignageRepository creates a new GormSignageRepository
func NewGormSignageRepository(db *gorm.DB) *GormSignageRepository {
	return &GormSignageRepository{
		GormStructureScopedRepository: NewGormStructureScopedRepository[signage.Signage](
			db,
			[]string{"name", "code", "description"},
			"name ASC",
			map[string]string{
				"type_id":      "type_id",
				"condition_id": "condition_id",
				"sealing_id":   "sealing_id",
				"published":    "published",
			},
		),
		db: db,
	}
}

// FindByIDWithBlades loads a signage with its blades and lines
func (r *GormSignageRepository) FindByIDWithBlades(ctx context.Context, id uuid.UUID) (*signage.Signage, error) {
	var sign signage.Signage
	if err := r.db.WithContext(ctx).
		Preload("Blades", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Preload("Blades.Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		First(&sign, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sign, nil
}

// FindByCode finds a signage by its code
func (r *GormSignageRepository) FindByCode(ctx context.Context, code string) (*signage.Signage, error) {
	var sign signage.Signage
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&sign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sign, nil
}

// FindNear returns signposts within distance meters of the given geometry
func (r *GormSignageRepository) FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]signage.Signage, error) {
	var signs []signage.Signage
	if err := r.db.WithContext(ctx).
		Where("ST_DWithin(geometry, ST_GeomFromEWKT(?), ?)", geom.EWKT(), distance).
		Order("name ASC").
		Find(&signs).Error; err != nil {
		return nil, err
	}
	return signs, nil
}

// DeleteWithBlades soft deletes a signage and its blades
func (r *GormSignageRepository) DeleteWithBlades(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("signage_id = ?", id).Delete(&signage.Blade{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&signage.Signage{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// GormBladeRepository implements signage.BladeRepository using GORM
type GormBladeRepository struct {
	*GormLookupRepository[signage.Blade]
	db *gorm.DB
}

// NewGormBladeRepository creates a new GormBladeRepository
func NewGormBladeRepository(db *gorm.DB) *GormBladeRepository {
	return &GormBladeRepository{
		GormLookupRepository: NewGormLookupRepository[signage.Blade](db, []string{"number"}, "number ASC"),
		db:                   db,
	}
}

// FindBySignage returns the blades mounted on a signage
func (r *GormBladeRepository) FindBySignage(ctx context.Context, signageID uuid.UUID) ([]signage.Blade, error) {
	var blades []signage.Blade
	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		Where("signage_id = ?", signageID).
		Order("number ASC").
		Find(&blades).Error; err != nil {
		return nil, err
	}
	return blades, nil
}

// FindByIDWithLines loads a blade with its lines
func (r *GormBladeRepository) FindByIDWithLines(ctx context.Context, id uuid.UUID) (*signage.Blade, error) {
	var blade signage.Blade
	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("number ASC")
		}).
		First(&blade, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &blade, nil
}

// ExistsByNumber checks if a blade number is already used on the signage
func (r *GormBladeRepository) ExistsByNumber(ctx context.Context, signageID uuid.UUID, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&signage.Blade{}).
		Where("signage_id = ? AND number = ?", signageID, number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReplaceLines persists the blade's lines, replacing any existing set
func (r *GormBladeRepository) ReplaceLines(ctx context.Context, blade *signage.Blade) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blade_id = ?", blade.ID).Delete(&signage.Line{}).Error; err != nil {
			return err
		}
		if len(blade.Lines) == 0 {
			return nil
		}
		return tx.Create(&blade.Lines).Error
	})
}

// GormSignageTypeRepository implements signage.SignageTypeRepository using GORM
type GormSignageTypeRepository struct {
	*GormLookupRepository[signage.SignageType]
	db *gorm.DB
}

// NewGormSignageTypeRepository creates a new GormSignageTypeRepository
func NewGormSignageTypeRepository(db *gorm.DB) *GormSignageTypeRepository {
	return &GormSignageTypeRepository{
		GormLookupRepository: NewGormLookupRepository[signage.SignageType](db, []string{"label"}, "label ASC"),
		db:                   db,
	}
}

// InUse checks if the type is referenced by a signage
func (r *GormSignageTypeRepository) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&signage.Signage{}).
		Where("type_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormSealingRepository implements signage.SealingRepository using GORM
type GormSealingRepository struct {
	*GormLookupRepository[signage.Sealing]
}

// NewGormSealingRepository creates a new GormSealingRepository
func NewGormSealingRepository(db *gorm.DB) *GormSealingRepository {
	return &GormSealingRepository{
		GormLookupRepository: NewGormLookupRepository[signage.Sealing](db, []string{"label"}, "label ASC"),
	}
}

// GormConditionRepository implements signage.ConditionRepository using GORM
type GormConditionRepository struct {
	*GormLookupRepository[signage.Condition]
}

// NewGormConditionRepository creates a new GormConditionRepository
func NewGormConditionRepository(db *gorm.DB) *GormConditionRepository {
	return &GormConditionRepository{
		GormLookupRepository: NewGormLookupRepository[signage.Condition](db, []string{"label"}, "label ASC"),
	}
}

// GormBladeTypeRepository implements signage.BladeTypeRepository using GORM
type GormBladeTypeRepository struct {
	*GormLookupRepository[signage.BladeType]
}

// NewGormBladeTypeRepository creates a new GormBladeTypeRepository
func NewGormBladeTypeRepository(db *gorm.DB) *GormBladeTypeRepository {
	return &GormBladeTypeRepository{
		GormLookupRepository: NewGormLookupRepository[signage.BladeType](db, []string{"label"}, "label ASC"),
	}
}

// GormBladeColorRepository implements signage.BladeColorRepository using GORM
type GormBladeColorRepository struct {
	*GormLookupRepository[signage.BladeColor]
}

// NewGormBladeColorRepository creates a new GormBladeColorRepository
func NewGormBladeColorRepository(db *gorm.DB) *GormBladeColorRepository {
	return &GormBladeColorRepository{
		GormLookupRepository: NewGormLookupRepository[signage.BladeColor](db, []string{"label"}, "label ASC"),
	}
}

// GormBladeDirectionRepository implements signage.BladeDirectionRepository using GORM
type GormBladeDirectionRepository struct {
	*GormLookupRepository[signage.BladeDirection]
}

// NewGormBladeDirectionRepository creates a new GormBladeDirectionRepository
func NewGormBladeDirectionRepository(db *gorm.DB) *GormBladeDirectionRepository {
	return &GormBladeDirectionRepository{
		GormLookupRepository: NewGormLookupRepository[signage.BladeDirection](db, []string{"label"}, "label ASC"),
	}
}

var (
	_ signage.SignageRepository        = (*GormSignageRepository)(nil)
	_ signage.BladeRepository          = (*GormBladeRepository)(nil)
	_ signage.SignageTypeRepository    = (*GormSignageTypeRepository)(nil)
	_ signage.SealingRepository        = (*GormSealingRepository)(nil)
	_ signage.ConditionRepository      = (*GormConditionRepository)(nil)
	_ signage.BladeTypeRepository      = (*GormBladeTypeRepository)(nil)
	_ signage.BladeColorRepository     = (*GormBladeColorRepository)(nil)
	_ signage.BladeDirectionRepository = (*GormBladeDirectionRepository)(nil)
)
