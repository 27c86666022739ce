package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormThemeRepository implements common.ThemeRepository using GORM
type GormThemeRepository struct {
	*GormLookupRepository[common.Theme]
}

// NewGormThemeRepository creates a new GormThemeRepository
func NewGormThemeRepository(db *gorm.DB) *GormThemeRepository {
	return &GormThemeRepository{
		GormLookupRepository: NewGormLookupRepository[common.Theme](db, []string{"label"}, "label ASC"),
	}
}

// GormOrganismRepository implements common.OrganismRepository using GORM
type GormOrganismRepository struct {
	*GormLookupRepository[common.Organism]
	db *gorm.DB
}

// NewGormOrganismRepository creates a new GormOrganismRepository
func NewGormOrganismRepository(db *gorm.DB) *GormOrganismRepository {
	return &GormOrganismRepository{
		GormLookupRepository: NewGormLookupRepository[common.Organism](db, []string{"name"}, "name ASC"),
		db:                   db,
	}
}

// FindByName finds an organism by its name
func (r *GormOrganismRepository) FindByName(ctx context.Context, name string) (*common.Organism, error) {
	var organism common.Organism
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&organism).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &organism, nil
}

var (
	_ common.ThemeRepository    = (*GormThemeRepository)(nil)
	_ common.OrganismRepository = (*GormOrganismRepository)(nil)
)
