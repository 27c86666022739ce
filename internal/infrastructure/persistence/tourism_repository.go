package persistence

import (
	"context"
	"errors"

	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/tourism"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTouristicContentRepository implements tourism.ContentRepository using GORM
type GormTouristicContentRepository struct {
	*GormStructureScopedRepository[tourism.TouristicContent]
	db *gorm.DB
}

// NewGormTouristicContentRepository creates a new GormTouristicContentRepository
func NewGormTouristicContentRepository(db *gorm.DB) *GormTouristicContentRepository {
	return &GormTouristicContentRepository{
		GormStructureScopedRepository: NewGormStructureScopedRepository[tourism.TouristicContent](
			db,
			[]string{"name", "description"},
			"name ASC",
			map[string]string{
				"category_id": "category_id",
				"published":   "published",
				"approved":    "approved",
			},
		),
		db: db,
	}
}

// FindByID finds a content with its relations preloaded
func (r *GormTouristicContentRepository) FindByID(ctx context.Context, id uuid.UUID) (*tourism.TouristicContent, error) {
	var content tourism.TouristicContent
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Types1").
		Preload("Types2").
		Preload("Themes").
		First(&content, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &content, nil
}

// FindByCategory finds contents by category
func (r *GormTouristicContentRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]tourism.TouristicContent, error) {
	var contents []tourism.TouristicContent
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&tourism.TouristicContent{}).Where("category_id = ?", categoryID),
		filter,
	)
	if err := query.Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// FindApproved finds approved contents
func (r *GormTouristicContentRepository) FindApproved(ctx context.Context, filter shared.Filter) ([]tourism.TouristicContent, error) {
	var contents []tourism.TouristicContent
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&tourism.TouristicContent{}).Where("approved = ?", true),
		filter,
	)
	if err := query.Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// FindNear returns contents within distance meters of the given geometry
func (r *GormTouristicContentRepository) FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]tourism.TouristicContent, error) {
	var contents []tourism.TouristicContent
	if err := r.db.WithContext(ctx).
		Where("ST_DWithin(geometry, ST_GeomFromEWKT(?), ?)", geom.EWKT(), distance).
		Order("name ASC").
		Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// FindByEID finds a content by its external ID
func (r *GormTouristicContentRepository) FindByEID(ctx context.Context, eid string) (*tourism.TouristicContent, error) {
	var content tourism.TouristicContent
	if err := r.db.WithContext(ctx).
		Where("eid = ?", eid).
		First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &content, nil
}

// ReplaceThemes replaces the content's themes
func (r *GormTouristicContentRepository) ReplaceThemes(ctx context.Context, content *tourism.TouristicContent, themes []common.Theme) error {
	if err := r.db.WithContext(ctx).Model(content).Association("Themes").Replace(themes); err != nil {
		return err
	}
	content.Themes = themes
	return nil
}

// ReplaceTypes replaces one of the content's type lists
func (r *GormTouristicContentRepository) ReplaceTypes(ctx context.Context, content *tourism.TouristicContent, list int, types []tourism.TouristicContentType) error {
	association := "Types1"
	if list == 2 {
		association = "Types2"
	}
	if err := r.db.WithContext(ctx).Model(content).Association(association).Replace(types); err != nil {
		return err
	}
	if list == 2 {
		content.Types2 = types
	} else {
		content.Types1 = types
	}
	return nil
}

// GormTouristicContentCategoryRepository implements tourism.CategoryRepository using GORM
type GormTouristicContentCategoryRepository struct {
	*GormLookupRepository[tourism.TouristicContentCategory]
	db *gorm.DB
}

// NewGormTouristicContentCategoryRepository creates a new GormTouristicContentCategoryRepository
func NewGormTouristicContentCategoryRepository(db *gorm.DB) *GormTouristicContentCategoryRepository {
	return &GormTouristicContentCategoryRepository{
		GormLookupRepository: NewGormLookupRepository[tourism.TouristicContentCategory](db, []string{"label"}, "label ASC"),
		db:                   db,
	}
}

// InUse checks if the category is referenced by a content
func (r *GormTouristicContentCategoryRepository) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&tourism.TouristicContent{}).
		Where("category_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormTouristicContentTypeRepository implements tourism.ContentTypeRepository using GORM
type GormTouristicContentTypeRepository struct {
	*GormLookupRepository[tourism.TouristicContentType]
	db *gorm.DB
}

// NewGormTouristicContentTypeRepository creates a new GormTouristicContentTypeRepository
func NewGormTouristicContentTypeRepository(db *gorm.DB) *GormTouristicContentTypeRepository {
	return &GormTouristicContentTypeRepository{
		GormLookupRepository: NewGormLookupRepository[tourism.TouristicContentType](db, []string{"label"}, "label ASC"),
		db:                   db,
	}
}

// FindByCategory finds the type values of a category list
func (r *GormTouristicContentTypeRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, list int) ([]tourism.TouristicContentType, error) {
	var types []tourism.TouristicContentType
	if err := r.db.WithContext(ctx).
		Where("category_id = ? AND list = ?", categoryID, list).
		Order("label ASC").
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// GormInformationDeskRepository implements tourism.InformationDeskRepository using GORM
type GormInformationDeskRepository struct {
	*GormLookupRepository[tourism.InformationDesk]
	db *gorm.DB
}

// NewGormInformationDeskRepository creates a new GormInformationDeskRepository
func NewGormInformationDeskRepository(db *gorm.DB) *GormInformationDeskRepository {
	return &GormInformationDeskRepository{
		GormLookupRepository: NewGormLookupRepository[tourism.InformationDesk](db, []string{"name", "municipality"}, "name ASC"),
		db:                   db,
	}
}

// FindByType finds information desks of a given type
func (r *GormInformationDeskRepository) FindByType(ctx context.Context, typeID uuid.UUID) ([]tourism.InformationDesk, error) {
	var desks []tourism.InformationDesk
	if err := r.db.WithContext(ctx).
		Where("type_id = ?", typeID).
		Order("name ASC").
		Find(&desks).Error; err != nil {
		return nil, err
	}
	return desks, nil
}

// GormInformationDeskTypeRepository implements tourism.InformationDeskTypeRepository using GORM
type GormInformationDeskTypeRepository struct {
	*GormLookupRepository[tourism.InformationDeskType]
}

// NewGormInformationDeskTypeRepository creates a new GormInformationDeskTypeRepository
func NewGormInformationDeskTypeRepository(db *gorm.DB) *GormInformationDeskTypeRepository {
	return &GormInformationDeskTypeRepository{
		GormLookupRepository: NewGormLookupRepository[tourism.InformationDeskType](db, []string{"label"}, "label ASC"),
	}
}

var (
	_ tourism.ContentRepository             = (*GormTouristicContentRepository)(nil)
	_ tourism.CategoryRepository            = (*GormTouristicContentCategoryRepository)(nil)
	_ tourism.ContentTypeRepository         = (*GormTouristicContentTypeRepository)(nil)
	_ tourism.InformationDeskRepository     = (*GormInformationDeskRepository)(nil)
	_ tourism.InformationDeskTypeRepository = (*GormInformationDeskTypeRepository)(nil)
)
