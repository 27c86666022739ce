package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/trekking"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTrekRepository implements trekking.TrekRepository using GORM
type GormTrekRepository struct {
	*GormStructureScopedRepository[trekking.Trek]
	db *gorm.DB
}

// NewGormTrekRepository creates a new GormTrekRepository
func NewGormTrekRepository(db *gorm.DB) *GormTrekRepository {
	return &GormTrekRepository{
		GormStructureScopedRepository: NewGormStructureScopedRepository[trekking.Trek](
			db,
			[]string{"name", "departure", "arrival"},
			"name ASC",
			map[string]string{
				"difficulty_id": "difficulty_id",
				"practice_id":   "practice_id",
				"route_id":      "route_id",
				"published":     "published",
			},
		),
		db: db,
	}
}

// FindByID finds a trek with its relations preloaded
func (r *GormTrekRepository) FindByID(ctx context.Context, id uuid.UUID) (*trekking.Trek, error) {
	var trek trekking.Trek
	if err := r.db.WithContext(ctx).
		Preload("Difficulty").
		Preload("Practice").
		Preload("Route").
		Preload("Themes").
		Preload("Networks").
		Preload("Accessibilities").
		Preload("WebLinks").
		First(&trek, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &trek, nil
}

// FindPublished returns all published treks
func (r *GormTrekRepository) FindPublished(ctx context.Context) ([]trekking.Trek, error) {
	var treks []trekking.Trek
	if err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("name ASC").
		Find(&treks).Error; err != nil {
		return nil, err
	}
	return treks, nil
}

// FindByEID finds a trek by its external ID
func (r *GormTrekRepository) FindByEID(ctx context.Context, eid string) (*trekking.Trek, error) {
	var trek trekking.Trek
	if err := r.db.WithContext(ctx).
		Where("eid = ?", eid).
		First(&trek).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &trek, nil
}

// FindModifiedSince returns treks updated after the given time, optionally
// restricted to one structure
func (r *GormTrekRepository) FindModifiedSince(ctx context.Context, since time.Time, structureID *uuid.UUID) ([]trekking.Trek, error) {
	var treks []trekking.Trek
	query := r.db.WithContext(ctx).Where("updated_at > ?", since)
	if structureID != nil {
		query = query.Where("structure_id = ?", *structureID)
	}
	if err := query.Order("updated_at ASC").Find(&treks).Error; err != nil {
		return nil, err
	}
	return treks, nil
}

// ReplaceThemes replaces the trek's themes
func (r *GormTrekRepository) ReplaceThemes(ctx context.Context, trek *trekking.Trek, themes []common.Theme) error {
	if err := r.db.WithContext(ctx).Model(trek).Association("Themes").Replace(themes); err != nil {
		return err
	}
	trek.Themes = themes
	return nil
}

// ReplaceNetworks replaces the trek's networks
func (r *GormTrekRepository) ReplaceNetworks(ctx context.Context, trek *trekking.Trek, networks []trekking.TrekNetwork) error {
	if err := r.db.WithContext(ctx).Model(trek).Association("Networks").Replace(networks); err != nil {
		return err
	}
	trek.Networks = networks
	return nil
}

// ReplaceAccessibilities replaces the trek's accessibility labels
func (r *GormTrekRepository) ReplaceAccessibilities(ctx context.Context, trek *trekking.Trek, accessibilities []trekking.Accessibility) error {
	if err := r.db.WithContext(ctx).Model(trek).Association("Accessibilities").Replace(accessibilities); err != nil {
		return err
	}
	trek.Accessibilities = accessibilities
	return nil
}

// ReplaceWebLinks replaces the trek's web links
func (r *GormTrekRepository) ReplaceWebLinks(ctx context.Context, trek *trekking.Trek, links []trekking.WebLink) error {
	if err := r.db.WithContext(ctx).Model(trek).Association("WebLinks").Replace(links); err != nil {
		return err
	}
	trek.WebLinks = links
	return nil
}

// FindChildren returns the ordered children of a trek
func (r *GormTrekRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]trekking.OrderedTrekChild, error) {
	var children []trekking.OrderedTrekChild
	if err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("ordering ASC").
		Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

// FindParents returns the parent links of a trek
func (r *GormTrekRepository) FindParents(ctx context.Context, childID uuid.UUID) ([]trekking.OrderedTrekChild, error) {
	var parents []trekking.OrderedTrekChild
	if err := r.db.WithContext(ctx).
		Where("child_id = ?", childID).
		Order("ordering ASC").
		Find(&parents).Error; err != nil {
		return nil, err
	}
	return parents, nil
}

// ReplaceChildren replaces the ordered children of a trek
func (r *GormTrekRepository) ReplaceChildren(ctx context.Context, parentID uuid.UUID, orderedChildIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", parentID).Delete(&trekking.OrderedTrekChild{}).Error; err != nil {
			return err
		}
		if len(orderedChildIDs) == 0 {
			return nil
		}
		children := make([]trekking.OrderedTrekChild, len(orderedChildIDs))
		for i, childID := range orderedChildIDs {
			children[i] = trekking.OrderedTrekChild{
				ParentID: parentID,
				ChildID:  childID,
				Order:    i,
			}
		}
		return tx.Create(&children).Error
	})
}

// FindRelationships returns all relationships involving the trek
func (r *GormTrekRepository) FindRelationships(ctx context.Context, trekID uuid.UUID) ([]trekking.TrekRelationship, error) {
	var rels []trekking.TrekRelationship
	if err := r.db.WithContext(ctx).
		Where("trek_a_id = ? OR trek_b_id = ?", trekID, trekID).
		Find(&rels).Error; err != nil {
		return nil, err
	}
	return rels, nil
}

// SaveRelationship creates or updates a trek relationship
func (r *GormTrekRepository) SaveRelationship(ctx context.Context, rel *trekking.TrekRelationship) error {
	return r.db.WithContext(ctx).Save(rel).Error
}

// DeleteRelationship deletes a trek relationship
func (r *GormTrekRepository) DeleteRelationship(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&trekking.TrekRelationship{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormPOIRepository implements trekking.POIRepository using GORM
type GormPOIRepository struct {
	*GormStructureScopedRepository[trekking.POI]
	db *gorm.DB
}

// NewGormPOIRepository creates a new GormPOIRepository
func NewGormPOIRepository(db *gorm.DB) *GormPOIRepository {
	return &GormPOIRepository{
		GormStructureScopedRepository: NewGormStructureScopedRepository[trekking.POI](
			db,
			[]string{"name", "description"},
			"name ASC",
			map[string]string{
				"type_id":   "type_id",
				"published": "published",
			},
		),
		db: db,
	}
}

// FindNear returns POIs within distance meters of the given geometry
func (r *GormPOIRepository) FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]trekking.POI, error) {
	var pois []trekking.POI
	if err := r.db.WithContext(ctx).
		Where("ST_DWithin(geometry, ST_GeomFromEWKT(?), ?)", geom.EWKT(), distance).
		Order("name ASC").
		Find(&pois).Error; err != nil {
		return nil, err
	}
	return pois, nil
}

// CountByType counts POIs of a given type
func (r *GormPOIRepository) CountByType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trekking.POI{}).
		Where("type_id = ?", typeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormServiceRepository implements trekking.ServiceRepository using GORM
type GormServiceRepository struct {
	*GormStructureScopedRepository[trekking.Service]
	db *gorm.DB
}

// NewGormServiceRepository creates a new GormServiceRepository
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{
		GormStructureScopedRepository: NewGormStructureScopedRepository[trekking.Service](
			db,
			nil,
			"created_at DESC",
			map[string]string{
				"type_id": "type_id",
			},
		),
		db: db,
	}
}

// FindNear returns services within distance meters of the given geometry
func (r *GormServiceRepository) FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]trekking.Service, error) {
	var services []trekking.Service
	if err := r.db.WithContext(ctx).
		Where("ST_DWithin(geometry, ST_GeomFromEWKT(?), ?)", geom.EWKT(), distance).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// CountByType counts services of a given type
func (r *GormServiceRepository) CountByType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trekking.Service{}).
		Where("type_id = ?", typeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormPracticeRepository implements trekking.PracticeRepository using GORM
type GormPracticeRepository struct {
	*GormLookupRepository[trekking.Practice]
	db *gorm.DB
}

// NewGormPracticeRepository creates a new GormPracticeRepository
func NewGormPracticeRepository(db *gorm.DB) *GormPracticeRepository {
	return &GormPracticeRepository{
		GormLookupRepository: NewGormLookupRepository[trekking.Practice](db, []string{"name"}, "ordering ASC"),
		db:                   db,
	}
}

// FindByName finds a practice by its name
func (r *GormPracticeRepository) FindByName(ctx context.Context, name string) (*trekking.Practice, error) {
	var practice trekking.Practice
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&practice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &practice, nil
}

// InUse checks if the practice is referenced by a trek
func (r *GormPracticeRepository) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trekking.Trek{}).
		Where("practice_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormDifficultyLevelRepository implements trekking.DifficultyLevelRepository using GORM
type GormDifficultyLevelRepository struct {
	*GormLookupRepository[trekking.DifficultyLevel]
	db *gorm.DB
}

// NewGormDifficultyLevelRepository creates a new GormDifficultyLevelRepository
func NewGormDifficultyLevelRepository(db *gorm.DB) *GormDifficultyLevelRepository {
	return &GormDifficultyLevelRepository{
		GormLookupRepository: NewGormLookupRepository[trekking.DifficultyLevel](db, []string{"name"}, "rank ASC"),
		db:                   db,
	}
}

// ExistsByRank checks if a difficulty level with the given rank exists
func (r *GormDifficultyLevelRepository) ExistsByRank(ctx context.Context, rank int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trekking.DifficultyLevel{}).
		Where("rank = ?", rank).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// InUse checks if the difficulty level is referenced by a trek
func (r *GormDifficultyLevelRepository) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trekking.Trek{}).
		Where("difficulty_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormRouteRepository implements trekking.RouteRepository using GORM
type GormRouteRepository struct {
	*GormLookupRepository[trekking.Route]
}

// NewGormRouteRepository creates a new GormRouteRepository
func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{
		GormLookupRepository: NewGormLookupRepository[trekking.Route](db, []string{"name"}, "name ASC"),
	}
}

// GormAccessibilityRepository implements trekking.AccessibilityRepository using GORM
type GormAccessibilityRepository struct {
	*GormLookupRepository[trekking.Accessibility]
}

// NewGormAccessibilityRepository creates a new GormAccessibilityRepository
func NewGormAccessibilityRepository(db *gorm.DB) *GormAccessibilityRepository {
	return &GormAccessibilityRepository{
		GormLookupRepository: NewGormLookupRepository[trekking.Accessibility](db, []string{"name"}, "name ASC"),
	}
}

// GormTrekNetworkRepository implements trekking.TrekNetworkRepository using GORM
type GormTrekNetworkRepository struct {
	*GormLookupRepository[trekking.TrekNetwork]
}

// NewGormTrekNetworkRepository creates a new GormTrekNetworkRepository
func NewGormTrekNetworkRepository(db *gorm.DB) *GormTrekNetworkRepository {
	return &GormTrekNetworkRepository{
		GormLookupRepository: NewGormLookupRepository[trekking.TrekNetwork](db, []string{"name"}, "name ASC"),
	}
}

// GormWebLinkRepository implements trekking.WebLinkRepository using GORM
type GormWebLinkRepository struct {
	*GormLookupRepository[trekking.WebLink]
}

// NewGormWebLinkRepository creates a new GormWebLinkRepository
func NewGormWebLinkRepository(db *gorm.DB) *GormWebLinkRepository {
	return &GormWebLinkRepository{
		GormLookupRepository: NewGormLookupRepository[trekking.WebLink](db, []string{"name", "url"}, "name ASC"),
	}
}

// GormPOITypeRepository implements trekking.POITypeRepository using GORM
type GormPOITypeRepository struct {
	*GormLookupRepository[trekking.POIType]
}

// NewGormPOITypeRepository creates a new GormPOITypeRepository
func NewGormPOITypeRepository(db *gorm.DB) *GormPOITypeRepository {
	return &GormPOITypeRepository{
		GormLookupRepository: NewGormLookupRepository[trekking.POIType](db, []string{"label"}, "label ASC"),
	}
}

// GormServiceTypeRepository implements trekking.ServiceTypeRepository using GORM
type GormServiceTypeRepository struct {
	*GormLookupRepository[trekking.ServiceType]
	db *gorm.DB
}

// NewGormServiceTypeRepository creates a new GormServiceTypeRepository
func NewGormServiceTypeRepository(db *gorm.DB) *GormServiceTypeRepository {
	return &GormServiceTypeRepository{
		GormLookupRepository: NewGormLookupRepository[trekking.ServiceType](db, []string{"name"}, "name ASC"),
		db:                   db,
	}
}

// ReplacePractices replaces the service type's practices
func (r *GormServiceTypeRepository) ReplacePractices(ctx context.Context, st *trekking.ServiceType, practices []trekking.Practice) error {
	if err := r.db.WithContext(ctx).Model(st).Association("Practices").Replace(practices); err != nil {
		return err
	}
	st.Practices = practices
	return nil
}

var (
	_ trekking.TrekRepository            = (*GormTrekRepository)(nil)
	_ trekking.POIRepository             = (*GormPOIRepository)(nil)
	_ trekking.ServiceRepository         = (*GormServiceRepository)(nil)
	_ trekking.PracticeRepository        = (*GormPracticeRepository)(nil)
	_ trekking.DifficultyLevelRepository = (*GormDifficultyLevelRepository)(nil)
	_ trekking.RouteRepository           = (*GormRouteRepository)(nil)
	_ trekking.AccessibilityRepository   = (*GormAccessibilityRepository)(nil)
	_ trekking.TrekNetworkRepository     = (*GormTrekNetworkRepository)(nil)
	_ trekking.WebLinkRepository         = (*GormWebLinkRepository)(nil)
	_ trekking.POITypeRepository         = (*GormPOITypeRepository)(nil)
	_ trekking.ServiceTypeRepository     = (*GormServiceTypeRepository)(nil)
)
