package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStructureScopedRepository is a generic GORM implementation of
// shared.StructureRepository. Listing is global; the ForStructure variants
// restrict matches to the owning structure.
type GormStructureScopedRepository[T any] struct {
	db            *gorm.DB
	searchColumns []string
	defaultOrder  string
	filterColumns map[string]string
}

// NewGormStructureScopedRepository creates a structure-scoped repository for T.
// filterColumns maps filter keys to column equality predicates.
func NewGormStructureScopedRepository[T any](db *gorm.DB, searchColumns []string, defaultOrder string, filterColumns map[string]string) *GormStructureScopedRepository[T] {
	if defaultOrder == "" {
		defaultOrder = "created_at DESC"
	}
	return &GormStructureScopedRepository[T]{
		db:            db,
		searchColumns: searchColumns,
		defaultOrder:  defaultOrder,
		filterColumns: filterColumns,
	}
}

// FindByID finds an aggregate by its ID
func (r *GormStructureScopedRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// FindByIDForStructure finds an aggregate by ID within a structure
func (r *GormStructureScopedRepository[T]) FindByIDForStructure(ctx context.Context, structureID, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).
		Where("structure_id = ? AND id = ?", structureID, id).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// FindAll finds all aggregates matching the filter
func (r *GormStructureScopedRepository[T]) FindAll(ctx context.Context, filter shared.Filter) ([]T, error) {
	var entities []T
	var model T
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model), filter)
	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// FindAllForStructure finds all aggregates of a structure matching the filter
func (r *GormStructureScopedRepository[T]) FindAllForStructure(ctx context.Context, structureID uuid.UUID, filter shared.Filter) ([]T, error) {
	var entities []T
	var model T
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&model).Where("structure_id = ?", structureID),
		filter,
	)
	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Save creates or updates an aggregate
func (r *GormStructureScopedRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete soft deletes an aggregate
func (r *GormStructureScopedRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var model T
	result := r.db.WithContext(ctx).Delete(&model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts aggregates matching the filter
func (r *GormStructureScopedRepository[T]) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	var model T
	query := r.applySearch(r.db.WithContext(ctx).Model(&model), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormStructureScopedRepository[T]) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order(r.defaultOrder)
	}

	return query
}

func (r *GormStructureScopedRepository[T]) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" && len(r.searchColumns) > 0 {
		pattern := "%" + filter.Search + "%"
		clauses := make([]string, len(r.searchColumns))
		args := make([]interface{}, len(r.searchColumns))
		for i, col := range r.searchColumns {
			clauses[i] = col + " ILIKE ?"
			args[i] = pattern
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}
	for key, value := range filter.Filters {
		if col, ok := r.filterColumns[key]; ok {
			query = query.Where(col+" = ?", value)
		}
	}
	return query
}
