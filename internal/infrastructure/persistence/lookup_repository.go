package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLookupRepository is a generic GORM implementation of shared.Repository
// for small reference tables (practices, stakes, categories, conditions...).
// searchColumns are the columns matched by the filter's Search term and
// defaultOrder is the ordering applied when the filter does not set one.
type GormLookupRepository[T any] struct {
	db            *gorm.DB
	searchColumns []string
	defaultOrder  string
}

// NewGormLookupRepository creates a lookup repository for T
func NewGormLookupRepository[T any](db *gorm.DB, searchColumns []string, defaultOrder string) *GormLookupRepository[T] {
	if defaultOrder == "" {
		defaultOrder = "created_at ASC"
	}
	return &GormLookupRepository[T]{db: db, searchColumns: searchColumns, defaultOrder: defaultOrder}
}

// FindByID finds an entity by its ID
func (r *GormLookupRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// FindAll finds all entities matching the filter
func (r *GormLookupRepository[T]) FindAll(ctx context.Context, filter shared.Filter) ([]T, error) {
	var entities []T
	var model T
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model), filter)
	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// FindByIDs finds entities by their IDs
func (r *GormLookupRepository[T]) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	var entities []T
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Save creates or updates an entity
func (r *GormLookupRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete deletes an entity
func (r *GormLookupRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
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

// Count counts entities matching the filter
func (r *GormLookupRepository[T]) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	var model T
	query := r.applySearch(r.db.WithContext(ctx).Model(&model), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormLookupRepository[T]) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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

func (r *GormLookupRepository[T]) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
	return query
}
