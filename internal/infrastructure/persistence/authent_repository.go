package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/geotrail/backend/internal/domain/authent"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStructureRepository implements authent.StructureRepository using GORM
type GormStructureRepository struct {
	*GormLookupRepository[authent.Structure]
	db *gorm.DB
}

// NewGormStructureRepository creates a new GormStructureRepository
func NewGormStructureRepository(db *gorm.DB) *GormStructureRepository {
	return &GormStructureRepository{
		GormLookupRepository: NewGormLookupRepository[authent.Structure](db, []string{"name"}, "name ASC"),
		db:                   db,
	}
}

// FindByName finds a structure by its name
func (r *GormStructureRepository) FindByName(ctx context.Context, name string) (*authent.Structure, error) {
	var structure authent.Structure
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&structure).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &structure, nil
}

// ExistsByName checks if a structure with the given name exists
func (r *GormStructureRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&authent.Structure{}).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountUsers counts the user accounts attached to a structure
func (r *GormStructureRepository) CountUsers(ctx context.Context, structureID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&authent.User{}).
		Where("structure_id = ?", structureID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetAllStructureIDs lists every structure ID, for scope-by-scope job runs
func (r *GormStructureRepository) GetAllStructureIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&authent.Structure{}).
		Order("name ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// GormUserRepository implements authent.UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID with roles preloaded
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*authent.User, error) {
	var user authent.User
	if err := r.db.WithContext(ctx).
		Preload("Roles").
		First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username with roles preloaded
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*authent.User, error) {
	var user authent.User
	if err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("LOWER(username) = ?", strings.ToLower(username)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindAll finds all users matching the filter
func (r *GormUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]authent.User, error) {
	var users []authent.User
	query := r.applyFilter(r.db.WithContext(ctx).Model(&authent.User{}).Preload("Roles"), filter)
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Save creates or updates a user
func (r *GormUserRepository) Save(ctx context.Context, user *authent.User) error {
	return r.db.WithContext(ctx).Omit("Roles").Save(user).Error
}

// Delete deletes a user
func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM authent_user_roles WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&authent.User{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts users matching the filter
func (r *GormUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&authent.User{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByUsername checks if a username already exists
func (r *GormUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&authent.User{}).
		Where("LOWER(username) = ?", strings.ToLower(username)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReplaceRoles replaces the user's roles
func (r *GormUserRepository) ReplaceRoles(ctx context.Context, user *authent.User, roles []authent.Role) error {
	if err := r.db.WithContext(ctx).Model(user).Association("Roles").Replace(roles); err != nil {
		return err
	}
	user.Roles = roles
	return nil
}

func (r *GormUserRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("username ASC")
	}

	return query
}

func (r *GormUserRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"username ILIKE ? OR email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	for key, value := range filter.Filters {
		switch key {
		case "structure_id":
			query = query.Where("structure_id = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}
	return query
}

// GormRoleRepository implements authent.RoleRepository using GORM
type GormRoleRepository struct {
	*GormLookupRepository[authent.Role]
	db *gorm.DB
}

// NewGormRoleRepository creates a new GormRoleRepository
func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{
		GormLookupRepository: NewGormLookupRepository[authent.Role](db, []string{"name", "description"}, "name ASC"),
		db:                   db,
	}
}

// FindByName finds a role by its name
func (r *GormRoleRepository) FindByName(ctx context.Context, name string) (*authent.Role, error) {
	var role authent.Role
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

var (
	_ authent.StructureRepository = (*GormStructureRepository)(nil)
	_ authent.UserRepository      = (*GormUserRepository)(nil)
	_ authent.RoleRepository      = (*GormRoleRepository)(nil)
)
