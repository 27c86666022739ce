package authent

import (
	"context"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StructureRepository persists structures
type StructureRepository interface {
	shared.Repository[Structure]
	FindByName(ctx context.Context, name string) (*Structure, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	CountUsers(ctx context.Context, structureID uuid.UUID) (int64, error)
}

// UserRepository persists user accounts
type UserRepository interface {
	shared.Repository[User]
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ReplaceRoles(ctx context.Context, user *User, roles []Role) error
}

// RoleRepository persists roles
type RoleRepository interface {
	shared.Repository[Role]
	FindByName(ctx context.Context, name string) (*Role, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Role, error)
}
