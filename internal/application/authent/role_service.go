package authent

import (
	"context"

	"github.com/geotrail/backend/internal/domain/authent"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoleService manages roles and their permission sets
type RoleService struct {
	roleRepo authent.RoleRepository
	logger   *zap.Logger
}

// NewRoleService creates a new role service
func NewRoleService(roleRepo authent.RoleRepository, logger *zap.Logger) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		logger:   logger,
	}
}

// Create creates a role after validating the permission strings
func (s *RoleService) Create(ctx context.Context, input CreateRoleInput) (*authent.Role, error) {
	if existing, err := s.roleRepo.FindByName(ctx, input.Name); err == nil && existing != nil {
		return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "a role with this name already exists")
	}

	role, err := authent.NewRole(input.Name, input.Description, input.Permissions)
	if err != nil {
		return nil, err
	}

	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Info("Role created",
		zap.String("role_id", role.ID.String()),
		zap.String("name", role.Name))

	return role, nil
}

// Get returns a role by id
func (s *RoleService) Get(ctx context.Context, id uuid.UUID) (*authent.Role, error) {
	return s.roleRepo.FindByID(ctx, id)
}

// List returns roles matching the filter
func (s *RoleService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[authent.Role], error) {
	roles, err := s.roleRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[authent.Role]{}, err
	}
	total, err := s.roleRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[authent.Role]{}, err
	}
	return shared.NewPaginated(roles, total, filter.Page, filter.PageSize), nil
}

// Update replaces a role's description and permissions
func (s *RoleService) Update(ctx context.Context, id uuid.UUID, input UpdateRoleInput) (*authent.Role, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := role.Update(input.Description, input.Permissions); err != nil {
		return nil, err
	}
	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// Delete removes a role
func (s *RoleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.roleRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Role deleted", zap.String("role_id", id.String()))
	return nil
}
