package authent

import (
	"context"

	"github.com/geotrail/backend/internal/domain/authent"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService manages user accounts. All operations require the caller
// to hold the matching user:* permission (enforced by middleware).
type UserService struct {
	userRepo      authent.UserRepository
	structureRepo authent.StructureRepository
	roleRepo      authent.RoleRepository
	logger        *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo authent.UserRepository,
	structureRepo authent.StructureRepository,
	roleRepo authent.RoleRepository,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:      userRepo,
		structureRepo: structureRepo,
		roleRepo:      roleRepo,
		logger:        logger,
	}
}

// Create creates a new user account
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*authent.User, error) {
	taken, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "username is already taken")
	}

	if _, err := s.structureRepo.FindByID(ctx, input.StructureID); err != nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "structure does not exist")
	}

	user, err := authent.NewUser(input.Username, input.Password, input.StructureID)
	if err != nil {
		return nil, err
	}
	user.UpdateProfile(input.Email, input.FirstName, input.LastName)
	user.IsAdmin = input.IsAdmin

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	if len(input.RoleIDs) > 0 {
		roles, err := s.roleRepo.FindByIDs(ctx, input.RoleIDs)
		if err != nil {
			return nil, err
		}
		if len(roles) != len(input.RoleIDs) {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown role in assignment")
		}
		if err := s.userRepo.ReplaceRoles(ctx, user, roles); err != nil {
			return nil, err
		}
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return user, nil
}

// Get returns a user by id
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*authent.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// List returns users matching the filter
func (s *UserService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[authent.User], error) {
	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[authent.User]{}, err
	}
	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[authent.User]{}, err
	}
	return shared.NewPaginated(users, total, filter.Page, filter.PageSize), nil
}

// Update modifies a user's profile, activation state, roles and structure
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*authent.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.UpdateProfile(input.Email, input.FirstName, input.LastName)

	if input.IsActive != nil {
		if *input.IsActive {
			user.Activate()
		} else {
			user.Deactivate()
		}
	}

	if input.StructureID != nil {
		if _, err := s.structureRepo.FindByID(ctx, *input.StructureID); err != nil {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "structure does not exist")
		}
		if err := user.MoveToStructure(*input.StructureID); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	if input.RoleIDs != nil {
		roles, err := s.roleRepo.FindByIDs(ctx, input.RoleIDs)
		if err != nil {
			return nil, err
		}
		if len(roles) != len(input.RoleIDs) {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown role in assignment")
		}
		if err := s.userRepo.ReplaceRoles(ctx, user, roles); err != nil {
			return nil, err
		}
		user.Roles = roles
	}

	return user, nil
}

// Delete removes a user account
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}
