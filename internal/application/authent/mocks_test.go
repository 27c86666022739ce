package authent

import (
	"context"

	"github.com/geotrail/backend/internal/domain/authent"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of authent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*authent.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authent.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]authent.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]authent.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *authent.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*authent.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authent.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ReplaceRoles(ctx context.Context, user *authent.User, roles []authent.Role) error {
	args := m.Called(ctx, user, roles)
	return args.Error(0)
}

// MockStructureRepository is a mock implementation of authent.StructureRepository
type MockStructureRepository struct {
	mock.Mock
}

func (m *MockStructureRepository) FindByID(ctx context.Context, id uuid.UUID) (*authent.Structure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authent.Structure), args.Error(1)
}

func (m *MockStructureRepository) FindAll(ctx context.Context, filter shared.Filter) ([]authent.Structure, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]authent.Structure), args.Error(1)
}

func (m *MockStructureRepository) Save(ctx context.Context, structure *authent.Structure) error {
	args := m.Called(ctx, structure)
	return args.Error(0)
}

func (m *MockStructureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStructureRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStructureRepository) FindByName(ctx context.Context, name string) (*authent.Structure, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authent.Structure), args.Error(1)
}

func (m *MockStructureRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockStructureRepository) CountUsers(ctx context.Context, structureID uuid.UUID) (int64, error) {
	args := m.Called(ctx, structureID)
	return args.Get(0).(int64), args.Error(1)
}

// MockRoleRepository is a mock implementation of authent.RoleRepository
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*authent.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authent.Role), args.Error(1)
}

func (m *MockRoleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]authent.Role, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]authent.Role), args.Error(1)
}

func (m *MockRoleRepository) Save(ctx context.Context, role *authent.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*authent.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authent.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]authent.Role, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]authent.Role), args.Error(1)
}
