package infrastructure

import (
	"context"

	"github.com/geotrail/backend/internal/domain/infrastructure"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*infrastructure.Infrastructure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infrastructure.Infrastructure), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]infrastructure.Infrastructure, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]infrastructure.Infrastructure), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, entity *infrastructure.Infrastructure) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) FindByIDForStructure(ctx context.Context, structureID, id uuid.UUID) (*infrastructure.Infrastructure, error) {
	args := m.Called(ctx, structureID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infrastructure.Infrastructure), args.Error(1)
}

func (m *MockRepository) FindAllForStructure(ctx context.Context, structureID uuid.UUID, filter shared.Filter) ([]infrastructure.Infrastructure, error) {
	args := m.Called(ctx, structureID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]infrastructure.Infrastructure), args.Error(1)
}

func (m *MockRepository) FindByKind(ctx context.Context, kind infrastructure.Kind, filter shared.Filter) ([]infrastructure.Infrastructure, error) {
	args := m.Called(ctx, kind, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]infrastructure.Infrastructure), args.Error(1)
}

func (m *MockRepository) FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]infrastructure.Infrastructure, error) {
	args := m.Called(ctx, geom, distance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]infrastructure.Infrastructure), args.Error(1)
}

func (m *MockRepository) CountByType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTypeRepository struct {
	mock.Mock
}

func (m *MockTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*infrastructure.InfrastructureType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infrastructure.InfrastructureType), args.Error(1)
}

func (m *MockTypeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]infrastructure.InfrastructureType, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]infrastructure.InfrastructureType), args.Error(1)
}

func (m *MockTypeRepository) Save(ctx context.Context, entity *infrastructure.InfrastructureType) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTypeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTypeRepository) FindByKind(ctx context.Context, kind infrastructure.Kind) ([]infrastructure.InfrastructureType, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]infrastructure.InfrastructureType), args.Error(1)
}

type MockDifficultyLevelRepository struct {
	mock.Mock
}

func (m *MockDifficultyLevelRepository) FindByID(ctx context.Context, id uuid.UUID) (*infrastructure.DifficultyLevel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infrastructure.DifficultyLevel), args.Error(1)
}

func (m *MockDifficultyLevelRepository) FindAll(ctx context.Context, filter shared.Filter) ([]infrastructure.DifficultyLevel, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]infrastructure.DifficultyLevel), args.Error(1)
}

func (m *MockDifficultyLevelRepository) Save(ctx context.Context, entity *infrastructure.DifficultyLevel) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockDifficultyLevelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDifficultyLevelRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}
