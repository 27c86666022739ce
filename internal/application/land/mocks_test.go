package land

import (
	"context"

	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/land"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*land.Edge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*land.Edge), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context, filter shared.Filter) ([]land.Edge, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]land.Edge), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, entity *land.Edge) error {
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

func (m *MockRepository) FindByIDForStructure(ctx context.Context, structureID, id uuid.UUID) (*land.Edge, error) {
	args := m.Called(ctx, structureID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*land.Edge), args.Error(1)
}

func (m *MockRepository) FindAllForStructure(ctx context.Context, structureID uuid.UUID, filter shared.Filter) ([]land.Edge, error) {
	args := m.Called(ctx, structureID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]land.Edge), args.Error(1)
}

func (m *MockRepository) FindByKind(ctx context.Context, kind land.EdgeKind, filter shared.Filter) ([]land.Edge, error) {
	args := m.Called(ctx, kind, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]land.Edge), args.Error(1)
}

func (m *MockRepository) CountByPhysicalType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountByLandType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).(int64), args.Error(1)
}

type MockPhysicalTypeRepository struct {
	mock.Mock
}

func (m *MockPhysicalTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*land.PhysicalType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*land.PhysicalType), args.Error(1)
}

func (m *MockPhysicalTypeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]land.PhysicalType, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]land.PhysicalType), args.Error(1)
}

func (m *MockPhysicalTypeRepository) Save(ctx context.Context, entity *land.PhysicalType) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockPhysicalTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPhysicalTypeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockLandTypeRepository struct {
	mock.Mock
}

func (m *MockLandTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*land.LandType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*land.LandType), args.Error(1)
}

func (m *MockLandTypeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]land.LandType, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]land.LandType), args.Error(1)
}

func (m *MockLandTypeRepository) Save(ctx context.Context, entity *land.LandType) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockLandTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLandTypeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrganismRepository struct {
	mock.Mock
}

func (m *MockOrganismRepository) FindByID(ctx context.Context, id uuid.UUID) (*common.Organism, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*common.Organism), args.Error(1)
}

func (m *MockOrganismRepository) FindAll(ctx context.Context, filter shared.Filter) ([]common.Organism, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]common.Organism), args.Error(1)
}

func (m *MockOrganismRepository) Save(ctx context.Context, entity *common.Organism) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockOrganismRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrganismRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrganismRepository) FindByName(ctx context.Context, name string) (*common.Organism, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*common.Organism), args.Error(1)
}
