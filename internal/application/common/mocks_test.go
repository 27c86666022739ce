package common

import (
	"context"

	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockThemeRepository struct {
	mock.Mock
}

func (m *MockThemeRepository) FindByID(ctx context.Context, id uuid.UUID) (*common.Theme, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*common.Theme), args.Error(1)
}

func (m *MockThemeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]common.Theme, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]common.Theme), args.Error(1)
}

func (m *MockThemeRepository) Save(ctx context.Context, entity *common.Theme) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockThemeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockThemeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockThemeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]common.Theme, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]common.Theme), args.Error(1)
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
