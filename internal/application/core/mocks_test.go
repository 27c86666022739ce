package core

import (
	"context"

	"github.com/geotrail/backend/internal/domain/core"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockPathRepository struct {
	mock.Mock
}

func (m *MockPathRepository) FindByID(ctx context.Context, id uuid.UUID) (*core.Path, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.Path), args.Error(1)
}

func (m *MockPathRepository) FindByIDForStructure(ctx context.Context, id, structureID uuid.UUID) (*core.Path, error) {
	args := m.Called(ctx, id, structureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.Path), args.Error(1)
}

func (m *MockPathRepository) FindAll(ctx context.Context, filter shared.Filter) ([]core.Path, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.Path), args.Error(1)
}

func (m *MockPathRepository) FindAllForStructure(ctx context.Context, structureID uuid.UUID, filter shared.Filter) ([]core.Path, error) {
	args := m.Called(ctx, structureID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.Path), args.Error(1)
}

func (m *MockPathRepository) Save(ctx context.Context, path *core.Path) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockPathRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPathRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPathRepository) FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]core.Path, error) {
	args := m.Called(ctx, geom, distance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.Path), args.Error(1)
}

func (m *MockPathRepository) FindByEID(ctx context.Context, eid string) (*core.Path, error) {
	args := m.Called(ctx, eid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.Path), args.Error(1)
}

func (m *MockPathRepository) ReplaceNetworks(ctx context.Context, path *core.Path, networks []core.Network) error {
	args := m.Called(ctx, path, networks)
	return args.Error(0)
}

func (m *MockPathRepository) ReplaceUsages(ctx context.Context, path *core.Path, usages []core.Usage) error {
	args := m.Called(ctx, path, usages)
	return args.Error(0)
}

type MockStakeRepository struct {
	mock.Mock
}

func (m *MockStakeRepository) FindByID(ctx context.Context, id uuid.UUID) (*core.Stake, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.Stake), args.Error(1)
}

func (m *MockStakeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]core.Stake, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.Stake), args.Error(1)
}

func (m *MockStakeRepository) Save(ctx context.Context, stake *core.Stake) error {
	args := m.Called(ctx, stake)
	return args.Error(0)
}

func (m *MockStakeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStakeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStakeRepository) ExistsByRank(ctx context.Context, rank int) (bool, error) {
	args := m.Called(ctx, rank)
	return args.Bool(0), args.Error(1)
}

func (m *MockStakeRepository) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockNetworkRepository struct {
	mock.Mock
}

func (m *MockNetworkRepository) FindByID(ctx context.Context, id uuid.UUID) (*core.Network, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.Network), args.Error(1)
}

func (m *MockNetworkRepository) FindAll(ctx context.Context, filter shared.Filter) ([]core.Network, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.Network), args.Error(1)
}

func (m *MockNetworkRepository) Save(ctx context.Context, network *core.Network) error {
	args := m.Called(ctx, network)
	return args.Error(0)
}

func (m *MockNetworkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNetworkRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNetworkRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]core.Network, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.Network), args.Error(1)
}

type MockUsageRepository struct {
	mock.Mock
}

func (m *MockUsageRepository) FindByID(ctx context.Context, id uuid.UUID) (*core.Usage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.Usage), args.Error(1)
}

func (m *MockUsageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]core.Usage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.Usage), args.Error(1)
}

func (m *MockUsageRepository) Save(ctx context.Context, usage *core.Usage) error {
	args := m.Called(ctx, usage)
	return args.Error(0)
}

func (m *MockUsageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUsageRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUsageRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]core.Usage, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.Usage), args.Error(1)
}

type MockTrailRepository struct {
	mock.Mock
}

func (m *MockTrailRepository) FindByID(ctx context.Context, id uuid.UUID) (*core.Trail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.Trail), args.Error(1)
}

func (m *MockTrailRepository) FindByIDForStructure(ctx context.Context, id, structureID uuid.UUID) (*core.Trail, error) {
	args := m.Called(ctx, id, structureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.Trail), args.Error(1)
}

func (m *MockTrailRepository) FindAll(ctx context.Context, filter shared.Filter) ([]core.Trail, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.Trail), args.Error(1)
}

func (m *MockTrailRepository) FindAllForStructure(ctx context.Context, structureID uuid.UUID, filter shared.Filter) ([]core.Trail, error) {
	args := m.Called(ctx, structureID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.Trail), args.Error(1)
}

func (m *MockTrailRepository) Save(ctx context.Context, trail *core.Trail) error {
	args := m.Called(ctx, trail)
	return args.Error(0)
}

func (m *MockTrailRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTrailRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTrailRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]core.Trail, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.Trail), args.Error(1)
}

type MockTrailCategoryRepository struct {
	mock.Mock
}

func (m *MockTrailCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*core.TrailCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.TrailCategory), args.Error(1)
}

func (m *MockTrailCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]core.TrailCategory, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]core.TrailCategory), args.Error(1)
}

func (m *MockTrailCategoryRepository) Save(ctx context.Context, category *core.TrailCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockTrailCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTrailCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}
