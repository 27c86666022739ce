package maintenance

import (
	"context"

	"github.com/geotrail/backend/internal/domain/infrastructure"
	"github.com/geotrail/backend/internal/domain/maintenance"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/signage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockInterventionRepository struct {
	mock.Mock
}

func (m *MockInterventionRepository) FindByID(ctx context.Context, id uuid.UUID) (*maintenance.Intervention, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*maintenance.Intervention), args.Error(1)
}

func (m *MockInterventionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]maintenance.Intervention, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]maintenance.Intervention), args.Error(1)
}

func (m *MockInterventionRepository) Save(ctx context.Context, entity *maintenance.Intervention) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockInterventionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInterventionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInterventionRepository) FindByIDForStructure(ctx context.Context, structureID, id uuid.UUID) (*maintenance.Intervention, error) {
	args := m.Called(ctx, structureID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*maintenance.Intervention), args.Error(1)
}

func (m *MockInterventionRepository) FindAllForStructure(ctx context.Context, structureID uuid.UUID, filter shared.Filter) ([]maintenance.Intervention, error) {
	args := m.Called(ctx, structureID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]maintenance.Intervention), args.Error(1)
}

func (m *MockInterventionRepository) FindByTarget(ctx context.Context, kind maintenance.TargetKind, targetID uuid.UUID) ([]maintenance.Intervention, error) {
	args := m.Called(ctx, kind, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]maintenance.Intervention), args.Error(1)
}

func (m *MockInterventionRepository) SummarizeCosts(ctx context.Context, kind maintenance.TargetKind, targetID uuid.UUID) (maintenance.CostSummary, error) {
	args := m.Called(ctx, kind, targetID)
	return args.Get(0).(maintenance.CostSummary), args.Error(1)
}

type MockSignageRepository struct {
	mock.Mock
}

func (m *MockSignageRepository) FindByID(ctx context.Context, id uuid.UUID) (*signage.Signage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signage.Signage), args.Error(1)
}

func (m *MockSignageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]signage.Signage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]signage.Signage), args.Error(1)
}

func (m *MockSignageRepository) Save(ctx context.Context, entity *signage.Signage) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockSignageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSignageRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSignageRepository) FindByIDForStructure(ctx context.Context, structureID, id uuid.UUID) (*signage.Signage, error) {
	args := m.Called(ctx, structureID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signage.Signage), args.Error(1)
}

func (m *MockSignageRepository) FindAllForStructure(ctx context.Context, structureID uuid.UUID, filter shared.Filter) ([]signage.Signage, error) {
	args := m.Called(ctx, structureID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]signage.Signage), args.Error(1)
}

func (m *MockSignageRepository) FindByIDWithBlades(ctx context.Context, id uuid.UUID) (*signage.Signage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signage.Signage), args.Error(1)
}

func (m *MockSignageRepository) FindByCode(ctx context.Context, code string) (*signage.Signage, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signage.Signage), args.Error(1)
}

func (m *MockSignageRepository) FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]signage.Signage, error) {
	args := m.Called(ctx, geom, distance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]signage.Signage), args.Error(1)
}

func (m *MockSignageRepository) DeleteWithBlades(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBladeRepository struct {
	mock.Mock
}

func (m *MockBladeRepository) FindByID(ctx context.Context, id uuid.UUID) (*signage.Blade, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signage.Blade), args.Error(1)
}

func (m *MockBladeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]signage.Blade, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]signage.Blade), args.Error(1)
}

func (m *MockBladeRepository) Save(ctx context.Context, entity *signage.Blade) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockBladeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBladeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBladeRepository) FindBySignage(ctx context.Context, signageID uuid.UUID) ([]signage.Blade, error) {
	args := m.Called(ctx, signageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]signage.Blade), args.Error(1)
}

func (m *MockBladeRepository) FindByIDWithLines(ctx context.Context, id uuid.UUID) (*signage.Blade, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*signage.Blade), args.Error(1)
}

func (m *MockBladeRepository) ExistsByNumber(ctx context.Context, signageID uuid.UUID, number string) (bool, error) {
	args := m.Called(ctx, signageID, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockBladeRepository) ReplaceLines(ctx context.Context, blade *signage.Blade) error {
	args := m.Called(ctx, blade)
	return args.Error(0)
}

type MockInfrastructureRepository struct {
	mock.Mock
}

func (m *MockInfrastructureRepository) FindByID(ctx context.Context, id uuid.UUID) (*infrastructure.Infrastructure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infrastructure.Infrastructure), args.Error(1)
}

func (m *MockInfrastructureRepository) FindAll(ctx context.Context, filter shared.Filter) ([]infrastructure.Infrastructure, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]infrastructure.Infrastructure), args.Error(1)
}

func (m *MockInfrastructureRepository) Save(ctx context.Context, entity *infrastructure.Infrastructure) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockInfrastructureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInfrastructureRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInfrastructureRepository) FindByIDForStructure(ctx context.Context, structureID, id uuid.UUID) (*infrastructure.Infrastructure, error) {
	args := m.Called(ctx, structureID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infrastructure.Infrastructure), args.Error(1)
}

func (m *MockInfrastructureRepository) FindAllForStructure(ctx context.Context, structureID uuid.UUID, filter shared.Filter) ([]infrastructure.Infrastructure, error) {
	args := m.Called(ctx, structureID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]infrastructure.Infrastructure), args.Error(1)
}

func (m *MockInfrastructureRepository) FindByKind(ctx context.Context, kind infrastructure.Kind, filter shared.Filter) ([]infrastructure.Infrastructure, error) {
	args := m.Called(ctx, kind, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]infrastructure.Infrastructure), args.Error(1)
}

func (m *MockInfrastructureRepository) FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]infrastructure.Infrastructure, error) {
	args := m.Called(ctx, geom, distance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]infrastructure.Infrastructure), args.Error(1)
}

func (m *MockInfrastructureRepository) CountByType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).(int64), args.Error(1)
}
