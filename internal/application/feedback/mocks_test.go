package feedback

import (
	"context"

	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/feedback"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/trekking"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*feedback.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feedback.Report), args.Error(1)
}

func (m *MockReportRepository) FindAll(ctx context.Context, filter shared.Filter) ([]feedback.Report, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]feedback.Report), args.Error(1)
}

func (m *MockReportRepository) Save(ctx context.Context, entity *feedback.Report) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReportRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) FindByIDForStructure(ctx context.Context, structureID, id uuid.UUID) (*feedback.Report, error) {
	args := m.Called(ctx, structureID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feedback.Report), args.Error(1)
}

func (m *MockReportRepository) FindAllForStructure(ctx context.Context, structureID uuid.UUID, filter shared.Filter) ([]feedback.Report, error) {
	args := m.Called(ctx, structureID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]feedback.Report), args.Error(1)
}

func (m *MockReportRepository) FindByStatus(ctx context.Context, status feedback.Status, filter shared.Filter) ([]feedback.Report, error) {
	args := m.Called(ctx, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]feedback.Report), args.Error(1)
}

func (m *MockReportRepository) FindByTrek(ctx context.Context, trekID uuid.UUID) ([]feedback.Report, error) {
	args := m.Called(ctx, trekID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]feedback.Report), args.Error(1)
}

func (m *MockReportRepository) CountByStatus(ctx context.Context) (map[feedback.Status]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[feedback.Status]int64), args.Error(1)
}

type MockTrekRepository struct {
	mock.Mock
}

func (m *MockTrekRepository) FindByID(ctx context.Context, id uuid.UUID) (*trekking.Trek, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trekking.Trek), args.Error(1)
}

func (m *MockTrekRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trekking.Trek, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.Trek), args.Error(1)
}

func (m *MockTrekRepository) Save(ctx context.Context, entity *trekking.Trek) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockTrekRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTrekRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTrekRepository) FindByIDForStructure(ctx context.Context, structureID, id uuid.UUID) (*trekking.Trek, error) {
	args := m.Called(ctx, structureID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trekking.Trek), args.Error(1)
}

func (m *MockTrekRepository) FindAllForStructure(ctx context.Context, structureID uuid.UUID, filter shared.Filter) ([]trekking.Trek, error) {
	args := m.Called(ctx, structureID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.Trek), args.Error(1)
}

func (m *MockTrekRepository) FindPublished(ctx context.Context) ([]trekking.Trek, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.Trek), args.Error(1)
}

func (m *MockTrekRepository) FindByEID(ctx context.Context, eid string) (*trekking.Trek, error) {
	args := m.Called(ctx, eid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trekking.Trek), args.Error(1)
}

func (m *MockTrekRepository) ReplaceThemes(ctx context.Context, trek *trekking.Trek, themes []common.Theme) error {
	args := m.Called(ctx, trek, themes)
	return args.Error(0)
}

func (m *MockTrekRepository) ReplaceNetworks(ctx context.Context, trek *trekking.Trek, networks []trekking.TrekNetwork) error {
	args := m.Called(ctx, trek, networks)
	return args.Error(0)
}

func (m *MockTrekRepository) ReplaceAccessibilities(ctx context.Context, trek *trekking.Trek, accessibilities []trekking.Accessibility) error {
	args := m.Called(ctx, trek, accessibilities)
	return args.Error(0)
}

func (m *MockTrekRepository) ReplaceWebLinks(ctx context.Context, trek *trekking.Trek, links []trekking.WebLink) error {
	args := m.Called(ctx, trek, links)
	return args.Error(0)
}

func (m *MockTrekRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]trekking.OrderedTrekChild, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.OrderedTrekChild), args.Error(1)
}

func (m *MockTrekRepository) FindParents(ctx context.Context, childID uuid.UUID) ([]trekking.OrderedTrekChild, error) {
	args := m.Called(ctx, childID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.OrderedTrekChild), args.Error(1)
}

func (m *MockTrekRepository) ReplaceChildren(ctx context.Context, parentID uuid.UUID, orderedChildIDs []uuid.UUID) error {
	args := m.Called(ctx, parentID, orderedChildIDs)
	return args.Error(0)
}

func (m *MockTrekRepository) FindRelationships(ctx context.Context, trekID uuid.UUID) ([]trekking.TrekRelationship, error) {
	args := m.Called(ctx, trekID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.TrekRelationship), args.Error(1)
}

func (m *MockTrekRepository) SaveRelationship(ctx context.Context, rel *trekking.TrekRelationship) error {
	args := m.Called(ctx, rel)
	return args.Error(0)
}

func (m *MockTrekRepository) DeleteRelationship(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
