package trekking

import (
	"context"
	"time"

	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/trekking"
	"github.com/geotrail/backend/internal/infrastructure/scheduler"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

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

func (m *MockTrekRepository) FindByIDForStructure(ctx context.Context, structureID, id uuid.UUID) (*trekking.Trek, error) {
	args := m.Called(ctx, structureID, id)
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

func (m *MockTrekRepository) FindAllForStructure(ctx context.Context, structureID uuid.UUID, filter shared.Filter) ([]trekking.Trek, error) {
	args := m.Called(ctx, structureID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.Trek), args.Error(1)
}

func (m *MockTrekRepository) Save(ctx context.Context, trek *trekking.Trek) error {
	args := m.Called(ctx, trek)
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

type MockPOIRepository struct {
	mock.Mock
}

func (m *MockPOIRepository) FindByID(ctx context.Context, id uuid.UUID) (*trekking.POI, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trekking.POI), args.Error(1)
}

func (m *MockPOIRepository) FindByIDForStructure(ctx context.Context, structureID, id uuid.UUID) (*trekking.POI, error) {
	args := m.Called(ctx, structureID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trekking.POI), args.Error(1)
}

func (m *MockPOIRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trekking.POI, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.POI), args.Error(1)
}

func (m *MockPOIRepository) FindAllForStructure(ctx context.Context, structureID uuid.UUID, filter shared.Filter) ([]trekking.POI, error) {
	args := m.Called(ctx, structureID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.POI), args.Error(1)
}

func (m *MockPOIRepository) Save(ctx context.Context, poi *trekking.POI) error {
	args := m.Called(ctx, poi)
	return args.Error(0)
}

func (m *MockPOIRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPOIRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPOIRepository) FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]trekking.POI, error) {
	args := m.Called(ctx, geom, distance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.POI), args.Error(1)
}

func (m *MockPOIRepository) CountByType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).(int64), args.Error(1)
}

type MockPOITypeRepository struct {
	mock.Mock
}

func (m *MockPOITypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*trekking.POIType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trekking.POIType), args.Error(1)
}

func (m *MockPOITypeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trekking.POIType, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.POIType), args.Error(1)
}

func (m *MockPOITypeRepository) Save(ctx context.Context, poiType *trekking.POIType) error {
	args := m.Called(ctx, poiType)
	return args.Error(0)
}

func (m *MockPOITypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPOITypeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

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

func (m *MockThemeRepository) Save(ctx context.Context, theme *common.Theme) error {
	args := m.Called(ctx, theme)
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

type MockTrekNetworkRepository struct {
	mock.Mock
}

func (m *MockTrekNetworkRepository) FindByID(ctx context.Context, id uuid.UUID) (*trekking.TrekNetwork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trekking.TrekNetwork), args.Error(1)
}

func (m *MockTrekNetworkRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trekking.TrekNetwork, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.TrekNetwork), args.Error(1)
}

func (m *MockTrekNetworkRepository) Save(ctx context.Context, network *trekking.TrekNetwork) error {
	args := m.Called(ctx, network)
	return args.Error(0)
}

func (m *MockTrekNetworkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTrekNetworkRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTrekNetworkRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]trekking.TrekNetwork, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.TrekNetwork), args.Error(1)
}

type MockAccessibilityRepository struct {
	mock.Mock
}

func (m *MockAccessibilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*trekking.Accessibility, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trekking.Accessibility), args.Error(1)
}

func (m *MockAccessibilityRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trekking.Accessibility, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.Accessibility), args.Error(1)
}

func (m *MockAccessibilityRepository) Save(ctx context.Context, accessibility *trekking.Accessibility) error {
	args := m.Called(ctx, accessibility)
	return args.Error(0)
}

func (m *MockAccessibilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccessibilityRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccessibilityRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]trekking.Accessibility, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.Accessibility), args.Error(1)
}

type MockWebLinkRepository struct {
	mock.Mock
}

func (m *MockWebLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*trekking.WebLink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trekking.WebLink), args.Error(1)
}

func (m *MockWebLinkRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trekking.WebLink, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.WebLink), args.Error(1)
}

func (m *MockWebLinkRepository) Save(ctx context.Context, link *trekking.WebLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockWebLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWebLinkRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWebLinkRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]trekking.WebLink, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.WebLink), args.Error(1)
}

type MockPracticeRepository struct {
	mock.Mock
}

func (m *MockPracticeRepository) FindByID(ctx context.Context, id uuid.UUID) (*trekking.Practice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trekking.Practice), args.Error(1)
}

func (m *MockPracticeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trekking.Practice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.Practice), args.Error(1)
}

func (m *MockPracticeRepository) Save(ctx context.Context, practice *trekking.Practice) error {
	args := m.Called(ctx, practice)
	return args.Error(0)
}

func (m *MockPracticeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPracticeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPracticeRepository) FindByName(ctx context.Context, name string) (*trekking.Practice, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trekking.Practice), args.Error(1)
}

func (m *MockPracticeRepository) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockDifficultyLevelRepository struct {
	mock.Mock
}

func (m *MockDifficultyLevelRepository) FindByID(ctx context.Context, id uuid.UUID) (*trekking.DifficultyLevel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trekking.DifficultyLevel), args.Error(1)
}

func (m *MockDifficultyLevelRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trekking.DifficultyLevel, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trekking.DifficultyLevel), args.Error(1)
}

func (m *MockDifficultyLevelRepository) Save(ctx context.Context, difficulty *trekking.DifficultyLevel) error {
	args := m.Called(ctx, difficulty)
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

func (m *MockDifficultyLevelRepository) ExistsByRank(ctx context.Context, rank int) (bool, error) {
	args := m.Called(ctx, rank)
	return args.Bool(0), args.Error(1)
}

func (m *MockDifficultyLevelRepository) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockJobScheduler struct {
	mock.Mock
}

func (m *MockJobScheduler) ScheduleJob(structureID *uuid.UUID, jobType scheduler.JobType, since time.Time) error {
	args := m.Called(structureID, jobType, since)
	return args.Error(0)
}
