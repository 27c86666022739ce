package tourism

import (
	"context"

	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/tourism"
	"github.com/geotrail/backend/internal/domain/trekking"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) FindByID(ctx context.Context, id uuid.UUID) (*tourism.TouristicContent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tourism.TouristicContent), args.Error(1)
}

func (m *MockContentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tourism.TouristicContent, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tourism.TouristicContent), args.Error(1)
}

func (m *MockContentRepository) Save(ctx context.Context, entity *tourism.TouristicContent) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockContentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentRepository) FindByIDForStructure(ctx context.Context, structureID, id uuid.UUID) (*tourism.TouristicContent, error) {
	args := m.Called(ctx, structureID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tourism.TouristicContent), args.Error(1)
}

func (m *MockContentRepository) FindAllForStructure(ctx context.Context, structureID uuid.UUID, filter shared.Filter) ([]tourism.TouristicContent, error) {
	args := m.Called(ctx, structureID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tourism.TouristicContent), args.Error(1)
}

func (m *MockContentRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]tourism.TouristicContent, error) {
	args := m.Called(ctx, categoryID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tourism.TouristicContent), args.Error(1)
}

func (m *MockContentRepository) FindApproved(ctx context.Context, filter shared.Filter) ([]tourism.TouristicContent, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tourism.TouristicContent), args.Error(1)
}

func (m *MockContentRepository) FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]tourism.TouristicContent, error) {
	args := m.Called(ctx, geom, distance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tourism.TouristicContent), args.Error(1)
}

func (m *MockContentRepository) ReplaceThemes(ctx context.Context, content *tourism.TouristicContent, themes []common.Theme) error {
	args := m.Called(ctx, content, themes)
	return args.Error(0)
}

func (m *MockContentRepository) ReplaceTypes(ctx context.Context, content *tourism.TouristicContent, list int, types []tourism.TouristicContentType) error {
	args := m.Called(ctx, content, list, types)
	return args.Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*tourism.TouristicContentCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tourism.TouristicContentCategory), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tourism.TouristicContentCategory, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tourism.TouristicContentCategory), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, entity *tourism.TouristicContentCategory) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockContentTypeRepository struct {
	mock.Mock
}

func (m *MockContentTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*tourism.TouristicContentType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tourism.TouristicContentType), args.Error(1)
}

func (m *MockContentTypeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tourism.TouristicContentType, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tourism.TouristicContentType), args.Error(1)
}

func (m *MockContentTypeRepository) Save(ctx context.Context, entity *tourism.TouristicContentType) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockContentTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentTypeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentTypeRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, list int) ([]tourism.TouristicContentType, error) {
	args := m.Called(ctx, categoryID, list)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tourism.TouristicContentType), args.Error(1)
}

func (m *MockContentTypeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]tourism.TouristicContentType, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tourism.TouristicContentType), args.Error(1)
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

type MockInformationDeskRepository struct {
	mock.Mock
}

func (m *MockInformationDeskRepository) FindByID(ctx context.Context, id uuid.UUID) (*tourism.InformationDesk, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tourism.InformationDesk), args.Error(1)
}

func (m *MockInformationDeskRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tourism.InformationDesk, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tourism.InformationDesk), args.Error(1)
}

func (m *MockInformationDeskRepository) Save(ctx context.Context, entity *tourism.InformationDesk) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockInformationDeskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInformationDeskRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInformationDeskRepository) FindByType(ctx context.Context, typeID uuid.UUID) ([]tourism.InformationDesk, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tourism.InformationDesk), args.Error(1)
}

type MockInformationDeskTypeRepository struct {
	mock.Mock
}

func (m *MockInformationDeskTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*tourism.InformationDeskType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tourism.InformationDeskType), args.Error(1)
}

func (m *MockInformationDeskTypeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]tourism.InformationDeskType, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tourism.InformationDeskType), args.Error(1)
}

func (m *MockInformationDeskTypeRepository) Save(ctx context.Context, entity *tourism.InformationDeskType) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockInformationDeskTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInformationDeskTypeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
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
