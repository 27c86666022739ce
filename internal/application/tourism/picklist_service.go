package tourism

import (
	"context"
	"strings"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/tourism"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PicklistService manages content categories, their type lists and
// information desk types.
type PicklistService struct {
	categoryRepo tourism.CategoryRepository
	typeRepo     tourism.ContentTypeRepository
	deskTypeRepo tourism.InformationDeskTypeRepository
	logger       *zap.Logger
}

// NewPicklistService creates a new picklist service
func NewPicklistService(
	categoryRepo tourism.CategoryRepository,
	typeRepo tourism.ContentTypeRepository,
	deskTypeRepo tourism.InformationDeskTypeRepository,
	logger *zap.Logger,
) *PicklistService {
	return &PicklistService{
		categoryRepo: categoryRepo,
		typeRepo:     typeRepo,
		deskTypeRepo: deskTypeRepo,
		logger:       logger,
	}
}

// CreateCategory adds a content category with its two type list labels
func (s *PicklistService) CreateCategory(ctx context.Context, label, typeLabel1, typeLabel2 string) (*tourism.TouristicContentCategory, error) {
	category, err := tourism.NewTouristicContentCategory(label, typeLabel1, typeLabel2)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns all content categories
func (s *PicklistService) ListCategories(ctx context.Context, filter shared.Filter) ([]tourism.TouristicContentCategory, error) {
	return s.categoryRepo.FindAll(ctx, filter)
}

// DeleteCategory removes a category unless contents still reference it
func (s *PicklistService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}
	inUse, err := s.categoryRepo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return shared.NewDomainError(shared.ErrReferenceInUse.Code, "category is still assigned to contents")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// CreateType adds a type value to a category's list 1 or 2
func (s *PicklistService) CreateType(ctx context.Context, label string, categoryID uuid.UUID, list int) (*tourism.TouristicContentType, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "type category does not exist")
	}
	typ, err := tourism.NewTouristicContentType(label, categoryID, list)
	if err != nil {
		return nil, err
	}
	if err := s.typeRepo.Save(ctx, typ); err != nil {
		return nil, err
	}
	return typ, nil
}

// ListTypes returns the type values of one category list
func (s *PicklistService) ListTypes(ctx context.Context, categoryID uuid.UUID, list int) ([]tourism.TouristicContentType, error) {
	if list != 1 && list != 2 {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "type list must be 1 or 2")
	}
	return s.typeRepo.FindByCategory(ctx, categoryID, list)
}

// DeleteType removes a type value
func (s *PicklistService) DeleteType(ctx context.Context, id uuid.UUID) error {
	if _, err := s.typeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.typeRepo.Delete(ctx, id)
}

// CreateDeskType adds an information desk type
func (s *PicklistService) CreateDeskType(ctx context.Context, label, pictogram string) (*tourism.InformationDeskType, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "desk type label is required")
	}
	typ := &tourism.InformationDeskType{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Label:             label,
		Pictogram:         pictogram,
	}
	if err := s.deskTypeRepo.Save(ctx, typ); err != nil {
		return nil, err
	}
	return typ, nil
}

// ListDeskTypes returns all desk types
func (s *PicklistService) ListDeskTypes(ctx context.Context, filter shared.Filter) ([]tourism.InformationDeskType, error) {
	return s.deskTypeRepo.FindAll(ctx, filter)
}

// DeleteDeskType removes a desk type
func (s *PicklistService) DeleteDeskType(ctx context.Context, id uuid.UUID) error {
	if _, err := s.deskTypeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.deskTypeRepo.Delete(ctx, id)
}
