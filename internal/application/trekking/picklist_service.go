package trekking

import (
	"context"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/trekking"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PicklistService manages the reference lists attached to treks, POIs
// and service points.
type PicklistService struct {
	practiceRepo    trekking.PracticeRepository
	difficultyRepo  trekking.DifficultyLevelRepository
	routeRepo       trekking.RouteRepository
	poiTypeRepo     trekking.POITypeRepository
	serviceTypeRepo trekking.ServiceTypeRepository
	poiRepo         trekking.POIRepository
	serviceRepo     trekking.ServiceRepository
	logger          *zap.Logger
}

// NewPicklistService creates a new trekking picklist service
func NewPicklistService(
	practiceRepo trekking.PracticeRepository,
	difficultyRepo trekking.DifficultyLevelRepository,
	routeRepo trekking.RouteRepository,
	poiTypeRepo trekking.POITypeRepository,
	serviceTypeRepo trekking.ServiceTypeRepository,
	poiRepo trekking.POIRepository,
	serviceRepo trekking.ServiceRepository,
	logger *zap.Logger,
) *PicklistService {
	return &PicklistService{
		practiceRepo:    practiceRepo,
		difficultyRepo:  difficultyRepo,
		routeRepo:       routeRepo,
		poiTypeRepo:     poiTypeRepo,
		serviceTypeRepo: serviceTypeRepo,
		poiRepo:         poiRepo,
		serviceRepo:     serviceRepo,
		logger:          logger,
	}
}

// CreatePractice adds an outdoor practice
func (s *PicklistService) CreatePractice(ctx context.Context, name, pictogram string, rank int) (*trekking.Practice, error) {
	if existing, err := s.practiceRepo.FindByName(ctx, name); err == nil && existing != nil {
		return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "a practice with this name already exists")
	}
	practice, err := trekking.NewPractice(name, pictogram, rank)
	if err != nil {
		return nil, err
	}
	if err := s.practiceRepo.Save(ctx, practice); err != nil {
		return nil, err
	}
	return practice, nil
}

// ListPractices returns all practices
func (s *PicklistService) ListPractices(ctx context.Context, filter shared.Filter) ([]trekking.Practice, error) {
	return s.practiceRepo.FindAll(ctx, filter)
}

// UpdatePractice changes a practice
func (s *PicklistService) UpdatePractice(ctx context.Context, id uuid.UUID, name, pictogram string, rank int) (*trekking.Practice, error) {
	practice, err := s.practiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := practice.Update(name, pictogram, rank); err != nil {
		return nil, err
	}
	if err := s.practiceRepo.Save(ctx, practice); err != nil {
		return nil, err
	}
	return practice, nil
}

// DeletePractice removes a practice unless a trek still references it
func (s *PicklistService) DeletePractice(ctx context.Context, id uuid.UUID) error {
	inUse, err := s.practiceRepo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return shared.NewDomainError(shared.ErrReferenceInUse.Code, "practice is still assigned to treks")
	}
	return s.practiceRepo.Delete(ctx, id)
}

// CreateDifficulty adds a difficulty level. Ranks are unique.
func (s *PicklistService) CreateDifficulty(ctx context.Context, name, pictogram string, rank int) (*trekking.DifficultyLevel, error) {
	exists, err := s.difficultyRepo.ExistsByRank(ctx, rank)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "a difficulty with this rank already exists")
	}
	difficulty, err := trekking.NewDifficultyLevel(name, pictogram, rank)
	if err != nil {
		return nil, err
	}
	if err := s.difficultyRepo.Save(ctx, difficulty); err != nil {
		return nil, err
	}
	return difficulty, nil
}

// ListDifficulties returns all difficulty levels
func (s *PicklistService) ListDifficulties(ctx context.Context, filter shared.Filter) ([]trekking.DifficultyLevel, error) {
	return s.difficultyRepo.FindAll(ctx, filter)
}

// DeleteDifficulty removes a difficulty level unless a trek still uses it
func (s *PicklistService) DeleteDifficulty(ctx context.Context, id uuid.UUID) error {
	inUse, err := s.difficultyRepo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return shared.NewDomainError(shared.ErrReferenceInUse.Code, "difficulty is still assigned to treks")
	}
	return s.difficultyRepo.Delete(ctx, id)
}

// CreateRoute adds a route shape
func (s *PicklistService) CreateRoute(ctx context.Context, name, pictogram string) (*trekking.Route, error) {
	route, err := trekking.NewRoute(name, pictogram)
	if err != nil {
		return nil, err
	}
	if err := s.routeRepo.Save(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

// ListRoutes returns all route shapes
func (s *PicklistService) ListRoutes(ctx context.Context, filter shared.Filter) ([]trekking.Route, error) {
	return s.routeRepo.FindAll(ctx, filter)
}

// DeleteRoute removes a route shape
func (s *PicklistService) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	return s.routeRepo.Delete(ctx, id)
}

// CreatePOIType adds a POI type
func (s *PicklistService) CreatePOIType(ctx context.Context, label, pictogram string) (*trekking.POIType, error) {
	poiType, err := trekking.NewPOIType(label, pictogram)
	if err != nil {
		return nil, err
	}
	if err := s.poiTypeRepo.Save(ctx, poiType); err != nil {
		return nil, err
	}
	return poiType, nil
}

// ListPOITypes returns all POI types
func (s *PicklistService) ListPOITypes(ctx context.Context, filter shared.Filter) ([]trekking.POIType, error) {
	return s.poiTypeRepo.FindAll(ctx, filter)
}

// DeletePOIType removes a POI type unless POIs still use it
func (s *PicklistService) DeletePOIType(ctx context.Context, id uuid.UUID) error {
	count, err := s.poiRepo.CountByType(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError(shared.ErrReferenceInUse.Code, "poi type is still in use")
	}
	return s.poiTypeRepo.Delete(ctx, id)
}

// CreateServiceType adds a service type with its valid practices
func (s *PicklistService) CreateServiceType(ctx context.Context, name, pictogram string, practiceIDs []uuid.UUID) (*trekking.ServiceType, error) {
	serviceType, err := trekking.NewServiceType(name, pictogram)
	if err != nil {
		return nil, err
	}
	if err := s.serviceTypeRepo.Save(ctx, serviceType); err != nil {
		return nil, err
	}
	if practiceIDs != nil {
		practices, err := s.findPractices(ctx, practiceIDs)
		if err != nil {
			return nil, err
		}
		if err := s.serviceTypeRepo.ReplacePractices(ctx, serviceType, practices); err != nil {
			return nil, err
		}
		serviceType.Practices = practices
	}
	return serviceType, nil
}

// ListServiceTypes returns all service types
func (s *PicklistService) ListServiceTypes(ctx context.Context, filter shared.Filter) ([]trekking.ServiceType, error) {
	return s.serviceTypeRepo.FindAll(ctx, filter)
}

// DeleteServiceType removes a service type unless services still use it
func (s *PicklistService) DeleteServiceType(ctx context.Context, id uuid.UUID) error {
	count, err := s.serviceRepo.CountByType(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError(shared.ErrReferenceInUse.Code, "service type is still in use")
	}
	return s.serviceTypeRepo.Delete(ctx, id)
}

func (s *PicklistService) findPractices(ctx context.Context, ids []uuid.UUID) ([]trekking.Practice, error) {
	practices := make([]trekking.Practice, 0, len(ids))
	for _, id := range ids {
		practice, err := s.practiceRepo.FindByID(ctx, id)
		if err != nil {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown practice in assignment")
		}
		practices = append(practices, *practice)
	}
	return practices, nil
}
