package trekking

import (
	"context"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/trekking"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServiceService manages service points along the network
type ServiceService struct {
	serviceRepo trekking.ServiceRepository
	typeRepo    trekking.ServiceTypeRepository
	trekRepo    trekking.TrekRepository
	logger      *zap.Logger
}

// NewServiceService creates a new service point service
func NewServiceService(
	serviceRepo trekking.ServiceRepository,
	typeRepo trekking.ServiceTypeRepository,
	trekRepo trekking.TrekRepository,
	logger *zap.Logger,
) *ServiceService {
	return &ServiceService{serviceRepo: serviceRepo, typeRepo: typeRepo, trekRepo: trekRepo, logger: logger}
}

// Create registers a new service point in the caller's structure
func (s *ServiceService) Create(ctx context.Context, actor authz.Actor, input CreateServiceInput) (*trekking.Service, error) {
	if _, err := s.typeRepo.FindByID(ctx, input.TypeID); err != nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "service type does not exist")
	}
	service, err := trekking.NewService(actor.StructureID, input.TypeID, input.Geometry)
	if err != nil {
		return nil, err
	}
	service.EID = input.EID

	if err := s.serviceRepo.Save(ctx, service); err != nil {
		s.logger.Error("Failed to save service", zap.Error(err))
		return nil, err
	}
	return service, nil
}

// Get returns a service point by ID
func (s *ServiceService) Get(ctx context.Context, id uuid.UUID) (*trekking.Service, error) {
	return s.serviceRepo.FindByID(ctx, id)
}

// List returns a page of service points
func (s *ServiceService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[trekking.Service], error) {
	services, err := s.serviceRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[trekking.Service]{}, err
	}
	total, err := s.serviceRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[trekking.Service]{}, err
	}
	return shared.NewPaginated(services, total, filter.Page, filter.PageSize), nil
}

// ListForTrek returns the service points found along a trek's itinerary
func (s *ServiceService) ListForTrek(ctx context.Context, trekID uuid.UUID) ([]trekking.Service, error) {
	trek, err := s.trekRepo.FindByID(ctx, trekID)
	if err != nil {
		return nil, err
	}
	return s.serviceRepo.FindNear(ctx, trek.Geometry, poiNearTrekDistance)
}

// Update modifies a service point
func (s *ServiceService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateServiceInput) (*trekking.Service, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("service", service.StructureID); err != nil {
		return nil, err
	}
	if _, err := s.typeRepo.FindByID(ctx, input.TypeID); err != nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "service type does not exist")
	}
	if err := service.SetType(input.TypeID); err != nil {
		return nil, err
	}
	if input.Geometry != nil {
		if err := service.SetGeometry(*input.Geometry); err != nil {
			return nil, err
		}
	}
	if err := s.serviceRepo.Save(ctx, service); err != nil {
		s.logger.Error("Failed to update service", zap.Error(err))
		return nil, err
	}
	return service, nil
}

// Delete soft-deletes a service point
func (s *ServiceService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := actor.CheckSameStructure("service", service.StructureID); err != nil {
		return err
	}
	return s.serviceRepo.Delete(ctx, id)
}
