package trekking

import (
	"context"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/trekking"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// poiNearTrekDistance is the corridor width, in meters, used when
// listing the POIs of a trek.
const poiNearTrekDistance = 500.0

// POIService manages points of interest
type POIService struct {
	poiRepo  trekking.POIRepository
	typeRepo trekking.POITypeRepository
	trekRepo trekking.TrekRepository
	logger   *zap.Logger
}

// NewPOIService creates a new POI service
func NewPOIService(
	poiRepo trekking.POIRepository,
	typeRepo trekking.POITypeRepository,
	trekRepo trekking.TrekRepository,
	logger *zap.Logger,
) *POIService {
	return &POIService{poiRepo: poiRepo, typeRepo: typeRepo, trekRepo: trekRepo, logger: logger}
}

// Create registers a new POI in the caller's structure
func (s *POIService) Create(ctx context.Context, actor authz.Actor, input CreatePOIInput) (*trekking.POI, error) {
	if _, err := s.typeRepo.FindByID(ctx, input.TypeID); err != nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "poi type does not exist")
	}
	poi, err := trekking.NewPOI(actor.StructureID, input.Name, input.TypeID, input.Geometry)
	if err != nil {
		return nil, err
	}
	poi.Description = input.Description
	poi.EID = input.EID

	if err := s.poiRepo.Save(ctx, poi); err != nil {
		s.logger.Error("Failed to save poi", zap.Error(err))
		return nil, err
	}
	return poi, nil
}

// Get returns a POI by ID
func (s *POIService) Get(ctx context.Context, id uuid.UUID) (*trekking.POI, error) {
	return s.poiRepo.FindByID(ctx, id)
}

// List returns a page of POIs
func (s *POIService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[trekking.POI], error) {
	pois, err := s.poiRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[trekking.POI]{}, err
	}
	total, err := s.poiRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[trekking.POI]{}, err
	}
	return shared.NewPaginated(pois, total, filter.Page, filter.PageSize), nil
}

// ListForTrek returns the POIs found along a trek's itinerary
func (s *POIService) ListForTrek(ctx context.Context, trekID uuid.UUID) ([]trekking.POI, error) {
	trek, err := s.trekRepo.FindByID(ctx, trekID)
	if err != nil {
		return nil, err
	}
	return s.poiRepo.FindNear(ctx, trek.Geometry, poiNearTrekDistance)
}

// Update modifies a POI
func (s *POIService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdatePOIInput) (*trekking.POI, error) {
	poi, err := s.poiRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("poi", poi.StructureID); err != nil {
		return nil, err
	}
	if _, err := s.typeRepo.FindByID(ctx, input.TypeID); err != nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "poi type does not exist")
	}
	if err := poi.Update(input.Name, input.Description, input.TypeID); err != nil {
		return nil, err
	}
	if input.Geometry != nil {
		if err := poi.SetGeometry(*input.Geometry); err != nil {
			return nil, err
		}
	}
	if err := s.poiRepo.Save(ctx, poi); err != nil {
		s.logger.Error("Failed to update poi", zap.Error(err))
		return nil, err
	}
	return poi, nil
}

// Delete soft-deletes a POI
func (s *POIService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	poi, err := s.poiRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := actor.CheckSameStructure("poi", poi.StructureID); err != nil {
		return err
	}
	return s.poiRepo.Delete(ctx, id)
}

// Publish makes a POI publicly visible
func (s *POIService) Publish(ctx context.Context, actor authz.Actor, id uuid.UUID) (*trekking.POI, error) {
	if err := actor.Require("trek:publish"); err != nil {
		return nil, err
	}
	poi, err := s.poiRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("poi", poi.StructureID); err != nil {
		return nil, err
	}
	if err := poi.Publish(); err != nil {
		return nil, err
	}
	if err := s.poiRepo.Save(ctx, poi); err != nil {
		return nil, err
	}
	return poi, nil
}

// Unpublish removes a POI from public portals
func (s *POIService) Unpublish(ctx context.Context, actor authz.Actor, id uuid.UUID) (*trekking.POI, error) {
	if err := actor.Require("trek:publish"); err != nil {
		return nil, err
	}
	poi, err := s.poiRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("poi", poi.StructureID); err != nil {
		return nil, err
	}
	if err := poi.Unpublish(); err != nil {
		return nil, err
	}
	if err := s.poiRepo.Save(ctx, poi); err != nil {
		return nil, err
	}
	return poi, nil
}
