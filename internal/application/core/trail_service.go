package core

import (
	"context"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/core"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TrailService manages named trails over the path network
type TrailService struct {
	trailRepo    core.TrailRepository
	categoryRepo core.TrailCategoryRepository
	logger       *zap.Logger
}

// NewTrailService creates a new trail service
func NewTrailService(trailRepo core.TrailRepository, categoryRepo core.TrailCategoryRepository, logger *zap.Logger) *TrailService {
	return &TrailService{trailRepo: trailRepo, categoryRepo: categoryRepo, logger: logger}
}

// Create registers a new trail in the caller's structure
func (s *TrailService) Create(ctx context.Context, actor authz.Actor, input CreateTrailInput) (*core.Trail, error) {
	trail, err := core.NewTrail(actor.StructureID, input.Name, input.Geometry)
	if err != nil {
		return nil, err
	}
	trail.Departure = input.Departure
	trail.Arrival = input.Arrival
	trail.Comments = input.Comments

	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "trail category does not exist")
		}
		trail.SetCategory(input.CategoryID)
	}

	if err := s.trailRepo.Save(ctx, trail); err != nil {
		s.logger.Error("Failed to save trail", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Trail created", zap.String("trail_id", trail.ID.String()))
	return trail, nil
}

// Get returns a trail by ID
func (s *TrailService) Get(ctx context.Context, id uuid.UUID) (*core.Trail, error) {
	return s.trailRepo.FindByID(ctx, id)
}

// List returns a page of trails
func (s *TrailService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[core.Trail], error) {
	trails, err := s.trailRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[core.Trail]{}, err
	}
	total, err := s.trailRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[core.Trail]{}, err
	}
	return shared.NewPaginated(trails, total, filter.Page, filter.PageSize), nil
}

// ListByCategory returns trails in a category
func (s *TrailService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]core.Trail, error) {
	return s.trailRepo.FindByCategory(ctx, categoryID)
}

// Update modifies a trail
func (s *TrailService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateTrailInput) (*core.Trail, error) {
	trail, err := s.trailRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("trail", trail.StructureID); err != nil {
		return nil, err
	}

	if err := trail.Update(input.Name, input.Departure, input.Arrival, input.Comments); err != nil {
		return nil, err
	}
	if input.Geometry != nil {
		if err := trail.SetGeometry(*input.Geometry); err != nil {
			return nil, err
		}
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "trail category does not exist")
		}
	}
	trail.SetCategory(input.CategoryID)

	if err := s.trailRepo.Save(ctx, trail); err != nil {
		s.logger.Error("Failed to update trail", zap.Error(err))
		return nil, err
	}
	return trail, nil
}

// Delete soft-deletes a trail
func (s *TrailService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	trail, err := s.trailRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := actor.CheckSameStructure("trail", trail.StructureID); err != nil {
		return err
	}
	return s.trailRepo.Delete(ctx, id)
}
