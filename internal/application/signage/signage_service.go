// Package signage contains the use-case services for signposts, their
// blades and the list exports.
package signage

import (
	"context"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/signage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SignageService manages signposts
type SignageService struct {
	signageRepo signage.SignageRepository
	typeRepo    signage.SignageTypeRepository
	logger      *zap.Logger
}

// NewSignageService creates a new signage service
func NewSignageService(signageRepo signage.SignageRepository, typeRepo signage.SignageTypeRepository, logger *zap.Logger) *SignageService {
	return &SignageService{signageRepo: signageRepo, typeRepo: typeRepo, logger: logger}
}

// Create plants a new signpost in the caller's structure
func (s *SignageService) Create(ctx context.Context, actor authz.Actor, input CreateSignageInput) (*signage.Signage, error) {
	sign, err := signage.NewSignage(actor.StructureID, input.Name, input.Geometry)
	if err != nil {
		return nil, err
	}
	if err := sign.Update(input.Name, input.Code, input.Description); err != nil {
		return nil, err
	}
	if input.TypeID != nil {
		if _, err := s.typeRepo.FindByID(ctx, *input.TypeID); err != nil {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "signage type does not exist")
		}
	}
	sign.SetEquipment(input.TypeID, input.SealingID, input.ManagerID)
	sign.SetCondition(input.ConditionID)
	if err := sign.SetImplantation(input.ImplantationYear, input.PrintedElevation); err != nil {
		return nil, err
	}
	sign.EID = input.EID

	if err := s.signageRepo.Save(ctx, sign); err != nil {
		s.logger.Error("Failed to save signage", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Signage created", zap.String("signage_id", sign.ID.String()))
	return sign, nil
}

// Get returns a signpost with its blades and lines
func (s *SignageService) Get(ctx context.Context, id uuid.UUID) (*signage.Signage, error) {
	return s.signageRepo.FindByIDWithBlades(ctx, id)
}

// List returns a page of signposts
func (s *SignageService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[signage.Signage], error) {
	signs, err := s.signageRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[signage.Signage]{}, err
	}
	total, err := s.signageRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[signage.Signage]{}, err
	}
	return shared.NewPaginated(signs, total, filter.Page, filter.PageSize), nil
}

// Update modifies a signpost
func (s *SignageService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateSignageInput) (*signage.Signage, error) {
	sign, err := s.signageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("signage", sign.StructureID); err != nil {
		return nil, err
	}

	if err := sign.Update(input.Name, input.Code, input.Description); err != nil {
		return nil, err
	}
	if input.Geometry != nil {
		if err := sign.SetGeometry(*input.Geometry); err != nil {
			return nil, err
		}
	}
	if input.TypeID != nil {
		if _, err := s.typeRepo.FindByID(ctx, *input.TypeID); err != nil {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "signage type does not exist")
		}
	}
	sign.SetEquipment(input.TypeID, input.SealingID, input.ManagerID)
	sign.SetCondition(input.ConditionID)
	if err := sign.SetImplantation(input.ImplantationYear, input.PrintedElevation); err != nil {
		return nil, err
	}

	if err := s.signageRepo.Save(ctx, sign); err != nil {
		s.logger.Error("Failed to update signage", zap.Error(err))
		return nil, err
	}
	return sign, nil
}

// Delete soft-deletes a signpost and cascades to its blades
func (s *SignageService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	sign, err := s.signageRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := actor.CheckSameStructure("signage", sign.StructureID); err != nil {
		return err
	}
	return s.signageRepo.DeleteWithBlades(ctx, id)
}

// Publish makes a signpost publicly visible
func (s *SignageService) Publish(ctx context.Context, actor authz.Actor, id uuid.UUID) (*signage.Signage, error) {
	if err := actor.Require("signage:publish"); err != nil {
		return nil, err
	}
	sign, err := s.signageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("signage", sign.StructureID); err != nil {
		return nil, err
	}
	if err := sign.Publish(); err != nil {
		return nil, err
	}
	if err := s.signageRepo.Save(ctx, sign); err != nil {
		return nil, err
	}
	return sign, nil
}

// Unpublish removes a signpost from public portals
func (s *SignageService) Unpublish(ctx context.Context, actor authz.Actor, id uuid.UUID) (*signage.Signage, error) {
	if err := actor.Require("signage:publish"); err != nil {
		return nil, err
	}
	sign, err := s.signageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("signage", sign.StructureID); err != nil {
		return nil, err
	}
	if err := sign.Unpublish(); err != nil {
		return nil, err
	}
	if err := s.signageRepo.Save(ctx, sign); err != nil {
		return nil, err
	}
	return sign, nil
}
