// Package infrastructure contains the use-case services for built works
// on the trail network.
package infrastructure

import (
	"context"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/infrastructure"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service manages infrastructures
type Service struct {
	repo     infrastructure.Repository
	typeRepo infrastructure.TypeRepository
	logger   *zap.Logger
}

// NewService creates a new infrastructure service
func NewService(repo infrastructure.Repository, typeRepo infrastructure.TypeRepository, logger *zap.Logger) *Service {
	return &Service{repo: repo, typeRepo: typeRepo, logger: logger}
}

// Create records a built work in the caller's structure
func (s *Service) Create(ctx context.Context, actor authz.Actor, input CreateInput) (*infrastructure.Infrastructure, error) {
	if _, err := s.typeRepo.FindByID(ctx, input.TypeID); err != nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "infrastructure type does not exist")
	}
	infra, err := infrastructure.NewInfrastructure(actor.StructureID, input.Name, input.TypeID, input.Geometry)
	if err != nil {
		return nil, err
	}
	infra.Description = input.Description
	infra.AccessibilityNote = input.AccessibilityNote
	infra.EID = input.EID
	infra.SetConditions(input.ConditionID, input.MaintenanceDifficultyID, input.UsageDifficultyID)
	if err := infra.SetImplantation(input.ImplantationYear); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, infra); err != nil {
		s.logger.Error("Failed to save infrastructure", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Infrastructure created", zap.String("infrastructure_id", infra.ID.String()))
	return infra, nil
}

// Get returns an infrastructure
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*infrastructure.Infrastructure, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of infrastructures
func (s *Service) List(ctx context.Context, filter shared.Filter) (shared.Paginated[infrastructure.Infrastructure], error) {
	items, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[infrastructure.Infrastructure]{}, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[infrastructure.Infrastructure]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// ListByKind returns infrastructures of one family
func (s *Service) ListByKind(ctx context.Context, kind infrastructure.Kind, filter shared.Filter) ([]infrastructure.Infrastructure, error) {
	if !kind.Valid() {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown infrastructure kind")
	}
	return s.repo.FindByKind(ctx, kind, filter)
}

// ListNear returns infrastructures within distance of a geometry
func (s *Service) ListNear(ctx context.Context, geom shared.Geometry, distance float64) ([]infrastructure.Infrastructure, error) {
	if geom.IsZero() {
		return nil, shared.NewDomainError(shared.ErrInvalidGeometry.Code, "reference geometry is required")
	}
	if distance <= 0 {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "distance must be positive")
	}
	return s.repo.FindNear(ctx, geom, distance)
}

// Update modifies an infrastructure
func (s *Service) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateInput) (*infrastructure.Infrastructure, error) {
	infra, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("infrastructure", infra.StructureID); err != nil {
		return nil, err
	}

	if input.TypeID != infra.TypeID {
		if _, err := s.typeRepo.FindByID(ctx, input.TypeID); err != nil {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "infrastructure type does not exist")
		}
	}
	if err := infra.Update(input.Name, input.Description, input.TypeID); err != nil {
		return nil, err
	}
	if input.Geometry != nil {
		if err := infra.SetGeometry(*input.Geometry); err != nil {
			return nil, err
		}
	}
	infra.AccessibilityNote = input.AccessibilityNote
	infra.SetConditions(input.ConditionID, input.MaintenanceDifficultyID, input.UsageDifficultyID)
	if err := infra.SetImplantation(input.ImplantationYear); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, infra); err != nil {
		s.logger.Error("Failed to update infrastructure", zap.Error(err))
		return nil, err
	}
	return infra, nil
}

// Delete soft-deletes an infrastructure
func (s *Service) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	infra, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := actor.CheckSameStructure("infrastructure", infra.StructureID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Publish makes an infrastructure publicly visible
func (s *Service) Publish(ctx context.Context, actor authz.Actor, id uuid.UUID) (*infrastructure.Infrastructure, error) {
	if err := actor.Require("infrastructure:publish"); err != nil {
		return nil, err
	}
	infra, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("infrastructure", infra.StructureID); err != nil {
		return nil, err
	}
	if err := infra.Publish(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, infra); err != nil {
		return nil, err
	}
	return infra, nil
}

// Unpublish removes an infrastructure from public portals
func (s *Service) Unpublish(ctx context.Context, actor authz.Actor, id uuid.UUID) (*infrastructure.Infrastructure, error) {
	if err := actor.Require("infrastructure:publish"); err != nil {
		return nil, err
	}
	infra, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("infrastructure", infra.StructureID); err != nil {
		return nil, err
	}
	if err := infra.Unpublish(); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, infra); err != nil {
		return nil, err
	}
	return infra, nil
}

// TypeService manages infrastructure type and difficulty picklists
type TypeService struct {
	typeRepo       infrastructure.TypeRepository
	difficultyRepo infrastructure.DifficultyLevelRepository
	repo           infrastructure.Repository
	logger         *zap.Logger
}

// NewTypeService creates a new type service
func NewTypeService(
	typeRepo infrastructure.TypeRepository,
	difficultyRepo infrastructure.DifficultyLevelRepository,
	repo infrastructure.Repository,
	logger *zap.Logger,
) *TypeService {
	return &TypeService{typeRepo: typeRepo, difficultyRepo: difficultyRepo, repo: repo, logger: logger}
}

// CreateType adds a typed label within a kind
func (s *TypeService) CreateType(ctx context.Context, label string, kind infrastructure.Kind, structureID *uuid.UUID) (*infrastructure.InfrastructureType, error) {
	typ, err := infrastructure.NewInfrastructureType(label, kind, structureID)
	if err != nil {
		return nil, err
	}
	if err := s.typeRepo.Save(ctx, typ); err != nil {
		return nil, err
	}
	return typ, nil
}

// ListTypes returns types of one kind
func (s *TypeService) ListTypes(ctx context.Context, kind infrastructure.Kind) ([]infrastructure.InfrastructureType, error) {
	if !kind.Valid() {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown infrastructure kind")
	}
	return s.typeRepo.FindByKind(ctx, kind)
}

// DeleteType removes a type unless infrastructures still reference it
func (s *TypeService) DeleteType(ctx context.Context, id uuid.UUID) error {
	if _, err := s.typeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	count, err := s.repo.CountByType(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError(shared.ErrReferenceInUse.Code, "type is still assigned to infrastructures")
	}
	return s.typeRepo.Delete(ctx, id)
}

// CreateDifficulty adds a difficulty label
func (s *TypeService) CreateDifficulty(ctx context.Context, label string, structureID *uuid.UUID) (*infrastructure.DifficultyLevel, error) {
	level, err := infrastructure.NewDifficultyLevel(label, structureID)
	if err != nil {
		return nil, err
	}
	if err := s.difficultyRepo.Save(ctx, level); err != nil {
		return nil, err
	}
	return level, nil
}

// ListDifficulties returns all difficulty labels
func (s *TypeService) ListDifficulties(ctx context.Context, filter shared.Filter) ([]infrastructure.DifficultyLevel, error) {
	return s.difficultyRepo.FindAll(ctx, filter)
}

// DeleteDifficulty removes a difficulty label
func (s *TypeService) DeleteDifficulty(ctx context.Context, id uuid.UUID) error {
	if _, err := s.difficultyRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.difficultyRepo.Delete(ctx, id)
}
