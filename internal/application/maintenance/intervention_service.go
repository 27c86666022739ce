// Package maintenance contains the use-case services for field
// interventions.
package maintenance

import (
	"context"
	"time"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/infrastructure"
	"github.com/geotrail/backend/internal/domain/maintenance"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/signage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateInput carries the fields for planning an intervention
type CreateInput struct {
	Name           string
	TargetKind     maintenance.TargetKind
	TargetID       uuid.UUID
	Description    string
	Width          *float64
	Height         *float64
	MaterialCost   decimal.Decimal
	HeliportCost   decimal.Decimal
	ContractorCost decimal.Decimal
	ManDays        decimal.Decimal
}

// UpdateInput carries the fields for updating an intervention
type UpdateInput struct {
	Name           string
	Description    string
	Width          *float64
	Height         *float64
	MaterialCost   decimal.Decimal
	HeliportCost   decimal.Decimal
	ContractorCost decimal.Decimal
	ManDays        decimal.Decimal
}

// InterventionService manages interventions on signage, blades and
// infrastructures.
type InterventionService struct {
	interventionRepo maintenance.InterventionRepository
	signageRepo      signage.SignageRepository
	bladeRepo        signage.BladeRepository
	infraRepo        infrastructure.Repository
	logger           *zap.Logger
}

// NewInterventionService creates a new intervention service
func NewInterventionService(
	interventionRepo maintenance.InterventionRepository,
	signageRepo signage.SignageRepository,
	bladeRepo signage.BladeRepository,
	infraRepo infrastructure.Repository,
	logger *zap.Logger,
) *InterventionService {
	return &InterventionService{
		interventionRepo: interventionRepo,
		signageRepo:      signageRepo,
		bladeRepo:        bladeRepo,
		infraRepo:        infraRepo,
		logger:           logger,
	}
}

// Create plans an intervention on an existing target object
func (s *InterventionService) Create(ctx context.Context, actor authz.Actor, input CreateInput) (*maintenance.Intervention, error) {
	if err := s.checkTarget(ctx, input.TargetKind, input.TargetID); err != nil {
		return nil, err
	}
	intervention, err := maintenance.NewIntervention(actor.StructureID, input.Name, input.TargetKind, input.TargetID)
	if err != nil {
		return nil, err
	}
	intervention.Description = input.Description
	if err := intervention.SetDimensions(input.Width, input.Height); err != nil {
		return nil, err
	}
	if err := intervention.SetCosts(input.MaterialCost, input.HeliportCost, input.ContractorCost, input.ManDays); err != nil {
		return nil, err
	}

	if err := s.interventionRepo.Save(ctx, intervention); err != nil {
		s.logger.Error("Failed to save intervention", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Intervention planned",
		zap.String("intervention_id", intervention.ID.String()),
		zap.String("target_kind", string(input.TargetKind)),
		zap.String("target_id", input.TargetID.String()))
	return intervention, nil
}

// Get returns an intervention
func (s *InterventionService) Get(ctx context.Context, id uuid.UUID) (*maintenance.Intervention, error) {
	return s.interventionRepo.FindByID(ctx, id)
}

// List returns a page of interventions
func (s *InterventionService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[maintenance.Intervention], error) {
	items, err := s.interventionRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[maintenance.Intervention]{}, err
	}
	total, err := s.interventionRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[maintenance.Intervention]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// ListForTarget returns the interventions performed on one object
func (s *InterventionService) ListForTarget(ctx context.Context, kind maintenance.TargetKind, targetID uuid.UUID) ([]maintenance.Intervention, error) {
	if !kind.Valid() {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown intervention target kind")
	}
	return s.interventionRepo.FindByTarget(ctx, kind, targetID)
}

// SummarizeCosts aggregates costs over one object's interventions
func (s *InterventionService) SummarizeCosts(ctx context.Context, kind maintenance.TargetKind, targetID uuid.UUID) (maintenance.CostSummary, error) {
	if !kind.Valid() {
		return maintenance.CostSummary{}, shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown intervention target kind")
	}
	return s.interventionRepo.SummarizeCosts(ctx, kind, targetID)
}

// Update modifies an intervention
func (s *InterventionService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateInput) (*maintenance.Intervention, error) {
	intervention, err := s.interventionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("intervention", intervention.StructureID); err != nil {
		return nil, err
	}

	if err := intervention.Update(input.Name, input.Description); err != nil {
		return nil, err
	}
	if err := intervention.SetDimensions(input.Width, input.Height); err != nil {
		return nil, err
	}
	if err := intervention.SetCosts(input.MaterialCost, input.HeliportCost, input.ContractorCost, input.ManDays); err != nil {
		return nil, err
	}

	if err := s.interventionRepo.Save(ctx, intervention); err != nil {
		s.logger.Error("Failed to update intervention", zap.Error(err))
		return nil, err
	}
	return intervention, nil
}

// Start moves an intervention to ONGOING
func (s *InterventionService) Start(ctx context.Context, actor authz.Actor, id uuid.UUID, date time.Time) (*maintenance.Intervention, error) {
	return s.transition(ctx, actor, id, func(iv *maintenance.Intervention) error {
		return iv.Start(date)
	})
}

// Finish moves an intervention to DONE
func (s *InterventionService) Finish(ctx context.Context, actor authz.Actor, id uuid.UUID, date time.Time) (*maintenance.Intervention, error) {
	return s.transition(ctx, actor, id, func(iv *maintenance.Intervention) error {
		return iv.Finish(date)
	})
}

// Delete soft-deletes an intervention
func (s *InterventionService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	intervention, err := s.interventionRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := actor.CheckSameStructure("intervention", intervention.StructureID); err != nil {
		return err
	}
	return s.interventionRepo.Delete(ctx, id)
}

func (s *InterventionService) transition(ctx context.Context, actor authz.Actor, id uuid.UUID, step func(*maintenance.Intervention) error) (*maintenance.Intervention, error) {
	intervention, err := s.interventionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("intervention", intervention.StructureID); err != nil {
		return nil, err
	}
	if err := step(intervention); err != nil {
		return nil, err
	}
	if err := s.interventionRepo.Save(ctx, intervention); err != nil {
		return nil, err
	}
	return intervention, nil
}

// checkTarget verifies that the target object exists and is not deleted.
// Repositories exclude soft-deleted rows from lookups.
func (s *InterventionService) checkTarget(ctx context.Context, kind maintenance.TargetKind, targetID uuid.UUID) error {
	if !kind.Valid() {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown intervention target kind")
	}
	var err error
	switch kind {
	case maintenance.TargetSignage:
		_, err = s.signageRepo.FindByID(ctx, targetID)
	case maintenance.TargetBlade:
		_, err = s.bladeRepo.FindByID(ctx, targetID)
	case maintenance.TargetInfrastructure:
		_, err = s.infraRepo.FindByID(ctx, targetID)
	}
	if err != nil {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "intervention target does not exist")
	}
	return nil
}
