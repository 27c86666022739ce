package core

import (
	"context"

	"github.com/geotrail/backend/internal/domain/core"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PicklistService manages the reference lists attached to paths and
// trails: stakes, networks, usages and trail categories.
type PicklistService struct {
	stakeRepo    core.StakeRepository
	networkRepo  core.NetworkRepository
	usageRepo    core.UsageRepository
	categoryRepo core.TrailCategoryRepository
	logger       *zap.Logger
}

// NewPicklistService creates a new picklist service
func NewPicklistService(
	stakeRepo core.StakeRepository,
	networkRepo core.NetworkRepository,
	usageRepo core.UsageRepository,
	categoryRepo core.TrailCategoryRepository,
	logger *zap.Logger,
) *PicklistService {
	return &PicklistService{
		stakeRepo:    stakeRepo,
		networkRepo:  networkRepo,
		usageRepo:    usageRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// CreateStake adds a stake level. Ranks are unique.
func (s *PicklistService) CreateStake(ctx context.Context, label string, rank int) (*core.Stake, error) {
	exists, err := s.stakeRepo.ExistsByRank(ctx, rank)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "a stake with this rank already exists")
	}
	stake, err := core.NewStake(label, rank)
	if err != nil {
		return nil, err
	}
	if err := s.stakeRepo.Save(ctx, stake); err != nil {
		return nil, err
	}
	return stake, nil
}

// ListStakes returns all stake levels
func (s *PicklistService) ListStakes(ctx context.Context, filter shared.Filter) ([]core.Stake, error) {
	return s.stakeRepo.FindAll(ctx, filter)
}

// RenameStake changes a stake label
func (s *PicklistService) RenameStake(ctx context.Context, id uuid.UUID, label string) (*core.Stake, error) {
	stake, err := s.stakeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := stake.Rename(label); err != nil {
		return nil, err
	}
	if err := s.stakeRepo.Save(ctx, stake); err != nil {
		return nil, err
	}
	return stake, nil
}

// DeleteStake removes a stake level unless a path still references it
func (s *PicklistService) DeleteStake(ctx context.Context, id uuid.UUID) error {
	inUse, err := s.stakeRepo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return shared.NewDomainError(shared.ErrReferenceInUse.Code, "stake is still assigned to paths")
	}
	return s.stakeRepo.Delete(ctx, id)
}

// CreateNetwork adds a path network label
func (s *PicklistService) CreateNetwork(ctx context.Context, label, pictogram string) (*core.Network, error) {
	network, err := core.NewNetwork(label, pictogram)
	if err != nil {
		return nil, err
	}
	if err := s.networkRepo.Save(ctx, network); err != nil {
		return nil, err
	}
	return network, nil
}

// ListNetworks returns all path networks
func (s *PicklistService) ListNetworks(ctx context.Context, filter shared.Filter) ([]core.Network, error) {
	return s.networkRepo.FindAll(ctx, filter)
}

// DeleteNetwork removes a network label
func (s *PicklistService) DeleteNetwork(ctx context.Context, id uuid.UUID) error {
	return s.networkRepo.Delete(ctx, id)
}

// CreateUsage adds a path usage label
func (s *PicklistService) CreateUsage(ctx context.Context, label string) (*core.Usage, error) {
	usage, err := core.NewUsage(label)
	if err != nil {
		return nil, err
	}
	if err := s.usageRepo.Save(ctx, usage); err != nil {
		return nil, err
	}
	return usage, nil
}

// ListUsages returns all path usages
func (s *PicklistService) ListUsages(ctx context.Context, filter shared.Filter) ([]core.Usage, error) {
	return s.usageRepo.FindAll(ctx, filter)
}

// DeleteUsage removes a usage label
func (s *PicklistService) DeleteUsage(ctx context.Context, id uuid.UUID) error {
	return s.usageRepo.Delete(ctx, id)
}

// CreateTrailCategory adds a trail category
func (s *PicklistService) CreateTrailCategory(ctx context.Context, label string) (*core.TrailCategory, error) {
	category, err := core.NewTrailCategory(label)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListTrailCategories returns all trail categories
func (s *PicklistService) ListTrailCategories(ctx context.Context, filter shared.Filter) ([]core.TrailCategory, error) {
	return s.categoryRepo.FindAll(ctx, filter)
}

// DeleteTrailCategory removes a trail category
func (s *PicklistService) DeleteTrailCategory(ctx context.Context, id uuid.UUID) error {
	return s.categoryRepo.Delete(ctx, id)
}
