// Package land contains the use-case services for the legal layers
// draped over the trail network.
package land

import (
	"context"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/land"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EdgeService manages edges
type EdgeService struct {
	repo             land.Repository
	physicalTypeRepo land.PhysicalTypeRepository
	landTypeRepo     land.LandTypeRepository
	organismRepo     common.OrganismRepository
	logger           *zap.Logger
}

// NewEdgeService creates a new edge service
func NewEdgeService(
	repo land.Repository,
	physicalTypeRepo land.PhysicalTypeRepository,
	landTypeRepo land.LandTypeRepository,
	organismRepo common.OrganismRepository,
	logger *zap.Logger,
) *EdgeService {
	return &EdgeService{
		repo:             repo,
		physicalTypeRepo: physicalTypeRepo,
		landTypeRepo:     landTypeRepo,
		organismRepo:     organismRepo,
		logger:           logger,
	}
}

// Create records an edge in the caller's structure
func (s *EdgeService) Create(ctx context.Context, actor authz.Actor, input CreateInput) (*land.Edge, error) {
	if err := s.checkReference(ctx, input.Kind, input.ReferenceID); err != nil {
		return nil, err
	}
	edge, err := land.NewEdge(actor.StructureID, input.Kind, input.Geometry, input.ReferenceID)
	if err != nil {
		return nil, err
	}
	edge.Comment = input.Comment

	if err := s.repo.Save(ctx, edge); err != nil {
		s.logger.Error("Failed to save edge", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Edge created",
		zap.String("edge_id", edge.ID.String()),
		zap.String("kind", string(edge.Kind)))
	return edge, nil
}

// Get returns an edge
func (s *EdgeService) Get(ctx context.Context, id uuid.UUID) (*land.Edge, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of edges
func (s *EdgeService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[land.Edge], error) {
	items, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[land.Edge]{}, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[land.Edge]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// ListByKind returns edges of one legal layer
func (s *EdgeService) ListByKind(ctx context.Context, kind land.EdgeKind, filter shared.Filter) ([]land.Edge, error) {
	if !kind.Valid() {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown edge kind")
	}
	return s.repo.FindByKind(ctx, kind, filter)
}

// Update modifies an edge
func (s *EdgeService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateInput) (*land.Edge, error) {
	edge, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("land", edge.StructureID); err != nil {
		return nil, err
	}

	if input.ReferenceID != edge.ReferenceID() {
		if err := s.checkReference(ctx, edge.Kind, input.ReferenceID); err != nil {
			return nil, err
		}
	}
	if err := edge.SetReference(input.ReferenceID); err != nil {
		return nil, err
	}
	if input.Geometry != nil {
		if err := edge.SetGeometry(*input.Geometry); err != nil {
			return nil, err
		}
	}
	edge.SetComment(input.Comment)

	if err := s.repo.Save(ctx, edge); err != nil {
		s.logger.Error("Failed to update edge", zap.Error(err))
		return nil, err
	}
	return edge, nil
}

// Delete soft-deletes an edge
func (s *EdgeService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	edge, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := actor.CheckSameStructure("land", edge.StructureID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *EdgeService) checkReference(ctx context.Context, kind land.EdgeKind, refID uuid.UUID) error {
	if refID == uuid.Nil {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "edge reference is required")
	}
	var err error
	switch {
	case kind == land.EdgePhysical:
		_, err = s.physicalTypeRepo.FindByID(ctx, refID)
		if err != nil {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "physical type does not exist")
		}
	case kind == land.EdgeLand:
		_, err = s.landTypeRepo.FindByID(ctx, refID)
		if err != nil {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "land type does not exist")
		}
	case kind.RequiresOrganism():
		_, err = s.organismRepo.FindByID(ctx, refID)
		if err != nil {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "organism does not exist")
		}
	}
	return nil
}

// TypeService manages the physical and land type picklists
type TypeService struct {
	physicalTypeRepo land.PhysicalTypeRepository
	landTypeRepo     land.LandTypeRepository
	repo             land.Repository
	logger           *zap.Logger
}

// NewTypeService creates a new type service
func NewTypeService(
	physicalTypeRepo land.PhysicalTypeRepository,
	landTypeRepo land.LandTypeRepository,
	repo land.Repository,
	logger *zap.Logger,
) *TypeService {
	return &TypeService{
		physicalTypeRepo: physicalTypeRepo,
		landTypeRepo:     landTypeRepo,
		repo:             repo,
		logger:           logger,
	}
}

// CreatePhysicalType adds a physical type label
func (s *TypeService) CreatePhysicalType(ctx context.Context, label string, structureID *uuid.UUID) (*land.PhysicalType, error) {
	typ, err := land.NewPhysicalType(label, structureID)
	if err != nil {
		return nil, err
	}
	if err := s.physicalTypeRepo.Save(ctx, typ); err != nil {
		return nil, err
	}
	return typ, nil
}

// ListPhysicalTypes returns all physical type labels
func (s *TypeService) ListPhysicalTypes(ctx context.Context, filter shared.Filter) ([]land.PhysicalType, error) {
	return s.physicalTypeRepo.FindAll(ctx, filter)
}

// DeletePhysicalType removes a physical type unless edges still reference it
func (s *TypeService) DeletePhysicalType(ctx context.Context, id uuid.UUID) error {
	if _, err := s.physicalTypeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	count, err := s.repo.CountByPhysicalType(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError(shared.ErrReferenceInUse.Code, "physical type is still assigned to edges")
	}
	return s.physicalTypeRepo.Delete(ctx, id)
}

// CreateLandType adds a land type label
func (s *TypeService) CreateLandType(ctx context.Context, label string, rightOfWay bool, structureID *uuid.UUID) (*land.LandType, error) {
	typ, err := land.NewLandType(label, rightOfWay, structureID)
	if err != nil {
		return nil, err
	}
	if err := s.landTypeRepo.Save(ctx, typ); err != nil {
		return nil, err
	}
	return typ, nil
}

// ListLandTypes returns all land type labels
func (s *TypeService) ListLandTypes(ctx context.Context, filter shared.Filter) ([]land.LandType, error) {
	return s.landTypeRepo.FindAll(ctx, filter)
}

// DeleteLandType removes a land type unless edges still reference it
func (s *TypeService) DeleteLandType(ctx context.Context, id uuid.UUID) error {
	if _, err := s.landTypeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	count, err := s.repo.CountByLandType(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError(shared.ErrReferenceInUse.Code, "land type is still assigned to edges")
	}
	return s.landTypeRepo.Delete(ctx, id)
}
