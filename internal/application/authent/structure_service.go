package authent

import (
	"context"

	"github.com/geotrail/backend/internal/domain/authent"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StructureService manages organizational structures
type StructureService struct {
	structureRepo authent.StructureRepository
	logger        *zap.Logger
}

// NewStructureService creates a new structure service
func NewStructureService(structureRepo authent.StructureRepository, logger *zap.Logger) *StructureService {
	return &StructureService{
		structureRepo: structureRepo,
		logger:        logger,
	}
}

// Create creates a new structure with a unique name
func (s *StructureService) Create(ctx context.Context, input CreateStructureInput) (*authent.Structure, error) {
	taken, err := s.structureRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "a structure with this name already exists")
	}

	structure, err := authent.NewStructure(input.Name)
	if err != nil {
		return nil, err
	}

	if err := s.structureRepo.Save(ctx, structure); err != nil {
		return nil, err
	}

	s.logger.Info("Structure created",
		zap.String("structure_id", structure.ID.String()),
		zap.String("name", structure.Name))

	return structure, nil
}

// Get returns a structure by id
func (s *StructureService) Get(ctx context.Context, id uuid.UUID) (*authent.Structure, error) {
	return s.structureRepo.FindByID(ctx, id)
}

// List returns structures matching the filter
func (s *StructureService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[authent.Structure], error) {
	structures, err := s.structureRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[authent.Structure]{}, err
	}
	total, err := s.structureRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[authent.Structure]{}, err
	}
	return shared.NewPaginated(structures, total, filter.Page, filter.PageSize), nil
}

// Rename changes a structure's name
func (s *StructureService) Rename(ctx context.Context, id uuid.UUID, name string) (*authent.Structure, error) {
	structure, err := s.structureRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.structureRepo.FindByName(ctx, name); err == nil && existing.ID != id {
		return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "a structure with this name already exists")
	}

	if err := structure.Rename(name); err != nil {
		return nil, err
	}
	if err := s.structureRepo.Save(ctx, structure); err != nil {
		return nil, err
	}
	return structure, nil
}

// Delete removes a structure. Structures still owning users are rejected.
func (s *StructureService) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := s.structureRepo.CountUsers(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError(shared.ErrReferenceInUse.Code, "structure still has users")
	}

	if err := s.structureRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Structure deleted", zap.String("structure_id", id.String()))
	return nil
}
