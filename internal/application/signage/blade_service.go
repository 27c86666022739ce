package signage

import (
	"context"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/signage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BladeService manages blades nested under their signage
type BladeService struct {
	bladeRepo   signage.BladeRepository
	signageRepo signage.SignageRepository
	logger      *zap.Logger
}

// NewBladeService creates a new blade service
func NewBladeService(bladeRepo signage.BladeRepository, signageRepo signage.SignageRepository, logger *zap.Logger) *BladeService {
	return &BladeService{bladeRepo: bladeRepo, signageRepo: signageRepo, logger: logger}
}

// Create mounts a blade on a signpost. The structure check runs against
// the signage, blades inherit its structure.
func (s *BladeService) Create(ctx context.Context, actor authz.Actor, signageID uuid.UUID, input CreateBladeInput) (*signage.Blade, error) {
	sign, err := s.signageRepo.FindByIDWithBlades(ctx, signageID)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("blade", sign.StructureID); err != nil {
		return nil, err
	}

	number := input.Number
	if number == "" {
		number = sign.NextBladeNumber()
	}
	exists, err := s.bladeRepo.ExistsByNumber(ctx, signageID, number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "blade number already used on this signage")
	}

	blade, err := signage.NewBlade(sign, number)
	if err != nil {
		return nil, err
	}
	blade.SetEquipment(input.TypeID, input.ColorID, input.DirectionID)
	blade.SetCondition(input.ConditionID)

	if len(input.Lines) > 0 {
		lines, err := buildLines(input.Lines)
		if err != nil {
			return nil, err
		}
		if err := blade.ReplaceLines(lines); err != nil {
			return nil, err
		}
	}

	if err := s.bladeRepo.Save(ctx, blade); err != nil {
		s.logger.Error("Failed to save blade", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Blade created",
		zap.String("blade_id", blade.ID.String()),
		zap.String("signage_id", signageID.String()))
	return blade, nil
}

// Get returns a blade with its lines
func (s *BladeService) Get(ctx context.Context, id uuid.UUID) (*signage.Blade, error) {
	return s.bladeRepo.FindByIDWithLines(ctx, id)
}

// ListForSignage returns the blades mounted on a signpost
func (s *BladeService) ListForSignage(ctx context.Context, signageID uuid.UUID) ([]signage.Blade, error) {
	if _, err := s.signageRepo.FindByID(ctx, signageID); err != nil {
		return nil, err
	}
	return s.bladeRepo.FindBySignage(ctx, signageID)
}

// Update modifies a blade
func (s *BladeService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateBladeInput) (*signage.Blade, error) {
	blade, err := s.bladeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("blade", blade.StructureID); err != nil {
		return nil, err
	}

	if input.Number != "" && input.Number != blade.Number {
		exists, err := s.bladeRepo.ExistsByNumber(ctx, blade.SignageID, input.Number)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "blade number already used on this signage")
		}
		if err := blade.Renumber(input.Number); err != nil {
			return nil, err
		}
	}
	blade.SetEquipment(input.TypeID, input.ColorID, input.DirectionID)
	blade.SetCondition(input.ConditionID)

	if err := s.bladeRepo.Save(ctx, blade); err != nil {
		s.logger.Error("Failed to update blade", zap.Error(err))
		return nil, err
	}
	return blade, nil
}

// ReplaceLines swaps the full line set of a blade
func (s *BladeService) ReplaceLines(ctx context.Context, actor authz.Actor, id uuid.UUID, inputs []LineInput) (*signage.Blade, error) {
	blade, err := s.bladeRepo.FindByIDWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("blade", blade.StructureID); err != nil {
		return nil, err
	}

	lines, err := buildLines(inputs)
	if err != nil {
		return nil, err
	}
	if err := blade.ReplaceLines(lines); err != nil {
		return nil, err
	}
	if err := s.bladeRepo.ReplaceLines(ctx, blade); err != nil {
		s.logger.Error("Failed to replace blade lines", zap.Error(err))
		return nil, err
	}
	return blade, nil
}

// Delete soft-deletes a blade
func (s *BladeService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	blade, err := s.bladeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := actor.CheckSameStructure("blade", blade.StructureID); err != nil {
		return err
	}
	return s.bladeRepo.Delete(ctx, id)
}

func buildLines(inputs []LineInput) ([]signage.Line, error) {
	lines := make([]signage.Line, 0, len(inputs))
	for _, in := range inputs {
		line, err := signage.NewLine(in.Number, in.Text, in.Distance, in.Time)
		if err != nil {
			return nil, err
		}
		line.Pictogram = in.Pictogram
		lines = append(lines, line)
	}
	return lines, nil
}
