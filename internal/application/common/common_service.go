// Package common contains the use-case services for shared reference
// records: themes and organisms.
package common

import (
	"context"

	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ThemeService manages portal themes
type ThemeService struct {
	themeRepo common.ThemeRepository
	logger    *zap.Logger
}

// NewThemeService creates a new theme service
func NewThemeService(themeRepo common.ThemeRepository, logger *zap.Logger) *ThemeService {
	return &ThemeService{themeRepo: themeRepo, logger: logger}
}

// Create adds a theme
func (s *ThemeService) Create(ctx context.Context, label, pictogram string) (*common.Theme, error) {
	theme, err := common.NewTheme(label, pictogram)
	if err != nil {
		return nil, err
	}
	if err := s.themeRepo.Save(ctx, theme); err != nil {
		s.logger.Error("Failed to save theme", zap.Error(err))
		return nil, err
	}
	return theme, nil
}

// List returns all themes
func (s *ThemeService) List(ctx context.Context, filter shared.Filter) ([]common.Theme, error) {
	return s.themeRepo.FindAll(ctx, filter)
}

// Update changes a theme's label and pictogram
func (s *ThemeService) Update(ctx context.Context, id uuid.UUID, label, pictogram string) (*common.Theme, error) {
	theme, err := s.themeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := theme.Update(label, pictogram); err != nil {
		return nil, err
	}
	if err := s.themeRepo.Save(ctx, theme); err != nil {
		return nil, err
	}
	return theme, nil
}

// Delete removes a theme
func (s *ThemeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.themeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.themeRepo.Delete(ctx, id)
}

// OrganismService manages external organisms
type OrganismService struct {
	organismRepo common.OrganismRepository
	logger       *zap.Logger
}

// NewOrganismService creates a new organism service
func NewOrganismService(organismRepo common.OrganismRepository, logger *zap.Logger) *OrganismService {
	return &OrganismService{organismRepo: organismRepo, logger: logger}
}

// Create adds an organism, optionally owned by a structure
func (s *OrganismService) Create(ctx context.Context, name string, structureID *uuid.UUID) (*common.Organism, error) {
	if existing, err := s.organismRepo.FindByName(ctx, name); err == nil && existing != nil {
		return nil, shared.NewDomainError(shared.ErrAlreadyExists.Code, "an organism with this name already exists")
	}
	organism, err := common.NewOrganism(name, structureID)
	if err != nil {
		return nil, err
	}
	if err := s.organismRepo.Save(ctx, organism); err != nil {
		s.logger.Error("Failed to save organism", zap.Error(err))
		return nil, err
	}
	return organism, nil
}

// List returns all organisms
func (s *OrganismService) List(ctx context.Context, filter shared.Filter) ([]common.Organism, error) {
	return s.organismRepo.FindAll(ctx, filter)
}

// Rename changes an organism's name
func (s *OrganismService) Rename(ctx context.Context, id uuid.UUID, name string) (*common.Organism, error) {
	organism, err := s.organismRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := organism.Rename(name); err != nil {
		return nil, err
	}
	if err := s.organismRepo.Save(ctx, organism); err != nil {
		return nil, err
	}
	return organism, nil
}

// Delete removes an organism
func (s *OrganismService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.organismRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.organismRepo.Delete(ctx, id)
}
