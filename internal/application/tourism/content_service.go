// Package tourism contains the use-case services for touristic contents
// and information desks.
package tourism

import (
	"context"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/tourism"
	"github.com/geotrail/backend/internal/domain/trekking"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// contentNearTrekDistance is the search radius in meters for contents
// promoted alongside a trek.
const contentNearTrekDistance = 1000.0

// ContentService manages touristic contents
type ContentService struct {
	contentRepo  tourism.ContentRepository
	categoryRepo tourism.CategoryRepository
	typeRepo     tourism.ContentTypeRepository
	themeRepo    common.ThemeRepository
	trekRepo     trekking.TrekRepository
	logger       *zap.Logger
}

// NewContentService creates a new content service
func NewContentService(
	contentRepo tourism.ContentRepository,
	categoryRepo tourism.CategoryRepository,
	typeRepo tourism.ContentTypeRepository,
	themeRepo common.ThemeRepository,
	trekRepo trekking.TrekRepository,
	logger *zap.Logger,
) *ContentService {
	return &ContentService{
		contentRepo:  contentRepo,
		categoryRepo: categoryRepo,
		typeRepo:     typeRepo,
		themeRepo:    themeRepo,
		trekRepo:     trekRepo,
		logger:       logger,
	}
}

// Create records a touristic content in the caller's structure
func (s *ContentService) Create(ctx context.Context, actor authz.Actor, input CreateContentInput) (*tourism.TouristicContent, error) {
	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "content category does not exist")
	}
	content, err := tourism.NewTouristicContent(actor.StructureID, input.Name, input.CategoryID, input.Geometry)
	if err != nil {
		return nil, err
	}
	if err := content.Update(input.Name, input.TeaserText, input.Description, input.Practical); err != nil {
		return nil, err
	}
	content.SetContact(input.ContactInfo, input.Email, input.Website, input.ReservationID)
	content.EID = input.EID

	if err := s.contentRepo.Save(ctx, content); err != nil {
		s.logger.Error("Failed to save touristic content", zap.Error(err))
		return nil, err
	}
	if err := s.replaceAssociations(ctx, content, input.Type1IDs, input.Type2IDs, input.ThemeIDs); err != nil {
		return nil, err
	}
	s.logger.Info("Touristic content created", zap.String("content_id", content.ID.String()))
	return content, nil
}

// Get returns a touristic content
func (s *ContentService) Get(ctx context.Context, id uuid.UUID) (*tourism.TouristicContent, error) {
	return s.contentRepo.FindByID(ctx, id)
}

// List returns a page of touristic contents
func (s *ContentService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[tourism.TouristicContent], error) {
	items, err := s.contentRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[tourism.TouristicContent]{}, err
	}
	total, err := s.contentRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[tourism.TouristicContent]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// ListByCategory returns contents of one category
func (s *ContentService) ListByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]tourism.TouristicContent, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.contentRepo.FindByCategory(ctx, categoryID, filter)
}

// ListApproved returns contents validated by their managing structure
func (s *ContentService) ListApproved(ctx context.Context, filter shared.Filter) ([]tourism.TouristicContent, error) {
	return s.contentRepo.FindApproved(ctx, filter)
}

// ListForTrek returns contents within reach of a trek's geometry
func (s *ContentService) ListForTrek(ctx context.Context, trekID uuid.UUID) ([]tourism.TouristicContent, error) {
	trek, err := s.trekRepo.FindByID(ctx, trekID)
	if err != nil {
		return nil, err
	}
	if trek.Geometry.IsZero() {
		return nil, shared.NewDomainError(shared.ErrInvalidGeometry.Code, "trek has no geometry")
	}
	return s.contentRepo.FindNear(ctx, trek.Geometry, contentNearTrekDistance)
}

// Update modifies a touristic content
func (s *ContentService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateContentInput) (*tourism.TouristicContent, error) {
	content, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("tourism", content.StructureID); err != nil {
		return nil, err
	}

	if input.CategoryID != content.CategoryID {
		if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "content category does not exist")
		}
	}
	if err := content.Update(input.Name, input.TeaserText, input.Description, input.Practical); err != nil {
		return nil, err
	}
	if err := content.SetCategory(input.CategoryID); err != nil {
		return nil, err
	}
	if input.Geometry != nil {
		if err := content.SetGeometry(*input.Geometry); err != nil {
			return nil, err
		}
	}
	content.SetContact(input.ContactInfo, input.Email, input.Website, input.ReservationID)

	if err := s.contentRepo.Save(ctx, content); err != nil {
		s.logger.Error("Failed to update touristic content", zap.Error(err))
		return nil, err
	}
	if err := s.replaceAssociations(ctx, content, input.Type1IDs, input.Type2IDs, input.ThemeIDs); err != nil {
		return nil, err
	}
	return content, nil
}

// Delete soft-deletes a touristic content
func (s *ContentService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	content, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := actor.CheckSameStructure("tourism", content.StructureID); err != nil {
		return err
	}
	return s.contentRepo.Delete(ctx, id)
}

// Approve marks a content as validated by its managing structure
func (s *ContentService) Approve(ctx context.Context, actor authz.Actor, id uuid.UUID) (*tourism.TouristicContent, error) {
	content, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("tourism", content.StructureID); err != nil {
		return nil, err
	}
	content.Approve()
	if err := s.contentRepo.Save(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

// Publish makes a content publicly visible
func (s *ContentService) Publish(ctx context.Context, actor authz.Actor, id uuid.UUID) (*tourism.TouristicContent, error) {
	if err := actor.Require("tourism:publish"); err != nil {
		return nil, err
	}
	content, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("tourism", content.StructureID); err != nil {
		return nil, err
	}
	if err := content.Publish(); err != nil {
		return nil, err
	}
	if err := s.contentRepo.Save(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

// Unpublish removes a content from public portals
func (s *ContentService) Unpublish(ctx context.Context, actor authz.Actor, id uuid.UUID) (*tourism.TouristicContent, error) {
	if err := actor.Require("tourism:publish"); err != nil {
		return nil, err
	}
	content, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("tourism", content.StructureID); err != nil {
		return nil, err
	}
	if err := content.Unpublish(); err != nil {
		return nil, err
	}
	if err := s.contentRepo.Save(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

// replaceAssociations swaps type and theme links. Type values must belong
// to the content's category and the right list.
func (s *ContentService) replaceAssociations(ctx context.Context, content *tourism.TouristicContent, type1IDs, type2IDs, themeIDs []uuid.UUID) error {
	if type1IDs != nil {
		types, err := s.findTypes(ctx, content, type1IDs, 1)
		if err != nil {
			return err
		}
		if err := s.contentRepo.ReplaceTypes(ctx, content, 1, types); err != nil {
			return err
		}
		content.Types1 = types
	}
	if type2IDs != nil {
		types, err := s.findTypes(ctx, content, type2IDs, 2)
		if err != nil {
			return err
		}
		if err := s.contentRepo.ReplaceTypes(ctx, content, 2, types); err != nil {
			return err
		}
		content.Types2 = types
	}
	if themeIDs != nil {
		themes, err := s.themeRepo.FindByIDs(ctx, themeIDs)
		if err != nil {
			return err
		}
		if len(themes) != len(themeIDs) {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown theme in assignment")
		}
		if err := s.contentRepo.ReplaceThemes(ctx, content, themes); err != nil {
			return err
		}
		content.Themes = themes
	}
	return nil
}

func (s *ContentService) findTypes(ctx context.Context, content *tourism.TouristicContent, ids []uuid.UUID, list int) ([]tourism.TouristicContentType, error) {
	types, err := s.typeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(types) != len(ids) {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown type in assignment")
	}
	for _, typ := range types {
		if typ.CategoryID != content.CategoryID || typ.List != list {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "type does not belong to the content category")
		}
	}
	return types, nil
}
