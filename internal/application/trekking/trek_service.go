// Package trekking contains the use-case services for treks, POIs and
// service points, including GeoJSON layers and KML exports.
package trekking

import (
	"context"
	"time"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/trekking"
	"github.com/geotrail/backend/internal/infrastructure/cache"
	"github.com/geotrail/backend/internal/infrastructure/scheduler"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// layerTTL bounds staleness if an invalidation is ever missed
const layerTTL = 24 * time.Hour

// JobScheduler enqueues background jobs. Satisfied by scheduler.Scheduler.
type JobScheduler interface {
	ScheduleJob(structureID *uuid.UUID, jobType scheduler.JobType, since time.Time) error
}

// TrekService manages treks, their hierarchy and relationships
type TrekService struct {
	trekRepo          trekking.TrekRepository
	themeRepo         common.ThemeRepository
	networkRepo       trekking.TrekNetworkRepository
	accessibilityRepo trekking.AccessibilityRepository
	webLinkRepo       trekking.WebLinkRepository
	layers            cache.LayerCache
	jobs              JobScheduler
	logger            *zap.Logger
}

// NewTrekService creates a new trek service
func NewTrekService(
	trekRepo trekking.TrekRepository,
	themeRepo common.ThemeRepository,
	networkRepo trekking.TrekNetworkRepository,
	accessibilityRepo trekking.AccessibilityRepository,
	webLinkRepo trekking.WebLinkRepository,
	layers cache.LayerCache,
	jobs JobScheduler,
	logger *zap.Logger,
) *TrekService {
	if layers == nil {
		layers = cache.NewInMemoryLayerCache()
	}
	return &TrekService{
		trekRepo:          trekRepo,
		themeRepo:         themeRepo,
		networkRepo:       networkRepo,
		accessibilityRepo: accessibilityRepo,
		webLinkRepo:       webLinkRepo,
		layers:            layers,
		jobs:              jobs,
		logger:            logger,
	}
}

// Create registers a new trek in the caller's structure
func (s *TrekService) Create(ctx context.Context, actor authz.Actor, input CreateTrekInput) (*trekking.Trek, error) {
	trek, err := trekking.NewTrek(actor.StructureID, input.Name, input.Geometry)
	if err != nil {
		return nil, err
	}
	trek.Departure = input.Departure
	trek.Arrival = input.Arrival
	trek.DescriptionTeaser = input.DescriptionTeaser
	trek.Description = input.Description
	trek.Ambiance = input.Ambiance
	trek.Access = input.Access
	trek.Advice = input.Advice
	if err := trek.SetDuration(input.DurationHours); err != nil {
		return nil, err
	}
	if err := trek.SetParkingLocation(input.ParkingLocation); err != nil {
		return nil, err
	}
	if err := trek.SetPointsReference(input.PointsReference); err != nil {
		return nil, err
	}
	trek.Classify(input.DifficultyID, input.PracticeID, input.RouteID)
	if input.EID != "" || input.EID2 != "" {
		trek.SetEIDs(input.EID, input.EID2)
	}

	if err := s.trekRepo.Save(ctx, trek); err != nil {
		s.logger.Error("Failed to save trek", zap.Error(err))
		return nil, err
	}

	if err := s.replaceAssociations(ctx, trek, input.ThemeIDs, input.NetworkIDs, input.AccessibilityIDs, input.WebLinkIDs); err != nil {
		return nil, err
	}

	s.enqueueMapCapture(trek)
	s.logger.Info("Trek created", zap.String("trek_id", trek.ID.String()))
	return trek, nil
}

// Get returns a trek by ID
func (s *TrekService) Get(ctx context.Context, id uuid.UUID) (*trekking.Trek, error) {
	return s.trekRepo.FindByID(ctx, id)
}

// List returns a page of treks
func (s *TrekService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[trekking.Trek], error) {
	treks, err := s.trekRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[trekking.Trek]{}, err
	}
	total, err := s.trekRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[trekking.Trek]{}, err
	}
	return shared.NewPaginated(treks, total, filter.Page, filter.PageSize), nil
}

// Update modifies a trek. A geometry change stales the captured map
// image and enqueues a new capture job.
func (s *TrekService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdateTrekInput) (*trekking.Trek, error) {
	trek, err := s.trekRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("trek", trek.StructureID); err != nil {
		return nil, err
	}

	if err := trek.Update(input.Name, input.Departure, input.Arrival, trekking.TrekTexts{
		DescriptionTeaser: input.DescriptionTeaser,
		Description:       input.Description,
		Ambiance:          input.Ambiance,
		Access:            input.Access,
		Advice:            input.Advice,
	}); err != nil {
		return nil, err
	}
	if err := trek.SetDuration(input.DurationHours); err != nil {
		return nil, err
	}
	trek.Classify(input.DifficultyID, input.PracticeID, input.RouteID)

	geometryChanged := false
	if input.Geometry != nil {
		if err := trek.SetGeometry(*input.Geometry); err != nil {
			return nil, err
		}
		geometryChanged = true
	}
	if input.ParkingLocation != nil {
		if err := trek.SetParkingLocation(*input.ParkingLocation); err != nil {
			return nil, err
		}
	}
	if input.PointsReference != nil {
		if err := trek.SetPointsReference(*input.PointsReference); err != nil {
			return nil, err
		}
	}

	if err := s.trekRepo.Save(ctx, trek); err != nil {
		s.logger.Error("Failed to update trek", zap.Error(err))
		return nil, err
	}

	if err := s.replaceAssociations(ctx, trek, input.ThemeIDs, input.NetworkIDs, input.AccessibilityIDs, input.WebLinkIDs); err != nil {
		return nil, err
	}

	s.invalidateLayer(ctx)
	if geometryChanged {
		s.enqueueMapCapture(trek)
	}
	return trek, nil
}

// Delete soft-deletes a trek
func (s *TrekService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	trek, err := s.trekRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := actor.CheckSameStructure("trek", trek.StructureID); err != nil {
		return err
	}
	if err := s.trekRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateLayer(ctx)
	return nil
}

// Publish makes a trek publicly visible. Requires the trek:publish permission.
func (s *TrekService) Publish(ctx context.Context, actor authz.Actor, id uuid.UUID) (*trekking.Trek, error) {
	if err := actor.Require("trek:publish"); err != nil {
		return nil, err
	}
	trek, err := s.trekRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("trek", trek.StructureID); err != nil {
		return nil, err
	}
	if err := trek.Publish(); err != nil {
		return nil, err
	}
	if err := s.trekRepo.Save(ctx, trek); err != nil {
		return nil, err
	}
	s.invalidateLayer(ctx)
	s.enqueueMapCapture(trek)
	s.logger.Info("Trek published", zap.String("trek_id", trek.ID.String()))
	return trek, nil
}

// Unpublish removes a trek from public portals
func (s *TrekService) Unpublish(ctx context.Context, actor authz.Actor, id uuid.UUID) (*trekking.Trek, error) {
	if err := actor.Require("trek:publish"); err != nil {
		return nil, err
	}
	trek, err := s.trekRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("trek", trek.StructureID); err != nil {
		return nil, err
	}
	if err := trek.Unpublish(); err != nil {
		return nil, err
	}
	if err := s.trekRepo.Save(ctx, trek); err != nil {
		return nil, err
	}
	s.invalidateLayer(ctx)
	return trek, nil
}

// ReorderChildren replaces the ordered child steps of a trek. Self
// references and cyclic parentage are rejected.
func (s *TrekService) ReorderChildren(ctx context.Context, actor authz.Actor, parentID uuid.UUID, orderedChildIDs []uuid.UUID) error {
	parent, err := s.trekRepo.FindByID(ctx, parentID)
	if err != nil {
		return err
	}
	if err := actor.CheckSameStructure("trek", parent.StructureID); err != nil {
		return err
	}

	seen := make(map[uuid.UUID]struct{}, len(orderedChildIDs))
	for _, childID := range orderedChildIDs {
		if childID == parentID {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "a trek cannot be its own child")
		}
		if _, dup := seen[childID]; dup {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "duplicate child trek in ordering")
		}
		seen[childID] = struct{}{}
		if _, err := s.trekRepo.FindByID(ctx, childID); err != nil {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "child trek does not exist")
		}
	}

	if err := s.checkNoCycle(ctx, parentID, seen); err != nil {
		return err
	}

	return s.trekRepo.ReplaceChildren(ctx, parentID, orderedChildIDs)
}

// checkNoCycle walks up from the parent and rejects the ordering if any
// ancestor appears among the new children.
func (s *TrekService) checkNoCycle(ctx context.Context, parentID uuid.UUID, childIDs map[uuid.UUID]struct{}) error {
	visited := map[uuid.UUID]struct{}{}
	frontier := []uuid.UUID{parentID}
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		if _, ok := visited[current]; ok {
			continue
		}
		visited[current] = struct{}{}

		parents, err := s.trekRepo.FindParents(ctx, current)
		if err != nil {
			return err
		}
		for _, link := range parents {
			if _, isChild := childIDs[link.ParentID]; isChild {
				return shared.NewDomainError(shared.ErrInvalidInput.Code, "trek ordering would create a cycle")
			}
			frontier = append(frontier, link.ParentID)
		}
	}
	return nil
}

// Children returns the ordered child steps of a trek
func (s *TrekService) Children(ctx context.Context, parentID uuid.UUID) ([]trekking.OrderedTrekChild, error) {
	return s.trekRepo.FindChildren(ctx, parentID)
}

// Relate creates a symmetric relationship between two treks
func (s *TrekService) Relate(ctx context.Context, actor authz.Actor, input RelateTreksInput) (*trekking.TrekRelationship, error) {
	trekA, err := s.trekRepo.FindByID(ctx, input.TrekAID)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("trek", trekA.StructureID); err != nil {
		return nil, err
	}
	if _, err := s.trekRepo.FindByID(ctx, input.TrekBID); err != nil {
		return nil, err
	}

	rel, err := trekking.NewTrekRelationship(input.TrekAID, input.TrekBID,
		input.HasCommonDeparture, input.HasCommonEdge, input.IsCircuitStep)
	if err != nil {
		return nil, err
	}
	if err := s.trekRepo.SaveRelationship(ctx, rel); err != nil {
		return nil, err
	}
	return rel, nil
}

// Unrelate removes a trek relationship
func (s *TrekService) Unrelate(ctx context.Context, actor authz.Actor, trekID, relationshipID uuid.UUID) error {
	trek, err := s.trekRepo.FindByID(ctx, trekID)
	if err != nil {
		return err
	}
	if err := actor.CheckSameStructure("trek", trek.StructureID); err != nil {
		return err
	}
	return s.trekRepo.DeleteRelationship(ctx, relationshipID)
}

// Relationships returns the relationships involving a trek
func (s *TrekService) Relationships(ctx context.Context, trekID uuid.UUID) ([]trekking.TrekRelationship, error) {
	return s.trekRepo.FindRelationships(ctx, trekID)
}

// PublishedLayer returns the GeoJSON layer of published treks, serving
// the cached rendition when available.
func (s *TrekService) PublishedLayer(ctx context.Context) ([]byte, error) {
	if payload, err := s.layers.Get(ctx, LayerTreks); err == nil {
		return payload, nil
	}

	treks, err := s.trekRepo.FindPublished(ctx)
	if err != nil {
		return nil, err
	}
	payload, err := BuildTrekLayer(treks)
	if err != nil {
		return nil, err
	}
	if err := s.layers.Set(ctx, LayerTreks, payload, layerTTL); err != nil {
		s.logger.Warn("Failed to cache trek layer", zap.Error(err))
	}
	return payload, nil
}

// ExportKML renders a trek as a KML document
func (s *TrekService) ExportKML(ctx context.Context, id uuid.UUID) ([]byte, error) {
	trek, err := s.trekRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ExportTrekKML(trek)
}

func (s *TrekService) replaceAssociations(ctx context.Context, trek *trekking.Trek, themeIDs, networkIDs, accessibilityIDs, webLinkIDs []uuid.UUID) error {
	if themeIDs != nil {
		themes, err := s.themeRepo.FindByIDs(ctx, themeIDs)
		if err != nil {
			return err
		}
		if len(themes) != len(themeIDs) {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown theme in assignment")
		}
		if err := s.trekRepo.ReplaceThemes(ctx, trek, themes); err != nil {
			return err
		}
		trek.Themes = themes
	}
	if networkIDs != nil {
		networks, err := s.networkRepo.FindByIDs(ctx, networkIDs)
		if err != nil {
			return err
		}
		if len(networks) != len(networkIDs) {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown network in assignment")
		}
		if err := s.trekRepo.ReplaceNetworks(ctx, trek, networks); err != nil {
			return err
		}
		trek.Networks = networks
	}
	if accessibilityIDs != nil {
		accessibilities, err := s.accessibilityRepo.FindByIDs(ctx, accessibilityIDs)
		if err != nil {
			return err
		}
		if len(accessibilities) != len(accessibilityIDs) {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown accessibility in assignment")
		}
		if err := s.trekRepo.ReplaceAccessibilities(ctx, trek, accessibilities); err != nil {
			return err
		}
		trek.Accessibilities = accessibilities
	}
	if webLinkIDs != nil {
		links, err := s.webLinkRepo.FindByIDs(ctx, webLinkIDs)
		if err != nil {
			return err
		}
		if len(links) != len(webLinkIDs) {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown web link in assignment")
		}
		if err := s.trekRepo.ReplaceWebLinks(ctx, trek, links); err != nil {
			return err
		}
		trek.WebLinks = links
	}
	return nil
}

func (s *TrekService) invalidateLayer(ctx context.Context) {
	if err := s.layers.Invalidate(ctx, LayerTreks); err != nil {
		s.logger.Warn("Failed to invalidate trek layer", zap.Error(err))
	}
}

func (s *TrekService) enqueueMapCapture(trek *trekking.Trek) {
	if s.jobs == nil {
		return
	}
	structureID := trek.StructureID
	if err := s.jobs.ScheduleJob(&structureID, scheduler.JobTypeMapCapture, trek.UpdatedAt); err != nil {
		s.logger.Warn("Failed to enqueue map capture job",
			zap.String("trek_id", trek.ID.String()), zap.Error(err))
	}
}
