// Package core contains the use-case services for the path network:
// paths, trails and their reference picklists.
package core

import (
	"context"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/core"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/infrastructure/capture"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const profileMaxPoints = 100

// PathService manages the path network
type PathService struct {
	pathRepo    core.PathRepository
	stakeRepo   core.StakeRepository
	networkRepo core.NetworkRepository
	usageRepo   core.UsageRepository
	sampler     ElevationSampler
	capturer    capture.MapCapturer
	logger      *zap.Logger
}

// NewPathService creates a new path service
func NewPathService(
	pathRepo core.PathRepository,
	stakeRepo core.StakeRepository,
	networkRepo core.NetworkRepository,
	usageRepo core.UsageRepository,
	sampler ElevationSampler,
	capturer capture.MapCapturer,
	logger *zap.Logger,
) *PathService {
	if sampler == nil {
		sampler = ZeroSampler{}
	}
	return &PathService{
		pathRepo:    pathRepo,
		stakeRepo:   stakeRepo,
		networkRepo: networkRepo,
		usageRepo:   usageRepo,
		sampler:     sampler,
		capturer:    capturer,
		logger:      logger,
	}
}

// Create registers a new path in the caller's structure
func (s *PathService) Create(ctx context.Context, actor authz.Actor, input CreatePathInput) (*core.Path, error) {
	path, err := core.NewPath(actor.StructureID, input.Name, input.Geometry)
	if err != nil {
		return nil, err
	}
	path.Departure = input.Departure
	path.Arrival = input.Arrival
	path.Comments = input.Comments
	if input.EID != "" {
		path.SetEID(input.EID)
	}

	if input.StakeID != nil {
		if _, err := s.stakeRepo.FindByID(ctx, *input.StakeID); err != nil {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "stake does not exist")
		}
		path.SetStake(input.StakeID)
	}

	altimetry, err := ComputeAltimetry(ctx, path.Geometry, s.sampler)
	if err != nil {
		return nil, err
	}
	path.SetAltimetry(altimetry)

	if err := s.pathRepo.Save(ctx, path); err != nil {
		s.logger.Error("Failed to save path", zap.Error(err))
		return nil, err
	}

	if err := s.replaceAssociations(ctx, path, input.NetworkIDs, input.UsageIDs); err != nil {
		return nil, err
	}

	s.logger.Info("Path created",
		zap.String("path_id", path.ID.String()),
		zap.String("structure_id", path.StructureID.String()))
	return path, nil
}

// Get returns a path by ID
func (s *PathService) Get(ctx context.Context, id uuid.UUID) (*core.Path, error) {
	return s.pathRepo.FindByID(ctx, id)
}

// List returns a page of paths. Lists are not structure-filtered.
func (s *PathService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[core.Path], error) {
	paths, err := s.pathRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[core.Path]{}, err
	}
	total, err := s.pathRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[core.Path]{}, err
	}
	return shared.NewPaginated(paths, total, filter.Page, filter.PageSize), nil
}

// ListNear returns paths within distance meters of the geometry
func (s *PathService) ListNear(ctx context.Context, geom shared.Geometry, distance float64) ([]core.Path, error) {
	if geom.IsZero() {
		return nil, shared.NewDomainError(shared.ErrInvalidGeometry.Code, "reference geometry is required")
	}
	if distance <= 0 {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "distance must be positive")
	}
	return s.pathRepo.FindNear(ctx, geom, distance)
}

// Update modifies a path. Changing the geometry recomputes the altimetry.
func (s *PathService) Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input UpdatePathInput) (*core.Path, error) {
	path, err := s.pathRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("path", path.StructureID); err != nil {
		return nil, err
	}

	path.Update(input.Name, input.Departure, input.Arrival, input.Comments)
	path.SetStake(input.StakeID)

	if input.Geometry != nil {
		if err := path.SetGeometry(*input.Geometry); err != nil {
			return nil, err
		}
		altimetry, err := ComputeAltimetry(ctx, path.Geometry, s.sampler)
		if err != nil {
			return nil, err
		}
		path.SetAltimetry(altimetry)
	}

	if err := s.pathRepo.Save(ctx, path); err != nil {
		s.logger.Error("Failed to update path", zap.Error(err))
		return nil, err
	}

	if err := s.replaceAssociations(ctx, path, input.NetworkIDs, input.UsageIDs); err != nil {
		return nil, err
	}

	return path, nil
}

// Delete soft-deletes a path
func (s *PathService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	path, err := s.pathRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := actor.CheckSameStructure("path", path.StructureID); err != nil {
		return err
	}
	return s.pathRepo.Delete(ctx, id)
}

// ElevationProfile returns resampled profile points along the path
func (s *PathService) ElevationProfile(ctx context.Context, id uuid.UUID) ([]ProfilePoint, error) {
	path, err := s.pathRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	geom3D := path.Geom3D
	if geom3D.IsZero() {
		// Altimetry was never computed, fall back to a flat profile
		altimetry, err := ComputeAltimetry(ctx, path.Geometry, s.sampler)
		if err != nil {
			return nil, err
		}
		geom3D = altimetry.Geom3D
	}
	return BuildProfile(geom3D, profileMaxPoints), nil
}

// ElevationProfileSVG renders the profile as an SVG chart
func (s *PathService) ElevationProfileSVG(ctx context.Context, id uuid.UUID) (string, error) {
	points, err := s.ElevationProfile(ctx, id)
	if err != nil {
		return "", err
	}
	return RenderProfileSVG(points), nil
}

// ElevationProfilePNG rasterizes the profile chart to a PNG image
func (s *PathService) ElevationProfilePNG(ctx context.Context, id uuid.UUID) ([]byte, error) {
	svg, err := s.ElevationProfileSVG(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.capturer == nil {
		return nil, shared.NewDomainError("CAPTURE_UNAVAILABLE", "Image capture service is not configured")
	}
	return s.capturer.RenderSVG(ctx, []byte(svg), profileWidth, profileHeight)
}

func (s *PathService) replaceAssociations(ctx context.Context, path *core.Path, networkIDs, usageIDs []uuid.UUID) error {
	if networkIDs != nil {
		networks, err := s.networkRepo.FindByIDs(ctx, networkIDs)
		if err != nil {
			return err
		}
		if len(networks) != len(networkIDs) {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown network in assignment")
		}
		if err := s.pathRepo.ReplaceNetworks(ctx, path, networks); err != nil {
			return err
		}
		path.Networks = networks
	}
	if usageIDs != nil {
		usages, err := s.usageRepo.FindByIDs(ctx, usageIDs)
		if err != nil {
			return err
		}
		if len(usages) != len(usageIDs) {
			return shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown usage in assignment")
		}
		if err := s.pathRepo.ReplaceUsages(ctx, path, usages); err != nil {
			return err
		}
		path.Usages = usages
	}
	return nil
}
