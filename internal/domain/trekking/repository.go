package trekking

import (
	"context"

	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TrekRepository persists treks and their relations
type TrekRepository interface {
	shared.StructureRepository[Trek]
	FindPublished(ctx context.Context) ([]Trek, error)
	FindByEID(ctx context.Context, eid string) (*Trek, error)

	ReplaceThemes(ctx context.Context, trek *Trek, themes []common.Theme) error
	ReplaceNetworks(ctx context.Context, trek *Trek, networks []TrekNetwork) error
	ReplaceAccessibilities(ctx context.Context, trek *Trek, accessibilities []Accessibility) error
	ReplaceWebLinks(ctx context.Context, trek *Trek, links []WebLink) error

	// Parent/child ordering
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]OrderedTrekChild, error)
	FindParents(ctx context.Context, childID uuid.UUID) ([]OrderedTrekChild, error)
	ReplaceChildren(ctx context.Context, parentID uuid.UUID, orderedChildIDs []uuid.UUID) error

	// Symmetric relationships
	FindRelationships(ctx context.Context, trekID uuid.UUID) ([]TrekRelationship, error)
	SaveRelationship(ctx context.Context, rel *TrekRelationship) error
	DeleteRelationship(ctx context.Context, id uuid.UUID) error
}

// POIRepository persists points of interest
type POIRepository interface {
	shared.StructureRepository[POI]
	// FindNear returns POIs within distance meters of the given geometry
	FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]POI, error)
	CountByType(ctx context.Context, typeID uuid.UUID) (int64, error)
}

// ServiceRepository persists service points
type ServiceRepository interface {
	shared.StructureRepository[Service]
	FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]Service, error)
	CountByType(ctx context.Context, typeID uuid.UUID) (int64, error)
}

// PracticeRepository persists practices
type PracticeRepository interface {
	shared.Repository[Practice]
	FindByName(ctx context.Context, name string) (*Practice, error)
	InUse(ctx context.Context, id uuid.UUID) (bool, error)
}

// DifficultyLevelRepository persists difficulty levels
type DifficultyLevelRepository interface {
	shared.Repository[DifficultyLevel]
	ExistsByRank(ctx context.Context, rank int) (bool, error)
	InUse(ctx context.Context, id uuid.UUID) (bool, error)
}

// RouteRepository persists route shapes
type RouteRepository interface {
	shared.Repository[Route]
}

// AccessibilityRepository persists accessibility labels
type AccessibilityRepository interface {
	shared.Repository[Accessibility]
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Accessibility, error)
}

// TrekNetworkRepository persists trek network labels
type TrekNetworkRepository interface {
	shared.Repository[TrekNetwork]
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]TrekNetwork, error)
}

// WebLinkRepository persists web links and their categories
type WebLinkRepository interface {
	shared.Repository[WebLink]
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]WebLink, error)
}

// POITypeRepository persists POI types
type POITypeRepository interface {
	shared.Repository[POIType]
}

// ServiceTypeRepository persists service types
type ServiceTypeRepository interface {
	shared.Repository[ServiceType]
	ReplacePractices(ctx context.Context, st *ServiceType, practices []Practice) error
}
