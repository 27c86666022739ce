package tourism

import (
	"context"

	"github.com/geotrail/backend/internal/domain/common"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ContentRepository persists touristic contents
type ContentRepository interface {
	shared.StructureRepository[TouristicContent]
	FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]TouristicContent, error)
	FindApproved(ctx context.Context, filter shared.Filter) ([]TouristicContent, error)
	FindNear(ctx context.Context, geom shared.Geometry, distance float64) ([]TouristicContent, error)
	ReplaceThemes(ctx context.Context, content *TouristicContent, themes []common.Theme) error
	ReplaceTypes(ctx context.Context, content *TouristicContent, list int, types []TouristicContentType) error
}

// CategoryRepository persists content categories
type CategoryRepository interface {
	shared.Repository[TouristicContentCategory]
	InUse(ctx context.Context, id uuid.UUID) (bool, error)
}

// ContentTypeRepository persists category type values
type ContentTypeRepository interface {
	shared.Repository[TouristicContentType]
	FindByCategory(ctx context.Context, categoryID uuid.UUID, list int) ([]TouristicContentType, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]TouristicContentType, error)
}

// InformationDeskRepository persists information desks
type InformationDeskRepository interface {
	shared.Repository[InformationDesk]
	FindByType(ctx context.Context, typeID uuid.UUID) ([]InformationDesk, error)
}

// InformationDeskTypeRepository persists desk types
type InformationDeskTypeRepository interface {
	shared.Repository[InformationDeskType]
}
