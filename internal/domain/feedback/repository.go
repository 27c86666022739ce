package feedback

import (
	"context"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReportRepository persists visitor reports
type ReportRepository interface {
	shared.StructureRepository[Report]
	FindByStatus(ctx context.Context, status Status, filter shared.Filter) ([]Report, error)
	FindByTrek(ctx context.Context, trekID uuid.UUID) ([]Report, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}

// ActivityRepository persists report activities
type ActivityRepository interface {
	shared.Repository[ReportActivity]
}

// CategoryRepository persists report categories
type CategoryRepository interface {
	shared.Repository[ReportCategory]
}

// ProblemMagnitudeRepository persists problem magnitudes
type ProblemMagnitudeRepository interface {
	shared.Repository[ReportProblemMagnitude]
}
