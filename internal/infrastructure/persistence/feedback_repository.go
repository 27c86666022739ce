package persistence

import (
	"context"

	"github.com/geotrail/backend/internal/domain/feedback"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReportRepository implements feedback.ReportRepository using GORM
type GormReportRepository struct {
	*GormStructureScopedRepository[feedback.Report]
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{
		GormStructureScopedRepository: NewGormStructureScopedRepository[feedback.Report](
			db,
			[]string{"email", "comment"},
			"created_at DESC",
			map[string]string{
				"status":      "status",
				"activity_id": "activity_id",
				"category_id": "category_id",
			},
		),
		db: db,
	}
}

// FindByStatus finds reports in a given workflow status
func (r *GormReportRepository) FindByStatus(ctx context.Context, status feedback.Status, filter shared.Filter) ([]feedback.Report, error) {
	var reports []feedback.Report
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&feedback.Report{}).Where("status = ?", status),
		filter,
	)
	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// FindByTrek finds reports related to a trek
func (r *GormReportRepository) FindByTrek(ctx context.Context, trekID uuid.UUID) ([]feedback.Report, error) {
	var reports []feedback.Report
	if err := r.db.WithContext(ctx).
		Where("related_trek_id = ?", trekID).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// CountByStatus counts reports grouped by workflow status
func (r *GormReportRepository) CountByStatus(ctx context.Context) (map[feedback.Status]int64, error) {
	var rows []struct {
		Status feedback.Status
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&feedback.Report{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[feedback.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// GormReportActivityRepository implements feedback.ActivityRepository using GORM
type GormReportActivityRepository struct {
	*GormLookupRepository[feedback.ReportActivity]
}

// NewGormReportActivityRepository creates a new GormReportActivityRepository
func NewGormReportActivityRepository(db *gorm.DB) *GormReportActivityRepository {
	return &GormReportActivityRepository{
		GormLookupRepository: NewGormLookupRepository[feedback.ReportActivity](db, []string{"label"}, "label ASC"),
	}
}

// GormReportCategoryRepository implements feedback.CategoryRepository using GORM
type GormReportCategoryRepository struct {
	*GormLookupRepository[feedback.ReportCategory]
}

// NewGormReportCategoryRepository creates a new GormReportCategoryRepository
func NewGormReportCategoryRepository(db *gorm.DB) *GormReportCategoryRepository {
	return &GormReportCategoryRepository{
		GormLookupRepository: NewGormLookupRepository[feedback.ReportCategory](db, []string{"label"}, "label ASC"),
	}
}

// GormReportProblemMagnitudeRepository implements feedback.ProblemMagnitudeRepository using GORM
type GormReportProblemMagnitudeRepository struct {
	*GormLookupRepository[feedback.ReportProblemMagnitude]
}

// NewGormReportProblemMagnitudeRepository creates a new GormReportProblemMagnitudeRepository
func NewGormReportProblemMagnitudeRepository(db *gorm.DB) *GormReportProblemMagnitudeRepository {
	return &GormReportProblemMagnitudeRepository{
		GormLookupRepository: NewGormLookupRepository[feedback.ReportProblemMagnitude](db, []string{"label"}, "label ASC"),
	}
}

var (
	_ feedback.ReportRepository           = (*GormReportRepository)(nil)
	_ feedback.ActivityRepository         = (*GormReportActivityRepository)(nil)
	_ feedback.CategoryRepository         = (*GormReportCategoryRepository)(nil)
	_ feedback.ProblemMagnitudeRepository = (*GormReportProblemMagnitudeRepository)(nil)
)
