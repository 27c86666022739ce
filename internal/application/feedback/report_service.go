// Package feedback contains the use-case services for visitor problem
// reports.
package feedback

import (
	"context"

	"github.com/geotrail/backend/internal/application/authz"
	"github.com/geotrail/backend/internal/domain/feedback"
	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/geotrail/backend/internal/domain/trekking"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitInput carries a visitor-submitted report. It arrives from the
// public portal without authentication.
type SubmitInput struct {
	Email              string
	Comment            string
	Geometry           shared.Geometry
	ActivityID         *uuid.UUID
	CategoryID         *uuid.UUID
	ProblemMagnitudeID *uuid.UUID
	RelatedTrekID      *uuid.UUID
}

// ReportService manages visitor reports
type ReportService struct {
	reportRepo feedback.ReportRepository
	trekRepo   trekking.TrekRepository
	// defaultStructureID owns reports submitted from the public portal
	defaultStructureID uuid.UUID
	logger             *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo feedback.ReportRepository,
	trekRepo trekking.TrekRepository,
	defaultStructureID uuid.UUID,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		reportRepo:         reportRepo,
		trekRepo:           trekRepo,
		defaultStructureID: defaultStructureID,
		logger:             logger,
	}
}

// Submit records a public report. When the report names a trek, the
// report is attached to that trek's structure instead of the default.
func (s *ReportService) Submit(ctx context.Context, input SubmitInput) (*feedback.Report, error) {
	structureID := s.defaultStructureID
	if input.RelatedTrekID != nil {
		trek, err := s.trekRepo.FindByID(ctx, *input.RelatedTrekID)
		if err != nil {
			return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "related trek does not exist")
		}
		structureID = trek.StructureID
	}

	report, err := feedback.NewReport(structureID, input.Email, input.Comment, input.Geometry)
	if err != nil {
		return nil, err
	}
	report.Classify(input.ActivityID, input.CategoryID, input.ProblemMagnitudeID)
	report.RelateToTrek(input.RelatedTrekID)

	if err := s.reportRepo.Save(ctx, report); err != nil {
		s.logger.Error("Failed to save report", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Report submitted", zap.String("report_id", report.ID.String()))
	return report, nil
}

// Get returns a report
func (s *ReportService) Get(ctx context.Context, id uuid.UUID) (*feedback.Report, error) {
	return s.reportRepo.FindByID(ctx, id)
}

// List returns a page of reports
func (s *ReportService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[feedback.Report], error) {
	items, err := s.reportRepo.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[feedback.Report]{}, err
	}
	total, err := s.reportRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[feedback.Report]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// ListByStatus returns reports in one status
func (s *ReportService) ListByStatus(ctx context.Context, status feedback.Status, filter shared.Filter) ([]feedback.Report, error) {
	if !status.Valid() {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown report status")
	}
	return s.reportRepo.FindByStatus(ctx, status, filter)
}

// ListForTrek returns reports attached to a trek
func (s *ReportService) ListForTrek(ctx context.Context, trekID uuid.UUID) ([]feedback.Report, error) {
	if _, err := s.trekRepo.FindByID(ctx, trekID); err != nil {
		return nil, err
	}
	return s.reportRepo.FindByTrek(ctx, trekID)
}

// StatusCounts returns the number of reports per status
func (s *ReportService) StatusCounts(ctx context.Context) (map[feedback.Status]int64, error) {
	return s.reportRepo.CountByStatus(ctx)
}

// Assign hands a report to a user and moves new reports to in progress
func (s *ReportService) Assign(ctx context.Context, actor authz.Actor, id, assigneeID uuid.UUID) (*feedback.Report, error) {
	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("report", report.StructureID); err != nil {
		return nil, err
	}
	if err := report.Assign(assigneeID); err != nil {
		return nil, err
	}
	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// Transition moves a report through its workflow
func (s *ReportService) Transition(ctx context.Context, actor authz.Actor, id uuid.UUID, next feedback.Status) (*feedback.Report, error) {
	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.CheckSameStructure("report", report.StructureID); err != nil {
		return nil, err
	}
	if err := report.Transition(next); err != nil {
		return nil, err
	}
	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, err
	}
	s.logger.Info("Report transitioned",
		zap.String("report_id", report.ID.String()),
		zap.String("status", string(next)))
	return report, nil
}

// Delete soft-deletes a report
func (s *ReportService) Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := actor.CheckSameStructure("report", report.StructureID); err != nil {
		return err
	}
	return s.reportRepo.Delete(ctx, id)
}
