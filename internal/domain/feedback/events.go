package feedback

import (
	"github.com/geotrail/backend/internal/domain/shared"
)

// Event types emitted by the feedback context
const (
	EventReportCreated = "feedback.report.created"
)

// ReportCreatedEvent notifies managers of a new visitor report
type ReportCreatedEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
}

// NewReportCreatedEvent creates a new report created event
func NewReportCreatedEvent(r *Report) *ReportCreatedEvent {
	return &ReportCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventReportCreated, "Report", r.ID, r.StructureID),
		Email:           r.Email,
	}
}
