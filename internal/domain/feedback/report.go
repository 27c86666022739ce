// Package feedback models visitor problem reports submitted from the
// public portals.
package feedback

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the handling state of a report
type Status string

const (
	StatusNew        Status = "NEW"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusRejected   Status = "REJECTED"
)

// Valid reports whether the status is known
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// Report is a visitor-submitted problem report. The geometry is received
// in WGS84 straight from the portal map.
type Report struct {
	shared.StructureAggregateRoot
	Email              string           `gorm:"type:varchar(254);not null"`
	Comment            string           `gorm:"type:text"`
	ActivityID         *uuid.UUID       `gorm:"type:uuid;index"`
	CategoryID         *uuid.UUID       `gorm:"type:uuid;index"`
	ProblemMagnitudeID *uuid.UUID       `gorm:"type:uuid;index"`
	Status             Status           `gorm:"type:varchar(32);not null;default:'NEW';index"`
	RelatedTrekID      *uuid.UUID       `gorm:"type:uuid;index"`
	Geometry           shared.Geometry  `gorm:"type:geometry(Point,4326)"`
	AssigneeID         *uuid.UUID       `gorm:"type:uuid;index"`
	DeletedAt          gorm.DeletedAt   `gorm:"index"`
}

// TableName returns the database table name
func (Report) TableName() string {
	return "feedback_reports"
}

// NewReport creates a new report in NEW status
func NewReport(structureID uuid.UUID, email, comment string, geom shared.Geometry) (*Report, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "a valid contact email is required")
	}
	if !geom.IsZero() {
		if geom.Type != shared.GeometryPoint {
			return nil, shared.NewDomainError(shared.ErrInvalidGeometry.Code, "report geometry must be a point")
		}
		if geom.SRID != shared.SRIDWGS84 {
			return nil, shared.NewDomainError(shared.ErrInvalidGeometry.Code, "report geometry must be in WGS84")
		}
	}
	r := &Report{
		StructureAggregateRoot: shared.NewStructureAggregateRoot(structureID),
		Email:                  email,
		Comment:                comment,
		Status:                 StatusNew,
		Geometry:               geom,
	}
	r.AddDomainEvent(NewReportCreatedEvent(r))
	return r, nil
}

// Classify sets activity, category and magnitude
func (r *Report) Classify(activityID, categoryID, magnitudeID *uuid.UUID) {
	r.ActivityID = activityID
	r.CategoryID = categoryID
	r.ProblemMagnitudeID = magnitudeID
	r.touch()
}

// RelateToTrek links the report to a trek
func (r *Report) RelateToTrek(trekID *uuid.UUID) {
	r.RelatedTrekID = trekID
	r.touch()
}

// Assign hands the report to a user
func (r *Report) Assign(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "assignee is required")
	}
	r.AssigneeID = &userID
	if r.Status == StatusNew {
		r.Status = StatusInProgress
	}
	r.touch()
	return nil
}

// Transition moves the report through its workflow
func (r *Report) Transition(next Status) error {
	if !next.Valid() {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "unknown report status")
	}
	switch r.Status {
	case StatusNew:
		if next != StatusInProgress && next != StatusRejected {
			return shared.NewDomainError(shared.ErrInvalidState.Code, "new reports can only move to in progress or rejected")
		}
	case StatusInProgress:
		if next != StatusResolved && next != StatusRejected {
			return shared.NewDomainError(shared.ErrInvalidState.Code, "in-progress reports can only move to resolved or rejected")
		}
	default:
		return shared.NewDomainError(shared.ErrInvalidState.Code, "report is already closed")
	}
	r.Status = next
	r.touch()
	return nil
}

func (r *Report) touch() {
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// ReportActivity is the activity the visitor was doing
type ReportActivity struct {
	shared.BaseAggregateRoot
	Label string `gorm:"type:varchar(128);not null;uniqueIndex"`
}

// TableName returns the database table name
func (ReportActivity) TableName() string {
	return "feedback_activities"
}

// ReportCategory classifies the problem reported
type ReportCategory struct {
	shared.BaseAggregateRoot
	Label string `gorm:"type:varchar(128);not null;uniqueIndex"`
}

// TableName returns the database table name
func (ReportCategory) TableName() string {
	return "feedback_categories"
}

// ReportProblemMagnitude rates the severity of the problem
type ReportProblemMagnitude struct {
	shared.BaseAggregateRoot
	Label string `gorm:"type:varchar(128);not null;uniqueIndex"`
	Rank  int    `gorm:"not null;default:0"`
}

// TableName returns the database table name
func (ReportProblemMagnitude) TableName() string {
	return "feedback_problem_magnitudes"
}
