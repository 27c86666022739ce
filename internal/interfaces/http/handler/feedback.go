package handler

import (
	feedbackapp "github.com/geotrail/backend/internal/application/feedback"
	"github.com/geotrail/backend/internal/domain/feedback"
	"github.com/geotrail/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FeedbackHandler handles visitor problem reports
type FeedbackHandler struct {
	BaseHandler
	reportService *feedbackapp.ReportService
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(reportService *feedbackapp.ReportService) *FeedbackHandler {
	return &FeedbackHandler{reportService: reportService}
}

// SubmitReportRequest carries an anonymous visitor report
type SubmitReportRequest struct {
	Email              string             `json:"email" binding:"required,email"`
	Comment            string             `json:"comment" binding:"required,min=1"`
	Geometry           *dto.GeometryInput `json:"geometry" binding:"required"`
	ActivityID         *string            `json:"activity_id" binding:"omitempty,uuid"`
	CategoryID         *string            `json:"category_id" binding:"omitempty,uuid"`
	ProblemMagnitudeID *string            `json:"problem_magnitude_id" binding:"omitempty,uuid"`
	RelatedTrekID      *string            `json:"related_trek_id" binding:"omitempty,uuid"`
}

// AssignReportRequest names the user taking charge of a report
type AssignReportRequest struct {
	AssigneeID string `json:"assignee_id" binding:"required,uuid"`
}

// TransitionReportRequest carries the next workflow status
type TransitionReportRequest struct {
	Status string `json:"status" binding:"required,oneof=NEW IN_PROGRESS RESOLVED REJECTED"`
}

// SubmitReport godoc
// @Summary      Submit a problem report
// @Description  Record a report from the public portal, no authentication required
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        request body SubmitReportRequest true "Report payload"
// @Success      201 {object} dto.Response{data=feedback.Report}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /feedback/reports [post]
func (h *FeedbackHandler) SubmitReport(c *gin.Context) {
	var req SubmitReportRequest
	if !h.bindJSON(c, &req) {
		return
	}
	geom, err := req.Geometry.ToGeometry()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	activityID, ok := h.optionalUUID(c, req.ActivityID, "activity_id")
	if !ok {
		return
	}
	categoryID, ok := h.optionalUUID(c, req.CategoryID, "category_id")
	if !ok {
		return
	}
	magnitudeID, ok := h.optionalUUID(c, req.ProblemMagnitudeID, "problem_magnitude_id")
	if !ok {
		return
	}
	relatedTrekID, ok := h.optionalUUID(c, req.RelatedTrekID, "related_trek_id")
	if !ok {
		return
	}

	report, err := h.reportService.Submit(c.Request.Context(), feedbackapp.SubmitInput{
		Email:              req.Email,
		Comment:            req.Comment,
		Geometry:           geom,
		ActivityID:         activityID,
		CategoryID:         categoryID,
		ProblemMagnitudeID: magnitudeID,
		RelatedTrekID:      relatedTrekID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, report)
}

// GetReport godoc
// @Summary      Get a report
// @Tags         feedback
// @Produce      json
// @Param        id path string true "Report ID"
// @Success      200 {object} dto.Response{data=feedback.Report}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /feedback/reports/{id} [get]
func (h *FeedbackHandler) GetReport(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	report, err := h.reportService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// ListReports godoc
// @Summary      List reports
// @Tags         feedback
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        status query string false "Filter by status" Enums(NEW,IN_PROGRESS,RESOLVED,REJECTED)
// @Param        trek_id query string false "Only reports attached to this trek"
// @Success      200 {object} dto.Response{data=[]feedback.Report}
// @Security     BearerAuth
// @Router       /feedback/reports [get]
func (h *FeedbackHandler) ListReports(c *gin.Context) {
	// the submit endpoint shares this path unauthenticated, reading stays restricted
	if _, ok := h.getActor(c); !ok {
		return
	}
	if raw := c.Query("trek_id"); raw != "" {
		trekID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid trek_id format")
			return
		}
		reports, err := h.reportService.ListForTrek(c.Request.Context(), trekID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, reports)
		return
	}
	if raw := c.Query("status"); raw != "" {
		status := feedback.Status(raw)
		if !status.Valid() {
			h.BadRequest(c, "Unknown report status")
			return
		}
		reports, err := h.reportService.ListByStatus(c.Request.Context(), status, filterFromQuery(c))
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, reports)
		return
	}

	page, err := h.reportService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// ReportStatusCounts godoc
// @Summary      Count reports per status
// @Tags         feedback
// @Produce      json
// @Success      200 {object} dto.Response{data=map[string]int64}
// @Security     BearerAuth
// @Router       /feedback/reports/status-counts [get]
func (h *FeedbackHandler) ReportStatusCounts(c *gin.Context) {
	counts, err := h.reportService.StatusCounts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, counts)
}

// AssignReport godoc
// @Summary      Assign a report
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        id path string true "Report ID"
// @Param        request body AssignReportRequest true "Assignee"
// @Success      200 {object} dto.Response{data=feedback.Report}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /feedback/reports/{id}/assign [post]
func (h *FeedbackHandler) AssignReport(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req AssignReportRequest
	if !h.bindJSON(c, &req) {
		return
	}
	assigneeID, err := uuid.Parse(req.AssigneeID)
	if err != nil {
		h.BadRequest(c, "Invalid assignee_id format")
		return
	}

	report, err := h.reportService.Assign(c.Request.Context(), actor, id, assigneeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// TransitionReport godoc
// @Summary      Move a report through its workflow
// @Description  Advance the report to the requested status
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        id path string true "Report ID"
// @Param        request body TransitionReportRequest true "Next status"
// @Success      200 {object} dto.Response{data=feedback.Report}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /feedback/reports/{id}/transition [post]
func (h *FeedbackHandler) TransitionReport(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req TransitionReportRequest
	if !h.bindJSON(c, &req) {
		return
	}

	report, err := h.reportService.Transition(c.Request.Context(), actor, id, feedback.Status(req.Status))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// DeleteReport godoc
// @Summary      Delete a report
// @Tags         feedback
// @Produce      json
// @Param        id path string true "Report ID"
// @Success      204
// @Security     BearerAuth
// @Router       /feedback/reports/{id} [delete]
func (h *FeedbackHandler) DeleteReport(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.reportService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
