package handler

import (
	"context"
	"errors"
	"time"

	"github.com/geotrail/backend/internal/application/authz"
	maintapp "github.com/geotrail/backend/internal/application/maintenance"
	"github.com/geotrail/backend/internal/domain/maintenance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errInvalidTarget = errors.New("invalid intervention target")

// MaintenanceHandler handles field interventions
type MaintenanceHandler struct {
	BaseHandler
	interventionService *maintapp.InterventionService
}

// NewMaintenanceHandler creates a new MaintenanceHandler
func NewMaintenanceHandler(interventionService *maintapp.InterventionService) *MaintenanceHandler {
	return &MaintenanceHandler{interventionService: interventionService}
}

// CreateInterventionRequest carries the fields for planning an intervention
type CreateInterventionRequest struct {
	Name           string   `json:"name" binding:"required,min=1,max=250" example:"Remplacement lame direction"`
	TargetKind     string   `json:"target_kind" binding:"required,oneof=SIGNAGE BLADE INFRASTRUCTURE"`
	TargetID       string   `json:"target_id" binding:"required,uuid"`
	Description    string   `json:"description"`
	Width          *float64 `json:"width" binding:"omitempty,min=0"`
	Height         *float64 `json:"height" binding:"omitempty,min=0"`
	MaterialCost   float64  `json:"material_cost" binding:"omitempty,min=0"`
	HeliportCost   float64  `json:"heliport_cost" binding:"omitempty,min=0"`
	ContractorCost float64  `json:"contractor_cost" binding:"omitempty,min=0"`
	ManDays        float64  `json:"man_days" binding:"omitempty,min=0"`
}

// UpdateInterventionRequest carries the editable intervention fields
type UpdateInterventionRequest struct {
	Name           string   `json:"name" binding:"required,min=1,max=250"`
	Description    string   `json:"description"`
	Width          *float64 `json:"width" binding:"omitempty,min=0"`
	Height         *float64 `json:"height" binding:"omitempty,min=0"`
	MaterialCost   float64  `json:"material_cost" binding:"omitempty,min=0"`
	HeliportCost   float64  `json:"heliport_cost" binding:"omitempty,min=0"`
	ContractorCost float64  `json:"contractor_cost" binding:"omitempty,min=0"`
	ManDays        float64  `json:"man_days" binding:"omitempty,min=0"`
}

// InterventionDateRequest carries an optional transition date
type InterventionDateRequest struct {
	Date *time.Time `json:"date"`
}

func targetFromQuery(c *gin.Context) (maintenance.TargetKind, uuid.UUID, bool, error) {
	rawKind := c.Query("target_kind")
	rawID := c.Query("target_id")
	if rawKind == "" && rawID == "" {
		return "", uuid.Nil, false, nil
	}
	kind := maintenance.TargetKind(rawKind)
	if !kind.Valid() {
		return "", uuid.Nil, false, errInvalidTarget
	}
	targetID, err := uuid.Parse(rawID)
	if err != nil {
		return "", uuid.Nil, false, errInvalidTarget
	}
	return kind, targetID, true, nil
}

// CreateIntervention godoc
// @Summary      Plan an intervention
// @Description  Plan work on a signpost, blade or infrastructure
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        request body CreateInterventionRequest true "Intervention payload"
// @Success      201 {object} dto.Response{data=maintenance.Intervention}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /maintenance/interventions [post]
func (h *MaintenanceHandler) CreateIntervention(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	var req CreateInterventionRequest
	if !h.bindJSON(c, &req) {
		return
	}
	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		h.BadRequest(c, "Invalid target_id format")
		return
	}

	intervention, err := h.interventionService.Create(c.Request.Context(), actor, maintapp.CreateInput{
		Name:           req.Name,
		TargetKind:     maintenance.TargetKind(req.TargetKind),
		TargetID:       targetID,
		Description:    req.Description,
		Width:          req.Width,
		Height:         req.Height,
		MaterialCost:   decimal.NewFromFloat(req.MaterialCost),
		HeliportCost:   decimal.NewFromFloat(req.HeliportCost),
		ContractorCost: decimal.NewFromFloat(req.ContractorCost),
		ManDays:        decimal.NewFromFloat(req.ManDays),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, intervention)
}

// GetIntervention godoc
// @Summary      Get an intervention
// @Tags         maintenance
// @Produce      json
// @Param        id path string true "Intervention ID"
// @Success      200 {object} dto.Response{data=maintenance.Intervention}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /maintenance/interventions/{id} [get]
func (h *MaintenanceHandler) GetIntervention(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	intervention, err := h.interventionService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, intervention)
}

// ListInterventions godoc
// @Summary      List interventions
// @Tags         maintenance
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        target_kind query string false "Filter by target kind" Enums(SIGNAGE,BLADE,INFRASTRUCTURE)
// @Param        target_id query string false "Filter by target object"
// @Success      200 {object} dto.Response{data=[]maintenance.Intervention}
// @Security     BearerAuth
// @Router       /maintenance/interventions [get]
func (h *MaintenanceHandler) ListInterventions(c *gin.Context) {
	kind, targetID, scoped, err := targetFromQuery(c)
	if err != nil {
		h.BadRequest(c, "Invalid target_kind or target_id")
		return
	}
	if scoped {
		interventions, err := h.interventionService.ListForTarget(c.Request.Context(), kind, targetID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, interventions)
		return
	}

	page, err := h.interventionService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// InterventionCosts godoc
// @Summary      Summarize intervention costs for a target
// @Description  Total the recorded costs of all interventions on one object
// @Tags         maintenance
// @Produce      json
// @Param        target_kind query string true "Target kind" Enums(SIGNAGE,BLADE,INFRASTRUCTURE)
// @Param        target_id query string true "Target object ID"
// @Success      200 {object} dto.Response{data=maintenance.CostSummary}
// @Security     BearerAuth
// @Router       /maintenance/interventions/costs [get]
func (h *MaintenanceHandler) InterventionCosts(c *gin.Context) {
	kind, targetID, scoped, err := targetFromQuery(c)
	if err != nil || !scoped {
		h.BadRequest(c, "Invalid target_kind or target_id")
		return
	}

	summary, err := h.interventionService.SummarizeCosts(c.Request.Context(), kind, targetID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// UpdateIntervention godoc
// @Summary      Update an intervention
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        id path string true "Intervention ID"
// @Param        request body UpdateInterventionRequest true "Intervention payload"
// @Success      200 {object} dto.Response{data=maintenance.Intervention}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /maintenance/interventions/{id} [put]
func (h *MaintenanceHandler) UpdateIntervention(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req UpdateInterventionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	intervention, err := h.interventionService.Update(c.Request.Context(), actor, id, maintapp.UpdateInput{
		Name:           req.Name,
		Description:    req.Description,
		Width:          req.Width,
		Height:         req.Height,
		MaterialCost:   decimal.NewFromFloat(req.MaterialCost),
		HeliportCost:   decimal.NewFromFloat(req.HeliportCost),
		ContractorCost: decimal.NewFromFloat(req.ContractorCost),
		ManDays:        decimal.NewFromFloat(req.ManDays),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, intervention)
}

// StartIntervention godoc
// @Summary      Start an intervention
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        id path string true "Intervention ID"
// @Param        request body InterventionDateRequest false "Start date, defaults to now"
// @Success      200 {object} dto.Response{data=maintenance.Intervention}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /maintenance/interventions/{id}/start [post]
func (h *MaintenanceHandler) StartIntervention(c *gin.Context) {
	h.transitionIntervention(c, h.interventionService.Start)
}

// FinishIntervention godoc
// @Summary      Finish an intervention
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        id path string true "Intervention ID"
// @Param        request body InterventionDateRequest false "Completion date, defaults to now"
// @Success      200 {object} dto.Response{data=maintenance.Intervention}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /maintenance/interventions/{id}/finish [post]
func (h *MaintenanceHandler) FinishIntervention(c *gin.Context) {
	h.transitionIntervention(c, h.interventionService.Finish)
}

// DeleteIntervention godoc
// @Summary      Delete an intervention
// @Tags         maintenance
// @Produce      json
// @Param        id path string true "Intervention ID"
// @Success      204
// @Security     BearerAuth
// @Router       /maintenance/interventions/{id} [delete]
func (h *MaintenanceHandler) DeleteIntervention(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.interventionService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *MaintenanceHandler) transitionIntervention(
	c *gin.Context,
	step func(context.Context, authz.Actor, uuid.UUID, time.Time) (*maintenance.Intervention, error),
) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req InterventionDateRequest
	if c.Request.ContentLength > 0 && !h.bindJSON(c, &req) {
		return
	}
	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	intervention, err := step(c.Request.Context(), actor, id, date)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, intervention)
}
