package handler

import (
	signapp "github.com/geotrail/backend/internal/application/signage"
	"github.com/geotrail/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SignageHandler handles signposts, their blades and exports
type SignageHandler struct {
	BaseHandler
	signageService *signapp.SignageService
	bladeService   *signapp.BladeService
	exportService  *signapp.ExportService
}

// NewSignageHandler creates a new SignageHandler
func NewSignageHandler(
	signageService *signapp.SignageService,
	bladeService *signapp.BladeService,
	exportService *signapp.ExportService,
) *SignageHandler {
	return &SignageHandler{
		signageService: signageService,
		bladeService:   bladeService,
		exportService:  exportService,
	}
}

// SignageRequest carries the fields for planting or updating a signpost
type SignageRequest struct {
	Name             string             `json:"name" binding:"required,min=1,max=250" example:"Col de Furfande"`
	Code             string             `json:"code" binding:"max=250"`
	Description      string             `json:"description"`
	Geometry         *dto.GeometryInput `json:"geometry"`
	TypeID           *string            `json:"type_id" binding:"omitempty,uuid"`
	ConditionID      *string            `json:"condition_id" binding:"omitempty,uuid"`
	SealingID        *string            `json:"sealing_id" binding:"omitempty,uuid"`
	ManagerID        *string            `json:"manager_id" binding:"omitempty,uuid"`
	ImplantationYear *int               `json:"implantation_year" binding:"omitempty,min=1900,max=2100"`
	PrintedElevation *int               `json:"printed_elevation"`
	EID              string             `json:"eid" binding:"max=128"`
}

// BladeLineRequest is one row of a blade
type BladeLineRequest struct {
	Number    int      `json:"number" binding:"min=1"`
	Text      string   `json:"text" binding:"required,max=250"`
	Distance  *float64 `json:"distance" binding:"omitempty,min=0"`
	Time      *float64 `json:"time" binding:"omitempty,min=0"`
	Pictogram string   `json:"pictogram" binding:"max=512"`
}

// BladeRequest carries the fields for mounting or updating a blade
type BladeRequest struct {
	Number      string             `json:"number" binding:"required,min=1,max=50"`
	TypeID      *string            `json:"type_id" binding:"omitempty,uuid"`
	ColorID     *string            `json:"color_id" binding:"omitempty,uuid"`
	DirectionID *string            `json:"direction_id" binding:"omitempty,uuid"`
	ConditionID *string            `json:"condition_id" binding:"omitempty,uuid"`
	Lines       []BladeLineRequest `json:"lines" binding:"omitempty,dive"`
}

// ReplaceLinesRequest carries the full replacement set of blade lines
type ReplaceLinesRequest struct {
	Lines []BladeLineRequest `json:"lines" binding:"required,dive"`
}

func lineInputs(reqs []BladeLineRequest) []signapp.LineInput {
	lines := make([]signapp.LineInput, 0, len(reqs))
	for _, l := range reqs {
		input := signapp.LineInput{
			Number:    l.Number,
			Text:      l.Text,
			Pictogram: l.Pictogram,
		}
		if l.Distance != nil {
			d := decimal.NewFromFloat(*l.Distance)
			input.Distance = &d
		}
		if l.Time != nil {
			t := decimal.NewFromFloat(*l.Time)
			input.Time = &t
		}
		lines = append(lines, input)
	}
	return lines
}

// CreateSignage godoc
// @Summary      Plant a signpost
// @Tags         signage
// @Accept       json
// @Produce      json
// @Param        request body SignageRequest true "Signage payload"
// @Success      201 {object} dto.Response{data=signage.Signage}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /signage/signages [post]
func (h *SignageHandler) CreateSignage(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	var req SignageRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.Geometry == nil {
		h.BadRequest(c, "Geometry is required")
		return
	}
	geom, err := req.Geometry.ToGeometry()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	typeID, ok := h.optionalUUID(c, req.TypeID, "type_id")
	if !ok {
		return
	}
	conditionID, ok := h.optionalUUID(c, req.ConditionID, "condition_id")
	if !ok {
		return
	}
	sealingID, ok := h.optionalUUID(c, req.SealingID, "sealing_id")
	if !ok {
		return
	}
	managerID, ok := h.optionalUUID(c, req.ManagerID, "manager_id")
	if !ok {
		return
	}

	result, err := h.signageService.Create(c.Request.Context(), actor, signapp.CreateSignageInput{
		Name:             req.Name,
		Code:             req.Code,
		Description:      req.Description,
		Geometry:         geom,
		TypeID:           typeID,
		ConditionID:      conditionID,
		SealingID:        sealingID,
		ManagerID:        managerID,
		ImplantationYear: req.ImplantationYear,
		PrintedElevation: req.PrintedElevation,
		EID:              req.EID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// GetSignage godoc
// @Summary      Get a signpost
// @Tags         signage
// @Produce      json
// @Param        id path string true "Signage ID"
// @Success      200 {object} dto.Response{data=signage.Signage}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /signage/signages/{id} [get]
func (h *SignageHandler) GetSignage(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	result, err := h.signageService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListSignages godoc
// @Summary      List signposts
// @Tags         signage
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Name search"
// @Success      200 {object} dto.Response{data=[]signage.Signage}
// @Security     BearerAuth
// @Router       /signage/signages [get]
func (h *SignageHandler) ListSignages(c *gin.Context) {
	page, err := h.signageService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// UpdateSignage godoc
// @Summary      Update a signpost
// @Tags         signage
// @Accept       json
// @Produce      json
// @Param        id path string true "Signage ID"
// @Param        request body SignageRequest true "Signage payload"
// @Success      200 {object} dto.Response{data=signage.Signage}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /signage/signages/{id} [put]
func (h *SignageHandler) UpdateSignage(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req SignageRequest
	if !h.bindJSON(c, &req) {
		return
	}
	typeID, ok := h.optionalUUID(c, req.TypeID, "type_id")
	if !ok {
		return
	}
	conditionID, ok := h.optionalUUID(c, req.ConditionID, "condition_id")
	if !ok {
		return
	}
	sealingID, ok := h.optionalUUID(c, req.SealingID, "sealing_id")
	if !ok {
		return
	}
	managerID, ok := h.optionalUUID(c, req.ManagerID, "manager_id")
	if !ok {
		return
	}
	input := signapp.UpdateSignageInput{
		Name:             req.Name,
		Code:             req.Code,
		Description:      req.Description,
		TypeID:           typeID,
		ConditionID:      conditionID,
		SealingID:        sealingID,
		ManagerID:        managerID,
		ImplantationYear: req.ImplantationYear,
		PrintedElevation: req.PrintedElevation,
	}
	if req.Geometry != nil {
		geom, err := req.Geometry.ToGeometry()
		if err != nil {
			h.HandleError(c, err)
			return
		}
		input.Geometry = &geom
	}

	result, err := h.signageService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// DeleteSignage godoc
// @Summary      Delete a signpost
// @Tags         signage
// @Produce      json
// @Param        id path string true "Signage ID"
// @Success      204
// @Security     BearerAuth
// @Router       /signage/signages/{id} [delete]
func (h *SignageHandler) DeleteSignage(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.signageService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// PublishSignage godoc
// @Summary      Publish a signpost
// @Tags         signage
// @Produce      json
// @Param        id path string true "Signage ID"
// @Success      200 {object} dto.Response{data=signage.Signage}
// @Security     BearerAuth
// @Router       /signage/signages/{id}/publish [post]
func (h *SignageHandler) PublishSignage(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	result, err := h.signageService.Publish(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// UnpublishSignage godoc
// @Summary      Unpublish a signpost
// @Tags         signage
// @Produce      json
// @Param        id path string true "Signage ID"
// @Success      200 {object} dto.Response{data=signage.Signage}
// @Security     BearerAuth
// @Router       /signage/signages/{id}/unpublish [post]
func (h *SignageHandler) UnpublishSignage(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	result, err := h.signageService.Unpublish(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// CreateBlade godoc
// @Summary      Mount a blade on a signpost
// @Tags         signage
// @Accept       json
// @Produce      json
// @Param        id path string true "Signage ID"
// @Param        request body BladeRequest true "Blade payload"
// @Success      201 {object} dto.Response{data=signage.Blade}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /signage/signages/{id}/blades [post]
func (h *SignageHandler) CreateBlade(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	signageID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req BladeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	typeID, ok := h.optionalUUID(c, req.TypeID, "type_id")
	if !ok {
		return
	}
	colorID, ok := h.optionalUUID(c, req.ColorID, "color_id")
	if !ok {
		return
	}
	directionID, ok := h.optionalUUID(c, req.DirectionID, "direction_id")
	if !ok {
		return
	}
	conditionID, ok := h.optionalUUID(c, req.ConditionID, "condition_id")
	if !ok {
		return
	}

	blade, err := h.bladeService.Create(c.Request.Context(), actor, signageID, signapp.CreateBladeInput{
		Number:      req.Number,
		TypeID:      typeID,
		ColorID:     colorID,
		DirectionID: directionID,
		ConditionID: conditionID,
		Lines:       lineInputs(req.Lines),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, blade)
}

// GetBlade godoc
// @Summary      Get a blade
// @Tags         signage
// @Produce      json
// @Param        id path string true "Blade ID"
// @Success      200 {object} dto.Response{data=signage.Blade}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /signage/blades/{id} [get]
func (h *SignageHandler) GetBlade(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	blade, err := h.bladeService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, blade)
}

// ListBlades godoc
// @Summary      List the blades of a signpost
// @Tags         signage
// @Produce      json
// @Param        id path string true "Signage ID"
// @Success      200 {object} dto.Response{data=[]signage.Blade}
// @Security     BearerAuth
// @Router       /signage/signages/{id}/blades [get]
func (h *SignageHandler) ListBlades(c *gin.Context) {
	signageID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	blades, err := h.bladeService.ListForSignage(c.Request.Context(), signageID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, blades)
}

// UpdateBlade godoc
// @Summary      Update a blade
// @Tags         signage
// @Accept       json
// @Produce      json
// @Param        id path string true "Blade ID"
// @Param        request body BladeRequest true "Blade payload"
// @Success      200 {object} dto.Response{data=signage.Blade}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /signage/blades/{id} [put]
func (h *SignageHandler) UpdateBlade(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req BladeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	typeID, ok := h.optionalUUID(c, req.TypeID, "type_id")
	if !ok {
		return
	}
	colorID, ok := h.optionalUUID(c, req.ColorID, "color_id")
	if !ok {
		return
	}
	directionID, ok := h.optionalUUID(c, req.DirectionID, "direction_id")
	if !ok {
		return
	}
	conditionID, ok := h.optionalUUID(c, req.ConditionID, "condition_id")
	if !ok {
		return
	}

	blade, err := h.bladeService.Update(c.Request.Context(), actor, id, signapp.UpdateBladeInput{
		Number:      req.Number,
		TypeID:      typeID,
		ColorID:     colorID,
		DirectionID: directionID,
		ConditionID: conditionID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, blade)
}

// ReplaceBladeLines godoc
// @Summary      Replace the lines of a blade
// @Tags         signage
// @Accept       json
// @Produce      json
// @Param        id path string true "Blade ID"
// @Param        request body ReplaceLinesRequest true "Line set"
// @Success      200 {object} dto.Response{data=signage.Blade}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /signage/blades/{id}/lines [put]
func (h *SignageHandler) ReplaceBladeLines(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req ReplaceLinesRequest
	if !h.bindJSON(c, &req) {
		return
	}

	blade, err := h.bladeService.ReplaceLines(c.Request.Context(), actor, id, lineInputs(req.Lines))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, blade)
}

// DeleteBlade godoc
// @Summary      Dismount a blade
// @Tags         signage
// @Produce      json
// @Param        id path string true "Blade ID"
// @Success      204
// @Security     BearerAuth
// @Router       /signage/blades/{id} [delete]
func (h *SignageHandler) DeleteBlade(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.bladeService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ExportSignages godoc
// @Summary      Export signposts
// @Description  Generate a CSV or XLSX export and return its download URL
// @Tags         signage
// @Produce      json
// @Param        format query string false "Export format" Enums(csv,xlsx) default(csv)
// @Success      200 {object} dto.Response{data=signapp.ExportResult}
// @Security     BearerAuth
// @Router       /signage/signages/export [get]
func (h *SignageHandler) ExportSignages(c *gin.Context) {
	filter := filterFromQuery(c)

	var (
		result *signapp.ExportResult
		err    error
	)
	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		result, err = h.exportService.ExportSignagesXLSX(c.Request.Context(), filter)
	case "csv":
		result, err = h.exportService.ExportSignagesCSV(c.Request.Context(), filter)
	default:
		h.BadRequest(c, "Unsupported export format")
		return
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ExportBlades godoc
// @Summary      Export blades
// @Description  Generate a CSV or XLSX export and return its download URL
// @Tags         signage
// @Produce      json
// @Param        format query string false "Export format" Enums(csv,xlsx) default(csv)
// @Success      200 {object} dto.Response{data=signapp.ExportResult}
// @Security     BearerAuth
// @Router       /signage/blades/export [get]
func (h *SignageHandler) ExportBlades(c *gin.Context) {
	filter := filterFromQuery(c)

	var (
		result *signapp.ExportResult
		err    error
	)
	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		result, err = h.exportService.ExportBladesXLSX(c.Request.Context(), filter)
	case "csv":
		result, err = h.exportService.ExportBladesCSV(c.Request.Context(), filter)
	default:
		h.BadRequest(c, "Unsupported export format")
		return
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
