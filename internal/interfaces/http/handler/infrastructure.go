package handler

import (
	infraapp "github.com/geotrail/backend/internal/application/infrastructure"
	"github.com/geotrail/backend/internal/domain/infrastructure"
	"github.com/geotrail/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InfrastructureHandler handles buildings, facilities and equipments
type InfrastructureHandler struct {
	BaseHandler
	service       *infraapp.Service
	typeService   *infraapp.TypeService
	exportService *infraapp.ExportService
}

// NewInfrastructureHandler creates a new InfrastructureHandler
func NewInfrastructureHandler(
	service *infraapp.Service,
	typeService *infraapp.TypeService,
	exportService *infraapp.ExportService,
) *InfrastructureHandler {
	return &InfrastructureHandler{
		service:       service,
		typeService:   typeService,
		exportService: exportService,
	}
}

// InfrastructureRequest carries the fields for an infrastructure
type InfrastructureRequest struct {
	Name                    string             `json:"name" binding:"required,min=1,max=250" example:"Passerelle du Guil"`
	Description             string             `json:"description"`
	Geometry                *dto.GeometryInput `json:"geometry"`
	TypeID                  string             `json:"type_id" binding:"required,uuid"`
	ConditionID             *string            `json:"condition_id" binding:"omitempty,uuid"`
	MaintenanceDifficultyID *string            `json:"maintenance_difficulty_id" binding:"omitempty,uuid"`
	UsageDifficultyID       *string            `json:"usage_difficulty_id" binding:"omitempty,uuid"`
	ImplantationYear        *int               `json:"implantation_year" binding:"omitempty,min=1900,max=2100"`
	AccessibilityNote       string             `json:"accessibility_note"`
	EID                     string             `json:"eid" binding:"max=128"`
}

// InfrastructureTypeRequest carries the fields for an infrastructure type
type InfrastructureTypeRequest struct {
	Label       string  `json:"label" binding:"required,min=1,max=250"`
	Kind        string  `json:"kind" binding:"required,oneof=BUILDING FACILITY EQUIPMENT"`
	StructureID *string `json:"structure_id" binding:"omitempty,uuid"`
}

// InfrastructureDifficultyRequest carries a difficulty level label
type InfrastructureDifficultyRequest struct {
	Label       string  `json:"label" binding:"required,min=1,max=250"`
	StructureID *string `json:"structure_id" binding:"omitempty,uuid"`
}

// CreateInfrastructure godoc
// @Summary      Record an infrastructure
// @Tags         infrastructure
// @Accept       json
// @Produce      json
// @Param        request body InfrastructureRequest true "Infrastructure payload"
// @Success      201 {object} dto.Response{data=infrastructure.Infrastructure}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /infrastructure/infrastructures [post]
func (h *InfrastructureHandler) CreateInfrastructure(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	var req InfrastructureRequest
	if !h.bindJSON(c, &req) {
		return
	}
	typeID, err := uuid.Parse(req.TypeID)
	if err != nil {
		h.BadRequest(c, "Invalid type_id format")
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
	conditionID, ok := h.optionalUUID(c, req.ConditionID, "condition_id")
	if !ok {
		return
	}
	maintenanceDifficultyID, ok := h.optionalUUID(c, req.MaintenanceDifficultyID, "maintenance_difficulty_id")
	if !ok {
		return
	}
	usageDifficultyID, ok := h.optionalUUID(c, req.UsageDifficultyID, "usage_difficulty_id")
	if !ok {
		return
	}

	infra, err := h.service.Create(c.Request.Context(), actor, infraapp.CreateInput{
		Name:                    req.Name,
		Description:             req.Description,
		Geometry:                geom,
		TypeID:                  typeID,
		ConditionID:             conditionID,
		MaintenanceDifficultyID: maintenanceDifficultyID,
		UsageDifficultyID:       usageDifficultyID,
		ImplantationYear:        req.ImplantationYear,
		AccessibilityNote:       req.AccessibilityNote,
		EID:                     req.EID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, infra)
}

// GetInfrastructure godoc
// @Summary      Get an infrastructure
// @Tags         infrastructure
// @Produce      json
// @Param        id path string true "Infrastructure ID"
// @Success      200 {object} dto.Response{data=infrastructure.Infrastructure}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /infrastructure/infrastructures/{id} [get]
func (h *InfrastructureHandler) GetInfrastructure(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	infra, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, infra)
}

// ListInfrastructures godoc
// @Summary      List infrastructures
// @Tags         infrastructure
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        kind query string false "Filter by kind" Enums(BUILDING,FACILITY,EQUIPMENT)
// @Success      200 {object} dto.Response{data=[]infrastructure.Infrastructure}
// @Security     BearerAuth
// @Router       /infrastructure/infrastructures [get]
func (h *InfrastructureHandler) ListInfrastructures(c *gin.Context) {
	if raw := c.Query("kind"); raw != "" {
		kind := infrastructure.Kind(raw)
		if !kind.Valid() {
			h.BadRequest(c, "Unknown infrastructure kind")
			return
		}
		infras, err := h.service.ListByKind(c.Request.Context(), kind, filterFromQuery(c))
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, infras)
		return
	}

	page, err := h.service.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// ListInfrastructuresNear godoc
// @Summary      List infrastructures near a point
// @Tags         infrastructure
// @Accept       json
// @Produce      json
// @Param        distance query number false "Search radius in meters" default(100)
// @Param        request body dto.GeometryInput true "Reference geometry"
// @Success      200 {object} dto.Response{data=[]infrastructure.Infrastructure}
// @Security     BearerAuth
// @Router       /infrastructure/infrastructures/near [post]
func (h *InfrastructureHandler) ListInfrastructuresNear(c *gin.Context) {
	var query NearQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Invalid distance parameter")
		return
	}
	if query.Distance <= 0 {
		query.Distance = 100
	}
	var geomInput dto.GeometryInput
	if !h.bindJSON(c, &geomInput) {
		return
	}
	geom, err := geomInput.ToGeometry()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	infras, err := h.service.ListNear(c.Request.Context(), geom, query.Distance)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, infras)
}

// UpdateInfrastructure godoc
// @Summary      Update an infrastructure
// @Tags         infrastructure
// @Accept       json
// @Produce      json
// @Param        id path string true "Infrastructure ID"
// @Param        request body InfrastructureRequest true "Infrastructure payload"
// @Success      200 {object} dto.Response{data=infrastructure.Infrastructure}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /infrastructure/infrastructures/{id} [put]
func (h *InfrastructureHandler) UpdateInfrastructure(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req InfrastructureRequest
	if !h.bindJSON(c, &req) {
		return
	}
	typeID, err := uuid.Parse(req.TypeID)
	if err != nil {
		h.BadRequest(c, "Invalid type_id format")
		return
	}
	conditionID, ok := h.optionalUUID(c, req.ConditionID, "condition_id")
	if !ok {
		return
	}
	maintenanceDifficultyID, ok := h.optionalUUID(c, req.MaintenanceDifficultyID, "maintenance_difficulty_id")
	if !ok {
		return
	}
	usageDifficultyID, ok := h.optionalUUID(c, req.UsageDifficultyID, "usage_difficulty_id")
	if !ok {
		return
	}
	input := infraapp.UpdateInput{
		Name:                    req.Name,
		Description:             req.Description,
		TypeID:                  typeID,
		ConditionID:             conditionID,
		MaintenanceDifficultyID: maintenanceDifficultyID,
		UsageDifficultyID:       usageDifficultyID,
		ImplantationYear:        req.ImplantationYear,
		AccessibilityNote:       req.AccessibilityNote,
	}
	if req.Geometry != nil {
		geom, err := req.Geometry.ToGeometry()
		if err != nil {
			h.HandleError(c, err)
			return
		}
		input.Geometry = &geom
	}

	infra, err := h.service.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, infra)
}

// DeleteInfrastructure godoc
// @Summary      Delete an infrastructure
// @Tags         infrastructure
// @Produce      json
// @Param        id path string true "Infrastructure ID"
// @Success      204
// @Security     BearerAuth
// @Router       /infrastructure/infrastructures/{id} [delete]
func (h *InfrastructureHandler) DeleteInfrastructure(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// PublishInfrastructure godoc
// @Summary      Publish an infrastructure
// @Tags         infrastructure
// @Produce      json
// @Param        id path string true "Infrastructure ID"
// @Success      200 {object} dto.Response{data=infrastructure.Infrastructure}
// @Security     BearerAuth
// @Router       /infrastructure/infrastructures/{id}/publish [post]
func (h *InfrastructureHandler) PublishInfrastructure(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	infra, err := h.service.Publish(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, infra)
}

// UnpublishInfrastructure godoc
// @Summary      Unpublish an infrastructure
// @Tags         infrastructure
// @Produce      json
// @Param        id path string true "Infrastructure ID"
// @Success      200 {object} dto.Response{data=infrastructure.Infrastructure}
// @Security     BearerAuth
// @Router       /infrastructure/infrastructures/{id}/unpublish [post]
func (h *InfrastructureHandler) UnpublishInfrastructure(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	infra, err := h.service.Unpublish(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, infra)
}

// ExportInfrastructures godoc
// @Summary      Export infrastructures
// @Description  Generate a CSV or XLSX export and return its download URL
// @Tags         infrastructure
// @Produce      json
// @Param        format query string false "Export format" Enums(csv,xlsx) default(csv)
// @Success      200 {object} dto.Response{data=infraapp.ExportResult}
// @Security     BearerAuth
// @Router       /infrastructure/infrastructures/export [get]
func (h *InfrastructureHandler) ExportInfrastructures(c *gin.Context) {
	filter := filterFromQuery(c)

	var (
		result *infraapp.ExportResult
		err    error
	)
	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		result, err = h.exportService.ExportXLSX(c.Request.Context(), filter)
	case "csv":
		result, err = h.exportService.ExportCSV(c.Request.Context(), filter)
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

// CreateInfrastructureType godoc
// @Summary      Create an infrastructure type
// @Tags         infrastructure
// @Accept       json
// @Produce      json
// @Param        request body InfrastructureTypeRequest true "Type payload"
// @Success      201 {object} dto.Response{data=infrastructure.InfrastructureType}
// @Security     BearerAuth
// @Router       /infrastructure/types [post]
func (h *InfrastructureHandler) CreateInfrastructureType(c *gin.Context) {
	var req InfrastructureTypeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	structureID, ok := h.optionalUUID(c, req.StructureID, "structure_id")
	if !ok {
		return
	}

	infraType, err := h.typeService.CreateType(c.Request.Context(), req.Label, infrastructure.Kind(req.Kind), structureID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, infraType)
}

// ListInfrastructureTypes godoc
// @Summary      List infrastructure types
// @Tags         infrastructure
// @Produce      json
// @Param        kind query string true "Type kind" Enums(BUILDING,FACILITY,EQUIPMENT)
// @Success      200 {object} dto.Response{data=[]infrastructure.InfrastructureType}
// @Security     BearerAuth
// @Router       /infrastructure/types [get]
func (h *InfrastructureHandler) ListInfrastructureTypes(c *gin.Context) {
	kind := infrastructure.Kind(c.Query("kind"))
	if !kind.Valid() {
		h.BadRequest(c, "Unknown infrastructure kind")
		return
	}

	types, err := h.typeService.ListTypes(c.Request.Context(), kind)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, types)
}

// DeleteInfrastructureType godoc
// @Summary      Delete an infrastructure type
// @Tags         infrastructure
// @Produce      json
// @Param        id path string true "Type ID"
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /infrastructure/types/{id} [delete]
func (h *InfrastructureHandler) DeleteInfrastructureType(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.typeService.DeleteType(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateInfrastructureDifficulty godoc
// @Summary      Create a difficulty level
// @Tags         infrastructure
// @Accept       json
// @Produce      json
// @Param        request body InfrastructureDifficultyRequest true "Difficulty payload"
// @Success      201 {object} dto.Response{data=infrastructure.DifficultyLevel}
// @Security     BearerAuth
// @Router       /infrastructure/difficulties [post]
func (h *InfrastructureHandler) CreateInfrastructureDifficulty(c *gin.Context) {
	var req InfrastructureDifficultyRequest
	if !h.bindJSON(c, &req) {
		return
	}
	structureID, ok := h.optionalUUID(c, req.StructureID, "structure_id")
	if !ok {
		return
	}

	difficulty, err := h.typeService.CreateDifficulty(c.Request.Context(), req.Label, structureID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, difficulty)
}

// ListInfrastructureDifficulties godoc
// @Summary      List difficulty levels
// @Tags         infrastructure
// @Produce      json
// @Success      200 {object} dto.Response{data=[]infrastructure.DifficultyLevel}
// @Security     BearerAuth
// @Router       /infrastructure/difficulties [get]
func (h *InfrastructureHandler) ListInfrastructureDifficulties(c *gin.Context) {
	difficulties, err := h.typeService.ListDifficulties(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, difficulties)
}

// DeleteInfrastructureDifficulty godoc
// @Summary      Delete a difficulty level
// @Tags         infrastructure
// @Produce      json
// @Param        id path string true "Difficulty ID"
// @Success      204
// @Security     BearerAuth
// @Router       /infrastructure/difficulties/{id} [delete]
func (h *InfrastructureHandler) DeleteInfrastructureDifficulty(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.typeService.DeleteDifficulty(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
