package handler

import (
	landapp "github.com/geotrail/backend/internal/application/land"
	"github.com/geotrail/backend/internal/domain/land"
	"github.com/geotrail/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LandHandler handles the legal layers draped over the network
type LandHandler struct {
	BaseHandler
	edgeService *landapp.EdgeService
	typeService *landapp.TypeService
}

// NewLandHandler creates a new LandHandler
func NewLandHandler(edgeService *landapp.EdgeService, typeService *landapp.TypeService) *LandHandler {
	return &LandHandler{edgeService: edgeService, typeService: typeService}
}

// EdgeRequest carries the fields for an edge
type EdgeRequest struct {
	Kind        string             `json:"kind" binding:"required,oneof=PHYSICAL LAND COMPETENCE WORK_MANAGEMENT SIGNAGE_MANAGEMENT"`
	Geometry    *dto.GeometryInput `json:"geometry"`
	ReferenceID string             `json:"reference_id" binding:"required,uuid"`
	Comment     string             `json:"comment"`
}

// EdgeUpdateRequest carries the updatable fields of an edge
type EdgeUpdateRequest struct {
	Geometry    *dto.GeometryInput `json:"geometry"`
	ReferenceID string             `json:"reference_id" binding:"required,uuid"`
	Comment     string             `json:"comment"`
}

// PhysicalTypeRequest carries a physical type label
type PhysicalTypeRequest struct {
	Label       string  `json:"label" binding:"required,min=1,max=128"`
	StructureID *string `json:"structure_id" binding:"omitempty,uuid"`
}

// LandTypeRequest carries a land type label
type LandTypeRequest struct {
	Label       string  `json:"label" binding:"required,min=1,max=128"`
	RightOfWay  bool    `json:"right_of_way"`
	StructureID *string `json:"structure_id" binding:"omitempty,uuid"`
}

// CreateEdge godoc
// @Summary      Record an edge
// @Description  Drape a physical, land tenure or management attribute over a stretch of the network
// @Tags         land
// @Accept       json
// @Produce      json
// @Param        request body EdgeRequest true "Edge payload"
// @Success      201 {object} dto.Response{data=land.Edge}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /land/edges [post]
func (h *LandHandler) CreateEdge(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	var req EdgeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	refID, err := uuid.Parse(req.ReferenceID)
	if err != nil {
		h.BadRequest(c, "Invalid reference_id format")
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

	edge, err := h.edgeService.Create(c.Request.Context(), actor, landapp.CreateInput{
		Kind:        land.EdgeKind(req.Kind),
		Geometry:    geom,
		ReferenceID: refID,
		Comment:     req.Comment,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, edge)
}

// GetEdge godoc
// @Summary      Get an edge
// @Tags         land
// @Produce      json
// @Param        id path string true "Edge ID"
// @Success      200 {object} dto.Response{data=land.Edge}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /land/edges/{id} [get]
func (h *LandHandler) GetEdge(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	edge, err := h.edgeService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, edge)
}

// ListEdges godoc
// @Summary      List edges
// @Tags         land
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        kind query string false "Filter by layer" Enums(PHYSICAL,LAND,COMPETENCE,WORK_MANAGEMENT,SIGNAGE_MANAGEMENT)
// @Success      200 {object} dto.Response{data=[]land.Edge}
// @Security     BearerAuth
// @Router       /land/edges [get]
func (h *LandHandler) ListEdges(c *gin.Context) {
	if raw := c.Query("kind"); raw != "" {
		kind := land.EdgeKind(raw)
		if !kind.Valid() {
			h.BadRequest(c, "Unknown edge kind")
			return
		}
		edges, err := h.edgeService.ListByKind(c.Request.Context(), kind, filterFromQuery(c))
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, edges)
		return
	}

	page, err := h.edgeService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// UpdateEdge godoc
// @Summary      Update an edge
// @Tags         land
// @Accept       json
// @Produce      json
// @Param        id path string true "Edge ID"
// @Param        request body EdgeUpdateRequest true "Edge payload"
// @Success      200 {object} dto.Response{data=land.Edge}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /land/edges/{id} [put]
func (h *LandHandler) UpdateEdge(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req EdgeUpdateRequest
	if !h.bindJSON(c, &req) {
		return
	}
	refID, err := uuid.Parse(req.ReferenceID)
	if err != nil {
		h.BadRequest(c, "Invalid reference_id format")
		return
	}
	input := landapp.UpdateInput{
		ReferenceID: refID,
		Comment:     req.Comment,
	}
	if req.Geometry != nil {
		geom, err := req.Geometry.ToGeometry()
		if err != nil {
			h.HandleError(c, err)
			return
		}
		input.Geometry = &geom
	}

	edge, err := h.edgeService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, edge)
}

// DeleteEdge godoc
// @Summary      Delete an edge
// @Tags         land
// @Produce      json
// @Param        id path string true "Edge ID"
// @Success      204
// @Security     BearerAuth
// @Router       /land/edges/{id} [delete]
func (h *LandHandler) DeleteEdge(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.edgeService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreatePhysicalType godoc
// @Summary      Create a physical type
// @Tags         land
// @Accept       json
// @Produce      json
// @Param        request body PhysicalTypeRequest true "Physical type payload"
// @Success      201 {object} dto.Response{data=land.PhysicalType}
// @Security     BearerAuth
// @Router       /land/physical-types [post]
func (h *LandHandler) CreatePhysicalType(c *gin.Context) {
	var req PhysicalTypeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	structureID, ok := h.optionalUUID(c, req.StructureID, "structure_id")
	if !ok {
		return
	}

	typ, err := h.typeService.CreatePhysicalType(c.Request.Context(), req.Label, structureID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, typ)
}

// ListPhysicalTypes godoc
// @Summary      List physical types
// @Tags         land
// @Produce      json
// @Success      200 {object} dto.Response{data=[]land.PhysicalType}
// @Security     BearerAuth
// @Router       /land/physical-types [get]
func (h *LandHandler) ListPhysicalTypes(c *gin.Context) {
	types, err := h.typeService.ListPhysicalTypes(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, types)
}

// DeletePhysicalType godoc
// @Summary      Delete a physical type
// @Tags         land
// @Produce      json
// @Param        id path string true "Physical type ID"
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /land/physical-types/{id} [delete]
func (h *LandHandler) DeletePhysicalType(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.typeService.DeletePhysicalType(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateLandType godoc
// @Summary      Create a land type
// @Tags         land
// @Accept       json
// @Produce      json
// @Param        request body LandTypeRequest true "Land type payload"
// @Success      201 {object} dto.Response{data=land.LandType}
// @Security     BearerAuth
// @Router       /land/types [post]
func (h *LandHandler) CreateLandType(c *gin.Context) {
	var req LandTypeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	structureID, ok := h.optionalUUID(c, req.StructureID, "structure_id")
	if !ok {
		return
	}

	typ, err := h.typeService.CreateLandType(c.Request.Context(), req.Label, req.RightOfWay, structureID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, typ)
}

// ListLandTypes godoc
// @Summary      List land types
// @Tags         land
// @Produce      json
// @Success      200 {object} dto.Response{data=[]land.LandType}
// @Security     BearerAuth
// @Router       /land/types [get]
func (h *LandHandler) ListLandTypes(c *gin.Context) {
	types, err := h.typeService.ListLandTypes(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, types)
}

// DeleteLandType godoc
// @Summary      Delete a land type
// @Tags         land
// @Produce      json
// @Param        id path string true "Land type ID"
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /land/types/{id} [delete]
func (h *LandHandler) DeleteLandType(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.typeService.DeleteLandType(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
