package handler

import (
	commonapp "github.com/geotrail/backend/internal/application/common"
	"github.com/gin-gonic/gin"
)

// CommonHandler handles the cross-module picklists, themes and organisms
type CommonHandler struct {
	BaseHandler
	themeService    *commonapp.ThemeService
	organismService *commonapp.OrganismService
}

// NewCommonHandler creates a new CommonHandler
func NewCommonHandler(themeService *commonapp.ThemeService, organismService *commonapp.OrganismService) *CommonHandler {
	return &CommonHandler{
		themeService:    themeService,
		organismService: organismService,
	}
}

// ThemeRequest carries a theme label and pictogram
type ThemeRequest struct {
	Label     string `json:"label" binding:"required,min=1,max=250" example:"Lacs et glaciers"`
	Pictogram string `json:"pictogram" binding:"max=512"`
}

// OrganismRequest carries an organism name
type OrganismRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=250"`
	StructureID *string `json:"structure_id" binding:"omitempty,uuid"`
}

// CreateTheme godoc
// @Summary      Create a theme
// @Tags         common
// @Accept       json
// @Produce      json
// @Param        request body ThemeRequest true "Theme payload"
// @Success      201 {object} dto.Response{data=common.Theme}
// @Security     BearerAuth
// @Router       /common/themes [post]
func (h *CommonHandler) CreateTheme(c *gin.Context) {
	var req ThemeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	theme, err := h.themeService.Create(c.Request.Context(), req.Label, req.Pictogram)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, theme)
}

// ListThemes godoc
// @Summary      List themes
// @Tags         common
// @Produce      json
// @Success      200 {object} dto.Response{data=[]common.Theme}
// @Security     BearerAuth
// @Router       /common/themes [get]
func (h *CommonHandler) ListThemes(c *gin.Context) {
	themes, err := h.themeService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, themes)
}

// UpdateTheme godoc
// @Summary      Update a theme
// @Tags         common
// @Accept       json
// @Produce      json
// @Param        id path string true "Theme ID"
// @Param        request body ThemeRequest true "Theme payload"
// @Success      200 {object} dto.Response{data=common.Theme}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /common/themes/{id} [put]
func (h *CommonHandler) UpdateTheme(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req ThemeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	theme, err := h.themeService.Update(c.Request.Context(), id, req.Label, req.Pictogram)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, theme)
}

// DeleteTheme godoc
// @Summary      Delete a theme
// @Tags         common
// @Produce      json
// @Param        id path string true "Theme ID"
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /common/themes/{id} [delete]
func (h *CommonHandler) DeleteTheme(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.themeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateOrganism godoc
// @Summary      Create an organism
// @Tags         common
// @Accept       json
// @Produce      json
// @Param        request body OrganismRequest true "Organism payload"
// @Success      201 {object} dto.Response{data=common.Organism}
// @Security     BearerAuth
// @Router       /common/organisms [post]
func (h *CommonHandler) CreateOrganism(c *gin.Context) {
	var req OrganismRequest
	if !h.bindJSON(c, &req) {
		return
	}
	structureID, ok := h.optionalUUID(c, req.StructureID, "structure_id")
	if !ok {
		return
	}

	organism, err := h.organismService.Create(c.Request.Context(), req.Name, structureID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, organism)
}

// ListOrganisms godoc
// @Summary      List organisms
// @Tags         common
// @Produce      json
// @Success      200 {object} dto.Response{data=[]common.Organism}
// @Security     BearerAuth
// @Router       /common/organisms [get]
func (h *CommonHandler) ListOrganisms(c *gin.Context) {
	organisms, err := h.organismService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, organisms)
}

// RenameOrganism godoc
// @Summary      Rename an organism
// @Tags         common
// @Accept       json
// @Produce      json
// @Param        id path string true "Organism ID"
// @Param        request body OrganismRequest true "Organism payload"
// @Success      200 {object} dto.Response{data=common.Organism}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /common/organisms/{id} [put]
func (h *CommonHandler) RenameOrganism(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req OrganismRequest
	if !h.bindJSON(c, &req) {
		return
	}

	organism, err := h.organismService.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, organism)
}

// DeleteOrganism godoc
// @Summary      Delete an organism
// @Tags         common
// @Produce      json
// @Param        id path string true "Organism ID"
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /common/organisms/{id} [delete]
func (h *CommonHandler) DeleteOrganism(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.organismService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
