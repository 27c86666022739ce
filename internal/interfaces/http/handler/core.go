package handler

import (
	"net/http"
	"strconv"

	coreapp "github.com/geotrail/backend/internal/application/core"
	"github.com/geotrail/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CoreHandler handles paths, trails and their picklists
type CoreHandler struct {
	BaseHandler
	pathService     *coreapp.PathService
	trailService    *coreapp.TrailService
	picklistService *coreapp.PicklistService
}

// NewCoreHandler creates a new CoreHandler
func NewCoreHandler(
	pathService *coreapp.PathService,
	trailService *coreapp.TrailService,
	picklistService *coreapp.PicklistService,
) *CoreHandler {
	return &CoreHandler{
		pathService:     pathService,
		trailService:    trailService,
		picklistService: picklistService,
	}
}

// PathRequest carries the fields for creating or updating a path
type PathRequest struct {
	Name       string             `json:"name" binding:"required,min=1,max=250" example:"Sentier des Astragales"`
	Departure  string             `json:"departure" binding:"max=250"`
	Arrival    string             `json:"arrival" binding:"max=250"`
	Comments   string             `json:"comments"`
	Geometry   *dto.GeometryInput `json:"geometry"`
	EID        string             `json:"eid" binding:"max=128"`
	StakeID    *string            `json:"stake_id" binding:"omitempty,uuid"`
	NetworkIDs []string           `json:"network_ids" binding:"omitempty,dive,uuid"`
	UsageIDs   []string           `json:"usage_ids" binding:"omitempty,dive,uuid"`
}

// TrailRequest carries the fields for creating or updating a trail
type TrailRequest struct {
	Name       string             `json:"name" binding:"required,min=1,max=250"`
	Departure  string             `json:"departure" binding:"max=250"`
	Arrival    string             `json:"arrival" binding:"max=250"`
	Comments   string             `json:"comments"`
	Geometry   *dto.GeometryInput `json:"geometry"`
	CategoryID *string            `json:"category_id" binding:"omitempty,uuid"`
}

// PicklistRequest carries a picklist entry label
type PicklistRequest struct {
	Label     string `json:"label" binding:"required,min=1,max=250"`
	Rank      int    `json:"rank" binding:"omitempty,min=0"`
	Pictogram string `json:"pictogram" binding:"max=512"`
}

// NearQuery carries a proximity search request
type NearQuery struct {
	Distance float64 `form:"distance" binding:"omitempty,min=0"`
}

func (h *BaseHandler) optionalUUID(c *gin.Context, raw *string, field string) (*uuid.UUID, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		h.BadRequest(c, "Invalid "+field+" format")
		return nil, false
	}
	return &id, true
}

// CreatePath godoc
// @Summary      Create a path
// @Description  Register a new path segment with its geometry and altimetry
// @Tags         core
// @Accept       json
// @Produce      json
// @Param        request body PathRequest true "Path payload"
// @Success      201 {object} dto.Response{data=core.Path}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /core/paths [post]
func (h *CoreHandler) CreatePath(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	var req PathRequest
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
	stakeID, ok := h.optionalUUID(c, req.StakeID, "stake_id")
	if !ok {
		return
	}
	networkIDs, err := parseUUIDs(req.NetworkIDs)
	if err != nil {
		h.BadRequest(c, "Invalid network_ids format")
		return
	}
	usageIDs, err := parseUUIDs(req.UsageIDs)
	if err != nil {
		h.BadRequest(c, "Invalid usage_ids format")
		return
	}

	path, err := h.pathService.Create(c.Request.Context(), actor, coreapp.CreatePathInput{
		Name:       req.Name,
		Departure:  req.Departure,
		Arrival:    req.Arrival,
		Comments:   req.Comments,
		Geometry:   geom,
		EID:        req.EID,
		StakeID:    stakeID,
		NetworkIDs: networkIDs,
		UsageIDs:   usageIDs,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, path)
}

// GetPath godoc
// @Summary      Get a path
// @Tags         core
// @Produce      json
// @Param        id path string true "Path ID"
// @Success      200 {object} dto.Response{data=core.Path}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /core/paths/{id} [get]
func (h *CoreHandler) GetPath(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	path, err := h.pathService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, path)
}

// ListPaths godoc
// @Summary      List paths
// @Tags         core
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Name search"
// @Success      200 {object} dto.Response{data=[]core.Path}
// @Security     BearerAuth
// @Router       /core/paths [get]
func (h *CoreHandler) ListPaths(c *gin.Context) {
	page, err := h.pathService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// PathLayer godoc
// @Summary      GeoJSON layer of the path network
// @Tags         core
// @Produce      json
// @Success      200 {string} string "GeoJSON FeatureCollection"
// @Security     BearerAuth
// @Router       /core/paths.geojson [get]
func (h *CoreHandler) PathLayer(c *gin.Context) {
	layer, err := h.pathService.GeoJSONLayer(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/geo+json", layer)
}

// ListPathsNear godoc
// @Summary      List paths near a point
// @Description  Return the paths within the given distance of a geometry
// @Tags         core
// @Accept       json
// @Produce      json
// @Param        distance query number false "Search radius in meters" default(100)
// @Param        request body dto.GeometryInput true "Reference geometry"
// @Success      200 {object} dto.Response{data=[]core.Path}
// @Security     BearerAuth
// @Router       /core/paths/near [post]
func (h *CoreHandler) ListPathsNear(c *gin.Context) {
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

	paths, err := h.pathService.ListNear(c.Request.Context(), geom, query.Distance)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, paths)
}

// UpdatePath godoc
// @Summary      Update a path
// @Tags         core
// @Accept       json
// @Produce      json
// @Param        id path string true "Path ID"
// @Param        request body PathRequest true "Path payload"
// @Success      200 {object} dto.Response{data=core.Path}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /core/paths/{id} [put]
func (h *CoreHandler) UpdatePath(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req PathRequest
	if !h.bindJSON(c, &req) {
		return
	}
	stakeID, ok := h.optionalUUID(c, req.StakeID, "stake_id")
	if !ok {
		return
	}
	networkIDs, err := parseUUIDs(req.NetworkIDs)
	if err != nil {
		h.BadRequest(c, "Invalid network_ids format")
		return
	}
	usageIDs, err := parseUUIDs(req.UsageIDs)
	if err != nil {
		h.BadRequest(c, "Invalid usage_ids format")
		return
	}
	input := coreapp.UpdatePathInput{
		Name:       req.Name,
		Departure:  req.Departure,
		Arrival:    req.Arrival,
		Comments:   req.Comments,
		StakeID:    stakeID,
		NetworkIDs: networkIDs,
		UsageIDs:   usageIDs,
	}
	if req.Geometry != nil {
		geom, err := req.Geometry.ToGeometry()
		if err != nil {
			h.HandleError(c, err)
			return
		}
		input.Geometry = &geom
	}

	path, err := h.pathService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, path)
}

// DeletePath godoc
// @Summary      Delete a path
// @Description  Soft-delete a path. Fails when treks still traverse it.
// @Tags         core
// @Produce      json
// @Param        id path string true "Path ID"
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /core/paths/{id} [delete]
func (h *CoreHandler) DeletePath(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.pathService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// PathElevationProfile godoc
// @Summary      Path elevation profile
// @Description  Return the sampled distance/elevation profile of a path
// @Tags         core
// @Produce      json
// @Param        id path string true "Path ID"
// @Success      200 {object} dto.Response{data=[]coreapp.ProfilePoint}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /core/paths/{id}/profile [get]
func (h *CoreHandler) PathElevationProfile(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	profile, err := h.pathService.ElevationProfile(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}

// PathElevationProfileSVG godoc
// @Summary      Path elevation profile as SVG
// @Tags         core
// @Produce      image/svg+xml
// @Param        id path string true "Path ID"
// @Success      200 {string} string "SVG document"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /core/paths/{id}/profile.svg [get]
func (h *CoreHandler) PathElevationProfileSVG(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	svg, err := h.pathService.ElevationProfileSVG(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}

// PathElevationProfilePNG godoc
// @Summary      Path elevation profile as PNG
// @Tags         core
// @Produce      image/png
// @Param        id path string true "Path ID"
// @Success      200 {string} binary "PNG image"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /core/paths/{id}/profile.png [get]
func (h *CoreHandler) PathElevationProfilePNG(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	png, err := h.pathService.ElevationProfilePNG(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Length", strconv.Itoa(len(png)))
	c.Data(http.StatusOK, "image/png", png)
}

// CreateTrail godoc
// @Summary      Create a trail
// @Tags         core
// @Accept       json
// @Produce      json
// @Param        request body TrailRequest true "Trail payload"
// @Success      201 {object} dto.Response{data=core.Trail}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /core/trails [post]
func (h *CoreHandler) CreateTrail(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	var req TrailRequest
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
	categoryID, ok := h.optionalUUID(c, req.CategoryID, "category_id")
	if !ok {
		return
	}

	trail, err := h.trailService.Create(c.Request.Context(), actor, coreapp.CreateTrailInput{
		Name:       req.Name,
		Departure:  req.Departure,
		Arrival:    req.Arrival,
		Comments:   req.Comments,
		Geometry:   geom,
		CategoryID: categoryID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, trail)
}

// GetTrail godoc
// @Summary      Get a trail
// @Tags         core
// @Produce      json
// @Param        id path string true "Trail ID"
// @Success      200 {object} dto.Response{data=core.Trail}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /core/trails/{id} [get]
func (h *CoreHandler) GetTrail(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	trail, err := h.trailService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, trail)
}

// ListTrails godoc
// @Summary      List trails
// @Tags         core
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        category_id query string false "Filter by category"
// @Success      200 {object} dto.Response{data=[]core.Trail}
// @Security     BearerAuth
// @Router       /core/trails [get]
func (h *CoreHandler) ListTrails(c *gin.Context) {
	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid category_id format")
			return
		}
		trails, err := h.trailService.ListByCategory(c.Request.Context(), categoryID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, trails)
		return
	}

	page, err := h.trailService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// UpdateTrail godoc
// @Summary      Update a trail
// @Tags         core
// @Accept       json
// @Produce      json
// @Param        id path string true "Trail ID"
// @Param        request body TrailRequest true "Trail payload"
// @Success      200 {object} dto.Response{data=core.Trail}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /core/trails/{id} [put]
func (h *CoreHandler) UpdateTrail(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req TrailRequest
	if !h.bindJSON(c, &req) {
		return
	}
	categoryID, ok := h.optionalUUID(c, req.CategoryID, "category_id")
	if !ok {
		return
	}
	input := coreapp.UpdateTrailInput{
		Name:       req.Name,
		Departure:  req.Departure,
		Arrival:    req.Arrival,
		Comments:   req.Comments,
		CategoryID: categoryID,
	}
	if req.Geometry != nil {
		geom, err := req.Geometry.ToGeometry()
		if err != nil {
			h.HandleError(c, err)
			return
		}
		input.Geometry = &geom
	}

	trail, err := h.trailService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, trail)
}

// DeleteTrail godoc
// @Summary      Delete a trail
// @Tags         core
// @Produce      json
// @Param        id path string true "Trail ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /core/trails/{id} [delete]
func (h *CoreHandler) DeleteTrail(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.trailService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateStake godoc
// @Summary      Create a stake level
// @Tags         core
// @Accept       json
// @Produce      json
// @Param        request body PicklistRequest true "Stake payload"
// @Success      201 {object} dto.Response{data=core.Stake}
// @Security     BearerAuth
// @Router       /core/stakes [post]
func (h *CoreHandler) CreateStake(c *gin.Context) {
	var req PicklistRequest
	if !h.bindJSON(c, &req) {
		return
	}

	stake, err := h.picklistService.CreateStake(c.Request.Context(), req.Label, req.Rank)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, stake)
}

// ListStakes godoc
// @Summary      List stake levels
// @Tags         core
// @Produce      json
// @Success      200 {object} dto.Response{data=[]core.Stake}
// @Security     BearerAuth
// @Router       /core/stakes [get]
func (h *CoreHandler) ListStakes(c *gin.Context) {
	stakes, err := h.picklistService.ListStakes(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stakes)
}

// RenameStake godoc
// @Summary      Rename a stake level
// @Tags         core
// @Accept       json
// @Produce      json
// @Param        id path string true "Stake ID"
// @Param        request body PicklistRequest true "Stake payload"
// @Success      200 {object} dto.Response{data=core.Stake}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /core/stakes/{id} [put]
func (h *CoreHandler) RenameStake(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req PicklistRequest
	if !h.bindJSON(c, &req) {
		return
	}

	stake, err := h.picklistService.RenameStake(c.Request.Context(), id, req.Label)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stake)
}

// DeleteStake godoc
// @Summary      Delete a stake level
// @Tags         core
// @Produce      json
// @Param        id path string true "Stake ID"
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /core/stakes/{id} [delete]
func (h *CoreHandler) DeleteStake(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.picklistService.DeleteStake(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateNetwork godoc
// @Summary      Create a path network
// @Tags         core
// @Accept       json
// @Produce      json
// @Param        request body PicklistRequest true "Network payload"
// @Success      201 {object} dto.Response{data=core.Network}
// @Security     BearerAuth
// @Router       /core/networks [post]
func (h *CoreHandler) CreateNetwork(c *gin.Context) {
	var req PicklistRequest
	if !h.bindJSON(c, &req) {
		return
	}

	network, err := h.picklistService.CreateNetwork(c.Request.Context(), req.Label, req.Pictogram)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, network)
}

// ListNetworks godoc
// @Summary      List path networks
// @Tags         core
// @Produce      json
// @Success      200 {object} dto.Response{data=[]core.Network}
// @Security     BearerAuth
// @Router       /core/networks [get]
func (h *CoreHandler) ListNetworks(c *gin.Context) {
	networks, err := h.picklistService.ListNetworks(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, networks)
}

// DeleteNetwork godoc
// @Summary      Delete a path network
// @Tags         core
// @Produce      json
// @Param        id path string true "Network ID"
// @Success      204
// @Security     BearerAuth
// @Router       /core/networks/{id} [delete]
func (h *CoreHandler) DeleteNetwork(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.picklistService.DeleteNetwork(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateUsage godoc
// @Summary      Create a path usage
// @Tags         core
// @Accept       json
// @Produce      json
// @Param        request body PicklistRequest true "Usage payload"
// @Success      201 {object} dto.Response{data=core.Usage}
// @Security     BearerAuth
// @Router       /core/usages [post]
func (h *CoreHandler) CreateUsage(c *gin.Context) {
	var req PicklistRequest
	if !h.bindJSON(c, &req) {
		return
	}

	usage, err := h.picklistService.CreateUsage(c.Request.Context(), req.Label)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, usage)
}

// ListUsages godoc
// @Summary      List path usages
// @Tags         core
// @Produce      json
// @Success      200 {object} dto.Response{data=[]core.Usage}
// @Security     BearerAuth
// @Router       /core/usages [get]
func (h *CoreHandler) ListUsages(c *gin.Context) {
	usages, err := h.picklistService.ListUsages(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, usages)
}

// DeleteUsage godoc
// @Summary      Delete a path usage
// @Tags         core
// @Produce      json
// @Param        id path string true "Usage ID"
// @Success      204
// @Security     BearerAuth
// @Router       /core/usages/{id} [delete]
func (h *CoreHandler) DeleteUsage(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.picklistService.DeleteUsage(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateTrailCategory godoc
// @Summary      Create a trail category
// @Tags         core
// @Accept       json
// @Produce      json
// @Param        request body PicklistRequest true "Category payload"
// @Success      201 {object} dto.Response{data=core.TrailCategory}
// @Security     BearerAuth
// @Router       /core/trail-categories [post]
func (h *CoreHandler) CreateTrailCategory(c *gin.Context) {
	var req PicklistRequest
	if !h.bindJSON(c, &req) {
		return
	}

	category, err := h.picklistService.CreateTrailCategory(c.Request.Context(), req.Label)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, category)
}

// ListTrailCategories godoc
// @Summary      List trail categories
// @Tags         core
// @Produce      json
// @Success      200 {object} dto.Response{data=[]core.TrailCategory}
// @Security     BearerAuth
// @Router       /core/trail-categories [get]
func (h *CoreHandler) ListTrailCategories(c *gin.Context) {
	categories, err := h.picklistService.ListTrailCategories(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}

// DeleteTrailCategory godoc
// @Summary      Delete a trail category
// @Tags         core
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      204
// @Security     BearerAuth
// @Router       /core/trail-categories/{id} [delete]
func (h *CoreHandler) DeleteTrailCategory(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.picklistService.DeleteTrailCategory(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
