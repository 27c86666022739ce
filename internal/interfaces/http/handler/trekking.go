package handler

import (
	"net/http"

	trekapp "github.com/geotrail/backend/internal/application/trekking"
	"github.com/geotrail/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TrekkingHandler handles treks, POIs, service points and their picklists
type TrekkingHandler struct {
	BaseHandler
	trekService     *trekapp.TrekService
	poiService      *trekapp.POIService
	serviceService  *trekapp.ServiceService
	picklistService *trekapp.PicklistService
}

// NewTrekkingHandler creates a new TrekkingHandler
func NewTrekkingHandler(
	trekService *trekapp.TrekService,
	poiService *trekapp.POIService,
	serviceService *trekapp.ServiceService,
	picklistService *trekapp.PicklistService,
) *TrekkingHandler {
	return &TrekkingHandler{
		trekService:     trekService,
		poiService:      poiService,
		serviceService:  serviceService,
		picklistService: picklistService,
	}
}

// TrekRequest carries the fields for creating or updating a trek
type TrekRequest struct {
	Name              string             `json:"name" binding:"required,min=1,max=250" example:"Tour du Queyras"`
	Departure         string             `json:"departure" binding:"max=250"`
	Arrival           string             `json:"arrival" binding:"max=250"`
	DescriptionTeaser string             `json:"description_teaser"`
	Description       string             `json:"description"`
	Ambiance          string             `json:"ambiance"`
	Access            string             `json:"access"`
	Advice            string             `json:"advice"`
	DurationHours     *float64           `json:"duration_hours" binding:"omitempty,min=0"`
	Geometry          *dto.GeometryInput `json:"geometry"`
	ParkingLocation   *dto.GeometryInput `json:"parking_location"`
	PointsReference   *dto.GeometryInput `json:"points_reference"`
	DifficultyID      *string            `json:"difficulty_id" binding:"omitempty,uuid"`
	PracticeID        *string            `json:"practice_id" binding:"omitempty,uuid"`
	RouteID           *string            `json:"route_id" binding:"omitempty,uuid"`
	ThemeIDs          []string           `json:"theme_ids" binding:"omitempty,dive,uuid"`
	NetworkIDs        []string           `json:"network_ids" binding:"omitempty,dive,uuid"`
	AccessibilityIDs  []string           `json:"accessibility_ids" binding:"omitempty,dive,uuid"`
	WebLinkIDs        []string           `json:"web_link_ids" binding:"omitempty,dive,uuid"`
	EID               string             `json:"eid" binding:"max=128"`
	EID2              string             `json:"eid2" binding:"max=128"`
}

// RelateTreksRequest describes a symmetric relationship between two treks
type RelateTreksRequest struct {
	TrekBID            string `json:"trek_b_id" binding:"required,uuid"`
	HasCommonDeparture bool   `json:"has_common_departure"`
	HasCommonEdge      bool   `json:"has_common_edge"`
	IsCircuitStep      bool   `json:"is_circuit_step"`
}

// ReorderChildrenRequest carries the ordered child trek IDs
type ReorderChildrenRequest struct {
	ChildIDs []string `json:"child_ids" binding:"required,min=1,dive,uuid"`
}

// POIRequest carries the fields for creating or updating a POI
type POIRequest struct {
	Name        string             `json:"name" binding:"required,min=1,max=250"`
	Description string             `json:"description"`
	TypeID      string             `json:"type_id" binding:"required,uuid"`
	Geometry    *dto.GeometryInput `json:"geometry"`
	EID         string             `json:"eid" binding:"max=128"`
}

// ServicePointRequest carries the fields for creating or updating a service point
type ServicePointRequest struct {
	TypeID   string             `json:"type_id" binding:"required,uuid"`
	Geometry *dto.GeometryInput `json:"geometry"`
	EID      string             `json:"eid" binding:"max=128"`
}

// TrekPicklistRequest carries a trekking picklist entry
type TrekPicklistRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=250"`
	Pictogram   string   `json:"pictogram" binding:"max=512"`
	Rank        int      `json:"rank" binding:"omitempty,min=0"`
	PracticeIDs []string `json:"practice_ids" binding:"omitempty,dive,uuid"`
}

func (h *TrekkingHandler) trekInputFromRequest(c *gin.Context, req *TrekRequest, forCreate bool) (*trekapp.CreateTrekInput, *trekapp.UpdateTrekInput, bool) {
	difficultyID, ok := h.optionalUUID(c, req.DifficultyID, "difficulty_id")
	if !ok {
		return nil, nil, false
	}
	practiceID, ok := h.optionalUUID(c, req.PracticeID, "practice_id")
	if !ok {
		return nil, nil, false
	}
	routeID, ok := h.optionalUUID(c, req.RouteID, "route_id")
	if !ok {
		return nil, nil, false
	}
	themeIDs, err := parseUUIDs(req.ThemeIDs)
	if err != nil {
		h.BadRequest(c, "Invalid theme_ids format")
		return nil, nil, false
	}
	networkIDs, err := parseUUIDs(req.NetworkIDs)
	if err != nil {
		h.BadRequest(c, "Invalid network_ids format")
		return nil, nil, false
	}
	accessibilityIDs, err := parseUUIDs(req.AccessibilityIDs)
	if err != nil {
		h.BadRequest(c, "Invalid accessibility_ids format")
		return nil, nil, false
	}
	webLinkIDs, err := parseUUIDs(req.WebLinkIDs)
	if err != nil {
		h.BadRequest(c, "Invalid web_link_ids format")
		return nil, nil, false
	}

	if forCreate {
		if req.Geometry == nil {
			h.BadRequest(c, "Geometry is required")
			return nil, nil, false
		}
		geom, err := req.Geometry.ToGeometry()
		if err != nil {
			h.HandleError(c, err)
			return nil, nil, false
		}
		input := trekapp.CreateTrekInput{
			Name:              req.Name,
			Departure:         req.Departure,
			Arrival:           req.Arrival,
			DescriptionTeaser: req.DescriptionTeaser,
			Description:       req.Description,
			Ambiance:          req.Ambiance,
			Access:            req.Access,
			Advice:            req.Advice,
			DurationHours:     req.DurationHours,
			Geometry:          geom,
			DifficultyID:      difficultyID,
			PracticeID:        practiceID,
			RouteID:           routeID,
			ThemeIDs:          themeIDs,
			NetworkIDs:        networkIDs,
			AccessibilityIDs:  accessibilityIDs,
			WebLinkIDs:        webLinkIDs,
			EID:               req.EID,
			EID2:              req.EID2,
		}
		if req.ParkingLocation != nil {
			parking, err := req.ParkingLocation.ToGeometry()
			if err != nil {
				h.HandleError(c, err)
				return nil, nil, false
			}
			input.ParkingLocation = parking
		}
		if req.PointsReference != nil {
			points, err := req.PointsReference.ToGeometry()
			if err != nil {
				h.HandleError(c, err)
				return nil, nil, false
			}
			input.PointsReference = points
		}
		return &input, nil, true
	}

	input := trekapp.UpdateTrekInput{
		Name:              req.Name,
		Departure:         req.Departure,
		Arrival:           req.Arrival,
		DescriptionTeaser: req.DescriptionTeaser,
		Description:       req.Description,
		Ambiance:          req.Ambiance,
		Access:            req.Access,
		Advice:            req.Advice,
		DurationHours:     req.DurationHours,
		DifficultyID:      difficultyID,
		PracticeID:        practiceID,
		RouteID:           routeID,
		ThemeIDs:          themeIDs,
		NetworkIDs:        networkIDs,
		AccessibilityIDs:  accessibilityIDs,
		WebLinkIDs:        webLinkIDs,
	}
	if req.Geometry != nil {
		geom, err := req.Geometry.ToGeometry()
		if err != nil {
			h.HandleError(c, err)
			return nil, nil, false
		}
		input.Geometry = &geom
	}
	if req.ParkingLocation != nil {
		parking, err := req.ParkingLocation.ToGeometry()
		if err != nil {
			h.HandleError(c, err)
			return nil, nil, false
		}
		input.ParkingLocation = &parking
	}
	if req.PointsReference != nil {
		points, err := req.PointsReference.ToGeometry()
		if err != nil {
			h.HandleError(c, err)
			return nil, nil, false
		}
		input.PointsReference = &points
	}
	return nil, &input, true
}

// CreateTrek godoc
// @Summary      Create a trek
// @Description  Register a new trek with its itinerary geometry
// @Tags         trekking
// @Accept       json
// @Produce      json
// @Param        request body TrekRequest true "Trek payload"
// @Success      201 {object} dto.Response{data=trekking.Trek}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/treks [post]
func (h *TrekkingHandler) CreateTrek(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	var req TrekRequest
	if !h.bindJSON(c, &req) {
		return
	}
	input, _, ok := h.trekInputFromRequest(c, &req, true)
	if !ok {
		return
	}

	trek, err := h.trekService.Create(c.Request.Context(), actor, *input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, trek)
}

// GetTrek godoc
// @Summary      Get a trek
// @Tags         trekking
// @Produce      json
// @Param        id path string true "Trek ID"
// @Success      200 {object} dto.Response{data=trekking.Trek}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/treks/{id} [get]
func (h *TrekkingHandler) GetTrek(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	trek, err := h.trekService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, trek)
}

// ListTreks godoc
// @Summary      List treks
// @Tags         trekking
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Name search"
// @Success      200 {object} dto.Response{data=[]trekking.Trek}
// @Security     BearerAuth
// @Router       /trekking/treks [get]
func (h *TrekkingHandler) ListTreks(c *gin.Context) {
	page, err := h.trekService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// UpdateTrek godoc
// @Summary      Update a trek
// @Tags         trekking
// @Accept       json
// @Produce      json
// @Param        id path string true "Trek ID"
// @Param        request body TrekRequest true "Trek payload"
// @Success      200 {object} dto.Response{data=trekking.Trek}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/treks/{id} [put]
func (h *TrekkingHandler) UpdateTrek(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req TrekRequest
	if !h.bindJSON(c, &req) {
		return
	}
	_, input, ok := h.trekInputFromRequest(c, &req, false)
	if !ok {
		return
	}

	trek, err := h.trekService.Update(c.Request.Context(), actor, id, *input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, trek)
}

// DeleteTrek godoc
// @Summary      Delete a trek
// @Tags         trekking
// @Produce      json
// @Param        id path string true "Trek ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/treks/{id} [delete]
func (h *TrekkingHandler) DeleteTrek(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.trekService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// PublishTrek godoc
// @Summary      Publish a trek
// @Description  Make the trek visible on public portals
// @Tags         trekking
// @Produce      json
// @Param        id path string true "Trek ID"
// @Success      200 {object} dto.Response{data=trekking.Trek}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/treks/{id}/publish [post]
func (h *TrekkingHandler) PublishTrek(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	trek, err := h.trekService.Publish(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, trek)
}

// UnpublishTrek godoc
// @Summary      Unpublish a trek
// @Tags         trekking
// @Produce      json
// @Param        id path string true "Trek ID"
// @Success      200 {object} dto.Response{data=trekking.Trek}
// @Security     BearerAuth
// @Router       /trekking/treks/{id}/unpublish [post]
func (h *TrekkingHandler) UnpublishTrek(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	trek, err := h.trekService.Unpublish(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, trek)
}

// TrekChildren godoc
// @Summary      List the ordered child treks
// @Description  Return the itinerary steps of a multi-day trek in order
// @Tags         trekking
// @Produce      json
// @Param        id path string true "Parent trek ID"
// @Success      200 {object} dto.Response{data=[]trekking.OrderedTrekChild}
// @Security     BearerAuth
// @Router       /trekking/treks/{id}/children [get]
func (h *TrekkingHandler) TrekChildren(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	children, err := h.trekService.Children(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, children)
}

// ReorderTrekChildren godoc
// @Summary      Reorder the child treks
// @Description  Replace the step ordering of a multi-day trek
// @Tags         trekking
// @Accept       json
// @Produce      json
// @Param        id path string true "Parent trek ID"
// @Param        request body ReorderChildrenRequest true "Ordered child IDs"
// @Success      204
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/treks/{id}/children [put]
func (h *TrekkingHandler) ReorderTrekChildren(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req ReorderChildrenRequest
	if !h.bindJSON(c, &req) {
		return
	}
	childIDs, err := parseUUIDs(req.ChildIDs)
	if err != nil {
		h.BadRequest(c, "Invalid child_ids format")
		return
	}

	if err := h.trekService.ReorderChildren(c.Request.Context(), actor, id, childIDs); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RelateTrek godoc
// @Summary      Relate two treks
// @Description  Record a symmetric relationship between this trek and another
// @Tags         trekking
// @Accept       json
// @Produce      json
// @Param        id path string true "Trek ID"
// @Param        request body RelateTreksRequest true "Relationship payload"
// @Success      201 {object} dto.Response{data=trekking.TrekRelationship}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/treks/{id}/relationships [post]
func (h *TrekkingHandler) RelateTrek(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req RelateTreksRequest
	if !h.bindJSON(c, &req) {
		return
	}
	trekBID, err := uuid.Parse(req.TrekBID)
	if err != nil {
		h.BadRequest(c, "Invalid trek_b_id format")
		return
	}

	rel, err := h.trekService.Relate(c.Request.Context(), actor, trekapp.RelateTreksInput{
		TrekAID:            id,
		TrekBID:            trekBID,
		HasCommonDeparture: req.HasCommonDeparture,
		HasCommonEdge:      req.HasCommonEdge,
		IsCircuitStep:      req.IsCircuitStep,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, rel)
}

// UnrelateTrek godoc
// @Summary      Remove a trek relationship
// @Tags         trekking
// @Produce      json
// @Param        id path string true "Trek ID"
// @Param        relationship_id path string true "Relationship ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/treks/{id}/relationships/{relationship_id} [delete]
func (h *TrekkingHandler) UnrelateTrek(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	relationshipID, ok := h.uuidParam(c, "relationship_id")
	if !ok {
		return
	}

	if err := h.trekService.Unrelate(c.Request.Context(), actor, id, relationshipID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// TrekRelationships godoc
// @Summary      List a trek's relationships
// @Tags         trekking
// @Produce      json
// @Param        id path string true "Trek ID"
// @Success      200 {object} dto.Response{data=[]trekking.TrekRelationship}
// @Security     BearerAuth
// @Router       /trekking/treks/{id}/relationships [get]
func (h *TrekkingHandler) TrekRelationships(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	rels, err := h.trekService.Relationships(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rels)
}

// PublishedTrekLayer godoc
// @Summary      Published treks as GeoJSON
// @Description  Return the cached GeoJSON feature collection of published treks
// @Tags         trekking
// @Produce      json
// @Success      200 {string} string "GeoJSON FeatureCollection"
// @Router       /public/treks.geojson [get]
func (h *TrekkingHandler) PublishedTrekLayer(c *gin.Context) {
	layer, err := h.trekService.PublishedLayer(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/geo+json", layer)
}

// ExportTrekKML godoc
// @Summary      Export a trek as KML
// @Tags         trekking
// @Produce      application/vnd.google-earth.kml+xml
// @Param        id path string true "Trek ID"
// @Success      200 {string} string "KML document"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/treks/{id}/kml [get]
func (h *TrekkingHandler) ExportTrekKML(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	kml, err := h.trekService.ExportKML(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="trek.kml"`)
	c.Data(http.StatusOK, "application/vnd.google-earth.kml+xml", kml)
}

// CreatePOI godoc
// @Summary      Create a POI
// @Tags         trekking
// @Accept       json
// @Produce      json
// @Param        request body POIRequest true "POI payload"
// @Success      201 {object} dto.Response{data=trekking.POI}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/pois [post]
func (h *TrekkingHandler) CreatePOI(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	var req POIRequest
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

	poi, err := h.poiService.Create(c.Request.Context(), actor, trekapp.CreatePOIInput{
		Name:        req.Name,
		Description: req.Description,
		TypeID:      typeID,
		Geometry:    geom,
		EID:         req.EID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, poi)
}

// GetPOI godoc
// @Summary      Get a POI
// @Tags         trekking
// @Produce      json
// @Param        id path string true "POI ID"
// @Success      200 {object} dto.Response{data=trekking.POI}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/pois/{id} [get]
func (h *TrekkingHandler) GetPOI(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	poi, err := h.poiService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, poi)
}

// ListPOIs godoc
// @Summary      List POIs
// @Tags         trekking
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        trek_id query string false "Only POIs near this trek"
// @Success      200 {object} dto.Response{data=[]trekking.POI}
// @Security     BearerAuth
// @Router       /trekking/pois [get]
func (h *TrekkingHandler) ListPOIs(c *gin.Context) {
	if raw := c.Query("trek_id"); raw != "" {
		trekID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid trek_id format")
			return
		}
		pois, err := h.poiService.ListForTrek(c.Request.Context(), trekID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, pois)
		return
	}

	page, err := h.poiService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// UpdatePOI godoc
// @Summary      Update a POI
// @Tags         trekking
// @Accept       json
// @Produce      json
// @Param        id path string true "POI ID"
// @Param        request body POIRequest true "POI payload"
// @Success      200 {object} dto.Response{data=trekking.POI}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/pois/{id} [put]
func (h *TrekkingHandler) UpdatePOI(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req POIRequest
	if !h.bindJSON(c, &req) {
		return
	}
	typeID, err := uuid.Parse(req.TypeID)
	if err != nil {
		h.BadRequest(c, "Invalid type_id format")
		return
	}
	input := trekapp.UpdatePOIInput{
		Name:        req.Name,
		Description: req.Description,
		TypeID:      typeID,
	}
	if req.Geometry != nil {
		geom, err := req.Geometry.ToGeometry()
		if err != nil {
			h.HandleError(c, err)
			return
		}
		input.Geometry = &geom
	}

	poi, err := h.poiService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, poi)
}

// DeletePOI godoc
// @Summary      Delete a POI
// @Tags         trekking
// @Produce      json
// @Param        id path string true "POI ID"
// @Success      204
// @Security     BearerAuth
// @Router       /trekking/pois/{id} [delete]
func (h *TrekkingHandler) DeletePOI(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.poiService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// PublishPOI godoc
// @Summary      Publish a POI
// @Tags         trekking
// @Produce      json
// @Param        id path string true "POI ID"
// @Success      200 {object} dto.Response{data=trekking.POI}
// @Security     BearerAuth
// @Router       /trekking/pois/{id}/publish [post]
func (h *TrekkingHandler) PublishPOI(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	poi, err := h.poiService.Publish(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, poi)
}

// UnpublishPOI godoc
// @Summary      Unpublish a POI
// @Tags         trekking
// @Produce      json
// @Param        id path string true "POI ID"
// @Success      200 {object} dto.Response{data=trekking.POI}
// @Security     BearerAuth
// @Router       /trekking/pois/{id}/unpublish [post]
func (h *TrekkingHandler) UnpublishPOI(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	poi, err := h.poiService.Unpublish(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, poi)
}

// CreateServicePoint godoc
// @Summary      Create a service point
// @Tags         trekking
// @Accept       json
// @Produce      json
// @Param        request body ServicePointRequest true "Service point payload"
// @Success      201 {object} dto.Response{data=trekking.Service}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/services [post]
func (h *TrekkingHandler) CreateServicePoint(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	var req ServicePointRequest
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

	service, err := h.serviceService.Create(c.Request.Context(), actor, trekapp.CreateServiceInput{
		TypeID:   typeID,
		Geometry: geom,
		EID:      req.EID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, service)
}

// GetServicePoint godoc
// @Summary      Get a service point
// @Tags         trekking
// @Produce      json
// @Param        id path string true "Service point ID"
// @Success      200 {object} dto.Response{data=trekking.Service}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/services/{id} [get]
func (h *TrekkingHandler) GetServicePoint(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	service, err := h.serviceService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, service)
}

// ListServicePoints godoc
// @Summary      List service points
// @Tags         trekking
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        trek_id query string false "Only services near this trek"
// @Success      200 {object} dto.Response{data=[]trekking.Service}
// @Security     BearerAuth
// @Router       /trekking/services [get]
func (h *TrekkingHandler) ListServicePoints(c *gin.Context) {
	if raw := c.Query("trek_id"); raw != "" {
		trekID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid trek_id format")
			return
		}
		services, err := h.serviceService.ListForTrek(c.Request.Context(), trekID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, services)
		return
	}

	page, err := h.serviceService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// UpdateServicePoint godoc
// @Summary      Update a service point
// @Tags         trekking
// @Accept       json
// @Produce      json
// @Param        id path string true "Service point ID"
// @Param        request body ServicePointRequest true "Service point payload"
// @Success      200 {object} dto.Response{data=trekking.Service}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/services/{id} [put]
func (h *TrekkingHandler) UpdateServicePoint(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req ServicePointRequest
	if !h.bindJSON(c, &req) {
		return
	}
	typeID, err := uuid.Parse(req.TypeID)
	if err != nil {
		h.BadRequest(c, "Invalid type_id format")
		return
	}
	input := trekapp.UpdateServiceInput{TypeID: typeID}
	if req.Geometry != nil {
		geom, err := req.Geometry.ToGeometry()
		if err != nil {
			h.HandleError(c, err)
			return
		}
		input.Geometry = &geom
	}

	service, err := h.serviceService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, service)
}

// DeleteServicePoint godoc
// @Summary      Delete a service point
// @Tags         trekking
// @Produce      json
// @Param        id path string true "Service point ID"
// @Success      204
// @Security     BearerAuth
// @Router       /trekking/services/{id} [delete]
func (h *TrekkingHandler) DeleteServicePoint(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.serviceService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreatePractice godoc
// @Summary      Create a practice
// @Tags         trekking
// @Accept       json
// @Produce      json
// @Param        request body TrekPicklistRequest true "Practice payload"
// @Success      201 {object} dto.Response{data=trekking.Practice}
// @Security     BearerAuth
// @Router       /trekking/practices [post]
func (h *TrekkingHandler) CreatePractice(c *gin.Context) {
	var req TrekPicklistRequest
	if !h.bindJSON(c, &req) {
		return
	}

	practice, err := h.picklistService.CreatePractice(c.Request.Context(), req.Name, req.Pictogram, req.Rank)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, practice)
}

// ListPractices godoc
// @Summary      List practices
// @Tags         trekking
// @Produce      json
// @Success      200 {object} dto.Response{data=[]trekking.Practice}
// @Security     BearerAuth
// @Router       /trekking/practices [get]
func (h *TrekkingHandler) ListPractices(c *gin.Context) {
	practices, err := h.picklistService.ListPractices(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, practices)
}

// UpdatePractice godoc
// @Summary      Update a practice
// @Tags         trekking
// @Accept       json
// @Produce      json
// @Param        id path string true "Practice ID"
// @Param        request body TrekPicklistRequest true "Practice payload"
// @Success      200 {object} dto.Response{data=trekking.Practice}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/practices/{id} [put]
func (h *TrekkingHandler) UpdatePractice(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req TrekPicklistRequest
	if !h.bindJSON(c, &req) {
		return
	}

	practice, err := h.picklistService.UpdatePractice(c.Request.Context(), id, req.Name, req.Pictogram, req.Rank)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, practice)
}

// DeletePractice godoc
// @Summary      Delete a practice
// @Tags         trekking
// @Produce      json
// @Param        id path string true "Practice ID"
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/practices/{id} [delete]
func (h *TrekkingHandler) DeletePractice(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.picklistService.DeletePractice(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateDifficulty godoc
// @Summary      Create a difficulty level
// @Tags         trekking
// @Accept       json
// @Produce      json
// @Param        request body TrekPicklistRequest true "Difficulty payload"
// @Success      201 {object} dto.Response{data=trekking.DifficultyLevel}
// @Security     BearerAuth
// @Router       /trekking/difficulties [post]
func (h *TrekkingHandler) CreateDifficulty(c *gin.Context) {
	var req TrekPicklistRequest
	if !h.bindJSON(c, &req) {
		return
	}

	difficulty, err := h.picklistService.CreateDifficulty(c.Request.Context(), req.Name, req.Pictogram, req.Rank)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, difficulty)
}

// ListDifficulties godoc
// @Summary      List difficulty levels
// @Tags         trekking
// @Produce      json
// @Success      200 {object} dto.Response{data=[]trekking.DifficultyLevel}
// @Security     BearerAuth
// @Router       /trekking/difficulties [get]
func (h *TrekkingHandler) ListDifficulties(c *gin.Context) {
	difficulties, err := h.picklistService.ListDifficulties(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, difficulties)
}

// DeleteDifficulty godoc
// @Summary      Delete a difficulty level
// @Tags         trekking
// @Produce      json
// @Param        id path string true "Difficulty ID"
// @Success      204
// @Security     BearerAuth
// @Router       /trekking/difficulties/{id} [delete]
func (h *TrekkingHandler) DeleteDifficulty(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.picklistService.DeleteDifficulty(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateRoute godoc
// @Summary      Create a route type
// @Tags         trekking
// @Accept       json
// @Produce      json
// @Param        request body TrekPicklistRequest true "Route payload"
// @Success      201 {object} dto.Response{data=trekking.Route}
// @Security     BearerAuth
// @Router       /trekking/routes [post]
func (h *TrekkingHandler) CreateRoute(c *gin.Context) {
	var req TrekPicklistRequest
	if !h.bindJSON(c, &req) {
		return
	}

	route, err := h.picklistService.CreateRoute(c.Request.Context(), req.Name, req.Pictogram)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, route)
}

// ListRoutes godoc
// @Summary      List route types
// @Tags         trekking
// @Produce      json
// @Success      200 {object} dto.Response{data=[]trekking.Route}
// @Security     BearerAuth
// @Router       /trekking/routes [get]
func (h *TrekkingHandler) ListRoutes(c *gin.Context) {
	routes, err := h.picklistService.ListRoutes(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, routes)
}

// DeleteRoute godoc
// @Summary      Delete a route type
// @Tags         trekking
// @Produce      json
// @Param        id path string true "Route ID"
// @Success      204
// @Security     BearerAuth
// @Router       /trekking/routes/{id} [delete]
func (h *TrekkingHandler) DeleteRoute(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.picklistService.DeleteRoute(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreatePOIType godoc
// @Summary      Create a POI type
// @Tags         trekking
// @Accept       json
// @Produce      json
// @Param        request body TrekPicklistRequest true "POI type payload"
// @Success      201 {object} dto.Response{data=trekking.POIType}
// @Security     BearerAuth
// @Router       /trekking/poi-types [post]
func (h *TrekkingHandler) CreatePOIType(c *gin.Context) {
	var req TrekPicklistRequest
	if !h.bindJSON(c, &req) {
		return
	}

	poiType, err := h.picklistService.CreatePOIType(c.Request.Context(), req.Name, req.Pictogram)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, poiType)
}

// ListPOITypes godoc
// @Summary      List POI types
// @Tags         trekking
// @Produce      json
// @Success      200 {object} dto.Response{data=[]trekking.POIType}
// @Security     BearerAuth
// @Router       /trekking/poi-types [get]
func (h *TrekkingHandler) ListPOITypes(c *gin.Context) {
	types, err := h.picklistService.ListPOITypes(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, types)
}

// DeletePOIType godoc
// @Summary      Delete a POI type
// @Tags         trekking
// @Produce      json
// @Param        id path string true "POI type ID"
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trekking/poi-types/{id} [delete]
func (h *TrekkingHandler) DeletePOIType(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.picklistService.DeletePOIType(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateServiceType godoc
// @Summary      Create a service type
// @Tags         trekking
// @Accept       json
// @Produce      json
// @Param        request body TrekPicklistRequest true "Service type payload"
// @Success      201 {object} dto.Response{data=trekking.ServiceType}
// @Security     BearerAuth
// @Router       /trekking/service-types [post]
func (h *TrekkingHandler) CreateServiceType(c *gin.Context) {
	var req TrekPicklistRequest
	if !h.bindJSON(c, &req) {
		return
	}
	practiceIDs, err := parseUUIDs(req.PracticeIDs)
	if err != nil {
		h.BadRequest(c, "Invalid practice_ids format")
		return
	}

	serviceType, err := h.picklistService.CreateServiceType(c.Request.Context(), req.Name, req.Pictogram, practiceIDs)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, serviceType)
}

// ListServiceTypes godoc
// @Summary      List service types
// @Tags         trekking
// @Produce      json
// @Success      200 {object} dto.Response{data=[]trekking.ServiceType}
// @Security     BearerAuth
// @Router       /trekking/service-types [get]
func (h *TrekkingHandler) ListServiceTypes(c *gin.Context) {
	types, err := h.picklistService.ListServiceTypes(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, types)
}

// DeleteServiceType godoc
// @Summary      Delete a service type
// @Tags         trekking
// @Produce      json
// @Param        id path string true "Service type ID"
// @Success      204
// @Security     BearerAuth
// @Router       /trekking/service-types/{id} [delete]
func (h *TrekkingHandler) DeleteServiceType(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.picklistService.DeleteServiceType(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
