package handler

import (
	"io"

	tourismapp "github.com/geotrail/backend/internal/application/tourism"
	"github.com/geotrail/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 10 MB is plenty for a desk photo
const maxPhotoSize = 10 << 20

// TourismHandler handles touristic contents, information desks and
// their picklists
type TourismHandler struct {
	BaseHandler
	contentService  *tourismapp.ContentService
	deskService     *tourismapp.DeskService
	picklistService *tourismapp.PicklistService
}

// NewTourismHandler creates a new TourismHandler
func NewTourismHandler(
	contentService *tourismapp.ContentService,
	deskService *tourismapp.DeskService,
	picklistService *tourismapp.PicklistService,
) *TourismHandler {
	return &TourismHandler{
		contentService:  contentService,
		deskService:     deskService,
		picklistService: picklistService,
	}
}

// TouristicContentRequest carries the fields for a touristic content
type TouristicContentRequest struct {
	Name          string             `json:"name" binding:"required,min=1,max=250" example:"Refuge de Furfande"`
	TeaserText    string             `json:"teaser_text"`
	Description   string             `json:"description"`
	Practical     string             `json:"practical"`
	Geometry      *dto.GeometryInput `json:"geometry"`
	CategoryID    string             `json:"category_id" binding:"required,uuid"`
	Type1IDs      []string           `json:"type1_ids" binding:"omitempty,dive,uuid"`
	Type2IDs      []string           `json:"type2_ids" binding:"omitempty,dive,uuid"`
	ThemeIDs      []string           `json:"theme_ids" binding:"omitempty,dive,uuid"`
	ContactInfo   string             `json:"contact_info"`
	Email         string             `json:"email" binding:"omitempty,email"`
	Website       string             `json:"website" binding:"omitempty,url"`
	ReservationID string             `json:"reservation_id" binding:"max=128"`
	EID           string             `json:"eid" binding:"max=128"`
}

// InformationDeskRequest carries the fields for an information desk
type InformationDeskRequest struct {
	Name         string             `json:"name" binding:"required,min=1,max=250"`
	TypeID       string             `json:"type_id" binding:"required,uuid"`
	Description  string             `json:"description"`
	Phone        string             `json:"phone" binding:"max=50"`
	Email        string             `json:"email" binding:"omitempty,email"`
	Website      string             `json:"website" binding:"omitempty,url"`
	Street       string             `json:"street" binding:"max=250"`
	PostalCode   string             `json:"postal_code" binding:"max=16"`
	Municipality string             `json:"municipality" binding:"max=250"`
	Geometry     *dto.GeometryInput `json:"geometry"`
}

// ContentCategoryRequest carries the fields for a content category
type ContentCategoryRequest struct {
	Label      string `json:"label" binding:"required,min=1,max=250"`
	TypeLabel1 string `json:"type_label1" binding:"max=250"`
	TypeLabel2 string `json:"type_label2" binding:"max=250"`
}

// ContentTypeRequest carries the fields for a content type
type ContentTypeRequest struct {
	Label      string `json:"label" binding:"required,min=1,max=250"`
	CategoryID string `json:"category_id" binding:"required,uuid"`
	List       int    `json:"list" binding:"required,oneof=1 2"`
}

// DeskTypeRequest carries the fields for an information desk type
type DeskTypeRequest struct {
	Label     string `json:"label" binding:"required,min=1,max=250"`
	Pictogram string `json:"pictogram" binding:"max=512"`
}

func (h *TourismHandler) contentInput(c *gin.Context, req *TouristicContentRequest) (categoryID uuid.UUID, type1IDs, type2IDs, themeIDs []uuid.UUID, ok bool) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		h.BadRequest(c, "Invalid category_id format")
		return uuid.Nil, nil, nil, nil, false
	}
	type1IDs, err = parseUUIDs(req.Type1IDs)
	if err != nil {
		h.BadRequest(c, "Invalid type1_ids format")
		return uuid.Nil, nil, nil, nil, false
	}
	type2IDs, err = parseUUIDs(req.Type2IDs)
	if err != nil {
		h.BadRequest(c, "Invalid type2_ids format")
		return uuid.Nil, nil, nil, nil, false
	}
	themeIDs, err = parseUUIDs(req.ThemeIDs)
	if err != nil {
		h.BadRequest(c, "Invalid theme_ids format")
		return uuid.Nil, nil, nil, nil, false
	}
	return categoryID, type1IDs, type2IDs, themeIDs, true
}

// CreateContent godoc
// @Summary      Record a touristic content
// @Tags         tourism
// @Accept       json
// @Produce      json
// @Param        request body TouristicContentRequest true "Content payload"
// @Success      201 {object} dto.Response{data=tourism.TouristicContent}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tourism/contents [post]
func (h *TourismHandler) CreateContent(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	var req TouristicContentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	categoryID, type1IDs, type2IDs, themeIDs, ok := h.contentInput(c, &req)
	if !ok {
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

	content, err := h.contentService.Create(c.Request.Context(), actor, tourismapp.CreateContentInput{
		Name:          req.Name,
		TeaserText:    req.TeaserText,
		Description:   req.Description,
		Practical:     req.Practical,
		Geometry:      geom,
		CategoryID:    categoryID,
		Type1IDs:      type1IDs,
		Type2IDs:      type2IDs,
		ThemeIDs:      themeIDs,
		ContactInfo:   req.ContactInfo,
		Email:         req.Email,
		Website:       req.Website,
		ReservationID: req.ReservationID,
		EID:           req.EID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, content)
}

// GetContent godoc
// @Summary      Get a touristic content
// @Tags         tourism
// @Produce      json
// @Param        id path string true "Content ID"
// @Success      200 {object} dto.Response{data=tourism.TouristicContent}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tourism/contents/{id} [get]
func (h *TourismHandler) GetContent(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	content, err := h.contentService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, content)
}

// ListContents godoc
// @Summary      List touristic contents
// @Tags         tourism
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        category_id query string false "Filter by category"
// @Param        approved query bool false "Only approved contents"
// @Param        trek_id query string false "Only contents near this trek"
// @Success      200 {object} dto.Response{data=[]tourism.TouristicContent}
// @Security     BearerAuth
// @Router       /tourism/contents [get]
func (h *TourismHandler) ListContents(c *gin.Context) {
	ctx := c.Request.Context()

	if raw := c.Query("trek_id"); raw != "" {
		trekID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid trek_id format")
			return
		}
		contents, err := h.contentService.ListForTrek(ctx, trekID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, contents)
		return
	}
	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid category_id format")
			return
		}
		contents, err := h.contentService.ListByCategory(ctx, categoryID, filterFromQuery(c))
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, contents)
		return
	}
	if c.Query("approved") == "true" {
		contents, err := h.contentService.ListApproved(ctx, filterFromQuery(c))
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, contents)
		return
	}

	page, err := h.contentService.List(ctx, filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// UpdateContent godoc
// @Summary      Update a touristic content
// @Tags         tourism
// @Accept       json
// @Produce      json
// @Param        id path string true "Content ID"
// @Param        request body TouristicContentRequest true "Content payload"
// @Success      200 {object} dto.Response{data=tourism.TouristicContent}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tourism/contents/{id} [put]
func (h *TourismHandler) UpdateContent(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req TouristicContentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	categoryID, type1IDs, type2IDs, themeIDs, ok := h.contentInput(c, &req)
	if !ok {
		return
	}
	input := tourismapp.UpdateContentInput{
		Name:          req.Name,
		TeaserText:    req.TeaserText,
		Description:   req.Description,
		Practical:     req.Practical,
		CategoryID:    categoryID,
		Type1IDs:      type1IDs,
		Type2IDs:      type2IDs,
		ThemeIDs:      themeIDs,
		ContactInfo:   req.ContactInfo,
		Email:         req.Email,
		Website:       req.Website,
		ReservationID: req.ReservationID,
	}
	if req.Geometry != nil {
		geom, err := req.Geometry.ToGeometry()
		if err != nil {
			h.HandleError(c, err)
			return
		}
		input.Geometry = &geom
	}

	content, err := h.contentService.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, content)
}

// DeleteContent godoc
// @Summary      Delete a touristic content
// @Tags         tourism
// @Produce      json
// @Param        id path string true "Content ID"
// @Success      204
// @Security     BearerAuth
// @Router       /tourism/contents/{id} [delete]
func (h *TourismHandler) DeleteContent(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.contentService.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ApproveContent godoc
// @Summary      Approve a touristic content
// @Description  Mark an imported or drafted content as editorially approved
// @Tags         tourism
// @Produce      json
// @Param        id path string true "Content ID"
// @Success      200 {object} dto.Response{data=tourism.TouristicContent}
// @Security     BearerAuth
// @Router       /tourism/contents/{id}/approve [post]
func (h *TourismHandler) ApproveContent(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	content, err := h.contentService.Approve(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, content)
}

// PublishContent godoc
// @Summary      Publish a touristic content
// @Tags         tourism
// @Produce      json
// @Param        id path string true "Content ID"
// @Success      200 {object} dto.Response{data=tourism.TouristicContent}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tourism/contents/{id}/publish [post]
func (h *TourismHandler) PublishContent(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	content, err := h.contentService.Publish(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, content)
}

// UnpublishContent godoc
// @Summary      Unpublish a touristic content
// @Tags         tourism
// @Produce      json
// @Param        id path string true "Content ID"
// @Success      200 {object} dto.Response{data=tourism.TouristicContent}
// @Security     BearerAuth
// @Router       /tourism/contents/{id}/unpublish [post]
func (h *TourismHandler) UnpublishContent(c *gin.Context) {
	actor, ok := h.getActor(c)
	if !ok {
		return
	}
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	content, err := h.contentService.Unpublish(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, content)
}

// CreateDesk godoc
// @Summary      Register an information desk
// @Tags         tourism
// @Accept       json
// @Produce      json
// @Param        request body InformationDeskRequest true "Desk payload"
// @Success      201 {object} dto.Response{data=tourism.InformationDesk}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tourism/desks [post]
func (h *TourismHandler) CreateDesk(c *gin.Context) {
	var req InformationDeskRequest
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

	desk, err := h.deskService.Create(c.Request.Context(), tourismapp.CreateDeskInput{
		Name:         req.Name,
		TypeID:       typeID,
		Description:  req.Description,
		Phone:        req.Phone,
		Email:        req.Email,
		Website:      req.Website,
		Street:       req.Street,
		PostalCode:   req.PostalCode,
		Municipality: req.Municipality,
		Geometry:     geom,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, desk)
}

// GetDesk godoc
// @Summary      Get an information desk
// @Tags         tourism
// @Produce      json
// @Param        id path string true "Desk ID"
// @Success      200 {object} dto.Response{data=tourism.InformationDesk}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tourism/desks/{id} [get]
func (h *TourismHandler) GetDesk(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	desk, err := h.deskService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, desk)
}

// ListDesks godoc
// @Summary      List information desks
// @Tags         tourism
// @Produce      json
// @Param        type_id query string false "Filter by desk type"
// @Success      200 {object} dto.Response{data=[]tourism.InformationDesk}
// @Security     BearerAuth
// @Router       /tourism/desks [get]
func (h *TourismHandler) ListDesks(c *gin.Context) {
	if raw := c.Query("type_id"); raw != "" {
		typeID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid type_id format")
			return
		}
		desks, err := h.deskService.ListByType(c.Request.Context(), typeID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, desks)
		return
	}

	desks, err := h.deskService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, desks)
}

// UpdateDesk godoc
// @Summary      Update an information desk
// @Tags         tourism
// @Accept       json
// @Produce      json
// @Param        id path string true "Desk ID"
// @Param        request body InformationDeskRequest true "Desk payload"
// @Success      200 {object} dto.Response{data=tourism.InformationDesk}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tourism/desks/{id} [put]
func (h *TourismHandler) UpdateDesk(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req InformationDeskRequest
	if !h.bindJSON(c, &req) {
		return
	}
	input := tourismapp.UpdateDeskInput{
		Description:  req.Description,
		Phone:        req.Phone,
		Email:        req.Email,
		Website:      req.Website,
		Street:       req.Street,
		PostalCode:   req.PostalCode,
		Municipality: req.Municipality,
	}
	if req.Geometry != nil {
		geom, err := req.Geometry.ToGeometry()
		if err != nil {
			h.HandleError(c, err)
			return
		}
		input.Geometry = &geom
	}

	desk, err := h.deskService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, desk)
}

// DeleteDesk godoc
// @Summary      Delete an information desk
// @Tags         tourism
// @Produce      json
// @Param        id path string true "Desk ID"
// @Success      204
// @Security     BearerAuth
// @Router       /tourism/desks/{id} [delete]
func (h *TourismHandler) DeleteDesk(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.deskService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// UploadDeskPhoto godoc
// @Summary      Upload an information desk photo
// @Description  Store the desk photo and record its storage key
// @Tags         tourism
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Desk ID"
// @Param        photo formData file true "Photo file"
// @Success      200 {object} dto.Response{data=tourism.InformationDesk}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tourism/desks/{id}/photo [post]
func (h *TourismHandler) UploadDeskPhoto(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		h.BadRequest(c, "Missing photo file")
		return
	}
	if file.Size > maxPhotoSize {
		h.BadRequest(c, "Photo exceeds the 10 MB limit")
		return
	}
	src, err := file.Open()
	if err != nil {
		h.BadRequest(c, "Unreadable photo file")
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		h.BadRequest(c, "Unreadable photo file")
		return
	}
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	desk, err := h.deskService.UploadPhoto(c.Request.Context(), id, data, contentType)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, desk)
}

// CreateContentCategory godoc
// @Summary      Create a content category
// @Tags         tourism
// @Accept       json
// @Produce      json
// @Param        request body ContentCategoryRequest true "Category payload"
// @Success      201 {object} dto.Response{data=tourism.TouristicContentCategory}
// @Security     BearerAuth
// @Router       /tourism/categories [post]
func (h *TourismHandler) CreateContentCategory(c *gin.Context) {
	var req ContentCategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	category, err := h.picklistService.CreateCategory(c.Request.Context(), req.Label, req.TypeLabel1, req.TypeLabel2)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, category)
}

// ListContentCategories godoc
// @Summary      List content categories
// @Tags         tourism
// @Produce      json
// @Success      200 {object} dto.Response{data=[]tourism.TouristicContentCategory}
// @Security     BearerAuth
// @Router       /tourism/categories [get]
func (h *TourismHandler) ListContentCategories(c *gin.Context) {
	categories, err := h.picklistService.ListCategories(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}

// DeleteContentCategory godoc
// @Summary      Delete a content category
// @Tags         tourism
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tourism/categories/{id} [delete]
func (h *TourismHandler) DeleteContentCategory(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.picklistService.DeleteCategory(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateContentType godoc
// @Summary      Create a content type
// @Description  Add a type label to one of a category's two type lists
// @Tags         tourism
// @Accept       json
// @Produce      json
// @Param        request body ContentTypeRequest true "Type payload"
// @Success      201 {object} dto.Response{data=tourism.TouristicContentType}
// @Security     BearerAuth
// @Router       /tourism/content-types [post]
func (h *TourismHandler) CreateContentType(c *gin.Context) {
	var req ContentTypeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		h.BadRequest(c, "Invalid category_id format")
		return
	}

	contentType, err := h.picklistService.CreateType(c.Request.Context(), req.Label, categoryID, req.List)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, contentType)
}

// ListContentTypes godoc
// @Summary      List content types
// @Tags         tourism
// @Produce      json
// @Param        category_id query string true "Category ID"
// @Param        list query int false "Type list" Enums(1,2) default(1)
// @Success      200 {object} dto.Response{data=[]tourism.TouristicContentType}
// @Security     BearerAuth
// @Router       /tourism/content-types [get]
func (h *TourismHandler) ListContentTypes(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Query("category_id"))
	if err != nil {
		h.BadRequest(c, "Invalid category_id format")
		return
	}
	list := 1
	if c.Query("list") == "2" {
		list = 2
	}

	types, err := h.picklistService.ListTypes(c.Request.Context(), categoryID, list)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, types)
}

// DeleteContentType godoc
// @Summary      Delete a content type
// @Tags         tourism
// @Produce      json
// @Param        id path string true "Type ID"
// @Success      204
// @Security     BearerAuth
// @Router       /tourism/content-types/{id} [delete]
func (h *TourismHandler) DeleteContentType(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.picklistService.DeleteType(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateDeskType godoc
// @Summary      Create an information desk type
// @Tags         tourism
// @Accept       json
// @Produce      json
// @Param        request body DeskTypeRequest true "Desk type payload"
// @Success      201 {object} dto.Response{data=tourism.InformationDeskType}
// @Security     BearerAuth
// @Router       /tourism/desk-types [post]
func (h *TourismHandler) CreateDeskType(c *gin.Context) {
	var req DeskTypeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	deskType, err := h.picklistService.CreateDeskType(c.Request.Context(), req.Label, req.Pictogram)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, deskType)
}

// ListDeskTypes godoc
// @Summary      List information desk types
// @Tags         tourism
// @Produce      json
// @Success      200 {object} dto.Response{data=[]tourism.InformationDeskType}
// @Security     BearerAuth
// @Router       /tourism/desk-types [get]
func (h *TourismHandler) ListDeskTypes(c *gin.Context) {
	types, err := h.picklistService.ListDeskTypes(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, types)
}

// DeleteDeskType godoc
// @Summary      Delete an information desk type
// @Tags         tourism
// @Produce      json
// @Param        id path string true "Desk type ID"
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /tourism/desk-types/{id} [delete]
func (h *TourismHandler) DeleteDeskType(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.picklistService.DeleteDeskType(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
