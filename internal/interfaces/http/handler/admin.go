package handler

import (
	"github.com/geotrail/backend/internal/application/authent"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles structure, user and role administration
type AdminHandler struct {
	BaseHandler
	structureService *authent.StructureService
	userService      *authent.UserService
	roleService      *authent.RoleService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	structureService *authent.StructureService,
	userService *authent.UserService,
	roleService *authent.RoleService,
) *AdminHandler {
	return &AdminHandler{
		structureService: structureService,
		userService:      userService,
		roleService:      roleService,
	}
}

// StructureRequest carries a structure name
type StructureRequest struct {
	Name string `json:"name" binding:"required,min=1,max=256" example:"PNR du Queyras"`
}

// CreateUserRequest carries the fields for creating a user account
type CreateUserRequest struct {
	Username    string   `json:"username" binding:"required,min=1,max=150"`
	Password    string   `json:"password" binding:"required,min=8"`
	Email       string   `json:"email" binding:"omitempty,email"`
	FirstName   string   `json:"first_name" binding:"max=150"`
	LastName    string   `json:"last_name" binding:"max=150"`
	StructureID string   `json:"structure_id" binding:"required,uuid"`
	IsAdmin     bool     `json:"is_admin"`
	RoleIDs     []string `json:"role_ids" binding:"omitempty,dive,uuid"`
}

// UpdateUserRequest carries the editable profile fields
type UpdateUserRequest struct {
	Email       string   `json:"email" binding:"omitempty,email"`
	FirstName   string   `json:"first_name" binding:"max=150"`
	LastName    string   `json:"last_name" binding:"max=150"`
	IsActive    *bool    `json:"is_active"`
	RoleIDs     []string `json:"role_ids" binding:"omitempty,dive,uuid"`
	StructureID *string  `json:"structure_id" binding:"omitempty,uuid"`
}

// CreateRoleRequest carries the fields for creating a role
type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=150"`
	Description string   `json:"description" binding:"max=512"`
	Permissions []string `json:"permissions"`
}

// UpdateRoleRequest carries the editable role fields
type UpdateRoleRequest struct {
	Description string   `json:"description" binding:"max=512"`
	Permissions []string `json:"permissions"`
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// CreateStructure godoc
// @Summary      Create a structure
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body StructureRequest true "Structure payload"
// @Success      201 {object} dto.Response{data=authent.Structure}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/structures [post]
func (h *AdminHandler) CreateStructure(c *gin.Context) {
	var req StructureRequest
	if !h.bindJSON(c, &req) {
		return
	}

	structure, err := h.structureService.Create(c.Request.Context(), authent.CreateStructureInput{Name: req.Name})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, structure)
}

// GetStructure godoc
// @Summary      Get a structure
// @Tags         admin
// @Produce      json
// @Param        id path string true "Structure ID"
// @Success      200 {object} dto.Response{data=authent.Structure}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/structures/{id} [get]
func (h *AdminHandler) GetStructure(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	structure, err := h.structureService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, structure)
}

// ListStructures godoc
// @Summary      List structures
// @Tags         admin
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Name search"
// @Success      200 {object} dto.Response{data=[]authent.Structure}
// @Security     BearerAuth
// @Router       /admin/structures [get]
func (h *AdminHandler) ListStructures(c *gin.Context) {
	page, err := h.structureService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// RenameStructure godoc
// @Summary      Rename a structure
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path string true "Structure ID"
// @Param        request body StructureRequest true "Structure payload"
// @Success      200 {object} dto.Response{data=authent.Structure}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/structures/{id} [put]
func (h *AdminHandler) RenameStructure(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var req StructureRequest
	if !h.bindJSON(c, &req) {
		return
	}

	structure, err := h.structureService.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, structure)
}

// DeleteStructure godoc
// @Summary      Delete a structure
// @Tags         admin
// @Produce      json
// @Param        id path string true "Structure ID"
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/structures/{id} [delete]
func (h *AdminHandler) DeleteStructure(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.structureService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateUser godoc
// @Summary      Create a user account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "User payload"
// @Success      201 {object} dto.Response{data=authent.User}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/users [post]
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	structureID, err := uuid.Parse(req.StructureID)
	if err != nil {
		h.BadRequest(c, "Invalid structure_id format")
		return
	}
	roleIDs, err := parseUUIDs(req.RoleIDs)
	if err != nil {
		h.BadRequest(c, "Invalid role_ids format")
		return
	}

	user, err := h.userService.Create(c.Request.Context(), authent.CreateUserInput{
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		StructureID: structureID,
		IsAdmin:     req.IsAdmin,
		RoleIDs:     roleIDs,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, user)
}

// GetUser godoc
// @Summary      Get a user
// @Tags         admin
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} dto.Response{data=authent.User}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// ListUsers godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Username search"
// @Success      200 {object} dto.Response{data=[]authent.User}
// @Security     BearerAuth
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, err := h.userService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// UpdateUser godoc
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body UpdateUserRequest true "User payload"
// @Success      200 {object} dto.Response{data=authent.User}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	roleIDs, err := parseUUIDs(req.RoleIDs)
	if err != nil {
		h.BadRequest(c, "Invalid role_ids format")
		return
	}
	input := authent.UpdateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  req.IsActive,
		RoleIDs:   roleIDs,
	}
	if req.StructureID != nil {
		structureID, err := uuid.Parse(*req.StructureID)
		if err != nil {
			h.BadRequest(c, "Invalid structure_id format")
			return
		}
		input.StructureID = &structureID
	}

	user, err := h.userService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Param        id path string true "User ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateRole godoc
// @Summary      Create a role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body CreateRoleRequest true "Role payload"
// @Success      201 {object} dto.Response{data=authent.Role}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/roles [post]
func (h *AdminHandler) CreateRole(c *gin.Context) {
	var req CreateRoleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	role, err := h.roleService.Create(c.Request.Context(), authent.CreateRoleInput{
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, role)
}

// GetRole godoc
// @Summary      Get a role
// @Tags         admin
// @Produce      json
// @Param        id path string true "Role ID"
// @Success      200 {object} dto.Response{data=authent.Role}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/roles/{id} [get]
func (h *AdminHandler) GetRole(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	role, err := h.roleService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, role)
}

// ListRoles godoc
// @Summary      List roles
// @Tags         admin
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]authent.Role}
// @Security     BearerAuth
// @Router       /admin/roles [get]
func (h *AdminHandler) ListRoles(c *gin.Context) {
	page, err := h.roleService.List(c.Request.Context(), filterFromQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paginated(&h.BaseHandler, c, page)
}

// UpdateRole godoc
// @Summary      Update a role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path string true "Role ID"
// @Param        request body UpdateRoleRequest true "Role payload"
// @Success      200 {object} dto.Response{data=authent.Role}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/roles/{id} [put]
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	role, err := h.roleService.Update(c.Request.Context(), id, authent.UpdateRoleInput{
		Description: req.Description,
		Permissions: req.Permissions,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, role)
}

// DeleteRole godoc
// @Summary      Delete a role
// @Tags         admin
// @Produce      json
// @Param        id path string true "Role ID"
// @Success      204
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/roles/{id} [delete]
func (h *AdminHandler) DeleteRole(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.roleService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
