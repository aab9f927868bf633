package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mader-backend/internal/domains/user/model"
	"mader-backend/internal/domains/user/service"
	"mader-backend/internal/shared/middleware"
	"mader-backend/internal/shared/response"
	"mader-backend/internal/shared/utils"
)

// UserHandler serves /conta and /auth
type UserHandler struct {
	service service.ServiceInterface
}

func NewUserHandler(service service.ServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// ========================================
// AUTHENTICATION ENDPOINTS
// ========================================

// Token handles POST /auth/token
// Form fields: username (the account email), password
func (h *UserHandler) Token(c *gin.Context) {
	var req model.TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		response.UnprocessableEntity(c, "Invalid form data")
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, token)
}

// RefreshToken handles POST /auth/refresh-token
func (h *UserHandler) RefreshToken(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.FromError(c, model.ErrNotAuthenticated)
		return
	}

	token, err := h.service.RefreshToken(c.Request.Context(), u)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, token)
}

// ========================================
// ACCOUNT ENDPOINTS
// ========================================

// Create handles POST /conta/
func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Invalid request body")
		return
	}

	user, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, user)
}

// Update handles PUT /conta/:id
func (h *UserHandler) Update(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		response.FromError(c, model.ErrNotAuthenticated)
		return
	}

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.UnprocessableEntity(c, "Invalid user id")
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Invalid request body")
		return
	}

	user, err := h.service.Update(c.Request.Context(), caller, id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, user)
}

// Delete handles DELETE /conta/:id
func (h *UserHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		response.FromError(c, model.ErrNotAuthenticated)
		return
	}

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.UnprocessableEntity(c, "Invalid user id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), caller, id); err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "User deleted")
}
