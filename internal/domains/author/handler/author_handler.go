package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mader-backend/internal/domains/author/model"
	"mader-backend/internal/domains/author/service"
	"mader-backend/internal/shared/response"
	"mader-backend/internal/shared/utils"
)

// AuthorHandler serves /romancista
type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(service service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// List handles GET /romancista/?nome=&page=
func (h *AuthorHandler) List(c *gin.Context) {
	page := utils.ParsePage(c.Query("page"))

	authors, err := h.service.List(c.Request.Context(), c.Query("nome"), page)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, authors)
}

// GetByID handles GET /romancista/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.UnprocessableEntity(c, "Invalid author id")
		return
	}

	author, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, author)
}

// Create handles POST /romancista/
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Invalid request body")
		return
	}

	author, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, author)
}

// Update handles PATCH /romancista/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.UnprocessableEntity(c, "Invalid author id")
		return
	}

	var req model.AuthorUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Invalid request body")
		return
	}

	author, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, author)
}

// Delete handles DELETE /romancista/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.UnprocessableEntity(c, "Invalid author id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Author successfully deleted")
}
