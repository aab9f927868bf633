package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mader-backend/internal/domains/book/model"
	"mader-backend/internal/domains/book/service"
	"mader-backend/internal/shared/response"
	"mader-backend/internal/shared/utils"
)

// BookHandler serves /livro
type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(service service.ServiceInterface) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /livro/?ano=&titulo=&page=
func (h *BookHandler) List(c *gin.Context) {
	query := model.BookQuery{
		Title: c.Query("titulo"),
		Page:  utils.ParsePage(c.Query("page")),
	}

	if raw := c.Query("ano"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			response.UnprocessableEntity(c, "Invalid ano")
			return
		}
		year := int(parsed)
		query.Year = &year
	}

	books, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, books)
}

// GetByID handles GET /livro/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.UnprocessableEntity(c, "Invalid book id")
		return
	}

	book, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, book)
}

// Create handles POST /livro/
func (h *BookHandler) Create(c *gin.Context) {
	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Invalid request body")
		return
	}

	book, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, book)
}

// Update handles PATCH /livro/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.UnprocessableEntity(c, "Invalid book id")
		return
	}

	var req model.BookUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Invalid request body")
		return
	}

	book, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, book)
}

// Delete handles DELETE /livro/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.UnprocessableEntity(c, "Invalid book id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Book deleted")
}
