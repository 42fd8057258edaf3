package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/book/model"
	"mylibrary-backend/internal/domains/book/service"
	"mylibrary-backend/internal/shared/middleware"
	"mylibrary-backend/internal/shared/response"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{service: svc}
}

// Create handles POST /books.
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// GetByID handles GET /books/:id. A book outside the actor's visible
// window reads as 404.
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "book not found")
		return
	}

	actor, _ := middleware.ActorFromContext(c)

	b, err := h.service.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b.ToResponse())
}

// List handles GET /books with ?search, ?author_id, ?language_id,
// ?limit and ?offset.
func (h *BookHandler) List(c *gin.Context) {
	actor, _ := middleware.ActorFromContext(c)

	opts := service.ListOptions{
		Search: c.Query("search"),
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	}

	if raw := c.Query("author_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "author_id must be a valid UUID")
			return
		}
		opts.AuthorID = &id
	}

	if raw := c.Query("language_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "language_id must be a valid UUID")
			return
		}
		opts.LanguageID = &id
	}

	books, err := h.service.List(c.Request.Context(), actor, opts)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	out := make([]model.BookResponse, 0, len(books))
	for i := range books {
		out = append(out, *books[i].ToResponse())
	}

	response.Success(c, http.StatusOK, out)
}

// Update handles PUT /books/:id.
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "book not found")
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// Patch handles PATCH /books/:id.
func (h *BookHandler) Patch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "book not found")
		return
	}

	var req model.PatchBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	updated, err := h.service.Patch(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// Delete handles DELETE /books/:id.
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "book not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrAuthorNotFound):
		response.ValidationError(c, gin.H{"author_id": err.Error()})
	case errors.Is(err, model.ErrLanguageNotFound):
		response.ValidationError(c, gin.H{"language_id": err.Error()})
	default:
		response.InternalServerError(c, err.Error())
	}
}

func queryInt(c *gin.Context, key string, defaultValue int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}
