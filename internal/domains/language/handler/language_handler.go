package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/language/model"
	"mylibrary-backend/internal/domains/language/service"
	"mylibrary-backend/internal/shared/response"
)

type LanguageHandler struct {
	service service.ServiceInterface
}

func NewLanguageHandler(svc service.ServiceInterface) *LanguageHandler {
	return &LanguageHandler{service: svc}
}

// Create handles POST /languages.
func (h *LanguageHandler) Create(c *gin.Context) {
	var req model.CreateLanguageRequest
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
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// GetByID handles GET /languages/:id.
func (h *LanguageHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "language not found")
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, l.ToResponse())
}

// List handles GET /languages.
func (h *LanguageHandler) List(c *gin.Context) {
	filter := model.LanguageFilter{
		Limit:  queryInt(c, "limit", 0),
		Offset: queryInt(c, "offset", 0),
	}

	languages, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	out := make([]model.LanguageResponse, 0, len(languages))
	for i := range languages {
		out = append(out, *languages[i].ToResponse())
	}

	response.Success(c, http.StatusOK, out)
}

// Update handles PUT /languages/:id.
func (h *LanguageHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "language not found")
		return
	}

	var req model.UpdateLanguageRequest
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

// Patch handles PATCH /languages/:id.
func (h *LanguageHandler) Patch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "language not found")
		return
	}

	var req model.PatchLanguageRequest
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

// Delete handles DELETE /languages/:id. Blocked while books reference
// the language.
func (h *LanguageHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "language not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *LanguageHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrLanguageNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrLanguageInUse):
		response.ValidationError(c, err.Error())
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
