package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mylibrary-backend/internal/domains/follow/model"
	"mylibrary-backend/internal/domains/follow/service"
	"mylibrary-backend/internal/shared/middleware"
	"mylibrary-backend/internal/shared/response"
)

type FollowHandler struct {
	service service.ServiceInterface
}

func NewFollowHandler(svc service.ServiceInterface) *FollowHandler {
	return &FollowHandler{service: svc}
}

// Create handles POST /follows. The follower is the authenticated user.
func (h *FollowHandler) Create(c *gin.Context) {
	actor, _ := middleware.ActorFromContext(c)

	var req model.CreateFollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// GetByID handles GET /follows/:id.
func (h *FollowHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "follow not found")
		return
	}

	actor, _ := middleware.ActorFromContext(c)

	f, err := h.service.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, f.ToResponse())
}

// List handles GET /follows. Only the actor's own follows appear.
func (h *FollowHandler) List(c *gin.Context) {
	actor, _ := middleware.ActorFromContext(c)

	follows, err := h.service.List(c.Request.Context(), actor, queryInt(c, "limit", 0), queryInt(c, "offset", 0))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	out := make([]model.FollowResponse, 0, len(follows))
	for i := range follows {
		out = append(out, *follows[i].ToResponse())
	}

	response.Success(c, http.StatusOK, out)
}

// NotAllowed answers PUT and PATCH on follows. A follow has no mutable
// fields; recreate it instead. The route-level guard aborts before this
// runs, so the handler is only a registration target.
func (h *FollowHandler) NotAllowed(c *gin.Context) {
	response.MethodNotAllowed(c, "follows cannot be modified")
}

// Delete handles DELETE /follows/:id.
func (h *FollowHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "follow not found")
		return
	}

	actor, _ := middleware.ActorFromContext(c)

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *FollowHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrFollowNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrNotOwner):
		response.Forbidden(c, err.Error())
	case errors.Is(err, model.ErrAlreadyFollowing):
		response.ValidationError(c, gin.H{"author_id": err.Error()})
	case errors.Is(err, model.ErrAuthorNotFound):
		response.ValidationError(c, gin.H{"author_id": err.Error()})
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
