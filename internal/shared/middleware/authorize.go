package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mylibrary-backend/internal/policy"
	"mylibrary-backend/internal/shared/response"
)

// Authorize enforces the access policy for one (resource, action) pair.
// The decision is evaluated fresh on every request.
func Authorize(resource policy.Resource, action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, _ := ActorFromContext(c)

		if err := policy.Authorize(actor, resource, action); err != nil {
			switch {
			case errors.Is(err, policy.ErrUnauthorized):
				response.Unauthorized(c, err.Error())
			case errors.Is(err, policy.ErrMethodNotAllowed):
				response.MethodNotAllowed(c, err.Error())
			default:
				response.Forbidden(c, err.Error())
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
