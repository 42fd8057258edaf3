package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mylibrary-backend/internal/policy"
	"mylibrary-backend/internal/shared/response"
	"mylibrary-backend/pkg/jwt"
)

const actorKey = "actor"

// Auth resolves the bearer credential to an actor and stores it in the
// request context. Requests without a valid access token are rejected
// before any handler runs.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid user id in token")
			c.Abort()
			return
		}

		c.Set(actorKey, policy.Actor{
			ID:            userID,
			Username:      claims.Username,
			IsStaff:       claims.IsStaff,
			Authenticated: true,
		})

		c.Next()
	}
}

// ActorFromContext returns the actor resolved by Auth. The second return
// is false when the request was never authenticated.
func ActorFromContext(c *gin.Context) (policy.Actor, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return policy.Actor{}, false
	}

	actor, ok := v.(policy.Actor)
	return actor, ok && actor.Authenticated
}
