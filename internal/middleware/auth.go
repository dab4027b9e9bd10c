package middleware

import (
	"net/http"
	"strings"

	"chequeflow/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActorHeader carries the id of the user acting through the desktop client.
const ActorHeader = "X-User-ID"

const actorKey = "userID"

// RequireActor rejects requests that do not identify the acting user with a
// valid uuid in the X-User-ID header. Authentication happens upstream.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(ActorHeader))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, ActorHeader+" header is missing"))
			return
		}

		actor, err := uuid.Parse(raw)
		if err != nil || actor == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid "+ActorHeader+" header"))
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// GetActor returns the acting user set by RequireActor, or uuid.Nil.
func GetActor(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(actorKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
