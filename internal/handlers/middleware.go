package handlers

import (
	"net/http"
	"strconv"

	"github.com/mercy-gachoki10/smartprintpro1/internal/models"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// ActorMiddleware resolves the acting user from the gateway-provided
// headers. Authentication happens upstream; by the time a request reaches
// this service the identity and role are already verified.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.GetHeader("X-Actor-ID"), 10, 64)
		if err != nil || id == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid actor identity"})
			return
		}
		role := models.ActorRole(c.GetHeader("X-Actor-Role"))
		if !role.Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid actor role"})
			return
		}
		c.Set(actorKey, models.Actor{ID: uint(id), Role: role})
		c.Next()
	}
}

func actorFrom(c *gin.Context) models.Actor {
	return c.MustGet(actorKey).(models.Actor)
}
