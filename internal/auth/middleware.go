package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fleur-roar/sleep-tracker-bot/internal/config"
)

// UserIDKey is the gin context key carrying the resolved user id.
const UserIDKey = "user_id"

func AuthMiddleware(provider Provider, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimPrefix(header, "Bearer ")
			token = strings.TrimSpace(token)
			var userID int64
			var err error
			if cfg.Env == "development" {
				userID, err = provider.ResolveTokenLocal(token)
			} else {
				userID, err = provider.ResolveTokenRemote(c.Request.Context(), token)
			}
			if err == nil {
				c.Set(UserIDKey, userID)
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
}
