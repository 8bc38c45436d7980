package auth

import (
	"net/http"
	"strings"

	"github.com/madhu363/harvest-wheels-link/lib/models"
	"github.com/madhu363/harvest-wheels-link/lib/token"

	"github.com/gin-gonic/gin"
)

func AuthInjectionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		headerAuthToken := c.GetHeader("Authorization")
		if headerAuthToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing auth token"})
			return
		}

		authToken := strings.TrimPrefix(headerAuthToken, "Bearer ")
		if authToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
			return
		}

		user, err := token.GetUserFromToken(authToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// RequireRole gates a route group to one role. Must run after
// AuthInjectionMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authUser, ok := c.Get("user")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing auth token"})
			return
		}

		user, ok := authUser.(models.UserRequest)
		if !ok || user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}

		c.Next()
	}
}
