package mw

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UsernameKey is the gin context key under which the authenticated username
// is stored.
const UsernameKey = "auth.username"

// Auth trusts the username header set by the upstream authentication proxy
// and injects it into the request context. The service itself never
// authenticates, only authorizes.
func Auth(header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetHeader(header)
		if username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(UsernameKey, username)
		c.Next()
	}
}

// Username returns the authenticated username from the request context, empty
// for unauthenticated requests.
func Username(c *gin.Context) string {
	return c.GetString(UsernameKey)
}
