package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole rejects requests whose authenticated user does not hold the
// given role. It must run after JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
