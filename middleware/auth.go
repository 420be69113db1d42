package middleware

import (
	"net/http"
	"strings"

	userRepo "superlaw/database/repository/user"
	"superlaw/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextUser     = "user"
)

// JWTAuthMiddleware validates the bearer token and checks its hash against the
// one stored for the user, so a logout revokes every outstanding token.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, err := users.GetByTokenHash(c.Request.Context(), utils.HashToken(tokenString))
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or user not found"})
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)
		c.Set(ContextUser, user)
		c.Next()
	}
}
