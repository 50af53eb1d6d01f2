package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"itinera/pkg/utils"
)

// JWTAuthMiddleware guards the admin surface. Tokens are issued by the
// login endpoint and must carry the admin role.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}
		if claims.Role != "admin" {
			utils.RespondError(c, http.StatusForbidden, "Admin role required")
			c.Abort()
			return
		}

		c.Set("session_id", claims.SessionID)
		c.Next()
	}
}
