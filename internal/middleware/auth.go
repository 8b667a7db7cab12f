package middleware

import (
	"net/http"
	"strings"

	"catalog_service/internal/auth"
	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequireAdmin verifies the Bearer token and aborts unless the caller
// holds the admin role.
func RequireAdmin(jwtSecret string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Middleware: Authorization header is missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization required",
				"error":   "Authorization header required",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warnf("Middleware: Invalid Authorization header format: %s", authHeader)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization required",
				"error":   "Invalid Authorization header format",
			})
			return
		}

		claims, err := auth.ParseToken(jwtSecret, parts[1])
		if err != nil {
			log.Warnf("Middleware: Token validation failed: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization required",
				"error":   "Invalid token",
			})
			return
		}

		if claims.Role != domain.RoleAdmin {
			log.Warnf("Middleware: User %d lacks admin role (role: %s)", claims.UserID, claims.Role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Forbidden",
				"error":   "Admin role required",
			})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Next()
	}
}
