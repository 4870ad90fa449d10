package middleware

import (
	"net/http"
	"strings"

	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AdminAuth guards the admin surface (config writes, message
// management). Enabled is false when no admin password is configured,
// in which case the gate is a pass-through: the shipped site relied on
// the SPA's own gate and the API was open.
func AdminAuth(manager *jwt.Manager, enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, http.StatusUnauthorized, response.CodeUnauthorized)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Fail(c, http.StatusUnauthorized, response.CodeUnauthorized)
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil || claims.Role != "admin" {
			response.Fail(c, http.StatusUnauthorized, response.CodeUnauthorized)
			c.Abort()
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}
