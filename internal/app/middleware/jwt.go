package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/services"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/error/response"
)

// RequireAuth gates admin-only routes. Requests without a valid
// "Authorization: Bearer <token>" header are rejected with 401 before any
// controller runs; valid tokens attach the admin identity to the context.
func RequireAuth(jwtService services.InterfaceJWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, "Authorization header format must be Bearer {token}")
			c.Abort()
			return
		}

		claims, err := jwtService.ExtractClaims(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("username", claims.Username)
		c.Next()
	}
}
