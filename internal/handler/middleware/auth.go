package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"booking-api/internal/pkg/jwt"
	"booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxAdminRoleKey = "admin_role"

// AdminAuthMiddleware guards the admin surface. Credential checking lives
// entirely here; the booking core never sees auth concerns.
type AdminAuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAdminAuthMiddleware(tokenValidator usecase.TokenValidator) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Admin token required",
			})
			c.Abort()
			return
		}

		role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in admin middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if role != jwt.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminRoleKey, role)
		c.Next()
	}
}

func GetAdminRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ctxAdminRoleKey)
	if !exists {
		return "", false
	}

	r, ok := role.(string)
	return r, ok
}
