package middleware

import (
	"strings"

	"pharmatrack/internal/config"
	"pharmatrack/internal/core/domain"
	"pharmatrack/internal/pkg/jwt"
	"pharmatrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try to get token from cookie first
		accessToken = c.Cookies("access_token")

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 5. Set user info in context
		c.Locals("userID", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("role", domain.Role(claims.Role))

		return c.Next()
	}
}

// RequireRole creates role-based authorization middleware.
// Roles are compared by flat equality: there is no hierarchy.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(domain.Role)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		if !role.Is(required) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		return c.Next()
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}
