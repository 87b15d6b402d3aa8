package middleware

import (
	"fmt"

	"github.com/autohaus/autohaus/internal/services"
	"github.com/autohaus/autohaus/internal/types"
	"github.com/gofiber/fiber/v2"
)

// AuthAdmin validates that the request has admin role authorization
func AuthAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, []string{"admin"}, "auto.authorization.admin")
	}
}

// AuthAdminOrUser validates that the request has admin or user role
// authorization
func AuthAdminOrUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, []string{"admin", "user"}, "auto.authorization.user")
	}
}

// authorize performs the authorization check
func authorize(c *fiber.Ctx, roles []string, errorType string) error {
	session := c.Cookies("cookie_session")
	if session == "" {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: "Authorizer cookie \"cookie_session\" not found",
			Type:    errorType,
		}
	}

	data, err := services.ValidateSession(session, roles)
	if err != nil {
		return &types.CustomError{
			Code:    fiber.StatusForbidden,
			Message: fmt.Sprintf("Invalid session: %v", err),
			Type:    errorType,
		}
	}

	if user, ok := data["user"]; ok {
		c.Locals("user", user)
	}
	c.Locals("roles", roles)

	return c.Next()
}
