package auth

import (
	"github.com/gofiber/fiber/v2"

	"classroom_backend/internals/constants"
	helper "classroom_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError lets the request through when the role set
// by AuthMiddleware is one of allowedRoles.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	if customForbiddenMessage == "" {
		customForbiddenMessage = "Forbidden"
	}
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(helper.LocUserRole).(string)
		if !ok {
			return helper.WriteError(c, nil, helper.Unauthorized(constants.ErrUnauthenticated))
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return helper.WriteError(c, nil, helper.Forbidden(customForbiddenMessage))
	}
}

// Shortcut biar lebih clean pemakaian
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
