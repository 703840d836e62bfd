// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"classroom_backend/internals/constants"
	"classroom_backend/internals/features/users/auth/service"
	helper "classroom_backend/internals/helpers"
)

// SessionVerifier is satisfied by *service.AuthService.
type SessionVerifier interface {
	Verify(ctx context.Context, raw string) (*service.Claims, error)
}

// AuthMiddleware requires a valid, non-revoked session token and stores the
// user id and role in Locals for the role guards.
func AuthMiddleware(v SessionVerifier, log *zap.Logger) fiber.Handler {
	log = log.Named("auth_mw")
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return helper.WriteError(c, log, helper.Unauthorized(constants.ErrUnauthenticated))
		}

		claims, err := v.Verify(c.UserContext(), raw)
		if err != nil {
			return helper.WriteError(c, log, err)
		}

		helper.SetRawAccessToken(c, raw)
		c.Locals(helper.LocUserID, claims.Subject)
		c.Locals(helper.LocUserRole, claims.Role)
		return c.Next()
	}
}
