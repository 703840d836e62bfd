// helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	SessionCookie = "session_token"

	// Locals keys set by the session middleware
	LocRawToken = "raw_token"
	LocUserID   = "user_id"
	LocUserRole = "userRole"
)

// GetRawAccessToken returns the session token from:
// 1) Locals("raw_token") set by the middleware
// 2) Authorization header "Bearer <token>"
// 3) cookie "session_token"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}

	if auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); auth != "" {
		fields := strings.Fields(auth)
		if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			return strings.Trim(fields[1], `"'`)
		}
	}

	return strings.TrimSpace(c.Cookies(SessionCookie))
}

func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}
