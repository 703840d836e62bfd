// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allows the configured front-end origins with credentials.
func CorsMiddleware(origins []string) fiber.Handler {
	cleaned := make([]string, 0, len(origins))
	wildcard := false
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			cleaned = append(cleaned, o)
			wildcard = wildcard || o == "*"
		}
	}
	if len(cleaned) == 0 {
		cleaned = []string{"*"}
		wildcard = true
	}
	// fiber refuses credentials together with a wildcard origin
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(cleaned, ","),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders:    "X-Request-ID",
		AllowCredentials: !wildcard,
	})
}
