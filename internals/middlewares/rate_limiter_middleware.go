package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "classroom_backend/internals/helpers"
)

func rateLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// GlobalRateLimiter applies to every regular endpoint.
func GlobalRateLimiter() fiber.Handler {
	return rateLimiter(300, 1*time.Minute, "Too many requests, please try again later")
}

// Sign-in is stricter
func LoginRateLimiter() fiber.Handler {
	return rateLimiter(5, 1*time.Minute, "Too many sign-in attempts, please try again later")
}

func RegisterRateLimiter() fiber.Handler {
	return rateLimiter(3, 5*time.Minute, "Too many sign-up attempts, please wait a few minutes")
}
