package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	databases "classroom_backend/internals/databases"
)

const healthPingTimeout = 2 * time.Second

type HealthResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	Database      string `json:"database"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

// BaseRoutes mounts the liveness probe at the application root.
func BaseRoutes(app *fiber.App, db *gorm.DB, startedAt time.Time) {
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthPingTimeout)
		defer cancel()

		res := HealthResponse{
			Status:        "ok",
			Message:       "Server is running",
			Database:      "connected",
			UptimeSeconds: int64(time.Since(startedAt).Seconds()),
		}
		status := fiber.StatusOK
		if err := databases.Ping(ctx, db); err != nil {
			res.Database = "error"
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(res)
	})
}
