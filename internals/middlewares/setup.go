package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"classroom_backend/internals/configs"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide chain. Order matters: request id
// first so every later log line can carry it.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config, log *zap.Logger) {
	app.Use(logger.RequestID())
	app.Use(logger.LoggerMiddleware(log))
	app.Use(RecoveryMiddleware(log))
	app.Use(CorsMiddleware(cfg.Server.CORSOrigins))
	app.Use(RequestTimeout(cfg.Server.RequestTimeout))
}

// ErrorHandler renders errors that escape handlers (404 routes, body limits)
// in the {error} shape.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return helper.WriteError(c, log, err)
	}
}
