// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	controller "classroom_backend/internals/features/users/auth/controller"
	"classroom_backend/internals/features/users/auth/service"
	rateLimiter "classroom_backend/internals/middlewares"
)

// AuthRoutes mounts the auth delegate under r (normally /auth).
func AuthRoutes(r fiber.Router, svc *service.AuthService, log *zap.Logger, secureCookie bool) {
	authController := controller.NewAuthController(svc, log, secureCookie)

	r.Post("/sign-up/email", rateLimiter.RegisterRateLimiter(), authController.SignUp)
	r.Post("/sign-in/email", rateLimiter.LoginRateLimiter(), authController.SignIn)
	r.Get("/get-session", authController.GetSession)
	r.Post("/sign-out", authController.SignOut)

	r.All("/*", authController.NotFound)
}
