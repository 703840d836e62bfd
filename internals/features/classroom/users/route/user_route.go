package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"classroom_backend/internals/features/classroom/users/controller"
	"classroom_backend/internals/features/classroom/users/repository"
)

// UserRoutes mounts /users on r.
func UserRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger, guards ...fiber.Handler) {
	ctl := controller.NewUserController(repository.NewUserRepository(db), log)

	users := r.Group("/users", guards...)
	users.Get("/", ctl.List)
	users.Get("/:id", ctl.GetByID)
	users.Post("/", ctl.Create)
	users.Patch("/:id", ctl.Patch)
	users.Delete("/:id", ctl.Delete)
}
