package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"classroom_backend/internals/features/classroom/classes/controller"
	"classroom_backend/internals/features/classroom/classes/repository"
)

func ClassRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger, guards ...fiber.Handler) {
	ctl := controller.NewClassController(repository.NewClassRepository(db), log)

	g := r.Group("/classes", guards...)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
