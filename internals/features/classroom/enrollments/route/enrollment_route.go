package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"classroom_backend/internals/features/classroom/enrollments/controller"
	"classroom_backend/internals/features/classroom/enrollments/repository"
)

func EnrollmentRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger, guards ...fiber.Handler) {
	ctl := controller.NewEnrollmentController(repository.NewEnrollmentRepository(db), log)

	g := r.Group("/enrollments", guards...)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
