package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"classroom_backend/internals/features/classroom/stats/controller"
	"classroom_backend/internals/features/classroom/stats/repository"
)

func StatsRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger, guards ...fiber.Handler) {
	ctl := controller.NewStatsController(repository.NewStatsRepository(db), log)
	r.Group("/stats", guards...).Get("/overview", ctl.Overview)
}
