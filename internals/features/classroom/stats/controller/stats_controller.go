package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"classroom_backend/internals/features/classroom/stats/repository"
	helper "classroom_backend/internals/helpers"
)

type StatsController struct {
	Repo repository.StatsRepository
	Log  *zap.Logger
}

func NewStatsController(repo repository.StatsRepository, log *zap.Logger) *StatsController {
	return &StatsController{Repo: repo, Log: log.Named("stats")}
}

// GET /stats/overview -> {data:{users,admins,...}}
func (h *StatsController) Overview(c *fiber.Ctx) error {
	ov, err := h.Repo.Overview(c.UserContext())
	if err != nil {
		return helper.WriteError(c, h.Log, helper.Internal("Failed to fetch stats", err))
	}
	return helper.JsonData(c, ov)
}
