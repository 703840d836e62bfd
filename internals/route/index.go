// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"classroom_backend/internals/configs"
	"classroom_backend/internals/constants"
	classRoute "classroom_backend/internals/features/classroom/classes/route"
	departmentRoute "classroom_backend/internals/features/classroom/departments/route"
	enrollmentRoute "classroom_backend/internals/features/classroom/enrollments/route"
	statsRoute "classroom_backend/internals/features/classroom/stats/route"
	subjectRoute "classroom_backend/internals/features/classroom/subjects/route"
	userRoute "classroom_backend/internals/features/classroom/users/route"
	authRoute "classroom_backend/internals/features/users/auth/route"
	"classroom_backend/internals/features/users/auth/service"
	rateLimiter "classroom_backend/internals/middlewares"
	authMiddleware "classroom_backend/internals/middlewares/auth"
)

// SetupRoutes mounts /health at the root and everything else under the
// configured API prefix.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, authSvc *service.AuthService, log *zap.Logger) {
	startedAt := time.Now()
	log = log.Named("routes")

	BaseRoutes(app, db, startedAt)

	api := app.Group(cfg.Server.APIPrefix, rateLimiter.GlobalRateLimiter())

	// ===================== AUTH =====================
	log.Info("mounting auth routes", zap.String("prefix", cfg.Server.APIPrefix+"/auth"))
	authRoute.AuthRoutes(api.Group("/auth"), authSvc, log, cfg.Auth.SecureCookie)

	// ===================== RESOURCES =====================
	// guards sit on each resource prefix so unknown paths still 404
	var guards []fiber.Handler
	if cfg.Auth.ProtectAPI {
		log.Info("resource routes require an admin session")
		guards = []fiber.Handler{
			authMiddleware.AuthMiddleware(authSvc, log),
			authMiddleware.OnlyRoles(constants.RoleErrorAdmin("this resource"), constants.AdminOnly...),
		}
	}

	departmentRoute.DepartmentRoutes(api, db, log, guards...)
	subjectRoute.SubjectRoutes(api, db, log, guards...)
	classRoute.ClassRoutes(api, db, log, guards...)
	enrollmentRoute.EnrollmentRoutes(api, db, log, guards...)
	userRoute.UserRoutes(api, db, log, guards...)
	statsRoute.StatsRoutes(api, db, log, guards...)
}
