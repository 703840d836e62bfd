package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"classroom_backend/internals/configs"
	database "classroom_backend/internals/databases"
	authRepo "classroom_backend/internals/features/users/auth/repository"
	"classroom_backend/internals/features/users/auth/scheduler"
	authService "classroom_backend/internals/features/users/auth/service"
	middlewares "classroom_backend/internals/middlewares"
	routes "classroom_backend/internals/route"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml/json/toml)")
	flag.Parse()

	boot, _ := zap.NewProduction()
	configs.LoadDotEnv(boot)

	cfg, err := configs.Load(*configPath)
	if err != nil {
		boot.Fatal("load config", zap.Error(err))
	}

	log, err := configs.NewLogger(cfg.Log)
	if err != nil {
		boot.Fatal("build logger", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	// 🔌 DB connect + pool + warm-up
	db, err := database.Open(cfg.DB, log)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}
	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db, log); err != nil {
			log.Fatal("run migrations", zap.Error(err))
		}
	}
	database.WarmUp(db, log)

	tokens := authService.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	authSvc := authService.NewAuthService(authRepo.NewAuthRepository(db), tokens, log)

	// ⏱ scheduler setelah DB siap
	cleanup, err := scheduler.StartBlacklistCleanupScheduler(cfg.Auth.BlacklistCleanupCron, authSvc, log)
	if err != nil {
		log.Fatal("schedule blacklist cleanup", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          middlewares.ErrorHandler(log),
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app, cfg, log)

	routes.SetupRoutes(app, db, cfg, authSvc, log)

	// Start server non-blocking
	go func() {
		log.Info("listening", zap.String("addr", cfg.ListenAddr()))
		if err := app.Listen(cfg.ListenAddr()); err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
	<-cleanup.Stop().Done()

	if err := database.Close(db); err != nil {
		log.Warn("close database", zap.Error(err))
	}
}
