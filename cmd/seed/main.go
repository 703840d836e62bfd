package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"

	"classroom_backend/internals/configs"
	database "classroom_backend/internals/databases"
	"classroom_backend/internals/seeds"
)

func main() {
	configPath := flag.String("config", "", "path to a config file")
	password := flag.String("password", "password123", "password given to every seeded account")
	flag.Parse()

	boot, _ := zap.NewProduction()
	if err := run(boot, *configPath, *password); err != nil {
		boot.Fatal("seed failed", zap.Error(err))
	}
}

// run owns every resource so its defers complete before main exits.
func run(boot *zap.Logger, configPath, password string) error {
	configs.LoadDotEnv(boot)

	cfg, err := configs.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := configs.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg.DB, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.RunMigrations(db, log); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := seeds.RunAllSeeds(ctx, db, password, log); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Info("seed complete")
	return nil
}
