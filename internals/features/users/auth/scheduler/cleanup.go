package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type BlacklistCleaner interface {
	CleanupBlacklist(ctx context.Context) (int64, error)
}

const cleanupTimeout = 30 * time.Second

// StartBlacklistCleanupScheduler runs cleaner on the cron spec (e.g. "@daily").
// The caller stops the returned cron on shutdown.
func StartBlacklistCleanupScheduler(spec string, cleaner BlacklistCleaner, log *zap.Logger) (*cron.Cron, error) {
	log = log.Named("cleanup")
	c := cron.New()

	if _, err := c.AddFunc(spec, func() { RunBlacklistCleanup(cleaner, log) }); err != nil {
		return nil, err
	}
	c.Start()
	log.Info("token blacklist cleanup scheduled", zap.String("spec", spec))
	return c, nil
}

func RunBlacklistCleanup(cleaner BlacklistCleaner, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	n, err := cleaner.CleanupBlacklist(ctx)
	if err != nil {
		log.Error("token blacklist cleanup failed", zap.Error(err))
		return
	}
	log.Info("token blacklist cleaned", zap.Int64("deleted", n))
}
