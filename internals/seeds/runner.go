package seeds

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"classroom_backend/internals/seeds/classroom"
)

// RunAllSeeds loads the demo classroom dataset. Safe to run repeatedly.
func RunAllSeeds(ctx context.Context, db *gorm.DB, password string, log *zap.Logger) error {
	log = log.Named("seed")

	//* Classroom
	ds, err := classroom.LoadDataset()
	if err != nil {
		return err
	}
	_, err = classroom.SeedClassroom(ctx, db, ds, password, log)
	return err
}
