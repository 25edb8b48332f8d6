package app

import (
	"context"
	"log"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/database/migration"
	"jobboard/migrations"
)

// Migrate applies pending migrations from MIGRATIONS_DIR, or from the files
// embedded in the binary when it is unset.
func Migrate(ctx context.Context, cfg config.Config, logger *log.Logger, db database.DB) error {
	r := migration.Runner{Dir: cfg.App.MigrationsDir, Logger: logger}
	if cfg.App.MigrationsDir == "" {
		r.FS = migrations.FS
	}
	return r.Run(ctx, db.SQLDB())
}
