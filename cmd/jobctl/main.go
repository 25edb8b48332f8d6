// Command jobctl is the operator tool: it applies migrations, runs seeders
// and moderates company registrations.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"jobboard/internal/app"
	"jobboard/internal/config"
	"jobboard/internal/database"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/database/seeder"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

const usage = `usage: jobctl <command> [flags]

commands:
  migrate          apply pending migrations
  seed             run seeders
  company-status   set a company's moderation status
`

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cmd, args := os.Args[1], os.Args[2:]
	if err := run(ctx, cfg, logger, cmd, args); err != nil {
		logger.Printf("[jobctl] %s failed: %v", cmd, err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *log.Logger, cmd string, args []string) error {
	switch cmd {
	case "migrate":
		return withDB(ctx, cfg, func(db database.DB) error {
			return app.Migrate(ctx, cfg, logger, db)
		})
	case "seed":
		return withDB(ctx, cfg, func(db database.DB) error {
			return seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}.Run(ctx, db)
		})
	case "company-status":
		return companyStatus(ctx, cfg, logger, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func withDB(ctx context.Context, cfg config.Config, fn func(db database.DB) error) error {
	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

func companyStatus(ctx context.Context, cfg config.Config, logger *log.Logger, args []string) error {
	fs := pflag.NewFlagSet("company-status", pflag.ContinueOnError)
	idFlag := fs.String("id", "", "company id")
	status := fs.String("status", "", "approved, rejected or pending")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := uuid.Parse(*idFlag)
	if err != nil {
		return fmt.Errorf("invalid --id: %w", err)
	}
	if *status == "" {
		return errors.New("--status is required")
	}

	return withDB(ctx, cfg, func(db database.DB) error {
		companies := usecase.NewCompanyUsecase(repository.NewPostgresCompanyRepository(db), nil)
		if err := companies.SetCompanyStatus(ctx, id, *status); err != nil {
			return err
		}
		logger.Printf("[jobctl] company status updated id=%s status=%s", id, *status)
		return nil
	})
}
