package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobboard/internal/database"
)

// Seeder loads reference data. Implementations must be safe to re-run.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Runner executes seeders in order and stops at the first failure.
type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.Printf("[Seed] done name=%s took=%s", s.Name(), time.Since(start))
		}
	}
	return nil
}
