package seeder

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"jobboard/internal/database"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed data/industries.yaml
var industriesYAML []byte

type industriesFile struct {
	Industries []string `yaml:"industries"`
}

// IndustriesSeeder inserts the embedded industry list. Existing names are
// left untouched so the seeder can run on every deploy.
type IndustriesSeeder struct {
	// Source overrides the embedded YAML when set.
	Source []byte
}

func (IndustriesSeeder) Name() string { return "industries" }

func (s IndustriesSeeder) Run(ctx context.Context, db database.DB) error {
	names, err := s.names()
	if err != nil {
		return err
	}
	if err := requireColumns(ctx, db, "industries", "id", "name", "active", "created_at"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, name := range names {
			if _, err := tx.Exec(ctx,
				`INSERT INTO industries (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
				uuid.New(), name,
			); err != nil {
				return fmt.Errorf("insert %q: %w", name, err)
			}
		}
		return nil
	})
}

func (s IndustriesSeeder) names() ([]string, error) {
	src := s.Source
	if src == nil {
		src = industriesYAML
	}
	return parseIndustries(src)
}

// parseIndustries decodes the seed file, trimming names and dropping blanks
// and case-insensitive duplicates.
func parseIndustries(src []byte) ([]string, error) {
	var f industriesFile
	if err := yaml.Unmarshal(src, &f); err != nil {
		return nil, fmt.Errorf("decode industries: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Industries))
	out := make([]string, 0, len(f.Industries))
	for _, raw := range f.Industries {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out, nil
}
