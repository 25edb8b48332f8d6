package migration

import (
	"testing"
	"testing/fstest"
)

func TestLoadMigrations_SortsAndFilters(t *testing.T) {
	src := fstest.MapFS{
		"V2__follows.sql":  {Data: []byte("CREATE TABLE follows (id uuid);")},
		"V1__init.sql":     {Data: []byte("  CREATE TABLE users (id uuid);\n")},
		"README.md":        {Data: []byte("not a migration")},
		"V3__bad name.sql": {Data: []byte("SELECT 1;")},
	}

	migs, err := loadMigrations(src)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[1].Version != 2 {
		t.Fatalf("expected versions [1 2], got [%d %d]", migs[0].Version, migs[1].Version)
	}
	if migs[0].SQL != "CREATE TABLE users (id uuid);" {
		t.Fatalf("expected trimmed sql, got %q", migs[0].SQL)
	}
	if migs[0].Checksum == "" || migs[0].Checksum == migs[1].Checksum {
		t.Fatalf("expected distinct non-empty checksums")
	}
}

func TestLoadMigrations_DuplicateVersion(t *testing.T) {
	src := fstest.MapFS{
		"V1__a.sql": {Data: []byte("SELECT 1;")},
		"V1__b.sql": {Data: []byte("SELECT 2;")},
	}
	if _, err := loadMigrations(src); err == nil {
		t.Fatalf("expected duplicate version error")
	}
}

func TestLoadMigrations_EmptyFile(t *testing.T) {
	src := fstest.MapFS{
		"V1__empty.sql": {Data: []byte("   ")},
	}
	if _, err := loadMigrations(src); err == nil {
		t.Fatalf("expected empty file error")
	}
}
