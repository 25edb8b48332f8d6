package repository

import (
	"context"
	"database/sql"
	"errors"

	"jobboard/internal/database"
)

type execCall struct {
	query string
	args  []any
}

// fakeDB records Exec and Query calls, answers QueryRow with a fixed scanner
// and Query with one row per entry of rowsScan.
type fakeDB struct {
	execs    []execCall
	queries  []execCall
	execErr  error
	rowScan  func(dest ...any) error
	rowsScan []func(dest ...any) error
	txBegins int
	commits  int
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) SQLDB() *sql.DB             { return nil }

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.execs = append(f.execs, execCall{query: query, args: args})
	if f.execErr != nil {
		return 0, f.execErr
	}
	return int64(len(args) / 5), nil
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	f.queries = append(f.queries, execCall{query: query, args: args})
	return &fakeRows{scans: f.rowsScan, pos: -1}, nil
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) database.Row {
	return fakeRow{scan: f.rowScan}
}

func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	f.txBegins++
	return &fakeTx{db: f}, nil
}

type fakeTx struct {
	db *fakeDB
}

func (t *fakeTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return t.db.Exec(ctx, query, args...)
}

func (t *fakeTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return t.db.Query(ctx, query, args...)
}

func (t *fakeTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.db.QueryRow(ctx, query, args...)
}

func (t *fakeTx) Commit(context.Context) error {
	t.db.commits++
	return nil
}

func (t *fakeTx) Rollback(context.Context) error { return nil }

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.scan == nil {
		return sql.ErrNoRows
	}
	return r.scan(dest...)
}

type fakeRows struct {
	scans []func(dest ...any) error
	pos   int
}

func (r *fakeRows) Close() {}

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.scans)
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.pos < 0 || r.pos >= len(r.scans) {
		return errors.New("scan outside rows")
	}
	return r.scans[r.pos](dest...)
}

func (r *fakeRows) Err() error { return nil }
