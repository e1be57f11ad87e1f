// Package testutil holds shared fixtures for gymtrack tests: an in-memory
// store, fault injection for transactional writes and domain builders.
package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/gymtrack/internal/db"
)

// NewTestDB opens a migrated in-memory store, closed when t finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// PutRaw stores value verbatim under key, bypassing JSON encoding so tests
// can plant unreadable collections.
func PutRaw(t *testing.T, database *sql.DB, key, value string) {
	t.Helper()
	_, err := database.Exec(`INSERT INTO collections (key, value, updated_at) VALUES (?, ?, '2025-06-02T00:00:00Z')
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		t.Fatalf("planting %s: %v", key, err)
	}
}

// FailOnNthExecUoW runs each transaction like the real unit of work but
// makes the FailOn-th write inside it return Err. Writes are counted from 1
// per transaction; reads pass through.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn db.TxFunc) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failOnNthExec{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

type failOnNthExec struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.writes.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
