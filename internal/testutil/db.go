package testutil

import (
	"context"
	"database/sql"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/dsatracker/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory store that is closed with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// FailingUoW runs a real transaction but makes one write fail: the Nth
// ExecContext whose SQL contains Match (any statement when Match is empty).
// Nth counts from 1; zero means the first match. Reads are never counted.
type FailingUoW struct {
	DB    *sql.DB
	Match string
	Nth   int32
	Err   error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	nth := u.Nth
	if nth <= 0 {
		nth = 1
	}
	if err := fn(ctx, &failingTx{DBTX: tx, match: u.Match, nth: nth, err: u.Err}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	match string
	nth   int32
	seen  atomic.Int32
	err   error
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, f.match) && f.seen.Add(1) == f.nth {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
