// Package db opens the SQLite store and owns its schema and transactions.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// OpenDB opens (creating if needed) the database at path, applies the
// connection pragmas and migrates the schema.
//
// An in-memory database is pinned to one connection, since every new
// connection to ":memory:" would see an empty database of its own.
func OpenDB(path string) (*sql.DB, error) {
	memory := path == MemoryPath
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if memory {
		conn.SetMaxOpenConns(1)
		conn.SetConnMaxLifetime(0)
	}

	if err := configure(conn, memory); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func configure(conn *sql.DB, memory bool) error {
	pragmas := []string{"PRAGMA foreign_keys = ON"}
	if !memory {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL", "PRAGMA busy_timeout = 5000")
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	if err := Migrate(conn); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
