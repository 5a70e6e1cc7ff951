package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS questions (
		id             TEXT PRIMARY KEY,
		title          TEXT NOT NULL CHECK(length(trim(title)) > 0),
		difficulty     TEXT NOT NULL DEFAULT 'Medium'
		               CHECK(difficulty IN ('Easy','Medium','Hard')),
		approach       TEXT NOT NULL DEFAULT '',
		solution       TEXT NOT NULL DEFAULT '',
		notes          TEXT NOT NULL DEFAULT '',
		time_spent_min INTEGER CHECK(time_spent_min IS NULL OR time_spent_min >= 1),
		completed_at   TEXT NOT NULL,
		completed_on   TEXT NOT NULL,
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_questions_completed_on ON questions(completed_on)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_completed_at ON questions(completed_at)`,

	`CREATE TABLE IF NOT EXISTS question_tags (
		question_id TEXT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
		tag         TEXT NOT NULL,
		position    INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (question_id, tag)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_question_tags_tag ON question_tags(tag)`,

	`CREATE TABLE IF NOT EXISTS daily_activity (
		date       TEXT PRIMARY KEY,
		count      INTEGER NOT NULL DEFAULT 0 CHECK(count >= 0),
		updated_at TEXT NOT NULL
	)`,

	// platform was added after the first questions schema.
	`ALTER TABLE questions ADD COLUMN platform TEXT NOT NULL DEFAULT 'LeetCode'`,
}
