package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func schemaObject(t *testing.T, conn *sql.DB, kind, name string) bool {
	t.Helper()
	var n int
	require.NoError(t, conn.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = ? AND name = ?`, kind, name).Scan(&n))
	return n == 1
}

func TestMigrate(t *testing.T) {
	conn := openTestDB(t)

	t.Run("rerun is a no-op", func(t *testing.T) {
		require.NoError(t, Migrate(conn))
		require.NoError(t, Migrate(conn))
	})

	t.Run("schema objects", func(t *testing.T) {
		objects := map[string]string{
			"questions":                  "table",
			"question_tags":              "table",
			"daily_activity":             "table",
			"idx_questions_completed_on": "index",
			"idx_questions_completed_at": "index",
			"idx_question_tags_tag":      "index",
		}
		for name, kind := range objects {
			assert.True(t, schemaObject(t, conn, kind, name), "%s %s missing", kind, name)
		}
	})
}

func TestOpenDB_Pragmas(t *testing.T) {
	conn := openTestDB(t)

	var fk int
	require.NoError(t, conn.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)

	var mode string
	require.NoError(t, conn.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "memory", mode)
}

func TestOpenDB_FileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tracker.db")
	conn, err := OpenDB(path)
	require.NoError(t, err)
	defer conn.Close()

	var mode string
	require.NoError(t, conn.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpenDB_MemoryIsOneDatabase(t *testing.T) {
	conn := openTestDB(t)

	_, err := conn.Exec(`INSERT INTO daily_activity (date, count, updated_at) VALUES ('2024-01-01', 1, 'x')`)
	require.NoError(t, err)

	var n int
	require.NoError(t, conn.QueryRow(`SELECT count FROM daily_activity WHERE date = '2024-01-01'`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSchemaConstraints(t *testing.T) {
	const insertQuestion = `INSERT INTO questions
		(id, title, difficulty, time_spent_min, completed_at, completed_on, created_at)
		VALUES (?, ?, ?, ?, 'x', '2024-01-01', 'x')`

	tests := []struct {
		name    string
		query   string
		args    []any
		wantErr bool
	}{
		{"valid question", insertQuestion, []any{"q1", "Two Sum", "Easy", 10}, false},
		{"unknown difficulty", insertQuestion, []any{"q2", "Bad", "Impossible", nil}, true},
		{"blank title", insertQuestion, []any{"q3", "   ", "Easy", nil}, true},
		{"zero minutes", insertQuestion, []any{"q4", "Zero", "Easy", 0}, true},
		{"negative activity",
			`INSERT INTO daily_activity (date, count, updated_at) VALUES ('2024-01-01', -1, 'x')`, nil, true},
		{"tag for missing question",
			`INSERT INTO question_tags (question_id, tag) VALUES ('nope', 'Array')`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := openTestDB(t)
			_, err := conn.Exec(tt.query, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchema_PlatformDefault(t *testing.T) {
	conn := openTestDB(t)
	_, err := conn.Exec(`INSERT INTO questions (id, title, completed_at, completed_on, created_at)
		VALUES ('q1', 'Two Sum', 'x', '2024-01-01', 'x')`)
	require.NoError(t, err)

	var platform string
	require.NoError(t, conn.QueryRow(`SELECT platform FROM questions WHERE id = 'q1'`).Scan(&platform))
	assert.Equal(t, "LeetCode", platform)
}

func TestSchema_TagsCascadeOnQuestionDelete(t *testing.T) {
	conn := openTestDB(t)

	for _, q := range []string{
		`INSERT INTO questions (id, title, completed_at, completed_on, created_at) VALUES ('q1', 'Two Sum', 'x', '2024-01-01', 'x')`,
		`INSERT INTO question_tags (question_id, tag) VALUES ('q1', 'Array')`,
		`DELETE FROM questions WHERE id = 'q1'`,
	} {
		_, err := conn.Exec(q)
		require.NoError(t, err)
	}

	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM question_tags`).Scan(&n))
	assert.Zero(t, n)
}
