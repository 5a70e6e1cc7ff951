package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/dsatracker/internal/db"
	"github.com/alexanderramin/dsatracker/internal/domain"
)

// tagListSQL aggregates a question's tags in insertion order.
const tagListSQL = `(SELECT group_concat(tag, ',') FROM
		(SELECT tag FROM question_tags t WHERE t.question_id = q.id ORDER BY position))`

const questionColumns = `q.id, q.title, q.difficulty, q.approach, q.solution, q.notes,
		q.time_spent_min, q.platform, q.completed_at, ` + tagListSQL

// SQLiteQuestionRepo implements QuestionRepo using a SQLite database.
type SQLiteQuestionRepo struct {
	db  db.DBTX
	loc *time.Location
}

// NewSQLiteQuestionRepo creates a new SQLiteQuestionRepo. loc decides which
// calendar day a completion time falls on; nil means UTC.
func NewSQLiteQuestionRepo(conn db.DBTX, loc *time.Location) *SQLiteQuestionRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &SQLiteQuestionRepo{db: conn, loc: loc}
}

func (r *SQLiteQuestionRepo) Create(ctx context.Context, q *domain.Question) error {
	query := `INSERT INTO questions (id, title, difficulty, approach, solution, notes,
		time_spent_min, platform, completed_at, completed_on, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		q.ID,
		q.Title,
		string(q.Difficulty),
		q.Approach,
		q.Solution,
		q.Notes,
		optionalInt(q.TimeSpentMin),
		q.Platform,
		q.CompletedAt.UTC().Format(time.RFC3339),
		q.CompletedOn(r.loc).Key(),
		timestamp(),
	)
	if err != nil {
		return fmt.Errorf("inserting question: %w", err)
	}

	for i, tag := range q.Tags {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO question_tags (question_id, tag, position) VALUES (?, ?, ?)`,
			q.ID, string(tag), i,
		); err != nil {
			return fmt.Errorf("inserting question tag %s: %w", tag, err)
		}
	}
	return nil
}

func (r *SQLiteQuestionRepo) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions q WHERE q.id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("question %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning question: %w", err)
	}
	return q, nil
}

func (r *SQLiteQuestionRepo) List(ctx context.Context, limit int) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions q
		ORDER BY q.completed_at DESC, q.created_at DESC, q.id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (r *SQLiteQuestionRepo) ListByDay(ctx context.Context, day domain.Date) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions q
		WHERE q.completed_on = ?
		ORDER BY q.completed_at DESC, q.created_at DESC, q.id`
	rows, err := r.db.QueryContext(ctx, query, day.Key())
	if err != nil {
		return nil, fmt.Errorf("listing questions for %s: %w", day, err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (r *SQLiteQuestionRepo) TagCounts(ctx context.Context) (map[domain.Tag]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT tag, COUNT(*) FROM question_tags GROUP BY tag`)
	if err != nil {
		return nil, fmt.Errorf("counting tags: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Tag]int)
	for rows.Next() {
		var raw string
		var n int
		if err := rows.Scan(&raw, &n); err != nil {
			return nil, fmt.Errorf("scanning tag count: %w", err)
		}
		if t, ok := domain.ParseTag(raw); ok {
			counts[t] += n
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tag counts: %w", err)
	}
	return counts, nil
}

func (r *SQLiteQuestionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting question: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting question: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("question %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (*domain.Question, error) {
	var q domain.Question
	var difficulty, completedAt string
	var timeSpent sql.Null[int]
	var tags sql.NullString

	if err := row.Scan(
		&q.ID, &q.Title, &difficulty, &q.Approach, &q.Solution, &q.Notes,
		&timeSpent, &q.Platform, &completedAt, &tags,
	); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, completedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing completed_at: %w", err)
	}
	q.CompletedAt = t
	q.Difficulty = domain.Difficulty(difficulty)
	q.TimeSpentMin = intPtr(timeSpent)
	q.Tags = splitTags(tags)
	return &q, nil
}

// scanQuestions never returns a nil slice, so empty results encode as [].
func scanQuestions(rows *sql.Rows) ([]*domain.Question, error) {
	questions := make([]*domain.Question, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning question row: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating questions: %w", err)
	}
	return questions, nil
}
