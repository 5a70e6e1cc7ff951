package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/dsatracker/internal/db"
	"github.com/alexanderramin/dsatracker/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

func (r *SQLiteActivityRepo) Snapshot(ctx context.Context) (domain.ActivityLog, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date, count FROM daily_activity ORDER BY date`)
	if err != nil {
		return domain.ActivityLog{}, fmt.Errorf("loading activity: %w", err)
	}
	defer rows.Close()

	log := domain.NewActivityLog()
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return domain.ActivityLog{}, fmt.Errorf("scanning activity row: %w", err)
		}
		d, err := domain.ParseDate(key)
		if err != nil {
			return domain.ActivityLog{}, fmt.Errorf("activity row: %w", err)
		}
		if err := log.Set(d, n); err != nil {
			return domain.ActivityLog{}, fmt.Errorf("activity row %s: %w", key, err)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.ActivityLog{}, fmt.Errorf("iterating activity: %w", err)
	}
	return log, nil
}

func (r *SQLiteActivityRepo) Get(ctx context.Context, day domain.Date) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count FROM daily_activity WHERE date = ?`, day.Key()).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading activity for %s: %w", day, err)
	}
	return n, nil
}

func (r *SQLiteActivityRepo) Increment(ctx context.Context, day domain.Date, delta int) (int, error) {
	if day.IsZero() {
		return 0, domain.ErrInvalidDate
	}
	query := `INSERT INTO daily_activity (date, count, updated_at) VALUES (?, max(?, 0), ?)
		ON CONFLICT(date) DO UPDATE SET
			count = max(daily_activity.count + ?, 0),
			updated_at = excluded.updated_at
		RETURNING count`
	var n int
	if err := r.db.QueryRowContext(ctx, query, day.Key(), delta, timestamp(), delta).Scan(&n); err != nil {
		return 0, fmt.Errorf("incrementing activity for %s: %w", day, err)
	}
	return n, nil
}

func (r *SQLiteActivityRepo) Set(ctx context.Context, day domain.Date, count int) error {
	if day.IsZero() {
		return domain.ErrInvalidDate
	}
	if count < 0 {
		return domain.ErrNegativeCount
	}
	query := `INSERT INTO daily_activity (date, count, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET count = excluded.count, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, day.Key(), count, timestamp()); err != nil {
		return fmt.Errorf("setting activity for %s: %w", day, err)
	}
	return nil
}
