package repository

import (
	"context"

	"github.com/alexanderramin/dsatracker/internal/domain"
)

// QuestionRepo stores solved questions and their tags.
type QuestionRepo interface {
	Create(ctx context.Context, q *domain.Question) error
	GetByID(ctx context.Context, id string) (*domain.Question, error)
	// List returns questions newest first. limit <= 0 returns all of them.
	List(ctx context.Context, limit int) ([]*domain.Question, error)
	ListByDay(ctx context.Context, day domain.Date) ([]*domain.Question, error)
	TagCounts(ctx context.Context) (map[domain.Tag]int, error)
	Delete(ctx context.Context, id string) error
}

// ActivityRepo stores the per-day activity counts.
type ActivityRepo interface {
	Snapshot(ctx context.Context) (domain.ActivityLog, error)
	Get(ctx context.Context, day domain.Date) (int, error)
	// Increment adds delta to the day's count, clamping at zero, and returns
	// the new count.
	Increment(ctx context.Context, day domain.Date, delta int) (int, error)
	Set(ctx context.Context, day domain.Date, count int) error
}
