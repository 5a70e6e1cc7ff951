package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/google/uuid"
)

// Question options
type QuestionOption func(*domain.Question)

func WithDifficulty(d domain.Difficulty) QuestionOption {
	return func(q *domain.Question) {
		q.Difficulty = d
	}
}

func WithTags(tags ...domain.Tag) QuestionOption {
	return func(q *domain.Question) {
		q.Tags = tags
	}
}

func WithCompletedAt(t time.Time) QuestionOption {
	return func(q *domain.Question) {
		q.CompletedAt = t
	}
}

// WithCompletedOn places the completion at noon UTC on the given day.
func WithCompletedOn(key string) QuestionOption {
	return func(q *domain.Question) {
		q.CompletedAt = domain.MustParseDate(key).Time(time.UTC).Add(12 * time.Hour)
	}
}

func WithTimeSpent(min int) QuestionOption {
	return func(q *domain.Question) {
		q.TimeSpentMin = &min
	}
}

func WithPlatform(p string) QuestionOption {
	return func(q *domain.Question) {
		q.Platform = p
	}
}

func WithApproach(a string) QuestionOption {
	return func(q *domain.Question) {
		q.Approach = a
	}
}

func WithID(id string) QuestionOption {
	return func(q *domain.Question) {
		q.ID = id
	}
}

func WithNotes(n string) QuestionOption {
	return func(q *domain.Question) {
		q.Notes = n
	}
}

func NewTestQuestion(title string, opts ...QuestionOption) *domain.Question {
	q := &domain.Question{
		ID:          uuid.New().String(),
		Title:       title,
		Difficulty:  domain.DifficultyMedium,
		Tags:        []domain.Tag{domain.TagArray},
		Platform:    domain.DefaultPlatform,
		CompletedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// NewTestLog builds an activity log from YYYY-MM-DD keyed counts.
func NewTestLog(t *testing.T, raw map[string]int) domain.ActivityLog {
	t.Helper()
	log, err := domain.ParseActivityLog(raw)
	if err != nil {
		t.Fatalf("building activity log: %v", err)
	}
	return log
}

// FixedClock returns a clock func pinned to the given instant.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
