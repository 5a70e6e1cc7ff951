package service

import (
	"context"

	"github.com/alexanderramin/dsatracker/internal/app"
	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/streak"
)

type QuestionService interface {
	app.LogQuestionUseCase
	RemoveQuestion(ctx context.Context, id string) error
	GetQuestion(ctx context.Context, id string) (*domain.Question, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Question, error)
	ListForDay(ctx context.Context, day domain.Date) ([]*domain.Question, error)
}

type ActivityService interface {
	Snapshot(ctx context.Context) (domain.ActivityLog, error)
	SetActivity(ctx context.Context, day domain.Date, count int) error
}

type DashboardService interface {
	app.DashboardUseCase
	GetStats(ctx context.Context, today *domain.Date) (streak.Stats, error)
	GetCalendar(ctx context.Context, req app.DashboardRequest) (*streak.Grid, error)
	Today() domain.Date
}

type QuestionBankService interface {
	app.QuestionBankUseCase
	TagCounts(ctx context.Context) ([]app.TagCount, error)
}
