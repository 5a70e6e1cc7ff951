package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/dsatracker/internal/app"
	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/repository"
	"github.com/alexanderramin/dsatracker/internal/streak"
)

type dashboardService struct {
	questions repository.QuestionRepo
	activity  repository.ActivityRepo
	cal       Calendar
}

func NewDashboardService(questions repository.QuestionRepo, activity repository.ActivityRepo, cal Calendar) DashboardService {
	return &dashboardService{questions: questions, activity: activity, cal: cal}
}

func (s *dashboardService) Today() domain.Date {
	return s.cal.Today()
}

// GetDashboard recomputes everything from a fresh activity snapshot.
func (s *dashboardService) GetDashboard(ctx context.Context, req app.DashboardRequest) (*app.DashboardResponse, error) {
	today := s.cal.resolve(req.Today)

	log, err := s.activity.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading activity: %w", err)
	}

	engine := s.cal.engine()
	stats := engine.ComputeStats(log, today)
	grid := s.buildGrid(req, log, today, engine.StreakDaySet(log, today))

	todays, err := s.questions.ListByDay(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("loading today's questions: %w", err)
	}

	limit := req.RecentLimit
	if limit <= 0 {
		limit = app.DefaultRecentLimit
	}
	recent, err := s.questions.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("loading recent questions: %w", err)
	}

	return &app.DashboardResponse{
		Today:          today,
		MonthTitle:     grid.Title(),
		Stats:          stats,
		Calendar:       grid,
		TodayQuestions: todays,
		Recent:         recent,
	}, nil
}

func (s *dashboardService) GetStats(ctx context.Context, today *domain.Date) (streak.Stats, error) {
	log, err := s.activity.Snapshot(ctx)
	if err != nil {
		return streak.Stats{}, fmt.Errorf("loading activity: %w", err)
	}
	return s.cal.engine().ComputeStats(log, s.cal.resolve(today)), nil
}

func (s *dashboardService) GetCalendar(ctx context.Context, req app.DashboardRequest) (*streak.Grid, error) {
	today := s.cal.resolve(req.Today)
	log, err := s.activity.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading activity: %w", err)
	}
	grid := s.buildGrid(req, log, today, s.cal.engine().StreakDaySet(log, today))
	return &grid, nil
}

func (s *dashboardService) buildGrid(req app.DashboardRequest, log domain.ActivityLog, today domain.Date, streakDays streak.DateSet) streak.Grid {
	year, month := req.Year, req.Month
	if month == 0 {
		year, month = today.Year(), today.Month()
	}
	return s.cal.grid().Build(year, month, log, today, streakDays)
}
