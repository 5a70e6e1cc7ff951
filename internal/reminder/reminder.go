// Package reminder runs the daily streak check on a cron schedule.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/service"
	"github.com/robfig/cron/v3"
)

// DefaultSchedule fires at 20:00 every day.
const DefaultSchedule = "0 20 * * *"

const checkTimeout = 10 * time.Second

// Result is the outcome of one check.
type Result struct {
	Today          domain.Date
	TodayCount     int
	YesterdayCount int
	CurrentStreak  int
}

// AtRisk reports whether a live streak ends tonight unless something is logged.
func (r Result) AtRisk() bool {
	return r.TodayCount == 0 && r.YesterdayCount > 0
}

type Reminder struct {
	cron      *cron.Cron
	schedule  string
	activity  service.ActivityService
	dashboard service.DashboardService
	logger    *slog.Logger
	onCheck   func(Result)
}

// New validates schedule and prepares the job. Nothing runs until Start.
func New(schedule string, activity service.ActivityService, dashboard service.DashboardService, loc *time.Location, logger *slog.Logger) (*Reminder, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}

	r := &Reminder{
		cron:      cron.New(cron.WithLocation(loc)),
		schedule:  schedule,
		activity:  activity,
		dashboard: dashboard,
		logger:    logger,
	}
	if _, err := r.cron.AddFunc(schedule, r.run); err != nil {
		return nil, fmt.Errorf("reminder schedule %q: %w", schedule, err)
	}
	return r, nil
}

// OnCheck registers fn to receive every successful check result.
// Call it before Start.
func (r *Reminder) OnCheck(fn func(Result)) {
	r.onCheck = fn
}

func (r *Reminder) Start() {
	r.logger.Info("streak reminder scheduled", "schedule", r.schedule)
	r.cron.Start()
}

// Stop halts the scheduler and waits for a running check to finish.
func (r *Reminder) Stop() {
	<-r.cron.Stop().Done()
}

func (r *Reminder) run() {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()
	if _, err := r.Check(ctx); err != nil {
		r.logger.Error("streak reminder failed", "error", err)
	}
}

// Check inspects today's and yesterday's activity and logs the outcome.
func (r *Reminder) Check(ctx context.Context) (Result, error) {
	today := r.dashboard.Today()
	log, err := r.activity.Snapshot(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("loading activity: %w", err)
	}
	stats, err := r.dashboard.GetStats(ctx, &today)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Today:          today,
		TodayCount:     log.Count(today),
		YesterdayCount: log.Count(today.AddDays(-1)),
		CurrentStreak:  stats.CurrentStreak,
	}
	if res.AtRisk() {
		r.logger.WarnContext(ctx, "streak at risk",
			"date", today.Key(), "yesterday", res.YesterdayCount)
	} else {
		r.logger.InfoContext(ctx, "streak check",
			"date", today.Key(), "today", res.TodayCount, "current_streak", res.CurrentStreak)
	}
	if r.onCheck != nil {
		r.onCheck(res)
	}
	return res, nil
}
