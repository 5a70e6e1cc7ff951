package reminder

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/dsatracker/internal/repository"
	"github.com/alexanderramin/dsatracker/internal/service"
	"github.com/alexanderramin/dsatracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReminder(t *testing.T, now time.Time, schedule string) (*Reminder, *bytes.Buffer) {
	t.Helper()
	database := testutil.NewTestDB(t)
	require.NoError(t, service.SeedDemo(context.Background(), testutil.NewTestUoW(database), time.UTC))

	cal := service.Calendar{Now: testutil.FixedClock(now), Location: time.UTC}
	questions := repository.NewSQLiteQuestionRepo(database, time.UTC)
	activity := repository.NewSQLiteActivityRepo(database)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	r, err := New(schedule,
		service.NewActivityService(activity),
		service.NewDashboardService(questions, activity, cal),
		time.UTC, logger)
	require.NoError(t, err)
	return r, &buf
}

func TestCheck_ActiveToday(t *testing.T) {
	r, buf := newReminder(t, time.Date(2024, 1, 13, 20, 0, 0, 0, time.UTC), "")

	res, err := r.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-01-13", res.Today.Key())
	assert.Equal(t, 3, res.TodayCount)
	assert.Equal(t, 7, res.CurrentStreak)
	assert.False(t, res.AtRisk())
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "current_streak=7")
}

func TestCheck_StreakAtRisk(t *testing.T) {
	// Nothing on the 6th, two questions on the 5th.
	r, buf := newReminder(t, time.Date(2024, 1, 6, 20, 0, 0, 0, time.UTC), DefaultSchedule)

	res, err := r.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, res.AtRisk())
	assert.Equal(t, 0, res.TodayCount)
	assert.Equal(t, 2, res.YesterdayCount)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "streak at risk")
}

func TestCheck_NoStreakToLose(t *testing.T) {
	r, buf := newReminder(t, time.Date(2024, 2, 1, 20, 0, 0, 0, time.UTC), "")

	res, err := r.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, res.AtRisk())
	assert.Equal(t, 0, res.CurrentStreak)
	assert.NotContains(t, buf.String(), "streak at risk")
}

func TestCheck_NotifiesListener(t *testing.T) {
	r, _ := newReminder(t, time.Date(2024, 1, 6, 20, 0, 0, 0, time.UTC), "")

	var got []Result
	r.OnCheck(func(res Result) { got = append(got, res) })

	_, err := r.Check(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].AtRisk())
}

func TestNew_RejectsBadSchedule(t *testing.T) {
	_, err := New("every evening", nil, nil, time.UTC, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "every evening")
}

func TestStartStop(t *testing.T) {
	r, _ := newReminder(t, time.Date(2024, 1, 13, 20, 0, 0, 0, time.UTC), "@every 1h")
	r.Start()
	r.Stop()
}
