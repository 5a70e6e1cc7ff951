package streak

import (
	"testing"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLog(t *testing.T, raw map[string]int) domain.ActivityLog {
	t.Helper()
	log, err := domain.ParseActivityLog(raw)
	require.NoError(t, err)
	return log
}

func day(key string) domain.Date { return domain.MustParseDate(key) }

func TestComputeStats_ThreeDayRun(t *testing.T) {
	log := mustLog(t, map[string]int{"2024-01-09": 2, "2024-01-10": 1, "2024-01-11": 4})

	s := ComputeStats(log, day("2024-01-11"))
	assert.Equal(t, 3, s.CurrentStreak)
	assert.Equal(t, 3, s.LongestStreak)
	assert.Equal(t, 7, s.TotalActivity)
	assert.Equal(t, 3, s.ActiveDays)
	assert.InDelta(t, 2.333, s.AveragePerActiveDay, 0.001)
}

func TestComputeStats_NoActivityTodayMeansNoCurrentStreak(t *testing.T) {
	log := mustLog(t, map[string]int{"2024-01-07": 1})

	s := ComputeStats(log, day("2024-01-11"))
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
	assert.Equal(t, 1, s.TotalActivity)
}

func TestComputeStats_EmptyLog(t *testing.T) {
	s := ComputeStats(domain.NewActivityLog(), day("2024-01-11"))
	assert.Equal(t, Stats{}, s)
}

func TestComputeStats_ExplicitZeroTodayEndsStreak(t *testing.T) {
	log := mustLog(t, map[string]int{"2024-01-10": 3, "2024-01-11": 0})

	s := ComputeStats(log, day("2024-01-11"))
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 1, s.ActiveDays)
	assert.Equal(t, 2, log.Len())
}

func TestComputeStats_CurrentStreakStopsAtGap(t *testing.T) {
	log := mustLog(t, map[string]int{
		"2024-01-03": 3, "2024-01-04": 1, "2024-01-05": 2,
		"2024-01-07": 1, "2024-01-08": 3, "2024-01-09": 2, "2024-01-10": 1,
		"2024-01-11": 4, "2024-01-12": 2, "2024-01-13": 3,
	})

	s := ComputeStats(log, day("2024-01-13"))
	assert.Equal(t, 7, s.CurrentStreak)
	assert.Equal(t, 7, s.LongestStreak)
	assert.Equal(t, 22, s.TotalActivity)
	assert.Equal(t, 10, s.ActiveDays)
	assert.InDelta(t, 2.2, s.AveragePerActiveDay, 1e-9)
}

func TestLongestStreak_MissingDaysBreakRuns(t *testing.T) {
	// Sorted keys are adjacent in the map but ten days apart on the calendar.
	log := mustLog(t, map[string]int{"2024-01-01": 1, "2024-01-10": 1})
	assert.Equal(t, 1, LongestStreak(log))
}

func TestLongestStreak_ZeroEntryBreaksRun(t *testing.T) {
	log := mustLog(t, map[string]int{
		"2024-01-01": 1, "2024-01-02": 1, "2024-01-03": 0, "2024-01-04": 1,
	})
	assert.Equal(t, 2, LongestStreak(log))
}

func TestLongestStreak_AcrossMonthAndYearBoundary(t *testing.T) {
	log := mustLog(t, map[string]int{"2023-12-30": 1, "2023-12-31": 2, "2024-01-01": 1})
	assert.Equal(t, 3, LongestStreak(log))
}

func TestEngine_WalkLimitCapsCurrentStreakOnly(t *testing.T) {
	log := mustLog(t, map[string]int{
		"2024-01-01": 1, "2024-01-02": 1, "2024-01-03": 1, "2024-01-04": 1, "2024-01-05": 1,
	})

	s := Engine{WalkLimit: 3}.ComputeStats(log, day("2024-01-05"))
	assert.Equal(t, 3, s.CurrentStreak)
	assert.Equal(t, 5, s.LongestStreak)
}

func TestStreakDaySet(t *testing.T) {
	log := mustLog(t, map[string]int{"2024-01-08": 1, "2024-01-10": 2, "2024-01-11": 1})

	set := StreakDaySet(log, day("2024-01-11"))
	assert.Len(t, set, 2)
	assert.True(t, set.Contains(day("2024-01-11")))
	assert.True(t, set.Contains(day("2024-01-10")))
	assert.False(t, set.Contains(day("2024-01-08")))
}

func TestStreakDaySet_EmptyWhenTodayInactive(t *testing.T) {
	log := mustLog(t, map[string]int{"2024-01-10": 2})
	assert.Empty(t, StreakDaySet(log, day("2024-01-11")))
}

func TestComputeStats_DoesNotMutateLog(t *testing.T) {
	log := mustLog(t, map[string]int{"2024-01-10": 2, "2024-01-11": 1})
	before := log.Keyed()

	_ = ComputeStats(log, day("2024-01-11"))
	_ = StreakDaySet(log, day("2024-01-11"))

	assert.Equal(t, before, log.Keyed())
}
