package streak

import (
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomLog builds a log over a window of up to 90 days with a mix of
// missing days, explicit zeros and positive counts.
func randomLog(t *testing.T, rng *rand.Rand, start domain.Date) domain.ActivityLog {
	t.Helper()
	log := domain.NewActivityLog()
	span := rng.Intn(90) + 1
	for i := 0; i < span; i++ {
		switch rng.Intn(4) {
		case 0:
			// leave the day out entirely
		case 1:
			require.NoError(t, log.Set(start.AddDays(i), 0))
		default:
			require.NoError(t, log.Set(start.AddDays(i), rng.Intn(9)+1))
		}
	}
	return log
}

func TestComputeStats_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	start := domain.MustParseDate("2024-01-01")

	for trial := 0; trial < 300; trial++ {
		log := randomLog(t, rng, start)
		today := start.AddDays(rng.Intn(100))
		s := ComputeStats(log, today)

		assert.LessOrEqual(t, s.ActiveDays, log.Len(), "trial %d", trial)
		assert.GreaterOrEqual(t, s.TotalActivity, s.ActiveDays, "trial %d", trial)
		assert.GreaterOrEqual(t, s.LongestStreak, s.CurrentStreak, "trial %d", trial)
		assert.Equal(t, s.ActiveDays == 0, s.AveragePerActiveDay == 0, "trial %d", trial)
		if log.Count(today) == 0 {
			assert.Zero(t, s.CurrentStreak, "trial %d", trial)
		}
		assert.Len(t, StreakDaySet(log, today), s.CurrentStreak, "trial %d", trial)
	}
}

func TestBuildGrid_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	start := domain.MustParseDate("2024-01-01")

	for trial := 0; trial < 200; trial++ {
		log := randomLog(t, rng, start)
		today := start.AddDays(rng.Intn(100))
		year := 2023 + rng.Intn(3)
		month := time.Month(rng.Intn(12) + 1)
		weekStart := time.Weekday(rng.Intn(7))
		b := GridBuilder{WeekStart: weekStart}
		streakDays := StreakDaySet(log, today)

		g := b.Build(year, month, log, today, streakDays)
		require.Len(t, g.Days, GridCells, "trial %d", trial)
		assert.Equal(t, domain.DaysInMonth(year, month), countInMonth(g), "trial %d", trial)
		assert.Equal(t, weekStart, g.Days[0].Date.Weekday(), "trial %d", trial)

		for i := 1; i < len(g.Days); i++ {
			assert.True(t, g.Days[i-1].Date.AddDays(1).Equal(g.Days[i].Date), "trial %d: cells must be consecutive days", trial)
		}
		for _, d := range g.Days {
			assert.Equal(t, log.Count(d.Date), d.ActivityCount)
			if d.IsInCurrentStreak {
				assert.Positive(t, d.ActivityCount)
			}
		}

		again := b.Build(year, month, log, today, streakDays)
		assert.Equal(t, g, again, "trial %d: grid must be deterministic", trial)
	}
}
