package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/dsatracker/internal/app"
	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/streak"
	"github.com/alexanderramin/dsatracker/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRelativeDay(t *testing.T) {
	today := domain.MustParseDate("2024-01-13")

	tests := []struct {
		name string
		day  string
		want string
	}{
		{"today", "2024-01-13", "Today"},
		{"yesterday", "2024-01-12", "Yesterday"},
		{"tomorrow", "2024-01-14", "Tomorrow"},
		{"few days", "2024-01-08", "5d ago"},
		{"thirteen days", "2023-12-31", "13d ago"},
		{"two weeks", "2023-12-30", "Dec 30, 2023"},
		{"far future", "2024-03-01", "Mar 1, 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDay(domain.MustParseDate(tt.day), today))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "2h 5m", FormatMinutes(125))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 day", Plural(1, "day"))
	assert.Equal(t, "0 days", Plural(0, "day"))
	assert.Equal(t, "7 days", Plural(7, "day"))
}

func TestIntensityGlyph_DistinctPerBucket(t *testing.T) {
	seen := map[string]bool{}
	for _, i := range []domain.Intensity{domain.IntensityNone, domain.IntensityLow, domain.IntensityMedium, domain.IntensityHigh, domain.IntensityMax} {
		g := IntensityGlyph(i)
		assert.False(t, seen[g], "glyph %q reused", g)
		seen[g] = true
	}
}

func TestFormatStatCards(t *testing.T) {
	out := stripANSI(FormatStatCards(streak.Stats{CurrentStreak: 1, LongestStreak: 9, TotalActivity: 30, ActiveDays: 12, AveragePerActiveDay: 2.5}))
	assert.Contains(t, out, "Current streak")
	assert.Contains(t, out, "1 day")
	assert.Contains(t, out, "9 days")
	assert.Contains(t, out, "30")
	assert.Contains(t, out, "2.5")
}

func TestFormatQuestionDetail_SkipsEmptySections(t *testing.T) {
	q := testutil.NewTestQuestion("Two Sum",
		testutil.WithApproach("hash map of complements"),
		testutil.WithCompletedAt(time.Date(2024, 1, 13, 18, 30, 0, 0, time.UTC)))

	out := stripANSI(FormatQuestionDetail(q, time.UTC))
	assert.Contains(t, out, "TWO SUM")
	assert.Contains(t, out, "APPROACH")
	assert.Contains(t, out, "hash map of complements")
	assert.Contains(t, out, "Jan 13, 2024 18:30")
	assert.NotContains(t, out, "SOLUTION")
	assert.NotContains(t, out, "NOTES")
}

func TestFormatBank(t *testing.T) {
	today := domain.MustParseDate("2024-01-13")

	empty := stripANSI(FormatBank(&app.BankResult{Total: 8}, today, time.UTC))
	assert.Contains(t, empty, "Showing 0 of 8 questions")
	assert.Contains(t, empty, "No questions match")

	res := &app.BankResult{
		Questions: []*domain.Question{testutil.NewTestQuestion("Binary Search", testutil.WithCompletedOn("2024-01-07"))},
		Total:     8,
		Matched:   1,
	}
	out := stripANSI(FormatBank(res, today, time.UTC))
	assert.Contains(t, out, "Showing 1 of 8 questions")
	assert.Contains(t, out, "Binary Search")
	assert.Contains(t, out, "6d ago")
}

func TestFormatTagCounts(t *testing.T) {
	out := stripANSI(FormatTagCounts([]app.TagCount{{Tag: domain.TagArray, Count: 3}, {Tag: domain.TagHeap}}))
	assert.Contains(t, out, "TAG")
	assert.Contains(t, out, "Array")
	assert.Contains(t, out, "Heap")
}

func TestFormatDashboard(t *testing.T) {
	log := testutil.NewTestLog(t, demoLog)
	today := domain.MustParseDate("2024-01-13")
	grid := streak.BuildGrid(2024, time.January, log, today, streak.StreakDaySet(log, today))

	resp := &app.DashboardResponse{
		Today:      today,
		MonthTitle: grid.Title(),
		Stats:      streak.ComputeStats(log, today),
		Calendar:   grid,
		Recent:     []*domain.Question{testutil.NewTestQuestion("Two Sum", testutil.WithCompletedOn("2024-01-13"))},
	}

	out := stripANSI(FormatDashboard(resp, time.UTC))
	assert.Contains(t, out, "PROGRESS")
	assert.Contains(t, out, "January 2024")
	assert.Contains(t, out, ">13▒")
	assert.Contains(t, out, "Nothing solved yet today.")
	assert.Contains(t, out, "Two Sum")
}

func TestFormatCalendar_ShadesAdjacentMonthDays(t *testing.T) {
	log := testutil.NewTestLog(t, map[string]int{"2023-12-31": 2, "2024-02-01": 7})
	today := domain.MustParseDate("2024-01-13")
	grid := streak.BuildGrid(2024, time.January, log, today, streak.StreakDaySet(log, today))

	lines := strings.Split(stripANSI(FormatCalendar(grid)), "\n")
	assert.True(t, strings.HasPrefix(lines[2], " 31░ "), "leading December day: %q", lines[2])
	assert.Contains(t, lines[6], "   1█ ")
}
