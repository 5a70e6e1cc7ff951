package streak

import (
	"strconv"
	"time"

	"github.com/alexanderramin/dsatracker/internal/domain"
)

// GridCells is the fixed size of a month grid: six weeks of seven days.
const GridCells = 42

// Day is one cell of a month grid.
type Day struct {
	Date                    domain.Date      `json:"date" yaml:"date"`
	DayNumber               int              `json:"dayNumber" yaml:"dayNumber"`
	ActivityCount           int              `json:"activityCount" yaml:"activityCount"`
	BelongsToDisplayedMonth bool             `json:"belongsToDisplayedMonth" yaml:"belongsToDisplayedMonth"`
	IsToday                 bool             `json:"isToday" yaml:"isToday"`
	IsInCurrentStreak       bool             `json:"isInCurrentStreak" yaml:"isInCurrentStreak"`
	Intensity               domain.Intensity `json:"intensity" yaml:"intensity"`
}

// Grid is a month calendar laid out row-major by week.
type Grid struct {
	Year      int          `json:"year" yaml:"year"`
	Month     time.Month   `json:"month" yaml:"month"`
	WeekStart time.Weekday `json:"weekStart" yaml:"weekStart"`
	Days      []Day        `json:"days" yaml:"days"`
}

// Weeks splits the grid into rows of seven.
func (g Grid) Weeks() [][]Day {
	weeks := make([][]Day, 0, len(g.Days)/7)
	for i := 0; i+7 <= len(g.Days); i += 7 {
		weeks = append(weeks, g.Days[i:i+7])
	}
	return weeks
}

// Title returns e.g. "January 2024".
func (g Grid) Title() string {
	return g.Month.String() + " " + strconv.Itoa(g.Year)
}

// GridBuilder lays out month grids. The zero value starts weeks on Sunday.
type GridBuilder struct {
	WeekStart time.Weekday
}

// Build returns the 42-cell grid for (year, month). Out-of-range months
// normalise like time.Date, so month 0 is December of the previous year.
func (b GridBuilder) Build(year int, month time.Month, log domain.ActivityLog, today domain.Date, streakDays DateSet) Grid {
	first := domain.NewDate(year, month, 1)
	year, month = first.Year(), first.Month()

	offset := (int(first.Weekday()) - int(b.WeekStart) + 7) % 7
	daysInMonth := domain.DaysInMonth(year, month)

	grid := Grid{
		Year:      year,
		Month:     month,
		WeekStart: b.WeekStart,
		Days:      make([]Day, 0, GridCells),
	}

	cell := func(d domain.Date, inMonth bool) Day {
		count := log.Count(d)
		return Day{
			Date:                    d,
			DayNumber:               d.Day(),
			ActivityCount:           count,
			BelongsToDisplayedMonth: inMonth,
			IsToday:                 inMonth && d.Equal(today),
			IsInCurrentStreak:       count > 0 && streakDays.Contains(d),
			Intensity:               IntensityFor(count),
		}
	}

	// Leading days of the previous month, oldest first.
	for i := offset; i > 0; i-- {
		grid.Days = append(grid.Days, cell(first.AddDays(-i), false))
	}
	for day := 0; day < daysInMonth; day++ {
		grid.Days = append(grid.Days, cell(first.AddDays(day), true))
	}
	next := first.AddDays(daysInMonth)
	for i := 0; len(grid.Days) < GridCells; i++ {
		grid.Days = append(grid.Days, cell(next.AddDays(i), false))
	}

	return grid
}

// BuildGrid builds a Sunday-first grid.
func BuildGrid(year int, month time.Month, log domain.ActivityLog, today domain.Date, streakDays DateSet) Grid {
	return GridBuilder{}.Build(year, month, log, today, streakDays)
}

// IntensityFor buckets an activity count for heat-map shading.
func IntensityFor(count int) domain.Intensity {
	switch {
	case count <= 0:
		return domain.IntensityNone
	case count <= 2:
		return domain.IntensityLow
	case count <= 4:
		return domain.IntensityMedium
	case count <= 6:
		return domain.IntensityHigh
	default:
		return domain.IntensityMax
	}
}
