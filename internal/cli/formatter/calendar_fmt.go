package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/streak"
)

// Cell markers. Today wins over streak membership.
const (
	markToday  = ">"
	markStreak = "*"
)

// FormatCalendar renders a month grid as a heat-map: one row per week,
// each cell a marker, the day number and an intensity glyph.
func FormatCalendar(grid streak.Grid) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(grid.Title()) + "\n")

	heads := make([]string, 7)
	for i := range heads {
		wd := time.Weekday((int(grid.WeekStart) + i) % 7)
		heads[i] = " " + wd.String()[:2] + " "
	}
	b.WriteString(Dim(strings.Join(heads, " ")) + "\n")

	for _, week := range grid.Weeks() {
		cells := make([]string, len(week))
		for i, d := range week {
			cells[i] = calendarCell(d)
		}
		b.WriteString(strings.Join(cells, " ") + "\n")
	}

	b.WriteString("\n" + CalendarLegend() + "\n")
	return b.String()
}

func calendarCell(d streak.Day) string {
	num := fmt.Sprintf("%2d", d.DayNumber)
	if !d.BelongsToDisplayedMonth {
		return Dim(" " + num + IntensityGlyph(d.Intensity))
	}

	mark := " "
	switch {
	case d.IsToday:
		mark = StylePurple.Render(markToday)
	case d.IsInCurrentStreak:
		mark = StyleYellow.Render(markStreak)
	}
	return mark + IntensityStyle(d.Intensity).Render(num+IntensityGlyph(d.Intensity))
}

// CalendarLegend explains the glyphs and markers.
func CalendarLegend() string {
	buckets := []struct {
		i     domain.Intensity
		label string
	}{
		{domain.IntensityLow, "1-2"},
		{domain.IntensityMedium, "3-4"},
		{domain.IntensityHigh, "5-6"},
		{domain.IntensityMax, "7+"},
	}
	parts := make([]string, 0, len(buckets)+2)
	for _, bk := range buckets {
		parts = append(parts, IntensityStyle(bk.i).Render(IntensityGlyph(bk.i))+" "+Dim(bk.label))
	}
	parts = append(parts,
		StylePurple.Render(markToday)+" "+Dim("today"),
		StyleYellow.Render(markStreak)+" "+Dim("streak"))
	return strings.Join(parts, "  ")
}
