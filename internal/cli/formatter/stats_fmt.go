package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/dsatracker/internal/streak"
	"github.com/charmbracelet/lipgloss"
)

type statLine struct {
	label string
	value string
}

func statLines(s streak.Stats) []statLine {
	return []statLine{
		{"Current streak", Plural(s.CurrentStreak, "day")},
		{"Longest streak", Plural(s.LongestStreak, "day")},
		{"Total solved", strconv.Itoa(s.TotalActivity)},
		{"Active days", strconv.Itoa(s.ActiveDays)},
		{"Avg per active day", fmt.Sprintf("%.1f", s.AveragePerActiveDay)},
	}
}

// FormatStats renders the statistics as an aligned label/value list.
func FormatStats(s streak.Stats) string {
	lines := statLines(s)
	width := 0
	for _, l := range lines {
		width = max(width, len(l.label))
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(Dim(l.label))
		b.WriteString(strings.Repeat(" ", width-len(l.label)+colGap))
		b.WriteString(Bold(l.value) + "\n")
	}
	return b.String()
}

// FormatStatCards renders the headline numbers as a row of bordered cards.
func FormatStatCards(s streak.Stats) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Width(18)

	render := func(label, value string, style lipgloss.Style) string {
		return card.Render(Dim(label) + "\n" + style.Bold(true).Render(value))
	}

	streakStyle := StyleGreen
	if s.CurrentStreak == 0 {
		streakStyle = StyleRed
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		render("Current streak", Plural(s.CurrentStreak, "day"), streakStyle),
		render("Longest streak", Plural(s.LongestStreak, "day"), StyleYellow),
		render("Total solved", strconv.Itoa(s.TotalActivity), StyleBlue),
		render("Avg / active day", fmt.Sprintf("%.1f", s.AveragePerActiveDay), StylePurple),
	)
}
