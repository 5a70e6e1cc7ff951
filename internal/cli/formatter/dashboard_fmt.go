package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/dsatracker/internal/app"
)

// FormatDashboard renders the full dashboard: stats, the calendar page,
// today's questions and the most recent ones.
func FormatDashboard(resp *app.DashboardResponse, loc *time.Location) string {
	var b strings.Builder

	b.WriteString(RenderBox("Progress", FormatStats(resp.Stats)))
	b.WriteString("\n")
	b.WriteString(RenderBox("Calendar", strings.TrimRight(FormatCalendar(resp.Calendar), "\n")))
	b.WriteString("\n")

	today := Dim("Nothing solved yet today.")
	if len(resp.TodayQuestions) > 0 {
		today = strings.TrimRight(FormatQuestionTable(resp.TodayQuestions, resp.Today, loc), "\n")
	}
	b.WriteString(RenderBox("Today · "+HumanDate(resp.Today), today))
	b.WriteString("\n")

	recent := Dim("No questions logged yet.")
	if len(resp.Recent) > 0 {
		recent = strings.TrimRight(FormatQuestionTable(resp.Recent, resp.Today, loc), "\n")
	}
	b.WriteString(RenderBox("Recent", recent))
	b.WriteString("\n")

	return b.String()
}
