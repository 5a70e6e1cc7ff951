package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dsatracker/internal/app"
	"github.com/alexanderramin/dsatracker/internal/domain"
)

// FormatQuestionTable lists questions with the day each one counts toward,
// relative to today.
func FormatQuestionTable(qs []*domain.Question, today domain.Date, loc *time.Location) string {
	if len(qs) == 0 {
		return Dim("No questions.") + "\n"
	}
	headers := []string{"ID", "TITLE", "DIFFICULTY", "TAGS", "TIME", "SOLVED"}
	rows := make([][]string, 0, len(qs))
	for _, q := range qs {
		rows = append(rows, []string{
			TruncID(q.ID),
			Bold(q.Title),
			DifficultyBadge(q.Difficulty),
			FormatTags(q.Tags),
			FormatTimeSpent(q.TimeSpentMin),
			RelativeDay(q.CompletedOn(loc), today),
		})
	}
	return RenderTable(headers, rows)
}

// FormatQuestionDetail renders every field of one question.
func FormatQuestionDetail(q *domain.Question, loc *time.Location) string {
	var b strings.Builder
	field := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-11s", label+":")), value)
	}

	field("ID", q.ID)
	field("Difficulty", DifficultyBadge(q.Difficulty))
	field("Tags", FormatTags(q.Tags))
	field("Platform", q.Platform)
	field("Time spent", FormatTimeSpent(q.TimeSpentMin))
	field("Completed", q.CompletedAt.In(locOrUTC(loc)).Format("Jan 2, 2006 15:04"))

	section := func(title, body string) {
		if strings.TrimSpace(body) == "" {
			return
		}
		b.WriteString("\n" + Header(title) + "\n" + body + "\n")
	}
	section("Approach", q.Approach)
	section("Solution", q.Solution)
	section("Notes", q.Notes)

	return RenderBox(q.Title, strings.TrimRight(b.String(), "\n"))
}

// FormatBank renders a bank search result with its match count.
func FormatBank(res *app.BankResult, today domain.Date, loc *time.Location) string {
	summary := Dim(fmt.Sprintf("Showing %d of %d questions", res.Matched, res.Total))
	if res.Matched == 0 {
		return summary + "\n" + Dim("No questions match your filters.") + "\n"
	}
	return summary + "\n\n" + FormatQuestionTable(res.Questions, today, loc)
}

const tagBarWidth = 12

// FormatTagCounts lists the tag catalogue with per-tag usage bars scaled
// to the busiest tag.
func FormatTagCounts(counts []app.TagCount) string {
	busiest := 0
	for _, tc := range counts {
		busiest = max(busiest, tc.Count)
	}
	rows := make([][]string, 0, len(counts))
	for _, tc := range counts {
		n := fmt.Sprintf("%d", tc.Count)
		if tc.Count == 0 {
			n = Dim(n)
		}
		rows = append(rows, []string{string(tc.Tag), n, RenderBar(tc.Count, busiest, tagBarWidth)})
	}
	return RenderTable([]string{"TAG", "QUESTIONS", ""}, rows)
}

func locOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
