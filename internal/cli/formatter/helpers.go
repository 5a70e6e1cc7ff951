package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Padding(1, 2)

// RenderBox frames content in a rounded border, headed by title when set.
func RenderBox(title, content string) string {
	if title != "" {
		content = StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
	}
	return boxStyle.Render(content)
}

// RelativeDay names d relative to today: "Today", "Yesterday", "3d ago",
// or an absolute date beyond two weeks.
func RelativeDay(d, today domain.Date) string {
	days := d.DaysUntil(today)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days > 1 && days < 14:
		return fmt.Sprintf("%dd ago", days)
	case days == -1:
		return "Tomorrow"
	default:
		return HumanDate(d)
	}
}

// HumanDate renders d as e.g. "Jan 13, 2024".
func HumanDate(d domain.Date) string {
	return d.Time(nil).Format("Jan 2, 2006")
}

// TruncID shows the first eight characters of an ID, dimmed.
func TruncID(id string) string {
	return Dim(id[:min(len(id), 8)])
}

// FormatMinutes renders 125 as "2h 5m".
func FormatMinutes(total int) string {
	if total <= 0 {
		return "0m"
	}
	h, m := total/60, total%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

func FormatTimeSpent(minutes *int) string {
	if minutes == nil {
		return Dim("--")
	}
	return FormatMinutes(*minutes)
}

func FormatTags(tags []domain.Tag) string {
	if len(tags) == 0 {
		return Dim("--")
	}
	var b strings.Builder
	for i, t := range tags {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(t))
	}
	return b.String()
}

// Plural returns "1 day" or "n days".
func Plural(n int, unit string) string {
	if n != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s", n, unit)
}
