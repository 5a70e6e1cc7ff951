package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

type table struct {
	widths []int
	b      strings.Builder
}

// RenderTable lays out rows under a header and a rule. Columns are sized
// by visible width, so styled cells align, and the last column is left
// unpadded.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	t := &table{widths: make([]int, len(headers))}
	t.measure(headers)
	for _, r := range rows {
		t.measure(r)
	}

	t.row(headers, func(s string) string { return StyleHeader.Render(s) })
	rule := make([]string, len(t.widths))
	for i, w := range t.widths {
		rule[i] = strings.Repeat("─", w)
	}
	t.row(rule, Dim)
	for _, r := range rows {
		t.row(r, nil)
	}
	return t.b.String()
}

func (t *table) measure(cells []string) {
	for i := range min(len(cells), len(t.widths)) {
		t.widths[i] = max(t.widths[i], lipgloss.Width(cells[i]))
	}
}

func (t *table) row(cells []string, style func(string) string) {
	last := len(t.widths) - 1
	for i, w := range t.widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		if style != nil {
			t.b.WriteString(style(cell))
		} else {
			t.b.WriteString(cell)
		}
		if i < last {
			t.b.WriteString(strings.Repeat(" ", w-lipgloss.Width(cell)+colGap))
		}
	}
	t.b.WriteByte('\n')
}
