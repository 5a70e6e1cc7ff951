package formatter

import (
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a fixed-width bar filled in proportion to n/total.
func RenderBar(n, total, width int) string {
	if width < 2 {
		width = 2
	}
	filled := 0
	if total > 0 && n > 0 {
		filled = (n*width + total - 1) / total
	}
	filled = min(filled, width)

	bar := StyleGreen.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
	return bar
}

// StreakProgress shows the current streak against the longest one.
func StreakProgress(current, longest, width int) string {
	if longest <= 0 {
		return RenderBar(0, 1, width)
	}
	return RenderBar(current, longest, width)
}
