package formatter

import (
	"strings"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Heat-map shades from empty to busiest.
var (
	ColorHeatNone   = lipgloss.Color("#3c3836")
	ColorHeatLow    = lipgloss.Color("#b8bb26")
	ColorHeatMedium = lipgloss.Color("#98971a")
	ColorHeatHigh   = lipgloss.Color("#79740e")
	ColorHeatMax    = lipgloss.Color("#427b58")
)

var (
	StyleGreen  = fg(ColorGreen)
	StyleYellow = fg(ColorYellow)
	StyleRed    = fg(ColorRed)
	StyleBlue   = fg(ColorBlue)
	StylePurple = fg(ColorPurple)
	StyleDim    = fg(ColorDim)
	StyleHeader = fg(ColorHeader).Bold(true)
	StyleBold   = fg(ColorFg).Bold(true)
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// heat holds the cell style and fallback glyph for each intensity, so the
// heat-map still reads on a terminal without colour.
var heat = map[domain.Intensity]struct {
	style lipgloss.Style
	glyph string
}{
	domain.IntensityNone:   {fg(ColorHeatNone), " "},
	domain.IntensityLow:    {fg(ColorHeatLow), "░"},
	domain.IntensityMedium: {fg(ColorHeatMedium).Bold(true), "▒"},
	domain.IntensityHigh:   {fg(ColorHeatHigh).Bold(true), "▓"},
	domain.IntensityMax:    {fg(ColorHeatMax).Bold(true), "█"},
}

func IntensityStyle(i domain.Intensity) lipgloss.Style {
	if h, ok := heat[i]; ok {
		return h.style
	}
	return heat[domain.IntensityNone].style
}

func IntensityGlyph(i domain.Intensity) string {
	if h, ok := heat[i]; ok {
		return h.glyph
	}
	return " "
}

var difficultyStyles = map[domain.Difficulty]lipgloss.Style{
	domain.DifficultyEasy:   StyleGreen,
	domain.DifficultyMedium: StyleYellow,
	domain.DifficultyHard:   StyleRed,
}

// DifficultyBadge renders Easy green, Medium yellow and Hard red.
func DifficultyBadge(d domain.Difficulty) string {
	style, ok := difficultyStyles[d]
	if !ok {
		style = StyleDim
	}
	return style.Render(string(d))
}

// Header renders an upper-cased section title over a dim rule.
func Header(text string) string {
	text = strings.ToUpper(text)
	return StyleHeader.Render(text) + "\n" + Dim(strings.Repeat("─", lipgloss.Width(text)))
}

func Dim(text string) string  { return StyleDim.Render(text) }
func Bold(text string) string { return StyleBold.Render(text) }
