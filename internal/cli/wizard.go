package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/dsatracker/internal/cli/formatter"
	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// trackerHuhTheme colours huh forms with the formatter palette: the header
// accent while a field has focus, dim otherwise.
func trackerHuhTheme() *huh.Theme {
	fg := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	accent, dim := fg(formatter.ColorHeader), fg(formatter.ColorDim)

	t := huh.ThemeBase()
	f := &t.Focused
	f.Title = accent.Bold(true)
	f.Description = dim
	f.ErrorMessage = fg(formatter.ColorRed)
	f.SelectSelector, f.MultiSelectSelector = accent, accent
	f.SelectedOption, f.UnselectedOption = fg(formatter.ColorGreen), fg(formatter.ColorFg)
	f.SelectedPrefix = fg(formatter.ColorGreen).SetString("[x] ")
	f.UnselectedPrefix = dim.SetString("[ ] ")
	f.FocusedButton = fg(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	f.BlurredButton = dim.Padding(0, 1)
	f.TextInput.Cursor, f.TextInput.Prompt = accent, accent
	f.TextInput.Text, f.TextInput.Placeholder = fg(formatter.ColorFg), dim

	b := &t.Blurred
	b.Title, b.SelectSelector, b.SelectedOption, b.UnselectedOption = dim, dim, dim, dim
	b.TextInput.Prompt, b.TextInput.Text = dim, dim
	return t
}

// validateRequired rejects blank input.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validatePositiveInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if v, err := strconv.Atoi(s); err != nil || v <= 0 {
		return errors.New("enter a positive number")
	}
	return nil
}

func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := domain.ParseDate(s); err != nil {
		return errors.New("use YYYY-MM-DD format")
	}
	return nil
}

// parseOptionalInt returns nil for blank input.
func parseOptionalInt(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}
