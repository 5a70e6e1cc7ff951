package cli

import (
	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/charmbracelet/huh"
)

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title, placeholder string, value *string) *huh.Input {
	if placeholder == "" {
		placeholder = "2024-01-13"
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateOptionalDate)
}

// durationInput returns a huh.Input for an optional positive minute count.
func durationInput(title, placeholder string, value *string) *huh.Input {
	if title == "" {
		title = "Time Spent (minutes, optional)"
	}
	if placeholder == "" {
		placeholder = "30"
	}
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validatePositiveInt)
}

// difficultySelect offers Easy, Medium and Hard.
func difficultySelect(value *string) *huh.Select[string] {
	opts := make([]huh.Option[string], 0, len(domain.Difficulties))
	for _, d := range domain.Difficulties {
		opts = append(opts, huh.NewOption(string(d), string(d)))
	}
	return huh.NewSelect[string]().
		Title("Difficulty").
		Options(opts...).
		Value(value)
}

// tagMultiSelect offers the tag catalogue.
func tagMultiSelect(value *[]string) *huh.MultiSelect[string] {
	opts := make([]huh.Option[string], 0, len(domain.Tags))
	for _, t := range domain.Tags {
		opts = append(opts, huh.NewOption(string(t), string(t)))
	}
	return huh.NewMultiSelect[string]().
		Title("Tags").
		Options(opts...).
		Height(8).
		Value(value)
}
