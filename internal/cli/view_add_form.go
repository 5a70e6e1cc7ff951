package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/dsatracker/internal/cli/formatter"
	"github.com/alexanderramin/dsatracker/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// addQuestionFields are the raw form values bound to the huh inputs.
type addQuestionFields struct {
	title       string
	difficulty  string
	tags        []string
	timeSpent   string
	approach    string
	notes       string
	platform    string
	completedOn string
}

func (f *addQuestionFields) input() (domain.QuestionInput, error) {
	in := domain.QuestionInput{
		Title:        f.title,
		Difficulty:   f.difficulty,
		Tags:         f.tags,
		Approach:     f.approach,
		Notes:        f.notes,
		Platform:     f.platform,
		TimeSpentMin: parseOptionalInt(f.timeSpent),
	}
	if s := strings.TrimSpace(f.completedOn); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			return in, err
		}
		in.CompletedOn = &d
	}
	return in, nil
}

// applyAddQuestion persists the form and returns the status message.
func applyAddQuestion(a *App, fields *addQuestionFields) tea.Msg {
	in, err := fields.input()
	if err != nil {
		return cmdOutputMsg{output: errorLine(err)}
	}
	q, err := a.Questions.AddQuestion(context.Background(), in)
	if err != nil {
		return cmdOutputMsg{output: errorLine(err)}
	}
	return cmdOutputMsg{output: fmt.Sprintf("%s Logged %s (%s)",
		formatter.StyleGreen.Render("✔"), formatter.Bold(q.Title), formatter.DifficultyBadge(q.Difficulty))}
}

// newAddQuestionView builds the add-question form. Submitting it counts the
// question toward today unless a completion day is given.
func newAddQuestionView(state *SharedState) View {
	fields := &addQuestionFields{
		difficulty: string(domain.DifficultyMedium),
		platform:   domain.DefaultPlatform,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Two Sum").
				Value(&fields.title).
				Validate(validateRequired("title")),
			difficultySelect(&fields.difficulty),
			durationInput("", "", &fields.timeSpent),
		),
		huh.NewGroup(
			tagMultiSelect(&fields.tags),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Approach (optional)").
				Value(&fields.approach),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&fields.notes),
			huh.NewInput().
				Title("Platform").
				Value(&fields.platform),
			dateInput("Completed on (YYYY-MM-DD, blank for today)", "", &fields.completedOn),
		),
	).WithTheme(trackerHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg { return applyAddQuestion(state.App, fields) }
	}
	return newWizardView("Add Question", form, done)
}

func errorLine(err error) string {
	return formatter.StyleRed.Render("Error: " + err.Error())
}
