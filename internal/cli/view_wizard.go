package cli

import (
	"github.com/alexanderramin/dsatracker/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

var wizardHelp = []key.Binding{
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
	key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "back")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// wizardView hosts a huh.Form on the view stack. It finishes exactly once:
// on submit it hands the result of done to the appModel, on esc or abort it
// reports a cancellation.
type wizardView struct {
	form     *huh.Form
	title    string
	done     func() tea.Cmd
	finished bool
}

func newWizardView(title string, form *huh.Form, done func() tea.Cmd) *wizardView {
	return &wizardView{form: form, title: title, done: done}
}

func (v *wizardView) ID() ViewID               { return ViewForm }
func (v *wizardView) Title() string            { return v.title }
func (v *wizardView) ShortHelp() []key.Binding { return wizardHelp }
func (v *wizardView) Init() tea.Cmd            { return v.form.Init() }
func (v *wizardView) View() string             { return v.form.View() }

func (v *wizardView) finish(next tea.Cmd) tea.Cmd {
	v.finished = true
	return func() tea.Msg { return wizardCompleteMsg{nextCmd: next} }
}

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.finished {
		return v, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		return v, v.finish(outputCmd(formatter.Dim("Cancelled.")))
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		var next tea.Cmd
		if v.done != nil {
			next = v.done()
		}
		return v, v.finish(next)
	case huh.StateAborted:
		return v, v.finish(outputCmd(formatter.Dim("Cancelled.")))
	}
	return v, cmd
}
