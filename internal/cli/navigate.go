package cli

import (
	"github.com/alexanderramin/dsatracker/internal/reminder"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages views send to appModel to move around.
type (
	pushViewMsg    struct{ view View }
	popViewMsg     struct{}
	refreshViewMsg struct{}

	// cmdOutputMsg opens the output pane with a rendered result.
	cmdOutputMsg struct{ output string }

	// wizardCompleteMsg closes a form. nextCmd runs before the refresh.
	wizardCompleteMsg struct{ nextCmd tea.Cmd }

	// reminderMsg carries a scheduled streak check into the program.
	reminderMsg struct{ result reminder.Result }
)

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func pushView(v View) tea.Cmd    { return msgCmd(pushViewMsg{view: v}) }
func popView() tea.Cmd           { return msgCmd(popViewMsg{}) }
func outputCmd(s string) tea.Cmd { return msgCmd(cmdOutputMsg{output: s}) }
