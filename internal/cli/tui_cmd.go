package cli

import (
	"log/slog"

	"github.com/alexanderramin/dsatracker/internal/reminder"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("reminder") {
				a.cfg().Reminder.Enabled, _ = cmd.Flags().GetBool("reminder")
			}
			return runTUI(cmd, a)
		},
	}
	cmd.Flags().Bool("reminder", false, "Run the daily streak reminder")
	return cmd
}

// runTUI runs the full-screen program. Reminder results are delivered as
// messages since log lines would corrupt the alternate screen.
func runTUI(cmd *cobra.Command, a *App) error {
	p := tea.NewProgram(newAppModel(a),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	rem, err := newReminder(a, slog.New(slog.DiscardHandler))
	if err != nil {
		return err
	}
	if rem != nil {
		rem.OnCheck(func(res reminder.Result) { p.Send(reminderMsg{result: res}) })
		rem.Start()
		defer rem.Stop()
	}

	_, err = p.Run()
	return err
}
