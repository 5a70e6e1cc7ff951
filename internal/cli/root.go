package cli

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/dsatracker/internal/config"
	"github.com/alexanderramin/dsatracker/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Questions service.QuestionService
	Activity  service.ActivityService
	Dashboard service.DashboardService
	Bank      service.QuestionBankService

	Config   *config.Config
	Location *time.Location
	Logger   *slog.Logger

	// Bootstrap loads configuration and wires the services once flags are
	// parsed. Nil when the App is built up front, as in tests.
	Bootstrap func(cmd *cobra.Command, app *App) error

	// IsInteractive reports whether stdin is a terminal. When it returns
	// true, running with no subcommand opens the TUI.
	IsInteractive func() bool
}

func (a *App) cfg() *config.Config {
	if a.Config == nil {
		a.Config = config.Default()
	}
	return a.Config
}

func (a *App) location() *time.Location {
	if a.Location == nil {
		return time.UTC
	}
	return a.Location
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}

// NewRootCmd creates the top-level "dsatracker" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "dsatracker",
		Short:         "Track solved DSA questions, daily streaks and a heat-map calendar",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Bootstrap == nil {
				return nil
			}
			return app.Bootstrap(cmd, app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Config file (default ./dsatracker.yaml)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", "text", "Log format: text or json")
	flags.String("week-start", "sunday", "First day of the calendar week")
	flags.String("timezone", "Local", "IANA timezone used to decide what day it is")
	flags.String("today", "", "Pin today's date (YYYY-MM-DD)")
	flags.Bool("demo", true, "Load the demo questions and activity on start")

	root.AddCommand(
		newDashboardCmd(app),
		newCalendarCmd(app),
		newStatsCmd(app),
		newQuestionCmd(app),
		newBankCmd(app),
		newActivityCmd(app),
		newServeCmd(app),
		newTUICmd(app),
	)

	return root
}
