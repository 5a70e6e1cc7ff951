package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/dsatracker/internal/httpapi"
	"github.com/alexanderramin/dsatracker/internal/reminder"
	"github.com/spf13/cobra"
)

func newServer(a *App) *httpapi.Server {
	return httpapi.New(httpapi.Services{
		Questions: a.Questions,
		Activity:  a.Activity,
		Dashboard: a.Dashboard,
		Bank:      a.Bank,
	}, httpapi.Options{
		CORSOrigins: a.cfg().Server.CORSOrigins,
		Logger:      a.logger(),
	})
}

// newReminder builds the streak reminder, or returns nil when disabled.
func newReminder(a *App, logger *slog.Logger) (*reminder.Reminder, error) {
	cfg := a.cfg().Reminder
	if !cfg.Enabled {
		return nil, nil
	}
	return reminder.New(cfg.Schedule, a.Activity, a.Dashboard, a.location(), logger)
}

func newServeCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg()
			if cmd.Flags().Changed("port") {
				cfg.Server.Port, _ = cmd.Flags().GetInt("port")
			}
			if cmd.Flags().Changed("reminder") {
				cfg.Reminder.Enabled, _ = cmd.Flags().GetBool("reminder")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rem, err := newReminder(a, a.logger())
			if err != nil {
				return err
			}
			if rem != nil {
				rem.Start()
				defer rem.Stop()
			}

			return newServer(a).Run(ctx, fmt.Sprintf(":%d", cfg.Server.Port))
		},
	}

	cmd.Flags().Int("port", 5000, "Port to listen on")
	cmd.Flags().Bool("reminder", false, "Run the daily streak reminder")
	return cmd
}
