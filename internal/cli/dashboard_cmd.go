package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/dsatracker/internal/app"
	"github.com/alexanderramin/dsatracker/internal/cli/formatter"
	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/spf13/cobra"
)

func newDashboardCmd(a *App) *cobra.Command {
	var month, output string
	var recent int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show streak stats, the calendar and recent questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewDashboardRequest()
			if month != "" {
				y, m, err := parseMonth(month)
				if err != nil {
					return err
				}
				req = req.AtMonth(y, m)
			}
			if recent > 0 {
				req.RecentLimit = recent
			}

			resp, err := a.Dashboard.GetDashboard(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, resp, func() string {
				return formatter.FormatDashboard(resp, a.location())
			})
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Calendar month to show (YYYY-MM, default current)")
	cmd.Flags().IntVar(&recent, "recent", app.DefaultRecentLimit, "How many recent questions to list")
	addOutputFlag(cmd, &output)
	return cmd
}

func newCalendarCmd(a *App) *cobra.Command {
	var month, output string
	var prev, next int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the activity heat-map for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := a.Dashboard.Today()
			year, mon := today.Year(), today.Month()
			if month != "" {
				var err error
				if year, mon, err = parseMonth(month); err != nil {
					return err
				}
			}
			// Shift by whole months; NewDate normalises the overflow.
			shifted := domain.NewDate(year, mon+time.Month(next-prev), 1)

			req := app.NewDashboardRequest().AtMonth(shifted.Year(), shifted.Month())
			grid, err := a.Dashboard.GetCalendar(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, grid, func() string {
				return formatter.FormatCalendar(*grid)
			})
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM, default current)")
	cmd.Flags().IntVar(&prev, "prev", 0, "Go back this many months")
	cmd.Flags().IntVar(&next, "next", 0, "Go forward this many months")
	addOutputFlag(cmd, &output)
	return cmd
}

func newStatsCmd(a *App) *cobra.Command {
	var output, asOf string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show current and longest streak, totals and averages",
		RunE: func(cmd *cobra.Command, args []string) error {
			var today *domain.Date
			if asOf != "" {
				d, err := domain.ParseDate(asOf)
				if err != nil {
					return fmt.Errorf("--as-of: %w", err)
				}
				today = &d
			}
			stats, err := a.Dashboard.GetStats(cmd.Context(), today)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, stats, func() string {
				return formatter.FormatStats(stats)
			})
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "Compute the current streak as of this day (YYYY-MM-DD)")
	addOutputFlag(cmd, &output)
	return cmd
}
