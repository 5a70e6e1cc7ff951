package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/dsatracker/internal/cli/formatter"
	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/streak"
	"github.com/spf13/cobra"
)

func newActivityCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Inspect or correct daily activity counts",
	}
	cmd.AddCommand(newActivitySetCmd(a), newActivityShowCmd(a))
	return cmd
}

func newActivitySetCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set DATE COUNT",
		Short: "Overwrite the activity count for a day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseDate(args[0])
			if err != nil {
				return err
			}
			count, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid count %q", args[1])
			}
			if err := a.Activity.SetActivity(cmd.Context(), day, count); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %d\n", formatter.HumanDate(day), count)
			return nil
		},
	}
}

func newActivityShowCmd(a *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List every recorded day and its count",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := a.Activity.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, log.Keyed(), func() string {
				dates := log.Dates()
				if len(dates) == 0 {
					return formatter.Dim("No activity recorded.")
				}
				rows := make([][]string, 0, len(dates))
				for i := len(dates) - 1; i >= 0; i-- {
					d := dates[i]
					n := log.Count(d)
					rows = append(rows, []string{d.Key(), strconv.Itoa(n), formatter.IntensityGlyph(streak.IntensityFor(n))})
				}
				return formatter.RenderTable([]string{"DATE", "COUNT", ""}, rows)
			})
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}
