package cli

import (
	"fmt"

	"github.com/alexanderramin/dsatracker/internal/app"
	"github.com/alexanderramin/dsatracker/internal/cli/formatter"
	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/spf13/cobra"
)

// bankQuery turns raw flag values into a typed query, rejecting unknown
// tags, difficulties and sort keys.
func bankQuery(text string, tags, difficulties []string, sortBy string) (app.BankQuery, error) {
	q := app.BankQuery{Text: text}
	for _, raw := range tags {
		t, ok := domain.ParseTag(raw)
		if !ok {
			return q, fmt.Errorf("unknown tag %q", raw)
		}
		q.Tags = append(q.Tags, t)
	}
	for _, raw := range difficulties {
		d, ok := domain.ParseDifficulty(raw)
		if !ok {
			return q, fmt.Errorf("unknown difficulty %q", raw)
		}
		q.Difficulties = append(q.Difficulties, d)
	}
	s, err := app.ParseBankSort(sortBy)
	if err != nil {
		return q, err
	}
	q.SortBy = s
	return q, nil
}

func newBankCmd(a *App) *cobra.Command {
	var text, sortBy, output string
	var tags, difficulties []string

	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Search the question bank by text, tag and difficulty",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := bankQuery(text, tags, difficulties, sortBy)
			if err != nil {
				return err
			}
			res, err := a.Bank.Search(cmd.Context(), q)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, res, func() string {
				return formatter.FormatBank(res, a.Dashboard.Today(), a.location())
			})
		},
	}

	cmd.Flags().StringVarP(&text, "search", "s", "", "Match title, platform, approach, notes or tags")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Only questions carrying any of these tags")
	cmd.Flags().StringSliceVar(&difficulties, "difficulty", nil, "Only these difficulties")
	cmd.Flags().StringVar(&sortBy, "sort", string(app.SortByDate), "Sort by date, difficulty or title")
	addOutputFlag(cmd, &output)

	cmd.AddCommand(newBankTagsCmd(a))
	return cmd
}

func newBankTagsCmd(a *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List every tag with how many questions carry it",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := a.Bank.TagCounts(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, counts, func() string {
				return formatter.FormatTagCounts(counts)
			})
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}
