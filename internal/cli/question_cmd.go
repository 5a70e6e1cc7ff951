package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/dsatracker/internal/cli/formatter"
	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/spf13/cobra"
)

// resolveQuestionID accepts a full ID or an unambiguous prefix.
func resolveQuestionID(ctx context.Context, a *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("question ID is required")
	}

	if q, err := a.Questions.GetQuestion(ctx, input); err == nil {
		return q.ID, nil
	}

	all, err := a.Questions.ListRecent(ctx, 0)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, q := range all {
		if strings.HasPrefix(q.ID, input) {
			matches = append(matches, q.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("question not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("question ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newQuestionCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "question",
		Aliases: []string{"q"},
		Short:   "Log and inspect solved questions",
	}

	cmd.AddCommand(
		newQuestionAddCmd(a),
		newQuestionListCmd(a),
		newQuestionShowCmd(a),
		newQuestionRemoveCmd(a),
		newQuestionTodayCmd(a),
	)
	return cmd
}

func newQuestionAddCmd(a *App) *cobra.Command {
	var in domain.QuestionInput
	var timeSpent int
	var on string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a solved question; it counts toward today's activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("time") {
				in.TimeSpentMin = &timeSpent
			}
			if on != "" {
				d, err := domain.ParseDate(on)
				if err != nil {
					return fmt.Errorf("--on: %w", err)
				}
				in.CompletedOn = &d
			}

			q, err := a.Questions.AddQuestion(cmd.Context(), in)
			if err != nil {
				return err
			}

			day := q.CompletedOn(a.location())
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%s) for %s %s\n",
				formatter.Bold(q.Title), formatter.DifficultyBadge(q.Difficulty),
				formatter.RelativeDay(day, a.Dashboard.Today()), formatter.TruncID(q.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Question title")
	cmd.Flags().StringVar(&in.Difficulty, "difficulty", string(domain.DifficultyMedium), "Easy, Medium or Hard")
	cmd.Flags().StringSliceVar(&in.Tags, "tags", nil, "Comma-separated topic tags")
	cmd.Flags().StringVar(&in.Approach, "approach", "", "How you solved it")
	cmd.Flags().StringVar(&in.Solution, "solution", "", "Solution code")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "Notes for later review")
	cmd.Flags().StringVar(&in.Platform, "platform", domain.DefaultPlatform, "Where the question is from")
	cmd.Flags().IntVar(&timeSpent, "time", 0, "Minutes spent")
	cmd.Flags().StringVar(&on, "on", "", "Backfill onto an earlier day (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newQuestionListCmd(a *App) *cobra.Command {
	var limit int
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged questions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			qs, err := a.Questions.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, nonNil(qs), func() string {
				return formatter.FormatQuestionTable(qs, a.Dashboard.Today(), a.location())
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum questions to list (0 for all)")
	addOutputFlag(cmd, &output)
	return cmd
}

func newQuestionShowCmd(a *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show every field of a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveQuestionID(ctx, a, args[0])
			if err != nil {
				return err
			}
			q, err := a.Questions.GetQuestion(ctx, id)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, q, func() string {
				return formatter.FormatQuestionDetail(q, a.location())
			})
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func newQuestionRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a question and take it off its day's count",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveQuestionID(ctx, a, args[0])
			if err != nil {
				return err
			}
			q, err := a.Questions.GetQuestion(ctx, id)
			if err != nil {
				return err
			}
			if err := a.Questions.RemoveQuestion(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %s\n", formatter.Bold(q.Title), formatter.TruncID(q.ID))
			return nil
		},
	}
}

func newQuestionTodayCmd(a *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "List questions solved today",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := a.Dashboard.Today()
			qs, err := a.Questions.ListForDay(cmd.Context(), today)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, nonNil(qs), func() string {
				if len(qs) == 0 {
					return formatter.Dim("Nothing solved yet today.")
				}
				return formatter.FormatQuestionTable(qs, today, a.location())
			})
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func nonNil(qs []*domain.Question) []*domain.Question {
	if qs == nil {
		return []*domain.Question{}
	}
	return qs
}
