package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucasmreid/advisor/internal/cli/formatter"
	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/lucasmreid/advisor/internal/intelligence"
	"github.com/spf13/cobra"
)

func newExplainCmd(app *App) *cobra.Command {
	var programID, transcriptID, course, term string
	var terms []string

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Explain why a course was placed in a given term",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			pid, err := resolveProgramID(ctx, app, programID)
			if err != nil {
				return err
			}
			program, err := app.Programs.Get(ctx, pid)
			if err != nil {
				return err
			}

			plan, err := app.Plan.Plan(ctx, contract.PlanRequest{
				ProgramID:    pid,
				TranscriptID: transcriptID,
				Terms:        terms,
			})
			if err != nil {
				return err
			}

			explanation, err := app.Explain.ExplainPlacement(ctx, intelligence.ExplainRequest{
				Program:      *program,
				Statuses:     plan.Statuses,
				PlannedTerms: plan.PlannedTerms,
				Course:       strings.ToUpper(course),
				Term:         term,
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatExplanation(explanation))
			return nil
		},
	}

	cmd.Flags().StringVar(&programID, "program", "", "Program ID (defaults to the only stored program)")
	cmd.Flags().StringVar(&transcriptID, "transcript", "", "Transcript ID (defaults to the most recent)")
	cmd.Flags().StringVar(&course, "course", "", "Course code to explain (required)")
	cmd.Flags().StringVar(&term, "term", "", "Term the course was placed in")
	cmd.Flags().StringSliceVar(&terms, "terms", nil, "Term sequence for the underlying plan")
	_ = cmd.MarkFlagRequired("course")

	return cmd
}
