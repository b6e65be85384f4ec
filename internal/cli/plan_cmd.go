package cli

import (
	"context"
	"fmt"

	"github.com/lucasmreid/advisor/internal/cli/formatter"
	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var programID, transcriptID string
	var terms []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan remaining courses across upcoming terms",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			pid, err := resolveProgramID(ctx, app, programID)
			if err != nil {
				return err
			}

			resp, err := app.Plan.Plan(ctx, contract.PlanRequest{
				ProgramID:    pid,
				TranscriptID: transcriptID,
				Terms:        terms,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(resp)
			}
			fmt.Print(formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&programID, "program", "", "Program ID (defaults to the only stored program)")
	cmd.Flags().StringVar(&transcriptID, "transcript", "", "Transcript ID (defaults to the most recent)")
	cmd.Flags().StringSliceVar(&terms, "terms", nil, "Term sequence, earliest first (default 2026S,2026F,2027S)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
