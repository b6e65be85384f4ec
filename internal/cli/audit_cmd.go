package cli

import (
	"context"
	"fmt"

	"github.com/lucasmreid/advisor/internal/cli/formatter"
	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/spf13/cobra"
)

func newAuditCmd(app *App) *cobra.Command {
	var programID, transcriptID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit a transcript against a program's requirements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			pid, err := resolveProgramID(ctx, app, programID)
			if err != nil {
				return err
			}

			resp, err := app.Audit.Audit(ctx, contract.AuditRequest{
				ProgramID:    pid,
				TranscriptID: transcriptID,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(resp)
			}
			fmt.Print(formatter.FormatAudit(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&programID, "program", "", "Program ID (defaults to the only stored program)")
	cmd.Flags().StringVar(&transcriptID, "transcript", "", "Transcript ID (defaults to the most recent)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
