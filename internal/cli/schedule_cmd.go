package cli

import (
	"context"
	"fmt"

	"github.com/lucasmreid/advisor/internal/cli/formatter"
	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var programID, transcriptID, term string
	var courses []string
	var reserve, asJSON bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Assign sections for one term's courses",
		Long: "Assign sections for one term's courses. Without --courses the first\n" +
			"planned term's courses are scheduled. With --reserve a seat is claimed\n" +
			"in every assignment that does not need an override.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			pid, err := resolveProgramID(ctx, app, programID)
			if err != nil {
				return err
			}

			resp, err := app.Schedule.Schedule(ctx, contract.ScheduleRequest{
				ProgramID:    pid,
				TranscriptID: transcriptID,
				Term:         term,
				Courses:      courses,
				Reserve:      reserve,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(resp)
			}
			fmt.Print(formatter.FormatSchedule(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&programID, "program", "", "Program ID (defaults to the only stored program)")
	cmd.Flags().StringVar(&transcriptID, "transcript", "", "Transcript ID (defaults to the most recent)")
	cmd.Flags().StringVar(&term, "term", "", "Term to schedule (required)")
	cmd.Flags().StringSliceVar(&courses, "courses", nil, "Courses to schedule (defaults to the term's planned courses)")
	cmd.Flags().BoolVar(&reserve, "reserve", false, "Reserve a seat in each assigned section")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("term")

	return cmd
}
