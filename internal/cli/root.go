package cli

import (
	"context"
	"fmt"

	"github.com/lucasmreid/advisor/internal/intelligence"
	"github.com/lucasmreid/advisor/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Audit       service.AuditService
	Plan        service.PlanService
	Schedule    service.ScheduleService
	Imports     service.ImportService
	Programs    service.ProgramService
	Transcripts service.TranscriptService

	Advisor  intelligence.AdvisorService
	Explain  intelligence.ExplainService
	Override intelligence.OverrideDraftService
}

// NewRootCmd creates the top-level "advisor" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "advisor",
		Short: "Degree audit, course planner, and section scheduler",
	}

	root.AddCommand(
		newAuditCmd(app),
		newPlanCmd(app),
		newScheduleCmd(app),
		newImportCmd(app),
		newProgramsCmd(app),
		newExplainCmd(app),
		newOverrideCmd(app),
		newChatCmd(app),
	)

	return root
}

// resolveProgramID falls back to the single stored program when no flag was
// given. With zero or several programs stored, an explicit ID is required.
func resolveProgramID(ctx context.Context, app *App, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	programs, err := app.Programs.List(ctx)
	if err != nil {
		return "", err
	}
	switch len(programs) {
	case 0:
		return "", fmt.Errorf("no programs imported; run `advisor import catalog <file>` first")
	case 1:
		return programs[0].ID, nil
	default:
		return "", fmt.Errorf("%d programs stored; pick one with --program", len(programs))
	}
}
