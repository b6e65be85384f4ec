package cli

import (
	"context"
	"fmt"

	"github.com/lucasmreid/advisor/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProgramsCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "programs [id]",
		Short: "List stored programs, or show one in full",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 1 {
				p, err := app.Programs.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(p)
			}

			programs, err := app.Programs.List(ctx)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(programs)
			}
			fmt.Print(formatter.FormatPrograms(programs))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
