package cli

import (
	"context"
	"fmt"

	"github.com/lucasmreid/advisor/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import catalog, transcript, or offerings JSON files",
	}

	cmd.AddCommand(
		newImportCatalogCmd(app),
		newImportTranscriptCmd(app),
		newImportOfferingsCmd(app),
	)

	return cmd
}

func newImportCatalogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog <file>",
		Short: "Import a program catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Imports.ImportCatalog(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported program %s (%s) with %d requirements and %d catalog courses.\n",
				formatter.Bold(p.Name), p.ID, len(p.Requirements), len(p.CourseMeta))
			return nil
		},
	}
}

func newImportTranscriptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "transcript <file>",
		Short: "Import a student transcript file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Imports.ImportTranscript(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported transcript for %s (%d records). ID: %s\n",
				formatter.Bold(t.Student.Name), len(t.Taken), t.ID)
			return nil
		},
	}
}

func newImportOfferingsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "offerings <file>",
		Short: "Import a term's section offerings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := app.Imports.ImportOfferings(context.Background(), args[0])
			if err != nil {
				return err
			}
			sections := 0
			for _, secs := range o.Sections {
				sections += len(secs)
			}
			fmt.Printf("Imported offerings for %s: %d courses, %d sections.\n",
				formatter.Bold(o.Term), len(o.Sections), sections)
			return nil
		},
	}
}
