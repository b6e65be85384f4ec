package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/lucasmreid/advisor/internal/cli/formatter"
	"github.com/lucasmreid/advisor/internal/domain"
	"github.com/lucasmreid/advisor/internal/intelligence"
	"github.com/spf13/cobra"
)

func newOverrideCmd(app *App) *cobra.Command {
	var course, term, reason, evidence, contact string

	cmd := &cobra.Command{
		Use:   "override",
		Short: "Draft a registration override request email",
		Long: "Draft a registration override request email. Missing fields are\n" +
			"collected interactively; the student comes from the stored transcript.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			student := domain.StudentInfo{}
			if transcript, err := app.Transcripts.Latest(ctx); err == nil {
				student = transcript.Student
			}

			req := intelligence.OverrideRequest{
				Student:     student,
				Course:      strings.ToUpper(course),
				Term:        term,
				Reason:      reason,
				Evidence:    evidence,
				DeptContact: contact,
			}

			if req.Course == "" || req.Term == "" || req.Reason == "" {
				if err := runOverrideWizard(&req); err != nil {
					return err
				}
			}
			if req.Course == "" || req.Term == "" {
				return fmt.Errorf("course and term are required")
			}
			req.Course = strings.ToUpper(req.Course)

			draft, err := app.Override.Draft(ctx, req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatOverrideDraft(draft))
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Course code needing the override")
	cmd.Flags().StringVar(&term, "term", "", "Term the override is for")
	cmd.Flags().StringVar(&reason, "reason", "", "Why the override is needed")
	cmd.Flags().StringVar(&evidence, "evidence", "", "Supporting evidence to cite")
	cmd.Flags().StringVar(&contact, "contact", "", "Addressee (default Advisor Team)")

	return cmd
}

// runOverrideWizard fills the blank fields of req interactively.
func runOverrideWizard(req *intelligence.OverrideRequest) error {
	var fields []huh.Field

	if req.Course == "" {
		fields = append(fields, huh.NewInput().
			Title("Course").
			Placeholder("CS201").
			Validate(requireNonEmpty("course")).
			Value(&req.Course))
	}
	if req.Term == "" {
		fields = append(fields, huh.NewInput().
			Title("Term").
			Placeholder("2026S").
			Validate(requireNonEmpty("term")).
			Value(&req.Term))
	}
	if req.Reason == "" {
		fields = append(fields, huh.NewInput().
			Title("Reason").
			Placeholder("section full, needed to stay on track").
			Validate(requireNonEmpty("reason")).
			Value(&req.Reason))
	}
	if req.Evidence == "" {
		fields = append(fields, huh.NewInput().
			Title("Evidence (optional)").
			Placeholder("prerequisite completed with a B").
			Value(&req.Evidence))
	}
	if req.DeptContact == "" {
		fields = append(fields, huh.NewInput().
			Title("Address to (optional)").
			Placeholder(intelligence.DefaultDeptContact).
			Value(&req.DeptContact))
	}

	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(advisorHuhTheme()).
		WithShowHelp(false)
	return form.Run()
}

func requireNonEmpty(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
