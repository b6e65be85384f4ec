package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasmreid/advisor/internal/cli/formatter"
	"github.com/lucasmreid/advisor/internal/domain"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	var programID, transcriptID, goals, message string
	var terms []string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive advising chat grounded in the audit and plan",
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

			var transcript *domain.Transcript
			if transcriptID != "" {
				transcript, err = app.Transcripts.Get(ctx, transcriptID)
			} else {
				transcript, err = app.Transcripts.Latest(ctx)
			}
			if err != nil {
				return err
			}

			session := &chatSession{
				app:        app,
				program:    *program,
				transcript: *transcript,
				goals:      goals,
				terms:      terms,
			}

			// One-shot mode for scripts and piped input.
			if message != "" || !isatty.IsTerminal(os.Stdout.Fd()) {
				if message == "" {
					return fmt.Errorf("stdout is not a terminal; pass --message for one-shot chat")
				}
				reply, err := session.ask(ctx, message)
				if err != nil {
					return err
				}
				fmt.Println(reply)
				return nil
			}

			model := newChatModel(session)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&programID, "program", "", "Program ID (defaults to the only stored program)")
	cmd.Flags().StringVar(&transcriptID, "transcript", "", "Transcript ID (defaults to the most recent)")
	cmd.Flags().StringVar(&goals, "goals", "", "Goals and preferences to keep in mind")
	cmd.Flags().StringVar(&message, "message", "", "Ask one question and exit")
	cmd.Flags().StringSliceVar(&terms, "terms", nil, "Term sequence for the underlying plan")

	return cmd
}

// welcome banner shown when the chat view opens.
func chatWelcome(studentName string) string {
	return formatter.RenderBox("Advising Chat",
		fmt.Sprintf("Hi %s. Ask about your audit, plan, or prerequisites.\n%s",
			studentName,
			formatter.Dim("Enter to send, Esc or /quit to leave.")))
}
