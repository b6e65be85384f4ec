package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasmreid/advisor/internal/cli/formatter"
	"github.com/lucasmreid/advisor/internal/domain"
	"github.com/lucasmreid/advisor/internal/intelligence"
)

// chatSession carries the fixed context of one advising conversation plus the
// accumulated turn history.
type chatSession struct {
	app        *App
	program    domain.Program
	transcript domain.Transcript
	goals      string
	terms      []string
	history    []intelligence.ConversationTurn
}

// ask sends one user message, records both turns, and returns the reply.
func (s *chatSession) ask(ctx context.Context, message string) (string, error) {
	turns := make([]intelligence.ConversationTurn, len(s.history), len(s.history)+1)
	copy(turns, s.history)
	turns = append(turns, intelligence.ConversationTurn{Role: "user", Content: message})

	res, err := s.app.Advisor.Chat(ctx, intelligence.ChatRequest{
		Program:    s.program,
		Transcript: s.transcript,
		Goals:      s.goals,
		History:    turns,
		Terms:      s.terms,
	})
	if err != nil {
		return "", err
	}

	s.history = append(s.history,
		intelligence.ConversationTurn{Role: "user", Content: message},
		intelligence.ConversationTurn{Role: "assistant", Content: res.Reply},
	)
	return res.Reply, nil
}

// chatModel is the bubbletea model for the interactive advising chat.
type chatModel struct {
	session  *chatSession
	input    textinput.Model
	messages []string
	waiting  bool
}

func newChatModel(session *chatSession) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	return &chatModel{
		session:  session,
		input:    ti,
		messages: []string{chatWelcome(session.transcript.Student.Name)},
	}
}

type chatReplyMsg struct {
	reply string
	err   error
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if text == "" {
				return m, nil
			}
			switch strings.ToLower(text) {
			case "/quit", "/exit", "/q", "quit", "exit":
				return m, tea.Quit
			}
			m.messages = append(m.messages, formatter.Dim("You: ")+text)
			m.waiting = true
			return m, m.sendCmd(text)
		}

	case chatReplyMsg:
		m.waiting = false
		if msg.err != nil {
			m.messages = append(m.messages, formatter.StyleRed.Render("error: "+msg.err.Error()))
		} else {
			m.messages = append(m.messages, formatter.StyleGreen.Render("Advisor: ")+msg.reply)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.session.ask(context.Background(), text)
		return chatReplyMsg{reply: reply, err: err}
	}
}

func (m *chatModel) View() string {
	var b strings.Builder
	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(formatter.Dim("thinking..."))
		b.WriteString("\n")
	}

	prompt := formatter.StylePurple.Render("chat") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(m.input.View())
	return b.String()
}
