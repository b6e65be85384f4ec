package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/lucasmreid/advisor/internal/domain"
	"github.com/lucasmreid/advisor/internal/engine"
	"github.com/lucasmreid/advisor/internal/llm"
)

// AdvisorService runs the advising chat: engine outputs packed as context,
// the model narrating on top.
type AdvisorService interface {
	// Chat runs the audit and planner, then answers one conversation turn
	// grounded in their output.
	Chat(ctx context.Context, req ChatRequest) (*ChatResult, error)
}

type advisorService struct {
	client llm.Client
}

// NewAdvisorService creates an AdvisorService. A nil client means every
// reply comes from the deterministic fallback.
func NewAdvisorService(client llm.Client) AdvisorService {
	return &advisorService{client: client}
}

func (s *advisorService) Chat(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	terms := req.Terms
	if len(terms) == 0 {
		terms = contract.NewPlanRequest(req.Program.ID).Terms
	}

	statuses := engine.Audit(&req.Transcript, &req.Program)
	_, planned, err := engine.Plan(&req.Transcript, &req.Program, terms)
	if err != nil {
		return nil, fmt.Errorf("planning for chat context: %w", err)
	}

	result := &ChatResult{
		Statuses:     statuses,
		PlannedTerms: planned,
	}

	if s.client == nil {
		result.Reply = DeterministicChatReply(statuses, planned)
		result.Source = SourceDeterministic
		return result, nil
	}

	userPrompt := buildChatUserPrompt(req, statuses, planned)
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChat,
		SystemPrompt: advisorSystemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		result.Reply = DeterministicChatReply(statuses, planned)
		result.Source = SourceDeterministic
		return result, nil
	}

	result.Reply = strings.TrimSpace(resp.Text)
	result.Source = SourceLLM
	return result, nil
}

// buildContextBlocks packs the engine outputs into fenced JSON blocks so the
// model reasons over exact data instead of a paraphrase.
func buildContextBlocks(p domain.Program, t domain.Transcript, statuses []contract.RequirementStatus, planned []contract.PlannedTerm) string {
	programView := map[string]any{
		"total_credits": p.TotalCredits,
		"requirements":  p.Requirements,
		"prereqs":       p.Prereqs,
	}

	var b strings.Builder
	writeBlock := func(label string, v any) {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			data = []byte("{}")
		}
		b.WriteString(label)
		b.WriteString(":\n```")
		b.Write(data)
		b.WriteString("```\n\n")
	}

	writeBlock("CATALOG_PROGRAM_JSON", programView)
	writeBlock("TRANSCRIPT_JSON", t)
	writeBlock("AUDIT_RESULTS_JSON", statuses)
	writeBlock("PLANNED_TERMS_JSON", planned)
	return strings.TrimSuffix(b.String(), "\n\n")
}

// creditSummary gives the model exact per-term credit totals.
func creditSummary(planned []contract.PlannedTerm) string {
	var b strings.Builder
	b.WriteString("Planned Credits Per Term:\n")
	total := 0
	for _, term := range planned {
		fmt.Fprintf(&b, "- %s: %d credits (%s)\n", term.Term, term.Credits, strings.Join(term.Courses, ", "))
		total += term.Credits
	}
	fmt.Fprintf(&b, "Total Planned Credits: %d\n", total)
	return b.String()
}

func buildChatUserPrompt(req ChatRequest, statuses []contract.RequirementStatus, planned []contract.PlannedTerm) string {
	var b strings.Builder

	b.WriteString("Context for this student:\n")
	b.WriteString(creditSummary(planned))
	b.WriteString("\n")
	b.WriteString(buildContextBlocks(req.Program, req.Transcript, statuses, planned))
	b.WriteString("\n\n")

	if len(req.History) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range req.History {
			if turn.Role != "user" && turn.Role != "assistant" {
				continue
			}
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
		}
		b.WriteString("\n")
	}

	prefs := "{}"
	if len(req.Preferences) > 0 {
		if data, err := json.Marshal(req.Preferences); err == nil {
			prefs = string(data)
		}
	}
	fmt.Fprintf(&b, "My goals/preferences: %s. Additional preferences JSON: %s. ", req.Goals, prefs)
	b.WriteString("Given the transcript + audit + planned terms in the context, " +
		"help me understand what classes I still need and suggest a multi-semester plan. " +
		"Explain *why* you chose each term's courses, and invite me to tweak things " +
		"(like max credits, hard vs easy balance, summer usage, etc.).")

	return b.String()
}
