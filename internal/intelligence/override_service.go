package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucasmreid/advisor/internal/llm"
)

// DefaultDeptContact is the addressee used when the request names no one.
const DefaultDeptContact = "Advisor Team"

// OverrideDraftService drafts registration override request emails.
type OverrideDraftService interface {
	Draft(ctx context.Context, req OverrideRequest) (*OverrideDraft, error)
}

type overrideDraftService struct {
	client llm.Client
}

// NewOverrideDraftService creates an OverrideDraftService. A nil client means
// every draft comes from the deterministic template.
func NewOverrideDraftService(client llm.Client) OverrideDraftService {
	return &overrideDraftService{client: client}
}

func (s *overrideDraftService) Draft(ctx context.Context, req OverrideRequest) (*OverrideDraft, error) {
	if req.DeptContact == "" {
		req.DeptContact = DefaultDeptContact
	}
	if req.Student.Name == "" {
		req.Student.Name = "Student"
	}

	if s.client == nil {
		return DeterministicOverrideDraft(req), nil
	}

	userPrompt := fmt.Sprintf(
		"Student %s (ID %s) needs an override for %s in term %s. Reason: %s. Evidence: %s. Address to: %s.",
		req.Student.Name, req.Student.ID, req.Course, req.Term, req.Reason, req.Evidence, req.DeptContact)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskOverrideDraft,
		SystemPrompt: overrideSystemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return DeterministicOverrideDraft(req), nil
	}

	return &OverrideDraft{
		Text:   strings.TrimSpace(resp.Text),
		Source: SourceLLM,
	}, nil
}
