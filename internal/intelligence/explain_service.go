package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/lucasmreid/advisor/internal/llm"
)

// ExplainService answers "why was this course placed in that term" questions.
type ExplainService interface {
	ExplainPlacement(ctx context.Context, req ExplainRequest) (*Explanation, error)
}

type explainService struct {
	client llm.Client
}

// NewExplainService creates an ExplainService. A nil client means every
// explanation comes from the deterministic fallback.
func NewExplainService(client llm.Client) ExplainService {
	return &explainService{client: client}
}

func (s *explainService) ExplainPlacement(ctx context.Context, req ExplainRequest) (*Explanation, error) {
	if s.client == nil {
		return DeterministicExplainPlacement(req), nil
	}

	userPrompt, err := buildExplainUserPrompt(req)
	if err != nil {
		return DeterministicExplainPlacement(req), nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskExplain,
		SystemPrompt: explainSystemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return DeterministicExplainPlacement(req), nil
	}

	return &Explanation{
		Text:   strings.TrimSpace(resp.Text),
		Source: SourceLLM,
	}, nil
}

// buildExplainUserPrompt packs the plan, the requirements, and an exact
// per-course credit block so the model never guesses credit values.
func buildExplainUserPrompt(req ExplainRequest) (string, error) {
	planView := map[string]any{
		"audit":         req.Statuses,
		"planned_terms": req.PlannedTerms,
	}
	planJSON, err := json.Marshal(planView)
	if err != nil {
		return "", err
	}
	reqJSON, err := json.Marshal(req.Program.Requirements)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Given this plan JSON: ```")
	b.Write(planJSON)
	b.WriteString("``` and requirements: ```")
	b.Write(reqJSON)
	fmt.Fprintf(&b, "```, answer: Why was %s placed in %s? Include prereq chain and credit balance.\n\n", req.Course, req.Term)
	b.WriteString("Course credits (from catalog):\n```\n")
	b.WriteString(strings.Join(creditLines(req), "\n"))
	b.WriteString("\n```")
	return b.String(), nil
}

// creditLines lists the credit value of every course involved in the plan,
// sorted by code, marking unknown values explicitly.
func creditLines(req ExplainRequest) []string {
	involved := map[string]bool{}
	for _, term := range req.PlannedTerms {
		for _, code := range term.Courses {
			involved[strings.ToUpper(strings.TrimSpace(code))] = true
		}
	}

	codes := make([]string, 0, len(involved))
	for code := range involved {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	lines := make([]string, 0, len(codes))
	for _, code := range codes {
		if meta, ok := req.Program.CourseMeta[code]; ok {
			lines = append(lines, fmt.Sprintf("%s: %d", code, meta.Credits))
		} else {
			lines = append(lines, fmt.Sprintf("%s: unknown", code))
		}
	}
	return lines
}
