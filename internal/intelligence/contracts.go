package intelligence

import (
	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/lucasmreid/advisor/internal/domain"
)

// Source identifies whether a response came from the model or the
// deterministic fallback.
const (
	SourceLLM           = "llm"
	SourceDeterministic = "deterministic"
)

// ConversationTurn is a single exchange in a multi-turn conversation.
type ConversationTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest carries everything the advising chat needs for one turn.
type ChatRequest struct {
	Program     domain.Program
	Transcript  domain.Transcript
	Goals       string
	Preferences map[string]any
	History     []ConversationTurn
	Terms       []string
}

// ChatResult is the advising chat reply plus the engine outputs it was
// grounded in.
type ChatResult struct {
	Reply        string                       `json:"reply"`
	Statuses     []contract.RequirementStatus `json:"audit"`
	PlannedTerms []contract.PlannedTerm       `json:"planned_terms"`
	Source       string                       `json:"source"`
}

// ExplainRequest asks why a course landed in a particular term.
type ExplainRequest struct {
	Program      domain.Program
	Statuses     []contract.RequirementStatus
	PlannedTerms []contract.PlannedTerm
	Course       string
	Term         string
}

// Explanation is a narrative placement explanation.
type Explanation struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// OverrideRequest describes a registration override to draft an email for.
type OverrideRequest struct {
	Student     domain.StudentInfo
	Course      string
	Term        string
	Reason      string
	Evidence    string
	DeptContact string
}

// OverrideDraft is a drafted override request email.
type OverrideDraft struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}
