package contract

import "github.com/lucasmreid/advisor/internal/domain"

// StatusDetails is the type-specific payload of a requirement status. Field
// relevance follows the requirement type: all_of fills Missing/Courses,
// choose_n fills Need/Done/Pool, credits_at_least fills Earned/Need/Area.
// JSON keys match the advising wire format consumed by the chat layer.
type StatusDetails struct {
	Missing []string `json:"missing,omitempty"`
	Courses []string `json:"courses,omitempty"`
	Need    int      `json:"need"`
	Done    []string `json:"done,omitempty"`
	Pool    []string `json:"pool,omitempty"`
	Earned  int      `json:"earned"`
	Area    string   `json:"area,omitempty"`
}

// RequirementStatus is the audit verdict for one requirement, in the
// program's declared order.
type RequirementStatus struct {
	ID      string                 `json:"id"`
	Type    domain.RequirementType `json:"type"`
	Met     bool                   `json:"met"`
	Details StatusDetails          `json:"details"`
}

// PlannedTerm is one term of a greedy multi-term plan. Courses are listed in
// selection order, which is lexicographic by code.
type PlannedTerm struct {
	Term    string   `json:"term"`
	Courses []string `json:"courses"`
	Credits int      `json:"credits"`
}

// ChosenSection is a section assignment for one planned course. Note is
// non-empty only when the assignment is a forced fallback requiring a manual
// override.
type ChosenSection struct {
	Course   string `json:"course"`
	CRN      string `json:"crn"`
	Days     string `json:"days"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Cap      int    `json:"cap"`
	Enrolled int    `json:"enrolled"`
	Note     string `json:"note,omitempty"`
}

// NeedsOverride reports whether this assignment requires a manual override.
func (c ChosenSection) NeedsOverride() bool {
	return c.Note != ""
}
