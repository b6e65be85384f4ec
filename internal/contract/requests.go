package contract

// AuditRequest asks for a requirement-by-requirement audit of one transcript
// against one program. An empty TranscriptID means the most recent transcript.
type AuditRequest struct {
	ProgramID    string
	TranscriptID string
}

// AuditResponse carries the audit verdicts in the program's declared order.
type AuditResponse struct {
	Statuses []RequirementStatus `json:"audit"`
}

// PlanRequest asks for a greedy multi-term plan. Terms is the future term
// sequence, earliest first.
type PlanRequest struct {
	ProgramID    string
	TranscriptID string
	Terms        []string
}

// NewPlanRequest returns a PlanRequest with the default three-term horizon.
func NewPlanRequest(programID string) PlanRequest {
	return PlanRequest{
		ProgramID: programID,
		Terms:     []string{"2026S", "2026F", "2027S"},
	}
}

// PlanResponse carries the audit that seeded the plan, the planned terms, and
// the courses the planner could not place within the given horizon.
type PlanResponse struct {
	Statuses     []RequirementStatus `json:"audit"`
	PlannedTerms []PlannedTerm       `json:"planned_terms"`
	Unplaced     []string            `json:"unplaced,omitempty"`
}

// ScheduleRequest asks for section assignments in one term. When Courses is
// empty the first planned term's courses are used; Reserve additionally
// claims a seat in every non-override assignment.
type ScheduleRequest struct {
	ProgramID    string
	TranscriptID string
	Term         string
	Courses      []string
	Reserve      bool
}

// ScheduleResponse carries the section assignments for one term. Every entry
// of NeedsOverrides also appears in Chosen with its override note set.
type ScheduleResponse struct {
	Term           string          `json:"term"`
	Chosen         []ChosenSection `json:"chosen_sections"`
	NeedsOverrides []ChosenSection `json:"needs_overrides"`
}
