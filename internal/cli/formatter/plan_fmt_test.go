package formatter

import (
	"testing"

	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestFormatPlan_TableAndTotals(t *testing.T) {
	resp := &contract.PlanResponse{
		PlannedTerms: []contract.PlannedTerm{
			{Term: "2026S", Courses: []string{"CS201", "MATH201"}, Credits: 6},
			{Term: "2026F", Courses: []string{"CS301"}, Credits: 3},
		},
	}

	out := FormatPlan(resp)
	assert.Contains(t, out, "COURSE PLAN")
	assert.Contains(t, out, "2026S")
	assert.Contains(t, out, "CS201, MATH201")
	assert.Contains(t, out, "6 credits")
	assert.Contains(t, out, "Total planned: 9 credits across 2 term(s)")
	assert.NotContains(t, out, "Not placed")
}

func TestFormatPlan_WarnsAboutUnplaced(t *testing.T) {
	resp := &contract.PlanResponse{
		PlannedTerms: []contract.PlannedTerm{
			{Term: "2026S", Courses: []string{"CS201"}, Credits: 3},
		},
		Unplaced: []string{"CS401", "CS402"},
	}

	out := FormatPlan(resp)
	assert.Contains(t, out, "Not placed within the horizon: CS401, CS402")
}

func TestFormatPlan_EmptyPlan(t *testing.T) {
	out := FormatPlan(&contract.PlanResponse{})
	assert.Contains(t, out, "Nothing to plan")
}
