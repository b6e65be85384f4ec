package intelligence

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/lucasmreid/advisor/internal/engine"
)

// DeterministicChatReply summarizes the audit and plan in plain text without
// the model. Used when the model is disabled, unreachable, or misbehaving.
func DeterministicChatReply(statuses []contract.RequirementStatus, planned []contract.PlannedTerm) string {
	var b strings.Builder

	unmet := 0
	for _, s := range statuses {
		if !s.Met {
			unmet++
		}
	}

	if unmet == 0 {
		b.WriteString("All requirements are met. Nothing left to plan.\n")
		return b.String()
	}

	missing := engine.CollectMissing(statuses)
	codes := make([]string, 0, len(missing))
	for code := range missing {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	fmt.Fprintf(&b, "You have %d unmet requirement(s).", unmet)
	if len(codes) > 0 {
		fmt.Fprintf(&b, " Courses still needed: %s.", strings.Join(codes, ", "))
	}
	b.WriteString("\n\n")

	if len(planned) == 0 {
		b.WriteString("No plan could be produced for the requested terms.\n")
		return b.String()
	}

	b.WriteString("Suggested plan:\n")
	total := 0
	for _, term := range planned {
		fmt.Fprintf(&b, "- %s: %s (%d credits)\n", term.Term, strings.Join(term.Courses, ", "), term.Credits)
		total += term.Credits
	}
	fmt.Fprintf(&b, "Total planned credits: %d\n", total)
	return b.String()
}
