package formatter

import (
	"fmt"
	"strings"

	"github.com/lucasmreid/advisor/internal/contract"
)

// FormatPlan renders a multi-term plan: one row per term plus a total line,
// with a warning block for any courses the planner could not place.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder

	b.WriteString(Header("Course Plan"))
	b.WriteString("\n")

	if len(resp.PlannedTerms) == 0 {
		b.WriteString(Dim("Nothing to plan. All requirements are satisfied or no terms were given."))
		b.WriteString("\n")
	} else {
		rows := make([][]string, 0, len(resp.PlannedTerms))
		total := 0
		for _, term := range resp.PlannedTerms {
			total += term.Credits
			rows = append(rows, []string{
				Bold(term.Term),
				strings.Join(term.Courses, ", "),
				FormatCredits(term.Credits),
			})
		}
		b.WriteString(RenderTable([]string{"TERM", "COURSES", "CREDITS"}, rows))
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("Total planned: %s across %d term(s)", FormatCredits(total), len(resp.PlannedTerms))))
		b.WriteString("\n")
	}

	if len(resp.Unplaced) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render("▲ Not placed within the horizon: " + strings.Join(resp.Unplaced, ", ")))
		b.WriteString("\n")
		b.WriteString(Dim("  Add more terms or resolve their prerequisites first."))
		b.WriteString("\n")
	}

	return b.String()
}
