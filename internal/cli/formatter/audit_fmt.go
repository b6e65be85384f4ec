package formatter

import (
	"fmt"
	"strings"

	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/lucasmreid/advisor/internal/domain"
)

// FormatAudit renders an audit report as a table with one row per
// requirement, followed by a met/unmet summary line.
func FormatAudit(resp *contract.AuditResponse) string {
	var b strings.Builder

	b.WriteString(Header("Degree Audit"))
	b.WriteString("\n")

	rows := make([][]string, 0, len(resp.Statuses))
	met := 0
	for _, st := range resp.Statuses {
		if st.Met {
			met++
		}
		rows = append(rows, []string{
			st.ID,
			Dim(string(st.Type)),
			MetPill(st.Met),
			auditDetails(st),
		})
	}
	b.WriteString(RenderTable([]string{"REQUIREMENT", "TYPE", "STATUS", "DETAILS"}, rows))

	b.WriteString("\n")
	summary := fmt.Sprintf("%d of %d requirements met", met, len(resp.Statuses))
	if met == len(resp.Statuses) {
		b.WriteString(StyleGreen.Render(summary))
	} else {
		b.WriteString(StyleYellow.Render(summary))
	}
	b.WriteString("\n")

	return b.String()
}

func auditDetails(st contract.RequirementStatus) string {
	switch st.Type {
	case domain.ReqAllOf:
		if st.Met {
			return Dim(fmt.Sprintf("all %d courses done", len(st.Details.Courses)))
		}
		return "missing: " + StyleRed.Render(strings.Join(st.Details.Missing, ", "))
	case domain.ReqChooseN:
		if st.Met {
			return Dim("done: " + strings.Join(st.Details.Done, ", "))
		}
		return fmt.Sprintf("need %d more from %s", st.Details.Need, JoinOrDash(st.Details.Pool))
	case domain.ReqCreditsAtLeast:
		earned := fmt.Sprintf("earned %d", st.Details.Earned)
		if st.Met {
			return Dim(earned + " in " + st.Details.Area)
		}
		return fmt.Sprintf("%s, need %d more in %s", earned, st.Details.Need, st.Details.Area)
	default:
		return Dim("--")
	}
}
