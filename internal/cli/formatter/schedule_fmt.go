package formatter

import (
	"fmt"
	"strings"

	"github.com/lucasmreid/advisor/internal/contract"
)

// FormatSchedule renders section assignments for one term. Rows that need a
// manual override are highlighted and echoed in a follow-up block.
func FormatSchedule(resp *contract.ScheduleResponse) string {
	var b strings.Builder

	b.WriteString(Header("Schedule " + resp.Term))
	b.WriteString("\n")

	if len(resp.Chosen) == 0 {
		b.WriteString(Dim("No sections to schedule."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(resp.Chosen))
	for _, c := range resp.Chosen {
		status := StyleGreen.Render("● OK")
		if c.NeedsOverride() {
			status = OverridePill()
		}
		rows = append(rows, []string{
			Bold(c.Course),
			c.CRN,
			c.Days,
			c.Start + "-" + c.End,
			seatCell(c),
			status,
		})
	}
	b.WriteString(RenderTable([]string{"COURSE", "CRN", "DAYS", "TIME", "SEATS", "STATUS"}, rows))

	if len(resp.NeedsOverrides) > 0 {
		b.WriteString("\n")
		lines := make([]string, 0, len(resp.NeedsOverrides))
		for _, c := range resp.NeedsOverrides {
			lines = append(lines, fmt.Sprintf("%s %s: %s", c.Course, c.CRN, c.Note))
		}
		b.WriteString(RenderBox("Overrides Needed", StyleYellow.Render(strings.Join(lines, "\n"))))
		b.WriteString("\n")
		b.WriteString(Dim("Run `advisor override` to draft a request email."))
		b.WriteString("\n")
	}

	return b.String()
}

func seatCell(c contract.ChosenSection) string {
	cell := fmt.Sprintf("%d/%d", c.Enrolled, c.Cap)
	if c.Enrolled >= c.Cap {
		return StyleRed.Render(cell)
	}
	return cell
}
