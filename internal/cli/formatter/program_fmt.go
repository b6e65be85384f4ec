package formatter

import (
	"fmt"

	"github.com/lucasmreid/advisor/internal/domain"
)

// FormatPrograms renders the stored program catalog as a table.
func FormatPrograms(programs []*domain.Program) string {
	if len(programs) == 0 {
		return Dim("No programs imported yet. Run `advisor import catalog <file>`.") + "\n"
	}

	rows := make([][]string, 0, len(programs))
	for _, p := range programs {
		rows = append(rows, []string{
			p.ID,
			Bold(p.Name),
			FormatCredits(p.TotalCredits),
			fmt.Sprintf("%d requirements", len(p.Requirements)),
			fmt.Sprintf("%d courses", len(p.CourseMeta)),
		})
	}
	return Header("Programs") + "\n" + RenderTable([]string{"ID", "NAME", "TOTAL", "REQUIREMENTS", "CATALOG"}, rows)
}
