package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders an aligned table with a header separator line. Column
// widths are measured with lipgloss.Width so styled cells line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2
	pad := func(b *strings.Builder, cell string, col int) {
		b.WriteString(cell)
		if col < cols-1 {
			n := widths[col] - lipgloss.Width(cell)
			if n < 0 {
				n = 0
			}
			b.WriteString(strings.Repeat(" ", n+colGap))
		}
	}

	var b strings.Builder
	for i, h := range headers {
		pad(&b, StyleHeader.Render(h), i)
	}
	b.WriteString("\n")
	for i, w := range widths {
		pad(&b, StyleDim.Render(strings.Repeat("─", w)), i)
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad(&b, cell, i)
		}
		b.WriteString("\n")
	}

	return b.String()
}
