package formatter

import (
	"strings"

	"github.com/lucasmreid/advisor/internal/intelligence"
)

// FormatExplanation renders a placement explanation in a titled box with a
// badge showing whether the model or the deterministic fallback produced it.
func FormatExplanation(e *intelligence.Explanation) string {
	content := strings.TrimSpace(e.Text) + "\n\n" + SourceBadge(e.Source)
	return RenderBox("Placement Explanation", content) + "\n"
}

// FormatOverrideDraft renders a drafted override email in a titled box.
func FormatOverrideDraft(d *intelligence.OverrideDraft) string {
	content := strings.TrimSpace(d.Text) + "\n\n" + SourceBadge(d.Source)
	return RenderBox("Override Request Draft", content) + "\n"
}
