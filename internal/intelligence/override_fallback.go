package intelligence

import (
	"fmt"
	"strings"
)

// DeterministicOverrideDraft fills a fixed email template from the request.
// Used when the model is disabled or unreachable.
func DeterministicOverrideDraft(req OverrideRequest) *OverrideDraft {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: Registration Override Request - %s (%s)\n\n", req.Course, req.Term)
	fmt.Fprintf(&b, "Dear %s,\n\n", req.DeptContact)
	fmt.Fprintf(&b, "I am writing to request a registration override for %s in the %s term.\n\n", req.Course, req.Term)
	if req.Reason != "" {
		fmt.Fprintf(&b, "Reason: %s\n\n", req.Reason)
	}
	if req.Evidence != "" {
		fmt.Fprintf(&b, "Supporting evidence: %s\n\n", req.Evidence)
	}
	b.WriteString("This course is required for my degree plan, and taking it this term keeps me on track to graduate on time. " +
		"I would appreciate your consideration, and I am happy to provide any additional documentation.\n\n")
	fmt.Fprintf(&b, "Thank you for your time.\n\nSincerely,\n%s", req.Student.Name)
	if req.Student.ID != "" {
		fmt.Fprintf(&b, " (ID %s)", req.Student.ID)
	}
	b.WriteString("\n")

	return &OverrideDraft{Text: b.String(), Source: SourceDeterministic}
}
