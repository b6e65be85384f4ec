package intelligence

import (
	"fmt"
	"strings"

	"github.com/lucasmreid/advisor/internal/contract"
)

// DeterministicExplainPlacement derives a placement explanation from the plan
// itself: which term holds the course, where its prerequisites landed, and how
// the term's credits add up. Used when the model is disabled or unreachable.
func DeterministicExplainPlacement(req ExplainRequest) *Explanation {
	course := strings.ToUpper(strings.TrimSpace(req.Course))

	var placedTerm string
	var termCourses []string
	var termCredits int
	for _, term := range req.PlannedTerms {
		for _, code := range term.Courses {
			if strings.EqualFold(code, course) {
				placedTerm = term.Term
				termCourses = term.Courses
				termCredits = term.Credits
				break
			}
		}
		if placedTerm != "" {
			break
		}
	}

	var b strings.Builder
	if placedTerm == "" {
		fmt.Fprintf(&b, "%s does not appear in the plan. ", course)
		fmt.Fprintf(&b, "Either it is already satisfied, it was not needed for any unmet requirement, "+
			"or its prerequisites could not be scheduled within the planned terms.")
		return &Explanation{Text: b.String(), Source: SourceDeterministic}
	}

	fmt.Fprintf(&b, "%s is placed in %s.", course, placedTerm)
	if req.Term != "" && !strings.EqualFold(req.Term, placedTerm) {
		fmt.Fprintf(&b, " (You asked about %s.)", req.Term)
	}
	b.WriteString("\n\n")

	if prereqs := req.Program.Prereqs[course]; len(prereqs) > 0 {
		fmt.Fprintf(&b, "Prerequisite chain: %s requires %s.", course, strings.Join(prereqs, ", "))
		for _, pre := range prereqs {
			if t := termOf(pre, req.PlannedTerms); t != "" {
				fmt.Fprintf(&b, " %s is planned in %s, so %s cannot come earlier.", pre, t, course)
			} else {
				fmt.Fprintf(&b, " %s is already completed or in progress.", pre)
			}
		}
		b.WriteString("\n\n")
	} else {
		fmt.Fprintf(&b, "%s has no prerequisites, so it was placed in the earliest term with room.\n\n", course)
	}

	fmt.Fprintf(&b, "Credit balance: %s carries %s alongside it for %d credits total. "+
		"Terms are filled greedily in course-code order up to the credit cap, "+
		"so earlier terms take the alphabetically first eligible courses.",
		placedTerm, strings.Join(termCourses, ", "), termCredits)

	return &Explanation{Text: b.String(), Source: SourceDeterministic}
}

func termOf(course string, planned []contract.PlannedTerm) string {
	for _, term := range planned {
		for _, code := range term.Courses {
			if strings.EqualFold(code, course) {
				return term.Term
			}
		}
	}
	return ""
}
