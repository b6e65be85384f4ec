package engine

import (
	"fmt"
	"sort"

	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/lucasmreid/advisor/internal/domain"
)

// TermCreditCap is the maximum total credits a single planned term may hold.
const TermCreditCap = 15

// Eligible reports whether every prerequisite of a course is in the
// satisfied set. A course absent from the prerequisite map has none.
func Eligible(code string, prereqs map[string][]string, satisfied map[string]bool) bool {
	for _, p := range prereqs[code] {
		if !satisfied[p] {
			return false
		}
	}
	return true
}

// Plan greedily distributes the transcript's missing courses across the
// supplied term labels under the credit cap and prerequisite eligibility.
// It returns the audit computed at the start alongside the plan.
//
// Candidates are scanned in lexicographic code order, and the satisfied set
// is updated the moment a course is accepted into the current term. A course
// sorting later in the same term therefore sees earlier acceptances as
// satisfied prerequisites: same-term chaining driven purely by code order.
// Callers depending on prior-term-only satisfaction must not rely on Plan.
//
// Terms whose bucket stays empty are omitted from the output. Courses still
// unplaced when the label sequence runs out are dropped without error; the
// service layer surfaces them as a diagnostic.
func Plan(t *domain.Transcript, p *domain.Program, terms []string) ([]contract.RequirementStatus, []contract.PlannedTerm, error) {
	statuses := Audit(t, p)

	satisfied := t.CompletedSet()
	remaining := CollectMissing(statuses)
	alreadyPlanned := make(map[string]bool)

	plan := make([]contract.PlannedTerm, 0)

	for _, term := range terms {
		bucket := make([]string, 0)
		credits := 0

		for _, code := range sortedCodes(remaining) {
			if alreadyPlanned[code] {
				continue
			}
			meta, ok := p.CourseMeta[code]
			if !ok {
				return nil, nil, fmt.Errorf("%w: %s", ErrMissingCourseMetadata, code)
			}
			if Eligible(code, p.Prereqs, satisfied) && credits+meta.Credits <= TermCreditCap {
				bucket = append(bucket, code)
				credits += meta.Credits
				satisfied[code] = true
				alreadyPlanned[code] = true
			}
		}

		for _, code := range bucket {
			delete(remaining, code)
		}
		if len(bucket) > 0 {
			plan = append(plan, contract.PlannedTerm{Term: term, Courses: bucket, Credits: credits})
		}
		if len(remaining) == 0 {
			break
		}
	}

	return statuses, plan, nil
}

func sortedCodes(set map[string]bool) []string {
	codes := make([]string, 0, len(set))
	for code := range set {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
