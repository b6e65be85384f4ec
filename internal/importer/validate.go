package importer

import (
	"fmt"
	"sort"
	"time"

	"github.com/lucasmreid/advisor/internal/domain"
)

var validDayLetters = map[rune]bool{'M': true, 'T': true, 'W': true, 'R': true, 'F': true, 'S': true, 'U': true}

// ValidateTranscriptFile checks a transcript file before conversion.
// Returns a slice of all validation errors found. Grade values pass through
// unchecked; the audit treats any recorded grade as completed.
func ValidateTranscriptFile(f *TranscriptFile) []error {
	var errs []error

	if f.Student.Name == "" {
		errs = append(errs, fmt.Errorf("student.name is required"))
	}
	if f.Student.ID == "" {
		errs = append(errs, fmt.Errorf("student.id is required"))
	}
	if f.TransferCredits < 0 {
		errs = append(errs, fmt.Errorf("transfer_credits must not be negative"))
	}

	for i, rec := range f.Taken {
		prefix := fmt.Sprintf("taken[%d]", i)
		if rec.Code == "" {
			errs = append(errs, fmt.Errorf("%s.code is required", prefix))
		}
		if rec.Term == "" {
			errs = append(errs, fmt.Errorf("%s.term is required", prefix))
		}
		if rec.Credits != nil && *rec.Credits <= 0 {
			errs = append(errs, fmt.Errorf("%s.credits must be positive", prefix))
		}
	}

	return errs
}

// ValidateCatalogFile checks a program catalog file before conversion.
// Returns a slice of all validation errors found. Unknown requirement types
// are rejected here so the audit never has to see them; prerequisite edges
// are checked for dangling references and cycles.
func ValidateCatalogFile(f *CatalogFile) []error {
	var errs []error

	if f.Name == "" {
		errs = append(errs, fmt.Errorf("name is required"))
	}
	if f.TotalCredits < 0 {
		errs = append(errs, fmt.Errorf("total_credits must not be negative"))
	}
	if len(f.Requirements) == 0 {
		errs = append(errs, fmt.Errorf("requirements must not be empty"))
	}

	for i, r := range f.Requirements {
		errs = append(errs, validateRequirement(fmt.Sprintf("requirements[%d]", i), r)...)
	}

	for _, code := range sortedKeys(f.CourseMeta) {
		if f.CourseMeta[code].Credits <= 0 {
			errs = append(errs, fmt.Errorf("course_meta[%s].credits must be positive", code))
		}
	}

	errs = append(errs, validatePrereqs(f.Prereqs, f.CourseMeta)...)

	return errs
}

func validateRequirement(prefix string, r RequirementImport) []error {
	var errs []error

	if r.Type == "" {
		errs = append(errs, fmt.Errorf("%s.type is required", prefix))
		return errs
	}
	if !domain.ValidRequirementTypes[r.Type] {
		errs = append(errs, fmt.Errorf("%s.type: unknown value %q", prefix, r.Type))
		return errs
	}

	switch domain.RequirementType(r.Type) {
	case domain.ReqAllOf:
		if len(r.Courses) == 0 {
			errs = append(errs, fmt.Errorf("%s.courses must not be empty for all_of", prefix))
		}
	case domain.ReqChooseN:
		if len(r.From) == 0 {
			errs = append(errs, fmt.Errorf("%s.from must not be empty for choose_n", prefix))
		}
		if r.N <= 0 {
			errs = append(errs, fmt.Errorf("%s.n must be positive for choose_n", prefix))
		}
		if r.N > len(r.From) && len(r.From) > 0 {
			errs = append(errs, fmt.Errorf("%s.n (%d) exceeds pool size (%d)", prefix, r.N, len(r.From)))
		}
	case domain.ReqCreditsAtLeast:
		if r.Area == "" {
			errs = append(errs, fmt.Errorf("%s.area is required for credits_at_least", prefix))
		}
		if r.Credits <= 0 {
			errs = append(errs, fmt.Errorf("%s.credits must be positive for credits_at_least", prefix))
		}
	}

	return errs
}

func validatePrereqs(prereqs map[string][]string, meta map[string]CourseMetaImport) []error {
	var errs []error

	for _, code := range sortedKeys(prereqs) {
		if _, ok := meta[code]; !ok {
			errs = append(errs, fmt.Errorf("prereqs[%s]: code not found in course_meta", code))
		}
		for _, pre := range prereqs[code] {
			if pre == code {
				errs = append(errs, fmt.Errorf("prereqs[%s]: course is its own prerequisite", code))
				continue
			}
			if _, ok := meta[pre]; !ok {
				errs = append(errs, fmt.Errorf("prereqs[%s]: prerequisite %q not found in course_meta", code, pre))
			}
		}
	}

	errs = append(errs, detectPrereqCycles(prereqs)...)

	return errs
}

// detectPrereqCycles runs a DFS over the prerequisite graph. A cycle would
// make every course on it permanently ineligible for planning, so it is
// rejected at import time.
func detectPrereqCycles(prereqs map[string][]string) []error {
	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // fully processed
	)

	color := make(map[string]int)
	var errs []error

	var visit func(code string) bool
	visit = func(code string) bool {
		color[code] = gray
		for _, pre := range prereqs[code] {
			if color[pre] == gray {
				errs = append(errs, fmt.Errorf("prerequisite cycle detected involving %q and %q", code, pre))
				return true
			}
			if color[pre] == white {
				if visit(pre) {
					return true
				}
			}
		}
		color[code] = black
		return false
	}

	for _, code := range sortedKeys(prereqs) {
		if color[code] == white {
			visit(code)
		}
	}

	return errs
}

// ValidateOfferingsFile checks a term offerings file before conversion.
// Returns a slice of all validation errors found.
func ValidateOfferingsFile(f *OfferingsFile) []error {
	var errs []error

	if f.Term == "" {
		errs = append(errs, fmt.Errorf("term is required"))
	}

	for _, code := range sortedKeys(f.Sections) {
		for i, s := range f.Sections[code] {
			prefix := fmt.Sprintf("sections[%s][%d]", code, i)

			if s.CRN == "" {
				errs = append(errs, fmt.Errorf("%s.crn is required", prefix))
			}
			errs = append(errs, validateDays(prefix+".days", s.Days)...)
			startErrs := validateClockTime(prefix+".start", s.Start)
			endErrs := validateClockTime(prefix+".end", s.End)
			errs = append(errs, startErrs...)
			errs = append(errs, endErrs...)
			if len(startErrs) == 0 && len(endErrs) == 0 && s.Start >= s.End {
				errs = append(errs, fmt.Errorf("%s: start %q must be before end %q", prefix, s.Start, s.End))
			}
			if s.Cap <= 0 {
				errs = append(errs, fmt.Errorf("%s.cap must be positive", prefix))
			}
			if s.Enrolled < 0 {
				errs = append(errs, fmt.Errorf("%s.enrolled must not be negative", prefix))
			}
			if s.Cap > 0 && s.Enrolled > s.Cap {
				errs = append(errs, fmt.Errorf("%s: enrolled (%d) exceeds cap (%d)", prefix, s.Enrolled, s.Cap))
			}
		}
	}

	return errs
}

func validateDays(field, days string) []error {
	if days == "" {
		return []error{fmt.Errorf("%s is required", field)}
	}
	seen := make(map[rune]bool)
	for _, r := range days {
		if !validDayLetters[r] {
			return []error{fmt.Errorf("%s: invalid day letter %q in %q", field, r, days)}
		}
		if seen[r] {
			return []error{fmt.Errorf("%s: duplicate day letter %q in %q", field, r, days)}
		}
		seen[r] = true
	}
	return nil
}

func validateClockTime(field, v string) []error {
	if v == "" {
		return []error{fmt.Errorf("%s is required", field)}
	}
	if _, err := time.Parse("15:04", v); err != nil || len(v) != 5 {
		return []error{fmt.Errorf("%s: invalid time %q (expected HH:MM)", field, v)}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
