package engine

import (
	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/lucasmreid/advisor/internal/domain"
)

// OverrideNote tags a forced-fallback section assignment that requires a
// manual override (section full and/or overlapping).
const OverrideNote = "full/overlap → needs override"

// Conflicts reports whether two sections double-book the student. Sections
// conflict only when their day-strings match exactly and their time intervals
// overlap; "MWF" and "WF" never conflict even though they share days. That is
// a documented simplification of the day model, not a bug.
func Conflicts(a, b domain.Section) bool {
	if a.Days != b.Days {
		return false
	}
	return !(a.End <= b.Start || b.End <= a.Start)
}

// Schedule assigns one section per course, scanning each course's sections
// in catalog order and taking the first that is below capacity and conflict
// free against everything chosen so far. When no section qualifies but the
// course is offered, the first catalog section is chosen anyway and tagged
// with OverrideNote. Courses with no offerings contribute nothing to either
// output. Enrollment counts are read-only snapshots; seat reservation is the
// caller's business.
func Schedule(courses []string, offerings *domain.Offerings) (chosen, needsOverride []contract.ChosenSection) {
	chosen = make([]contract.ChosenSection, 0, len(courses))

	for _, course := range courses {
		secs := offerings.Sections[course]

		var picked *contract.ChosenSection
		for _, s := range secs {
			if s.Enrolled < s.Cap && !conflictsAny(s, chosen) {
				cs := chosenSection(course, s, "")
				picked = &cs
				break
			}
		}
		if picked == nil && len(secs) > 0 {
			cs := chosenSection(course, secs[0], OverrideNote)
			picked = &cs
		}
		if picked != nil {
			chosen = append(chosen, *picked)
		}
	}

	needsOverride = make([]contract.ChosenSection, 0)
	for _, cs := range chosen {
		if cs.NeedsOverride() {
			needsOverride = append(needsOverride, cs)
		}
	}
	return chosen, needsOverride
}

func conflictsAny(s domain.Section, chosen []contract.ChosenSection) bool {
	for _, c := range chosen {
		if Conflicts(s, sectionOf(c)) {
			return true
		}
	}
	return false
}

func sectionOf(c contract.ChosenSection) domain.Section {
	return domain.Section{
		CRN:      c.CRN,
		Days:     c.Days,
		Start:    c.Start,
		End:      c.End,
		Cap:      c.Cap,
		Enrolled: c.Enrolled,
	}
}

func chosenSection(course string, s domain.Section, note string) contract.ChosenSection {
	return contract.ChosenSection{
		Course:   course,
		CRN:      s.CRN,
		Days:     s.Days,
		Start:    s.Start,
		End:      s.End,
		Cap:      s.Cap,
		Enrolled: s.Enrolled,
		Note:     note,
	}
}
