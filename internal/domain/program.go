package domain

import "strings"

// RequirementType enumerates the closed set of requirement rule variants.
type RequirementType string

const (
	ReqAllOf          RequirementType = "all_of"
	ReqChooseN        RequirementType = "choose_n"
	ReqCreditsAtLeast RequirementType = "credits_at_least"
)

// ValidRequirementTypes is the canonical set of accepted requirement type strings.
var ValidRequirementTypes = map[string]bool{
	"all_of": true, "choose_n": true, "credits_at_least": true,
}

// Requirement is one rule a program imposes on completed coursework.
// Which fields are meaningful depends on Type:
//
//	all_of           — Courses
//	choose_n         — From, N
//	credits_at_least — Area, Credits
type Requirement struct {
	ID      string
	Type    RequirementType
	Courses []string
	From    []string
	N       int
	Area    string
	Credits int
}

// EffectiveID returns the requirement's ID, defaulting deterministically when
// absent: all_of joins its courses with "+", choose_n is the literal
// "choose_n", credits_at_least is "credits_" plus the area. Callers may rely
// on these defaults.
func (r Requirement) EffectiveID() string {
	if r.ID != "" {
		return r.ID
	}
	switch r.Type {
	case ReqAllOf:
		return strings.Join(r.Courses, "+")
	case ReqChooseN:
		return "choose_n"
	case ReqCreditsAtLeast:
		return "credits_" + r.Area
	default:
		return string(r.Type)
	}
}

// CourseMeta is per-program catalog metadata for one course code.
// An empty Area means the course belongs to no category.
type CourseMeta struct {
	Credits int
	Area    string
}

// Program is a degree program's catalog entry: its requirements in declared
// order, course metadata, and the prerequisite map.
type Program struct {
	ID           string
	Name         string
	TotalCredits int
	Requirements []Requirement
	CourseMeta   map[string]CourseMeta
	Prereqs      map[string][]string
}
