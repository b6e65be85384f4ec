package testutil

import (
	"github.com/google/uuid"
	"github.com/lucasmreid/advisor/internal/domain"
)

// Program options
type ProgramOption func(*domain.Program)

func WithRequirement(r domain.Requirement) ProgramOption {
	return func(p *domain.Program) {
		p.Requirements = append(p.Requirements, r)
	}
}

func WithCourse(code string, credits int, area string) ProgramOption {
	return func(p *domain.Program) {
		p.CourseMeta[code] = domain.CourseMeta{Credits: credits, Area: area}
	}
}

func WithPrereq(code string, prereqs ...string) ProgramOption {
	return func(p *domain.Program) {
		p.Prereqs[code] = prereqs
	}
}

func WithTotalCredits(n int) ProgramOption {
	return func(p *domain.Program) {
		p.TotalCredits = n
	}
}

// NewTestProgram builds the default four-course CS program used across
// repository and service tests: one requirement of each variant.
func NewTestProgram(opts ...ProgramOption) *domain.Program {
	p := &domain.Program{
		ID:           uuid.New().String(),
		Name:         "Computer Science BS",
		TotalCredits: 120,
		Requirements: []domain.Requirement{
			{ID: "r1", Type: domain.ReqAllOf, Courses: []string{"CS101", "CS201"}},
			{ID: "r2", Type: domain.ReqChooseN, From: []string{"MATH201", "MATH202"}, N: 1},
			{ID: "r3", Type: domain.ReqCreditsAtLeast, Area: "Science", Credits: 6},
		},
		CourseMeta: map[string]domain.CourseMeta{
			"CS101":   {Credits: 3},
			"CS201":   {Credits: 3},
			"MATH201": {Credits: 3, Area: "Math"},
			"MATH202": {Credits: 3, Area: "Math"},
		},
		Prereqs: map[string][]string{"CS201": {"CS101"}},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Transcript options
type TranscriptOption func(*domain.Transcript)

func WithTakenRecord(rec domain.TakenRecord) TranscriptOption {
	return func(t *domain.Transcript) {
		t.Taken = append(t.Taken, rec)
	}
}

func WithTransferCredits(n int) TranscriptOption {
	return func(t *domain.Transcript) {
		t.TransferCredits = n
	}
}

// NewTestTranscript builds a transcript with one B-grade record per code.
func NewTestTranscript(codes ...string) *domain.Transcript {
	t := &domain.Transcript{
		ID:      uuid.New().String(),
		Student: domain.StudentInfo{Name: "Ana Reyes", ID: "Z1234567"},
	}
	for _, code := range codes {
		t.Taken = append(t.Taken, domain.TakenRecord{Code: code, Term: "2025F", Grade: "B"})
	}
	return t
}

// Offerings options
type OfferingsOption func(*domain.Offerings)

func WithSections(code string, secs ...domain.Section) OfferingsOption {
	return func(o *domain.Offerings) {
		o.Sections[code] = secs
	}
}

// NewTestOfferings builds a spring term with two sections each for CS201 and
// MATH201; the first CS201 section is full.
func NewTestOfferings(opts ...OfferingsOption) *domain.Offerings {
	o := &domain.Offerings{
		Term: "2026S",
		Sections: map[string][]domain.Section{
			"CS201": {
				{CRN: "10001", Days: "MWF", Start: "09:00", End: "09:50", Cap: 30, Enrolled: 30},
				{CRN: "10002", Days: "TR", Start: "10:00", End: "11:15", Cap: 30, Enrolled: 10},
			},
			"MATH201": {
				{CRN: "20001", Days: "TR", Start: "10:00", End: "11:15", Cap: 25, Enrolled: 5},
				{CRN: "20002", Days: "MWF", Start: "11:00", End: "11:50", Cap: 25, Enrolled: 5},
			},
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
