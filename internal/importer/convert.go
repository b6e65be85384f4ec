package importer

import (
	"github.com/google/uuid"
	"github.com/lucasmreid/advisor/internal/domain"
)

// ConvertTranscript transforms a validated transcript file into a domain
// transcript ready for persistence. Call ValidateTranscriptFile first;
// ConvertTranscript assumes the file is valid.
func ConvertTranscript(f *TranscriptFile) *domain.Transcript {
	t := &domain.Transcript{
		ID: uuid.New().String(),
		Student: domain.StudentInfo{
			Name: f.Student.Name,
			ID:   f.Student.ID,
		},
		TransferCredits: f.TransferCredits,
	}
	for _, rec := range f.Taken {
		t.Taken = append(t.Taken, domain.TakenRecord{
			Code:    rec.Code,
			Term:    rec.Term,
			Grade:   rec.Grade,
			Credits: rec.Credits,
		})
	}
	return t
}

// ConvertCatalog transforms a validated catalog file into a domain program.
// A missing program id gets a generated one; requirement ids stay empty and
// default at audit time.
func ConvertCatalog(f *CatalogFile) *domain.Program {
	id := f.ID
	if id == "" {
		id = uuid.New().String()
	}

	p := &domain.Program{
		ID:           id,
		Name:         f.Name,
		TotalCredits: f.TotalCredits,
		CourseMeta:   make(map[string]domain.CourseMeta, len(f.CourseMeta)),
		Prereqs:      make(map[string][]string, len(f.Prereqs)),
	}

	for _, r := range f.Requirements {
		p.Requirements = append(p.Requirements, domain.Requirement{
			ID:      r.ID,
			Type:    domain.RequirementType(r.Type),
			Courses: r.Courses,
			From:    r.From,
			N:       r.N,
			Area:    r.Area,
			Credits: r.Credits,
		})
	}
	for code, m := range f.CourseMeta {
		p.CourseMeta[code] = domain.CourseMeta{Credits: m.Credits, Area: m.Area}
	}
	for code, pres := range f.Prereqs {
		p.Prereqs[code] = append([]string(nil), pres...)
	}

	return p
}

// ConvertOfferings transforms a validated offerings file into a domain
// offerings catalog, preserving section order within each course.
func ConvertOfferings(f *OfferingsFile) *domain.Offerings {
	o := &domain.Offerings{
		Term:     f.Term,
		Sections: make(map[string][]domain.Section, len(f.Sections)),
	}
	for code, secs := range f.Sections {
		converted := make([]domain.Section, 0, len(secs))
		for _, s := range secs {
			converted = append(converted, domain.Section{
				CRN:      s.CRN,
				Days:     s.Days,
				Start:    s.Start,
				End:      s.End,
				Cap:      s.Cap,
				Enrolled: s.Enrolled,
			})
		}
		o.Sections[code] = converted
	}
	return o
}
