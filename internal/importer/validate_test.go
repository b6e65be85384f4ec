package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCatalog() *CatalogFile {
	return &CatalogFile{
		ID:           "cs-bs",
		Name:         "Computer Science BS",
		TotalCredits: 120,
		Requirements: []RequirementImport{
			{ID: "r1", Type: "all_of", Courses: []string{"CS101", "CS201"}},
			{ID: "r2", Type: "choose_n", From: []string{"MATH201", "MATH202"}, N: 1},
			{ID: "r3", Type: "credits_at_least", Area: "Science", Credits: 6},
		},
		CourseMeta: map[string]CourseMetaImport{
			"CS101":   {Credits: 3},
			"CS201":   {Credits: 3},
			"MATH201": {Credits: 3, Area: "Math"},
			"MATH202": {Credits: 3, Area: "Math"},
		},
		Prereqs: map[string][]string{"CS201": {"CS101"}},
	}
}

func validOfferings() *OfferingsFile {
	return &OfferingsFile{
		Term: "2026S",
		Sections: map[string][]SectionImport{
			"CS201": {
				{CRN: "10001", Days: "MWF", Start: "09:00", End: "09:50", Cap: 30, Enrolled: 12},
			},
		},
	}
}

func TestValidateTranscriptFile_ValidPasses(t *testing.T) {
	f := &TranscriptFile{
		Student: StudentImport{Name: "Ana Reyes", ID: "Z1234567"},
		Taken: []TakenImport{
			{Code: "CS101", Term: "2025F", Grade: "B"},
		},
	}
	assert.Empty(t, ValidateTranscriptFile(f))
}

func TestValidateTranscriptFile_CollectsAllErrors(t *testing.T) {
	f := &TranscriptFile{
		TransferCredits: -3,
		Taken: []TakenImport{
			{Term: "2025F", Grade: "B"},
			{Code: "CS101", Grade: "A"},
		},
	}

	errs := ValidateTranscriptFile(f)
	require.Len(t, errs, 5)
	assert.ErrorContains(t, errs[0], "student.name is required")
	assert.ErrorContains(t, errs[1], "student.id is required")
	assert.ErrorContains(t, errs[2], "transfer_credits")
	assert.ErrorContains(t, errs[3], "taken[0].code is required")
	assert.ErrorContains(t, errs[4], "taken[1].term is required")
}

func TestValidateTranscriptFile_GradesPassThroughUnchecked(t *testing.T) {
	f := &TranscriptFile{
		Student: StudentImport{Name: "Ana Reyes", ID: "Z1234567"},
		Taken: []TakenImport{
			{Code: "CS101", Term: "2025F", Grade: "F"},
			{Code: "CS102", Term: "2025F", Grade: "IP"},
			{Code: "CS103", Term: "2025F"},
		},
	}
	assert.Empty(t, ValidateTranscriptFile(f), "any grade string including empty is accepted")
}

func TestValidateCatalogFile_ValidPasses(t *testing.T) {
	assert.Empty(t, ValidateCatalogFile(validCatalog()))
}

func TestValidateCatalogFile_UnknownRequirementType(t *testing.T) {
	f := validCatalog()
	f.Requirements = append(f.Requirements, RequirementImport{ID: "r4", Type: "min_gpa"})

	errs := ValidateCatalogFile(f)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], `requirements[3].type: unknown value "min_gpa"`)
}

func TestValidateCatalogFile_VariantFieldRules(t *testing.T) {
	f := &CatalogFile{
		Name:         "Broken",
		TotalCredits: 120,
		Requirements: []RequirementImport{
			{Type: "all_of"},
			{Type: "choose_n", From: []string{"A", "B"}, N: 3},
			{Type: "credits_at_least", Credits: 0},
		},
		CourseMeta: map[string]CourseMetaImport{"A": {Credits: 3}, "B": {Credits: 3}},
	}

	errs := ValidateCatalogFile(f)
	require.Len(t, errs, 4)
	assert.ErrorContains(t, errs[0], "requirements[0].courses must not be empty")
	assert.ErrorContains(t, errs[1], "requirements[1].n (3) exceeds pool size (2)")
	assert.ErrorContains(t, errs[2], "requirements[2].area is required")
	assert.ErrorContains(t, errs[3], "requirements[2].credits must be positive")
}

func TestValidateCatalogFile_DanglingPrereqReferences(t *testing.T) {
	f := validCatalog()
	f.Prereqs["CS999"] = []string{"CS101"}
	f.Prereqs["CS201"] = []string{"CS100"}

	errs := ValidateCatalogFile(f)
	require.Len(t, errs, 2)
	assert.ErrorContains(t, errs[0], `prereqs[CS201]: prerequisite "CS100" not found`)
	assert.ErrorContains(t, errs[1], "prereqs[CS999]: code not found in course_meta")
}

func TestValidateCatalogFile_SelfPrerequisite(t *testing.T) {
	f := validCatalog()
	f.Prereqs["CS101"] = []string{"CS101"}

	errs := ValidateCatalogFile(f)
	require.NotEmpty(t, errs)
	assert.ErrorContains(t, errs[0], "prereqs[CS101]: course is its own prerequisite")
}

func TestValidateCatalogFile_PrereqCycleDetected(t *testing.T) {
	// CS101 -> CS201 -> CS101: every course on the cycle would be permanently
	// ineligible for planning, so the catalog is rejected.
	f := validCatalog()
	f.Prereqs = map[string][]string{
		"CS101": {"CS201"},
		"CS201": {"CS101"},
	}

	errs := ValidateCatalogFile(f)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "prerequisite cycle detected")
}

func TestValidateCatalogFile_LongerCycleDetected(t *testing.T) {
	f := validCatalog()
	f.CourseMeta["MATH203"] = CourseMetaImport{Credits: 3, Area: "Math"}
	f.Prereqs = map[string][]string{
		"MATH201": {"MATH202"},
		"MATH202": {"MATH203"},
		"MATH203": {"MATH201"},
	}

	errs := ValidateCatalogFile(f)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "prerequisite cycle detected")
}

func TestValidateCatalogFile_DiamondPrereqsAreNotACycle(t *testing.T) {
	f := validCatalog()
	f.Prereqs = map[string][]string{
		"MATH202": {"CS101", "MATH201"},
		"MATH201": {"CS101"},
	}

	assert.Empty(t, ValidateCatalogFile(f), "shared prerequisites are fine")
}

func TestValidateOfferingsFile_ValidPasses(t *testing.T) {
	assert.Empty(t, ValidateOfferingsFile(validOfferings()))
}

func TestValidateOfferingsFile_SectionFieldRules(t *testing.T) {
	f := &OfferingsFile{
		Term: "2026S",
		Sections: map[string][]SectionImport{
			"CS201": {
				{Days: "MXF", Start: "9:00", End: "25:00", Cap: 0, Enrolled: -1},
			},
		},
	}

	errs := ValidateOfferingsFile(f)
	require.Len(t, errs, 6)
	assert.ErrorContains(t, errs[0], "sections[CS201][0].crn is required")
	assert.ErrorContains(t, errs[1], `invalid day letter 'X'`)
	assert.ErrorContains(t, errs[2], `invalid time "9:00"`)
	assert.ErrorContains(t, errs[3], `invalid time "25:00"`)
	assert.ErrorContains(t, errs[4], "cap must be positive")
	assert.ErrorContains(t, errs[5], "enrolled must not be negative")
}

func TestValidateOfferingsFile_StartMustPrecedeEnd(t *testing.T) {
	f := validOfferings()
	f.Sections["CS201"][0].Start = "10:00"
	f.Sections["CS201"][0].End = "10:00"

	errs := ValidateOfferingsFile(f)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], `start "10:00" must be before end "10:00"`)
}

func TestValidateOfferingsFile_OverEnrollmentRejected(t *testing.T) {
	f := validOfferings()
	f.Sections["CS201"][0].Enrolled = 31

	errs := ValidateOfferingsFile(f)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "enrolled (31) exceeds cap (30)")
}

func TestValidateOfferingsFile_FullSectionIsNotAnError(t *testing.T) {
	// enrolled == cap is a legitimate state the scheduler handles via the
	// override fallback.
	f := validOfferings()
	f.Sections["CS201"][0].Enrolled = 30

	assert.Empty(t, ValidateOfferingsFile(f))
}

func TestValidateOfferingsFile_DuplicateDayLetter(t *testing.T) {
	f := validOfferings()
	f.Sections["CS201"][0].Days = "MM"

	errs := ValidateOfferingsFile(f)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], `duplicate day letter 'M'`)
}

func TestValidateOfferingsFile_MissingTerm(t *testing.T) {
	f := validOfferings()
	f.Term = ""

	errs := ValidateOfferingsFile(f)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "term is required")
}
