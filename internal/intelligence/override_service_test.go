package intelligence_test

import (
	"context"
	"testing"

	"github.com/lucasmreid/advisor/internal/domain"
	"github.com/lucasmreid/advisor/internal/intelligence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_SendsStudentAndCourseDetails(t *testing.T) {
	var prompt string
	srv := newFakeModelServer(t, "Dear Advisor Team, ...", &prompt)
	defer srv.Close()

	svc := intelligence.NewOverrideDraftService(newTestClient(srv.URL))
	got, err := svc.Draft(context.Background(), intelligence.OverrideRequest{
		Student:  domain.StudentInfo{Name: "Ana Reyes", ID: "Z1234567"},
		Course:   "CS201",
		Term:     "2026S",
		Reason:   "section full",
		Evidence: "prereq completed with a B",
	})
	require.NoError(t, err)

	assert.Equal(t, intelligence.SourceLLM, got.Source)
	assert.Contains(t, prompt, "Ana Reyes")
	assert.Contains(t, prompt, "Z1234567")
	assert.Contains(t, prompt, "CS201")
	assert.Contains(t, prompt, "section full")
	assert.Contains(t, prompt, "Address to: Advisor Team")
}

func TestDraft_UsesNamedContact(t *testing.T) {
	var prompt string
	srv := newFakeModelServer(t, "ok", &prompt)
	defer srv.Close()

	svc := intelligence.NewOverrideDraftService(newTestClient(srv.URL))
	_, err := svc.Draft(context.Background(), intelligence.OverrideRequest{
		Student:     domain.StudentInfo{Name: "Ana Reyes"},
		Course:      "CS201",
		Term:        "2026S",
		DeptContact: "Dr. Okafor",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Address to: Dr. Okafor")
}

func TestDraft_DeterministicTemplate(t *testing.T) {
	svc := intelligence.NewOverrideDraftService(nil)
	got, err := svc.Draft(context.Background(), intelligence.OverrideRequest{
		Student:  domain.StudentInfo{Name: "Ana Reyes", ID: "Z1234567"},
		Course:   "CS201",
		Term:     "2026S",
		Reason:   "section full",
		Evidence: "prereq completed with a B",
	})
	require.NoError(t, err)

	assert.Equal(t, intelligence.SourceDeterministic, got.Source)
	assert.Contains(t, got.Text, "Subject: Registration Override Request - CS201 (2026S)")
	assert.Contains(t, got.Text, "Dear Advisor Team,")
	assert.Contains(t, got.Text, "Reason: section full")
	assert.Contains(t, got.Text, "Sincerely,\nAna Reyes (ID Z1234567)")
}

func TestDraft_TemplateOmitsEmptyFields(t *testing.T) {
	svc := intelligence.NewOverrideDraftService(nil)
	got, err := svc.Draft(context.Background(), intelligence.OverrideRequest{
		Course: "CS201",
		Term:   "2026S",
	})
	require.NoError(t, err)

	assert.NotContains(t, got.Text, "Reason:")
	assert.NotContains(t, got.Text, "Supporting evidence:")
	assert.Contains(t, got.Text, "Sincerely,\nStudent")
}

func TestDraft_ServerDownFallsBack(t *testing.T) {
	svc := intelligence.NewOverrideDraftService(newTestClient("http://127.0.0.1:1"))
	got, err := svc.Draft(context.Background(), intelligence.OverrideRequest{
		Student: domain.StudentInfo{Name: "Ana Reyes"},
		Course:  "CS201",
		Term:    "2026S",
	})
	require.NoError(t, err)
	assert.Equal(t, intelligence.SourceDeterministic, got.Source)
}
