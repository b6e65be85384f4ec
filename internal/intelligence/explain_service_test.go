package intelligence_test

import (
	"context"
	"testing"

	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/lucasmreid/advisor/internal/engine"
	"github.com/lucasmreid/advisor/internal/intelligence"
	"github.com/lucasmreid/advisor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExplainRequest(t *testing.T, course, term string) intelligence.ExplainRequest {
	t.Helper()
	program := testutil.NewTestProgram()
	transcript := testutil.NewTestTranscript("CS101")

	statuses, planned, err := engine.Plan(transcript, program, []string{"2026S", "2026F"})
	require.NoError(t, err)

	return intelligence.ExplainRequest{
		Program:      *program,
		Statuses:     statuses,
		PlannedTerms: planned,
		Course:       course,
		Term:         term,
	}
}

func TestExplainPlacement_PromptCarriesExactCredits(t *testing.T) {
	var prompt string
	srv := newFakeModelServer(t, "Because its prerequisite is done.", &prompt)
	defer srv.Close()

	svc := intelligence.NewExplainService(newTestClient(srv.URL))
	got, err := svc.ExplainPlacement(context.Background(), newExplainRequest(t, "CS201", "2026S"))
	require.NoError(t, err)

	assert.Equal(t, "Because its prerequisite is done.", got.Text)
	assert.Equal(t, intelligence.SourceLLM, got.Source)
	assert.Contains(t, prompt, "Why was CS201 placed in 2026S?")
	assert.Contains(t, prompt, "CS201: 3")
	assert.Contains(t, prompt, "MATH201: 3")
	assert.Contains(t, prompt, "planned_terms")
}

func TestExplainPlacement_FallbackWalksPrereqChain(t *testing.T) {
	svc := intelligence.NewExplainService(nil)
	got, err := svc.ExplainPlacement(context.Background(), newExplainRequest(t, "CS201", "2026S"))
	require.NoError(t, err)

	assert.Equal(t, intelligence.SourceDeterministic, got.Source)
	assert.Contains(t, got.Text, "CS201 is placed in 2026S")
	assert.Contains(t, got.Text, "CS201 requires CS101")
	assert.Contains(t, got.Text, "already completed")
	assert.Contains(t, got.Text, "credits total")
}

func TestExplainPlacement_FallbackHandlesUnplannedCourse(t *testing.T) {
	svc := intelligence.NewExplainService(nil)
	got, err := svc.ExplainPlacement(context.Background(), newExplainRequest(t, "ART100", "2026S"))
	require.NoError(t, err)

	assert.Equal(t, intelligence.SourceDeterministic, got.Source)
	assert.Contains(t, got.Text, "ART100 does not appear in the plan")
}

func TestExplainPlacement_ServerDownFallsBack(t *testing.T) {
	svc := intelligence.NewExplainService(newTestClient("http://127.0.0.1:1"))
	got, err := svc.ExplainPlacement(context.Background(), newExplainRequest(t, "CS201", "2026S"))
	require.NoError(t, err)

	assert.Equal(t, intelligence.SourceDeterministic, got.Source)
}

func TestDeterministicExplainPlacement_NoPrereqs(t *testing.T) {
	program := testutil.NewTestProgram()
	got := intelligence.DeterministicExplainPlacement(intelligence.ExplainRequest{
		Program: *program,
		PlannedTerms: []contract.PlannedTerm{
			{Term: "2026S", Courses: []string{"MATH201"}, Credits: 3},
		},
		Course: "MATH201",
		Term:   "2026S",
	})

	assert.Contains(t, got.Text, "MATH201 has no prerequisites")
}
