package intelligence_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lucasmreid/advisor/internal/intelligence"
	"github.com/lucasmreid/advisor/internal/llm"
	"github.com/lucasmreid/advisor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeModelServer(t *testing.T, reply string, capture *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if capture != nil && len(body.Messages) > 0 {
			*capture = body.Messages[len(body.Messages)-1].Content
		}
		json.NewEncoder(w).Encode(map[string]any{
			"model": "test-model",
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": reply}},
			},
		})
	}))
}

func newTestClient(endpoint string) llm.Client {
	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.MaxRetries = 0
	return llm.NewChatClient(cfg, llm.NoopObserver{})
}

func TestChat_GroundsPromptInEngineOutput(t *testing.T) {
	var prompt string
	srv := newFakeModelServer(t, "Take CS201 next.", &prompt)
	defer srv.Close()

	svc := intelligence.NewAdvisorService(newTestClient(srv.URL))
	res, err := svc.Chat(context.Background(), intelligence.ChatRequest{
		Program:    *testutil.NewTestProgram(),
		Transcript: *testutil.NewTestTranscript("CS101"),
		Goals:      "graduate fast",
	})
	require.NoError(t, err)

	assert.Equal(t, "Take CS201 next.", res.Reply)
	assert.Equal(t, intelligence.SourceLLM, res.Source)
	assert.NotEmpty(t, res.Statuses)
	assert.NotEmpty(t, res.PlannedTerms)

	assert.Contains(t, prompt, "CATALOG_PROGRAM_JSON")
	assert.Contains(t, prompt, "TRANSCRIPT_JSON")
	assert.Contains(t, prompt, "AUDIT_RESULTS_JSON")
	assert.Contains(t, prompt, "PLANNED_TERMS_JSON")
	assert.Contains(t, prompt, "Planned Credits Per Term")
	assert.Contains(t, prompt, "graduate fast")
}

func TestChat_IncludesConversationHistory(t *testing.T) {
	var prompt string
	srv := newFakeModelServer(t, "ok", &prompt)
	defer srv.Close()

	svc := intelligence.NewAdvisorService(newTestClient(srv.URL))
	_, err := svc.Chat(context.Background(), intelligence.ChatRequest{
		Program:    *testutil.NewTestProgram(),
		Transcript: *testutil.NewTestTranscript("CS101"),
		History: []intelligence.ConversationTurn{
			{Role: "user", Content: "can I take summer classes?"},
			{Role: "assistant", Content: "Yes, summer terms are an option."},
			{Role: "system", Content: "ignored"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "can I take summer classes?")
	assert.Contains(t, prompt, "summer terms are an option")
	assert.NotContains(t, prompt, "ignored")
}

func TestChat_FallsBackWhenServerDown(t *testing.T) {
	svc := intelligence.NewAdvisorService(newTestClient("http://127.0.0.1:1"))
	res, err := svc.Chat(context.Background(), intelligence.ChatRequest{
		Program:    *testutil.NewTestProgram(),
		Transcript: *testutil.NewTestTranscript("CS101"),
	})
	require.NoError(t, err)

	assert.Equal(t, intelligence.SourceDeterministic, res.Source)
	assert.Contains(t, res.Reply, "CS201")
	assert.NotEmpty(t, res.PlannedTerms)
}

func TestChat_NilClientUsesFallback(t *testing.T) {
	svc := intelligence.NewAdvisorService(nil)
	program := testutil.NewTestProgram(
		testutil.WithCourse("PHYS101", 3, "Science"),
		testutil.WithCourse("CHEM101", 3, "Science"),
	)
	res, err := svc.Chat(context.Background(), intelligence.ChatRequest{
		Program:    *program,
		Transcript: *testutil.NewTestTranscript("CS101", "CS201", "MATH201", "PHYS101", "CHEM101"),
	})
	require.NoError(t, err)

	assert.Equal(t, intelligence.SourceDeterministic, res.Source)
	assert.Contains(t, res.Reply, "All requirements are met")
}
