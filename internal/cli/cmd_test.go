package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lucasmreid/advisor/internal/db"
	"github.com/lucasmreid/advisor/internal/intelligence"
	"github.com/lucasmreid/advisor/internal/repository"
	"github.com/lucasmreid/advisor/internal/service"
	"github.com/lucasmreid/advisor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. Intelligence services run with a nil model client, so every reply
// comes from the deterministic fallbacks.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	programs := repository.NewSQLiteProgramRepo(database)
	transcripts := repository.NewSQLiteTranscriptRepo(database)
	offerings := repository.NewSQLiteOfferingsRepo(database)

	return &App{
		Audit:       service.NewAuditService(programs, transcripts),
		Plan:        service.NewPlanService(programs, transcripts),
		Schedule:    service.NewScheduleService(programs, transcripts, offerings),
		Imports:     service.NewImportService(db.NewSQLiteUnitOfWork(database)),
		Programs:    service.NewProgramService(programs),
		Transcripts: service.NewTranscriptService(transcripts),
		Advisor:     intelligence.NewAdvisorService(nil),
		Explain:     intelligence.NewExplainService(nil),
		Override:    intelligence.NewOverrideDraftService(nil),
	}
}

// runCommand executes the root command with args and captures everything the
// handlers print, including direct fmt.Print writes to os.Stdout.
func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = pw

	var buf strings.Builder
	done := make(chan struct{})
	go func() {
		io.Copy(&buf, pr)
		close(done)
	}()

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true
	execErr := root.Execute()

	pw.Close()
	os.Stdout = origStdout
	<-done

	return buf.String(), execErr
}

func writeFixture(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

const cliCatalogJSON = `{
	"id": "cs-bs",
	"name": "Computer Science BS",
	"total_credits": 120,
	"requirements": [
		{"type": "all_of", "courses": ["CS101", "CS201"]},
		{"type": "choose_n", "from": ["MATH201", "MATH202"], "n": 1}
	],
	"course_meta": {
		"CS101": {"credits": 3},
		"CS201": {"credits": 3},
		"MATH201": {"credits": 3, "area": "Math"},
		"MATH202": {"credits": 3, "area": "Math"}
	},
	"prereqs": {"CS201": ["CS101"]}
}`

const cliTranscriptJSON = `{
	"student": {"name": "Ana Reyes", "id": "Z1234567"},
	"taken": [{"code": "CS101", "term": "2025F", "grade": "B"}]
}`

const cliOfferingsJSON = `{
	"term": "2026S",
	"sections": {
		"CS201": [
			{"crn": "10002", "days": "TR", "start": "10:00", "end": "11:15", "cap": 30, "enrolled": 10}
		],
		"MATH201": [
			{"crn": "20001", "days": "TR", "start": "13:00", "end": "14:15", "cap": 25, "enrolled": 5}
		]
	}
}`

// seedApp imports the standard catalog, transcript, and offerings fixtures.
func seedApp(t *testing.T, app *App) {
	t.Helper()
	out, err := runCommand(t, app, "import", "catalog", writeFixture(t, "catalog.json", cliCatalogJSON))
	require.NoError(t, err)
	assert.Contains(t, out, "Computer Science BS")

	out, err = runCommand(t, app, "import", "transcript", writeFixture(t, "transcript.json", cliTranscriptJSON))
	require.NoError(t, err)
	assert.Contains(t, out, "Ana Reyes")

	out, err = runCommand(t, app, "import", "offerings", writeFixture(t, "offerings.json", cliOfferingsJSON))
	require.NoError(t, err)
	assert.Contains(t, out, "2026S")
}

func TestAuditCommand_RendersTable(t *testing.T) {
	app := testApp(t)
	seedApp(t, app)

	out, err := runCommand(t, app, "audit")
	require.NoError(t, err)
	assert.Contains(t, out, "DEGREE AUDIT")
	assert.Contains(t, out, "CS101+CS201")
	assert.Contains(t, out, "CS201")
	assert.Contains(t, out, "0 of 2 requirements met")
}

func TestAuditCommand_JSONOutput(t *testing.T) {
	app := testApp(t)
	seedApp(t, app)

	out, err := runCommand(t, app, "audit", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"audit"`)
	assert.Contains(t, out, `"CS101+CS201"`)
}

func TestPlanCommand_DefaultTermsAndExplicitTerms(t *testing.T) {
	app := testApp(t)
	seedApp(t, app)

	out, err := runCommand(t, app, "plan")
	require.NoError(t, err)
	assert.Contains(t, out, "COURSE PLAN")
	assert.Contains(t, out, "2026S")
	assert.Contains(t, out, "CS201, MATH201")

	out, err = runCommand(t, app, "plan", "--terms", "2027F")
	require.NoError(t, err)
	assert.Contains(t, out, "2027F")
}

func TestScheduleCommand_UsesPlannedCourses(t *testing.T) {
	app := testApp(t)
	seedApp(t, app)

	out, err := runCommand(t, app, "schedule", "--term", "2026S")
	require.NoError(t, err)
	assert.Contains(t, out, "SCHEDULE 2026S")
	assert.Contains(t, out, "10002")
	assert.Contains(t, out, "20001")
	assert.NotContains(t, out, "OVERRIDES NEEDED")
}

func TestScheduleCommand_RequiresTerm(t *testing.T) {
	app := testApp(t)
	seedApp(t, app)

	_, err := runCommand(t, app, "schedule")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "term")
}

func TestProgramsCommand_ListsAndShows(t *testing.T) {
	app := testApp(t)
	seedApp(t, app)

	out, err := runCommand(t, app, "programs")
	require.NoError(t, err)
	assert.Contains(t, out, "cs-bs")
	assert.Contains(t, out, "Computer Science BS")

	out, err = runCommand(t, app, "programs", "cs-bs")
	require.NoError(t, err)
	assert.Contains(t, out, `"total_credits": 120`)
}

func TestExplainCommand_DeterministicFallback(t *testing.T) {
	app := testApp(t)
	seedApp(t, app)

	out, err := runCommand(t, app, "explain", "--course", "cs201", "--term", "2026S")
	require.NoError(t, err)
	assert.Contains(t, out, "PLACEMENT EXPLANATION")
	assert.Contains(t, out, "CS201")
	assert.Contains(t, out, "deterministic")
}

func TestOverrideCommand_AllFlagsSkipWizard(t *testing.T) {
	app := testApp(t)
	seedApp(t, app)

	out, err := runCommand(t, app, "override",
		"--course", "cs201",
		"--term", "2026S",
		"--reason", "section full")
	require.NoError(t, err)
	assert.Contains(t, out, "OVERRIDE REQUEST DRAFT")
	assert.Contains(t, out, "CS201 (2026S)")
	assert.Contains(t, out, "Ana Reyes")
}

func TestChatCommand_OneShotMessage(t *testing.T) {
	app := testApp(t)
	seedApp(t, app)

	out, err := runCommand(t, app, "chat", "--message", "what do I still need?")
	require.NoError(t, err)
	assert.Contains(t, out, "CS201")
	assert.Contains(t, out, "Suggested plan")
}

func TestAuditCommand_NoProgramsGivesHint(t *testing.T) {
	app := testApp(t)

	_, err := runCommand(t, app, "audit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no programs imported")
}

func TestResolveProgramID_MultipleProgramsNeedFlag(t *testing.T) {
	app := testApp(t)
	seedApp(t, app)

	second := strings.Replace(cliCatalogJSON, `"id": "cs-bs"`, `"id": "math-bs"`, 1)
	_, err := runCommand(t, app, "import", "catalog", writeFixture(t, "second.json", second))
	require.NoError(t, err)

	_, err = runCommand(t, app, "audit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--program")

	out, err := runCommand(t, app, "audit", "--program", "cs-bs")
	require.NoError(t, err)
	assert.Contains(t, out, "DEGREE AUDIT")
}
