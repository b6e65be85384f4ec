package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/lucasmreid/advisor/internal/cli"
	"github.com/lucasmreid/advisor/internal/db"
	"github.com/lucasmreid/advisor/internal/intelligence"
	"github.com/lucasmreid/advisor/internal/llm"
	"github.com/lucasmreid/advisor/internal/repository"
	"github.com/lucasmreid/advisor/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Local .env carries the model endpoint and API key during development.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.advisor/advisor.db
	dbPath := os.Getenv("ADVISOR_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".advisor", "advisor.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	programRepo := repository.NewSQLiteProgramRepo(database)
	transcriptRepo := repository.NewSQLiteTranscriptRepo(database)
	offeringsRepo := repository.NewSQLiteOfferingsRepo(database)

	// Wire unit of work for transactional imports
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if os.Getenv("ADVISOR_LOG_USECASES") == "1" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Audit:       service.NewAuditService(programRepo, transcriptRepo, observers...),
		Plan:        service.NewPlanService(programRepo, transcriptRepo, observers...),
		Schedule:    service.NewScheduleService(programRepo, transcriptRepo, offeringsRepo, observers...),
		Imports:     service.NewImportService(uow, observers...),
		Programs:    service.NewProgramService(programRepo),
		Transcripts: service.NewTranscriptService(transcriptRepo),
	}

	// Wire the conversational services. With the model disabled the services
	// still work through their deterministic fallbacks.
	llmCfg := llm.LoadConfig()
	var llmClient llm.Client
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewChatClient(llmCfg, observer)
	}
	app.Advisor = intelligence.NewAdvisorService(llmClient)
	app.Explain = intelligence.NewExplainService(llmClient)
	app.Override = intelligence.NewOverrideDraftService(llmClient)

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
