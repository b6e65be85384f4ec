package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/lucasmreid/advisor/internal/engine"
	"github.com/lucasmreid/advisor/internal/repository"
)

type planService struct {
	programs    repository.ProgramRepo
	transcripts repository.TranscriptRepo
	observer    UseCaseObserver
}

func NewPlanService(
	programs repository.ProgramRepo,
	transcripts repository.TranscriptRepo,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		programs:    programs,
		transcripts: transcripts,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Plan(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "plan", start, err, map[string]any{
			"program_id": req.ProgramID,
			"terms":      len(req.Terms),
		})
	}()

	program, err := s.programs.GetByID(ctx, req.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	transcript, err := resolveTranscript(ctx, s.transcripts, req.TranscriptID)
	if err != nil {
		return nil, err
	}

	terms := req.Terms
	if len(terms) == 0 {
		terms = contract.NewPlanRequest(req.ProgramID).Terms
	}

	statuses, plannedTerms, err := engine.Plan(transcript, program, terms)
	if err != nil {
		return nil, fmt.Errorf("planning: %w", err)
	}

	return &contract.PlanResponse{
		Statuses:     statuses,
		PlannedTerms: plannedTerms,
		Unplaced:     unplacedCourses(engine.CollectMissing(statuses), plannedTerms),
	}, nil
}
