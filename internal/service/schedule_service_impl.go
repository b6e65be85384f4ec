package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/lucasmreid/advisor/internal/engine"
	"github.com/lucasmreid/advisor/internal/repository"
)

type scheduleService struct {
	programs    repository.ProgramRepo
	transcripts repository.TranscriptRepo
	offerings   repository.OfferingsRepo
	observer    UseCaseObserver
}

func NewScheduleService(
	programs repository.ProgramRepo,
	transcripts repository.TranscriptRepo,
	offerings repository.OfferingsRepo,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		programs:    programs,
		transcripts: transcripts,
		offerings:   offerings,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) Schedule(ctx context.Context, req contract.ScheduleRequest) (resp *contract.ScheduleResponse, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "schedule", start, err, map[string]any{
			"term":    req.Term,
			"reserve": req.Reserve,
		})
	}()

	if req.Term == "" {
		return nil, fmt.Errorf("term is required")
	}

	courses := req.Courses
	if len(courses) == 0 {
		courses, err = s.plannedCoursesForTerm(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	offerings, err := s.offerings.GetByTerm(ctx, req.Term)
	if err != nil {
		return nil, fmt.Errorf("loading offerings: %w", err)
	}

	chosen, needsOverrides := engine.Schedule(courses, offerings)

	if req.Reserve {
		for _, c := range chosen {
			if c.NeedsOverride() {
				continue
			}
			if err := s.offerings.ReserveSeat(ctx, req.Term, c.CRN); err != nil {
				return nil, fmt.Errorf("reserving seat in %s: %w", c.CRN, err)
			}
		}
	}

	return &contract.ScheduleResponse{
		Term:           req.Term,
		Chosen:         chosen,
		NeedsOverrides: needsOverrides,
	}, nil
}

// plannedCoursesForTerm derives the course list by planning the requested
// term as a single-term horizon.
func (s *scheduleService) plannedCoursesForTerm(ctx context.Context, req contract.ScheduleRequest) ([]string, error) {
	program, err := s.programs.GetByID(ctx, req.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	transcript, err := resolveTranscript(ctx, s.transcripts, req.TranscriptID)
	if err != nil {
		return nil, err
	}

	_, plannedTerms, err := engine.Plan(transcript, program, []string{req.Term})
	if err != nil {
		return nil, fmt.Errorf("planning term %s: %w", req.Term, err)
	}
	if len(plannedTerms) == 0 {
		return nil, nil
	}
	return plannedTerms[0].Courses, nil
}
