package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/lucasmreid/advisor/internal/domain"
	"github.com/lucasmreid/advisor/internal/repository"
)

// resolveTranscript loads a transcript by id, falling back to the most
// recently updated one when the id is empty.
func resolveTranscript(ctx context.Context, transcripts repository.TranscriptRepo, id string) (*domain.Transcript, error) {
	if id == "" {
		t, err := transcripts.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading latest transcript: %w", err)
		}
		return t, nil
	}
	t, err := transcripts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading transcript: %w", err)
	}
	return t, nil
}

// unplacedCourses diffs the missing set against the planned terms: whatever
// the planner dropped silently surfaces here as a diagnostic.
func unplacedCourses(missing map[string]bool, planned []contract.PlannedTerm) []string {
	placed := make(map[string]bool)
	for _, term := range planned {
		for _, code := range term.Courses {
			placed[code] = true
		}
	}

	var unplaced []string
	for code := range missing {
		if !placed[code] {
			unplaced = append(unplaced, code)
		}
	}
	sort.Strings(unplaced)
	return unplaced
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}

// observe reports one use-case execution to the configured observer.
func observe(ctx context.Context, obs UseCaseObserver, name string, start time.Time, err error, fields map[string]any) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}
