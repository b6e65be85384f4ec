package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/lucasmreid/advisor/internal/engine"
	"github.com/lucasmreid/advisor/internal/repository"
)

type auditService struct {
	programs    repository.ProgramRepo
	transcripts repository.TranscriptRepo
	observer    UseCaseObserver
}

func NewAuditService(
	programs repository.ProgramRepo,
	transcripts repository.TranscriptRepo,
	observers ...UseCaseObserver,
) AuditService {
	return &auditService{
		programs:    programs,
		transcripts: transcripts,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *auditService) Audit(ctx context.Context, req contract.AuditRequest) (resp *contract.AuditResponse, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "audit", start, err, map[string]any{"program_id": req.ProgramID})
	}()

	program, err := s.programs.GetByID(ctx, req.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	transcript, err := resolveTranscript(ctx, s.transcripts, req.TranscriptID)
	if err != nil {
		return nil, err
	}

	return &contract.AuditResponse{
		Statuses: engine.Audit(transcript, program),
	}, nil
}
