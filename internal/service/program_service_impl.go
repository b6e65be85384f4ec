package service

import (
	"context"
	"fmt"

	"github.com/lucasmreid/advisor/internal/domain"
	"github.com/lucasmreid/advisor/internal/repository"
)

type programService struct {
	programs repository.ProgramRepo
}

func NewProgramService(programs repository.ProgramRepo) ProgramService {
	return &programService{programs: programs}
}

func (s *programService) List(ctx context.Context) ([]*domain.Program, error) {
	programs, err := s.programs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	return programs, nil
}

func (s *programService) Get(ctx context.Context, id string) (*domain.Program, error) {
	p, err := s.programs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	return p, nil
}

type transcriptService struct {
	transcripts repository.TranscriptRepo
}

func NewTranscriptService(transcripts repository.TranscriptRepo) TranscriptService {
	return &transcriptService{transcripts: transcripts}
}

func (s *transcriptService) List(ctx context.Context) ([]*domain.Transcript, error) {
	transcripts, err := s.transcripts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing transcripts: %w", err)
	}
	return transcripts, nil
}

func (s *transcriptService) Get(ctx context.Context, id string) (*domain.Transcript, error) {
	t, err := s.transcripts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading transcript: %w", err)
	}
	return t, nil
}

func (s *transcriptService) Latest(ctx context.Context) (*domain.Transcript, error) {
	t, err := s.transcripts.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading latest transcript: %w", err)
	}
	return t, nil
}
