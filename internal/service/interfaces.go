package service

import (
	"context"

	"github.com/lucasmreid/advisor/internal/contract"
	"github.com/lucasmreid/advisor/internal/domain"
)

type AuditService interface {
	Audit(ctx context.Context, req contract.AuditRequest) (*contract.AuditResponse, error)
}

type PlanService interface {
	Plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

type ScheduleService interface {
	Schedule(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error)
}

type ProgramService interface {
	List(ctx context.Context) ([]*domain.Program, error)
	Get(ctx context.Context, id string) (*domain.Program, error)
}

type TranscriptService interface {
	List(ctx context.Context) ([]*domain.Transcript, error)
	Get(ctx context.Context, id string) (*domain.Transcript, error)
	Latest(ctx context.Context) (*domain.Transcript, error)
}

type ImportService interface {
	ImportTranscript(ctx context.Context, filePath string) (*domain.Transcript, error)
	ImportCatalog(ctx context.Context, filePath string) (*domain.Program, error)
	ImportOfferings(ctx context.Context, filePath string) (*domain.Offerings, error)
}
