package repository

import (
	"context"
	"errors"

	"github.com/lucasmreid/advisor/internal/domain"
)

// Not-found and seat-reservation sentinels. Repositories return these
// unwrapped so callers can branch with errors.Is.
var (
	ErrProgramNotFound    = errors.New("program not found")
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrOfferingsNotFound  = errors.New("offerings not found")
	ErrSectionNotFound    = errors.New("section not found")
	ErrSectionFull        = errors.New("section is full")
)

// ProgramRepo stores degree programs as whole aggregates: requirements in
// declared order, course metadata, and prerequisite edges.
type ProgramRepo interface {
	Save(ctx context.Context, p *domain.Program) error
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	List(ctx context.Context) ([]*domain.Program, error)
	Delete(ctx context.Context, id string) error
}

// TranscriptRepo stores student transcripts with their taken records in
// file order.
type TranscriptRepo interface {
	Save(ctx context.Context, t *domain.Transcript) error
	GetByID(ctx context.Context, id string) (*domain.Transcript, error)
	Latest(ctx context.Context) (*domain.Transcript, error)
	List(ctx context.Context) ([]*domain.Transcript, error)
	Delete(ctx context.Context, id string) error
}

// OfferingsRepo stores per-term section catalogs. Section order within a
// course is catalog order and round-trips intact. ReserveSeat is the
// caller-side enrollment mutation the scheduling engine never performs.
type OfferingsRepo interface {
	Save(ctx context.Context, o *domain.Offerings) error
	GetByTerm(ctx context.Context, term string) (*domain.Offerings, error)
	ListTerms(ctx context.Context) ([]string, error)
	ReserveSeat(ctx context.Context, term, crn string) error
	Delete(ctx context.Context, term string) error
}
