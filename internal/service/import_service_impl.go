package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lucasmreid/advisor/internal/db"
	"github.com/lucasmreid/advisor/internal/domain"
	"github.com/lucasmreid/advisor/internal/importer"
	"github.com/lucasmreid/advisor/internal/repository"
)

// importService writes each imported aggregate inside a unit of work so a
// mid-write failure never leaves a half-saved catalog behind.
type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportTranscript(ctx context.Context, filePath string) (t *domain.Transcript, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "import_transcript", start, err, map[string]any{"path": filePath})
	}()

	file, err := importer.LoadTranscriptFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading transcript file: %w", err)
	}
	if errs := importer.ValidateTranscriptFile(file); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	t = importer.ConvertTranscript(file)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteTranscriptRepo(tx).Save(ctx, t)
	})
	if err != nil {
		return nil, fmt.Errorf("saving transcript: %w", err)
	}
	return t, nil
}

func (s *importService) ImportCatalog(ctx context.Context, filePath string) (p *domain.Program, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "import_catalog", start, err, map[string]any{"path": filePath})
	}()

	file, err := importer.LoadCatalogFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	if errs := importer.ValidateCatalogFile(file); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	p = importer.ConvertCatalog(file)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteProgramRepo(tx).Save(ctx, p)
	})
	if err != nil {
		return nil, fmt.Errorf("saving program: %w", err)
	}
	return p, nil
}

func (s *importService) ImportOfferings(ctx context.Context, filePath string) (o *domain.Offerings, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "import_offerings", start, err, map[string]any{"path": filePath})
	}()

	file, err := importer.LoadOfferingsFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading offerings file: %w", err)
	}
	if errs := importer.ValidateOfferingsFile(file); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	o = importer.ConvertOfferings(file)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteOfferingsRepo(tx).Save(ctx, o)
	})
	if err != nil {
		return nil, fmt.Errorf("saving offerings: %w", err)
	}
	return o, nil
}
