package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lucasmreid/advisor/internal/db"
	"github.com/lucasmreid/advisor/internal/domain"
)

// SQLiteTranscriptRepo implements TranscriptRepo over a db.DBTX.
type SQLiteTranscriptRepo struct {
	db db.DBTX
}

// NewSQLiteTranscriptRepo creates a new SQLiteTranscriptRepo.
func NewSQLiteTranscriptRepo(dbtx db.DBTX) *SQLiteTranscriptRepo {
	return &SQLiteTranscriptRepo{db: dbtx}
}

// Save upserts the transcript and rewrites its taken records in file order.
func (r *SQLiteTranscriptRepo) Save(ctx context.Context, t *domain.Transcript) error {
	now := nowUTC()
	query := `INSERT INTO transcripts (id, student_name, student_id, transfer_credits, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET student_name = excluded.student_name,
			student_id = excluded.student_id, transfer_credits = excluded.transfer_credits,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query,
		t.ID, t.Student.Name, t.Student.ID, t.TransferCredits, now, now); err != nil {
		return fmt.Errorf("upserting transcript: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM taken_records WHERE transcript_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clearing taken_records: %w", err)
	}
	for pos, rec := range t.Taken {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO taken_records (transcript_id, position, code, term, grade, credits)
			VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, pos, rec.Code, rec.Term, rec.Grade, nullableIntToValue(rec.Credits)); err != nil {
			return fmt.Errorf("inserting taken record %d: %w", pos, err)
		}
	}
	return nil
}

func (r *SQLiteTranscriptRepo) GetByID(ctx context.Context, id string) (*domain.Transcript, error) {
	var t domain.Transcript
	err := r.db.QueryRowContext(ctx,
		`SELECT id, student_name, student_id, transfer_credits FROM transcripts WHERE id = ?`, id).
		Scan(&t.ID, &t.Student.Name, &t.Student.ID, &t.TransferCredits)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTranscriptNotFound
		}
		return nil, fmt.Errorf("scanning transcript: %w", err)
	}

	if err := r.loadTaken(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Latest returns the most recently updated transcript, the default subject
// for CLI commands that omit an explicit transcript id.
func (r *SQLiteTranscriptRepo) Latest(ctx context.Context) (*domain.Transcript, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM transcripts ORDER BY updated_at DESC, id DESC LIMIT 1`).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTranscriptNotFound
		}
		return nil, fmt.Errorf("finding latest transcript: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *SQLiteTranscriptRepo) List(ctx context.Context) ([]*domain.Transcript, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM transcripts ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing transcripts: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning transcript id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transcripts: %w", err)
	}

	transcripts := make([]*domain.Transcript, 0, len(ids))
	for _, id := range ids {
		t, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		transcripts = append(transcripts, t)
	}
	return transcripts, nil
}

func (r *SQLiteTranscriptRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM transcripts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting transcript: %w", err)
	}
	return nil
}

func (r *SQLiteTranscriptRepo) loadTaken(ctx context.Context, t *domain.Transcript) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT code, term, grade, credits FROM taken_records
		WHERE transcript_id = ? ORDER BY position`, t.ID)
	if err != nil {
		return fmt.Errorf("listing taken_records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec domain.TakenRecord
		var credits sql.NullInt64
		if err := rows.Scan(&rec.Code, &rec.Term, &rec.Grade, &credits); err != nil {
			return fmt.Errorf("scanning taken record: %w", err)
		}
		rec.Credits = nullableIntFromValue(credits)
		t.Taken = append(t.Taken, rec)
	}
	return rows.Err()
}
