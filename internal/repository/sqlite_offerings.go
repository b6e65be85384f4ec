package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lucasmreid/advisor/internal/db"
	"github.com/lucasmreid/advisor/internal/domain"
)

// SQLiteOfferingsRepo implements OfferingsRepo over a db.DBTX.
type SQLiteOfferingsRepo struct {
	db db.DBTX
}

// NewSQLiteOfferingsRepo creates a new SQLiteOfferingsRepo.
func NewSQLiteOfferingsRepo(dbtx db.DBTX) *SQLiteOfferingsRepo {
	return &SQLiteOfferingsRepo{db: dbtx}
}

// Save upserts a term's section catalog, rewriting all sections. Position
// preserves catalog order within each course.
func (r *SQLiteOfferingsRepo) Save(ctx context.Context, o *domain.Offerings) error {
	now := nowUTC()
	query := `INSERT INTO offerings (term, created_at, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(term) DO UPDATE SET updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, o.Term, now, now); err != nil {
		return fmt.Errorf("upserting offerings term: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM sections WHERE term = ?`, o.Term); err != nil {
		return fmt.Errorf("clearing sections: %w", err)
	}

	for _, code := range sortedKeys(o.Sections) {
		for pos, s := range o.Sections[code] {
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO sections (term, course_code, position, crn, days, start_time, end_time, cap, enrolled)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				o.Term, code, pos, s.CRN, s.Days, s.Start, s.End, s.Cap, s.Enrolled); err != nil {
				return fmt.Errorf("inserting section %s/%s: %w", code, s.CRN, err)
			}
		}
	}
	return nil
}

func (r *SQLiteOfferingsRepo) GetByTerm(ctx context.Context, term string) (*domain.Offerings, error) {
	var found string
	err := r.db.QueryRowContext(ctx, `SELECT term FROM offerings WHERE term = ?`, term).Scan(&found)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrOfferingsNotFound
		}
		return nil, fmt.Errorf("scanning offerings term: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT course_code, crn, days, start_time, end_time, cap, enrolled
		FROM sections WHERE term = ? ORDER BY course_code, position`, term)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	o := &domain.Offerings{Term: term, Sections: make(map[string][]domain.Section)}
	for rows.Next() {
		var code string
		var s domain.Section
		if err := rows.Scan(&code, &s.CRN, &s.Days, &s.Start, &s.End, &s.Cap, &s.Enrolled); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		o.Sections[code] = append(o.Sections[code], s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	return o, nil
}

func (r *SQLiteOfferingsRepo) ListTerms(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT term FROM offerings ORDER BY term`)
	if err != nil {
		return nil, fmt.Errorf("listing terms: %w", err)
	}
	defer rows.Close()

	var terms []string
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, fmt.Errorf("scanning term: %w", err)
		}
		terms = append(terms, term)
	}
	return terms, rows.Err()
}

// ReserveSeat increments a section's enrollment, guarded so it never exceeds
// capacity. Registration with an approved override bypasses this via the
// registrar, not here.
func (r *SQLiteOfferingsRepo) ReserveSeat(ctx context.Context, term, crn string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sections SET enrolled = enrolled + 1
		WHERE term = ? AND crn = ? AND enrolled < cap`, term, crn)
	if err != nil {
		return fmt.Errorf("reserving seat: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking seat reservation: %w", err)
	}
	if affected == 0 {
		var enrolled, capacity int
		err := r.db.QueryRowContext(ctx,
			`SELECT enrolled, cap FROM sections WHERE term = ? AND crn = ?`, term, crn).
			Scan(&enrolled, &capacity)
		if err == sql.ErrNoRows {
			return ErrSectionNotFound
		}
		if err != nil {
			return fmt.Errorf("checking section: %w", err)
		}
		return ErrSectionFull
	}
	return nil
}

func (r *SQLiteOfferingsRepo) Delete(ctx context.Context, term string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM offerings WHERE term = ?`, term); err != nil {
		return fmt.Errorf("deleting offerings: %w", err)
	}
	return nil
}
