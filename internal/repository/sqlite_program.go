package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/lucasmreid/advisor/internal/db"
	"github.com/lucasmreid/advisor/internal/domain"
)

// SQLiteProgramRepo implements ProgramRepo over a db.DBTX, so the same code
// serves both plain connections and unit-of-work transactions.
type SQLiteProgramRepo struct {
	db db.DBTX
}

// NewSQLiteProgramRepo creates a new SQLiteProgramRepo.
func NewSQLiteProgramRepo(dbtx db.DBTX) *SQLiteProgramRepo {
	return &SQLiteProgramRepo{db: dbtx}
}

// Save upserts the whole program aggregate. Child rows are rewritten from
// scratch; run inside a unit of work when atomicity matters.
func (r *SQLiteProgramRepo) Save(ctx context.Context, p *domain.Program) error {
	now := nowUTC()
	query := `INSERT INTO programs (id, name, total_credits, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name,
			total_credits = excluded.total_credits, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.TotalCredits, now, now); err != nil {
		return fmt.Errorf("upserting program: %w", err)
	}

	for _, table := range []string{"requirements", "requirement_courses", "course_meta", "prerequisites"} {
		if _, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE program_id = ?`, table), p.ID); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for pos, req := range p.Requirements {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO requirements (program_id, position, req_id, type, n, area, credits)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, pos, req.ID, string(req.Type), req.N, req.Area, req.Credits); err != nil {
			return fmt.Errorf("inserting requirement %d: %w", pos, err)
		}
		if err := r.saveCourseList(ctx, p.ID, pos, "courses", req.Courses); err != nil {
			return err
		}
		if err := r.saveCourseList(ctx, p.ID, pos, "from", req.From); err != nil {
			return err
		}
	}

	for _, code := range sortedKeys(p.CourseMeta) {
		meta := p.CourseMeta[code]
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO course_meta (program_id, code, credits, area) VALUES (?, ?, ?, ?)`,
			p.ID, code, meta.Credits, meta.Area); err != nil {
			return fmt.Errorf("inserting course_meta %s: %w", code, err)
		}
	}

	for _, code := range sortedKeys(p.Prereqs) {
		for pos, prereq := range p.Prereqs[code] {
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO prerequisites (program_id, code, position, prereq) VALUES (?, ?, ?, ?)`,
				p.ID, code, pos, prereq); err != nil {
				return fmt.Errorf("inserting prerequisite %s: %w", code, err)
			}
		}
	}

	return nil
}

func (r *SQLiteProgramRepo) saveCourseList(ctx context.Context, programID string, reqPos int, role string, codes []string) error {
	for pos, code := range codes {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO requirement_courses (program_id, req_position, role, position, code)
			VALUES (?, ?, ?, ?, ?)`,
			programID, reqPos, role, pos, code); err != nil {
			return fmt.Errorf("inserting requirement course %s: %w", code, err)
		}
	}
	return nil
}

func (r *SQLiteProgramRepo) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	var p domain.Program
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, total_credits FROM programs WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.TotalCredits)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("scanning program: %w", err)
	}

	if err := r.loadRequirements(ctx, &p); err != nil {
		return nil, err
	}
	if err := r.loadCourseMeta(ctx, &p); err != nil {
		return nil, err
	}
	if err := r.loadPrereqs(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteProgramRepo) List(ctx context.Context) ([]*domain.Program, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM programs ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning program id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating programs: %w", err)
	}

	programs := make([]*domain.Program, 0, len(ids))
	for _, id := range ids {
		p, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, nil
}

func (r *SQLiteProgramRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM programs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting program: %w", err)
	}
	return nil
}

func (r *SQLiteProgramRepo) loadRequirements(ctx context.Context, p *domain.Program) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT position, req_id, type, n, area, credits
		FROM requirements WHERE program_id = ? ORDER BY position`, p.ID)
	if err != nil {
		return fmt.Errorf("listing requirements: %w", err)
	}
	defer rows.Close()

	var positions []int
	for rows.Next() {
		var pos, n, credits int
		var reqID, typ, area string
		if err := rows.Scan(&pos, &reqID, &typ, &n, &area, &credits); err != nil {
			return fmt.Errorf("scanning requirement: %w", err)
		}
		p.Requirements = append(p.Requirements, domain.Requirement{
			ID:      reqID,
			Type:    domain.RequirementType(typ),
			N:       n,
			Area:    area,
			Credits: credits,
		})
		positions = append(positions, pos)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating requirements: %w", err)
	}

	for i, pos := range positions {
		courses, err := r.loadCourseList(ctx, p.ID, pos, "courses")
		if err != nil {
			return err
		}
		from, err := r.loadCourseList(ctx, p.ID, pos, "from")
		if err != nil {
			return err
		}
		p.Requirements[i].Courses = courses
		p.Requirements[i].From = from
	}
	return nil
}

func (r *SQLiteProgramRepo) loadCourseList(ctx context.Context, programID string, reqPos int, role string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT code FROM requirement_courses
		WHERE program_id = ? AND req_position = ? AND role = ? ORDER BY position`,
		programID, reqPos, role)
	if err != nil {
		return nil, fmt.Errorf("listing requirement courses: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scanning requirement course: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

func (r *SQLiteProgramRepo) loadCourseMeta(ctx context.Context, p *domain.Program) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT code, credits, area FROM course_meta WHERE program_id = ?`, p.ID)
	if err != nil {
		return fmt.Errorf("listing course_meta: %w", err)
	}
	defer rows.Close()

	p.CourseMeta = make(map[string]domain.CourseMeta)
	for rows.Next() {
		var code, area string
		var credits int
		if err := rows.Scan(&code, &credits, &area); err != nil {
			return fmt.Errorf("scanning course_meta: %w", err)
		}
		p.CourseMeta[code] = domain.CourseMeta{Credits: credits, Area: area}
	}
	return rows.Err()
}

func (r *SQLiteProgramRepo) loadPrereqs(ctx context.Context, p *domain.Program) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT code, prereq FROM prerequisites WHERE program_id = ? ORDER BY code, position`, p.ID)
	if err != nil {
		return fmt.Errorf("listing prerequisites: %w", err)
	}
	defer rows.Close()

	p.Prereqs = make(map[string][]string)
	for rows.Next() {
		var code, prereq string
		if err := rows.Scan(&code, &prereq); err != nil {
			return fmt.Errorf("scanning prerequisite: %w", err)
		}
		p.Prereqs[code] = append(p.Prereqs[code], prereq)
	}
	return rows.Err()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
