package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS programs (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		total_credits INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS requirements (
		program_id TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		req_id     TEXT NOT NULL DEFAULT '',
		type       TEXT NOT NULL
		           CHECK(type IN ('all_of','choose_n','credits_at_least')),
		n          INTEGER NOT NULL DEFAULT 0,
		area       TEXT NOT NULL DEFAULT '',
		credits    INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (program_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS requirement_courses (
		program_id   TEXT NOT NULL,
		req_position INTEGER NOT NULL,
		role         TEXT NOT NULL CHECK(role IN ('courses','from')),
		position     INTEGER NOT NULL,
		code         TEXT NOT NULL,
		PRIMARY KEY (program_id, req_position, role, position),
		FOREIGN KEY (program_id, req_position)
			REFERENCES requirements(program_id, position) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS course_meta (
		program_id TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		code       TEXT NOT NULL,
		credits    INTEGER NOT NULL,
		area       TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (program_id, code)
	)`,

	`CREATE TABLE IF NOT EXISTS prerequisites (
		program_id TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
		code       TEXT NOT NULL,
		position   INTEGER NOT NULL,
		prereq     TEXT NOT NULL,
		PRIMARY KEY (program_id, code, position)
	)`,

	`CREATE TABLE IF NOT EXISTS transcripts (
		id               TEXT PRIMARY KEY,
		student_name     TEXT NOT NULL,
		student_id       TEXT NOT NULL,
		transfer_credits INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS taken_records (
		transcript_id TEXT NOT NULL REFERENCES transcripts(id) ON DELETE CASCADE,
		position      INTEGER NOT NULL,
		code          TEXT NOT NULL,
		term          TEXT NOT NULL,
		grade         TEXT NOT NULL DEFAULT '',
		credits       INTEGER,
		PRIMARY KEY (transcript_id, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_taken_records_code ON taken_records(code)`,

	`CREATE TABLE IF NOT EXISTS offerings (
		term       TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sections (
		term        TEXT NOT NULL REFERENCES offerings(term) ON DELETE CASCADE,
		course_code TEXT NOT NULL,
		position    INTEGER NOT NULL,
		crn         TEXT NOT NULL,
		days        TEXT NOT NULL,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		cap         INTEGER NOT NULL,
		enrolled    INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (term, course_code, position)
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_sections_crn ON sections(term, crn)`,
	`CREATE INDEX IF NOT EXISTS idx_sections_course ON sections(term, course_code)`,
}
