// Package history persists a local record of submitted jobs backed by
// SQLite, so an operator can see what was submitted from this machine
// and where each job's log ended up.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	job_id INTEGER NOT NULL,
	job_name TEXT NOT NULL DEFAULT '',
	script_path TEXT NOT NULL,
	log_path TEXT NOT NULL,
	submitted_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submissions_submitted_at ON submissions(submitted_at);
`

// Submission is one recorded job submission.
type Submission struct {
	ID          int64
	JobID       uint64
	JobName     string
	ScriptPath  string
	LogPath     string
	SubmittedAt time.Time
}

// Store manages submission persistence.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the history database at dbPath, creating parent
// directories and the schema as needed.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	// Single writer keeps SQLITE_BUSY out of the picture for a CLI.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Record appends a submission. A zero SubmittedAt is stamped with the
// current time.
func (s *Store) Record(ctx context.Context, sub Submission) error {
	when := sub.SubmittedAt
	if when.IsZero() {
		when = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO submissions (job_id, job_name, script_path, log_path, submitted_at)
		 VALUES (?, ?, ?, ?, ?)`,
		int64(sub.JobID), sub.JobName, sub.ScriptPath, sub.LogPath,
		when.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record submission: %w", err)
	}
	return nil
}

// Recent returns up to limit submissions, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, job_id, job_name, script_path, log_path, submitted_at
		 FROM submissions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var sub Submission
		var jobID int64
		var submittedAt string
		if err := rows.Scan(&sub.ID, &jobID, &sub.JobName, &sub.ScriptPath, &sub.LogPath, &submittedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		sub.JobID = uint64(jobID)
		when, err := time.Parse(time.RFC3339, submittedAt)
		if err != nil {
			return nil, fmt.Errorf("parse submission timestamp %q: %w", submittedAt, err)
		}
		sub.SubmittedAt = when
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return subs, nil
}
