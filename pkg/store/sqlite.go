package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/yapay-ai/model-scout/pkg/model"

	_ "modernc.org/sqlite"
)

// SQLite implements the Storage interface using an SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens or creates an SQLite database at the given path.
func NewSQLite(dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for concurrent reads
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) RecordRun(ctx context.Context, run *model.ScrapeRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now().UTC()
	}
	if run.Date == "" {
		run.Date = run.Timestamp.Format("2006-01-02")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scrape_runs (id, source, record_count, failure_count, date, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Source, run.RecordCount, run.FailureCount, run.Date, run.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert scrape run: %w", err)
	}
	return nil
}

func (s *SQLite) ListRuns(ctx context.Context, limit int) ([]model.ScrapeRun, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, record_count, failure_count, date, timestamp
		 FROM scrape_runs ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list scrape runs: %w", err)
	}
	defer rows.Close()

	var runs []model.ScrapeRun
	for rows.Next() {
		var r model.ScrapeRun
		if err := rows.Scan(&r.ID, &r.Source, &r.RecordCount, &r.FailureCount, &r.Date, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scan scrape run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *SQLite) RecordFailure(ctx context.Context, failure *model.ParseFailure) error {
	if failure.ID == "" {
		failure.ID = uuid.New().String()
	}
	if failure.Timestamp.IsZero() {
		failure.Timestamp = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO parse_failures (id, run_id, raw_input, reason, timestamp)
		 VALUES (?, ?, ?, ?, ?)`,
		failure.ID, failure.RunID, failure.RawInput, failure.Reason, failure.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert parse failure: %w", err)
	}
	return nil
}

func (s *SQLite) ListFailures(ctx context.Context, limit int) ([]model.ParseFailure, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, raw_input, reason, timestamp
		 FROM parse_failures ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list parse failures: %w", err)
	}
	defer rows.Close()

	var failures []model.ParseFailure
	for rows.Next() {
		var f model.ParseFailure
		if err := rows.Scan(&f.ID, &f.RunID, &f.RawInput, &f.Reason, &f.Timestamp); err != nil {
			return nil, fmt.Errorf("scan parse failure: %w", err)
		}
		failures = append(failures, f)
	}
	return failures, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
