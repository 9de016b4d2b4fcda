package store

import (
	"context"

	"github.com/yapay-ai/model-scout/pkg/model"
)

// Storage defines the persistence layer for scrape history and parse
// failure records.
type Storage interface {
	// RecordRun persists a completed scrape run.
	RecordRun(ctx context.Context, run *model.ScrapeRun) error

	// ListRuns returns the most recent scrape runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]model.ScrapeRun, error)

	// RecordFailure persists one parse failure with its raw input.
	RecordFailure(ctx context.Context, failure *model.ParseFailure) error

	// ListFailures returns the most recent parse failures, newest first.
	ListFailures(ctx context.Context, limit int) ([]model.ParseFailure, error)

	// Close releases resources.
	Close() error
}
