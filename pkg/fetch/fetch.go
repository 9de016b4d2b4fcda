package fetch

import (
	"context"
	"fmt"
	"log/slog"
)

// Entry is one raw catalog row as retrieved from a source, before
// parsing and normalization.
type Entry struct {
	ID            string
	Description   string
	ContextLength int
	ModelURL      string
	ProviderURL   string
}

// Source retrieves raw catalog entries from one origin (remote API,
// local snapshot, bundled sample).
type Source interface {
	// Name returns the source identifier (e.g., "api", "snapshot").
	Name() string

	// Fetch retrieves raw entries. It blocks until complete; failures
	// are surfaced to the caller, no retries are attempted.
	Fetch(ctx context.Context) ([]Entry, error)
}

// Fetcher tries sources in order and returns the first non-empty
// result. Each failure is logged and the next source is tried, so a
// network outage degrades to the snapshot or the bundled sample rather
// than aborting the scrape.
type Fetcher struct {
	sources []Source
	logger  *slog.Logger
}

// NewFetcher creates a fetcher over an ordered list of sources.
func NewFetcher(logger *slog.Logger, sources ...Source) *Fetcher {
	return &Fetcher{sources: sources, logger: logger}
}

// Fetch returns the entries from the first source that succeeds, along
// with that source's name.
func (f *Fetcher) Fetch(ctx context.Context) ([]Entry, string, error) {
	for _, src := range f.sources {
		entries, err := src.Fetch(ctx)
		if err != nil {
			f.logger.Warn("catalog source failed", "source", src.Name(), "error", err)
			continue
		}
		if len(entries) == 0 {
			f.logger.Warn("catalog source returned no entries", "source", src.Name())
			continue
		}
		f.logger.Info("catalog fetched", "source", src.Name(), "entries", len(entries))
		return entries, src.Name(), nil
	}
	return nil, "", fmt.Errorf("all catalog sources failed")
}
