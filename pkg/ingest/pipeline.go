// Package ingest orchestrates one scrape pass: fetch raw catalog
// entries, normalize them into records, persist the dated snapshot,
// and record the run in history. A snapshot that already exists for
// the day short-circuits the whole pass; no network request is made.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yapay-ai/model-scout/pkg/alerts"
	"github.com/yapay-ai/model-scout/pkg/cache"
	"github.com/yapay-ai/model-scout/pkg/catalog"
	"github.com/yapay-ai/model-scout/pkg/fetch"
	"github.com/yapay-ai/model-scout/pkg/model"
	"github.com/yapay-ai/model-scout/pkg/store"
)

// Result is the outcome of one pipeline run.
type Result struct {
	Records   []catalog.Record
	Source    string
	FromCache bool
	Failures  int
}

// Pipeline wires the fetcher, normalizer, snapshot cache, and run
// history together. Storage and notifier are optional; a nil storage
// skips history recording and a nil notifier skips alerts.
type Pipeline struct {
	fetcher  *fetch.Fetcher
	cache    *cache.Store
	storage  store.Storage
	notifier alerts.Notifier
	th       catalog.Thresholds
	logger   *slog.Logger
}

// NewPipeline creates a pipeline with the given dependencies.
func NewPipeline(fetcher *fetch.Fetcher, cacheStore *cache.Store, storage store.Storage, notifier alerts.Notifier, th catalog.Thresholds, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		fetcher:  fetcher,
		cache:    cacheStore,
		storage:  storage,
		notifier: notifier,
		th:       th,
		logger:   logger,
	}
}

// Run executes one scrape pass keyed to today's date.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	return p.RunDate(ctx, time.Now().UTC())
}

// RunDate executes one scrape pass keyed to the given date. When a
// non-empty snapshot for that date already exists it is loaded and
// returned directly.
func (p *Pipeline) RunDate(ctx context.Context, date time.Time) (*Result, error) {
	if p.cache.Has(date) {
		records, err := p.cache.Load(date)
		if err != nil {
			return nil, fmt.Errorf("load cached snapshot: %w", err)
		}
		p.logger.Info("snapshot cache hit",
			"date", date.Format("2006-01-02"),
			"records", len(records),
		)
		return &Result{Records: records, Source: "cache", FromCache: true}, nil
	}

	entries, source, err := p.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	runID := uuid.New().String()
	records := make([]catalog.Record, 0, len(entries))
	failures := 0
	for _, e := range entries {
		rec, reason := p.normalize(e)
		if reason != "" {
			failures++
			p.recordFailure(ctx, runID, e.Description, reason)
		}
		records = append(records, rec)
	}

	if err := p.cache.Write(date, records); err != nil {
		return nil, fmt.Errorf("write snapshot: %w", err)
	}

	p.recordRun(ctx, &model.ScrapeRun{
		ID:           runID,
		Source:       source,
		RecordCount:  int64(len(records)),
		FailureCount: int64(failures),
		Date:         date.Format("2006-01-02"),
		Timestamp:    time.Now().UTC(),
	})

	p.logger.Info("scrape completed",
		"source", source,
		"records", len(records),
		"failures", failures,
		"date", date.Format("2006-01-02"),
	)

	p.alert(ctx, source, date, len(records), failures)

	return &Result{Records: records, Source: source, Failures: failures}, nil
}

// normalize converts one raw entry into a record. It never drops the
// entry: degraded fields keep their sentinels and the reason is
// reported for the failure log.
func (p *Pipeline) normalize(e fetch.Entry) (catalog.Record, string) {
	rec := catalog.FromDescription(e.ID, e.Description, p.th)
	if e.ContextLength > 0 {
		rec.ContextLength = e.ContextLength
	}
	if e.ModelURL != "" {
		rec.ModelURL = e.ModelURL
	}
	if e.ProviderURL != "" {
		rec.ProviderURL = e.ProviderURL
	}

	var reasons []string
	if rec.Provider == catalog.Unknown {
		reasons = append(reasons, "provider unresolved")
	}
	if rec.Cost == catalog.CostUnknown {
		reasons = append(reasons, "cost unparsable")
	}
	return rec, strings.Join(reasons, "; ")
}

func (p *Pipeline) recordRun(ctx context.Context, run *model.ScrapeRun) {
	if p.storage == nil {
		return
	}
	if err := p.storage.RecordRun(ctx, run); err != nil {
		p.logger.Error("record scrape run failed", "error", err)
	}
}

func (p *Pipeline) recordFailure(ctx context.Context, runID, raw, reason string) {
	if p.storage == nil {
		return
	}
	failure := &model.ParseFailure{
		RunID:     runID,
		RawInput:  raw,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}
	if err := p.storage.RecordFailure(ctx, failure); err != nil {
		p.logger.Error("record parse failure failed", "error", err)
	}
}

// alert notifies when a scrape degraded: critically when live sources
// failed and the bundled sample was served, as a warning when some
// descriptions failed to parse. Notifier errors are logged, never fatal.
func (p *Pipeline) alert(ctx context.Context, source string, date time.Time, records, failures int) {
	if p.notifier == nil {
		return
	}

	var a alerts.Alert
	switch {
	case source == "sample":
		a = alerts.Alert{
			Level:       alerts.AlertCritical,
			Source:      source,
			Date:        date.Format("2006-01-02"),
			RecordCount: records,
			Message:     "live catalog sources unavailable, serving bundled sample",
		}
	case failures > 0:
		a = alerts.Alert{
			Level:        alerts.AlertWarning,
			Source:       source,
			Date:         date.Format("2006-01-02"),
			RecordCount:  records,
			FailureCount: failures,
			Message:      fmt.Sprintf("%d descriptions degraded to sentinel fields", failures),
		}
	default:
		return
	}

	if err := p.notifier.Send(ctx, a); err != nil {
		p.logger.Error("scrape alert failed", "notifier", p.notifier.Name(), "error", err)
	}
}
