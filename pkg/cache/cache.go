// Package cache persists the scraped catalog as a day-keyed flat file.
// If a file for today already exists and is non-empty the scrape is
// skipped and the file is loaded directly: memoization by day, not a
// general cache. At most one process writes a given dated file; there
// is no locking against concurrent external writers.
package cache

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/yapay-ai/model-scout/pkg/catalog"
)

// header is the fixed column set of the dated snapshot file.
var header = []string{
	"name", "provider", "description", "category",
	"pricing", "context_length", "model_url", "provider_url",
}

// Store reads and writes dated catalog snapshot files under one directory.
type Store struct {
	dir string
	th  catalog.Thresholds
}

// NewStore creates a snapshot store rooted at dir. Thresholds are used
// to re-derive pricing tiers when loading.
func NewStore(dir string, th catalog.Thresholds) *Store {
	return &Store{dir: dir, th: th}
}

// Path returns the deterministic snapshot file name for the given date.
func (s *Store) Path(date time.Time) string {
	return filepath.Join(s.dir, fmt.Sprintf("openrouter-models-%s.csv", date.Format("2006-01-02")))
}

// Has reports whether a non-empty snapshot exists for the given date.
func (s *Store) Has(date time.Time) bool {
	info, err := os.Stat(s.Path(date))
	return err == nil && info.Size() > 0
}

// Write stores the records as the dated snapshot, replacing any
// existing file for that date.
func (s *Store) Write(date time.Time, records []catalog.Record) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	path := s.Path(date)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(header); err != nil {
		return fmt.Errorf("write snapshot header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Name,
			r.Provider,
			r.Description,
			string(r.Category),
			r.Cost,
			strconv.Itoa(r.ContextLength),
			r.ModelURL,
			r.ProviderURL,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write snapshot row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush snapshot: %w", err)
	}
	return nil
}

// Load reads the dated snapshot and rebuilds normalized records.
// Derived fields (numeric cost, free flag, capability tags) are
// recomputed from the stored columns.
func (s *Store) Load(date time.Time) ([]catalog.Record, error) {
	path := s.Path(date)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = len(header)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("snapshot %s: empty file", path)
	}
	if !equalHeader(rows[0]) {
		return nil, fmt.Errorf("snapshot %s: unexpected header %v", path, rows[0])
	}

	records := make([]catalog.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, rowToRecord(row, s.th))
	}
	return records, nil
}

func equalHeader(row []string) bool {
	if len(row) != len(header) {
		return false
	}
	for i := range header {
		if row[i] != header[i] {
			return false
		}
	}
	return true
}

func rowToRecord(row []string, th catalog.Thresholds) catalog.Record {
	cost := row[4]
	rate, free, known := catalog.ParseCost(cost)
	numeric := rate
	if !known {
		cost = catalog.CostUnknown
		numeric = -1
	}

	ctxLen, _ := strconv.Atoi(row[5])

	return catalog.Record{
		Name:          row[0],
		Provider:      row[1],
		Description:   row[2],
		Category:      catalog.Category(row[3]),
		Cost:          cost,
		NumericCost:   numeric,
		IsFree:        free,
		ContextLength: ctxLen,
		Tags:          catalog.InferTags(row[0]),
		ModelURL:      row[6],
		ProviderURL:   row[7],
	}
}
