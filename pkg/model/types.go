package model

import "time"

// ScrapeRun records one completed scrape pass: where the data came
// from and how many entries survived normalization.
type ScrapeRun struct {
	ID           string    `json:"id" db:"id"`
	Source       string    `json:"source" db:"source"`
	RecordCount  int64     `json:"record_count" db:"record_count"`
	FailureCount int64     `json:"failure_count" db:"failure_count"`
	Date         string    `json:"date" db:"date"`
	Timestamp    time.Time `json:"timestamp" db:"timestamp"`
}

// ParseFailure retains the raw input of an entry that could not be
// fully parsed, for later analysis. The entry itself is degraded to
// sentinel values and kept in the batch; it is never dropped silently.
type ParseFailure struct {
	ID        string    `json:"id" db:"id"`
	RunID     string    `json:"run_id" db:"run_id"`
	RawInput  string    `json:"raw_input" db:"raw_input"`
	Reason    string    `json:"reason" db:"reason"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}
