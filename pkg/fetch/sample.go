package fetch

import (
	"context"
	"fmt"

	"github.com/yapay-ai/model-scout/pkg/catalog"
)

// SampleSource serves the bundled static dataset. Placed last in the
// source chain it guarantees a scrape never comes back empty.
type SampleSource struct{}

// NewSampleSource creates the bundled sample source.
func NewSampleSource() *SampleSource { return &SampleSource{} }

func (s *SampleSource) Name() string { return "sample" }

func (s *SampleSource) Fetch(_ context.Context) ([]Entry, error) {
	records, err := catalog.SampleRecords(catalog.DefaultThresholds)
	if err != nil {
		return nil, fmt.Errorf("load sample dataset: %w", err)
	}

	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, Entry{
			ID:            r.ID,
			Description:   r.Description,
			ContextLength: r.ContextLength,
			ModelURL:      r.ModelURL,
			ProviderURL:   r.ProviderURL,
		})
	}
	return entries, nil
}
