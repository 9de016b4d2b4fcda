package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleData []byte

type sampleFile struct {
	Updated string        `yaml:"updated"`
	Models  []sampleEntry `yaml:"models"`
}

type sampleEntry struct {
	ID            string `yaml:"id"`
	Description   string `yaml:"description"`
	ContextLength int    `yaml:"context_length"`
	ModelURL      string `yaml:"model_url"`
	ProviderURL   string `yaml:"provider_url"`
}

// SampleRecords returns the bundled static dataset. It is the last-resort
// fallback when both the network and the snapshot cache are unavailable,
// guaranteeing that the pipeline always produces a non-empty result.
func SampleRecords(th Thresholds) ([]Record, error) {
	var f sampleFile
	if err := yaml.Unmarshal(sampleData, &f); err != nil {
		return nil, fmt.Errorf("parse sample dataset: %w", err)
	}
	if len(f.Models) == 0 {
		return nil, fmt.Errorf("sample dataset: no models defined")
	}

	records := make([]Record, 0, len(f.Models))
	for _, e := range f.Models {
		r := FromDescription(e.ID, e.Description, th)
		r.ContextLength = e.ContextLength
		r.ModelURL = e.ModelURL
		r.ProviderURL = e.ProviderURL
		records = append(records, r)
	}
	return records, nil
}
