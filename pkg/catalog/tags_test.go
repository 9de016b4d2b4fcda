package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yapay-ai/model-scout/pkg/catalog"
)

func TestInferTags(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"Qwen2.5 Coder 32B Instruct", []string{catalog.TagCode, catalog.TagChat}},
		{"Qwen2-VL 72B Instruct", []string{catalog.TagVision, catalog.TagChat}},
		{"GPT-4o Vision", []string{catalog.TagVision}},
		{"DeepSeek V3 Chat", []string{catalog.TagChat}},
		{"GPT-4o", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, catalog.InferTags(tt.name), "name %q", tt.name)
	}
}

func TestSampleRecords(t *testing.T) {
	records, err := catalog.SampleRecords(catalog.DefaultThresholds)
	assert.NoError(t, err)
	assert.NotEmpty(t, records)

	for _, r := range records {
		assert.NotEmpty(t, r.Provider, "record %q", r.Description)
		assert.NotEmpty(t, r.Name, "record %q", r.Description)
	}

	// The bundled data covers both free and paid tiers so downstream
	// filters stay exercised even in fallback mode.
	free := catalog.Apply(records, catalog.Filter{FreeOnly: true})
	assert.NotEmpty(t, free)
	paid := catalog.Apply(records, catalog.Filter{Category: catalog.CategoryPremium})
	assert.NotEmpty(t, paid)
}
