package cache_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yapay-ai/model-scout/pkg/cache"
	"github.com/yapay-ai/model-scout/pkg/catalog"
)

var testDate = time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

func testRecords(t *testing.T) []catalog.Record {
	t.Helper()
	descs := []string{
		"OpenAI: GPT-4o ($2.5/1M)",
		"Mistral: Magistral Medium 2506 (thinking) ($0.000002/1M)",
		"Mistral: Mistral 7B Instruct (free)",
	}
	records := make([]catalog.Record, 0, len(descs))
	for _, d := range descs {
		r := catalog.FromDescription("", d, catalog.DefaultThresholds)
		r.ContextLength = 32768
		r.ModelURL = "https://openrouter.ai/test"
		records = append(records, r)
	}
	return records
}

func TestStore_PathIsDeterministic(t *testing.T) {
	s := cache.NewStore("/data/models", catalog.DefaultThresholds)
	assert.Equal(t, "/data/models/openrouter-models-2026-08-23.csv", s.Path(testDate))
	assert.Equal(t, s.Path(testDate), s.Path(testDate))
}

func TestStore_WriteThenLoadRoundTrip(t *testing.T) {
	s := cache.NewStore(t.TempDir(), catalog.DefaultThresholds)
	records := testRecords(t)

	require.NoError(t, s.Write(testDate, records))
	require.True(t, s.Has(testDate))

	loaded, err := s.Load(testDate)
	require.NoError(t, err)
	require.Len(t, loaded, len(records))

	for i, r := range records {
		assert.Equal(t, r.Name, loaded[i].Name)
		assert.Equal(t, r.Provider, loaded[i].Provider)
		assert.Equal(t, r.Cost, loaded[i].Cost)
		assert.Equal(t, r.Category, loaded[i].Category)
		assert.Equal(t, r.IsFree, loaded[i].IsFree)
		assert.Equal(t, r.Description, loaded[i].Description)
		assert.Equal(t, r.ContextLength, loaded[i].ContextLength)
	}
}

func TestStore_RewriteProducesIdenticalContent(t *testing.T) {
	s := cache.NewStore(t.TempDir(), catalog.DefaultThresholds)
	records := testRecords(t)

	require.NoError(t, s.Write(testDate, records))
	first, err := os.ReadFile(s.Path(testDate))
	require.NoError(t, err)

	require.NoError(t, s.Write(testDate, records))
	second, err := os.ReadFile(s.Path(testDate))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStore_HasIsFalseForMissingOrEmpty(t *testing.T) {
	dir := t.TempDir()
	s := cache.NewStore(dir, catalog.DefaultThresholds)

	assert.False(t, s.Has(testDate))

	require.NoError(t, os.WriteFile(s.Path(testDate), nil, 0o644))
	assert.False(t, s.Has(testDate))
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := cache.NewStore(t.TempDir(), catalog.DefaultThresholds)
	_, err := s.Load(testDate)
	assert.Error(t, err)
}

func TestStore_LoadRejectsWrongHeader(t *testing.T) {
	dir := t.TempDir()
	s := cache.NewStore(dir, catalog.DefaultThresholds)
	require.NoError(t, os.WriteFile(s.Path(testDate), []byte("a\tb\tc\n"), 0o644))

	_, err := s.Load(testDate)
	assert.Error(t, err)
}

func TestStore_DifferentDatesAreIndependent(t *testing.T) {
	s := cache.NewStore(t.TempDir(), catalog.DefaultThresholds)
	require.NoError(t, s.Write(testDate, testRecords(t)))

	tomorrow := testDate.AddDate(0, 0, 1)
	assert.False(t, s.Has(tomorrow))
	assert.True(t, s.Has(testDate))
}
