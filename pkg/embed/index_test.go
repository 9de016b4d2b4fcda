package embed_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yapay-ai/model-scout/pkg/catalog"
	"github.com/yapay-ai/model-scout/pkg/embed"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeEncoder maps known texts to fixed vectors so similarity ordering
// is deterministic without a live embedding model.
type fakeEncoder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEncoder) Encode(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, ok := f.vectors[t]
		if !ok {
			v = []float32{0, 0, 1}
		}
		out[i] = v
	}
	return out, nil
}

func testRecords() []catalog.Record {
	return []catalog.Record{
		catalog.FromDescription("qwen/coder", "Qwen: Qwen2.5 Coder 32B Instruct ($0.18/1M)", catalog.DefaultThresholds),
		catalog.FromDescription("openai/gpt-4o", "OpenAI: GPT-4o ($2.5/1M)", catalog.DefaultThresholds),
		catalog.FromDescription("mistral/free", "Mistral: Mistral 7B Instruct (free)", catalog.DefaultThresholds),
	}
}

func TestBuildIndex_AndSearch(t *testing.T) {
	records := testRecords()
	enc := &fakeEncoder{vectors: map[string][]float32{
		embed.Sentence(records[0]): {1, 0, 0},
		embed.Sentence(records[1]): {0, 1, 0},
		embed.Sentence(records[2]): {0.9, 0.1, 0},
		"coding model":             {1, 0, 0},
	}}

	ix, err := embed.BuildIndex(context.Background(), enc, records, testLogger())
	require.NoError(t, err)
	assert.Equal(t, 3, ix.Size())

	results, err := ix.Search(context.Background(), "coding model", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "qwen/coder", results[0].Record.ID)
	assert.Equal(t, "mistral/free", results[1].Record.ID)
	assert.Greater(t, results[0].Similarity, results[1].Similarity)
}

func TestSearch_DescendingOrder(t *testing.T) {
	records := testRecords()
	enc := &fakeEncoder{vectors: map[string][]float32{}}

	ix, err := embed.BuildIndex(context.Background(), enc, records, testLogger())
	require.NoError(t, err)

	results, err := ix.Search(context.Background(), "anything", 10)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Similarity, results[i].Similarity)
	}
}

func TestSearch_TiesKeepRecordOrder(t *testing.T) {
	records := testRecords()
	// All sentences map to the same vector: every similarity ties, so
	// the stable sort must preserve the original record order.
	enc := &fakeEncoder{vectors: map[string][]float32{}}

	ix, err := embed.BuildIndex(context.Background(), enc, records, testLogger())
	require.NoError(t, err)

	results, err := ix.Search(context.Background(), "query", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, records[0].ID, results[0].Record.ID)
	assert.Equal(t, records[1].ID, results[1].Record.ID)
	assert.Equal(t, records[2].ID, results[2].Record.ID)
}

func TestSearch_TopKBounds(t *testing.T) {
	records := testRecords()
	enc := &fakeEncoder{vectors: map[string][]float32{}}

	ix, err := embed.BuildIndex(context.Background(), enc, records, testLogger())
	require.NoError(t, err)

	// k larger than the record count returns everything
	results, err := ix.Search(context.Background(), "q", 100)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	// k <= 0 falls back to the default
	results, err = ix.Search(context.Background(), "q", 0)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestBuildIndex_EncoderFailure(t *testing.T) {
	enc := &fakeEncoder{err: fmt.Errorf("model unavailable")}
	_, err := embed.BuildIndex(context.Background(), enc, testRecords(), testLogger())
	assert.Error(t, err)
}

func TestBuildIndex_NilEncoder(t *testing.T) {
	_, err := embed.BuildIndex(context.Background(), nil, testRecords(), testLogger())
	assert.Error(t, err)
}

func TestSentence(t *testing.T) {
	r := catalog.FromDescription("qwen/coder", "Qwen: Qwen2.5 Coder 32B Instruct ($0.18/1M)", catalog.DefaultThresholds)
	s := embed.Sentence(r)

	assert.Contains(t, s, "Qwen2.5 Coder 32B Instruct by Qwen")
	assert.Contains(t, s, "Cost: $0.18/1M")
	assert.Contains(t, s, "Paid model")
	assert.Contains(t, s, "API: qwen/coder")
	assert.Contains(t, s, "code generation")
	assert.Contains(t, s, "instruction following")
}

func TestSentence_FreeModel(t *testing.T) {
	r := catalog.FromDescription("", "Mistral: Mistral 7B Instruct (free)", catalog.DefaultThresholds)
	s := embed.Sentence(r)

	assert.Contains(t, s, "Free model")
	assert.NotContains(t, s, "API:")
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, int64(0), embed.EstimateTokens(""))
	assert.Greater(t, embed.EstimateTokens("GPT-4o by OpenAI. Cost: $2.5/1M."), int64(0))
}

func TestEstimateCostUSD(t *testing.T) {
	assert.Equal(t, 0.0, embed.EstimateCostUSD(0))
	assert.InDelta(t, 0.02, embed.EstimateCostUSD(1_000_000), 1e-9)
}
