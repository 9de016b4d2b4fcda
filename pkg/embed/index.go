package embed

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/yapay-ai/model-scout/pkg/catalog"
)

// Index holds the encoded vectors for a fixed record set. It is built
// once per dataset and read-only afterwards; the next scrape builds a
// fresh index rather than mutating this one.
type Index struct {
	encoder Encoder
	records []catalog.Record
	vectors [][]float32
}

// Result pairs a record with its similarity to the query.
type Result struct {
	Record     catalog.Record `json:"record"`
	Similarity float64        `json:"similarity"`
}

// BuildIndex encodes one sentence per record. The token volume sent to
// the encoder is estimated and logged up front so operators can see the
// embedding cost of a dataset before it is incurred.
func BuildIndex(ctx context.Context, encoder Encoder, records []catalog.Record, logger *slog.Logger) (*Index, error) {
	if encoder == nil {
		return nil, fmt.Errorf("build index: no encoder configured")
	}

	sentences := make([]string, len(records))
	var tokens int64
	for i, r := range records {
		sentences[i] = Sentence(r)
		tokens += EstimateTokens(sentences[i])
	}
	logger.Info("encoding catalog",
		"records", len(records),
		"tokens", tokens,
		"estimated_cost_usd", EstimateCostUSD(tokens),
	)

	vectors, err := encoder.Encode(ctx, sentences)
	if err != nil {
		return nil, fmt.Errorf("encode catalog sentences: %w", err)
	}
	if len(vectors) != len(records) {
		return nil, fmt.Errorf("encoder returned %d vectors for %d records", len(vectors), len(records))
	}

	return &Index{encoder: encoder, records: records, vectors: vectors}, nil
}

// Size returns the number of indexed records.
func (ix *Index) Size() int { return len(ix.records) }

// Search encodes the query and returns the top-k records by cosine
// similarity, descending. Ties keep the original record order.
func (ix *Index) Search(ctx context.Context, query string, k int) ([]Result, error) {
	if k <= 0 {
		k = 5
	}

	qv, err := ix.encoder.Encode(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}
	if len(qv) != 1 {
		return nil, fmt.Errorf("encoder returned %d vectors for one query", len(qv))
	}

	results := make([]Result, len(ix.records))
	for i := range ix.records {
		results[i] = Result{
			Record:     ix.records[i],
			Similarity: cosine(qv[0], ix.vectors[i]),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

// cosine computes cosine similarity between two vectors. Mismatched or
// zero-magnitude vectors score zero.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
