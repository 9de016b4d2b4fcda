package embed

import (
	"strings"

	"github.com/tiktoken-go/tokenizer"
)

// embeddingCostPerMillion is the list price of the default embedding
// model in USD per million tokens.
const embeddingCostPerMillion = 0.02

// EstimateTokens returns the token count of text under the cl100k_base
// encoding used by the embedding models. When the encoding cannot be
// loaded it falls back to character-based estimation.
func EstimateTokens(text string) int64 {
	enc, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return estimateTokens(text)
	}

	ids, _, err := enc.Encode(text)
	if err != nil {
		return estimateTokens(text)
	}
	return int64(len(ids))
}

// EstimateCostUSD converts a token count into an embedding cost
// estimate at the default model's rate.
func EstimateCostUSD(tokens int64) float64 {
	return float64(tokens) * embeddingCostPerMillion / 1_000_000
}

// estimateTokens uses character-based estimation (4 chars per token on
// average) as a fallback.
func estimateTokens(text string) int64 {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return 0
	}
	return int64((len(text) + 3) / 4)
}
