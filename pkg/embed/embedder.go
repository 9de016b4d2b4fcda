// Package embed provides an optional semantic search capability over
// catalog records. Records are rendered into descriptive sentences,
// encoded into fixed-length dense vectors by a black-box sentence
// encoder, and ranked against a query by cosine similarity. When no
// encoder is configured the capability is disabled and substring
// filtering remains the only search path.
package embed

import (
	"context"
	"fmt"
	"strings"

	"github.com/yapay-ai/model-scout/pkg/catalog"
)

// Encoder converts texts into fixed-length dense vectors. It is treated
// as a black box; the call blocks until the underlying model responds.
type Encoder interface {
	// Encode returns one vector per input text, in input order.
	Encode(ctx context.Context, texts []string) ([][]float32, error)
}

// Sentence builds the descriptive text that represents one record in
// the index: name, provider, cost, free/paid, and capability hints
// inferred from the lowercase model name.
func Sentence(r catalog.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s by %s. ", r.Name, r.Provider)
	fmt.Fprintf(&b, "Cost: %s. ", r.Cost)
	if r.IsFree {
		b.WriteString("Free model. ")
	} else {
		b.WriteString("Paid model. ")
	}
	if r.ID != "" {
		fmt.Fprintf(&b, "API: %s. ", r.ID)
	}

	lower := strings.ToLower(r.Name)
	if strings.Contains(lower, "vision") || strings.Contains(lower, "vl") {
		b.WriteString("Supports vision and image analysis. ")
	}
	if strings.Contains(lower, "code") || strings.Contains(lower, "coder") {
		b.WriteString("Optimized for code generation and programming. ")
	}
	if strings.Contains(lower, "chat") || strings.Contains(lower, "instruct") {
		b.WriteString("Designed for conversation and instruction following. ")
	}
	if strings.Contains(lower, "large") {
		b.WriteString("Large model with high capability. ")
	}
	if strings.Contains(lower, "mini") || strings.Contains(lower, "small") {
		b.WriteString("Compact model for efficiency. ")
	}
	if strings.Contains(lower, "thinking") {
		b.WriteString("Advanced reasoning and thinking capabilities. ")
	}

	return strings.TrimSpace(b.String())
}
