package catalog

import "strings"

// Capability tags inferred from model names.
const (
	TagVision = "vision"
	TagCode   = "code"
	TagChat   = "chat"
)

// tagHints maps a capability tag to the name substrings that suggest it.
var tagHints = []struct {
	tag   string
	hints []string
}{
	{TagVision, []string{"vision", "vl"}},
	{TagCode, []string{"code", "coder"}},
	{TagChat, []string{"chat", "instruct"}},
}

// InferTags returns capability tags guessed from substrings of the model
// name. No ground-truth capability schema exists in the source data, so
// these are advisory annotations only, not verified facts.
func InferTags(name string) []string {
	lower := strings.ToLower(name)

	var tags []string
	for _, h := range tagHints {
		for _, hint := range h.hints {
			if strings.Contains(lower, hint) {
				tags = append(tags, h.tag)
				break
			}
		}
	}
	return tags
}
