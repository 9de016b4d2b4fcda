package catalog

import "strings"

// Parsed holds the raw fields recovered from one model description string.
// Cost is the raw token between the parentheses, not yet normalized.
type Parsed struct {
	Provider string
	Name     string
	Cost     string
}

// A strategy attempts to extract fields from one description format.
// It reports false when the format does not apply, letting the next
// strategy try. Adding a format is a pure addition to the list.
type strategy func(desc string) (Parsed, bool)

var strategies = []strategy{
	parseColonFormat,
	parseSpaceFormat,
	parseBare,
}

// ParseDescription extracts provider, model name, and cost token from a
// free-text description. Strategies are tried in order and the first
// match wins. It never fails: malformed input degrades to placeholder
// fields with the cost sentinel.
func ParseDescription(desc string) Parsed {
	desc = strings.TrimSpace(strings.Trim(strings.TrimSpace(desc), `'"`))

	for _, s := range strategies {
		if p, ok := s(desc); ok {
			return p
		}
	}
	// parseBare always matches; this is unreachable but keeps the
	// contract explicit.
	return Parsed{Provider: Unknown, Name: desc, Cost: CostUnknown}
}

// parseColonFormat handles "Provider: Model Name (extras) (cost)".
// The provider is everything before the first colon. The cost token is
// the LAST parenthesized group, so earlier groups such as "(thinking)"
// or "(free)" stay part of the model name.
func parseColonFormat(desc string) (Parsed, bool) {
	idx := strings.Index(desc, ":")
	if idx < 0 {
		return Parsed{}, false
	}

	provider := strings.TrimSpace(desc[:idx])
	remaining := strings.TrimSpace(desc[idx+1:])

	name, cost := splitTrailingCost(remaining)
	return Parsed{Provider: provider, Name: name, Cost: cost}, true
}

// splitTrailingCost separates the last parenthesized group from the
// remaining text. When no group exists the whole text is the name and
// the cost is unknown.
func splitTrailingCost(text string) (name, cost string) {
	start := strings.LastIndex(text, "(")
	if start < 0 {
		return text, CostUnknown
	}

	name = strings.TrimSpace(text[:start])
	costPart := text[start:]
	if strings.HasPrefix(costPart, "(") && strings.HasSuffix(costPart, ")") {
		cost = costPart[1 : len(costPart)-1]
	} else {
		cost = costPart
	}
	return name, cost
}

// parseSpaceFormat handles "Provider Model Name (cost)". The first
// whitespace-delimited token is taken as the provider. This heuristic
// misattributes multi-word provider-less names ("Midnight Rose 70B"
// yields provider "Midnight"); that ambiguity is inherent to the source
// format and deliberately not papered over.
func parseSpaceFormat(desc string) (Parsed, bool) {
	fields := strings.Fields(desc)
	if len(fields) < 2 {
		return Parsed{}, false
	}

	provider := fields[0]
	rest := fields[1:]

	cost := CostUnknown
	if last := rest[len(rest)-1]; strings.HasPrefix(last, "(") && strings.HasSuffix(last, ")") {
		cost = last[1 : len(last)-1]
		rest = rest[:len(rest)-1]
	}

	return Parsed{Provider: provider, Name: strings.Join(rest, " "), Cost: cost}, true
}

// parseBare is the last-resort strategy: whatever is left becomes the
// model name so that the pipeline always produces a record.
func parseBare(desc string) (Parsed, bool) {
	return Parsed{Provider: Unknown, Name: desc, Cost: CostUnknown}, true
}
