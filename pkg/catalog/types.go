package catalog

import (
	"fmt"
	"strings"
)

// CostUnknown is the sentinel used when a cost token cannot be parsed.
// It is distinct from an empty value: the field was seen but not understood.
const CostUnknown = "Unknown"

// Unknown is the placeholder for provider or model names that could not
// be recovered from a description.
const Unknown = "Unknown"

// Category buckets a record into a pricing tier.
type Category string

const (
	CategoryFree     Category = "Free"
	CategoryBudget   Category = "Budget"
	CategoryStandard Category = "Standard"
	CategoryPremium  Category = "Premium"
	CategoryUnknown  Category = "Unknown"
)

// Thresholds define the pricing tier boundaries in USD per million tokens.
type Thresholds struct {
	// BudgetMax is the highest per-million rate still considered Budget.
	BudgetMax float64
	// PremiumMin is the rate above which a model is considered Premium.
	PremiumMin float64
}

// DefaultThresholds matches the rates observed on the OpenRouter catalog.
var DefaultThresholds = Thresholds{
	BudgetMax:  0.5,
	PremiumMin: 5.0,
}

// Record is one normalized catalog entry. Records are immutable value
// objects: each scrape pass produces a fresh slice and supersedes the
// previous one.
type Record struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Provider      string   `json:"provider"`
	Cost          string   `json:"cost"`
	NumericCost   float64  `json:"numeric_cost"`
	IsFree        bool     `json:"is_free"`
	Category      Category `json:"category"`
	Description   string   `json:"description"`
	ContextLength int      `json:"context_length,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	ModelURL      string   `json:"model_url,omitempty"`
	ProviderURL   string   `json:"provider_url,omitempty"`
}

// String returns the canonical description form. Reparsing it recovers
// the same provider, name, and cost fields.
func (r Record) String() string {
	return fmt.Sprintf("%s: %s (%s)", r.Provider, r.Name, r.Cost)
}

// Filter selects records for listing and substring search.
type Filter struct {
	Provider  string   `json:"provider,omitempty"`
	Category  Category `json:"category,omitempty"`
	FreeOnly  bool     `json:"free_only,omitempty"`
	Substring string   `json:"substring,omitempty"`
}

// Matches reports whether a record satisfies the filter.
func (f Filter) Matches(r Record) bool {
	if f.Provider != "" && !strings.EqualFold(r.Provider, f.Provider) {
		return false
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.FreeOnly && !r.IsFree {
		return false
	}
	if f.Substring != "" {
		needle := strings.ToLower(f.Substring)
		if !strings.Contains(strings.ToLower(r.Name), needle) &&
			!strings.Contains(strings.ToLower(r.Provider), needle) &&
			!strings.Contains(strings.ToLower(r.Description), needle) {
			return false
		}
	}
	return true
}

// Apply returns the records matching the filter, preserving input order.
func Apply(records []Record, f Filter) []Record {
	var out []Record
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
