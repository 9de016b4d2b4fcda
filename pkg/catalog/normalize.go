package catalog

import (
	"strconv"
	"strings"
)

// ParseCost converts a raw cost token into a per-million-token rate.
// "free" (any case) and tokens that parse to zero report free=true.
// ok=false means the token could not be understood and the sentinel
// should be preserved.
func ParseCost(token string) (rate float64, free bool, ok bool) {
	t := strings.TrimSpace(token)
	if t == "" || strings.EqualFold(t, CostUnknown) {
		return 0, false, false
	}
	if strings.EqualFold(t, "free") {
		return 0, true, true
	}

	s := strings.TrimPrefix(t, "$")
	if n := len(s); n >= 3 && strings.EqualFold(s[n-3:], "/1M") {
		s = s[:n-3]
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false, false
	}
	if v < 0 {
		v = 0
	}
	return v, v == 0, true
}

// Categorize buckets a record into a pricing tier using the configured
// thresholds.
func Categorize(numericCost float64, isFree, known bool, th Thresholds) Category {
	switch {
	case isFree:
		return CategoryFree
	case !known:
		return CategoryUnknown
	case numericCost <= th.BudgetMax:
		return CategoryBudget
	case numericCost > th.PremiumMin:
		return CategoryPremium
	default:
		return CategoryStandard
	}
}

// FromDescription parses and normalizes one raw description into a
// Record. It never fails: missing fields fall back to placeholders and
// unparsable costs keep the sentinel, so the invariant that every record
// has a non-empty provider and name always holds.
func FromDescription(id, desc string, th Thresholds) Record {
	p := ParseDescription(desc)

	if p.Provider == "" {
		p.Provider = Unknown
	}
	if p.Name == "" {
		p.Name = Unknown
	}

	rate, free, known := ParseCost(p.Cost)
	cost := strings.TrimSpace(p.Cost)
	numeric := rate
	if !known {
		cost = CostUnknown
		numeric = -1
	}

	return Record{
		ID:          id,
		Name:        p.Name,
		Provider:    p.Provider,
		Cost:        cost,
		NumericCost: numeric,
		IsFree:      free,
		Category:    Categorize(rate, free, known, th),
		Description: desc,
		Tags:        InferTags(p.Name),
	}
}
