package internal

import (
	"strings"

	"investingmenu/internal/domain"
)

// MaxSearchLength bounds the strategy-name search input. Longer inputs are
// rejected with a validation error before any matching happens.
const MaxSearchLength = 500

// riskBasedType is the strategy type whose selection enables the equity
// allocation range filter.
const riskBasedType = "Risk-Based"

// Predicate is a boolean test over one strategy record.
type Predicate func(domain.StrategyRecord) bool

// BuildPredicate translates the filter widget values into a single
// combinable predicate over strategy records.
//
// When search text is present it supersedes every other filter: the result
// is a case-insensitive substring match on the strategy name alone. This is
// a deliberate exclusivity policy between search mode and filter mode.
func BuildPredicate(filters domain.FilterState, schema domain.Schema) (Predicate, error) {
	search := strings.TrimSpace(filters.SearchText)
	if len(search) > MaxSearchLength {
		return nil, &domain.ValidationError{
			Field:  "searchText",
			Reason: "exceeds maximum search length",
		}
	}
	if search != "" {
		needle := strings.ToLower(search)
		return func(r domain.StrategyRecord) bool {
			return strings.Contains(strings.ToLower(r.Strategy), needle)
		}, nil
	}

	preds := []Predicate{}

	if filters.RecommendedSelection == domain.SelectionRecommended {
		preds = append(preds, func(r domain.StrategyRecord) bool {
			return r.Recommended
		})
	}

	if filters.MinAccountValue != nil {
		maxMinimum := *filters.MinAccountValue
		preds = append(preds, func(r domain.StrategyRecord) bool {
			return r.Minimum <= maxMinimum
		})
	}

	if p := equityRangePredicate(filters); p != nil {
		preds = append(preds, p)
	}

	if p := boolPredicate(filters.TaxManaged, func(r domain.StrategyRecord) bool { return r.TaxManaged }); p != nil {
		preds = append(preds, p)
	}
	if schema.HasSMAManager {
		if p := boolPredicate(filters.HasSMAManager, func(r domain.StrategyRecord) bool { return r.HasSMAManager }); p != nil {
			preds = append(preds, p)
		}
	}
	if schema.HasPrivateMarkets {
		if p := boolPredicate(filters.PrivateMarkets, func(r domain.StrategyRecord) bool { return r.PrivateMarkets }); p != nil {
			preds = append(preds, p)
		}
	}

	if len(filters.StrategyTypes) > 0 {
		selected := stringSet(filters.StrategyTypes)
		preds = append(preds, func(r domain.StrategyRecord) bool {
			return selected[r.StrategyType]
		})
	}

	if len(filters.Series) > 0 {
		selected := stringSet(filters.Series)
		preds = append(preds, func(r domain.StrategyRecord) bool {
			for _, s := range r.Series {
				if selected[s] {
					return true
				}
			}
			return false
		})
	}

	return andPredicates(preds), nil
}

// equityRangePredicate returns nil when the filter does not apply: no range
// set, "Risk-Based" not among the selected types, the full 0-100 band, or a
// malformed range (which fails safe to no filtering).
func equityRangePredicate(filters domain.FilterState) Predicate {
	r := filters.EquityRange
	if r == nil || r.IsFullRange() || r.IsMalformed() {
		return nil
	}
	riskBased := false
	for _, t := range filters.StrategyTypes {
		if t == riskBasedType {
			riskBased = true
			break
		}
	}
	if !riskBased {
		return nil
	}
	min, max := r.Min, r.Max
	return func(rec domain.StrategyRecord) bool {
		return rec.EquityPct != nil && *rec.EquityPct >= min && *rec.EquityPct <= max
	}
}

func boolPredicate(state domain.TriState, field func(domain.StrategyRecord) bool) Predicate {
	switch state {
	case domain.TriStateYes:
		return field
	case domain.TriStateNo:
		return func(r domain.StrategyRecord) bool { return !field(r) }
	}
	return nil
}

// andPredicates combines predicates left to right with logical AND.
// Zero predicates yields the constant-true predicate.
func andPredicates(preds []Predicate) Predicate {
	return func(r domain.StrategyRecord) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

func stringSet(values []string) map[string]bool {
	set := map[string]bool{}
	for _, v := range values {
		set[v] = true
	}
	return set
}
