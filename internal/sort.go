package internal

import (
	"sort"
	"strings"

	"investingmenu/internal/domain"
)

// SortColumn names a sortable strategy attribute.
type SortColumn string

const (
	SortColumnRecommended  SortColumn = "recommended"
	SortColumnEquityPct    SortColumn = "equityPct"
	SortColumnStrategy     SortColumn = "strategy"
	SortColumnMinimum      SortColumn = "minimum"
	SortColumnExpenseRatio SortColumn = "expenseRatio"
	SortColumnYield        SortColumn = "yield"
)

// SortKey is one (column, direction) pair of a sort policy.
type SortKey struct {
	Column     SortColumn
	Descending bool
}

// DefaultSortOrder prioritizes Investment Committee recommendations, then
// equity allocation, then strategy name A to Z.
const DefaultSortOrder = "Recommended (Default)"

var defaultSortKeys = []SortKey{
	{Column: SortColumnRecommended, Descending: true},
	{Column: SortColumnEquityPct, Descending: true},
	{Column: SortColumnStrategy, Descending: false},
}

var sortOrderNames = []string{
	DefaultSortOrder,
	"Acct Min - Highest to Lowest",
	"Acct Min - Lowest to Highest",
	"Expense Ratio - Highest to Lowest",
	"Expense Ratio - Lowest to Highest",
	"Yield - High to Low",
	"Yield - Low to High",
	"Equity % - High to Low",
	"Equity % - Low to High",
	"Strategy Name - A to Z",
	"Strategy Name - Z to A",
}

var sortOrders = map[string][]SortKey{
	DefaultSortOrder:                    defaultSortKeys,
	"Acct Min - Highest to Lowest":      {{Column: SortColumnMinimum, Descending: true}},
	"Acct Min - Lowest to Highest":      {{Column: SortColumnMinimum, Descending: false}},
	"Expense Ratio - Highest to Lowest": {{Column: SortColumnExpenseRatio, Descending: true}},
	"Expense Ratio - Lowest to Highest": {{Column: SortColumnExpenseRatio, Descending: false}},
	"Yield - High to Low":               {{Column: SortColumnYield, Descending: true}},
	"Yield - Low to High":               {{Column: SortColumnYield, Descending: false}},
	"Equity % - High to Low":            {{Column: SortColumnEquityPct, Descending: true}},
	"Equity % - Low to High":            {{Column: SortColumnEquityPct, Descending: false}},
	"Strategy Name - A to Z":            {{Column: SortColumnStrategy, Descending: false}},
	"Strategy Name - Z to A":            {{Column: SortColumnStrategy, Descending: true}},
}

// ResolveSort returns the sort keys for a named order. Unknown names fall
// back to the default policy.
func ResolveSort(name string) []SortKey {
	if keys, ok := sortOrders[name]; ok {
		return keys
	}
	return defaultSortKeys
}

// SortOrderNames lists the selectable orders, default first.
func SortOrderNames() []string {
	out := make([]string, len(sortOrderNames))
	copy(out, sortOrderNames)
	return out
}

// ApplySort returns a sorted copy of records. The sort is stable so reruns
// over unchanged data never shuffle ties, and nulls sort last regardless of
// direction.
func ApplySort(records []domain.StrategyRecord, keys []SortKey) []domain.StrategyRecord {
	out := make([]domain.StrategyRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		for _, key := range keys {
			c := compareByColumn(out[i], out[j], key)
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
	return out
}

// compareByColumn orders a before b when negative. Null values compare
// after everything else regardless of Descending.
func compareByColumn(a, b domain.StrategyRecord, key SortKey) int {
	switch key.Column {
	case SortColumnRecommended:
		return directed(compareBool(a.Recommended, b.Recommended), key.Descending)
	case SortColumnStrategy:
		return directed(strings.Compare(a.Strategy, b.Strategy), key.Descending)
	case SortColumnMinimum:
		return directed(compareFloat(a.Minimum, b.Minimum), key.Descending)
	case SortColumnExpenseRatio:
		return directed(compareFloat(a.ExpenseRatio, b.ExpenseRatio), key.Descending)
	case SortColumnYield:
		return compareNullableFloat(a.Yield, b.Yield, key.Descending)
	case SortColumnEquityPct:
		return compareNullableInt(a.EquityPct, b.EquityPct, key.Descending)
	}
	return 0
}

func directed(c int, descending bool) int {
	if descending {
		return -c
	}
	return c
}

func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func compareFloat(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareNullableFloat(a, b *float64, descending bool) int {
	if a == nil || b == nil {
		return compareNilLast(a == nil, b == nil)
	}
	return directed(compareFloat(*a, *b), descending)
}

func compareNullableInt(a, b *int, descending bool) int {
	if a == nil || b == nil {
		return compareNilLast(a == nil, b == nil)
	}
	if *a == *b {
		return 0
	}
	if *a < *b {
		return directed(-1, descending)
	}
	return directed(1, descending)
}

func compareNilLast(aNil, bNil bool) int {
	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return 1
	default:
		return -1
	}
}
