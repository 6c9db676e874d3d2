package internal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"investingmenu/internal/domain"
	"investingmenu/internal/util"
)

func sortedNames(records []domain.StrategyRecord) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Strategy
	}
	return names
}

func TestApplySort(t *testing.T) {
	t.Run("default order prefers recommended, then equity, then name", func(t *testing.T) {
		records := []domain.StrategyRecord{
			{Strategy: "B", Recommended: false, EquityPct: util.IntPointer(90)},
			{Strategy: "C", Recommended: true, EquityPct: util.IntPointer(40)},
			{Strategy: "A", Recommended: true, EquityPct: util.IntPointer(60)},
		}

		got := sortedNames(ApplySort(records, ResolveSort(DefaultSortOrder)))
		require.Empty(t, cmp.Diff([]string{"A", "C", "B"}, got))
	})

	t.Run("default order breaks equity ties by name", func(t *testing.T) {
		records := []domain.StrategyRecord{
			{Strategy: "Zeta", Recommended: true, EquityPct: util.IntPointer(60)},
			{Strategy: "Alpha", Recommended: true, EquityPct: util.IntPointer(60)},
		}
		got := sortedNames(ApplySort(records, ResolveSort(DefaultSortOrder)))
		require.Equal(t, []string{"Alpha", "Zeta"}, got)
	})

	t.Run("stable across equal keys", func(t *testing.T) {
		records := []domain.StrategyRecord{
			{Strategy: "first", Minimum: 50000},
			{Strategy: "second", Minimum: 50000},
			{Strategy: "third", Minimum: 50000},
		}
		got := sortedNames(ApplySort(records, ResolveSort("Acct Min - Lowest to Highest")))
		require.Equal(t, []string{"first", "second", "third"}, got)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		records := []domain.StrategyRecord{
			{Strategy: "B", Minimum: 2},
			{Strategy: "A", Minimum: 1},
		}
		_ = ApplySort(records, ResolveSort("Acct Min - Lowest to Highest"))
		require.Equal(t, "B", records[0].Strategy)
	})

	t.Run("nulls sort last in both directions", func(t *testing.T) {
		records := []domain.StrategyRecord{
			{Strategy: "no-equity"},
			{Strategy: "low", EquityPct: util.IntPointer(20)},
			{Strategy: "high", EquityPct: util.IntPointer(90)},
		}

		got := sortedNames(ApplySort(records, ResolveSort("Equity % - High to Low")))
		require.Equal(t, []string{"high", "low", "no-equity"}, got)

		got = sortedNames(ApplySort(records, ResolveSort("Equity % - Low to High")))
		require.Equal(t, []string{"low", "high", "no-equity"}, got)
	})

	t.Run("null yields sort last", func(t *testing.T) {
		records := []domain.StrategyRecord{
			{Strategy: "no-yield"},
			{Strategy: "yielding", Yield: util.FloatPointer(0.031)},
		}
		got := sortedNames(ApplySort(records, ResolveSort("Yield - High to Low")))
		require.Equal(t, []string{"yielding", "no-yield"}, got)
	})
}

func TestResolveSort(t *testing.T) {
	t.Run("unknown name falls back to default", func(t *testing.T) {
		require.Empty(t, cmp.Diff(defaultSortKeys, ResolveSort("not a sort order")))
	})

	t.Run("every listed order resolves", func(t *testing.T) {
		for _, name := range SortOrderNames() {
			keys := ResolveSort(name)
			require.NotEmpty(t, keys, name)
		}
	})
}

func TestSortOrderNames(t *testing.T) {
	names := SortOrderNames()
	require.Len(t, names, 11)
	require.Equal(t, DefaultSortOrder, names[0])
}
