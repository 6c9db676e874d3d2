package internal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"investingmenu/internal/domain"
	"investingmenu/internal/util"
)

// coreModelDataset builds a three-sibling model family spanning equity
// levels 90/60/30 with an equity category held everywhere, an emerging
// markets sleeve held only at 90, and a bond sleeve absent at 90.
func coreModelDataset() *domain.Dataset {
	row := func(strategy string, level int, category, product, ticker string, aggTarget, weight, fee, yield, minimum float64) domain.ModelProductRow {
		return domain.ModelProductRow{
			Model:       "CORE",
			Strategy:    strategy,
			EquityLevel: level,
			Category:    category,
			Product:     product,
			Ticker:      ticker,
			AggTarget:   aggTarget,
			Weight:      weight,
			Fee:         fee,
			Yield:       yield,
			Minimum:     minimum,
		}
	}
	return &domain.Dataset{
		Strategies: []domain.StrategyRecord{
			{Strategy: "Aspen 90", Model: "CORE", EquityPct: util.IntPointer(90)},
			{Strategy: "Aspen 60", Model: "CORE", EquityPct: util.IntPointer(60)},
			{Strategy: "Aspen 30", Model: "CORE", EquityPct: util.IntPointer(30)},
			{Strategy: "Orphan", Model: "EMPTY"},
		},
		ModelRows: []domain.ModelProductRow{
			row("Aspen 90", 90, "Global Equity Portfolio", "Total Market ETF", "VTI", 60, 55, 0.10, 0.020, 25000),
			row("Aspen 90", 90, "Global Equity Portfolio", "Dividend Growth ETF", "VIG", 60, 35, 0.10, 0.020, 25000),
			row("Aspen 90", 90, "Emerging Markets", "EM Equity ETF", "VWO", 10, 5, 0.10, 0.020, 25000),
			row("Aspen 60", 60, "Global Equity Portfolio", "Total Market ETF", "VTI", 40, 40, 0.15, 0.030, 25000),
			row("Aspen 60", 60, "Global Equity Portfolio", "Dividend Growth ETF", "VIG", 40, 20, 0.15, 0.030, 25000),
			row("Aspen 60", 60, "Fixed Income Portfolio", "Core Bond ETF", "BND", 60, 40, 0.15, 0.030, 25000),
			row("Aspen 30", 30, "Global Equity Portfolio", "Total Market ETF", "VTI", 20, 20, 0.05, 0.010, 10000),
			row("Aspen 30", 30, "Fixed Income Portfolio", "Core Bond ETF", "BND", 80, 70, 0.05, 0.010, 10000),
		},
	}
}

func rowValues(t *testing.T, row domain.MatrixRow) []float64 {
	t.Helper()
	values := make([]float64, len(row.Values))
	for i, v := range row.Values {
		require.NotNil(t, v)
		values[i] = *v
	}
	return values
}

func TestBuildMatrix(t *testing.T) {
	matrix, err := BuildMatrix(coreModelDataset(), "Aspen 60", false)
	require.NoError(t, err)

	t.Run("columns cover every sibling level, descending", func(t *testing.T) {
		require.Empty(t, cmp.Diff([]int{90, 60, 30}, matrix.Columns))
	})

	t.Run("focus column is highlighted", func(t *testing.T) {
		require.Equal(t, 1, matrix.HighlightedColumn)
	})

	t.Run("row layout", func(t *testing.T) {
		kinds := make([]domain.RowKind, len(matrix.Rows))
		for i, row := range matrix.Rows {
			kinds[i] = row.Kind
		}
		require.Empty(t, cmp.Diff([]domain.RowKind{
			domain.RowKindCategory,
			domain.RowKindProduct,
			domain.RowKindProduct,
			domain.RowKindSpacer,
			domain.RowKindCategory,
			domain.RowKindProduct,
			domain.RowKindSpacer,
			domain.RowKindCategory,
			domain.RowKindProduct,
			domain.RowKindSummary,
			domain.RowKindSummary,
			domain.RowKindSummary,
		}, kinds))
	})

	t.Run("categories order by classifier rank", func(t *testing.T) {
		labels := []string{}
		for _, row := range matrix.Rows {
			if row.Kind == domain.RowKindCategory {
				labels = append(labels, row.Label)
			}
		}
		require.Equal(t, []string{"Global Equity", "Emerging Markets", "Fixed Income"}, labels)
	})

	t.Run("category absent at a level shows zero, not null", func(t *testing.T) {
		emerging := matrix.Rows[4]
		require.Equal(t, "Emerging Markets", emerging.Label)
		require.Equal(t, []float64{10, 0, 0}, rowValues(t, emerging))

		fixedIncome := matrix.Rows[7]
		require.Equal(t, "Fixed Income", fixedIncome.Label)
		require.Equal(t, []float64{0, 60, 80}, rowValues(t, fixedIncome))
	})

	t.Run("products order by weight with etf suffix stripped", func(t *testing.T) {
		totalMarket := matrix.Rows[1]
		require.Equal(t, "Total Market", totalMarket.Label)
		require.Equal(t, "VTI", totalMarket.Ticker)
		require.Equal(t, []float64{55, 40, 20}, rowValues(t, totalMarket))

		dividendGrowth := matrix.Rows[2]
		require.Equal(t, "Dividend Growth", dividendGrowth.Label)
		require.Equal(t, []float64{35, 20, 0}, rowValues(t, dividendGrowth))
	})

	t.Run("spacer rows carry null values", func(t *testing.T) {
		spacer := matrix.Rows[3]
		require.Equal(t, domain.RowKindSpacer, spacer.Kind)
		require.Len(t, spacer.Values, 3)
		for _, v := range spacer.Values {
			require.Nil(t, v)
		}
	})

	t.Run("summary rows", func(t *testing.T) {
		expense := matrix.Rows[9]
		require.Equal(t, "Weighted Expense Ratio", expense.Label)
		got := rowValues(t, expense)
		require.InDelta(t, 0.10, got[0], 1e-9)
		require.InDelta(t, 0.15, got[1], 1e-9)
		require.InDelta(t, 0.05, got[2], 1e-9)

		yield := matrix.Rows[10]
		require.Equal(t, "Weighted Indicated Yield", yield.Label)
		got = rowValues(t, yield)
		require.InDelta(t, 0.020, got[0], 1e-9)
		require.InDelta(t, 0.030, got[1], 1e-9)
		require.InDelta(t, 0.010, got[2], 1e-9)

		minimum := matrix.Rows[11]
		require.Equal(t, "Account Minimum", minimum.Label)
		require.Equal(t, []float64{25000, 25000, 10000}, rowValues(t, minimum))
	})
}

func TestBuildMatrixEdgeCases(t *testing.T) {
	t.Run("unknown strategy", func(t *testing.T) {
		_, err := BuildMatrix(coreModelDataset(), "No Such Strategy", false)
		var notFound *domain.NotFoundError
		require.True(t, errors.As(err, &notFound))
	})

	t.Run("model with no rows yields an empty matrix", func(t *testing.T) {
		matrix, err := BuildMatrix(coreModelDataset(), "Orphan", false)
		require.NoError(t, err)
		require.True(t, matrix.Empty())
		require.Equal(t, -1, matrix.HighlightedColumn)
	})

	t.Run("focus equity level not in columns leaves no highlight", func(t *testing.T) {
		dataset := coreModelDataset()
		dataset.Strategies[1].EquityPct = util.IntPointer(55)
		matrix, err := BuildMatrix(dataset, "Aspen 60", false)
		require.NoError(t, err)
		require.Equal(t, -1, matrix.HighlightedColumn)
	})
}

func TestBuildMatrixSMACollapse(t *testing.T) {
	dataset := &domain.Dataset{
		Strategies: []domain.StrategyRecord{
			{Strategy: "Muni SMA", Model: "MUNI", EquityPct: util.IntPointer(10)},
		},
	}
	for i := 0; i < SMACollapseThreshold+1; i++ {
		dataset.ModelRows = append(dataset.ModelRows, domain.ModelProductRow{
			Model:       "MUNI",
			Strategy:    "Muni SMA",
			EquityLevel: 10,
			Category:    "Fixed Income",
			Product:     fmt.Sprintf("Municipal Bond %d", i),
			Ticker:      fmt.Sprintf("MB%02d", i),
			AggTarget:   100,
			Weight:      float64(100 - i),
		})
	}

	countKinds := func(matrix *domain.AllocationMatrix, kind domain.RowKind) int {
		n := 0
		for _, row := range matrix.Rows {
			if row.Kind == kind {
				n++
			}
		}
		return n
	}

	t.Run("collapses product rows past the threshold", func(t *testing.T) {
		matrix, err := BuildMatrix(dataset, "Muni SMA", true)
		require.NoError(t, err)
		require.Equal(t, 0, countKinds(matrix, domain.RowKindProduct))
		require.Equal(t, 1, countKinds(matrix, domain.RowKindCategory))
	})

	t.Run("keeps product rows when collapse is off", func(t *testing.T) {
		matrix, err := BuildMatrix(dataset, "Muni SMA", false)
		require.NoError(t, err)
		require.Equal(t, SMACollapseThreshold+1, countKinds(matrix, domain.RowKindProduct))
	})

	t.Run("keeps product rows at the threshold", func(t *testing.T) {
		trimmed := &domain.Dataset{
			Strategies: dataset.Strategies,
			ModelRows:  dataset.ModelRows[:SMACollapseThreshold],
		}
		matrix, err := BuildMatrix(trimmed, "Muni SMA", true)
		require.NoError(t, err)
		require.Equal(t, SMACollapseThreshold, countKinds(matrix, domain.RowKindProduct))
	})
}
