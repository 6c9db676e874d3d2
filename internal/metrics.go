package internal

import (
	"github.com/montanaflynn/stats"

	"investingmenu/internal/domain"
)

// WeightedMetrics are the target-weighted averages for one sibling
// strategy's modeled allocation.
type WeightedMetrics struct {
	ExpenseRatio float64
	Yield        float64
}

// WeightedMetricsFor computes the target-weighted expense ratio and yield
// over one strategy's model rows. A zero total target (no rows, or all
// zero targets) yields zero metrics: a strategy with no modeled allocation
// has no meaningful weighted rate, so this is a defined fallback, not an
// error.
func WeightedMetricsFor(rows []domain.ModelProductRow) WeightedMetrics {
	totalTarget := 0.0
	weightedFeeSum := 0.0
	weightedYieldSum := 0.0
	for _, row := range rows {
		totalTarget += row.AggTarget
		weightedFeeSum += row.AggTarget * row.Fee
		weightedYieldSum += row.AggTarget * row.Yield
	}
	if totalTarget <= 0 {
		return WeightedMetrics{}
	}
	return WeightedMetrics{
		ExpenseRatio: weightedFeeSum / totalTarget,
		Yield:        weightedYieldSum / totalTarget,
	}
}

// ScreenStats summarizes a screened result set for the result header.
type ScreenStats struct {
	Count            int      `json:"count"`
	MeanExpenseRatio *float64 `json:"meanExpenseRatio"`
	MeanYield        *float64 `json:"meanYield"`
	MedianMinimum    *float64 `json:"medianMinimum"`
}

// ComputeScreenStats aggregates display statistics over a filtered result
// set. Nullable yields are skipped rather than treated as zero.
func ComputeScreenStats(records []domain.StrategyRecord) ScreenStats {
	out := ScreenStats{Count: len(records)}
	if len(records) == 0 {
		return out
	}

	expenseRatios := make([]float64, 0, len(records))
	minimums := make([]float64, 0, len(records))
	yields := []float64{}
	for _, r := range records {
		expenseRatios = append(expenseRatios, r.ExpenseRatio)
		minimums = append(minimums, r.Minimum)
		if r.Yield != nil {
			yields = append(yields, *r.Yield)
		}
	}

	if mean, err := stats.Mean(expenseRatios); err == nil {
		out.MeanExpenseRatio = &mean
	}
	if median, err := stats.Median(minimums); err == nil {
		out.MedianMinimum = &median
	}
	if len(yields) > 0 {
		if mean, err := stats.Mean(yields); err == nil {
			out.MeanYield = &mean
		}
	}
	return out
}
