package internal

import (
	"regexp"
	"sort"
	"strings"

	"investingmenu/internal/domain"
)

// SMACollapseThreshold is the product count above which an SMA-style
// category's product rows are collapsed out of the matrix.
const SMACollapseThreshold = 10

// canonicalEquityLevels is the descending set of equity levels a model
// family can span. Levels absent from the model simply get no column.
var canonicalEquityLevels = []int{100, 90, 80, 70, 60, 50, 40, 30, 20, 10}

var etfSuffixRe = regexp.MustCompile(`(?i)\bETF\s*$`)

var summaryRowNames = []string{
	"Weighted Expense Ratio",
	"Weighted Indicated Yield",
	"Account Minimum",
}

type strategyCategoryKey struct {
	strategy string
	category string
}

type productWeightKey struct {
	strategy string
	category string
	ticker   string
}

// BuildMatrix pivots the focus strategy's model into an allocation matrix:
// rows are categories and their products, columns are the equity levels of
// the sibling strategies sharing the model, and three summary rows close
// the table. A model with no rows yields an empty matrix, not an error.
func BuildMatrix(dataset *domain.Dataset, focusStrategy string, collapseSMA bool) (*domain.AllocationMatrix, error) {
	record := dataset.StrategyByName(focusStrategy)
	if record == nil {
		return nil, &domain.NotFoundError{Resource: "strategy", Name: focusStrategy}
	}

	modelRows := dataset.RowsForModel(record.Model)
	if len(modelRows) == 0 {
		return &domain.AllocationMatrix{HighlightedColumn: -1}, nil
	}

	strategyAtLevel, columns := equityLevelLookup(modelRows)
	aggTargets := aggTargetLookup(modelRows)
	productWeights := productWeightLookup(modelRows)
	categories := orderedCategories(modelRows)

	rows := []domain.MatrixRow{}
	for i, category := range categories {
		rows = append(rows, categoryRow(category, columns, strategyAtLevel, aggTargets))

		products := productsForCategory(modelRows, category)
		if !(collapseSMA && len(products) > SMACollapseThreshold) {
			for _, p := range products {
				rows = append(rows, productRow(p, category, columns, strategyAtLevel, productWeights))
			}
		}

		if len(products) > 0 && i < len(categories)-1 {
			rows = append(rows, spacerRow(columns))
		}
	}

	rows = append(rows, summaryRows(modelRows, columns, strategyAtLevel)...)

	return &domain.AllocationMatrix{
		Columns:           columns,
		Rows:              rows,
		HighlightedColumn: highlightedColumn(record.EquityPct, columns),
	}, nil
}

// equityLevelLookup maps each present canonical equity level to the sibling
// strategy holding it, and returns the descending list of present levels.
func equityLevelLookup(modelRows []domain.ModelProductRow) (map[int]string, []int) {
	strategyAtLevel := map[int]string{}
	for _, row := range modelRows {
		if _, ok := strategyAtLevel[row.EquityLevel]; !ok {
			strategyAtLevel[row.EquityLevel] = row.Strategy
		}
	}

	columns := []int{}
	for _, level := range canonicalEquityLevels {
		if _, ok := strategyAtLevel[level]; ok {
			columns = append(columns, level)
		}
	}
	return strategyAtLevel, columns
}

// aggTargetLookup dedupes to one category target per (strategy, category).
// Well-formed data has at most one row per key; first-wins is the
// defensive policy when it does not.
func aggTargetLookup(modelRows []domain.ModelProductRow) map[strategyCategoryKey]float64 {
	lookup := map[strategyCategoryKey]float64{}
	for _, row := range modelRows {
		key := strategyCategoryKey{strategy: row.Strategy, category: row.Category}
		if _, ok := lookup[key]; !ok {
			lookup[key] = row.AggTarget
		}
	}
	return lookup
}

func productWeightLookup(modelRows []domain.ModelProductRow) map[productWeightKey]float64 {
	lookup := map[productWeightKey]float64{}
	for _, row := range modelRows {
		key := productWeightKey{strategy: row.Strategy, category: row.Category, ticker: row.Ticker}
		if _, ok := lookup[key]; !ok {
			lookup[key] = row.Weight
		}
	}
	return lookup
}

// orderedCategories lists the model's distinct categories sorted by
// classifier rank, ties broken by first appearance in the snapshot.
func orderedCategories(modelRows []domain.ModelProductRow) []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, row := range modelRows {
		if row.Category == "" || seen[row.Category] {
			continue
		}
		seen[row.Category] = true
		categories = append(categories, row.Category)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return ClassifyCategory(categories[i]) < ClassifyCategory(categories[j])
	})
	return categories
}

type matrixProduct struct {
	product string
	ticker  string
	weight  float64
}

// productsForCategory dedupes products by (product, ticker) keeping the max
// observed weight across the whole model, then orders by weight descending.
// Using the full model rather than the focus strategy keeps product rows
// visible even where the focus strategy holds 0%.
func productsForCategory(modelRows []domain.ModelProductRow, category string) []matrixProduct {
	type productKey struct {
		product string
		ticker  string
	}
	weights := map[productKey]float64{}
	order := []productKey{}
	for _, row := range modelRows {
		if row.Category != category {
			continue
		}
		key := productKey{product: row.Product, ticker: row.Ticker}
		if existing, ok := weights[key]; !ok {
			weights[key] = row.Weight
			order = append(order, key)
		} else if row.Weight > existing {
			weights[key] = row.Weight
		}
	}

	products := make([]matrixProduct, 0, len(order))
	for _, key := range order {
		products = append(products, matrixProduct{
			product: key.product,
			ticker:  key.ticker,
			weight:  weights[key],
		})
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].weight > products[j].weight
	})
	return products
}

func categoryRow(category string, columns []int, strategyAtLevel map[int]string, aggTargets map[strategyCategoryKey]float64) domain.MatrixRow {
	values := make([]*float64, len(columns))
	for i, level := range columns {
		// Zero-fill: a category absent at an equity level is not held
		// there, which is data, not missing data.
		v := aggTargets[strategyCategoryKey{strategy: strategyAtLevel[level], category: category}]
		values[i] = &v
	}
	return domain.MatrixRow{
		Kind:   domain.RowKindCategory,
		Label:  cleanCategoryLabel(category),
		Values: values,
	}
}

func productRow(p matrixProduct, category string, columns []int, strategyAtLevel map[int]string, productWeights map[productWeightKey]float64) domain.MatrixRow {
	values := make([]*float64, len(columns))
	for i, level := range columns {
		v := productWeights[productWeightKey{
			strategy: strategyAtLevel[level],
			category: category,
			ticker:   p.ticker,
		}]
		values[i] = &v
	}
	return domain.MatrixRow{
		Kind:   domain.RowKindProduct,
		Label:  cleanProductLabel(p.product),
		Ticker: p.ticker,
		Values: values,
	}
}

func spacerRow(columns []int) domain.MatrixRow {
	return domain.MatrixRow{
		Kind:   domain.RowKindSpacer,
		Values: make([]*float64, len(columns)),
	}
}

// summaryRows appends the weighted expense ratio, weighted indicated yield
// and account minimum rows. The account minimum is each sibling's own
// minimum, not a weighted figure.
func summaryRows(modelRows []domain.ModelProductRow, columns []int, strategyAtLevel map[int]string) []domain.MatrixRow {
	rowsByStrategy := map[string][]domain.ModelProductRow{}
	minimums := map[string]float64{}
	for _, row := range modelRows {
		rowsByStrategy[row.Strategy] = append(rowsByStrategy[row.Strategy], row)
		if _, ok := minimums[row.Strategy]; !ok {
			minimums[row.Strategy] = row.Minimum
		}
	}

	expense := make([]*float64, len(columns))
	yield := make([]*float64, len(columns))
	minimum := make([]*float64, len(columns))
	for i, level := range columns {
		sibling := strategyAtLevel[level]
		metrics := WeightedMetricsFor(rowsByStrategy[sibling])
		e, y, m := metrics.ExpenseRatio, metrics.Yield, minimums[sibling]
		expense[i], yield[i], minimum[i] = &e, &y, &m
	}

	return []domain.MatrixRow{
		{Kind: domain.RowKindSummary, Label: summaryRowNames[0], Values: expense},
		{Kind: domain.RowKindSummary, Label: summaryRowNames[1], Values: yield},
		{Kind: domain.RowKindSummary, Label: summaryRowNames[2], Values: minimum},
	}
}

func highlightedColumn(equityPct *int, columns []int) int {
	if equityPct == nil {
		return -1
	}
	for i, level := range columns {
		if level == *equityPct {
			return i
		}
	}
	return -1
}

// cleanProductLabel strips a trailing "ETF" suffix and surrounding
// whitespace for display. Lookup keys always use the raw ticker, so the
// cleaning can never cause collisions.
func cleanProductLabel(product string) string {
	trimmed := strings.TrimSpace(product)
	return strings.TrimSpace(etfSuffixRe.ReplaceAllString(trimmed, ""))
}

func cleanCategoryLabel(category string) string {
	cleaned := strings.ReplaceAll(category, " Portfolio", "")
	cleaned = strings.ReplaceAll(cleaned, "Portfolio", "")
	return strings.TrimSpace(cleaned)
}
