package domain

// RowKind tags each allocation-matrix row. The set is closed.
type RowKind string

const (
	RowKindCategory RowKind = "category"
	RowKindProduct  RowKind = "product"
	RowKindSpacer   RowKind = "spacer"
	RowKindSummary  RowKind = "summary"
)

// MatrixRow is one row of the allocation matrix. Values is aligned with
// AllocationMatrix.Columns; cells are nil only for spacer rows. Category
// and product cells zero-fill missing combinations: a category not held at
// an equity level is 0% weight, not missing data.
type MatrixRow struct {
	Kind   RowKind    `json:"kind"`
	Label  string     `json:"label"`
	Ticker string     `json:"ticker,omitempty"`
	Values []*float64 `json:"values"`
}

// AllocationMatrix pivots a model's product allocations into a table whose
// columns are the equity levels of the model's sibling strategies, in
// descending order, restricted to levels actually present.
type AllocationMatrix struct {
	Columns []int       `json:"columns"`
	Rows    []MatrixRow `json:"rows"`

	// HighlightedColumn is the index into Columns of the focus
	// strategy's own equity level, or -1 when that level is absent.
	HighlightedColumn int `json:"highlightedColumn"`
}

// Empty reports whether the model had no rows to pivot. Callers render a
// "no data" state; this is distinct from a not-found strategy, which is an
// error.
func (m *AllocationMatrix) Empty() bool {
	return len(m.Columns) == 0 && len(m.Rows) == 0
}
