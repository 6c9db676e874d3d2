package domain

// StrategyRecord is one row of the strategy-level table derived from the
// dataset snapshot. EquityPct and Yield are nil when the source column is
// null for that strategy.
type StrategyRecord struct {
	Strategy       string   `json:"strategy"`
	StrategyType   string   `json:"strategyType"`
	Series         []string `json:"series"`
	EquityPct      *int     `json:"equityPct"`
	Minimum        float64  `json:"minimum"`
	Yield          *float64 `json:"yield"`
	ExpenseRatio   float64  `json:"expenseRatio"`
	Recommended    bool     `json:"recommended"`
	TaxManaged     bool     `json:"taxManaged"`
	HasSMAManager  bool     `json:"hasSmaManager"`
	PrivateMarkets bool     `json:"privateMarkets"`
	Model          string   `json:"model"`
}

// ModelProductRow is one (model, category, product) row of the snapshot,
// scoped to the sibling strategy whose weights it carries. EquityLevel is
// the sibling's equity allocation from the snapshot's portfolio column.
type ModelProductRow struct {
	Model       string
	Strategy    string
	EquityLevel int
	Category    string
	Product     string
	Ticker      string
	AggTarget   float64
	Weight      float64
	Fee         float64
	Yield       float64
	Minimum     float64
}

// Schema records which optional columns were present in the loaded
// snapshot. Filters over absent columns are skipped rather than failing
// predicate construction.
type Schema struct {
	HasSMAManager     bool
	HasPrivateMarkets bool
}

// Dataset is one immutable snapshot of the menu data. It is loaded whole,
// never mutated by the engine, and refreshed only by reloading.
type Dataset struct {
	Strategies []StrategyRecord
	ModelRows  []ModelProductRow
	Schema     Schema
}

// StrategyByName returns the strategy record with the given name, or nil.
// Names are unique within one snapshot.
func (d *Dataset) StrategyByName(name string) *StrategyRecord {
	for i := range d.Strategies {
		if d.Strategies[i].Strategy == name {
			return &d.Strategies[i]
		}
	}
	return nil
}

// RowsForModel returns all product rows sharing the given model id, in
// snapshot order.
func (d *Dataset) RowsForModel(model string) []ModelProductRow {
	rows := []ModelProductRow{}
	for _, row := range d.ModelRows {
		if row.Model == model {
			rows = append(rows, row)
		}
	}
	return rows
}
