package repository

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gocarina/gocsv"

	"investingmenu/internal/domain"
)

// snapshotRow is one line of the ss_all snapshot CSV.
type snapshotRow struct {
	Strategy       string   `csv:"strategy"`
	Suite          string   `csv:"ss_suite"`
	Portfolio      *int     `csv:"portfolio"`
	ModelAgg       string   `csv:"model_agg"`
	Product        string   `csv:"product"`
	Ticker         string   `csv:"ticker"`
	AggTarget      float64  `csv:"agg_target"`
	Weight         float64  `csv:"weight"`
	Fee            float64  `csv:"fee"`
	Yield          *float64 `csv:"yield"`
	Minimum        float64  `csv:"minimum"`
	EquityAllo     *int     `csv:"equity_allo"`
	Subtype        string   `csv:"ss_subtype"`
	Type           string   `csv:"ss_type"`
	TaxManaged     bool     `csv:"has_tm"`
	Recommended    bool     `csv:"ic_recommend"`
	PrivateMarkets bool     `csv:"has_private_market"`
	HasSMA         bool     `csv:"has_sma"`
}

var requiredColumns = []string{
	"strategy",
	"ss_suite",
	"portfolio",
	"model_agg",
	"product",
	"ticker",
	"agg_target",
	"weight",
	"fee",
	"yield",
	"minimum",
	"equity_allo",
	"ss_subtype",
	"ss_type",
	"has_tm",
	"ic_recommend",
}

const (
	optionalColumnSMA            = "has_sma"
	optionalColumnPrivateMarkets = "has_private_market"
)

// DatasetSource fetches one raw snapshot, wherever it lives.
type DatasetSource interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// FileDatasetSource reads the snapshot from a local CSV file.
type FileDatasetSource struct {
	Path string
}

func (s FileDatasetSource) Fetch(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	return data, nil
}

// DatasetRepository loads typed dataset snapshots.
type DatasetRepository interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

type datasetRepositoryHandler struct {
	source DatasetSource
}

func NewDatasetRepository(source DatasetSource) DatasetRepository {
	return datasetRepositoryHandler{source: source}
}

func (h datasetRepositoryHandler) Load(ctx context.Context) (*domain.Dataset, error) {
	raw, err := h.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset snapshot: %w", err)
	}
	return parseDataset(raw)
}

func parseDataset(raw []byte) (*domain.Dataset, error) {
	schema, err := validateHeader(raw)
	if err != nil {
		return nil, err
	}

	rows := []snapshotRow{}
	if err := gocsv.UnmarshalBytes(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode dataset csv: %w", err)
	}

	dataset := &domain.Dataset{Schema: schema}
	dataset.ModelRows = modelRowsFromSnapshot(rows)
	dataset.Strategies = strategiesFromSnapshot(rows)
	return dataset, nil
}

// validateHeader checks the column contract up front. A missing required
// column is fatal; the two optional columns only toggle schema flags.
func validateHeader(raw []byte) (domain.Schema, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	header, err := reader.Read()
	if err != nil {
		return domain.Schema{}, fmt.Errorf("failed to read dataset header: %w", err)
	}

	present := map[string]bool{}
	for _, col := range header {
		present[col] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return domain.Schema{}, &domain.SchemaError{Column: col}
		}
	}
	return domain.Schema{
		HasSMAManager:     present[optionalColumnSMA],
		HasPrivateMarkets: present[optionalColumnPrivateMarkets],
	}, nil
}

func modelRowsFromSnapshot(rows []snapshotRow) []domain.ModelProductRow {
	out := []domain.ModelProductRow{}
	for _, row := range rows {
		if row.Suite == "" || row.Portfolio == nil {
			continue
		}
		yield := 0.0
		if row.Yield != nil {
			yield = *row.Yield
		}
		out = append(out, domain.ModelProductRow{
			Model:       row.Suite,
			Strategy:    row.Strategy,
			EquityLevel: *row.Portfolio,
			Category:    row.ModelAgg,
			Product:     row.Product,
			Ticker:      row.Ticker,
			AggTarget:   row.AggTarget,
			Weight:      row.Weight,
			Fee:         row.Fee,
			Yield:       yield,
			Minimum:     row.Minimum,
		})
	}
	return out
}

// strategiesFromSnapshot derives the strategy-level table by grouping the
// flat snapshot per strategy: first row wins for the strategy attributes,
// the expense ratio takes the max fee across rows, and the series list
// collects the distinct subtypes in appearance order.
func strategiesFromSnapshot(rows []snapshotRow) []domain.StrategyRecord {
	byName := map[string]*domain.StrategyRecord{}
	seriesSeen := map[string]map[string]bool{}
	order := []string{}

	for _, row := range rows {
		record, ok := byName[row.Strategy]
		if !ok {
			record = &domain.StrategyRecord{
				Strategy:       row.Strategy,
				StrategyType:   row.Type,
				EquityPct:      row.EquityAllo,
				Minimum:        row.Minimum,
				Yield:          row.Yield,
				ExpenseRatio:   row.Fee,
				Recommended:    row.Recommended,
				TaxManaged:     row.TaxManaged,
				HasSMAManager:  row.HasSMA,
				PrivateMarkets: row.PrivateMarkets,
				Model:          row.Suite,
			}
			byName[row.Strategy] = record
			seriesSeen[row.Strategy] = map[string]bool{}
			order = append(order, row.Strategy)
		}

		if row.Fee > record.ExpenseRatio {
			record.ExpenseRatio = row.Fee
		}
		if row.Subtype != "" && !seriesSeen[row.Strategy][row.Subtype] {
			seriesSeen[row.Strategy][row.Subtype] = true
			record.Series = append(record.Series, row.Subtype)
		}
	}

	out := make([]domain.StrategyRecord, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out
}

// cachedDatasetRepository memoizes snapshots for a TTL window. Caching sits
// outside the engine: the engine stays deterministic over whatever snapshot
// it is handed.
type cachedDatasetRepository struct {
	inner DatasetRepository
	ttl   time.Duration

	mu       sync.Mutex
	dataset  *domain.Dataset
	loadedAt time.Time
}

func NewCachedDatasetRepository(inner DatasetRepository, ttl time.Duration) DatasetRepository {
	return &cachedDatasetRepository{inner: inner, ttl: ttl}
}

func (c *cachedDatasetRepository) Load(ctx context.Context) (*domain.Dataset, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dataset != nil && time.Since(c.loadedAt) < c.ttl {
		return c.dataset, nil
	}

	dataset, err := c.inner.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.dataset = dataset
	c.loadedAt = time.Now()
	return dataset, nil
}
