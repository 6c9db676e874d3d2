package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"investingmenu/internal/domain"
	"investingmenu/internal/util"
)

const snapshotCsv = `strategy,ss_suite,portfolio,model_agg,product,ticker,agg_target,weight,fee,yield,minimum,equity_allo,ss_subtype,ss_type,has_tm,ic_recommend,has_private_market,has_sma
Aspen 60,CORE,60,Global Equity Portfolio,Total Market ETF,VTI,40,40,0.03,0.021,25000,60,Market Series,Risk-Based,true,true,false,false
Aspen 60,CORE,60,Fixed Income Portfolio,Core Bond ETF,BND,60,40,0.05,0.032,25000,60,Market Series,Risk-Based,true,true,false,false
Muni Ladder,,,,,,0,0,0.15,,50000,,Income Series,Asset Class,false,false,true,true
`

func TestParseDataset(t *testing.T) {
	dataset, err := parseDataset([]byte(snapshotCsv))
	require.NoError(t, err)

	t.Run("optional columns toggle schema flags", func(t *testing.T) {
		require.True(t, dataset.Schema.HasSMAManager)
		require.True(t, dataset.Schema.HasPrivateMarkets)
	})

	t.Run("derives one record per strategy", func(t *testing.T) {
		require.Len(t, dataset.Strategies, 2)

		aspen := dataset.StrategyByName("Aspen 60")
		require.NotNil(t, aspen)
		require.Empty(t, cmp.Diff(&domain.StrategyRecord{
			Strategy:     "Aspen 60",
			StrategyType: "Risk-Based",
			Series:       []string{"Market Series"},
			EquityPct:    util.IntPointer(60),
			Minimum:      25000,
			Yield:        util.FloatPointer(0.021),
			// max fee across the strategy's rows
			ExpenseRatio: 0.05,
			Recommended:  true,
			TaxManaged:   true,
			Model:        "CORE",
		}, aspen))
	})

	t.Run("null columns stay null", func(t *testing.T) {
		muni := dataset.StrategyByName("Muni Ladder")
		require.NotNil(t, muni)
		require.Nil(t, muni.EquityPct)
		require.Nil(t, muni.Yield)
		require.True(t, muni.PrivateMarkets)
		require.True(t, muni.HasSMAManager)
	})

	t.Run("rows without a model are not model rows", func(t *testing.T) {
		require.Len(t, dataset.ModelRows, 2)
		require.Len(t, dataset.RowsForModel("CORE"), 2)
	})
}

func TestParseDatasetSchemaErrors(t *testing.T) {
	t.Run("missing required column", func(t *testing.T) {
		csv := "strategy,ss_suite,portfolio\nAspen 60,CORE,60\n"
		_, err := parseDataset([]byte(csv))
		var schemaErr *domain.SchemaError
		require.True(t, errors.As(err, &schemaErr))
		require.Equal(t, "model_agg", schemaErr.Column)
	})

	t.Run("missing optional columns parse with flags off", func(t *testing.T) {
		csv := `strategy,ss_suite,portfolio,model_agg,product,ticker,agg_target,weight,fee,yield,minimum,equity_allo,ss_subtype,ss_type,has_tm,ic_recommend
Aspen 60,CORE,60,Global Equity,Total Market ETF,VTI,40,40,0.03,0.021,25000,60,Market Series,Risk-Based,true,true
`
		dataset, err := parseDataset([]byte(csv))
		require.NoError(t, err)
		require.False(t, dataset.Schema.HasSMAManager)
		require.False(t, dataset.Schema.HasPrivateMarkets)
	})
}

func TestFileDatasetSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ss_all.csv")
	require.NoError(t, os.WriteFile(path, []byte(snapshotCsv), 0644))

	dataset, err := NewDatasetRepository(FileDatasetSource{Path: path}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, dataset.Strategies, 2)

	_, err = NewDatasetRepository(FileDatasetSource{Path: path + ".missing"}).Load(context.Background())
	require.Error(t, err)
}

type countingRepository struct {
	loads   int
	dataset *domain.Dataset
}

func (c *countingRepository) Load(ctx context.Context) (*domain.Dataset, error) {
	c.loads++
	return c.dataset, nil
}

func TestCachedDatasetRepository(t *testing.T) {
	t.Run("serves from cache within the ttl", func(t *testing.T) {
		inner := &countingRepository{dataset: &domain.Dataset{}}
		cached := NewCachedDatasetRepository(inner, time.Hour)

		first, err := cached.Load(context.Background())
		require.NoError(t, err)
		second, err := cached.Load(context.Background())
		require.NoError(t, err)

		require.Same(t, first, second)
		require.Equal(t, 1, inner.loads)
	})

	t.Run("reloads once the ttl lapses", func(t *testing.T) {
		inner := &countingRepository{dataset: &domain.Dataset{}}
		cached := NewCachedDatasetRepository(inner, 0)

		_, err := cached.Load(context.Background())
		require.NoError(t, err)
		_, err = cached.Load(context.Background())
		require.NoError(t, err)

		require.Equal(t, 2, inner.loads)
	})
}
