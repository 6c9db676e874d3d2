package internal

import (
	"fmt"

	"investingmenu/internal/domain"
)

// ScreenRequest is one filter-and-sort pass over a dataset snapshot.
type ScreenRequest struct {
	Filters   domain.FilterState
	SortOrder string
}

// ScreenStrategies filters the snapshot's strategy list with the request's
// filter state and orders the survivors by the named sort policy. The pass
// is a pure function of its inputs: identical requests over the same
// snapshot produce identical output.
func ScreenStrategies(dataset *domain.Dataset, req ScreenRequest) ([]domain.StrategyRecord, error) {
	predicate, err := BuildPredicate(req.Filters, dataset.Schema)
	if err != nil {
		return nil, fmt.Errorf("failed to build filter predicate: %w", err)
	}

	matched := []domain.StrategyRecord{}
	for _, record := range dataset.Strategies {
		if predicate(record) {
			matched = append(matched, record)
		}
	}

	return ApplySort(matched, ResolveSort(req.SortOrder)), nil
}
