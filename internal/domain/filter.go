package domain

// TriState is a Yes/No/unset filter value. The zero value means "no
// constraint".
type TriState string

const (
	TriStateUnset TriState = ""
	TriStateYes   TriState = "Yes"
	TriStateNo    TriState = "No"
)

// RecommendedSelection mirrors the Investment Committee status control.
// "Recommended & Approved" intentionally applies no constraint: the data
// model carries no approved flag, so the broader selection shows everything.
type RecommendedSelection string

const (
	SelectionRecommended            RecommendedSelection = "Recommended"
	SelectionRecommendedAndApproved RecommendedSelection = "Recommended & Approved"
)

// EquityRange is an inclusive [Min, Max] equity allocation band on the
// 0-100 scale.
type EquityRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// IsFullRange reports whether the range covers the whole 0-100 band, in
// which case filtering on it is a no-op.
func (r EquityRange) IsFullRange() bool {
	return r.Min <= 0 && r.Max >= 100
}

// IsMalformed reports whether the range cannot select anything sensibly.
// Malformed ranges fail safe to "no filtering".
func (r EquityRange) IsMalformed() bool {
	return r.Min > r.Max
}

// FilterState is the named mapping of filter-widget values supplied by the
// UI layer on every recomputation. The engine never reads ambient state;
// everything it needs arrives here.
type FilterState struct {
	RecommendedSelection RecommendedSelection `json:"recommendedSelection"`
	MinAccountValue      *float64             `json:"minAccountValue"`
	EquityRange          *EquityRange         `json:"equityRange"`
	TaxManaged           TriState             `json:"taxManaged"`
	HasSMAManager        TriState             `json:"hasSmaManager"`
	PrivateMarkets       TriState             `json:"privateMarkets"`
	StrategyTypes        []string             `json:"strategyTypes"`
	Series               []string             `json:"series"`
	SearchText           string               `json:"searchText"`
}
