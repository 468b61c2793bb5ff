package types

import "time"

// MetricKey identifies a fundamental metric.
type MetricKey string

const (
	PE         MetricKey = "pe"
	ROE        MetricKey = "roe"
	Margin     MetricKey = "margin"
	RevGrowth  MetricKey = "rev_growth"
	DebtEquity MetricKey = "de"
)

// MetricSet maps metric keys to values. A key missing from the map means the
// source record lacked the field. Percentage-based metrics stay fractional
// (0.12, not 12) until display formatting.
type MetricSet map[MetricKey]float64

func (m MetricSet) Get(k MetricKey) (float64, bool) {
	v, ok := m[k]
	return v, ok
}

// Ptr returns a pointer to the value, or nil when absent.
func (m MetricSet) Ptr(k MetricKey) *float64 {
	if v, ok := m[k]; ok {
		return &v
	}
	return nil
}

// MetricDefinition describes one fundamental metric: its key, display label,
// directionality, and the human-readable threshold bands shown alongside the
// comparison. Definitions are immutable and defined once in config.
type MetricDefinition struct {
	Key           MetricKey
	Label         string
	LowerIsBetter bool
	Bands         string
}

// Point is a single (date, price) observation.
type Point struct {
	Date  time.Time
	Price float64
}

// PriceSeries is a price or NAV history, strictly ascending by date with no
// duplicate dates.
type PriceSeries []Point

// Returns derives the period-over-period fractional change series, one
// element shorter than the price series.
func (s PriceSeries) Returns() []float64 {
	if len(s) < 2 {
		return nil
	}
	out := make([]float64, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		out = append(out, s[i].Price/s[i-1].Price-1)
	}
	return out
}

// Verdict is the outcome of a subject-vs-baseline comparison.
type Verdict int

const (
	VerdictUnknown Verdict = iota
	VerdictBetter
	VerdictWorse
)

func (v Verdict) String() string {
	switch v {
	case VerdictBetter:
		return "Better"
	case VerdictWorse:
		return "Worse"
	default:
		return "—"
	}
}

// Rating is the three-way classification of a fund metric against fixed
// threshold bands. The zero value means no verdict (undefined input).
type Rating int

const (
	RatingNone Rating = iota
	RatingGood
	RatingAverage
	RatingPoor
)

func (r Rating) String() string {
	switch r {
	case RatingGood:
		return "Good"
	case RatingAverage:
		return "Average"
	case RatingPoor:
		return "Poor"
	default:
		return "—"
	}
}

// ComparisonRow is one line of the metrics-vs-baseline table. Subject and
// Baseline are nil when the underlying value is absent.
type ComparisonRow struct {
	Label          string
	Subject        *float64
	Baseline       *float64
	Interpretation string
	Verdict        Verdict
}

// FundMetricRow is one line of the fund evaluation table. Value is nil when
// the metric could not be computed. Percent marks values formatted as
// percentages at display time.
type FundMetricRow struct {
	Metric    string
	Value     *float64
	Percent   bool
	Benchmark string
	Rating    Rating
}

// StockReport is everything the presentation layer needs for one equity run.
type StockReport struct {
	Symbol    string
	Name      string
	Price     string
	Sector    string
	Industry  string
	HasPeers  bool
	Rows      []ComparisonRow
	Narrative string
	Expected  float64
	Trend     PriceSeries
}

// FundReport is everything the presentation layer needs for one fund run.
// Expected is nil when 3-year CAGR or Sharpe is undefined.
type FundReport struct {
	SchemeCode string
	SchemeName string
	Rows       []FundMetricRow
	Expected   *float64
	Trend      PriceSeries
}
