package render

import (
	"encoding/json"
	"io"

	"github.com/komsit37/fin/pkg/fin/types"
)

// Output shapes for JSONRenderer. Optional numerics stay raw fractional
// values here; consumers do their own display formatting.
type jsonComparisonRow struct {
	Metric         string   `json:"metric"`
	Stock          *float64 `json:"stock"`
	SectorAvg      *float64 `json:"sector_avg"`
	Interpretation string   `json:"interpretation"`
	Verdict        string   `json:"verdict"`
}

type jsonFundRow struct {
	Metric    string   `json:"metric"`
	Value     *float64 `json:"value"`
	Benchmark string   `json:"benchmark"`
	Verdict   string   `json:"verdict"`
}

type jsonPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type jsonStockReport struct {
	Symbol         string              `json:"symbol"`
	Name           string              `json:"name,omitempty"`
	Price          string              `json:"price,omitempty"`
	Sector         string              `json:"sector"`
	Industry       string              `json:"industry"`
	PeerComparison bool                `json:"peer_comparison"`
	Comparison     []jsonComparisonRow `json:"comparison"`
	Narrative      string              `json:"narrative,omitempty"`
	ExpectedReturn float64             `json:"expected_return"`
	Trend          []jsonPoint         `json:"trend"`
}

type jsonFundReport struct {
	SchemeCode     string        `json:"scheme_code"`
	SchemeName     string        `json:"scheme_name"`
	Evaluation     []jsonFundRow `json:"evaluation"`
	ExpectedReturn *float64      `json:"expected_return"`
	Trend          []jsonPoint   `json:"trend"`
}

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) RenderStock(w io.Writer, rep *types.StockReport, opts Options) error {
	out := jsonStockReport{
		Symbol:         rep.Symbol,
		Name:           rep.Name,
		Price:          rep.Price,
		Sector:         rep.Sector,
		Industry:       rep.Industry,
		PeerComparison: rep.HasPeers,
		Comparison:     make([]jsonComparisonRow, 0, len(rep.Rows)),
		Narrative:      rep.Narrative,
		ExpectedReturn: rep.Expected,
		Trend:          trendPoints(rep.Trend),
	}
	for _, row := range rep.Rows {
		out.Comparison = append(out.Comparison, jsonComparisonRow{
			Metric:         row.Label,
			Stock:          row.Subject,
			SectorAvg:      row.Baseline,
			Interpretation: row.Interpretation,
			Verdict:        row.Verdict.String(),
		})
	}
	return encode(w, out, opts)
}

func (r *JSONRenderer) RenderFund(w io.Writer, rep *types.FundReport, opts Options) error {
	out := jsonFundReport{
		SchemeCode:     rep.SchemeCode,
		SchemeName:     rep.SchemeName,
		Evaluation:     make([]jsonFundRow, 0, len(rep.Rows)),
		ExpectedReturn: rep.Expected,
		Trend:          trendPoints(rep.Trend),
	}
	for _, row := range rep.Rows {
		out.Evaluation = append(out.Evaluation, jsonFundRow{
			Metric:    row.Metric,
			Value:     row.Value,
			Benchmark: row.Benchmark,
			Verdict:   row.Rating.String(),
		})
	}
	return encode(w, out, opts)
}

func trendPoints(s types.PriceSeries) []jsonPoint {
	out := make([]jsonPoint, 0, len(s))
	for _, p := range s {
		out = append(out, jsonPoint{Date: p.Date.Format("2006-01-02"), Value: p.Price})
	}
	return out
}

func encode(w io.Writer, v any, opts Options) error {
	enc := json.NewEncoder(w)
	if opts.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
