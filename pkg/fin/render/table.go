package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/komsit37/fin/pkg/fin/types"
)

// TableRenderer renders reports as terminal tables.
type TableRenderer struct{}

func NewTableRenderer() *TableRenderer { return &TableRenderer{} }

func (r *TableRenderer) RenderStock(w io.Writer, rep *types.StockReport, opts Options) error {
	title := rep.Symbol
	if rep.Name != "" {
		title = rep.Name + " (" + rep.Symbol + ")"
	}
	if rep.Price != "" {
		title += "  " + rep.Price
	}
	fmt.Fprintln(w, text.Bold.Sprint(strings.ToUpper(title)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, text.Bold.Sprint("COMPANY CLASSIFICATION"))
	tw := newTable(w)
	tw.AppendHeader(table.Row{"CATEGORY", "VALUE"})
	tw.AppendRow(table.Row{"Sector", rep.Sector})
	tw.AppendRow(table.Row{"Industry", rep.Industry})
	tw.Render()
	fmt.Fprintln(w)

	if rep.HasPeers {
		fmt.Fprintln(w, text.Bold.Sprint("STOCK VS SECTOR COMPARISON"))
	} else {
		fmt.Fprintf(w, "Sector benchmarking is not available for %q yet. Raw metrics are shown without peer comparison.\n", rep.Sector)
	}
	tw = newTable(w)
	tw.AppendHeader(table.Row{"METRIC", "STOCK", "SECTOR AVG", "INTERPRETATION", "VERDICT"})
	for _, row := range rep.Rows {
		tw.AppendRow(table.Row{
			row.Label,
			formatValue(row.Subject, false),
			formatValue(row.Baseline, false),
			row.Interpretation,
			colorVerdict(row.Verdict, opts.Color),
		})
	}
	tw.Render()
	fmt.Fprintln(w)

	if rep.HasPeers {
		fmt.Fprintln(w, text.Bold.Sprint("WHY THIS STOCK?"))
		fmt.Fprintln(w, rep.Narrative)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, text.Bold.Sprint("EXPECTED RETURN (INDICATIVE)"))
	fmt.Fprintf(w, "Expected annual return: %.2f%%\n", rep.Expected*100)
	fmt.Fprintln(w, "Based on revenue growth, profitability (ROE), and leverage risk. This is an estimate for comparison, not a prediction.")
	fmt.Fprintln(w)

	fmt.Fprintln(w, text.Bold.Sprint("1-YEAR PRICE TREND"))
	Chart(w, rep.Trend, 10, 72)
	return nil
}

func (r *TableRenderer) RenderFund(w io.Writer, rep *types.FundReport, opts Options) error {
	name := rep.SchemeName
	if name == "" {
		name = "Scheme " + rep.SchemeCode
	}
	fmt.Fprintln(w, text.Bold.Sprint(strings.ToUpper(name)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, text.Bold.Sprint("MUTUAL FUND PERFORMANCE EVALUATION"))
	tw := newTable(w)
	tw.AppendHeader(table.Row{"METRIC", "VALUE", "BENCHMARK", "VERDICT"})
	for _, row := range rep.Rows {
		tw.AppendRow(table.Row{
			row.Metric,
			formatValue(row.Value, row.Percent),
			row.Benchmark,
			colorRating(row.Rating, opts.Color),
		})
	}
	tw.Render()
	fmt.Fprintln(w)

	fmt.Fprintln(w, text.Bold.Sprint("EXPECTED RETURN (INDICATIVE)"))
	if rep.Expected != nil {
		fmt.Fprintf(w, "Expected annual return: %.2f%%\n", *rep.Expected*100)
	} else {
		fmt.Fprintln(w, "Expected annual return: — (insufficient history)")
	}
	fmt.Fprintln(w, "Based on long-term CAGR adjusted for risk (Sharpe ratio).")
	fmt.Fprintln(w)

	fmt.Fprintln(w, text.Bold.Sprint("NAV TREND"))
	Chart(w, rep.Trend, 10, 72)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Benchmarks are generalized for equity mutual funds. Expected return is not a prediction and should be used for comparison only.")
	return nil
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleColoredDark)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false
	return tw
}

func colorVerdict(v types.Verdict, color bool) string {
	s := v.String()
	if !color {
		return s
	}
	switch v {
	case types.VerdictBetter:
		return text.Colors{text.FgGreen}.Sprint(s)
	case types.VerdictWorse:
		return text.Colors{text.FgRed}.Sprint(s)
	default:
		return s
	}
}

func colorRating(r types.Rating, color bool) string {
	s := r.String()
	if !color {
		return s
	}
	switch r {
	case types.RatingGood:
		return text.Colors{text.FgGreen}.Sprint(s)
	case types.RatingAverage:
		return text.Colors{text.FgYellow}.Sprint(s)
	case types.RatingPoor:
		return text.Colors{text.FgRed}.Sprint(s)
	default:
		return s
	}
}
