package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komsit37/fin/pkg/fin/types"
)

func f(v float64) *float64 { return &v }

func trend(prices ...float64) types.PriceSeries {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := make(types.PriceSeries, len(prices))
	for i, p := range prices {
		s[i] = types.Point{Date: base.AddDate(0, 0, i), Price: p}
	}
	return s
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "—", formatValue(nil, true))
	assert.Equal(t, "—", formatValue(nil, false))
	assert.Equal(t, "12.68%", formatValue(f(0.1268), true))
	assert.Equal(t, "1.23", formatValue(f(1.2345), false))
	assert.Equal(t, "-33.33%", formatValue(f(-1.0/3.0), true))
}

func TestTableRendererStock(t *testing.T) {
	rep := &types.StockReport{
		Symbol:   "RELIANCE.NS",
		Sector:   "Energy",
		Industry: "Oil & Gas",
		HasPeers: true,
		Rows: []types.ComparisonRow{
			{Label: "P/E Ratio", Subject: f(10), Baseline: f(25), Interpretation: "<15 Cheap | 15–25 Fair | >25 Expensive", Verdict: types.VerdictBetter},
			{Label: "ROE", Verdict: types.VerdictUnknown},
		},
		Narrative: "Strengths: P/E Ratio.",
		Expected:  0.09,
		Trend:     trend(100, 110, 105, 120),
	}
	var buf bytes.Buffer
	require.NoError(t, NewTableRenderer().RenderStock(&buf, rep, Options{}))
	out := buf.String()

	assert.Contains(t, out, "RELIANCE.NS")
	assert.Contains(t, out, "Energy")
	assert.Contains(t, out, "P/E Ratio")
	assert.Contains(t, out, "Better")
	assert.Contains(t, out, "Strengths: P/E Ratio.")
	assert.Contains(t, out, "Expected annual return: 9.00%")
	// absent values render as an em dash, not a zero
	assert.Contains(t, out, "—")
}

func TestTableRendererStockNoPeers(t *testing.T) {
	rep := &types.StockReport{
		Symbol: "XYZ.NS",
		Sector: "Basic Materials",
		Rows:   []types.ComparisonRow{{Label: "P/E Ratio", Subject: f(10), Verdict: types.VerdictUnknown}},
		Trend:  trend(100, 101),
	}
	var buf bytes.Buffer
	require.NoError(t, NewTableRenderer().RenderStock(&buf, rep, Options{}))
	assert.Contains(t, buf.String(), "Sector benchmarking is not available")
}

func TestTableRendererFund(t *testing.T) {
	rep := &types.FundReport{
		SchemeCode: "118834",
		SchemeName: "Test Fund",
		Rows: []types.FundMetricRow{
			{Metric: "1Y CAGR", Value: f(0.15), Percent: true, Benchmark: ">12% Good | 8–12% Avg | <8% Poor", Rating: types.RatingGood},
			{Metric: "Sharpe Ratio", Value: nil, Benchmark: ">1 Good | 0.5–1 Avg | <0.5 Poor", Rating: types.RatingNone},
		},
		Expected: nil,
		Trend:    trend(100, 102, 104),
	}
	var buf bytes.Buffer
	require.NoError(t, NewTableRenderer().RenderFund(&buf, rep, Options{}))
	out := buf.String()

	assert.Contains(t, out, "TEST FUND")
	assert.Contains(t, out, "15.00%")
	assert.Contains(t, out, "Good")
	assert.Contains(t, out, "insufficient history")
}

func TestChart(t *testing.T) {
	var buf bytes.Buffer
	Chart(&buf, trend(100, 120, 90, 95, 150, 100), 8, 40)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// height rows plus the date axis
	require.Len(t, lines, 9)
	assert.Contains(t, lines[0], "150.00")
	assert.Contains(t, lines[7], "90.00")
	assert.Contains(t, lines[8], "2025-01-01")
	assert.Contains(t, lines[8], "2025-01-06")
}

func TestChartFlatAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	Chart(&buf, trend(100, 100, 100), 6, 40)
	assert.NotEmpty(t, buf.String())

	buf.Reset()
	Chart(&buf, nil, 6, 40)
	assert.Empty(t, buf.String())
}
