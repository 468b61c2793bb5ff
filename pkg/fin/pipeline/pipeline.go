// Package pipeline wires the fetch, analytics, comparison and estimation
// steps into a single synchronous run per asset class. Runs are independent
// and idempotent: identical inputs produce identical reports.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/komsit37/fin/pkg/fin/analytics"
	"github.com/komsit37/fin/pkg/fin/compare"
	"github.com/komsit37/fin/pkg/fin/config"
	"github.com/komsit37/fin/pkg/fin/estimate"
	"github.com/komsit37/fin/pkg/fin/fetch"
	"github.com/komsit37/fin/pkg/fin/metrics"
	"github.com/komsit37/fin/pkg/fin/render"
	"github.com/komsit37/fin/pkg/fin/types"
	"github.com/komsit37/fin/pkg/fin/verdict"
)

// StockData fetches everything an equity run needs.
type StockData interface {
	Quote(ctx context.Context, sym string) (fetch.Quote, error)
	Info(ctx context.Context, sym string) (fetch.CompanyInfo, error)
	History(ctx context.Context, sym string) (types.PriceSeries, error)
}

// FundData fetches everything a fund run needs.
type FundData interface {
	History(ctx context.Context, schemeCode string) (fetch.FundHistory, error)
}

// StockRunner runs the full equity analysis for one symbol.
type StockRunner struct {
	Data     StockData
	Peers    fetch.MetricsSource
	Config   config.Config
	Renderer render.Renderer
	Writer   io.Writer
	Log      zerolog.Logger
}

func (r *StockRunner) Execute(ctx context.Context, symbol string, opts render.Options) error {
	info, err := r.Data.Info(ctx, symbol)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", symbol, err)
	}
	hist, err := r.Data.History(ctx, symbol)
	if err != nil {
		return fmt.Errorf("fetch history %s: %w", symbol, err)
	}
	// Quote is a display nicety only; a failure leaves the header sparse.
	quote, err := r.Data.Quote(ctx, symbol)
	if err != nil {
		r.Log.Debug().Err(err).Str("sym", symbol).Msg("quote unavailable")
	}

	subject := metrics.Extract(info.Fields)
	report := &types.StockReport{
		Symbol:   symbol,
		Name:     quote.Name,
		Price:    quote.Price,
		Sector:   info.Sector,
		Industry: info.Industry,
		Expected: estimate.Equity(subject),
		Trend:    hist,
	}

	var baseline types.MetricSet
	if peers, ok := r.Config.Peers(info.Sector); ok {
		sets := make([]types.MetricSet, 0, len(peers))
		for _, p := range peers {
			m, err := r.Peers.Metrics(ctx, p)
			if err != nil {
				r.Log.Warn().Err(err).Str("peer", p).Msg("skipping peer")
				continue
			}
			sets = append(sets, m)
		}
		baseline = metrics.Average(sets)
		report.HasPeers = true
		report.Narrative = compare.Narrative(r.Config.Metrics, subject, baseline)
	}
	report.Rows = compare.Build(r.Config.Metrics, subject, baseline)

	return r.Renderer.RenderStock(r.Writer, report, opts)
}

// FundRunner runs the full mutual fund analysis for one scheme code.
type FundRunner struct {
	Data     FundData
	Renderer render.Renderer
	Writer   io.Writer
	Log      zerolog.Logger
}

func (r *FundRunner) Execute(ctx context.Context, schemeCode string, opts render.Options) error {
	fh, err := r.Data.History(ctx, schemeCode)
	if err != nil {
		return fmt.Errorf("fetch scheme %s: %w", schemeCode, err)
	}
	report := BuildFundReport(schemeCode, fh)
	return r.Renderer.RenderFund(r.Writer, report, opts)
}

// BuildFundReport computes the evaluation rows and expected return from a
// NAV history. Pure apart from its input; exposed for tests.
func BuildFundReport(schemeCode string, fh fetch.FundHistory) *types.FundReport {
	s := fh.Series
	rets := s.Returns()

	cagr1 := analytics.WindowedCAGR(s, 1)
	cagr3 := analytics.WindowedCAGR(s, 3)
	vol := analytics.AnnualizedVolatility(rets)
	sharpe := analytics.SharpeRatio(rets)
	dd := analytics.MaxDrawdown(s)

	row := func(c verdict.Category, v *float64, percent bool) types.FundMetricRow {
		return types.FundMetricRow{
			Metric:    string(c),
			Value:     v,
			Percent:   percent,
			Benchmark: verdict.Benchmark(c),
			Rating:    verdict.Classify(c, v),
		}
	}
	return &types.FundReport{
		SchemeCode: schemeCode,
		SchemeName: fh.SchemeName,
		Rows: []types.FundMetricRow{
			row(verdict.CAGR1Y, cagr1, true),
			row(verdict.CAGR3Y, cagr3, true),
			row(verdict.Volatility, vol, true),
			row(verdict.Sharpe, sharpe, false),
			row(verdict.MaxDrawdown, dd, true),
		},
		Expected: estimate.Fund(cagr3, sharpe),
		Trend:    s,
	}
}
