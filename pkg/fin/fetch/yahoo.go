// Package fetch holds the external data collaborators: Yahoo Finance for
// equities and MFAPI for Indian mutual funds. Fetch failures abort the run
// before any computation; the core packages never see a partial fetch error,
// only absent fields.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	yfgo "github.com/komsit37/yf-go"
	"github.com/rs/zerolog"

	"github.com/komsit37/fin/pkg/fin/metrics"
	"github.com/komsit37/fin/pkg/fin/types"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// Quote is the display header for a symbol: formatted price and name.
type Quote struct {
	Price string
	Name  string
}

// CompanyInfo is the raw fundamental record for one symbol. Fields carries
// source field names; absent fields are simply missing keys.
type CompanyInfo struct {
	Sector   string
	Industry string
	Fields   map[string]float64
}

// YahooClient fetches quotes, fundamentals and price history.
type YahooClient struct {
	http    *http.Client
	yf      *yfgo.Client
	baseURL string
	timeout time.Duration
	log     zerolog.Logger
}

func NewYahooClient(timeout time.Duration, log zerolog.Logger) *YahooClient {
	return &YahooClient{
		http:    &http.Client{Timeout: timeout},
		yf:      yfgo.NewClient(),
		baseURL: yahooBaseURL,
		timeout: timeout,
		log:     log.With().Str("service", "yahoo").Logger(),
	}
}

// SetBaseURL overrides the endpoint, used by tests.
func (c *YahooClient) SetBaseURL(u string) { c.baseURL = u }

// Quote fetches the current price and name via the typed quote summary.
func (c *YahooClient) Quote(ctx context.Context, sym string) (Quote, error) {
	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	res, err := c.yf.QuoteSummaryTyped(cctx, sym, []yfgo.QuoteSummaryModule{yfgo.ModulePrice})
	if err != nil {
		return Quote{}, err
	}
	if res.Price == nil {
		return Quote{}, fmt.Errorf("no price for %s", sym)
	}
	var q Quote
	p := res.Price.RegularMarketPrice
	if p.Fmt != "" {
		q.Price = p.Fmt
	} else if p.Raw != nil {
		q.Price = fmt.Sprintf("%.2f", *p.Raw)
	}
	if res.Price.ShortName != "" {
		q.Name = res.Price.ShortName
	} else if res.Price.LongName != "" {
		q.Name = res.Price.LongName
	}
	return q, nil
}

// fmtRaw mirrors Yahoo's {raw, fmt} value wrapper.
type fmtRaw struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile *struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
			SummaryDetail *struct {
				TrailingPE fmtRaw `json:"trailingPE"`
			} `json:"summaryDetail"`
			FinancialData *struct {
				ReturnOnEquity   fmtRaw `json:"returnOnEquity"`
				OperatingMargins fmtRaw `json:"operatingMargins"`
				RevenueGrowth    fmtRaw `json:"revenueGrowth"`
				DebtToEquity     fmtRaw `json:"debtToEquity"`
			} `json:"financialData"`
		} `json:"result"`
		Error json.RawMessage `json:"error"`
	} `json:"quoteSummary"`
}

// Info fetches sector, industry and the raw fundamental fields.
func (c *YahooClient) Info(ctx context.Context, sym string) (CompanyInfo, error) {
	url := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=assetProfile,summaryDetail,financialData", c.baseURL, sym)
	var resp quoteSummaryResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return CompanyInfo{}, err
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return CompanyInfo{}, fmt.Errorf("no quote summary for %s", sym)
	}
	r := resp.QuoteSummary.Result[0]
	info := CompanyInfo{Fields: map[string]float64{}}
	if r.AssetProfile != nil {
		info.Sector = r.AssetProfile.Sector
		info.Industry = r.AssetProfile.Industry
	}
	put := func(name string, v fmtRaw) {
		if v.Raw != nil {
			info.Fields[name] = *v.Raw
		}
	}
	if r.SummaryDetail != nil {
		put("trailingPE", r.SummaryDetail.TrailingPE)
	}
	if r.FinancialData != nil {
		put("returnOnEquity", r.FinancialData.ReturnOnEquity)
		put("operatingMargins", r.FinancialData.OperatingMargins)
		put("revenueGrowth", r.FinancialData.RevenueGrowth)
		put("debtToEquity", r.FinancialData.DebtToEquity)
	}
	return info, nil
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error json.RawMessage `json:"error"`
	} `json:"chart"`
}

// History fetches one year of daily closes, ascending by date. Null closes
// (market holidays mid-payload) are skipped.
func (c *YahooClient) History(ctx context.Context, sym string) (types.PriceSeries, error) {
	url := fmt.Sprintf("%s/v8/finance/chart/%s?range=1y&interval=1d", c.baseURL, sym)
	var resp chartResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no chart data for %s", sym)
	}
	r := resp.Chart.Result[0]
	closes := r.Indicators.Quote[0].Close
	if len(r.Timestamp) != len(closes) {
		return nil, fmt.Errorf("chart data for %s: %d timestamps vs %d closes", sym, len(r.Timestamp), len(closes))
	}
	series := make(types.PriceSeries, 0, len(closes))
	for i, ts := range r.Timestamp {
		if closes[i] == nil {
			continue
		}
		series = append(series, types.Point{Date: time.Unix(ts, 0).UTC(), Price: *closes[i]})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	if len(series) == 0 {
		return nil, fmt.Errorf("empty price history for %s", sym)
	}
	return series, nil
}

// Metrics fetches the extracted fundamental metric set for a symbol. Used
// for peer averaging; implements MetricsSource.
func (c *YahooClient) Metrics(ctx context.Context, sym string) (types.MetricSet, error) {
	info, err := c.Info(ctx, sym)
	if err != nil {
		return nil, err
	}
	return metrics.Extract(info.Fields), nil
}

func (c *YahooClient) getJSON(ctx context.Context, url string, out any) error {
	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(cctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; fin/1.0)")
	c.log.Debug().Str("url", url).Msg("fetch")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
