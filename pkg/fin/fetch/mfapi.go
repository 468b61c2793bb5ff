package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/komsit37/fin/pkg/fin/types"
)

const mfapiBaseURL = "https://api.mfapi.in"

// mfapi dates are day-first.
const mfapiDateLayout = "02-01-2006"

// FundHistory is a scheme's name and its NAV series, ascending by date.
type FundHistory struct {
	SchemeName string
	Series     types.PriceSeries
}

// MFAPIClient fetches mutual fund NAV history from api.mfapi.in.
type MFAPIClient struct {
	http    *http.Client
	baseURL string
	timeout time.Duration
	log     zerolog.Logger
}

func NewMFAPIClient(timeout time.Duration, log zerolog.Logger) *MFAPIClient {
	return &MFAPIClient{
		http:    &http.Client{Timeout: timeout},
		baseURL: mfapiBaseURL,
		timeout: timeout,
		log:     log.With().Str("service", "mfapi").Logger(),
	}
}

// SetBaseURL overrides the endpoint, used by tests.
func (c *MFAPIClient) SetBaseURL(u string) { c.baseURL = u }

type mfPayload struct {
	Meta struct {
		SchemeName string `json:"scheme_name"`
	} `json:"meta"`
	Data []struct {
		Date string `json:"date"`
		NAV  string `json:"nav"`
	} `json:"data"`
}

// History fetches and parses the NAV history for a scheme code. The payload
// arrives in arbitrary order with day-first dates and string-formatted NAVs;
// the result is sorted ascending with duplicate dates dropped.
func (c *MFAPIClient) History(ctx context.Context, schemeCode string) (FundHistory, error) {
	url := fmt.Sprintf("%s/mf/%s", c.baseURL, schemeCode)
	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(cctx, http.MethodGet, url, nil)
	if err != nil {
		return FundHistory{}, err
	}
	c.log.Debug().Str("url", url).Msg("fetch")
	resp, err := c.http.Do(req)
	if err != nil {
		return FundHistory{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return FundHistory{}, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	var payload mfPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return FundHistory{}, fmt.Errorf("decode mfapi payload: %w", err)
	}
	if len(payload.Data) == 0 {
		return FundHistory{}, fmt.Errorf("no NAV data for scheme %s", schemeCode)
	}

	series := make(types.PriceSeries, 0, len(payload.Data))
	for _, rec := range payload.Data {
		d, err := time.Parse(mfapiDateLayout, rec.Date)
		if err != nil {
			return FundHistory{}, fmt.Errorf("scheme %s: bad date %q: %w", schemeCode, rec.Date, err)
		}
		nav, err := strconv.ParseFloat(rec.NAV, 64)
		if err != nil {
			return FundHistory{}, fmt.Errorf("scheme %s: bad nav %q: %w", schemeCode, rec.NAV, err)
		}
		series = append(series, types.Point{Date: d, Price: nav})
	}
	sort.SliceStable(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	// Drop duplicate dates, keeping the first occurrence in payload order.
	dedup := series[:1]
	for _, p := range series[1:] {
		if p.Date.Equal(dedup[len(dedup)-1].Date) {
			continue
		}
		dedup = append(dedup, p)
	}
	return FundHistory{SchemeName: payload.Meta.SchemeName, Series: dedup}, nil
}
