// Package analytics computes return and risk statistics over a price or NAV
// series. Every function is pure; a nil result marks an undefined value
// (insufficient data or an unmet precondition), never a fabricated zero.
package analytics

import (
	"math"

	"github.com/komsit37/fin/pkg/fin/types"
)

// tradingDays is the canonical annualization factor for daily observations.
const tradingDays = 252

// WindowedCAGR computes the compound annual growth rate over the trailing
// window ending at the last point of the series. For a 1-year window the
// result is the simple return; for longer windows it is geometrically
// annualized. Undefined when the window holds fewer than 2 points or starts
// at zero.
func WindowedCAGR(s types.PriceSeries, years int) *float64 {
	if len(s) == 0 || years < 1 {
		return nil
	}
	cutoff := s[len(s)-1].Date.AddDate(-years, 0, 0)
	start := 0
	for start < len(s) && s[start].Date.Before(cutoff) {
		start++
	}
	w := s[start:]
	if len(w) < 2 {
		return nil
	}
	first, last := w[0].Price, w[len(w)-1].Price
	if first == 0 {
		return nil
	}
	var r float64
	if years == 1 {
		r = last/first - 1
	} else {
		r = math.Pow(last/first, 1/float64(years)) - 1
	}
	return &r
}

// AnnualizedVolatility is the sample standard deviation of the period
// returns scaled by sqrt(252). Undefined with fewer than 2 observations.
func AnnualizedVolatility(returns []float64) *float64 {
	if len(returns) < 2 {
		return nil
	}
	v := stdDev(returns) * math.Sqrt(tradingDays)
	return &v
}

// SharpeRatio is the annualized mean return divided by annualized
// volatility. Undefined when volatility is undefined or zero; a constant
// return series yields nil, not infinity.
func SharpeRatio(returns []float64) *float64 {
	vol := AnnualizedVolatility(returns)
	if vol == nil || *vol == 0 {
		return nil
	}
	r := mean(returns) * tradingDays / *vol
	return &r
}

// MaxDrawdown is the largest peak-to-trough decline: the minimum of
// price/runningMax - 1 over the series. Always <= 0; a non-decreasing
// series yields 0. Undefined on an empty series.
func MaxDrawdown(s types.PriceSeries) *float64 {
	if len(s) == 0 {
		return nil
	}
	peak := s[0].Price
	worst := 0.0
	for _, p := range s {
		if p.Price > peak {
			peak = p.Price
		}
		if peak == 0 {
			continue
		}
		if dd := p.Price/peak - 1; dd < worst {
			worst = dd
		}
	}
	return &worst
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdDev is the sample standard deviation (n-1 divisor).
func stdDev(xs []float64) float64 {
	m := mean(xs)
	var sq float64
	for _, x := range xs {
		d := x - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(xs)-1))
}
