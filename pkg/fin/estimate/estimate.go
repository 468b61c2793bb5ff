// Package estimate combines derived metrics into a single indicative
// forward-return figure per asset class. The figures are comparison aids,
// not predictions.
package estimate

import (
	"math"

	"github.com/komsit37/fin/pkg/fin/types"
)

// Equity starts from revenue growth (0 when absent), adds a 3% bonus for
// ROE above 15%, and subtracts a 2% penalty for debt/equity above 1. The
// result is not clamped and may be negative.
func Equity(m types.MetricSet) float64 {
	base, _ := m.Get(types.RevGrowth)
	if roe, ok := m.Get(types.ROE); ok && roe > 0.15 {
		base += 0.03
	}
	if de, ok := m.Get(types.DebtEquity); ok && de > 1 {
		base -= 0.02
	}
	return base
}

// Fund scales 3-year CAGR by the Sharpe ratio clamped to [0.5, 1.2]. When
// either input is undefined the estimate is undefined too, never zero.
func Fund(cagr3y, sharpe *float64) *float64 {
	if cagr3y == nil || sharpe == nil {
		return nil
	}
	adj := math.Min(math.Max(*sharpe, 0.5), 1.2)
	r := *cagr3y * adj
	return &r
}
