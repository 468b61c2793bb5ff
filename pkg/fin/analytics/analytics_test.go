package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komsit37/fin/pkg/fin/types"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func series(points ...types.Point) types.PriceSeries { return points }

func TestWindowedCAGROneYear(t *testing.T) {
	s := series(
		types.Point{Date: day("2024-01-01"), Price: 100},
		types.Point{Date: day("2024-07-01"), Price: 95},
		types.Point{Date: day("2025-01-01"), Price: 120},
	)
	got := WindowedCAGR(s, 1)
	require.NotNil(t, got)
	assert.InDelta(t, 0.20, *got, 1e-12)
}

func TestWindowedCAGRThreeYears(t *testing.T) {
	s := series(
		types.Point{Date: day("2022-01-01"), Price: 100},
		types.Point{Date: day("2023-06-01"), Price: 110},
		types.Point{Date: day("2025-01-01"), Price: 133.1},
	)
	got := WindowedCAGR(s, 3)
	require.NotNil(t, got)
	// (1.331)^(1/3) - 1 = 0.10
	assert.InDelta(t, 0.10, *got, 1e-9)
}

func TestWindowedCAGRFiltersToWindow(t *testing.T) {
	// The stale 2020 point must not leak into a 1-year window.
	s := series(
		types.Point{Date: day("2020-01-01"), Price: 10},
		types.Point{Date: day("2024-02-01"), Price: 100},
		types.Point{Date: day("2025-01-01"), Price: 150},
	)
	got := WindowedCAGR(s, 1)
	require.NotNil(t, got)
	assert.InDelta(t, 0.50, *got, 1e-12)
}

func TestWindowedCAGRUndefined(t *testing.T) {
	assert.Nil(t, WindowedCAGR(nil, 1))
	// only one point inside the window
	one := series(
		types.Point{Date: day("2020-01-01"), Price: 10},
		types.Point{Date: day("2025-01-01"), Price: 150},
	)
	assert.Nil(t, WindowedCAGR(one, 1))
	// zero first value
	zero := series(
		types.Point{Date: day("2024-06-01"), Price: 0},
		types.Point{Date: day("2025-01-01"), Price: 150},
	)
	assert.Nil(t, WindowedCAGR(zero, 1))
}

func TestAnnualizedVolatility(t *testing.T) {
	got := AnnualizedVolatility([]float64{0.01, -0.01})
	require.NotNil(t, got)
	// sample stddev of {0.01,-0.01} is sqrt(0.0002), annualized by sqrt(252)
	assert.InDelta(t, math.Sqrt(0.0002*252), *got, 1e-12)

	assert.Nil(t, AnnualizedVolatility(nil))
	assert.Nil(t, AnnualizedVolatility([]float64{0.01}))
}

func TestSharpeRatio(t *testing.T) {
	got := SharpeRatio([]float64{0.01, 0.02, -0.005, 0.015})
	require.NotNil(t, got)

	// Constant returns mean zero volatility: undefined, not infinity.
	assert.Nil(t, SharpeRatio([]float64{0.01, 0.01, 0.01}))
	assert.Nil(t, SharpeRatio([]float64{0.01}))
}

func TestMaxDrawdown(t *testing.T) {
	prices := []float64{100, 120, 90, 95, 150, 100}
	s := make(types.PriceSeries, len(prices))
	base := day("2025-01-01")
	for i, p := range prices {
		s[i] = types.Point{Date: base.AddDate(0, 0, i), Price: p}
	}
	got := MaxDrawdown(s)
	require.NotNil(t, got)
	assert.InDelta(t, -1.0/3.0, *got, 1e-12)
}

func TestMaxDrawdownNonDecreasing(t *testing.T) {
	s := series(
		types.Point{Date: day("2025-01-01"), Price: 100},
		types.Point{Date: day("2025-01-02"), Price: 100},
		types.Point{Date: day("2025-01-03"), Price: 130},
	)
	got := MaxDrawdown(s)
	require.NotNil(t, got)
	assert.Zero(t, *got)

	assert.Nil(t, MaxDrawdown(nil))
}
