package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komsit37/fin/pkg/fin/types"
)

func f(v float64) *float64 { return &v }

func TestEquity(t *testing.T) {
	// rev_growth 8%, ROE bonus applies, D/E penalty applies
	m := types.MetricSet{types.RevGrowth: 0.08, types.ROE: 0.20, types.DebtEquity: 1.5}
	assert.InDelta(t, 0.09, Equity(m), 1e-12)
}

func TestEquityNoBonusNoPenalty(t *testing.T) {
	m := types.MetricSet{types.RevGrowth: 0.08, types.ROE: 0.15, types.DebtEquity: 1.0}
	assert.InDelta(t, 0.08, Equity(m), 1e-12)
}

func TestEquityAbsentDefaults(t *testing.T) {
	assert.Zero(t, Equity(types.MetricSet{}))
	// absent revenue growth with a penalty still applies: result is negative
	m := types.MetricSet{types.DebtEquity: 2.0}
	assert.InDelta(t, -0.02, Equity(m), 1e-12)
}

func TestFundClampsSharpe(t *testing.T) {
	got := Fund(f(0.10), f(2.0))
	require.NotNil(t, got)
	assert.InDelta(t, 0.12, *got, 1e-12)

	got = Fund(f(0.10), f(0.1))
	require.NotNil(t, got)
	assert.InDelta(t, 0.05, *got, 1e-12)

	got = Fund(f(0.10), f(0.9))
	require.NotNil(t, got)
	assert.InDelta(t, 0.09, *got, 1e-12)
}

func TestFundUndefinedInputs(t *testing.T) {
	assert.Nil(t, Fund(nil, f(1.0)))
	assert.Nil(t, Fund(f(0.10), nil))
	assert.Nil(t, Fund(nil, nil))
}
