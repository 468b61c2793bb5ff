package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/komsit37/fin/pkg/fin/types"
)

func TestExtract(t *testing.T) {
	info := map[string]float64{
		"trailingPE":       24.5,
		"returnOnEquity":   0.18,
		"operatingMargins": 0.22,
		"revenueGrowth":    0.07,
		"debtToEquity":     0.8,
		"marketCap":        1e12, // unrecognized, dropped
	}
	got := Extract(info)
	assert.Equal(t, types.MetricSet{
		types.PE:         24.5,
		types.ROE:        0.18,
		types.Margin:     0.22,
		types.RevGrowth:  0.07,
		types.DebtEquity: 0.8,
	}, got)
}

func TestExtractPartial(t *testing.T) {
	got := Extract(map[string]float64{"trailingPE": 15})
	assert.Equal(t, types.MetricSet{types.PE: 15}, got)

	assert.Empty(t, Extract(nil))
}

func TestAverageSkipsAbsent(t *testing.T) {
	sets := []types.MetricSet{
		{types.PE: 10, types.ROE: 0.10},
		{types.PE: 20},
		{types.PE: 30, types.ROE: 0.20},
	}
	got := Average(sets)
	assert.InDelta(t, 20.0, got[types.PE], 1e-12)
	// roe averaged over the two sets that carry it, not three
	assert.InDelta(t, 0.15, got[types.ROE], 1e-12)
	_, ok := got.Get(types.Margin)
	assert.False(t, ok)
}

func TestAverageEmpty(t *testing.T) {
	assert.Empty(t, Average(nil))
	assert.Empty(t, Average([]types.MetricSet{{}, {}}))
}
