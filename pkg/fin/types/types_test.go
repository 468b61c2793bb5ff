package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturns(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := PriceSeries{
		{Date: base, Price: 100},
		{Date: base.AddDate(0, 0, 1), Price: 110},
		{Date: base.AddDate(0, 0, 2), Price: 99},
	}
	got := s.Returns()
	require.Len(t, got, 2)
	assert.InDelta(t, 0.10, got[0], 1e-12)
	assert.InDelta(t, -0.10, got[1], 1e-12)

	assert.Nil(t, PriceSeries{{Date: base, Price: 100}}.Returns())
	assert.Nil(t, PriceSeries(nil).Returns())
}

func TestMetricSetPtr(t *testing.T) {
	m := MetricSet{PE: 12.5}
	p := m.Ptr(PE)
	require.NotNil(t, p)
	assert.Equal(t, 12.5, *p)
	assert.Nil(t, m.Ptr(ROE))
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Better", VerdictBetter.String())
	assert.Equal(t, "Worse", VerdictWorse.String())
	assert.Equal(t, "—", VerdictUnknown.String())

	assert.Equal(t, "Good", RatingGood.String())
	assert.Equal(t, "Average", RatingAverage.String())
	assert.Equal(t, "Poor", RatingPoor.String())
	assert.Equal(t, "—", RatingNone.String())
}
