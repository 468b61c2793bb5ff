// Package metrics extracts the recognized fundamental ratios out of a raw
// company-info record and averages them across peers.
package metrics

import "github.com/komsit37/fin/pkg/fin/types"

// fields maps raw source field names to metric keys.
var fields = map[string]types.MetricKey{
	"trailingPE":       types.PE,
	"returnOnEquity":   types.ROE,
	"operatingMargins": types.Margin,
	"revenueGrowth":    types.RevGrowth,
	"debtToEquity":     types.DebtEquity,
}

// Extract pulls exactly the recognized keys out of a raw info record.
// Missing or unrecognized fields simply yield absent entries; extraction
// never fails.
func Extract(info map[string]float64) types.MetricSet {
	out := make(types.MetricSet, len(fields))
	for field, key := range fields {
		if v, ok := info[field]; ok {
			out[key] = v
		}
	}
	return out
}

// Average computes the per-key mean across peer metric sets. A key is
// present in the result when at least one set carries it; absent values are
// skipped, not treated as zero.
func Average(sets []types.MetricSet) types.MetricSet {
	sums := map[types.MetricKey]float64{}
	counts := map[types.MetricKey]int{}
	for _, s := range sets {
		for k, v := range s {
			sums[k] += v
			counts[k]++
		}
	}
	out := make(types.MetricSet, len(sums))
	for k, sum := range sums {
		out[k] = sum / float64(counts[k])
	}
	return out
}
