// Package compare aligns a subject's metrics against a baseline and assigns
// per-metric verdicts plus a strengths/weaknesses narrative.
package compare

import (
	"strings"

	"github.com/komsit37/fin/pkg/fin/types"
)

// Neutral is returned when no metric could be compared in either direction.
const Neutral = "The stock performs broadly in line with sector peers."

// Build produces one row per definition, preserving definition order. When
// either side is absent the verdict is Unknown and no directional comparison
// is attempted. Exact ties classify as Worse: Better requires a strict
// inequality in the favorable direction.
func Build(defs []types.MetricDefinition, subject, baseline types.MetricSet) []types.ComparisonRow {
	rows := make([]types.ComparisonRow, 0, len(defs))
	for _, def := range defs {
		row := types.ComparisonRow{
			Label:          def.Label,
			Subject:        subject.Ptr(def.Key),
			Baseline:       baseline.Ptr(def.Key),
			Interpretation: def.Bands,
			Verdict:        types.VerdictUnknown,
		}
		if row.Subject != nil && row.Baseline != nil {
			if better(def, *row.Subject, *row.Baseline) {
				row.Verdict = types.VerdictBetter
			} else {
				row.Verdict = types.VerdictWorse
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Narrative partitions comparable metrics into strengths and weaknesses by
// label. Metrics missing on either side are excluded from both groups. When
// nothing is comparable the neutral statement is returned, never an error.
func Narrative(defs []types.MetricDefinition, subject, baseline types.MetricSet) string {
	var positives, negatives []string
	for _, def := range defs {
		s, sok := subject.Get(def.Key)
		b, bok := baseline.Get(def.Key)
		if !sok || !bok {
			continue
		}
		if better(def, s, b) {
			positives = append(positives, def.Label)
		} else {
			negatives = append(negatives, def.Label)
		}
	}
	if len(positives) == 0 && len(negatives) == 0 {
		return Neutral
	}
	var parts []string
	if len(positives) > 0 {
		parts = append(parts, "Strengths: "+strings.Join(positives, ", ")+".")
	}
	if len(negatives) > 0 {
		parts = append(parts, "Weaknesses: "+strings.Join(negatives, ", ")+".")
	}
	return strings.Join(parts, " ")
}

func better(def types.MetricDefinition, s, b float64) bool {
	if def.LowerIsBetter {
		return s < b
	}
	return s > b
}
