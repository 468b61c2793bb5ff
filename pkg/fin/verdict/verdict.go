// Package verdict classifies fund performance metrics into a fixed
// Good/Average/Poor scale using literal threshold bands.
package verdict

import (
	"fmt"

	"github.com/komsit37/fin/pkg/fin/types"
)

// Category tags a fund metric for classification. The set is closed;
// passing anything else to Classify is a programming error.
type Category string

const (
	CAGR1Y      Category = "1Y CAGR"
	CAGR3Y      Category = "3Y CAGR"
	Volatility  Category = "Volatility"
	Sharpe      Category = "Sharpe Ratio"
	MaxDrawdown Category = "Max Drawdown"
)

// Classify maps a metric value to a rating. A nil value short-circuits to
// RatingNone rather than falling through to a default band.
func Classify(c Category, v *float64) types.Rating {
	if v == nil {
		return types.RatingNone
	}
	x := *v
	switch c {
	case CAGR1Y, CAGR3Y:
		switch {
		case x > 0.12:
			return types.RatingGood
		case x >= 0.08:
			return types.RatingAverage
		default:
			return types.RatingPoor
		}
	case Volatility:
		switch {
		case x < 0.15:
			return types.RatingGood
		case x <= 0.20:
			return types.RatingAverage
		default:
			return types.RatingPoor
		}
	case Sharpe:
		switch {
		case x > 1:
			return types.RatingGood
		case x >= 0.5:
			return types.RatingAverage
		default:
			return types.RatingPoor
		}
	case MaxDrawdown:
		switch {
		case x > -0.25:
			return types.RatingGood
		case x >= -0.40:
			return types.RatingAverage
		default:
			return types.RatingPoor
		}
	default:
		panic(fmt.Sprintf("verdict: unknown category %q", c))
	}
}

// Benchmark returns the display band text for a category.
func Benchmark(c Category) string {
	switch c {
	case CAGR1Y, CAGR3Y:
		return ">12% Good | 8–12% Avg | <8% Poor"
	case Volatility:
		return "<15% Good | 15–20% Avg | >20% Poor"
	case Sharpe:
		return ">1 Good | 0.5–1 Avg | <0.5 Poor"
	case MaxDrawdown:
		return ">-25% Good | -25–40% Avg | <-40% Poor"
	default:
		panic(fmt.Sprintf("verdict: unknown category %q", c))
	}
}
