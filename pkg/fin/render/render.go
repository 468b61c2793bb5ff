package render

import (
	"fmt"
	"io"

	"github.com/komsit37/fin/pkg/fin/types"
)

// Renderer renders analysis reports to an output writer.
type Renderer interface {
	RenderStock(w io.Writer, r *types.StockReport, opts Options) error
	RenderFund(w io.Writer, r *types.FundReport, opts Options) error
}

type Options struct {
	Color      bool
	PrettyJSON bool
}

// formatValue renders an optional numeric for display, "—" when absent.
// Fractional values are converted to percent only here, at the display edge.
func formatValue(v *float64, percent bool) string {
	if v == nil {
		return "—"
	}
	if percent {
		return fmt.Sprintf("%.2f%%", *v*100)
	}
	return fmt.Sprintf("%.2f", *v)
}
