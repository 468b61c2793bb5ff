package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/komsit37/fin/pkg/fin/types"
)

// Chart prints a fixed-size ASCII line chart of the series. The series is
// downsampled to width columns (last observation per bucket) and scaled to
// height rows. A flat series renders as a single mid-row line.
func Chart(w io.Writer, s types.PriceSeries, height, width int) {
	if len(s) == 0 || height < 2 || width < 2 {
		return
	}
	cols := sample(s, width)

	lo, hi := cols[0], cols[0]
	for _, v := range cols {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	rows := make([]int, len(cols))
	for i, v := range cols {
		if hi == lo {
			rows[i] = height / 2
			continue
		}
		// row 0 is the top line
		rows[i] = int(float64(height-1) * (hi - v) / (hi - lo))
	}

	grid := make([][]byte, height)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", len(cols)))
	}
	for i, r := range rows {
		grid[r][i] = '*'
		// fill vertical gaps between adjacent columns
		if i > 0 && rows[i-1] != r {
			prev := rows[i-1]
			step := 1
			if prev < r {
				step = -1
			}
			for rr := r + step; rr != prev; rr += step {
				if grid[rr][i] == ' ' {
					grid[rr][i] = '|'
				}
			}
		}
	}

	for r, line := range grid {
		label := "        "
		switch r {
		case 0:
			label = fmt.Sprintf("%8.2f", hi)
		case height - 1:
			label = fmt.Sprintf("%8.2f", lo)
		}
		fmt.Fprintf(w, "%s |%s\n", label, string(line))
	}
	first := s[0].Date.Format("2006-01-02")
	last := s[len(s)-1].Date.Format("2006-01-02")
	pad := len(cols) - len(first) - len(last)
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintf(w, "%s  %s%s%s\n", strings.Repeat(" ", 8), first, strings.Repeat(" ", pad), last)
}

// sample reduces the series to at most width values, keeping the last
// observation of each bucket so the final price is always represented.
func sample(s types.PriceSeries, width int) []float64 {
	if len(s) <= width {
		out := make([]float64, len(s))
		for i, p := range s {
			out[i] = p.Price
		}
		return out
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		end := (i+1)*len(s)/width - 1
		out[i] = s[end].Price
	}
	return out
}
