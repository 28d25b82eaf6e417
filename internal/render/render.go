// Package render writes solved plans to an output stream.
package render

import (
	"fmt"
	"io"

	"github.com/planfold/planfold/internal/solver"
)

// WritePlan reports a solved plan: one (start, end, cost) line per
// selected interval, then the final score, the summed cost of the
// selection, and the selected count.
func WritePlan(w io.Writer, selected []solver.Interval, score float64) {
	fmt.Fprintln(w, "Optimal set of intervals:")
	for _, iv := range selected {
		fmt.Fprintf(w, "(%d, %d, %d)\n", iv.Start, iv.End, iv.Cost)
	}

	fmt.Fprintf(w, "\nMaximum Score: %g\n", score)
	fmt.Fprintf(w, "\nTotal Cost Score: %d\n", solver.TotalCost(selected))
	fmt.Fprintf(w, "\nCount Intervals: %d\n", len(selected))
}
