// planrun solves a single interval plan from a CSV file and prints the
// result.
//
// Usage:
//
//	planrun -input intervals.csv -tradeoff 0.8
package main

import (
	"flag"
	"log"
	"os"

	"github.com/planfold/planfold/internal/render"
	"github.com/planfold/planfold/internal/solver"
	"github.com/planfold/planfold/internal/source"
)

func main() {
	input := flag.String("input", "intervals.csv", "path to intervals CSV file")
	tradeOff := flag.Float64("tradeoff", 0.5, "trade-off between cost (0) and count (1)")
	flag.Parse()

	intervals, err := source.ReadFile(*input)
	if err != nil {
		log.Fatalf("load intervals: %v", err)
	}

	selected, score := solver.Solve(intervals, *tradeOff)
	render.WritePlan(os.Stdout, selected, score)
}
