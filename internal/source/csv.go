// Package source loads interval records from tabular input.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/planfold/planfold/internal/solver"
)

// Expected header column names. Order is free; columns are matched by
// name.
const (
	ColumnStart = "Interval_start"
	ColumnEnd   = "Interval_end"
	ColumnCost  = "Cost"
)

// ReadCSV parses interval records from r. The first row must be a
// header containing the Interval_start, Interval_end and Cost columns.
// Any missing column or non-integer cell aborts the whole read with an
// error naming the offending row; no partial result is returned.
func ReadCSV(r io.Reader) ([]solver.Interval, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read header: input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range []string{ColumnStart, ColumnEnd, ColumnCost} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var intervals []solver.Interval
	row := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		start, err := intField(record, index[ColumnStart], ColumnStart, row)
		if err != nil {
			return nil, err
		}
		end, err := intField(record, index[ColumnEnd], ColumnEnd, row)
		if err != nil {
			return nil, err
		}
		cost, err := intField(record, index[ColumnCost], ColumnCost, row)
		if err != nil {
			return nil, err
		}

		intervals = append(intervals, solver.Interval{Start: start, End: end, Cost: cost})
	}
	return intervals, nil
}

// ReadFile loads intervals from a CSV file on disk.
func ReadFile(path string) ([]solver.Interval, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open intervals: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

func intField(record []string, i int, name string, row int) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(record[i]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: column %s: %w", row, name, err)
	}
	return v, nil
}
