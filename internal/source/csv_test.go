package source

import (
	"reflect"
	"strings"
	"testing"

	"github.com/planfold/planfold/internal/solver"
)

func TestReadCSV(t *testing.T) {
	input := "Interval_start,Interval_end,Cost\n1,3,5\n2,5,1\n4,6,2\n"

	intervals, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	want := []solver.Interval{
		{Start: 1, End: 3, Cost: 5},
		{Start: 2, End: 5, Cost: 1},
		{Start: 4, End: 6, Cost: 2},
	}
	if !reflect.DeepEqual(intervals, want) {
		t.Errorf("intervals = %v, want %v", intervals, want)
	}
}

func TestReadCSVColumnOrderFree(t *testing.T) {
	input := "Cost,Interval_end,Interval_start\n5,3,1\n"

	intervals, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(intervals) != 1 || intervals[0] != (solver.Interval{Start: 1, End: 3, Cost: 5}) {
		t.Errorf("intervals = %v, want [(1,3,5)]", intervals)
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	intervals, err := ReadCSV(strings.NewReader("Interval_start,Interval_end,Cost\n"))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(intervals) != 0 {
		t.Errorf("expected no intervals, got %v", intervals)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty input", "", "input is empty"},
		{"missing column", "Interval_start,Interval_end\n1,2\n", `missing column "Cost"`},
		{"non-integer cell", "Interval_start,Interval_end,Cost\n1,oops,0\n", "row 2: column Interval_end"},
		{"short row", "Interval_start,Interval_end,Cost\n1,2\n", "row 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
