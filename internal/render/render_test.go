package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/planfold/planfold/internal/solver"
)

func TestWritePlan(t *testing.T) {
	selected := []solver.Interval{
		{Start: 1, End: 3, Cost: 5},
		{Start: 4, End: 6, Cost: 2},
	}

	var buf bytes.Buffer
	WritePlan(&buf, selected, 1.2)

	want := "Optimal set of intervals:\n" +
		"(1, 3, 5)\n" +
		"(4, 6, 2)\n" +
		"\nMaximum Score: 1.2\n" +
		"\nTotal Cost Score: 7\n" +
		"\nCount Intervals: 2\n"
	if buf.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWritePlanCountScoreHasNoDecimals(t *testing.T) {
	var buf bytes.Buffer
	WritePlan(&buf, []solver.Interval{{Start: 1, End: 2}}, 1)

	if !strings.Contains(buf.String(), "Maximum Score: 1\n") {
		t.Errorf("expected integer-rendered score, got:\n%s", buf.String())
	}
}

func TestWritePlanEmpty(t *testing.T) {
	var buf bytes.Buffer
	WritePlan(&buf, nil, 0)

	if !strings.Contains(buf.String(), "Count Intervals: 0") {
		t.Errorf("expected zero count, got:\n%s", buf.String())
	}
}
