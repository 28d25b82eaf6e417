//go:build integration

package store

import (
	"context"
	"os"
	"testing"

	"github.com/planfold/planfold/internal/solver"
)

func setupTestDB(t *testing.T) *PostgresStore {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	s, err := NewPostgresStore(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	t.Cleanup(func() {
		_, _ = s.pool.Exec(ctx, "TRUNCATE plan_runs")
		s.Close()
	})

	return s
}

func TestCreateAndGetPlanRun(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	run := &PlanRun{
		Source:   "test",
		TradeOff: 0.8,
		Score:    1.2,
		Selected: []solver.Interval{
			{Start: 2, End: 5, Cost: 1},
			{Start: 6, End: 7, Cost: 1},
		},
		SelectedCount: 2,
		InputCount:    4,
		TotalCost:     2,
	}
	if err := s.CreatePlanRun(ctx, run); err != nil {
		t.Fatalf("CreatePlanRun failed: %v", err)
	}
	if run.ID.String() == "" || run.CreatedAt.IsZero() {
		t.Fatal("expected id and created_at to be populated")
	}

	got, err := s.GetPlanRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetPlanRun failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected run, got nil")
	}
	if got.Score != 1.2 || got.SelectedCount != 2 || len(got.Selected) != 2 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestListPlanRunsAndStats(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		run := &PlanRun{Source: "batch", TradeOff: 1, Score: 3, SelectedCount: 3, InputCount: 4}
		if err := s.CreatePlanRun(ctx, run); err != nil {
			t.Fatalf("CreatePlanRun failed: %v", err)
		}
	}

	runs, err := s.ListPlanRuns(ctx, PlanFilter{Source: "batch", Limit: 2})
	if err != nil {
		t.Fatalf("ListPlanRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}

	stats, err := s.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalRuns != 3 {
		t.Errorf("expected 3 total runs, got %d", stats.TotalRuns)
	}
}
