package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/planfold/planfold/internal/solver"
)

// PlanRun is one completed optimization over a batch of intervals.
type PlanRun struct {
	ID            uuid.UUID         `json:"id"`
	Source        string            `json:"source,omitempty"`
	TradeOff      float64           `json:"trade_off"`
	Score         float64           `json:"score"`
	TotalCost     int64             `json:"total_cost"`
	SelectedCount int               `json:"selected_count"`
	InputCount    int               `json:"input_count"`
	Selected      []solver.Interval `json:"selected"`
	CreatedAt     time.Time         `json:"created_at"`
}

type PlanFilter struct {
	Source string
	Limit  int
	Offset int
}

type PlanStats struct {
	TotalRuns   int     `json:"total_runs"`
	AvgScore    float64 `json:"avg_score"`
	AvgSelected float64 `json:"avg_selected"`
}

type Store interface {
	CreatePlanRun(ctx context.Context, run *PlanRun) error
	GetPlanRun(ctx context.Context, id uuid.UUID) (*PlanRun, error)
	ListPlanRuns(ctx context.Context, filter PlanFilter) ([]*PlanRun, error)
	GetStats(ctx context.Context) (*PlanStats, error)

	Close() error
}
