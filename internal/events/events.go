package events

import "time"

type PlanComputedEvent struct {
	PlanID        string  `json:"plan_id"`
	Source        string  `json:"source,omitempty"`
	TradeOff      float64 `json:"trade_off"`
	Score         float64 `json:"score"`
	TotalCost     int64   `json:"total_cost"`
	SelectedCount int     `json:"selected_count"`
	InputCount    int     `json:"input_count"`
}

type StatsEvent struct {
	TotalRuns   int       `json:"total_runs"`
	AvgScore    float64   `json:"avg_score"`
	AvgSelected float64   `json:"avg_selected"`
	Timestamp   time.Time `json:"timestamp"`
}
