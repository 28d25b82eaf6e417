package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const planColumns = `id, source, trade_off, score, total_cost, selected_count, input_count, selected, created_at`

func (s *PostgresStore) CreatePlanRun(ctx context.Context, run *PlanRun) error {
	selectedJSON, _ := json.Marshal(run.Selected)

	return s.pool.QueryRow(ctx, `
		INSERT INTO plan_runs (source, trade_off, score, total_cost, selected_count, input_count, selected)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		run.Source, run.TradeOff, run.Score, run.TotalCost,
		run.SelectedCount, run.InputCount, selectedJSON,
	).Scan(&run.ID, &run.CreatedAt)
}

func (s *PostgresStore) GetPlanRun(ctx context.Context, id uuid.UUID) (*PlanRun, error) {
	run := &PlanRun{}
	var selectedJSON []byte
	err := s.pool.QueryRow(ctx, `
		SELECT `+planColumns+`
		FROM plan_runs WHERE id = $1`, id,
	).Scan(
		&run.ID, &run.Source, &run.TradeOff, &run.Score, &run.TotalCost,
		&run.SelectedCount, &run.InputCount, &selectedJSON, &run.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if selectedJSON != nil {
		_ = json.Unmarshal(selectedJSON, &run.Selected)
	}
	return run, nil
}

// buildPlanListQuery assembles the filtered listing SQL and its
// positional arguments.
func buildPlanListQuery(filter PlanFilter) (string, []interface{}) {
	query := `SELECT ` + planColumns + ` FROM plan_runs WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.Source != "" {
		n++
		query += fmt.Sprintf(" AND source = $%d", n)
		args = append(args, filter.Source)
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		n++
		query += fmt.Sprintf(" LIMIT $%d", n)
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}
	return query, args
}

func (s *PostgresStore) ListPlanRuns(ctx context.Context, filter PlanFilter) ([]*PlanRun, error) {
	query, args := buildPlanListQuery(filter)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*PlanRun
	for rows.Next() {
		run := &PlanRun{}
		var selectedJSON []byte
		if err := rows.Scan(
			&run.ID, &run.Source, &run.TradeOff, &run.Score, &run.TotalCost,
			&run.SelectedCount, &run.InputCount, &selectedJSON, &run.CreatedAt,
		); err != nil {
			return nil, err
		}
		if selectedJSON != nil {
			_ = json.Unmarshal(selectedJSON, &run.Selected)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *PostgresStore) GetStats(ctx context.Context) (*PlanStats, error) {
	stats := &PlanStats{}
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*),
			COALESCE(AVG(score), 0),
			COALESCE(AVG(selected_count), 0)
		FROM plan_runs`,
	).Scan(&stats.TotalRuns, &stats.AvgScore, &stats.AvgSelected)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
