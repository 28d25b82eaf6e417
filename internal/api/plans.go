package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/planfold/planfold/internal/config"
	"github.com/planfold/planfold/internal/events"
	"github.com/planfold/planfold/internal/metrics"
	"github.com/planfold/planfold/internal/solver"
	"github.com/planfold/planfold/internal/source"
	"github.com/planfold/planfold/internal/store"
)

type PlansHandler struct {
	store  store.Store
	events events.Client
	cfg    *config.Config
	logger *slog.Logger
}

func NewPlansHandler(s store.Store, ev events.Client, cfg *config.Config, logger *slog.Logger) *PlansHandler {
	return &PlansHandler{store: s, events: ev, cfg: cfg, logger: logger}
}

type CreatePlanRequest struct {
	Intervals []solver.Interval `json:"intervals"`
	TradeOff  *float64          `json:"trade_off,omitempty"`
	Source    string            `json:"source,omitempty"`
}

// Create handles POST /api/v1/plans
func (h *PlansHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	tradeOff := h.cfg.Solver.DefaultTradeOff
	if req.TradeOff != nil {
		tradeOff = *req.TradeOff
	}
	h.runPlan(w, r, req.Intervals, tradeOff, req.Source)
}

// CreateFromCSV handles POST /api/v1/plans/csv with a CSV body in the
// Interval_start/Interval_end/Cost column format.
func (h *PlansHandler) CreateFromCSV(w http.ResponseWriter, r *http.Request) {
	intervals, err := source.ReadCSV(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	tradeOff := h.cfg.Solver.DefaultTradeOff
	if v := r.URL.Query().Get("trade_off"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid trade_off"})
			return
		}
		tradeOff = f
	}
	h.runPlan(w, r, intervals, tradeOff, r.URL.Query().Get("source"))
}

func (h *PlansHandler) runPlan(w http.ResponseWriter, r *http.Request, intervals []solver.Interval, tradeOff float64, src string) {
	if h.cfg.Solver.MaxIntervals > 0 && len(intervals) > h.cfg.Solver.MaxIntervals {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "too many intervals"})
		return
	}

	started := time.Now()
	selected, score := solver.Solve(intervals, tradeOff)
	metrics.SolveDuration.Observe(time.Since(started).Seconds())
	metrics.SolveRuns.WithLabelValues(metrics.SolveMode(tradeOff)).Inc()
	metrics.SelectedIntervals.Observe(float64(len(selected)))

	run := &store.PlanRun{
		Source:        src,
		TradeOff:      tradeOff,
		Score:         score,
		TotalCost:     solver.TotalCost(selected),
		SelectedCount: len(selected),
		InputCount:    len(intervals),
		Selected:      selected,
	}
	if err := h.store.CreatePlanRun(r.Context(), run); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectPlanComputed(run.ID.String()), events.PlanComputedEvent{
			PlanID:        run.ID.String(),
			Source:        run.Source,
			TradeOff:      run.TradeOff,
			Score:         run.Score,
			TotalCost:     run.TotalCost,
			SelectedCount: run.SelectedCount,
			InputCount:    run.InputCount,
		})
	}

	h.logger.Info("plan computed",
		"plan_id", run.ID,
		"trade_off", tradeOff,
		"input", run.InputCount,
		"selected", run.SelectedCount,
		"score", score,
	)
	writeJSON(w, http.StatusCreated, run)
}

// List handles GET /api/v1/plans
func (h *PlansHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.PlanFilter{
		Source: r.URL.Query().Get("source"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	runs, err := h.store.ListPlanRuns(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if runs == nil {
		runs = []*store.PlanRun{}
	}
	writeJSON(w, http.StatusOK, runs)
}

// Get handles GET /api/v1/plans/{id}
func (h *PlansHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid plan id"})
		return
	}

	run, err := h.store.GetPlanRun(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if run == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "plan not found"})
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
