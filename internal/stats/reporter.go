// Package stats periodically publishes aggregate plan statistics.
package stats

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/planfold/planfold/internal/events"
	"github.com/planfold/planfold/internal/store"
)

// Reporter reads plan run statistics from the store on a fixed tick
// and publishes them as a stats event.
type Reporter struct {
	store    store.Store
	events   events.Client
	interval time.Duration
	logger   *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewReporter(s store.Store, ev events.Client, interval time.Duration, logger *slog.Logger) *Reporter {
	return &Reporter{
		store:    s,
		events:   ev,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

func (r *Reporter) Start(ctx context.Context) {
	r.wg.Add(1)
	go r.loop(ctx)
}

func (r *Reporter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

func (r *Reporter) loop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.publishOnce(ctx)
		}
	}
}

func (r *Reporter) publishOnce(ctx context.Context) {
	st, err := r.store.GetStats(ctx)
	if err != nil {
		r.logger.Warn("failed to read plan stats", "error", err)
		return
	}

	if r.events == nil {
		return
	}
	evt := events.StatsEvent{
		TotalRuns:   st.TotalRuns,
		AvgScore:    st.AvgScore,
		AvgSelected: st.AvgSelected,
		Timestamp:   time.Now().UTC(),
	}
	if err := r.events.Publish(events.SubjectPlanStats, evt); err != nil {
		r.logger.Warn("failed to publish plan stats", "error", err)
	}
}
