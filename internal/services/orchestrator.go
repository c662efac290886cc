package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/atomic"

	"office-commute-service/internal/domain"
	"office-commute-service/internal/platform/obs"
	"office-commute-service/internal/roster"
)

// Tuning for the recompute worker pool. Both values are explicit
// configuration, not global state.
type EngineConfig struct {
	// Number of concurrent route-estimation workers.
	Workers int
	// Minimum spacing between two service calls issued by one worker,
	// so a roster never hits the routing service in an unthrottled burst.
	MinCallInterval time.Duration
}

// Engine drives recomputation of the full commute result set. Triggers
// never block the caller; overlapping triggers are resolved
// last-generation-wins via the generation counter, regardless of network
// completion order. The generation counter is the engine's only
// cross-call mutable state.
type Engine struct {
	estimator *Estimator
	store     *roster.Store
	cfg       EngineConfig
	baseCtx   context.Context

	gen      atomic.Uint64
	commitMu sync.Mutex
	wg       sync.WaitGroup
}

// NewEngine builds an Engine. ctx bounds the lifetime of all background
// recompute work.
func NewEngine(ctx context.Context, estimator *Estimator, store *roster.Store, cfg EngineConfig) *Engine {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	return &Engine{
		estimator: estimator,
		store:     store,
		cfg:       cfg,
		baseCtx:   ctx,
	}
}

// Recompute schedules a full recomputation against the given office
// location and returns immediately. The roster snapshot (employees with
// a resolved home coordinate) and the target office are captured at
// trigger time.
func (e *Engine) Recompute(office domain.OfficeLocation) uint64 {
	g := e.gen.Inc()
	snapshot := e.store.ResolvedEmployees()

	obs.Event("recompute_scheduled",
		"generation", g,
		"employees", len(snapshot),
		"office_source", office.Source,
	)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.run(e.baseCtx, g, office, snapshot)
	}()

	return g
}

// Wait blocks until all in-flight generations have finished (committed
// or discarded). Intended for tests and shutdown.
func (e *Engine) Wait() { e.wg.Wait() }

// One route-estimation call. slot points at the distinct result field
// this task fills, so workers never write the same memory.
type legTask struct {
	slot        *domain.CommuteLeg
	origin      domain.Coordinate
	destination domain.Coordinate
	mode        domain.Mode
}

func (e *Engine) run(ctx context.Context, g uint64, office domain.OfficeLocation, employees []domain.Employee) {
	results := make([]domain.CommuteResult, len(employees))
	tasks := make([]legTask, 0, len(employees)*4)

	for i, emp := range employees {
		results[i] = domain.CommuteResult{EmployeeID: emp.ID}
		home := *emp.Home

		tasks = append(tasks,
			legTask{slot: &results[i].MainOffice.Driving, origin: home, destination: office.Coordinate, mode: domain.ModeDriving},
			legTask{slot: &results[i].MainOffice.Transit, origin: home, destination: office.Coordinate, mode: domain.ModeTransit},
		)

		// Client-office legs only when that coordinate resolved; an
		// employee without one gets no ClientOffice block at all.
		if emp.ClientOffice != nil {
			client := *emp.ClientOffice
			results[i].ClientOffice = &domain.CommutePair{}
			tasks = append(tasks,
				legTask{slot: &results[i].ClientOffice.Driving, origin: home, destination: client, mode: domain.ModeDriving},
				legTask{slot: &results[i].ClientOffice.Transit, origin: home, destination: client, mode: domain.ModeTransit},
			)
		}
	}

	e.estimateAll(ctx, tasks)

	if e.gen.Load() != g {
		obs.Event("generation_discarded", "generation", g, "current", e.gen.Load())
		return
	}

	resolved := 0
	for i := range tasks {
		if tasks[i].slot.Resolved() {
			resolved++
		}
	}

	// A generation whose every call failed commits an empty-but-valid
	// result set rather than leaving stale data from a previous office.
	outage := len(tasks) > 0 && resolved == 0
	if outage {
		results = nil
		obs.Event("generation_outage", "generation", g)
	}

	ranked := Rank(results)
	stats := Summarize(ranked)

	e.commitMu.Lock()
	defer e.commitMu.Unlock()

	// Re-check under the commit lock: a newer trigger may have fired
	// while this generation was estimating.
	if e.gen.Load() != g {
		obs.Event("generation_discarded", "generation", g, "current", e.gen.Load())
		return
	}

	e.store.Commit(roster.ResultsSnapshot{
		Generation: g,
		Office:     office,
		Results:    ranked,
		Stats:      stats,
		Outage:     outage,
	})

	obs.Event("generation_committed", "generation", g, "results", len(ranked), "resolved_legs", resolved)
}

// estimateAll runs the task list on a fixed-size worker pool. Each
// worker enforces the minimum inter-call interval, so aggregate
// throughput scales with the configured pool size. Task failures are
// absorbed by the estimator; a cancelled context leaves remaining slots
// unresolved without blocking the feeder.
func (e *Engine) estimateAll(ctx context.Context, tasks []legTask) {
	taskCh := make(chan *legTask)

	var wg sync.WaitGroup
	for w := 0; w < e.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var last time.Time
			for t := range taskCh {
				if ctx.Err() != nil {
					continue
				}
				e.waitInterval(ctx, &last)
				*t.slot = e.estimator.Estimate(ctx, t.origin, t.destination, t.mode)
			}
		}()
	}

	for i := range tasks {
		taskCh <- &tasks[i]
	}
	close(taskCh)
	wg.Wait()
}

func (e *Engine) waitInterval(ctx context.Context, last *time.Time) {
	if e.cfg.MinCallInterval <= 0 {
		return
	}

	if !last.IsZero() {
		if wait := time.Until(last.Add(e.cfg.MinCallInterval)); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
			case <-timer.C:
			}
		}
	}

	*last = time.Now()
}
