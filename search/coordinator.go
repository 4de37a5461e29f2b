package search

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/longshot/model"
	"github.com/hupe1980/longshot/oracle"
	"github.com/hupe1980/longshot/resource"
)

// GeneratorFactory builds one generator per worker. Each worker owns its
// generator exclusively, so factories must return fresh instances.
type GeneratorFactory func(workerID int) oracle.Generator

// Config holds coordinator tuning. The zero value is usable; every field
// falls back to a sensible default.
type Config struct {
	// BatchSize is the per-worker batch length between progress reports.
	// If 0, DefaultBatchSize is used.
	BatchSize int

	// TickInterval is the aggregator refresh period. If 0,
	// DefaultTickInterval is used.
	TickInterval time.Duration

	// Logger receives structured run events. If nil, logging is disabled.
	Logger *slog.Logger

	// Collector receives metrics. If nil, a no-op collector is used.
	Collector Collector

	// Sink receives status snapshots and the final summary. If nil, a
	// no-op sink is used.
	Sink Sink

	// Resources gates worker concurrency. Nil enforces nothing.
	Resources *resource.Controller
}

// Summary is the final run statistics block, computed from one explicit
// last snapshot of the progress table rather than the last periodic tick.
type Summary struct {
	RunID  uuid.UUID
	Cause  model.StopCause
	Found  bool
	Secret model.Candidate

	// TotalChecked is the exact total in decimal.
	TotalChecked string

	Elapsed   time.Duration
	PerSecond float64

	Workers int
	Failed  int

	// PerWorker holds each worker's last known count in decimal.
	PerWorker map[int]string
}

// Coordinator owns the worker pool lifecycle for a single run: it spawns
// workers, routes their reports, decides when to stop, and produces the
// final summary. All mutable state lives in the Run goroutine; Stop is
// the only method safe to call from elsewhere.
type Coordinator struct {
	target    model.Target
	oracle    oracle.Oracle
	factory   GeneratorFactory
	cfg       Config
	runID     uuid.UUID
	logger    *slog.Logger
	collector Collector
	sink      Sink

	table  *ProgressTable
	state  model.RunState
	found  bool
	secret model.Candidate
	cause  model.StopCause

	stopOnce sync.Once
	stopCh   chan struct{}

	runOnce sync.Once
}

// NewCoordinator creates a coordinator for one run against target.
func NewCoordinator(target model.Target, o oracle.Oracle, factory GeneratorFactory, cfg Config) *Coordinator {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.Collector == nil {
		cfg.Collector = noopCollector{}
	}
	if cfg.Sink == nil {
		cfg.Sink = noopSink{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	runID := uuid.New()

	return &Coordinator{
		target:    target,
		oracle:    o,
		factory:   factory,
		cfg:       cfg,
		runID:     runID,
		logger:    logger.With("run_id", runID.String()),
		collector: cfg.Collector,
		sink:      cfg.Sink,
		table:     NewProgressTable(),
		state:     model.RunStateRunning,
		stopCh:    make(chan struct{}),
	}
}

// RunID returns the identifier attached to this run's logs and summary.
func (c *Coordinator) RunID() uuid.UUID {
	return c.runID
}

// State returns the current run state. It is only meaningful from the
// goroutine driving Run, or after Run has returned.
func (c *Coordinator) State() model.RunState {
	return c.state
}

// Stop requests teardown with cause "cancelled". It is idempotent and
// safe to call concurrently with a found report racing in: whichever stop
// request lands first wins, the rest are no-ops.
func (c *Coordinator) Stop() {
	c.requestStop(model.StopCauseCancelled)
}

func (c *Coordinator) requestStop(cause model.StopCause) {
	c.stopOnce.Do(func() {
		c.cause = cause
		close(c.stopCh)
	})
}

// Run spawns workerCount workers and drives the event loop until a match
// is found, Stop is called, or ctx is cancelled. It returns the final
// summary; cancellation is a successful outcome, not an error.
//
// A Coordinator is single-use: a second Run returns ErrRunConsumed.
func (c *Coordinator) Run(ctx context.Context, workerCount int) (*Summary, error) {
	if workerCount < 0 {
		return nil, ErrNegativeWorkerCount
	}

	first := false
	c.runOnce.Do(func() { first = true })
	if !first {
		return nil, ErrRunConsumed
	}

	start := time.Now()
	agg := NewAggregator(start, c.oracle.SpaceSize(), workerCount)

	c.logger.Info("search started",
		"target", string(c.target.Public),
		"workers", workerCount,
		"batch_size", c.cfg.BatchSize,
		"space_bits", c.oracle.SpaceSize().BitLen()-1,
	)

	// Buffered so a worker finishing a batch during a tick never blocks
	// long; the coordinator drains it in the same loop.
	reports := make(chan model.Report, 2*workerCount+1)

	workerCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g errgroup.Group
	for i := 0; i < workerCount; i++ {
		w := NewWorker(i, c.target.Public, c.oracle, c.factory(i), c.cfg.BatchSize, reports)
		g.Go(func() error {
			if err := c.cfg.Resources.AcquireWorker(workerCtx); err != nil {
				return nil
			}
			defer c.cfg.Resources.ReleaseWorker()
			return w.Run(workerCtx)
		})
	}

	ticker := time.NewTicker(c.cfg.TickInterval)
	defer ticker.Stop()

	for c.state == model.RunStateRunning {
		select {
		case r := <-reports:
			c.handleReport(r, start)

		case now := <-ticker.C:
			snap := agg.Snapshot(c.table, now)
			c.collector.RecordTick(snap.Total, snap.PerSecond)
			c.sink.Status(snap)

		case <-ctx.Done():
			c.requestStop(model.StopCauseCancelled)
			c.state = model.RunStateStopping

		case <-c.stopCh:
			c.state = model.RunStateStopping
		}
	}

	// Teardown: cancel workers, then discard whatever was already in
	// flight. A forcibly-silenced worker contributes its last known count
	// via the table; nothing waits on a final message from it.
	cancel()
	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

drain:
	for {
		select {
		case r := <-reports:
			c.logger.Debug("discarding post-stop report",
				"worker_id", r.WorkerID,
				"type", r.Type.String(),
			)
		case <-done:
			break drain
		}
	}

	// One explicit final recomputation so the summary never shows numbers
	// stale by up to a tick.
	snap := agg.Snapshot(c.table, time.Now())
	sum := &Summary{
		RunID:        c.runID,
		Cause:        c.cause,
		Found:        c.found,
		Secret:       c.secret,
		TotalChecked: snap.Total.String(),
		Elapsed:      snap.Elapsed,
		PerSecond:    snap.PerSecond,
		Workers:      workerCount,
		Failed:       c.table.Failed(),
		PerWorker:    c.table.PerWorker(),
	}

	c.state = model.RunStateStopped
	c.sink.Summary(sum)

	c.logger.Info("search stopped",
		"cause", sum.Cause.String(),
		"found", sum.Found,
		"total_checked", sum.TotalChecked,
		"elapsed", sum.Elapsed.String(),
	)

	return sum, nil
}

// handleReport applies one worker message to coordinator state. Reports
// are only handled while Running; the event loop stops selecting on the
// channel once the state leaves Running, and the drain phase discards the
// rest.
func (c *Coordinator) handleReport(r model.Report, start time.Time) {
	switch r.Type {
	case model.ReportProgress:
		if n, ok := r.CheckedInt(); ok {
			c.table.Set(r.WorkerID, n)
			c.collector.RecordProgress(r.WorkerID)
		}

	case model.ReportFound:
		if n, ok := r.CheckedInt(); ok {
			c.table.Set(r.WorkerID, n)
		}
		c.found = true
		c.secret = r.Secret
		c.collector.RecordFound(r.WorkerID, time.Since(start))
		c.logger.Info("secret recovered",
			"worker_id", r.WorkerID,
			"checked", r.Checked,
		)
		c.requestStop(model.StopCauseFound)
		c.state = model.RunStateStopping

	case model.ReportFault:
		c.table.MarkFailed(r.WorkerID)
		c.collector.RecordFault(r.WorkerID, r.Err)
		c.logger.Error("worker fault, excluding from aggregation",
			"worker_id", r.WorkerID,
			"error", r.Err,
		)
	}
}
