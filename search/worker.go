package search

import (
	"context"
	"math/big"
	"sync/atomic"

	"github.com/hupe1980/longshot/model"
	"github.com/hupe1980/longshot/oracle"
)

// DefaultBatchSize is the number of candidates a worker checks between
// progress reports. Larger batches reduce message-passing overhead,
// smaller batches improve stop responsiveness; 100k balances both.
const DefaultBatchSize = 100_000

// WorkerState tracks a worker's lifecycle: Idle -> Running -> {Found | Stopped}.
type WorkerState uint32

const (
	WorkerIdle WorkerState = iota
	WorkerRunning
	WorkerFound
	WorkerStopped
)

// Worker checks random candidates against the target public value in a
// cooperative batch loop. A Worker owns its generator and its cumulative
// counter; the coordinator only ever sees counter values copied into
// reports.
type Worker struct {
	id        int
	target    model.PublicValue
	oracle    oracle.Oracle
	generator oracle.Generator
	batchSize int
	reports   chan<- model.Report

	checked *big.Int
	state   atomic.Uint32
}

// NewWorker creates a worker. The reports channel is the worker's only
// output; the context passed to Run is its only input after start.
func NewWorker(id int, target model.PublicValue, o oracle.Oracle, g oracle.Generator, batchSize int, reports chan<- model.Report) *Worker {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Worker{
		id:        id,
		target:    target,
		oracle:    o,
		generator: g,
		batchSize: batchSize,
		reports:   reports,
		checked:   new(big.Int),
	}
}

// State returns the worker's current lifecycle state.
func (w *Worker) State() WorkerState {
	return WorkerState(w.state.Load())
}

// Run executes the batch loop until a match is found, the generator
// fails, or ctx is cancelled. The only suspension point is the yield
// between batches, so cancellation latency is bounded by one batch.
//
// Run always returns nil: a worker fault is reported in-band and must not
// tear down sibling workers.
func (w *Worker) Run(ctx context.Context) error {
	w.state.Store(uint32(WorkerRunning))

	for {
		select {
		case <-ctx.Done():
			w.state.Store(uint32(WorkerStopped))
			return nil
		default:
		}

		secret, found, err := w.runBatch()
		if err != nil {
			w.state.Store(uint32(WorkerStopped))
			w.send(ctx, model.Report{Type: model.ReportFault, WorkerID: w.id, Err: err})
			return nil
		}

		if found {
			w.state.Store(uint32(WorkerFound))
			w.send(ctx, model.Report{
				Type:     model.ReportFound,
				WorkerID: w.id,
				Checked:  w.checked.String(),
				Secret:   secret,
			})
			return nil
		}

		w.send(ctx, model.Report{
			Type:     model.ReportProgress,
			WorkerID: w.id,
			Checked:  w.checked.String(),
		})
	}
}

// runBatch checks up to batchSize candidates, stopping early on a match.
// The cumulative counter includes partial batches so found reports carry
// the exact number of checks performed.
func (w *Worker) runBatch() (secret model.Candidate, found bool, err error) {
	done := 0
	defer func() {
		w.checked.Add(w.checked, big.NewInt(int64(done)))
	}()

	for i := 0; i < w.batchSize; i++ {
		c, genErr := w.generator.Next()
		if genErr != nil {
			return model.Candidate{}, false, genErr
		}
		done++

		if w.oracle.Derive(c) == w.target {
			return c, true, nil
		}
	}

	return model.Candidate{}, false, nil
}

// send delivers a report unless the run is already tearing down. A report
// dropped on cancellation is fine: the coordinator uses the last known
// count for workers that never got a final message out.
func (w *Worker) send(ctx context.Context, r model.Report) {
	select {
	case w.reports <- r:
	case <-ctx.Done():
	}
}
