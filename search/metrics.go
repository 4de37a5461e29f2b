package search

import (
	"math/big"
	"time"
)

// Collector defines the interface for observing run events. Implement it
// to integrate with monitoring systems; the root package provides no-op
// and basic in-memory implementations.
type Collector interface {
	// RecordProgress is called for each progress report accepted into the
	// table.
	RecordProgress(workerID int)

	// RecordFound is called once when a worker recovers the secret.
	RecordFound(workerID int, elapsed time.Duration)

	// RecordFault is called when a worker reports a terminal error.
	RecordFault(workerID int, err error)

	// RecordTick is called on each aggregator tick with the recomputed
	// total and throughput.
	RecordTick(total *big.Int, perSecond float64)
}

// Sink receives rendered progress. Implementations must not block: they
// are called from the coordinator's event loop.
type Sink interface {
	// Status is called on each aggregator tick while the run is active.
	Status(s Snapshot)

	// Summary is called exactly once, after teardown, with the final
	// explicitly recomputed figures.
	Summary(sum *Summary)
}

type noopCollector struct{}

func (noopCollector) RecordProgress(int)             {}
func (noopCollector) RecordFound(int, time.Duration) {}
func (noopCollector) RecordFault(int, error)         {}
func (noopCollector) RecordTick(*big.Int, float64)   {}

type noopSink struct{}

func (noopSink) Status(Snapshot)  {}
func (noopSink) Summary(*Summary) {}
