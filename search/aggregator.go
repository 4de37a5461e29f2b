package search

import (
	"math/big"
	"time"
)

// DefaultTickInterval is how often the aggregator recomputes totals and
// refreshes the status line.
const DefaultTickInterval = 100 * time.Millisecond

// Snapshot is one aggregated view of run progress, computed on a tick or
// once more explicitly at shutdown.
type Snapshot struct {
	// Total is the exact sum of all per-worker counts.
	Total *big.Int

	// Elapsed is the time since run start.
	Elapsed time.Duration

	// PerSecond is the instantaneous throughput estimate, total/elapsed.
	PerSecond float64

	// SpaceFraction is total divided by the oracle's space size. With a
	// 2^256 space this is effectively always zero, which is the point of
	// the demonstration; it is shown as-is, never rounded up.
	SpaceFraction float64

	// Workers is the number of spawned workers; Failed is how many have
	// faulted. Failed workers' last counts remain in Total.
	Workers int
	Failed  int
}

// Aggregator derives throughput and space-fraction figures from progress
// table snapshots. It holds no mutable state beyond the fixed run start
// time and space size, so reading it from the coordinator loop is cheap
// and allocation-light.
type Aggregator struct {
	start     time.Time
	spaceSize *big.Int
	workers   int
}

// NewAggregator creates an aggregator for a run over the given space.
func NewAggregator(start time.Time, spaceSize *big.Int, workers int) *Aggregator {
	return &Aggregator{
		start:     start,
		spaceSize: spaceSize,
		workers:   workers,
	}
}

// Snapshot recomputes the aggregate view from the table. The total is
// summed from scratch every time; see ProgressTable.
func (a *Aggregator) Snapshot(t *ProgressTable, now time.Time) Snapshot {
	total := t.Total()
	elapsed := now.Sub(a.start)

	s := Snapshot{
		Total:   total,
		Elapsed: elapsed,
		Workers: a.workers,
		Failed:  t.Failed(),
	}

	if elapsed > 0 {
		// Precision loss converting to float64 is acceptable here: the
		// exact figure lives in Total, the rate is display-only.
		tf, _ := new(big.Float).SetInt(total).Float64()
		s.PerSecond = tf / elapsed.Seconds()
	}

	if a.spaceSize != nil && a.spaceSize.Sign() > 0 {
		frac, _ := new(big.Float).Quo(
			new(big.Float).SetInt(total),
			new(big.Float).SetInt(a.spaceSize),
		).Float64()
		s.SpaceFraction = frac
	}

	return s
}
