package search

import "math/big"

// ProgressTable maps workerID -> cumulative checked count. It is owned by
// the coordinator and only ever mutated from its single-threaded event
// loop, so it needs no locking. The aggregator reads totals recomputed
// from scratch; nothing is incrementally patched, which keeps the sum
// immune to out-of-order message effects.
type ProgressTable struct {
	counts map[int]*big.Int
	failed map[int]struct{}
}

// NewProgressTable creates an empty table.
func NewProgressTable() *ProgressTable {
	return &ProgressTable{
		counts: make(map[int]*big.Int),
		failed: make(map[int]struct{}),
	}
}

// Set records a worker's cumulative count. Per-worker counts are
// monotonically non-decreasing; a regressing value (which a well-behaved
// worker never sends) is ignored rather than applied.
func (t *ProgressTable) Set(workerID int, checked *big.Int) {
	if checked == nil {
		return
	}
	if cur, ok := t.counts[workerID]; ok && checked.Cmp(cur) < 0 {
		return
	}
	t.counts[workerID] = new(big.Int).Set(checked)
}

// MarkFailed freezes a worker's entry: its last known count stays in the
// totals, but the worker no longer counts as live.
func (t *ProgressTable) MarkFailed(workerID int) {
	t.failed[workerID] = struct{}{}
}

// Failed returns the number of workers marked failed.
func (t *ProgressTable) Failed() int {
	return len(t.failed)
}

// Total recomputes the sum of all per-worker counts.
func (t *ProgressTable) Total() *big.Int {
	total := new(big.Int)
	for _, c := range t.counts {
		total.Add(total, c)
	}
	return total
}

// PerWorker returns a copy of the table as decimal strings, keyed by
// workerID. Used for the final summary.
func (t *ProgressTable) PerWorker() map[int]string {
	out := make(map[int]string, len(t.counts))
	for id, c := range t.counts {
		out[id] = c.String()
	}
	return out
}
