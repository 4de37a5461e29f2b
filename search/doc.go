// Package search provides the concurrent search coordination layer for
// Longshot.
//
// Longshot routes all run control through a Coordinator to keep mutable
// state single-threaded:
//   - spawn N independent workers, each owning a private generator
//   - route worker reports (progress / found / fault) through one channel
//   - aggregate per-worker counters into throughput and space-fraction
//     figures on a fixed tick
//   - propagate a stop decision (match found, external interrupt) to all
//     workers cooperatively and emit exactly one final summary
//
// # Architecture
//
// One coordinator goroutine supervises N worker goroutines. Workers share
// no mutable memory with the coordinator or each other; the only shared
// value is the immutable target, copied to every worker at start. All
// mutable run state (progress table, run state flags) is owned by the
// coordinator's event loop, so no locks are needed on the hot path.
//
// Workers run cooperative batch loops: check a bounded batch of
// candidates, report cumulative progress, then yield. The yield between
// batches is the only suspension point, which bounds stop latency to
// roughly one batch duration.
//
// # Termination
//
// Stop is cooperative and idempotent. A found report and an external
// interrupt race through the same stop path; the second request is a
// no-op. Reports arriving after the stop decision are discarded, and the
// final summary is recomputed from the table explicitly rather than
// reusing the last periodic tick.
package search
