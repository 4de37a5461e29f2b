// Package longshot demonstrates the computational infeasibility of
// inverting a one-way derivation by exhaustively searching its input
// space in parallel.
//
// A run picks a random secret, derives its public value, then spins up a
// pool of independent workers that generate random candidates, derive
// them, and compare against the known public value. In practice this
// runs forever, because the space has 2^256 members.
//
// # Quick Start
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	sum, err := longshot.Run(ctx, longshot.WithWorkers(8))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sum.Cause) // "cancelled", it was never going to say "found"
//
// # Tuning
//
// Workers report progress every batch (default 100k candidates). Larger
// batches cost less coordination overhead; smaller batches react to
// cancellation faster. The aggregator tick (default 100ms) controls how
// often the live status line refreshes.
//
// # Observability
//
// Structured logging goes through Logger (a log/slog wrapper); pass a
// MetricsCollector to feed counters into your monitoring system. Both
// default to no-ops.
package longshot
