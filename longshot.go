package longshot

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/hupe1980/longshot/internal/termline"
	"github.com/hupe1980/longshot/oracle"
	"github.com/hupe1980/longshot/resource"
	"github.com/hupe1980/longshot/search"
)

// DefaultWorkers is the pool size used when the host's available
// parallelism cannot be determined.
const DefaultWorkers = 8

// Run picks a secret, derives its public value, and searches for it with
// a pool of parallel workers until a match is found or ctx is cancelled.
// Both outcomes return a summary and a nil error; cancellation is the
// expected way a run ends.
func Run(ctx context.Context, opts ...Option) (*search.Summary, error) {
	o := options{
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.workers <= 0 {
		o.workers = runtime.NumCPU()
		if o.workers <= 0 {
			o.workers = DefaultWorkers
		}
	}
	if o.oracle == nil {
		o.oracle = oracle.NewSHA256()
	}
	if o.newGenerator == nil {
		o.newGenerator = func(workerID int) oracle.Generator {
			return oracle.NewCryptoGenerator()
		}
	}

	res := resource.NewController(o.resources)
	if o.sink == nil {
		o.sink = termline.New(os.Stdout, res)
	}
	logger := o.logger
	if logger == nil {
		logger = NoopLogger()
	}

	// Worker id -1 marks the coordinator's own draw for the secret.
	target, err := oracle.NewTarget(o.oracle, o.newGenerator(-1))
	if err != nil {
		return nil, fmt.Errorf("longshot: %w", err)
	}

	coord := search.NewCoordinator(target, o.oracle, o.newGenerator, search.Config{
		BatchSize:    o.batchSize,
		TickInterval: o.tickInterval,
		Logger:       logger.Logger,
		Collector:    o.metrics,
		Sink:         o.sink,
		Resources:    res,
	})

	return coord.Run(ctx, o.workers)
}
