package resource

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits for a search run.
type Config struct {
	// MaxConcurrentWorkers is the maximum number of workers running
	// batches at the same time. If 0, no limit is enforced: every
	// spawned worker runs.
	MaxConcurrentWorkers int64

	// StatusUpdatesPerSec caps how often the status line is redrawn,
	// independently of the aggregator tick. If 0, redraws are unlimited.
	StatusUpdatesPerSec float64
}

// Controller manages shared run resources (worker concurrency, terminal
// redraw budget). The zero Controller pointer is valid and enforces
// nothing.
type Controller struct {
	cfg Config

	workerSem *semaphore.Weighted // nil if unlimited

	renderLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MaxConcurrentWorkers > 0 {
		c.workerSem = semaphore.NewWeighted(cfg.MaxConcurrentWorkers)
	}

	if cfg.StatusUpdatesPerSec > 0 {
		c.renderLimiter = rate.NewLimiter(rate.Limit(cfg.StatusUpdatesPerSec), 1)
	}

	return c
}

// AcquireWorker reserves a worker slot, blocking until one is free or ctx
// is cancelled. Workers hold their slot for their whole lifetime.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil || c.workerSem == nil {
		return nil
	}
	return c.workerSem.Acquire(ctx, 1)
}

// ReleaseWorker releases a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil || c.workerSem == nil {
		return
	}
	c.workerSem.Release(1)
}

// AllowRender reports whether a status redraw fits the configured budget.
// It never blocks; over-budget redraws are simply skipped, the next tick
// repaints with fresher numbers anyway.
func (c *Controller) AllowRender() bool {
	if c == nil || c.renderLimiter == nil {
		return true
	}
	return c.renderLimiter.Allow()
}
