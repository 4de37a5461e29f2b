package longshot

import (
	"time"

	"github.com/hupe1980/longshot/oracle"
	"github.com/hupe1980/longshot/resource"
	"github.com/hupe1980/longshot/search"
)

type options struct {
	workers      int
	batchSize    int
	tickInterval time.Duration
	logger       *Logger
	metrics      MetricsCollector
	sink         search.Sink
	oracle       oracle.Oracle
	newGenerator search.GeneratorFactory
	resources    resource.Config
}

// Option configures a run.
//
// Options exist to keep Run's signature stable while tuning knobs
// accumulate; every option has a default that matches the plain
// no-argument demonstration.
type Option func(*options)

// WithWorkers sets the worker pool size. If not set (or not positive),
// the host's available parallelism is used, falling back to 8.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithBatchSize sets the per-worker batch length between progress
// reports.
func WithBatchSize(n int) Option {
	return func(o *options) {
		o.batchSize = n
	}
}

// WithTickInterval sets the aggregator refresh period.
func WithTickInterval(d time.Duration) Option {
	return func(o *options) {
		o.tickInterval = d
	}
}

// WithLogger sets the structured logger. If nil is passed, logging is
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithSink sets the progress sink. The default renders a status line to
// stdout.
func WithSink(s search.Sink) Option {
	return func(o *options) {
		o.sink = s
	}
}

// WithOracle replaces the derivation oracle. Mostly useful in tests,
// where a small space makes a planted match reachable.
func WithOracle(orc oracle.Oracle) Option {
	return func(o *options) {
		o.oracle = orc
	}
}

// WithGeneratorFactory replaces the per-worker candidate generator
// factory. The default draws from crypto/rand.
func WithGeneratorFactory(f search.GeneratorFactory) Option {
	return func(o *options) {
		o.newGenerator = f
	}
}

// WithResourceConfig sets worker concurrency and render budgets.
func WithResourceConfig(cfg resource.Config) Option {
	return func(o *options) {
		o.resources = cfg
	}
}
