package longshot

import (
	"math"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/hupe1980/longshot/search"
)

// MetricsCollector defines an interface for collecting operational
// metrics from a run. Implement this interface to integrate with
// monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    checkedCounter prometheus.Counter
//	    faultCounter   prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordTick(total *big.Int, perSecond float64) {
//	    // ... export perSecond as a gauge, etc.
//	}
type MetricsCollector = search.Collector

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordProgress(int)             {}
func (NoopMetricsCollector) RecordFound(int, time.Duration) {}
func (NoopMetricsCollector) RecordFault(int, error)         {}
func (NoopMetricsCollector) RecordTick(*big.Int, float64)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external
// dependencies.
type BasicMetricsCollector struct {
	ProgressReports atomic.Int64
	FoundCount      atomic.Int64
	FaultCount      atomic.Int64
	TickCount       atomic.Int64

	lastPerSecond atomic.Uint64 // float64 bits
}

// RecordProgress implements MetricsCollector.
func (c *BasicMetricsCollector) RecordProgress(workerID int) {
	c.ProgressReports.Add(1)
}

// RecordFound implements MetricsCollector.
func (c *BasicMetricsCollector) RecordFound(workerID int, elapsed time.Duration) {
	c.FoundCount.Add(1)
}

// RecordFault implements MetricsCollector.
func (c *BasicMetricsCollector) RecordFault(workerID int, err error) {
	c.FaultCount.Add(1)
}

// RecordTick implements MetricsCollector.
func (c *BasicMetricsCollector) RecordTick(total *big.Int, perSecond float64) {
	c.TickCount.Add(1)
	c.lastPerSecond.Store(math.Float64bits(perSecond))
}

// LastPerSecond returns the throughput observed on the most recent tick.
func (c *BasicMetricsCollector) LastPerSecond() float64 {
	return math.Float64frombits(c.lastPerSecond.Load())
}

// Compile-time interface checks
var (
	_ MetricsCollector = NoopMetricsCollector{}
	_ MetricsCollector = (*BasicMetricsCollector)(nil)
)
