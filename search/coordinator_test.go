package search

import (
	"context"
	"errors"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/longshot/model"
	"github.com/hupe1980/longshot/oracle"
	"github.com/hupe1980/longshot/util"
)

// recordingCollector counts events with atomics so tests can poke at it
// from outside the coordinator loop.
type recordingCollector struct {
	progress atomic.Int64
	found    atomic.Int64
	faults   atomic.Int64
	ticks    atomic.Int64
}

func (r *recordingCollector) RecordProgress(int)             { r.progress.Add(1) }
func (r *recordingCollector) RecordFound(int, time.Duration) { r.found.Add(1) }
func (r *recordingCollector) RecordFault(int, error)         { r.faults.Add(1) }
func (r *recordingCollector) RecordTick(*big.Int, float64)   { r.ticks.Add(1) }

// recordingSink counts summary emissions; the double-stop test hinges on
// this staying at one.
type recordingSink struct {
	statuses  atomic.Int64
	summaries atomic.Int64
}

func (r *recordingSink) Status(Snapshot)  { r.statuses.Add(1) }
func (r *recordingSink) Summary(*Summary) { r.summaries.Add(1) }

func rngFactory(seed int64) GeneratorFactory {
	return func(workerID int) oracle.Generator {
		return util.NewRNG(seed + int64(workerID))
	}
}

func TestCoordinatorRecoversPlantedSecret(t *testing.T) {
	o := oracle.NewSHA256()
	target := testTarget(t, o)

	// Worker 1 generates the secret as its very first candidate; the
	// others search hopelessly.
	factory := func(workerID int) oracle.Generator {
		if workerID == 1 {
			return newPlantedGenerator(100, target.SecretSeed)
		}
		return util.NewRNG(200 + int64(workerID))
	}

	sink := &recordingSink{}
	c := NewCoordinator(target, o, factory, Config{
		BatchSize:    64,
		TickInterval: 5 * time.Millisecond,
		Sink:         sink,
	})

	sum, err := c.Run(context.Background(), 3)
	require.NoError(t, err)

	assert.True(t, sum.Found)
	assert.Equal(t, model.StopCauseFound, sum.Cause)
	assert.Equal(t, target.SecretSeed, sum.Secret)
	assert.Equal(t, model.RunStateStopped, c.State())
	assert.Equal(t, int64(1), sink.summaries.Load())
	assert.Equal(t, 3, sum.Workers)
}

func TestCoordinatorCancelledRun(t *testing.T) {
	o := oracle.NewSHA256()
	target := testTarget(t, o)

	c := NewCoordinator(target, o, rngFactory(1), Config{
		BatchSize:    32,
		TickInterval: 5 * time.Millisecond,
	})

	go func() {
		time.Sleep(50 * time.Millisecond)
		c.Stop()
	}()

	sum, err := c.Run(context.Background(), 4)
	require.NoError(t, err)

	assert.False(t, sum.Found)
	assert.Equal(t, model.StopCauseCancelled, sum.Cause)
	assert.Equal(t, model.RunStateStopped, c.State())

	// Final total must equal the sum of the last known per-worker counts.
	want := new(big.Int)
	for _, v := range sum.PerWorker {
		n, ok := new(big.Int).SetString(v, 10)
		require.True(t, ok)
		want.Add(want, n)
	}
	assert.Equal(t, want.String(), sum.TotalChecked)
}

func TestCoordinatorContextCancellation(t *testing.T) {
	o := oracle.NewSHA256()
	target := testTarget(t, o)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewCoordinator(target, o, rngFactory(9), Config{
		BatchSize:    32,
		TickInterval: 5 * time.Millisecond,
	})

	sum, err := c.Run(ctx, 2)
	require.NoError(t, err, "cancellation is a clean shutdown, not an error")
	assert.False(t, sum.Found)
	assert.Equal(t, model.StopCauseCancelled, sum.Cause)
}

func TestCoordinatorDoubleStopOneSummary(t *testing.T) {
	o := oracle.NewSHA256()
	target := testTarget(t, o)

	sink := &recordingSink{}
	c := NewCoordinator(target, o, rngFactory(3), Config{
		BatchSize:    32,
		TickInterval: 5 * time.Millisecond,
		Sink:         sink,
	})

	go func() {
		time.Sleep(30 * time.Millisecond)
		// Simulate an interrupt racing a second stop request.
		c.Stop()
		c.Stop()
	}()

	sum, err := c.Run(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sink.summaries.Load())
	assert.Equal(t, model.StopCauseCancelled, sum.Cause)
}

func TestCoordinatorFoundBeatsRacingCancel(t *testing.T) {
	o := oracle.NewSHA256()
	target := testTarget(t, o)

	factory := func(workerID int) oracle.Generator {
		return newPlantedGenerator(5, target.SecretSeed)
	}

	c := NewCoordinator(target, o, factory, Config{
		BatchSize:    8,
		TickInterval: time.Millisecond,
	})

	sum, err := c.Run(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, sum.Found)

	// A stop request arriving after the found-stop already fired is a
	// no-op and must not rewrite the cause.
	c.Stop()
	assert.Equal(t, model.StopCauseFound, sum.Cause)
}

func TestCoordinatorZeroWorkers(t *testing.T) {
	o := oracle.NewSHA256()
	target := testTarget(t, o)

	sink := &recordingSink{}
	c := NewCoordinator(target, o, rngFactory(1), Config{
		TickInterval: 5 * time.Millisecond,
		Sink:         sink,
	})

	go func() {
		time.Sleep(30 * time.Millisecond)
		c.Stop()
	}()

	done := make(chan *Summary, 1)
	go func() {
		sum, err := c.Run(context.Background(), 0)
		assert.NoError(t, err)
		done <- sum
	}()

	select {
	case sum := <-done:
		assert.Equal(t, "0", sum.TotalChecked)
		assert.Zero(t, sum.PerSecond)
		assert.False(t, sum.Found)
	case <-time.After(2 * time.Second):
		t.Fatal("zero-worker run hung")
	}

	// The aggregator still ticked while idling.
	assert.Greater(t, sink.statuses.Load(), int64(0))
}

func TestCoordinatorNegativeWorkers(t *testing.T) {
	o := oracle.NewSHA256()
	c := NewCoordinator(testTarget(t, o), o, rngFactory(1), Config{})

	_, err := c.Run(context.Background(), -1)
	assert.ErrorIs(t, err, ErrNegativeWorkerCount)
}

func TestCoordinatorSingleUse(t *testing.T) {
	o := oracle.NewSHA256()
	target := testTarget(t, o)

	c := NewCoordinator(target, o, rngFactory(1), Config{
		BatchSize:    16,
		TickInterval: 5 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.Run(ctx, 1)
	require.NoError(t, err)

	_, err = c.Run(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRunConsumed)
}

func TestCoordinatorWorkerFaultNotFatal(t *testing.T) {
	o := oracle.NewSHA256()
	target := testTarget(t, o)

	cause := errors.New("no entropy")
	factory := func(workerID int) oracle.Generator {
		if workerID == 0 {
			return newFailingGenerator(5, cause)
		}
		// The healthy worker eventually plants the secret.
		misses := util.NewRNG(50).Candidates(40)
		script := append(append([]model.Candidate{}, misses...), target.SecretSeed)
		return newPlantedGenerator(60, script...)
	}

	collector := &recordingCollector{}
	c := NewCoordinator(target, o, factory, Config{
		BatchSize:    8,
		TickInterval: 5 * time.Millisecond,
		Collector:    collector,
	})

	sum, err := c.Run(context.Background(), 2)
	require.NoError(t, err)

	assert.True(t, sum.Found, "run must survive a worker fault")
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, int64(1), collector.faults.Load())
	assert.Equal(t, int64(1), collector.found.Load())
}

func TestCoordinatorNoReportsProcessedAfterStop(t *testing.T) {
	o := oracle.NewSHA256()
	target := testTarget(t, o)

	collector := &recordingCollector{}
	c := NewCoordinator(target, o, rngFactory(11), Config{
		BatchSize:    16,
		TickInterval: 5 * time.Millisecond,
		Collector:    collector,
	})

	go func() {
		time.Sleep(30 * time.Millisecond)
		c.Stop()
	}()

	_, err := c.Run(context.Background(), 4)
	require.NoError(t, err)

	// Run has returned: teardown drained every in-flight report without
	// processing it, so the counters must not move anymore.
	processed := collector.progress.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, processed, collector.progress.Load())
}

func TestCoordinatorRunIDAttached(t *testing.T) {
	o := oracle.NewSHA256()
	c := NewCoordinator(testTarget(t, o), o, rngFactory(1), Config{
		BatchSize:    8,
		TickInterval: 5 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	sum, err := c.Run(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, c.RunID(), sum.RunID)
}
