package longshot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/longshot/model"
	"github.com/hupe1980/longshot/oracle"
	"github.com/hupe1980/longshot/search"
	"github.com/hupe1980/longshot/util"
)

// echoGenerator hands every caller the same fixed candidate, so the
// coordinator's secret draw and worker 0's first probe are identical and
// the run terminates immediately with a match.
type echoGenerator struct {
	c model.Candidate
}

func (g echoGenerator) Next() (model.Candidate, error) {
	return g.c, nil
}

func TestRunFindsEchoedSecret(t *testing.T) {
	fixed, err := util.NewRNG(1234).Next()
	require.NoError(t, err)

	sum, err := Run(context.Background(),
		WithWorkers(2),
		WithBatchSize(16),
		WithTickInterval(5*time.Millisecond),
		WithSink(discardSink{}),
		WithGeneratorFactory(func(workerID int) oracle.Generator {
			return echoGenerator{c: fixed}
		}),
	)
	require.NoError(t, err)

	assert.True(t, sum.Found)
	assert.Equal(t, fixed, sum.Secret)
	assert.Equal(t, model.StopCauseFound, sum.Cause)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	metrics := &BasicMetricsCollector{}
	sum, err := Run(ctx,
		WithWorkers(2),
		WithBatchSize(64),
		WithTickInterval(5*time.Millisecond),
		WithSink(discardSink{}),
		WithMetrics(metrics),
	)
	require.NoError(t, err)

	assert.False(t, sum.Found)
	assert.Equal(t, model.StopCauseCancelled, sum.Cause)
	assert.Greater(t, metrics.TickCount.Load(), int64(0))
}

func TestRunDefaultsWorkersToParallelism(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	sum, err := Run(ctx,
		WithBatchSize(64),
		WithTickInterval(5*time.Millisecond),
		WithSink(discardSink{}),
	)
	require.NoError(t, err)
	assert.Greater(t, sum.Workers, 0)
}

type discardSink struct{}

func (discardSink) Status(search.Snapshot)  {}
func (discardSink) Summary(*search.Summary) {}
