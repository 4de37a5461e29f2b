package termline

import (
	"bytes"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/longshot/model"
	"github.com/hupe1980/longshot/resource"
	"github.com/hupe1980/longshot/search"
)

func TestStatusNonTTYPlainLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, nil)

	l.Status(search.Snapshot{
		Total:     big.NewInt(2_500_000),
		Elapsed:   3 * time.Second,
		PerSecond: 833_333,
		Workers:   8,
	})

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"), "non-TTY output must be line-oriented")
	assert.Contains(t, out, "2.50M")
	assert.Contains(t, out, "8 workers")
	assert.NotContains(t, out, "\r")
}

func TestStatusShowsFailedWorkers(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, nil)

	l.Status(search.Snapshot{Total: big.NewInt(1), Workers: 4, Failed: 1})

	assert.Contains(t, buf.String(), "3 workers (1 failed)")
}

func TestStatusHonorsRenderBudget(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, resource.NewController(resource.Config{StatusUpdatesPerSec: 1}))

	snap := search.Snapshot{Total: big.NewInt(1), Workers: 1}
	l.Status(snap)
	first := buf.Len()
	l.Status(snap)

	assert.Equal(t, first, buf.Len(), "second redraw within budget window must be skipped")
}

func TestSummaryFound(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, nil)

	var secret model.Candidate
	secret[0] = 0xaa

	l.Summary(&search.Summary{
		RunID:        uuid.New(),
		Cause:        model.StopCauseFound,
		Found:        true,
		Secret:       secret,
		TotalChecked: "123456789",
		Elapsed:      42 * time.Second,
		PerSecond:    2_939_447,
		Workers:      8,
	})

	out := buf.String()
	assert.Contains(t, out, "found")
	assert.Contains(t, out, secret.String())
	assert.Contains(t, out, "123456789")
	assert.Contains(t, out, "123.46M")
}

func TestSummaryCancelled(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, nil)

	l.Summary(&search.Summary{
		RunID:        uuid.New(),
		Cause:        model.StopCauseCancelled,
		TotalChecked: "10",
		Workers:      2,
		Failed:       1,
	})

	out := buf.String()
	assert.Contains(t, out, "cancelled")
	assert.Contains(t, out, "not recovered")
	assert.Contains(t, out, "(1 failed)")
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1.00k"},
		{2_500_000, "2.50M"},
		{7_100_000_000, "7.10G"},
		{3_000_000_000_000, "3.00T"},
		{9_000_000_000_000_000, "9.00P"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCount(big.NewInt(tt.in)), "count %d", tt.in)
	}

	assert.Equal(t, "0", formatCount(nil))
}

func TestFormatCountBeyondUint64(t *testing.T) {
	n, ok := new(big.Int).SetString("36893488147419103232", 10) // 2^65
	require.True(t, ok)
	assert.Equal(t, "36893.49P", formatCount(n))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1m5s", formatDuration(65*time.Second+123*time.Millisecond))
}
