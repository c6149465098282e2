package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerSamplesEveryNthStep(t *testing.T) {
	tr := New(Steps(3))

	require.NoError(t, tr.LogStat("cost", 1.0))

	for i := 0; i < 2; i++ {
		tr.IncStep()
		assert.False(t, tr.isLoggingStep)
		require.NoError(t, tr.LogStat("cost", 0.0))
		assert.Len(t, tr.stats["cost"], 1, "non-sampled step must not append")
	}

	tr.IncStep()
	assert.True(t, tr.isLoggingStep)
	require.NoError(t, tr.LogStat("cost", 2.0))

	series := tr.IntoStats()["cost"]
	assert.Equal(t, []any{1.0, 2.0}, series)
}

func TestMultiStatLoggingRejected(t *testing.T) {
	tr := New(Steps(1))
	require.NoError(t, tr.LogStat("cost", 1.0))
	err := tr.LogStat("cost", 2.0)
	require.ErrorIs(t, err, ErrMultiStatLogging)
}

func TestMissedStatLoggingRejected(t *testing.T) {
	tr := New(Steps(1))
	require.NoError(t, tr.LogStat("cost", 1.0))
	require.NoError(t, tr.LogStat("other", 1.0))
	tr.IncStep()
	require.NoError(t, tr.LogStat("other", 1.0))
	tr.IncStep()
	err := tr.LogStat("cost", 2.0)
	// "cost" already has one entry, statsIndex is now 2: len(series)=1 < 2
	require.ErrorIs(t, err, ErrMissedStatLogging)
}

func TestDurationSamplingRate(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := newWithClock(Duration(10*time.Millisecond), func() time.Time { return now })

	require.NoError(t, tr.LogStat("x", 1))

	now = now.Add(5 * time.Millisecond)
	tr.IncStep()
	assert.False(t, tr.isLoggingStep)

	now = now.Add(20 * time.Millisecond)
	tr.IncStep()
	assert.True(t, tr.isLoggingStep)
	require.NoError(t, tr.LogStat("x", 2))

	assert.Equal(t, []any{1, 2}, tr.IntoStats()["x"])
}

func TestEstimatedSampleCountFromSteps(t *testing.T) {
	rate := EstimatedSampleCountFromSteps(1000, 250)
	assert.Equal(t, rateSteps, rate.kind)
	assert.Equal(t, 4, rate.steps)
}
