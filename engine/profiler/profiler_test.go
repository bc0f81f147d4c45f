package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTickLogsOncePerInterval(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	now := time.Unix(0, 0)
	p := NewProfiler(
		WithInterval(time.Second),
		WithLogger(zap.New(core)),
		WithClock(func() time.Time { return now }),
	)

	for range 29 {
		now = now.Add(time.Second / 60)
		assert.False(t, p.Tick())
	}
	now = now.Add(time.Second)
	assert.True(t, p.Tick())

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "frame stats", logs.All()[0].Message)
	assert.InDelta(t, 30.0/(29.0/60.0+1.0), p.Last().FPS, 1e-3)
	assert.Positive(t, p.Last().SysMB)
}

func TestLastIsZeroBeforeFirstSample(t *testing.T) {
	p := NewProfiler(WithInterval(0))
	assert.Zero(t, p.Last().FPS)
}
