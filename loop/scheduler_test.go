package loop_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/loop"
)

type countingSystem struct {
	ExecuteCount int
	Deltas       []time.Duration
	order        *[]string
	label        string
}

func (s *countingSystem) Execute(frame *loop.Frame) {
	s.ExecuteCount++
	s.Deltas = append(s.Deltas, frame.Delta)
	if s.order != nil {
		*s.order = append(*s.order, s.label)
	}
}

type deferringSystem struct {
	ran []string
}

func (s *deferringSystem) Execute(frame *loop.Frame) {
	s.ran = append(s.ran, "execute")
	frame.Commands.Defer(func() { s.ran = append(s.ran, "deferred") })
}

func TestScheduler(t *testing.T) {
	start := time.Date(2024, time.November, 1, 12, 0, 0, 0, time.UTC)

	t.Run("systems run in registration order", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		var order []string
		first := &countingSystem{order: &order, label: "first"}
		second := &countingSystem{order: &order, label: "second"}

		scheduler.Register(first)
		scheduler.Register(second)

		scheduler.Once(start)
		scheduler.Once(start.Add(time.Second))

		assert.Equal(t, []string{"first", "second", "first", "second"}, order)
		assert.Equal(t, 2, first.ExecuteCount)
		assert.Equal(t, 2, second.ExecuteCount)
	})

	t.Run("delta between frames", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		sys := &countingSystem{}
		scheduler.Register(sys)

		scheduler.Once(start)
		scheduler.Once(start.Add(16 * time.Millisecond))
		scheduler.Once(start.Add(50 * time.Millisecond))

		assert.Equal(t, []time.Duration{0, 16 * time.Millisecond, 34 * time.Millisecond}, sys.Deltas)
	})

	t.Run("frame carries now and index", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		var frames []loop.Frame
		scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
			frames = append(frames, *frame)
		}))

		scheduler.Once(start)
		scheduler.Once(start.Add(time.Second))

		require.Len(t, frames, 2)
		assert.Equal(t, start, frames[0].Now)
		assert.Equal(t, int64(0), frames[0].Index)
		assert.Equal(t, start.Add(time.Second), frames[1].Now)
		assert.Equal(t, int64(1), frames[1].Index)
	})

	t.Run("deferred commands run after all systems", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		deferring := &deferringSystem{}
		scheduler.Register(deferring)
		scheduler.Register(loop.SystemFunc(func(*loop.Frame) {
			deferring.ran = append(deferring.ran, "next system")
		}))

		scheduler.Once(start)
		assert.Equal(t, []string{"execute", "next system", "deferred"}, deferring.ran)

		scheduler.Once(start.Add(time.Second))
		assert.Len(t, deferring.ran, 6, "the buffer is reset between frames")
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler()
		sys := &countingSystem{}
		scheduler.Register(sys)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.NotZero(t, sys.ExecuteCount, "expected system to execute at least once")
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := loop.NewScheduler()
	scheduler.Register(&countingSystem{})
	scheduler.Register(loop.SystemFunc(func(*loop.Frame) {
		time.Sleep(time.Millisecond)
	}))

	stats := scheduler.Stats()
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "countingSystem", stats.Systems[0].Name)
	assert.Equal(t, "SystemFunc", stats.Systems[1].Name)
	assert.Zero(t, stats.Systems[0].MinDuration, "no executions yet")

	now := time.Now()
	for i := range 5 {
		scheduler.Once(now.Add(time.Duration(i) * time.Millisecond))
	}

	stats = scheduler.Stats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(5), stats.Frames)
	assert.Equal(t, int64(10), stats.TotalExecutions)

	slow := stats.Systems[1]
	assert.Equal(t, int64(5), slow.ExecutionCount)
	assert.GreaterOrEqual(t, slow.MinDuration, time.Millisecond)
	assert.GreaterOrEqual(t, slow.MaxDuration, slow.MinDuration)
	assert.GreaterOrEqual(t, slow.TotalDuration, 5*time.Millisecond)
	assert.Equal(t, slow.TotalDuration/5, slow.AvgDuration)
}
