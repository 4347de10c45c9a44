//go:build linux

package timescale

import (
	"context"
	"testing"
	"time"

	"github.com/clipperhouse/ntime"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestNow_VirtualWallClock(t *testing.T) {
	t.Parallel()

	clocks := &fakeClocks{realtime: 1000, monotonic: 500}
	e := newTestEngine(t, Config{Scale: 2}, clocks.table())

	clocks.advance(10)

	now, err := e.Now()
	require.NoError(t, err)
	require.Equal(t, time.Unix(1005, 0).Unix(), now.Unix())
}

func TestMonotonic_VirtualElapsed(t *testing.T) {
	t.Parallel()

	clocks := &fakeClocks{realtime: 1000, monotonic: 500}
	e := newTestEngine(t, Config{Scale: 4}, clocks.table())

	clocks.advance(8)

	elapsed, err := e.Monotonic()
	require.NoError(t, err)
	require.InDelta(t, float64(2*time.Second), float64(elapsed), float64(time.Microsecond))
}

func TestSince_VirtualElapsed(t *testing.T) {
	t.Parallel()

	clocks := &fakeClocks{realtime: 1000, monotonic: 500}
	e := newTestEngine(t, Config{Scale: 2}, clocks.table())

	start, err := e.Now()
	require.NoError(t, err)

	clocks.advance(10)

	elapsed, err := e.Since(start)
	require.NoError(t, err)
	require.InDelta(t, float64(5*time.Second), float64(elapsed), float64(time.Millisecond))
}

func TestSleepFor_GoesThroughNanosleep(t *testing.T) {
	t.Parallel()

	clocks := &fakeClocks{realtime: 1000, monotonic: 500}
	rt := clocks.table()
	rec := &recordingNanosleep{}
	rt.nanosleep = rec.call

	e := newTestEngine(t, Config{Scale: 0.5}, rt)

	require.NoError(t, e.SleepFor(4*time.Second))
	require.Len(t, rec.requested, 1)
	require.InDelta(t, 2.0, timespecSeconds(rec.requested[0]), 1e-6)

	// Non-positive durations return immediately.
	require.NoError(t, e.SleepFor(0))
	require.NoError(t, e.SleepFor(-time.Second))
	require.Len(t, rec.requested, 1)
}

func TestSleepContext_Cancellation(t *testing.T) {
	t.Parallel()

	clocks := &fakeClocks{realtime: 1000, monotonic: 500}
	e := newTestEngine(t, Config{Scale: 100}, clocks.table())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := ntime.Now()
	err := e.SleepContext(ctx, time.Hour)
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, ntime.Now().Sub(start), time.Second, "cancellation returns promptly")
}

func TestSleepContext_Elapses(t *testing.T) {
	t.Parallel()

	clocks := &fakeClocks{realtime: 1000, monotonic: 500}
	// Scale 0.001: a one second virtual sleep is a millisecond of
	// real time.
	e := newTestEngine(t, Config{Scale: 0.001}, clocks.table())

	err := e.SleepContext(context.Background(), time.Second)
	require.NoError(t, err)
}

func TestRealDuration_HonorsHookFlag(t *testing.T) {
	t.Parallel()

	clocks := &fakeClocks{realtime: 1000, monotonic: 500}
	e := newTestEngine(t, Config{Scale: 10, Hooked: OperationSet{}}, clocks.table())

	require.Equal(t, time.Second, e.realDuration(time.Second),
		"an unhooked engine waits unscaled, like the standard library")

	hooked := newTestEngine(t, Config{Scale: 10}, clocks.table())
	require.Equal(t, 10*time.Second, hooked.realDuration(time.Second))
}

func TestAfter_DeliversVirtualTime(t *testing.T) {
	t.Parallel()

	clocks := &fakeClocks{realtime: 1000, monotonic: 500}
	e := newTestEngine(t, Config{Scale: 0.001}, clocks.table())

	select {
	case now := <-e.After(time.Second):
		require.False(t, now.IsZero())
	case <-time.After(5 * time.Second):
		t.Fatal("After should fire well within the deadline")
	}
}

func BenchmarkClockGettime(b *testing.B) {
	clocks := &fakeClocks{realtime: 1000, monotonic: 500}
	e, err := New(Config{Scale: 2})
	if err != nil {
		b.Fatal(err)
	}
	e.real = clocks.table()
	e.ensureInit()

	var ts unix.Timespec
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := e.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
			b.Fatal(err)
		}
	}
}
