//go:build linux

package timescale

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestClockNanosleep_AbsoluteDeadline(t *testing.T) {
	t.Parallel()

	// Monotonic anchor 500, scale 10. 400 real seconds later the
	// virtual clock reads 540. A deadline of virtual 600 leaves 60
	// virtual seconds, which is a 600 second real wait.
	clocks := &fakeClocks{realtime: 1000, monotonic: 500}
	rt := clocks.table()
	rec := &recordingNanosleep{}
	rt.clockNanosleep = func(clockid int32, flags int, req, rem *unix.Timespec) error {
		require.Zero(t, flags, "the derived wait is relative")
		return rec.call(req, rem)
	}

	e := newTestEngine(t, Config{Scale: 10}, rt)
	clocks.advance(400)

	deadline := secondsToTimespec(600)
	require.NoError(t, e.ClockNanosleep(unix.CLOCK_MONOTONIC, unix.TIMER_ABSTIME, &deadline, nil))
	require.Len(t, rec.requested, 1)
	require.InDelta(t, 600.0, timespecSeconds(rec.requested[0]), 1e-4)
}

func TestClockNanosleep_DueDeadlineCompletesImmediately(t *testing.T) {
	t.Parallel()

	clocks := &fakeClocks{realtime: 1000, monotonic: 500}
	rt := clocks.table()
	called := false
	rt.clockNanosleep = func(clockid int32, flags int, req, rem *unix.Timespec) error {
		called = true
		return nil
	}

	e := newTestEngine(t, Config{Scale: 2}, rt)
	clocks.advance(100) // virtual monotonic is now 550

	deadline := secondsToTimespec(540)
	require.NoError(t, e.ClockNanosleep(unix.CLOCK_MONOTONIC, unix.TIMER_ABSTIME, &deadline, nil))
	require.False(t, called, "a due deadline never reaches the real wait")

	exact := secondsToTimespec(550)
	require.NoError(t, e.ClockNanosleep(unix.CLOCK_MONOTONIC, unix.TIMER_ABSTIME, &exact, nil))
	require.False(t, called)
}

func TestClockNanosleep_RelativeScaling(t *testing.T) {
	t.Parallel()

	clocks := &fakeClocks{realtime: 1000, monotonic: 500}
	rt := clocks.table()
	rec := &recordingNanosleep{}
	rt.clockNanosleep = func(clockid int32, flags int, req, rem *unix.Timespec) error {
		return rec.call(req, rem)
	}

	e := newTestEngine(t, Config{Scale: 2}, rt)

	req := secondsToTimespec(5)
	require.NoError(t, e.ClockNanosleep(unix.CLOCK_REALTIME, 0, &req, nil))
	require.Len(t, rec.requested, 1)
	require.InDelta(t, 10.0, timespecSeconds(rec.requested[0]), 1e-6)
}

func TestClockNanosleep_RelativeRemainingUnscaled(t *testing.T) {
	t.Parallel()

	clocks := &fakeClocks{realtime: 1000, monotonic: 500}
	rt := clocks.table()
	rec := &recordingNanosleep{
		err:       unix.EINTR,
		remaining: secondsToTimespec(4),
	}
	rt.clockNanosleep = func(clockid int32, flags int, req, rem *unix.Timespec) error {
		return rec.call(req, rem)
	}

	e := newTestEngine(t, Config{Scale: 2}, rt)

	req := secondsToTimespec(5)
	var rem unix.Timespec
	require.ErrorIs(t, e.ClockNanosleep(unix.CLOCK_REALTIME, 0, &req, &rem), unix.EINTR)
	require.InDelta(t, 2.0, timespecSeconds(rem), 1e-6, "4 real seconds remaining is 2 virtual at scale 2")
}

func TestClockNanosleep_RejectsOtherDomains(t *testing.T) {
	t.Parallel()

	clocks := &fakeClocks{realtime: 1000, monotonic: 500}
	rt := clocks.table()
	called := false
	rt.clockNanosleep = func(clockid int32, flags int, req, rem *unix.Timespec) error {
		called = true
		return nil
	}

	e := newTestEngine(t, Config{Scale: 2}, rt)

	req := secondsToTimespec(1)
	err := e.ClockNanosleep(unix.CLOCK_PROCESS_CPUTIME_ID, 0, &req, nil)
	require.ErrorIs(t, err, unix.EINVAL)
	require.False(t, called)
}
