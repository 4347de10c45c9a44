//go:build linux

package timescale

import "golang.org/x/sys/unix"

// ClockNanosleep blocks against the given clock. Without TIMER_ABSTIME
// it is a relative wait and behaves like Nanosleep. With TIMER_ABSTIME
// req is an absolute virtual deadline: the current real clock is read,
// converted to virtual time, and the remaining virtual duration is
// scaled into a relative real wait. A deadline at or before the current
// virtual time completes immediately without invoking the real wait.
// Only the real-time and monotonic domains are supported.
func (e *Engine) ClockNanosleep(clockid int32, flags int, req, rem *unix.Timespec) error {
	e.prologue(OpClockNanosleep)
	if e.real.clockNanosleep == nil {
		return ErrNotResolved
	}
	if !e.hooked(OpClockNanosleep) {
		return e.real.clockNanosleep(clockid, flags, req, rem)
	}

	var anchor float64
	switch clockid {
	case unix.CLOCK_REALTIME:
		anchor = e.anch.walltime
	case unix.CLOCK_MONOTONIC:
		anchor = e.anch.monotonic
	default:
		e.log.Error().Int32("clockid", clockid).Msg("unsupported clock domain")
		return unix.EINVAL
	}
	if req == nil || e.initErr != nil {
		return e.real.clockNanosleep(clockid, flags, req, rem)
	}

	if flags&unix.TIMER_ABSTIME != 0 {
		var now unix.Timespec
		if err := e.real.clockGettime(clockid, &now); err != nil {
			return err
		}
		virtualNow := e.tf.pointToVirtual(anchor, timespecSeconds(now))
		remaining := timespecSeconds(*req) - virtualNow
		if remaining <= 0 {
			// Already due; never hand the real wait a non-positive
			// duration.
			return nil
		}
		scaled := secondsToTimespec(e.tf.durationToReal(remaining))
		return e.real.clockNanosleep(clockid, 0, &scaled, rem)
	}

	if timespecIsZero(*req) {
		return e.real.clockNanosleep(clockid, flags, req, rem)
	}
	scaled := secondsToTimespec(e.tf.durationToReal(timespecSeconds(*req)))
	err := e.real.clockNanosleep(clockid, flags, &scaled, rem)
	if err != nil && rem != nil {
		*rem = secondsToTimespec(e.tf.durationToVirtual(timespecSeconds(*rem)))
	}
	return err
}
