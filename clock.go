//go:build linux

package timescale

import (
	"math"

	"golang.org/x/sys/unix"
)

// Clock reads: call the real operation, then replace its output with
// the anchor-relative point transform for the operation's clock domain.

// Time reports the virtual wall-clock time in whole seconds since the
// epoch. If t is non-nil the result is also stored through it, matching
// time(2).
func (e *Engine) Time(t *unix.Time_t) (unix.Time_t, error) {
	e.prologue(OpTime)
	if e.real.time == nil {
		return 0, ErrNotResolved
	}
	if !e.hooked(OpTime) {
		return e.real.time(t)
	}
	if e.initErr != nil {
		return 0, e.initErr
	}

	now, err := e.real.time(nil)
	if err != nil {
		return now, err
	}
	virtual := e.tf.pointToVirtual(e.anch.walltime, float64(now))
	vt := unix.Time_t(math.Floor(virtual))
	if t != nil {
		*t = vt
	}
	return vt, nil
}

// Gettimeofday stores the virtual wall-clock time through tv with
// microsecond resolution.
func (e *Engine) Gettimeofday(tv *unix.Timeval) error {
	e.prologue(OpGettimeofday)
	if e.real.gettimeofday == nil {
		return ErrNotResolved
	}
	if !e.hooked(OpGettimeofday) {
		return e.real.gettimeofday(tv)
	}
	if e.initErr != nil {
		return e.initErr
	}

	if err := e.real.gettimeofday(tv); err != nil {
		return err
	}
	if tv == nil {
		// The real call tolerates a nil tv; nothing to transform.
		return nil
	}
	virtual := e.tf.pointToVirtual(e.anch.walltime, timevalSeconds(*tv))
	*tv = secondsToTimeval(virtual)
	return nil
}

// ClockGettime stores the virtual reading of the given clock through
// ts. Only the real-time and monotonic domains are supported; any other
// clock id is rejected with EINVAL before the real operation runs.
func (e *Engine) ClockGettime(clockid int32, ts *unix.Timespec) error {
	e.prologue(OpClockGettime)
	if e.real.clockGettime == nil {
		return ErrNotResolved
	}
	if !e.hooked(OpClockGettime) {
		return e.real.clockGettime(clockid, ts)
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
	if e.initErr != nil {
		return e.initErr
	}

	if err := e.real.clockGettime(clockid, ts); err != nil {
		return err
	}
	virtual := e.tf.pointToVirtual(anchor, timespecSeconds(*ts))
	*ts = secondsToTimespec(virtual)
	return nil
}

// Times fills tms with virtual CPU accounting and returns the virtual
// tick count. Each of the four counters is scaled independently against
// the anchor captured for it at initialization, so CPU time accumulated
// before the anchor passes through unscaled.
func (e *Engine) Times(tms *unix.Tms) (uintptr, error) {
	e.prologue(OpTimes)
	if e.real.times == nil {
		return 0, ErrNotResolved
	}
	if !e.hooked(OpTimes) {
		return e.real.times(tms)
	}
	if e.initErr != nil {
		return 0, e.initErr
	}

	var real unix.Tms
	ticks, err := e.real.times(&real)
	if err != nil {
		return ticks, err
	}
	if tms != nil {
		tms.Utime = e.scaleCounter(real.Utime, e.anch.cpu.Utime)
		tms.Stime = e.scaleCounter(real.Stime, e.anch.cpu.Stime)
		tms.Cutime = e.scaleCounter(real.Cutime, e.anch.cpu.Cutime)
		tms.Cstime = e.scaleCounter(real.Cstime, e.anch.cpu.Cstime)
	}
	virtualTicks := e.tf.pointToVirtual(float64(e.anch.cpuTicks), float64(ticks))
	return uintptr(math.Floor(virtualTicks)), nil
}

// scaleCounter applies the point transform to a single CPU counter.
func (e *Engine) scaleCounter(counter, anchor int64) int64 {
	return int64(math.Floor(e.tf.pointToVirtual(float64(anchor), float64(counter))))
}
