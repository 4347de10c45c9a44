//go:build linux

package timescale

import "golang.org/x/sys/unix"

// Relative waits: scale the requested virtual duration out to a real
// duration, call the real primitive, and un-scale any remaining-time
// output on the way back. Sentinels (nil, zero) bypass the transform
// entirely.

// Sleep blocks for the given number of virtual seconds and returns the
// whole virtual seconds left unslept if interrupted, matching sleep(3).
func (e *Engine) Sleep(seconds uint) uint {
	e.prologue(OpSleep)
	if e.real.sleep == nil {
		return seconds
	}
	if !e.hooked(OpSleep) || e.initErr != nil {
		return e.real.sleep(seconds)
	}
	if seconds == 0 || e.real.nanosleep == nil {
		return e.real.sleep(seconds)
	}

	// Fractional real durations matter here: with scale 0.25, four
	// virtual seconds are one real second. Going through nanosleep
	// keeps the precision a uint round-trip would destroy.
	realSeconds := e.tf.durationToReal(float64(seconds))
	unslept := sleepViaNanosleep(e.real.nanosleep, realSeconds)
	return uint(e.tf.durationToVirtual(float64(unslept)))
}

// Usleep blocks for the given number of virtual microseconds.
func (e *Engine) Usleep(usec uint32) error {
	e.prologue(OpUsleep)
	if e.real.usleep == nil {
		return ErrNotResolved
	}
	if !e.hooked(OpUsleep) || usec == 0 || e.initErr != nil {
		return e.real.usleep(usec)
	}

	return e.real.usleep(uint32(e.tf.durationToReal(float64(usec))))
}

// Nanosleep blocks for the virtual duration in req. On an interrupted
// sleep the remaining time stored through rem is reported in virtual
// units. A nil or zero req is forwarded untouched.
func (e *Engine) Nanosleep(req, rem *unix.Timespec) error {
	e.prologue(OpNanosleep)
	if e.real.nanosleep == nil {
		return ErrNotResolved
	}
	if !e.hooked(OpNanosleep) || req == nil || timespecIsZero(*req) || e.initErr != nil {
		return e.real.nanosleep(req, rem)
	}

	scaled := secondsToTimespec(e.tf.durationToReal(timespecSeconds(*req)))
	err := e.real.nanosleep(&scaled, rem)
	if err != nil && rem != nil {
		*rem = secondsToTimespec(e.tf.durationToVirtual(timespecSeconds(*rem)))
	}
	return err
}

// FutexWait waits on addr while it holds val, for at most the virtual
// duration in timeout. A nil timeout blocks until woken and is
// forwarded untouched, as is a zero timeout.
func (e *Engine) FutexWait(addr *int32, val int32, timeout *unix.Timespec) error {
	e.prologue(OpFutexWait)
	if e.real.futexWait == nil {
		return ErrNotResolved
	}
	if !e.hooked(OpFutexWait) || timeout == nil || timespecIsZero(*timeout) || e.initErr != nil {
		return e.real.futexWait(addr, val, timeout)
	}

	scaled := secondsToTimespec(e.tf.durationToReal(timespecSeconds(*timeout)))
	return e.real.futexWait(addr, val, &scaled)
}
