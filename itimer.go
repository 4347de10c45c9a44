//go:build linux

package timescale

import "golang.org/x/sys/unix"

// Interval timers. Both the initial value and the repeat interval are
// scaled independently on the way in; the previous or current setting
// coming back is un-scaled so the caller sees virtual durations. A zero
// value disarms the timer and passes through untouched.

// Alarm schedules SIGALRM after the given number of virtual seconds, or
// cancels a pending alarm when seconds is zero. The returned previous
// remainder is in virtual seconds.
func (e *Engine) Alarm(seconds uint) (uint, error) {
	e.prologue(OpAlarm)
	if e.real.alarm == nil {
		return 0, ErrNotResolved
	}
	if !e.hooked(OpAlarm) || e.initErr != nil {
		return e.real.alarm(seconds)
	}

	scaled := seconds
	if seconds != 0 {
		scaled = uint(e.tf.durationToReal(float64(seconds)))
	}
	prev, err := e.real.alarm(scaled)
	if err != nil || prev == 0 {
		return prev, err
	}
	return uint(e.tf.durationToVirtual(float64(prev))), nil
}

// Getitimer returns the given timer's current value and interval in
// virtual units.
func (e *Engine) Getitimer(which unix.ItimerWhich) (unix.Itimerval, error) {
	e.prologue(OpGetitimer)
	if e.real.getitimer == nil {
		return unix.Itimerval{}, ErrNotResolved
	}
	if !e.hooked(OpGetitimer) || e.initErr != nil {
		return e.real.getitimer(which)
	}

	it, err := e.real.getitimer(which)
	if err != nil {
		return it, err
	}
	return e.itimervalToVirtual(it), nil
}

// Setitimer arms the given timer with virtual durations and returns the
// previous setting in virtual units.
func (e *Engine) Setitimer(which unix.ItimerWhich, it unix.Itimerval) (unix.Itimerval, error) {
	e.prologue(OpSetitimer)
	if e.real.setitimer == nil {
		return unix.Itimerval{}, ErrNotResolved
	}
	if !e.hooked(OpSetitimer) || e.initErr != nil {
		return e.real.setitimer(which, it)
	}

	prev, err := e.real.setitimer(which, e.itimervalToReal(it))
	if err != nil {
		return prev, err
	}
	return e.itimervalToVirtual(prev), nil
}

func (e *Engine) itimervalToReal(it unix.Itimerval) unix.Itimerval {
	if !timevalIsZero(it.Value) {
		it.Value = secondsToTimeval(e.tf.durationToReal(timevalSeconds(it.Value)))
	}
	if !timevalIsZero(it.Interval) {
		it.Interval = secondsToTimeval(e.tf.durationToReal(timevalSeconds(it.Interval)))
	}
	return it
}

func (e *Engine) itimervalToVirtual(it unix.Itimerval) unix.Itimerval {
	if !timevalIsZero(it.Value) {
		it.Value = secondsToTimeval(e.tf.durationToVirtual(timevalSeconds(it.Value)))
	}
	if !timevalIsZero(it.Interval) {
		it.Interval = secondsToTimeval(e.tf.durationToVirtual(timevalSeconds(it.Interval)))
	}
	return it
}
